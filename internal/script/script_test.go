package script

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

const padThai = `
manager: %s
steps:
  - op: place
    order: Pad Thai
    id: "1234"
  - op: track
    id: "1234"
  - op: cancel
    id: "1234"
`

func parse(t *testing.T, src string) *Script {
	t.Helper()
	s, err := Parse(strings.NewReader(src))
	require.NoError(t, err)
	return s
}

func TestRunBothManagers(t *testing.T) {
	cases := []struct {
		manager string
		orders  []string
	}{
		// the dispatching cancel never matches a bare id
		{ManagerDispatch, []string{"1234"}},
		{ManagerDirect, []string{}},
	}

	for _, tc := range cases {
		t.Run(tc.manager, func(t *testing.T) {
			s := parse(t, strings.Replace(padThai, "%s", tc.manager, 1))
			var out bytes.Buffer

			rep, err := Run(s, &out)

			require.NoError(t, err)
			require.Equal(t, tc.manager, rep.Manager)
			require.Equal(t, tc.orders, rep.Orders)
			require.Equal(t, "You have successfully ordered Pad Thai (1234)\n"+
				"Your order 1234 will arrive in 20 minutes.\n"+
				"You have canceled your order 1234\n", out.String())
		})
	}
}

func TestParseDefaultsAndGeneratedIDs(t *testing.T) {
	s := parse(t, "steps:\n  - op: place\n    order: yuca\n")

	require.Equal(t, ManagerDispatch, s.Manager)
	require.Len(t, s.Steps, 1)
	_, err := uuid.Parse(s.Steps[0].ID)
	require.NoError(t, err)
}

func TestParseErrors(t *testing.T) {
	cases := map[string]string{
		"empty":           "",
		"unknown manager": "manager: queue\n",
		"unknown op":      "steps:\n  - op: refund\n    id: \"1\"\n",
		"place no order":  "steps:\n  - op: place\n    id: \"1\"\n",
		"track no id":     "steps:\n  - op: track\n",
		"cancel no id":    "steps:\n  - op: cancel\n",
		"unknown field":   "steps:\n  - op: track\n    id: \"1\"\n    when: now\n",
	}

	for name, src := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := Parse(strings.NewReader(src))
			require.Error(t, err)
		})
	}
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "script.yaml")
	require.NoError(t, os.WriteFile(path, []byte(strings.Replace(padThai, "%s", ManagerDirect, 1)), 0o644))

	s, err := Load(path)

	require.NoError(t, err)
	require.Equal(t, ManagerDirect, s.Manager)
	require.Len(t, s.Steps, 3)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.ErrorIs(t, err, os.ErrNotExist)
}
