package command

import (
	"bytes"
	"strings"
	"testing"

	"github.com/grichal/desingPatterns/internal/order"
	"github.com/stretchr/testify/require"
)

func captureOutput(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	prev := SetOutput(&buf)
	t.Cleanup(func() { SetOutput(prev) })
	return &buf
}

func lines(buf *bytes.Buffer) []string {
	return strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
}

func TestPlaceAndTrackScenario(t *testing.T) {
	out := captureOutput(t)
	m := NewManager()

	require.Nil(t, m.Execute(PlaceOrderCommand("Pad Thai", "1234")))
	require.Equal(t, []string{"1234"}, m.Orders())

	require.Nil(t, m.Execute(TrackOrderCommand("1234")))
	require.Equal(t, []string{"1234"}, m.Orders())

	require.Equal(t, []string{
		"You have successfully ordered Pad Thai (1234)",
		"Your order 1234 will arrive in 20 minutes.",
	}, lines(out))
}

func TestCancelOrderCommandLeavesBareIDs(t *testing.T) {
	out := captureOutput(t)
	m := NewManager()
	m.Execute(PlaceOrderCommand("Pad Thai", "1234"))
	out.Reset()

	m.Execute(CancelOrderCommand("1234"))

	require.Equal(t, []string{"1234"}, m.Orders())
	require.Equal(t, "You have canceled your order 1234\n", out.String())
}

type record string

func (r record) ID() string { return string(r) }

func TestCommandsAreReusable(t *testing.T) {
	captureOutput(t)
	m := NewManager()
	place := PlaceOrderCommand("yuca", "311")

	m.Execute(place)
	m.Execute(place)

	require.Equal(t, []string{"311", "311"}, m.Orders())
	require.Equal(t, NamePlace, place.Name())
}

func TestExecuteMatchesDirectInvoke(t *testing.T) {
	captureOutput(t)
	var gotArgs []any
	cmd := New("echo", func(orders *order.List, args ...any) any {
		gotArgs = args
		orders.Push("from-cmd")
		return len(args)
	})

	m := NewManager()
	viaManager := m.Execute(cmd, "a", 2)
	require.Equal(t, []any{"a", 2}, gotArgs)

	l := order.NewList()
	direct := cmd.Invoke(l, "a", 2)

	require.Equal(t, direct, viaManager)
	require.Equal(t, l.IDs(), m.Orders())
}

func TestZeroCommandIsNoop(t *testing.T) {
	m := NewManager()
	require.Nil(t, m.Execute(Command{}))
	require.Empty(t, m.Orders())
}

func TestIdentifiedEntriesWouldMatch(t *testing.T) {
	// record satisfies identified; plain strings never do.
	_, ok := any(record("1")).(identified)
	require.True(t, ok)
	_, ok = any("1").(identified)
	require.False(t, ok)
}
