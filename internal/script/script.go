// Package script runs a YAML list of order steps against a fresh manager.
package script

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/grichal/desingPatterns/internal/command"
	"github.com/grichal/desingPatterns/internal/order"
)

const (
	ManagerDispatch = "dispatch"
	ManagerDirect   = "direct"
)

const (
	OpPlace  = "place"
	OpTrack  = "track"
	OpCancel = "cancel"
)

type Script struct {
	Manager string `yaml:"manager"`
	Steps   []Step `yaml:"steps"`
}

type Step struct {
	Op    string `yaml:"op"`
	Order string `yaml:"order"`
	ID    string `yaml:"id"`
}

// Report is the outcome of a run.
type Report struct {
	Manager string
	Orders  []string
}

func Load(path string) (*Script, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open script: %w", err)
	}
	defer f.Close()
	return Parse(f)
}

// Parse decodes and validates a script. Place steps without an id get a
// random one.
func Parse(r io.Reader) (*Script, error) {
	var s Script
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&s); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("script is empty")
		}
		return nil, fmt.Errorf("decode script: %w", err)
	}

	if s.Manager == "" {
		s.Manager = ManagerDispatch
	}
	if s.Manager != ManagerDispatch && s.Manager != ManagerDirect {
		return nil, fmt.Errorf("unknown manager %q", s.Manager)
	}

	for i := range s.Steps {
		st := &s.Steps[i]
		switch st.Op {
		case OpPlace:
			if st.Order == "" {
				return nil, fmt.Errorf("step %d: place needs an order", i+1)
			}
			if st.ID == "" {
				st.ID = uuid.NewString()
			}
		case OpTrack, OpCancel:
			if st.ID == "" {
				return nil, fmt.Errorf("step %d: %s needs an id", i+1, st.Op)
			}
		default:
			return nil, fmt.Errorf("step %d: unknown op %q", i+1, st.Op)
		}
	}
	return &s, nil
}

// Run executes every step in order and writes one status line per step to w.
func Run(s *Script, w io.Writer) (*Report, error) {
	if s.Manager == ManagerDirect {
		return runDirect(s, w)
	}
	return runDispatch(s, w), nil
}

func runDirect(s *Script, w io.Writer) (*Report, error) {
	m := order.NewManager()
	for _, st := range s.Steps {
		var line string
		switch st.Op {
		case OpPlace:
			line = m.PlaceOrder(st.Order, st.ID)
		case OpTrack:
			line = m.TrackOrder(st.ID)
		case OpCancel:
			line = m.CancelOrder(st.ID)
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			return nil, fmt.Errorf("write status: %w", err)
		}
	}
	return &Report{Manager: ManagerDirect, Orders: m.Orders()}, nil
}

func runDispatch(s *Script, w io.Writer) *Report {
	prev := command.SetOutput(w)
	defer command.SetOutput(prev)

	m := command.NewManager()
	for _, st := range s.Steps {
		m.Execute(stepCommand(st))
	}
	return &Report{Manager: ManagerDispatch, Orders: m.Orders()}
}

func stepCommand(st Step) command.Command {
	switch st.Op {
	case OpPlace:
		return command.PlaceOrderCommand(st.Order, st.ID)
	case OpTrack:
		return command.TrackOrderCommand(st.ID)
	default:
		return command.CancelOrderCommand(st.ID)
	}
}
