package command

import (
	"io"
	"log"
	"os"

	"github.com/grichal/desingPatterns/internal/order"
)

// Func is the behavior a Command carries. It receives the manager's
// collection followed by whatever arguments were passed to Execute.
type Func func(orders *order.List, args ...any) any

// Command wraps one behavior. The zero value does nothing.
type Command struct {
	name string
	fn   Func
}

func New(name string, fn Func) Command {
	return Command{name: name, fn: fn}
}

func (c Command) Name() string {
	return c.name
}

func (c Command) Invoke(orders *order.List, args ...any) any {
	if c.fn == nil {
		return nil
	}
	return c.fn(orders, args...)
}

var logger = log.New(os.Stdout, "", 0)

// SetOutput redirects the status lines commands print and returns the
// previous destination.
func SetOutput(w io.Writer) io.Writer {
	prev := logger.Writer()
	logger.SetOutput(w)
	return prev
}
