// internal/engine/loop.go
package engine

import (
	"context"
	"errors"
	"log"

	"github.com/grichal/desingPatterns/internal/command"
)

var ErrStopped = errors.New("engine stopped")

// Engine owns a command.Manager and is the only goroutine that touches it.
// Requests are handled one at a time in arrival order.
type Engine struct {
	manager *command.Manager
	reqs    chan request
	done    chan struct{}
}

func NewEngine(buffer int) *Engine {
	return &Engine{
		manager: command.NewManager(),
		reqs:    make(chan request, buffer),
		done:    make(chan struct{}),
	}
}

func (e *Engine) Run(ctx context.Context) {
	defer close(e.done)

	for {
		select {
		case req := <-e.reqs:
			switch req.Type {

			case reqExecute:
				log.Printf("engine: executing %s", req.Cmd.Name())
				val := e.manager.Execute(req.Cmd, req.Args...)
				req.Resp <- &Result{Value: val, Orders: e.manager.Orders()}

			case reqSnapshot:
				req.Resp <- &Result{Orders: e.manager.Orders()}
			}

		case <-ctx.Done():
			return
		}
	}
}

// Done is closed once Run has returned.
func (e *Engine) Done() <-chan struct{} {
	return e.done
}

// Execute hands cmd to the loop and waits for the result.
func (e *Engine) Execute(ctx context.Context, cmd command.Command, args ...any) (*Result, error) {
	return e.submit(ctx, request{Type: reqExecute, Cmd: cmd, Args: args})
}

func (e *Engine) Snapshot(ctx context.Context) ([]string, error) {
	res, err := e.submit(ctx, request{Type: reqSnapshot})
	if err != nil {
		return nil, err
	}
	return res.Orders, nil
}

func (e *Engine) submit(ctx context.Context, req request) (*Result, error) {
	// buffered so the loop never blocks on a caller that gave up
	req.Resp = make(chan *Result, 1)

	select {
	case e.reqs <- req:
	case <-e.done:
		return nil, ErrStopped
	case <-ctx.Done():
		return nil, ctx.Err()
	}

	select {
	case res := <-req.Resp:
		return res, nil
	case <-e.done:
		// the loop may have answered just before exiting
		select {
		case res := <-req.Resp:
			return res, nil
		default:
			return nil, ErrStopped
		}
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}
