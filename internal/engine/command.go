// internal/engine/command.go
package engine

import "github.com/grichal/desingPatterns/internal/command"

type requestType int

const (
	reqExecute requestType = iota
	reqSnapshot
)

type request struct {
	Type requestType
	Cmd  command.Command // used when Type == reqExecute
	Args []any           // used when Type == reqExecute
	Resp chan *Result    // loop sends the result back here
}

// Result is what the loop reports for one request.
type Result struct {
	Value  any      // returned by the command, nil for snapshots
	Orders []string // collection after the request
}
