// Package views holds the per-screen state machines. A view owns the data
// one screen renders, loads it through the repository, and funnels every
// mutation back through a full reload rather than patching local state.
//
// Views follow the single-threaded event model of the UI they back: they are
// not safe for concurrent use and expect to be driven from one goroutine.
// Concurrent mutations on the same screen are not coordinated.
package views

import "fmt"

// Phase is the lifecycle state of a screen.
type Phase int

const (
	// PhaseIdle is the initial state before the first load.
	PhaseIdle Phase = iota
	// PhaseLoading covers the first load of the screen's backing queries.
	PhaseLoading
	// PhaseReady means data is on screen and actions are enabled.
	PhaseReady
	// PhaseMutating covers an in-flight mutation and its reload.
	PhaseMutating
	// PhaseFailed means the initial load failed and nothing is on screen.
	PhaseFailed
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseLoading:
		return "loading"
	case PhaseReady:
		return "ready"
	case PhaseMutating:
		return "mutating"
	case PhaseFailed:
		return "failed"
	default:
		return fmt.Sprintf("phase(%d)", int(p))
	}
}

// Confirmer asks for approval before a destructive action. Declining
// performs no request at all.
type Confirmer interface {
	Confirm(prompt string) bool
}

// ConfirmFunc adapts a plain function to Confirmer.
type ConfirmFunc func(prompt string) bool

// Confirm implements Confirmer.
func (f ConfirmFunc) Confirm(prompt string) bool {
	return f(prompt)
}
