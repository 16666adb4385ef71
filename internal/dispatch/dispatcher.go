// Package dispatch tracks which dashboard module is active for a session.
package dispatch

import "github.com/Veraticus/lifedash/internal/model"

// Dispatcher is the active-module state machine.
//
// It starts on the welcome module and moves to whatever module a classified
// intent names, except welcome itself: once left, welcome is only reachable
// again through Reset. A Dispatcher belongs to one session and is not safe for
// concurrent use.
type Dispatcher struct {
	history []model.Module
	current model.Module
}

// New returns a dispatcher showing the welcome module.
func New() *Dispatcher {
	return &Dispatcher{current: model.Welcome}
}

// Current returns the active module.
func (d *Dispatcher) Current() model.Module {
	return d.current
}

// Apply moves to the intent's module and reports whether a transition happened.
// Welcome intents and intents naming an unknown module are ignored, as is an
// intent for the module already active.
func (d *Dispatcher) Apply(in model.Intent) bool {
	return d.transition(in.Module)
}

func (d *Dispatcher) transition(to model.Module) bool {
	if to == model.Welcome || !to.Valid() || to == d.current {
		return false
	}
	d.current = to
	d.history = append(d.history, to)
	return true
}

// Reset returns to the welcome module.
func (d *Dispatcher) Reset() {
	if d.current == model.Welcome {
		return
	}
	d.current = model.Welcome
	d.history = append(d.history, model.Welcome)
}

// History returns every module entered since New, oldest first.
func (d *Dispatcher) History() []model.Module {
	out := make([]model.Module, len(d.history))
	copy(out, d.history)
	return out
}
