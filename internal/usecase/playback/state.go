package playback

import (
	"sync/atomic"
)

// Phase is the replay state of one control
type Phase string

const (
	PhaseIdle       Phase = "idle"
	PhaseRequesting Phase = "requesting"
	PhasePlaying    Phase = "playing"
	PhaseError      Phase = "error"
)

// State is one published transition. Clip is the zero-based index of the
// clip being played and is only meaningful while Playing.
type State struct {
	Action  int    `json:"action"`
	Phase   Phase  `json:"phase"`
	Clip    int    `json:"clip"`
	Total   int    `json:"total"`
	Message string `json:"message,omitempty"`
}

// Busy reports whether the state keeps the control disabled
func (s State) Busy() bool {
	return s.Phase == PhaseRequesting || s.Phase == PhasePlaying
}

// Control is the replay affordance of one action item. Its disabled flag is
// the only guard against starting a second sequence while one runs.
type Control struct {
	id       int
	disabled atomic.Bool
	last     atomic.Pointer[State]
}

// NewControl returns an enabled, idle control for action id
func NewControl(id int) *Control {
	c := &Control{id: id}
	c.last.Store(&State{Action: id, Phase: PhaseIdle})
	return c
}

// ID returns the action index the control belongs to
func (c *Control) ID() int {
	return c.id
}

// Disabled reports whether a sequence currently owns the control
func (c *Control) Disabled() bool {
	return c.disabled.Load()
}

// State returns the last published state
func (c *Control) State() State {
	return *c.last.Load()
}

func (c *Control) disable() bool {
	return c.disabled.CompareAndSwap(false, true)
}

func (c *Control) enable() {
	c.disabled.Store(false)
}

func (c *Control) record(s State) {
	c.last.Store(&s)
}

// StatusIndicator shows replay progress to the user
type StatusIndicator interface {
	Publish(s State)
}

// StatusFunc adapts a function to StatusIndicator
type StatusFunc func(s State)

// Publish calls f(s)
func (f StatusFunc) Publish(s State) {
	f(s)
}

type multiStatus []StatusIndicator

func (m multiStatus) Publish(s State) {
	for _, ind := range m {
		ind.Publish(s)
	}
}

// MultiStatus fans states out to every indicator
func MultiStatus(indicators ...StatusIndicator) StatusIndicator {
	var out multiStatus
	for _, ind := range indicators {
		if ind != nil {
			out = append(out, ind)
		}
	}
	return out
}
