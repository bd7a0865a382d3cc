package buzzin

// Transition describes a single change of the arbitration state
type Transition struct {
	From, To State
	// Device that caused the transition, empty for UI actions
	Device DeviceID
	Signal Signal
	// Round is set while To is Answering
	Round string
	// Cue is true when the audio cue must be played
	Cue bool
}

type TransitionHook func(t Transition)

// AddTransitionHook adds a hook that will run after every transition of the arbiter
func (a *Arbiter) AddTransitionHook(h TransitionHook) int {
	a.hooks = append(a.hooks, h)

	return len(a.hooks)
}

// runHooks runs all the hooks in registration order
func (a *Arbiter) runHooks(t Transition) {
	for _, h := range a.hooks {
		h(t)
	}
}
