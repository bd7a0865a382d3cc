package buzzin

import (
	"log/slog"

	"github.com/google/uuid"
)

// Arbiter is the only owner of the arbitration State.
// It is not safe for concurrent use: feed it from a single consumer, i.e. the Bus.
type Arbiter struct {
	registry *Registry
	state    State
	round    string

	// NewRoundID mints the id of every answering round
	NewRoundID func() string

	hooks []TransitionHook
}

func NewArbiter(registry *Registry) *Arbiter {
	a := &Arbiter{
		registry:   registry,
		state:      ConfiguringParticipant{Slot: 0},
		round:      "",
		NewRoundID: uuid.NewString,
		hooks:      make([]TransitionHook, 0),
	}
	a.applyStatuses()

	return a
}

func (a Arbiter) State() State {
	return a.state
}

// Round is the id of the current answering round, empty outside Answering
func (a Arbiter) Round() string {
	return a.round
}

func (a Arbiter) Registry() *Registry {
	return a.registry
}

// Handle implements Handler
func (a *Arbiter) Handle(e Event) {
	switch e.Signal {
	case SignalPrimary:
		a.Primary(e.Device)
	case SignalSkip:
		a.Skip(e.Device)
	case SignalReconfigure:
		a.Reconfigure(e.Device)
	}
}

// Primary handles a press of the primary button of dev.
// Returns whether the state changed.
func (a *Arbiter) Primary(dev DeviceID) bool {
	switch st := a.state.(type) {
	case ConfiguringParticipant:
		if err := a.registry.Assign(st.Slot, dev); err != nil {
			slog.Debug("Ignoring device during setup", slog.String("device", string(dev)), slog.Any("error", err))
			return false
		}
		return a.transition(a.after(st.Slot), dev, SignalPrimary)

	case ConfiguringModerator:
		if err := a.registry.AssignModerator(dev); err != nil {
			slog.Debug("Ignoring device during setup", slog.String("device", string(dev)), slog.Any("error", err))
			return false
		}
		return a.transition(InPlay{}, dev, SignalPrimary)

	case InPlay:
		slot, ok := a.registry.ParticipantForDevice(dev)
		if !ok {
			slog.Debug("Ignoring buzz", slog.String("device", string(dev)), slog.Any("error", ErrUnknownDevice))
			return false
		}
		return a.transition(Answering{Slot: slot}, dev, SignalPrimary)

	case Answering:
		if !a.registry.IsModerator(dev) {
			slog.Debug("Buzz locked out", slog.String("device", string(dev)), slog.Int("answering", st.Slot))
			return false
		}
		return a.transition(InPlay{}, dev, SignalPrimary)
	}

	return false
}

// Skip handles the cancel control.
// During setup it leaves the current slot without a device, while answering it clears the round.
func (a *Arbiter) Skip(dev DeviceID) bool {
	switch st := a.state.(type) {
	case ConfiguringParticipant:
		return a.transition(a.after(st.Slot), dev, SignalSkip)

	case ConfiguringModerator:
		return a.transition(InPlay{}, dev, SignalSkip)

	case Answering:
		return a.transition(InPlay{}, dev, SignalSkip)
	}

	return false
}

// Reconfigure drops every device binding and restarts the setup phase
func (a *Arbiter) Reconfigure(dev DeviceID) bool {
	a.registry.Reset()

	return a.transition(ConfiguringParticipant{Slot: 0}, dev, SignalReconfigure)
}

// after is the setup state that follows slot
func (a Arbiter) after(slot int) State {
	if slot+1 < a.registry.Len() {
		return ConfiguringParticipant{Slot: slot + 1}
	}

	return ConfiguringModerator{}
}

func (a *Arbiter) transition(next State, dev DeviceID, signal Signal) bool {
	from := a.state
	a.state = next

	_, answering := next.(Answering)
	if answering {
		a.round = a.NewRoundID()
	} else {
		a.round = ""
	}

	a.applyStatuses()

	slog.Info("State changed",
		slog.String("from", from.String()),
		slog.String("to", next.String()),
		slog.String("device", string(dev)),
		slog.String("signal", signal.String()),
	)

	a.runHooks(Transition{
		From:   from,
		To:     next,
		Device: dev,
		Signal: signal,
		Round:  a.round,
		Cue:    answering,
	})

	return true
}

// applyStatuses recomputes every cached status from the current state
func (a *Arbiter) applyStatuses() {
	a.registry.UpdateStatuses(func(slot int) Status {
		return statusOf(a.state, slot)
	})
}
