package buzzin

import (
	"context"
	"fmt"
	"log/slog"
)

// Game owns the registry, the arbiter and the bus, and drives the display and
// the buzzer from the arbiter's transitions.
type Game struct {
	Registry *Registry
	Arbiter  *Arbiter
	Bus      *Bus
	Labels   *Labels

	Display Display
	Buzzer  Buzzer

	config   Config
	colors   []string
	isBooted bool
}

func NewGame(display Display, buzzer Buzzer, configs ...ConfigCb) (*Game, error) {
	config := DefaultConfig()
	for _, cb := range configs {
		cb(&config)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	labels := NewLabels(config.Language)

	names := make([]string, len(config.Participants))
	for i, p := range config.Participants {
		names[i] = p.Name
		if names[i] == "" {
			names[i] = labels.PlayerName(i)
		}
	}
	moderator := config.Moderator
	if moderator == "" {
		moderator = labels.ModeratorName()
	}

	registry, err := NewRegistry(names, moderator)
	if err != nil {
		return nil, err
	}

	g := &Game{
		Registry: registry,
		Arbiter:  NewArbiter(registry),
		Bus:      NewBus(config.BusCapacity),
		Labels:   labels,

		Display: display,
		Buzzer:  buzzer,

		config:   config,
		colors:   config.Colors(),
		isBooted: false,
	}
	g.Arbiter.AddTransitionHook(g.onTransition)

	return g, nil
}

func (g Game) Config() Config {
	return g.config
}

// Colors returns the square colour of every slot
func (g Game) Colors() []string {
	return g.colors
}

// Boot initializes the display and the buzzer, subscribes the arbiter to the
// bus and presents the initial state.
// If the game was already booted, this method is a noop
func (g *Game) Boot() error {
	if g.isBooted {
		return nil
	}

	if sa, ok := g.Display.(SlotAware); ok {
		sa.SetSlots(g.View().Slots)
	}

	if err := g.Display.Boot(); err != nil {
		return err
	}

	if err := g.Buzzer.Boot(); err != nil {
		return err
	}

	g.Bus.Subscribe(g.Arbiter.Handle)
	g.isBooted = true

	return g.present()
}

// Watch starts monitoring every device of source with the configured signals
func (g *Game) Watch(ctx context.Context, source DeviceSource) ([]Device, error) {
	return g.WatchSignals(ctx, source, g.config.Signals)
}

// WatchSignals starts monitoring every device of source, mapping their keys with signals
func (g *Game) WatchSignals(ctx context.Context, source DeviceSource, signals SignalMap) ([]Device, error) {
	devices, err := source.Devices()
	if err != nil {
		return nil, err
	}

	slog.Info("Watching devices", slog.Int("count", len(devices)))
	Monitor(ctx, g.Bus, devices, signals)

	return devices, nil
}

// Pump delivers the pending events on the calling goroutine
func (g *Game) Pump() int {
	if !g.isBooted {
		return 0
	}

	return g.Bus.Pump()
}

// Loop delivers events until ctx is done
func (g *Game) Loop(ctx context.Context) error {
	if !g.isBooted {
		return ErrGameIsNotBooted
	}

	return g.Bus.Run(ctx)
}

// Dispatch handles a signal coming from the UI itself, e.g. a button.
// It must be called from the goroutine that pumps the bus.
func (g *Game) Dispatch(signal Signal) {
	if !g.isBooted {
		return
	}

	g.Bus.Dispatch(Event{Signal: signal})
}

// View is the snapshot of the current state
func (g *Game) View() View {
	return NewView(g.Arbiter, g.Labels, g.colors)
}

func (g *Game) onTransition(t Transition) {
	if _, ok := t.From.(Answering); ok {
		g.Buzzer.Stop()
	}

	if err := g.present(); err != nil {
		slog.Error("Error presenting the game", slog.Any("error", err))
	}

	if t.Cue {
		slog.Info("Buzz", slog.String("round", t.Round), slog.String("device", string(t.Device)))
		g.Buzzer.Play()
	}
}

func (g *Game) present() error {
	return Present(g.Display, g.View())
}
