package buzzin

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
)

// Linux input event types and codes used by the arbiter.
// See linux/input-event-codes.h
const (
	EvKey uint16 = 0x01
	EvRel uint16 = 0x02

	KeyEsc   uint16 = 1
	KeyEnter uint16 = 28
	KeyR     uint16 = 19
	KeySpace uint16 = 57
	BtnLeft  uint16 = 0x110
	BtnRight uint16 = 0x111
)

// InputEvent is a raw event as produced by an input device
type InputEvent struct {
	Type  uint16
	Code  uint16
	Value int32
}

// IsPress reports whether e is a key or button going down
func (e InputEvent) IsPress() bool {
	return e.Type == EvKey && e.Value == 1
}

type Device interface {
	ID() DeviceID
	Name() string
	// ReadEvent blocks until the next event
	ReadEvent() (InputEvent, error)
	Close() error
}

// DeviceSource enumerates the devices capable of producing button events
type DeviceSource interface {
	Devices() ([]Device, error)
}

// SignalMap maps a key code to its meaning
type SignalMap map[uint16]Signal

// DefaultSignalMap is used for input devices shared with the contestants.
// Reconfiguring is left to the UI, so a contestant's keyboard cannot reset the game.
var DefaultSignalMap = SignalMap{
	BtnLeft: SignalPrimary,
	KeyEsc:  SignalSkip,
}

// ButtonSignalMap only accepts buzzes
var ButtonSignalMap = SignalMap{
	BtnLeft: SignalPrimary,
}

// Lookup returns the signal for a press event
func (m SignalMap) Lookup(e InputEvent) (Signal, bool) {
	if !e.IsPress() {
		return 0, false
	}

	s, ok := m[e.Code]
	return s, ok
}

// Monitor starts one reader per device. Each reader blocks on its device and
// publishes mapped presses onto bus. A reader stops when its device fails or
// when ctx is done; there is no other cleanup.
func Monitor(ctx context.Context, bus *Bus, devices []Device, signals SignalMap) *sync.WaitGroup {
	if signals == nil {
		signals = DefaultSignalMap
	}

	wg := &sync.WaitGroup{}
	for _, dev := range devices {
		wg.Add(1)
		go func(dev Device) {
			defer wg.Done()
			monitorDevice(ctx, bus, dev, signals)
		}(dev)
	}

	return wg
}

func monitorDevice(ctx context.Context, bus *Bus, dev Device, signals SignalMap) {
	slog.Info("Monitoring device", slog.String("device", string(dev.ID())), slog.String("name", dev.Name()))

	for {
		e, err := dev.ReadEvent()
		if err != nil {
			if errors.Is(err, io.EOF) {
				slog.Info("Device closed", slog.String("device", string(dev.ID())))
			} else {
				slog.Error("Error reading device", slog.String("device", string(dev.ID())), slog.Any("error", err))
			}
			return
		}

		signal, ok := signals.Lookup(e)
		if !ok {
			continue
		}

		if err := bus.Publish(ctx, Event{Device: dev.ID(), Signal: signal}); err != nil {
			slog.Debug("Stopped monitoring device", slog.String("device", string(dev.ID())), slog.Any("error", err))
			return
		}
	}
}

// InMemoryDevice is a device fed programmatically
type InMemoryDevice struct {
	id     DeviceID
	name   string
	events chan InputEvent
	once   sync.Once
}

func NewInMemoryDevice(id DeviceID) *InMemoryDevice {
	return &InMemoryDevice{
		id:     id,
		name:   string(id),
		events: make(chan InputEvent, 16),
	}
}

func (d *InMemoryDevice) ID() DeviceID {
	return d.id
}

func (d *InMemoryDevice) Name() string {
	return d.name
}

// ReadEvent implements Device. It returns io.EOF once the device is closed.
func (d *InMemoryDevice) ReadEvent() (InputEvent, error) {
	e, ok := <-d.events
	if !ok {
		return InputEvent{}, io.EOF
	}

	return e, nil
}

// Send queues a raw event
func (d *InMemoryDevice) Send(e InputEvent) {
	d.events <- e
}

// Press queues a press and a release of code
func (d *InMemoryDevice) Press(code uint16) {
	d.Send(InputEvent{Type: EvKey, Code: code, Value: 1})
	d.Send(InputEvent{Type: EvKey, Code: code, Value: 0})
}

func (d *InMemoryDevice) Close() error {
	d.once.Do(func() {
		close(d.events)
	})

	return nil
}

// InMemorySource is a fixed list of devices
type InMemorySource []Device

func (s InMemorySource) Devices() ([]Device, error) {
	return s, nil
}

type joinedSource []DeviceSource

// JoinSources merges several sources. A failing source is logged and skipped,
// the join only fails when every source does.
func JoinSources(sources ...DeviceSource) DeviceSource {
	return joinedSource(sources)
}

func (j joinedSource) Devices() ([]Device, error) {
	var all []Device
	var errs []error
	for _, s := range j {
		devices, err := s.Devices()
		if err != nil {
			slog.Warn("Error listing devices", slog.Any("error", err))
			errs = append(errs, err)
			continue
		}
		all = append(all, devices...)
	}

	if len(errs) > 0 && len(errs) == len(j) {
		return nil, errors.Join(errs...)
	}

	return all, nil
}
