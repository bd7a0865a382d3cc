//go:build linux

package evdev

import (
	"fmt"
	"log/slog"
	"slices"

	goevdev "github.com/holoplot/go-evdev"

	"github.com/guslan/buzzin"
)

// Source enumerates the input devices under /dev/input that expose buttons or
// relative motion, i.e. mice and keyboards.
type Source struct {
	config *SourceConfig
}

func NewSource(configs ...SourceConfigCb) *Source {
	return &Source{config: newSourceConfig(configs...)}
}

// Devices implements buzzin.DeviceSource.
// Devices that cannot be opened are logged and skipped.
func (s *Source) Devices() ([]buzzin.Device, error) {
	paths, err := goevdev.ListDevicePaths()
	if err != nil {
		return nil, fmt.Errorf("listing input devices: %w", err)
	}

	devices := make([]buzzin.Device, 0, len(paths))
	for _, p := range paths {
		if slices.Contains(s.config.Exclude, p.Path) {
			continue
		}

		dev, err := goevdev.Open(p.Path)
		if err != nil {
			slog.Warn("Error opening input device", slog.String("path", p.Path), slog.Any("error", err))
			continue
		}

		if !isCapable(dev) {
			dev.Close()
			continue
		}

		if s.config.Grab {
			if err := dev.Grab(); err != nil {
				slog.Warn("Error grabbing input device", slog.String("path", p.Path), slog.Any("error", err))
			}
		}

		devices = append(devices, &device{
			dev:  dev,
			path: p.Path,
			name: p.Name,
		})
	}

	return devices, nil
}

func isCapable(dev *goevdev.InputDevice) bool {
	for _, t := range dev.CapableTypes() {
		if t == goevdev.EV_KEY || t == goevdev.EV_REL {
			return true
		}
	}

	return false
}

type device struct {
	dev  *goevdev.InputDevice
	path string
	name string
}

// ID implements buzzin.Device. The device node path is stable for the life of the device.
func (d *device) ID() buzzin.DeviceID {
	return buzzin.DeviceID(d.path)
}

func (d *device) Name() string {
	return d.name
}

// ReadEvent implements buzzin.Device.
func (d *device) ReadEvent() (buzzin.InputEvent, error) {
	e, err := d.dev.ReadOne()
	if err != nil {
		return buzzin.InputEvent{}, err
	}

	return buzzin.InputEvent{
		Type:  uint16(e.Type),
		Code:  uint16(e.Code),
		Value: e.Value,
	}, nil
}

func (d *device) Close() error {
	return d.dev.Close()
}
