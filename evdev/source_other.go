//go:build !linux

package evdev

import "github.com/guslan/buzzin"

// Source is only available on Linux
type Source struct {
	config *SourceConfig
}

func NewSource(configs ...SourceConfigCb) *Source {
	return &Source{config: newSourceConfig(configs...)}
}

// Devices implements buzzin.DeviceSource.
func (s *Source) Devices() ([]buzzin.Device, error) {
	return nil, ErrUnsupported
}

