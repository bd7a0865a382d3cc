// Package evdev reads buzzers from Linux input devices.
package evdev

import "errors"

var ErrUnsupported = errors.New("input devices are only supported on linux")

type SourceConfig struct {
	// Grab takes exclusive access, so the buzzers stop moving the desktop pointer
	Grab bool
	// Exclude lists device paths that are never monitored
	Exclude []string
}

type SourceConfigCb func(config *SourceConfig)

func newSourceConfig(configs ...SourceConfigCb) *SourceConfig {
	config := &SourceConfig{
		Grab:    false,
		Exclude: []string{},
	}
	for _, cb := range configs {
		cb(config)
	}

	return config
}
