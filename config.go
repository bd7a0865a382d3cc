package buzzin

import (
	"fmt"
)

type ParticipantConfig struct {
	// Name defaults to "Player N" in the configured language
	Name  string `mapstructure:"name"`
	Color string `mapstructure:"color"`
}

type Config struct {
	Participants []ParticipantConfig
	// Moderator name, defaults to "Host" in the configured language
	Moderator string
	// Language of the labels, e.g. "en" or "ru"
	Language    string
	BusCapacity int
	Signals     SignalMap
}

type ConfigCb func(config *Config)

// DefaultConfig has three unnamed participants
func DefaultConfig() Config {
	return Config{
		Participants: defaultParticipants(3),
		Moderator:    "",
		Language:     "en",
		BusCapacity:  DefaultBusCapacity,
		Signals:      DefaultSignalMap,
	}
}

func defaultParticipants(n int) []ParticipantConfig {
	out := make([]ParticipantConfig, n)
	for i := range out {
		out[i].Color = DefaultColors[i%len(DefaultColors)]
	}

	return out
}

// WithParticipants replaces the participants with one per name, coloured with DefaultColors
func WithParticipants(names ...string) ConfigCb {
	return func(config *Config) {
		config.Participants = defaultParticipants(len(names))
		for i, name := range names {
			config.Participants[i].Name = name
		}
	}
}

// WithParticipantCount replaces the participants with n unnamed ones
func WithParticipantCount(n int) ConfigCb {
	return func(config *Config) {
		if n < 0 {
			n = 0
		}
		config.Participants = defaultParticipants(n)
	}
}

func (c Config) Validate() error {
	if len(c.Participants) == 0 {
		return ErrNoParticipants
	}

	for i, p := range c.Participants {
		if p.Color == "" {
			continue
		}
		if _, err := ParseColor(p.Color); err != nil {
			return fmt.Errorf("participant %d: %w", i+1, err)
		}
	}

	return nil
}

// Colors returns the square colour of every slot
func (c Config) Colors() []string {
	out := make([]string, len(c.Participants))
	for i, p := range c.Participants {
		out[i] = p.Color
		if out[i] == "" {
			out[i] = DefaultColors[i%len(DefaultColors)]
		}
	}

	return out
}
