package evdev

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewSourceConfig(t *testing.T) {
	config := newSourceConfig()
	assert.False(t, config.Grab)
	assert.Empty(t, config.Exclude)

	config = newSourceConfig(func(config *SourceConfig) {
		config.Grab = true
		config.Exclude = append(config.Exclude, "/dev/input/event3")
	})
	assert.True(t, config.Grab)
	assert.Equal(t, []string{"/dev/input/event3"}, config.Exclude)
}
