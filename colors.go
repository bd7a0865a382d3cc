package buzzin

import (
	"fmt"
	"strconv"
	"strings"
)

const DefaultColor = "gray"

// DefaultColors are the square colours of the first participants
var DefaultColors = []string{"red", "yellow", "violet", "orange"}

// Highlight border colours
const (
	ConfigColor = "blue"
	AnswerColor = "green"
)

var namedColors = map[string]uint32{
	"black":  0x000000,
	"white":  0xFFFFFF,
	"gray":   0x828282,
	"red":    0xE62937,
	"orange": 0xFFA100,
	"yellow": 0xFDF900,
	"gold":   0xFFCB00,
	"green":  0x00E430,
	"lime":   0x009E2F,
	"blue":   0x0079F1,
	"sky":    0x66BFFF,
	"purple": 0xC87AFF,
	"violet": 0x873CBE,
	"pink":   0xFF6DC2,
	"maroon": 0xBE2137,
	"brown":  0x7F6A4F,
}

// ParseColor accepts a colour name or a #RRGGBB value and returns its 0xRRGGBB value
func ParseColor(color string) (uint32, error) {
	c := strings.ToLower(strings.TrimSpace(color))
	if rgb, ok := namedColors[c]; ok {
		return rgb, nil
	}

	if strings.HasPrefix(c, "#") && len(c) == 7 {
		rgb, err := strconv.ParseUint(c[1:], 16, 32)
		if err == nil {
			return uint32(rgb), nil
		}
	}

	return 0, fmt.Errorf("unknown color %q", color)
}

// ColorHex returns color as #RRGGBB, gray when it cannot be parsed
func ColorHex(color string) string {
	rgb, err := ParseColor(color)
	if err != nil {
		rgb = namedColors[DefaultColor]
	}

	return fmt.Sprintf("#%06X", rgb)
}
