package config

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"github.com/couchcryptid/tc-track-viz/internal/domain"
)

// namedColors covers the CSS color names the tool's defaults and docs use.
// Anything else can be given as #rgb or #rrggbb.
var namedColors = map[string]color.RGBA{
	"black":   {0x00, 0x00, 0x00, 0xff},
	"white":   {0xff, 0xff, 0xff, 0xff},
	"gray":    {0x80, 0x80, 0x80, 0xff},
	"red":     {0xff, 0x00, 0x00, 0xff},
	"crimson": {0xdc, 0x14, 0x3c, 0xff},
	"orange":  {0xff, 0xa5, 0x00, 0xff},
	"gold":    {0xff, 0xd7, 0x00, 0xff},
	"green":   {0x00, 0x80, 0x00, 0xff},
	"teal":    {0x00, 0x80, 0x80, 0xff},
	"blue":    {0x00, 0x00, 0xff, 0xff},
	"navy":    {0x00, 0x00, 0x80, 0xff},
	"purple":  {0x80, 0x00, 0x80, 0xff},
	"magenta": {0xff, 0x00, 0xff, 0xff},
}

// ParseColor resolves a color name or #hex string, wrapping
// domain.ErrInvalidConfig for anything unrecognized.
func ParseColor(name string) (color.RGBA, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	if c, ok := namedColors[key]; ok {
		return c, nil
	}
	if strings.HasPrefix(key, "#") {
		return parseHexColor(key)
	}
	return color.RGBA{}, fmt.Errorf("unknown color %q: %w", name, domain.ErrInvalidConfig)
}

func parseHexColor(s string) (color.RGBA, error) {
	hex := s[1:]
	switch len(hex) {
	case 3:
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	case 6:
	default:
		return color.RGBA{}, fmt.Errorf("bad hex color %q: %w", s, domain.ErrInvalidConfig)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("bad hex color %q: %w", s, domain.ErrInvalidConfig)
	}
	return color.RGBA{
		R: uint8(v >> 16),
		G: uint8(v >> 8),
		B: uint8(v),
		A: 0xff,
	}, nil
}
