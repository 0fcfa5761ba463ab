package gog

import (
	"fmt"
	"strconv"
	"strings"
)

// Color is an RGBA color with 8-bit channels.
type Color struct {
	R uint8
	G uint8
	B uint8
	A uint8
}

// DefaultColor is the color every color-bearing field falls back to when the
// source text never set it.
var DefaultColor = Color{R: 255, G: 0, B: 0, A: 255}

// HexString returns the color in overlay hex notation, 0xAABBGGRR.
func (c Color) HexString() string {
	return fmt.Sprintf("0x%02x%02x%02x%02x", c.A, c.B, c.G, c.R)
}

// namedColors holds the color words accepted by color attributes.
var namedColors = map[string]Color{
	"black":   {0, 0, 0, 255},
	"white":   {255, 255, 255, 255},
	"red":     {255, 0, 0, 255},
	"green":   {0, 255, 0, 255},
	"blue":    {0, 0, 255, 255},
	"yellow":  {255, 255, 0, 255},
	"cyan":    {0, 255, 255, 255},
	"magenta": {192, 0, 192, 255},
	"orange":  {255, 165, 0, 255},
	"gray":    {128, 128, 128, 255},
	"grey":    {128, 128, 128, 255},
	"purple":  {160, 32, 240, 255},
	"brown":   {165, 42, 42, 255},
}

// parseColorArgs resolves a color attribute's arguments: a color word, a
// bare 0xAABBGGRR literal, or the two-token "hex 0xAABBGGRR" form.
func parseColorArgs(args []string) (Color, bool) {
	if len(args) == 0 {
		return Color{}, false
	}
	first := strings.ToLower(args[0])
	if first == "hex" {
		if len(args) < 2 {
			return Color{}, false
		}
		return parseHexColor(args[1])
	}
	if c, ok := namedColors[first]; ok {
		return c, true
	}
	return parseHexColor(args[0])
}

// parseHexColor parses a 0xAABBGGRR literal, with or without the 0x prefix.
func parseHexColor(s string) (Color, bool) {
	s = strings.TrimPrefix(strings.ToLower(strings.TrimSpace(s)), "0x")
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return Color{}, false
	}
	return Color{
		R: uint8(v & 0xff),
		G: uint8((v >> 8) & 0xff),
		B: uint8((v >> 16) & 0xff),
		A: uint8((v >> 24) & 0xff),
	}, true
}
