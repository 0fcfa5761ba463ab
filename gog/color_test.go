package gog

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseColorWords(t *testing.T) {
	cases := []struct {
		name string
		want Color
	}{
		{"red", Color{255, 0, 0, 255}},
		{"green", Color{0, 255, 0, 255}},
		{"blue", Color{0, 0, 255, 255}},
		{"yellow", Color{255, 255, 0, 255}},
		{"magenta", Color{192, 0, 192, 255}},
		{"white", Color{255, 255, 255, 255}},
		{"GREEN", Color{0, 255, 0, 255}},
	}
	for _, tc := range cases {
		c, ok := parseColorArgs([]string{tc.name})
		assert.True(t, ok, tc.name)
		assert.Equal(t, tc.want, c, tc.name)
	}
}

func TestParseHexColor(t *testing.T) {
	// channel order is 0xAABBGGRR
	c, ok := parseColorArgs([]string{"hex", "0xa0ffa0ff"})
	assert.True(t, ok)
	assert.Equal(t, Color{R: 255, G: 160, B: 255, A: 160}, c)

	// same literal without the hex prefix keyword
	c, ok = parseColorArgs([]string{"0xff0000ff"})
	assert.True(t, ok)
	assert.Equal(t, Color{R: 255, G: 0, B: 0, A: 255}, c)

	c, ok = parseColorArgs([]string{"ff00ff00"})
	assert.True(t, ok)
	assert.Equal(t, Color{R: 0, G: 255, B: 0, A: 255}, c)
}

func TestParseColorInvalid(t *testing.T) {
	_, ok := parseColorArgs(nil)
	assert.False(t, ok)
	_, ok = parseColorArgs([]string{"hex"})
	assert.False(t, ok)
	_, ok = parseColorArgs([]string{"nosuchcolor"})
	assert.False(t, ok)
	_, ok = parseColorArgs([]string{"hex", "0xzz00zz00"})
	assert.False(t, ok)
}

func TestHexStringRoundTrip(t *testing.T) {
	c := Color{R: 255, G: 160, B: 255, A: 160}
	assert.Equal(t, "0xa0ffa0ff", c.HexString())

	parsed, ok := parseHexColor(c.HexString())
	assert.True(t, ok)
	assert.Equal(t, c, parsed)
}
