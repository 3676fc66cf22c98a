package colormath

import (
	"fmt"
	"testing"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize(t *testing.T) {
	cases := []struct {
		in   string
		want string
		ok   bool
	}{
		{"#7AA2F7", "#7aa2f7", true},
		{"  7aa2f7 ", "#7aa2f7", true},
		{"#abc", "", false},
		{"#12345g", "", false},
		{"##123456", "", false},
		{"", "", false},
	}
	for _, tc := range cases {
		got, ok := Normalize(tc.in)
		assert.Equal(t, tc.ok, ok, "input %q", tc.in)
		assert.Equal(t, tc.want, got, "input %q", tc.in)
	}
}

func TestHexToRGBFallsBackToBlack(t *testing.T) {
	assert.Equal(t, colorful.Color{}, HexToRGB("not a color"))
	assert.Equal(t, colorful.Color{}, HexToRGB(""))
	assert.Equal(t, colorful.Color{R: 1, G: 0, B: 0}, HexToRGB("FF0000"))
}

func TestHexRoundTrip(t *testing.T) {
	for n := 0; n < 256; n++ {
		s := fmt.Sprintf("#%02x%02x%02x", n, 255-n, n/2)
		require.Equal(t, s, RGBToHex(HexToRGB(s)))
	}
	assert.Equal(t, "#c0caf5", RGBToHex(HexToRGB("C0CAF5")))
}

func TestRGBToHexTruncatesAndClamps(t *testing.T) {
	assert.Equal(t, "#7f7f7f", RGBToHex(colorful.Color{R: 0.5, G: 0.5, B: 0.5}))
	assert.Equal(t, "#ff0000", RGBToHex(colorful.Color{R: 1.7, G: -0.2, B: 0}))
}

func TestBlend(t *testing.T) {
	black, white := HexToRGB(Black), HexToRGB(White)
	assert.Equal(t, "#7f7f7f", RGBToHex(Blend(black, white, 0.5)))
	assert.Equal(t, black, Blend(black, white, 0))
	assert.Equal(t, white, Blend(black, white, 1))

	// t is not clamped by the primitive.
	over := Blend(black, white, 2)
	assert.InDelta(t, 2.0, over.R, 1e-12)
}

func TestLightenDarken(t *testing.T) {
	assert.Equal(t, "#7f7f7f", Lighten("#000000", 0.5))
	assert.Equal(t, "#ffffff", Lighten("#ffffff", DefaultLighten))
	assert.Equal(t, "#b2b2b2", Darken("#ffffff", DefaultDarken))
	assert.Equal(t, "#000000", Darken("#123456", 1))
}

func TestRelativeLuminance(t *testing.T) {
	assert.InDelta(t, 1.0, RelativeLuminance(White), 1e-9)
	assert.InDelta(t, 0.0, RelativeLuminance(Black), 1e-12)
	assert.InDelta(t, 0.2126, RelativeLuminance("#ff0000"), 1e-9)
	assert.Less(t, RelativeLuminance("#1a1b26"), 0.46)
	assert.Greater(t, RelativeLuminance("#eff1f5"), 0.46)
}
