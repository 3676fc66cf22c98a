// Package colormath holds the small set of color operations the palette and
// daylight code need. Colors travel as colorful.Color (float RGB in 0..1) and
// are exchanged externally as lowercase "#rrggbb" strings.
package colormath

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

const (
	Black = "#000000"
	White = "#ffffff"

	DefaultLighten = 0.15
	DefaultDarken  = 0.3
)

var hexColorRE = regexp.MustCompile(`^#?[0-9a-fA-F]{6}$`)

// Normalize trims s and returns it as lowercase "#rrggbb". The second result
// is false when s is not exactly six hex digits with an optional leading '#'.
func Normalize(s string) (string, bool) {
	s = strings.TrimSpace(s)
	if !hexColorRE.MatchString(s) {
		return "", false
	}
	if !strings.HasPrefix(s, "#") {
		s = "#" + s
	}
	return strings.ToLower(s), true
}

// HexToRGB parses a hex color. Anything that does not normalize yields black.
func HexToRGB(s string) colorful.Color {
	hex, ok := Normalize(s)
	if !ok {
		hex = Black
	}
	// Divide by 255 rather than scale by 1/255 so RGBToHex truncation
	// round-trips every channel exactly.
	var ch [3]float64
	for i := range ch {
		n, err := strconv.ParseUint(hex[1+2*i:3+2*i], 16, 8)
		if err != nil {
			return colorful.Color{}
		}
		ch[i] = float64(n) / 255.0
	}
	return colorful.Color{R: ch[0], G: ch[1], B: ch[2]}
}

// RGBToHex formats c as "#rrggbb", truncating each channel to 0..255.
func RGBToHex(c colorful.Color) string {
	return fmt.Sprintf("#%02x%02x%02x", channel(c.R), channel(c.G), channel(c.B))
}

func channel(v float64) int {
	n := int(v * 255)
	if n < 0 {
		return 0
	}
	if n > 255 {
		return 255
	}
	return n
}

// Blend interpolates linearly from a to b. t is not clamped.
func Blend(a, b colorful.Color, t float64) colorful.Color {
	return a.BlendRgb(b, t)
}

// BlendHex is Blend over hex strings.
func BlendHex(a, b string, t float64) string {
	return RGBToHex(Blend(HexToRGB(a), HexToRGB(b), t))
}

// Lighten moves hex toward white by amount (DefaultLighten is the usual choice).
func Lighten(hex string, amount float64) string {
	return BlendHex(hex, White, amount)
}

// Darken moves hex toward black by amount (DefaultDarken is the usual choice).
func Darken(hex string, amount float64) string {
	return BlendHex(hex, Black, amount)
}

// RelativeLuminance returns the WCAG relative luminance of hex, in 0..1.
func RelativeLuminance(hex string) float64 {
	r, g, b := HexToRGB(hex).LinearRgb()
	return 0.2126*r + 0.7152*g + 0.0722*b
}
