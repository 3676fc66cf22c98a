// Package theme turns an arbitrary terminal color theme into the semantic
// palette the bar draws with. Every lookup degrades to a built-in color, so a
// usable palette exists even with no theme file at all.
package theme

import (
	"fmt"
	"io"

	"swayzones/colormath"
)

// Palette is derived once at startup and passed by value afterwards.
type Palette struct {
	Background string
	Foreground string
	Accent     string
	Cursor     string
	Dim        string
	Surface    string
	Surface2   string
	Day        string
	Night      string
	Red        string

	DaylightContrast float64
	DaylightGamma    float64

	// Light is set when the background reads as a light theme.
	Light bool
}

// Built-in fallbacks (tokyonight).
const (
	fallbackBackground = "#1a1b26"
	fallbackForeground = "#a9b1d6"
	fallbackAccent     = "#7aa2f7"
	fallbackCursor     = "#c0caf5"
	fallbackRed        = "#ef4444"
)

// lightThreshold splits light and dark theme families by background luminance.
const lightThreshold = 0.46

// Derive maps theme keys to semantic roles. The ratios below were tuned by eye
// per theme family; keep them as they are.
func Derive(raw Raw) Palette {
	bg := Pick(raw, []string{"background"}, fallbackBackground)
	fg := Pick(raw, []string{"foreground", "color15", "color7"}, fallbackForeground)
	accent := Pick(raw, []string{"accent", "color4", "color12", "selection_background"}, fallbackAccent)
	cursor := Pick(raw, []string{"cursor", "selection_foreground", "foreground"}, fallbackCursor)

	light := colormath.RelativeLuminance(bg) > lightThreshold
	pick := func(lightVal, darkVal float64) float64 {
		if light {
			return lightVal
		}
		return darkVal
	}

	// Surfaces lean toward the foreground so they stay visible on either polarity.
	p := Palette{
		Background: bg,
		Foreground: fg,
		Accent:     accent,
		Cursor:     cursor,
		Dim:        colormath.BlendHex(fg, bg, pick(0.44, 0.5)),
		Surface:    colormath.BlendHex(bg, fg, pick(0.09, 0.11)),
		Surface2:   colormath.BlendHex(bg, fg, pick(0.16, 0.2)),
		Red:        Pick(raw, []string{"color1"}, fallbackRed),
		Light:      light,

		DaylightContrast: pick(1.45, 1.6),
		DaylightGamma:    pick(1.1, 1.35),
	}

	daySeed := Pick(raw, []string{"color11", "color3", "accent"}, accent)
	nightSeed := Pick(raw, []string{"color4", "accent", "color12"}, accent)
	// Day is washed toward white and night is a background tint, so the
	// gradient never clips to pure black or white.
	p.Day = colormath.BlendHex(daySeed, colormath.White, pick(0.16, 0.28))
	p.Night = colormath.BlendHex(bg, nightSeed, pick(0.42, 0.34))
	return p
}

// Default is the palette used when no theme source is available.
func Default() Palette {
	return Derive(Raw{})
}

// WriteTo prints the palette as "key = #rrggbb" lines, the same grammar Parse accepts.
func (p Palette) WriteTo(w io.Writer) (int64, error) {
	rows := []struct {
		key, val string
	}{
		{"background", p.Background},
		{"foreground", p.Foreground},
		{"accent", p.Accent},
		{"cursor", p.Cursor},
		{"dim", p.Dim},
		{"surface", p.Surface},
		{"surface2", p.Surface2},
		{"day", p.Day},
		{"night", p.Night},
		{"red", p.Red},
	}
	var total int64
	for _, r := range rows {
		n, err := fmt.Fprintf(w, "%s = %q\n", r.key, r.val)
		total += int64(n)
		if err != nil {
			return total, err
		}
	}
	n, err := fmt.Fprintf(w, "# light=%t contrast=%g gamma=%g\n", p.Light, p.DaylightContrast, p.DaylightGamma)
	total += int64(n)
	return total, err
}
