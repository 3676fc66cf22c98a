// Package daylight maps an hour of day to a day/night mix in 0..1 and that mix
// to a color between the palette's night and day colors.
package daylight

import (
	"math"

	"github.com/lucasb-eyer/go-colorful"

	"swayzones/colormath"
	"swayzones/theme"
)

// Model carries the palette-dependent part of the curve. It is immutable and
// safe to share.
type Model struct {
	contrast float64
	gamma    float64
	day      colorful.Color
	night    colorful.Color
}

func NewModel(p theme.Palette) *Model {
	return &Model{
		contrast: p.DaylightContrast,
		gamma:    p.DaylightGamma,
		day:      colormath.HexToRGB(p.Day),
		night:    colormath.HexToRGB(p.Night),
	}
}

// RawMix is a cosine that peaks at 1 at noon and bottoms out at 0 at midnight.
func RawMix(hour float64) float64 {
	angle := (hour - 12) / 12 * math.Pi
	return (math.Cos(angle) + 1) / 2
}

// ContrastMix stretches mix around 0.5 and applies gamma. The result is
// always in 0..1.
func ContrastMix(mix, contrast, gamma float64) float64 {
	m := clamp01((mix-0.5)*contrast + 0.5)
	return clamp01(math.Pow(m, gamma))
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// Contrast applies ContrastMix with the palette's tuning.
func (m *Model) Contrast(mix float64) float64 {
	return ContrastMix(mix, m.contrast, m.gamma)
}

// Mix is the shaped day/night value for hour (0 <= hour < 24).
func (m *Model) Mix(hour float64) float64 {
	return m.Contrast(RawMix(hour))
}

// MixColor blends night toward day by mix.
func (m *Model) MixColor(mix float64) string {
	return colormath.RGBToHex(colormath.Blend(m.night, m.day, mix))
}

// Color is the daylight color for hour.
func (m *Model) Color(hour float64) string {
	return m.MixColor(m.Mix(hour))
}

// Period names the half of the day hour falls in.
func (m *Model) Period(hour float64) string {
	if m.Mix(hour) >= 0.5 {
		return "Day"
	}
	return "Night"
}
