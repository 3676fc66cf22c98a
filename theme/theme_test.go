package theme

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"swayzones/colormath"
)

const sampleSource = `# omarchy theme
[colors]
background = "#FFFFFF"
foreground = '#2e3440'  # inline comment
accent = 88c0d0
color1="#bf616a"
bogus = "#xyz123"
cursor = #12345
Color11 = "#EBCB8B"
this line is not an assignment
`

func TestParse(t *testing.T) {
	raw := ParseString(sampleSource)
	assert.Equal(t, Raw{
		"background": "#ffffff",
		"foreground": "#2e3440",
		"accent":     "#88c0d0",
		"color1":     "#bf616a",
		"color11":    "#ebcb8b",
	}, raw)
}

func TestLoad(t *testing.T) {
	raw, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	require.NoError(t, err)
	assert.Empty(t, raw)

	p := filepath.Join(t.TempDir(), "colors.toml")
	require.NoError(t, os.WriteFile(p, []byte(sampleSource), 0o600))
	raw, err = Load(p)
	require.NoError(t, err)
	assert.Equal(t, "#ffffff", raw["background"])
}

func TestPick(t *testing.T) {
	raw := Raw{"color4": "#112233", "accent": "#445566", "broken": "nothex"}
	assert.Equal(t, "#112233", Pick(raw, []string{"missing", "color4", "accent"}, "#000000"))
	assert.Equal(t, "#445566", Pick(raw, []string{"broken", "ACCENT"}, "#000000"))
	assert.Equal(t, "#abcdef", Pick(raw, []string{"missing"}, "ABCDEF"))
	assert.Equal(t, colormath.Black, Pick(raw, nil, "nope"))
}

func TestDeriveEmptyTheme(t *testing.T) {
	p := Derive(Raw{})

	assert.Equal(t, "#1a1b26", p.Background)
	assert.Equal(t, "#a9b1d6", p.Foreground)
	assert.Equal(t, "#7aa2f7", p.Accent)
	assert.Equal(t, "#c0caf5", p.Cursor)
	assert.Equal(t, "#ef4444", p.Red)
	assert.False(t, p.Light)
	assert.Equal(t, 1.6, p.DaylightContrast)
	assert.Equal(t, 1.35, p.DaylightGamma)

	assert.Equal(t, colormath.BlendHex("#a9b1d6", "#1a1b26", 0.5), p.Dim)
	assert.Equal(t, colormath.BlendHex("#1a1b26", "#a9b1d6", 0.11), p.Surface)
	assert.Equal(t, colormath.BlendHex("#1a1b26", "#a9b1d6", 0.2), p.Surface2)
	assert.Equal(t, colormath.BlendHex("#7aa2f7", colormath.White, 0.28), p.Day)
	assert.Equal(t, colormath.BlendHex("#1a1b26", "#7aa2f7", 0.34), p.Night)

	assert.Equal(t, p, Default())
}

func TestDeriveLightTheme(t *testing.T) {
	p := Derive(ParseString(sampleSource))

	assert.True(t, p.Light)
	assert.Equal(t, 1.45, p.DaylightContrast)
	assert.Equal(t, 1.1, p.DaylightGamma)
	assert.Equal(t, "#88c0d0", p.Accent)
	assert.Equal(t, "#bf616a", p.Red)
	// No cursor key, so the cursor candidates fall through to foreground.
	assert.Equal(t, "#2e3440", p.Cursor)
	assert.Equal(t, colormath.BlendHex("#2e3440", "#ffffff", 0.44), p.Dim)
	assert.Equal(t, colormath.BlendHex("#ffffff", "#2e3440", 0.09), p.Surface)
	// color11 wins the day seed, accent the night seed (no color4).
	assert.Equal(t, colormath.BlendHex("#ebcb8b", colormath.White, 0.16), p.Day)
	assert.Equal(t, colormath.BlendHex("#ffffff", "#88c0d0", 0.42), p.Night)
}

func TestDeriveSeedPriority(t *testing.T) {
	p := Derive(Raw{"color3": "#aa0000", "color4": "#0000aa", "accent": "#00aa00"})
	assert.Equal(t, colormath.BlendHex("#aa0000", colormath.White, 0.28), p.Day)
	assert.Equal(t, colormath.BlendHex("#1a1b26", "#0000aa", 0.34), p.Night)
	assert.Equal(t, "#00aa00", p.Accent)
}

func TestPaletteWriteTo(t *testing.T) {
	p := Default()
	var buf bytes.Buffer
	_, err := p.WriteTo(&buf)
	require.NoError(t, err)

	back := ParseString(buf.String())
	assert.Equal(t, p.Background, back["background"])
	assert.Equal(t, p.Day, back["day"])
	assert.Equal(t, p.Night, back["night"])
	assert.Contains(t, buf.String(), "light=false")
}
