package blocks

import (
	"html"
	"time"

	"swayzones/config"
	"swayzones/daylight"
	"swayzones/slider"
	"swayzones/theme"
)

// Block represents an i3bar protocol block.
// Only fields actually needed now; others can be added later.
type Block struct {
	Name                string `json:"name,omitempty"`
	Instance            string `json:"instance,omitempty"`
	FullText            string `json:"full_text"`
	ShortText           string `json:"short_text,omitempty"`
	Color               string `json:"color,omitempty"`
	Background          string `json:"background,omitempty"`
	Separator           bool   `json:"separator"`
	SeparatorBlockWidth int    `json:"separator_block_width,omitempty"`
	Urgent              bool   `json:"urgent,omitempty"`
	Markup              string `json:"markup,omitempty"`
}

const SeparatorWidth = 12

// Provider supplies an up-to-date Block, refreshing internal state at most
// when MaybeRefresh is called and it decides enough time has passed or data changed.
// MaybeRefresh returns true if the underlying Block value changed (for change-driven rendering decisions).
type Provider interface {
	Name() string
	MaybeRefresh(now int64) (changed bool)
	Current() Block
}

// Env is everything a provider needs to render. It is assembled once in main;
// only the slider moves afterwards.
type Env struct {
	Config  *config.Config
	Palette theme.Palette
	Model   *daylight.Model
	Local   *time.Location
	Slider  *slider.Slider
}

// span wraps already escaped text in a pango foreground span.
func span(color, text string) string {
	return `<span foreground="` + color + `">` + text + `</span>`
}

// esc escapes text for pango markup.
func esc(s string) string {
	return html.EscapeString(s)
}

// shiftedNow is the instant the bar is displaying: wall clock plus slider.
func (e *Env) shiftedNow(now int64) time.Time {
	t := time.Unix(0, now)
	if e.Slider == nil {
		return t
	}
	return t.Add(time.Duration(e.Slider.Hours() * float64(time.Hour)))
}

func (e *Env) sliderVersion() uint64 {
	if e.Slider == nil {
		return 0
	}
	return e.Slider.Version()
}
