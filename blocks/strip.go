package blocks

import (
	"log"
	"strings"
	"time"

	"swayzones/daylight"
	"swayzones/zones"
)

// StripProvider draws the 48 hour day/night gradient averaged over all cities,
// with a marker in front of the "now" cell.
type StripProvider struct {
	env         *Env
	locs        []*time.Location
	glyph       string
	marker      string
	lastMinute  int64
	lastVersion uint64
	blk         Block
}

// NewStripProvider resolves every city zone once. Cities with unknown zones
// are left out of the average; the city block already reports them.
func NewStripProvider(env *Env) *StripProvider {
	var locs []*time.Location
	for _, id := range env.Config.ZoneIDs() {
		loc, err := zones.Load(id)
		if err != nil {
			log.Printf("strip: dropping city: %v", err)
			continue
		}
		locs = append(locs, loc)
	}
	sp := &StripProvider{
		env:        env,
		locs:       locs,
		glyph:      env.Config.Modules.Strip.Glyph,
		marker:     env.Config.Modules.Strip.Marker,
		lastMinute: -1,
	}
	sp.MaybeRefresh(time.Now().UnixNano())
	return sp
}

func (s *StripProvider) Name() string { return "strip" }

// MaybeRefresh redraws on every minute, since zones with half hour offsets
// cross hour boundaries off the hour.
func (s *StripProvider) MaybeRefresh(now int64) bool {
	minute := now / int64(time.Minute)
	version := s.env.sliderVersion()
	if minute == s.lastMinute && version == s.lastVersion {
		return false
	}
	s.lastMinute = minute
	s.lastVersion = version

	var hours float64
	if s.env.Slider != nil {
		hours = s.env.Slider.Hours()
	}
	colors := s.env.Model.StripFor(s.locs, time.Unix(0, now), hours)
	blk := Block{
		Name:                "strip",
		FullText:            s.render(colors),
		Separator:           false,
		SeparatorBlockWidth: SeparatorWidth,
		Markup:              "pango",
	}
	if blk == s.blk {
		return false
	}
	s.blk = blk
	return true
}

func (s *StripProvider) Current() Block { return s.blk }

// render merges runs of equal color into one span to keep the markup short.
func (s *StripProvider) render(colors []string) string {
	var b strings.Builder
	glyph := esc(s.glyph)
	for i := 0; i < len(colors); {
		if i == daylight.StripNow && s.marker != "" {
			b.WriteString(span(s.env.Palette.Cursor, esc(s.marker)))
		}
		j := i + 1
		for j < len(colors) && colors[j] == colors[i] && j != daylight.StripNow {
			j++
		}
		b.WriteString(span(colors[i], strings.Repeat(glyph, j-i)))
		i = j
	}
	return b.String()
}
