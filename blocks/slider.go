package blocks

import (
	"time"

	"swayzones/colormath"
	"swayzones/zones"
)

// SliderProvider shows the local time the bar is displaying and how far that
// is from now. Clicking it resets the slider (see clicks.Click.Action).
type SliderProvider struct {
	env         *Env
	lastMinute  int64
	lastVersion uint64
	blk         Block
}

func NewSliderProvider(env *Env) *SliderProvider {
	sp := &SliderProvider{env: env, lastMinute: -1}
	sp.MaybeRefresh(time.Now().UnixNano())
	return sp
}

func (s *SliderProvider) Name() string { return "slider" }

func (s *SliderProvider) MaybeRefresh(now int64) bool {
	minute := now / int64(time.Minute)
	version := s.env.sliderVersion()
	if minute == s.lastMinute && version == s.lastVersion {
		return false
	}
	s.lastMinute = minute
	s.lastVersion = version

	blk := s.render(time.Unix(0, now))
	if blk == s.blk {
		return false
	}
	s.blk = blk
	return true
}

func (s *SliderProvider) Current() Block { return s.blk }

func (s *SliderProvider) render(now time.Time) Block {
	p := s.env.Palette
	var hours float64
	shifted := false
	if s.env.Slider != nil {
		hours = s.env.Slider.Hours()
		shifted = s.env.Slider.Shifted()
	}
	blk := Block{
		Name:                "slider",
		Color:               p.Foreground,
		Separator:           false,
		SeparatorBlockWidth: SeparatorWidth,
	}
	if !shifted && s.env.Config.Modules.Slider.HideWhenNow {
		// i3bar skips blocks with empty full_text.
		return blk
	}
	local := s.env.Local
	if local == nil {
		local = time.Local
	}
	blk.FullText = zones.SliderLabel(local, now, hours)
	if shifted {
		blk.Color = colormath.Lighten(p.Accent, colormath.DefaultLighten)
	}
	return blk
}
