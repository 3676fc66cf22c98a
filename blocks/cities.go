package blocks

import (
	"fmt"
	"log"
	"strings"
	"time"

	"swayzones/config"
	"swayzones/zones"
)

// CityProvider renders one configured city: flag, name, wall clock time and
// a dot in the city's daylight color.
type CityProvider struct {
	env         *Env
	city        config.City
	loc         *time.Location
	intervalNs  int64 // forced refresh interval (ns)
	lastNs      int64
	lastMinute  int64 // last rendered minute of the displayed instant
	lastVersion uint64
	blk         Block
}

func buildCities(env *Env) []Provider {
	out := make([]Provider, 0, len(env.Config.Cities))
	for _, c := range env.Config.Cities {
		out = append(out, NewCityProvider(env, c))
	}
	return out
}

// NewCityProvider resolves the city's zone. An unknown zone yields a fixed
// error block instead of a live provider.
func NewCityProvider(env *Env, city config.City) Provider {
	loc, err := zones.Load(city.Zone)
	if err != nil {
		log.Printf("zones: %v", err)
		return &staticProvider{
			name: "cities",
			blk:  ErrorBlock(env.Palette, "cities", city.Zone, fmt.Sprintf("%s %s: bad zone", city.Flag, city.Name)),
		}
	}
	iv := env.Config.Modules.Cities.IntervalSec
	if iv <= 0 {
		iv = 30
	}
	cp := &CityProvider{
		env:        env,
		city:       city,
		loc:        loc,
		intervalNs: int64(time.Duration(iv) * time.Second),
		lastMinute: -1,
	}
	cp.MaybeRefresh(time.Now().UnixNano())
	return cp
}

func (c *CityProvider) Name() string { return "cities" }

func (c *CityProvider) MaybeRefresh(now int64) bool {
	at := c.env.shiftedNow(now)
	minute := at.Unix() / 60
	version := c.env.sliderVersion()
	if minute == c.lastMinute && version == c.lastVersion && now-c.lastNs < c.intervalNs {
		return false
	}
	c.lastMinute = minute
	c.lastVersion = version
	c.lastNs = now

	blk := c.render(at)
	if blk == c.blk {
		return false
	}
	c.blk = blk
	return true
}

func (c *CityProvider) Current() Block { return c.blk }

func (c *CityProvider) render(at time.Time) Block {
	p := c.env.Palette
	mod := c.env.Config.Modules.Cities
	t := at.In(c.loc)
	hour := float64(t.Hour())
	clock := t.Format("15:04")

	var b strings.Builder
	fmt.Fprintf(&b, "%s %s <b>%s</b>", esc(c.city.Flag), esc(c.city.Name), clock)
	if mod.ShowDate && c.env.Local != nil {
		if d := zones.DateLabel(c.env.Local, c.loc, at); d != "" {
			b.WriteString(" " + span(p.Dim, esc(d)))
		}
	}
	if mod.ShowOffset && c.env.Local != nil {
		b.WriteString(" " + span(p.Dim, esc(zones.RowLabel(c.env.Local, c.loc, at))))
	}
	dot := "●"
	if c.env.Model.Period(hour) == "Night" {
		dot = "○"
	}
	b.WriteString(" " + span(c.env.Model.Color(hour), dot))

	return Block{
		Name:                "cities",
		Instance:            c.city.Zone,
		FullText:            b.String(),
		ShortText:           esc(c.city.Name) + " " + clock,
		Color:               p.Foreground,
		Separator:           false,
		SeparatorBlockWidth: SeparatorWidth,
		Markup:              "pango",
	}
}
