package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

type Config struct {
	TickHz      int     `toml:"tick_hz"`
	ThemePath   string  `toml:"theme_path"`
	LocalZone   string  `toml:"local_zone"` // empty: detect from the system
	Slider      Slider  `toml:"slider"`
	Modules     Modules `toml:"modules"`
	Cities      []City  `toml:"cities"`
	moduleOrder []string // order of module tables as they appeared in TOML
}

// City is one configured row. Zone is an IANA zone id.
type City struct {
	Flag string `toml:"flag"`
	Name string `toml:"name"`
	Zone string `toml:"zone"`
}

type Slider struct {
	StepHours float64 `toml:"step_hours"` // hours per scroll notch (default 0.5)
	SnapHours float64 `toml:"snap_hours"` // offsets closer to zero than this become zero (default 0.3)
}

type Modules struct {
	Cities CitiesModule `toml:"cities"`
	Strip  StripModule  `toml:"strip"`
	Slider SliderModule `toml:"slider"`
}

type CitiesModule struct {
	Enabled     bool `toml:"enabled"`
	IntervalSec int  `toml:"interval_sec"` // forced refresh interval seconds (default 30)
	ShowOffset  bool `toml:"show_offset"`  // append "+9h · (JST)"
	ShowDate    bool `toml:"show_date"`    // append the date when it differs from local
}

type StripModule struct {
	Enabled bool   `toml:"enabled"`
	Glyph   string `toml:"glyph"`  // one cell per hour (default "█")
	Marker  string `toml:"marker"` // drawn before the "now" cell (default "│")
}

type SliderModule struct {
	Enabled     bool `toml:"enabled"`
	HideWhenNow bool `toml:"hide_when_now"`
}

const DefaultThemePath = "~/.config/omarchy/current/theme/colors.toml"

var DefaultCities = []City{
	{Flag: "🇺🇸", Name: "San Francisco", Zone: "America/Los_Angeles"},
	{Flag: "🇵🇱", Name: "Warsaw", Zone: "Europe/Warsaw"},
	{Flag: "🇦🇺", Name: "Brisbane", Zone: "Australia/Brisbane"},
}

func Defaults() *Config {
	cities := make([]City, len(DefaultCities))
	copy(cities, DefaultCities)
	return &Config{
		TickHz:    1,
		ThemePath: DefaultThemePath,
		Slider:    Slider{StepHours: 0.5, SnapHours: 0.3},
		Modules: Modules{
			Cities: CitiesModule{Enabled: true, IntervalSec: 30, ShowOffset: true, ShowDate: true},
			Strip:  StripModule{Enabled: true, Glyph: "█", Marker: "│"},
			Slider: SliderModule{Enabled: true},
		},
		Cities: cities,
	}
}

// Load loads configuration from explicit path or discovered search path.
// Precedence: provided path (if exists) else first existing search path else defaults.
// Missing file yields defaults and an error; parse errors also return defaults + error.
func Load(path string) (*Config, error) {
	var chosen string
	if path != "" {
		chosen = path
	} else {
		for _, p := range searchPaths() {
			if _, err := os.Stat(p); err == nil {
				chosen = p
				break
			}
		}
	}
	if chosen == "" { // no file found
		cfg := Defaults()
		cfg.normalize()
		return cfg, errors.New("no config file found; using defaults")
	}
	data, err := os.ReadFile(chosen)
	if err != nil {
		cfg := Defaults()
		cfg.normalize()
		return cfg, fmt.Errorf("read config: %w", err)
	}
	return Parse(string(data))
}

// Parse decodes TOML text over the defaults.
func Parse(data string) (*Config, error) {
	cfg := Defaults()
	// A [[cities]] list in the file replaces the default cities rather than
	// appending to them.
	cfg.Cities = nil
	md, err := toml.Decode(data, cfg) // decode overlays onto defaults
	if err != nil {
		cfg = Defaults()
		cfg.normalize()
		return cfg, fmt.Errorf("parse config: %w", err)
	}
	if !md.IsDefined("cities") {
		cfg.Cities = Defaults().Cities
	}
	// Capture module order from metadata keys: modules.<name>
	seen := map[string]struct{}{}
	for _, k := range md.Keys() {
		if len(k) == 2 && k[0] == "modules" {
			name := k[1]
			if _, ok := seen[name]; !ok {
				cfg.moduleOrder = append(cfg.moduleOrder, name)
				seen[name] = struct{}{}
			}
		}
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return cfg.withNormalize(), fmt.Errorf("unknown config key %q", undecoded[0].String())
	}
	return cfg.withNormalize(), nil
}

func searchPaths() []string {
	var out []string
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		out = append(out, filepath.Join(xdg, "swayzones", "config.toml"))
	}
	if home, _ := os.UserHomeDir(); home != "" {
		out = append(out, filepath.Join(home, ".config", "swayzones", "config.toml"))
	}
	return out
}

func (c *Config) withNormalize() *Config {
	c.normalize()
	return c
}

// normalize clamps and validates config values after decoding.
func (c *Config) normalize() {
	c.normalizeTick()
	c.normalizeSlider()
	c.normalizeModules()
	c.normalizeCities()
	c.ThemePath = ExpandHome(c.ThemePath)
}

// ModuleOrder returns a copy of the module order slice (may be empty).
func (c *Config) ModuleOrder() []string {
	if len(c.moduleOrder) == 0 {
		return nil
	}
	out := make([]string, len(c.moduleOrder))
	copy(out, c.moduleOrder)
	return out
}

// ZoneIDs lists the configured city zones in order.
func (c *Config) ZoneIDs() []string {
	out := make([]string, 0, len(c.Cities))
	for _, city := range c.Cities {
		out = append(out, city.Zone)
	}
	return out
}

func (c *Config) normalizeTick() {
	c.TickHz = clampInt(c.TickHz, 1, 20, 1)
}

func (c *Config) normalizeSlider() {
	if c.Slider.StepHours <= 0 {
		c.Slider.StepHours = 0.5
	}
	c.Slider.StepHours = clampFloat(c.Slider.StepHours, 0.25, 6)
	if c.Slider.SnapHours < 0 {
		c.Slider.SnapHours = 0
	}
	// A snap as wide as a step would swallow the first notch.
	if c.Slider.SnapHours >= c.Slider.StepHours {
		c.Slider.SnapHours = c.Slider.StepHours / 2
	}
}

func (c *Config) normalizeModules() {
	if c.Modules.Cities.IntervalSec <= 0 {
		c.Modules.Cities.IntervalSec = 30
	}
	if c.Modules.Cities.IntervalSec > 3600 {
		c.Modules.Cities.IntervalSec = 3600
	}
	if c.Modules.Strip.Glyph == "" {
		c.Modules.Strip.Glyph = "█"
	}
}

// normalizeCities trims entries, drops those without a zone and keeps only
// the first city per zone.
func (c *Config) normalizeCities() {
	seen := map[string]struct{}{}
	out := c.Cities[:0]
	for _, city := range c.Cities {
		city.Zone = strings.TrimSpace(city.Zone)
		city.Name = strings.TrimSpace(city.Name)
		if city.Zone == "" {
			continue
		}
		if _, dup := seen[city.Zone]; dup {
			continue
		}
		seen[city.Zone] = struct{}{}
		if city.Name == "" {
			city.Name = CityFromZone(city.Zone)
		}
		if city.Flag == "" {
			city.Flag = "🌐"
		}
		out = append(out, city)
	}
	c.Cities = out
}

// CityFromZone derives a display name from a zone id:
// "America/Los_Angeles" becomes "Los Angeles".
func CityFromZone(zone string) string {
	if i := strings.LastIndex(zone, "/"); i >= 0 {
		zone = zone[i+1:]
	}
	return strings.ReplaceAll(zone, "_", " ")
}

// ExpandHome replaces a leading "~/" with the user's home directory.
func ExpandHome(p string) string {
	if p != "~" && !strings.HasPrefix(p, "~/") {
		return p
	}
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return p
	}
	return filepath.Join(home, strings.TrimPrefix(p, "~"))
}

func clampInt(val, min, max, fallback int) int {
	if val == 0 && fallback != 0 { // allow zero to trigger fallback when min>0
		val = fallback
	}
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

func clampFloat(val, min, max float64) float64 {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}
