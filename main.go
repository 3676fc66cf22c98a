package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"time"
	_ "time/tzdata" // city zones must resolve even without a system zoneinfo

	flag "github.com/spf13/pflag"

	"swayzones/blocks"
	"swayzones/clicks"
	"swayzones/config"
	"swayzones/daylight"
	"swayzones/slider"
	"swayzones/theme"
	"swayzones/zones"
)

func main() {
	log.SetOutput(os.Stderr)

	configPath := flag.StringP("config", "c", "", "path to config.toml (default: XDG search path)")
	themePath := flag.String("theme", "", "path to the theme colors file (overrides theme_path)")
	localZone := flag.String("local-zone", "", "IANA zone treated as local (overrides local_zone)")
	once := flag.Bool("once", false, "print a single block row as JSON and exit")
	printPalette := flag.Bool("palette", false, "print the derived palette and exit")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Printf("config: %v", err)
	}
	if *themePath != "" {
		cfg.ThemePath = config.ExpandHome(*themePath)
	}
	if *localZone != "" {
		cfg.LocalZone = *localZone
	}

	env := buildEnv(cfg)
	if *printPalette {
		if _, err := env.Palette.WriteTo(os.Stdout); err != nil {
			log.Fatalf("palette: %v", err)
		}
		return
	}

	// Build providers using registry + config order.
	providers := blocks.BuildProviders(env)

	buf := bytes.NewBuffer(nil)
	if *once {
		if err := encodeRow(buf, providers); err != nil {
			log.Fatalf("encode blocks: %v", err)
		}
		fmt.Println(buf.String())
		return
	}

	// i3bar protocol header and opening array.
	fmt.Println(`{"version":1,"click_events":true}`)
	fmt.Println("[")
	fmt.Println("[]")

	clickCh := make(chan clicks.Click, 16)
	go clicks.Read(os.Stdin, clickCh)

	interval := time.Second / time.Duration(cfg.TickHz)

	// Initial alignment to next fractional interval boundary.
	waitUntilNextTickInterval(interval, nil, env.Slider)

	// After emitting the initial empty array, every subsequent row must be comma-prefixed per i3bar protocol.
	force := true
	for {
		drainClicks(clickCh, env.Slider)
		if renderOnce(buf, providers, force) {
			force = false
		}
		waitUntilNextTickInterval(interval, clickCh, env.Slider)
	}
}

// buildEnv derives the palette and resolves the local zone once; both stay
// fixed for the life of the process.
func buildEnv(cfg *config.Config) *blocks.Env {
	raw, err := theme.Load(cfg.ThemePath)
	if err != nil {
		log.Printf("theme: %v", err)
	}
	palette := theme.Derive(raw)

	localID := cfg.LocalZone
	if localID == "" {
		localID = zones.LocalZoneID()
	}
	local, err := zones.Load(localID)
	if err != nil {
		log.Printf("zones: local: %v; using UTC", err)
		local = time.UTC
	}

	return &blocks.Env{
		Config:  cfg,
		Palette: palette,
		Model:   daylight.NewModel(palette),
		Local:   local,
		Slider:  slider.New(cfg.Slider.StepHours, cfg.Slider.SnapHours),
	}
}

// drainClicks consumes all currently queued click events without blocking.
func drainClicks(ch <-chan clicks.Click, s *slider.Slider) {
	for {
		select {
		case ev := <-ch:
			handleClick(ev, s)
		default:
			return
		}
	}
}

// renderOnce refreshes providers (if due) and emits a JSON row when any block
// changed or force is set. It reports whether a row was written.
func renderOnce(buf *bytes.Buffer, providers []blocks.Provider, force bool) bool {
	nowNs := time.Now().UnixNano()
	changed := force
	for _, p := range providers {
		if p.MaybeRefresh(nowNs) {
			changed = true
		}
	}
	if !changed {
		return false
	}
	if err := encodeRow(buf, providers); err != nil {
		log.Printf("encode blocks: %v", err)
		return false
	}
	fmt.Print(",")
	fmt.Println(buf.String())
	return true
}

// encodeRow writes the current blocks as one JSON array without a trailing newline.
func encodeRow(buf *bytes.Buffer, providers []blocks.Provider) error {
	blocksOut := make([]blocks.Block, 0, len(providers))
	for _, p := range providers {
		blocksOut = append(blocksOut, p.Current())
	}
	buf.Reset()
	enc := json.NewEncoder(buf)
	enc.SetEscapeHTML(false) // pango markup must reach the bar verbatim
	if err := enc.Encode(blocksOut); err != nil {
		return err
	}
	trimmed := bytes.TrimRight(buf.Bytes(), "\n")
	buf.Truncate(len(trimmed))
	return nil
}

func handleClick(c clicks.Click, s *slider.Slider) {
	a := c.Action()
	if a.None() {
		return
	}
	switch {
	case a.Reset:
		s.Reset()
	default:
		s.Nudge(a.Steps)
	}
	log.Printf("click: %s button %d, slider %+.2fh", c.Name, c.Button, s.Hours())
}

// waitUntilNextTickInterval sleeps until the next multiple of interval boundary.
// If clickCh is non-nil it will service a single click arrival without delaying
// the boundary more than necessary (best-effort responsiveness between ticks).
func waitUntilNextTickInterval(interval time.Duration, clickCh <-chan clicks.Click, s *slider.Slider) {
	now := time.Now()
	// Compute next boundary: truncate to interval then add interval.
	next := now.Truncate(interval).Add(interval)
	if !next.After(now) {
		next = next.Add(interval)
	}
	for {
		dur := time.Until(next)
		if dur <= 0 {
			return
		}
		// Sleep in at most 100ms chunks to remain responsive for larger intervals.
		step := dur
		if step > 100*time.Millisecond {
			step = 100 * time.Millisecond
		}
		time.Sleep(step)
		// Drain a single click if present (non-blocking) to keep UI responsive.
		if clickCh != nil {
			select {
			case ev := <-clickCh:
				handleClick(ev, s)
			default:
			}
		}
	}
}
