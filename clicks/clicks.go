package clicks

import (
	"bufio"
	"encoding/json"
	"io"
	"log"
	"strings"
)

// Click represents a click event fed by swaybar back into stdin.
type Click struct {
	Name      string   `json:"name"`
	Instance  string   `json:"instance,omitempty"`
	Button    int      `json:"button"`
	X         int      `json:"x"`
	Y         int      `json:"y"`
	Modifiers []string `json:"modifiers"`
}

// X11 button numbers as swaybar reports them.
const (
	ButtonLeft       = 1
	ButtonMiddle     = 2
	ButtonRight      = 3
	ButtonScrollUp   = 4
	ButtonScrollDown = 5
)

// Action is what a click asks the slider to do.
type Action struct {
	Steps int  // scroll notches, positive is later
	Reset bool // jump back to now
}

// None reports whether the click maps to nothing.
func (a Action) None() bool { return a.Steps == 0 && !a.Reset }

// Action maps a click to a slider action. Scrolling over any block moves the
// slider one notch (four with Shift held); clicking the slider block or right
// clicking anywhere returns to now.
func (c Click) Action() Action {
	n := 1
	for _, m := range c.Modifiers {
		if strings.EqualFold(m, "Shift") {
			n = 4
		}
	}
	switch c.Button {
	case ButtonScrollUp:
		return Action{Steps: n}
	case ButtonScrollDown:
		return Action{Steps: -n}
	case ButtonRight:
		return Action{Reset: true}
	case ButtonLeft, ButtonMiddle:
		if c.Name == "slider" {
			return Action{Reset: true}
		}
	}
	return Action{}
}

// Read consumes newline-delimited JSON click events, emitting them onto out.
// It drops events if the channel is full to avoid blocking the main loop.
// swaybar opens the stream with "[" and prefixes later events with ",", both
// of which are stripped before decoding.
func Read(r io.Reader, out chan<- Click) {
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		line = strings.TrimPrefix(line, "[")
		line = strings.TrimPrefix(line, ",")
		if line == "" {
			continue
		}
		var c Click
		if err := json.Unmarshal([]byte(line), &c); err != nil {
			log.Printf("click parse: %v", err)
			continue
		}
		select {
		case out <- c:
		default:
			// drop if full
		}
	}
	if err := sc.Err(); err != nil {
		log.Printf("click scanner: %v", err)
	}
}
