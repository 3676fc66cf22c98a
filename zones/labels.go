package zones

import (
	"fmt"
	"math"
	"strings"
	"time"
)

// OffsetLabel describes remote relative to local at the given instant:
// "Local", "+9h", "-3h" or "+9h30m". Sub-minute differences are ignored.
func OffsetLabel(local, remote *time.Location, at time.Time) string {
	diff := OffsetSeconds(remote, at) - OffsetSeconds(local, at)
	abs := diff
	if abs < 0 {
		abs = -abs
	}
	h, m := abs/3600, (abs%3600)/60
	if h == 0 && m == 0 {
		return "Local"
	}
	sign := "+"
	if diff < 0 {
		sign = "-"
	}
	if m == 0 {
		return fmt.Sprintf("%s%dh", sign, h)
	}
	return fmt.Sprintf("%s%dh%02dm", sign, h, m)
}

// Abbreviation returns the zone's short name at the given instant ("CET",
// "AEST"). Zones whose database entry has no letters (tzdata uses "+04" style
// placeholders) get a GMTLabel instead.
func Abbreviation(loc *time.Location, at time.Time) string {
	name, off := at.In(loc).Zone()
	if name == "" || strings.IndexFunc(name, isLetter) < 0 {
		return GMTLabel(off)
	}
	return name
}

func isLetter(r rune) bool {
	return (r >= 'A' && r <= 'Z') || (r >= 'a' && r <= 'z')
}

// GMTLabel formats a UTC offset in seconds as "UTC", "GMT +10" or "GMT -3:30".
func GMTLabel(offsetSeconds int) string {
	if offsetSeconds == 0 {
		return "UTC"
	}
	sign := "+"
	if offsetSeconds < 0 {
		sign = "-"
		offsetSeconds = -offsetSeconds
	}
	h, m := offsetSeconds/3600, (offsetSeconds%3600)/60
	if m != 0 {
		return fmt.Sprintf("GMT %s%d:%02d", sign, h, m)
	}
	return fmt.Sprintf("GMT %s%d", sign, h)
}

// RowLabel is the subtitle under a city name: "+9h · (JST)".
func RowLabel(local, remote *time.Location, at time.Time) string {
	return OffsetLabel(local, remote, at) + " · (" + Abbreviation(remote, at) + ")"
}

// DateLabel returns "Mon, Jan 2" for the remote calendar date when it differs
// from the local one, and "" when both sides share the date.
func DateLabel(local, remote *time.Location, at time.Time) string {
	r, l := at.In(remote), at.In(local)
	ry, rm, rd := r.Date()
	ly, lm, ld := l.Date()
	if ry == ly && rm == lm && rd == ld {
		return ""
	}
	return r.Format("Mon, Jan 2")
}

// SliderLabel shows the local wall time offsetHours from now, followed by
// either "· Now" or the distance from now ("· +1h30m from now", "· -15m from now").
func SliderLabel(local *time.Location, now time.Time, offsetHours float64) string {
	target := Shift(now, offsetHours).In(local)
	clock := target.Format("15:04")
	total := int(math.RoundToEven(offsetHours * 60))
	if total == 0 {
		return clock + " · Now"
	}
	sign := "+"
	if total < 0 {
		sign = "-"
		total = -total
	}
	h, m := total/60, total%60
	var rel string
	switch {
	case h != 0 && m != 0:
		rel = fmt.Sprintf("%s%dh%02dm", sign, h, m)
	case h != 0:
		rel = fmt.Sprintf("%s%dh", sign, h)
	default:
		rel = fmt.Sprintf("%s%dm", sign, m)
	}
	return clock + " · " + rel + " from now"
}

// FormatOffsetLabel is OffsetLabel keyed by zone ids.
func FormatOffsetLabel(localID, remoteID string, at time.Time) (string, error) {
	local, err := Load(localID)
	if err != nil {
		return "", err
	}
	remote, err := Load(remoteID)
	if err != nil {
		return "", err
	}
	return OffsetLabel(local, remote, at), nil
}

// FormatSliderLabel is SliderLabel keyed by the local zone id.
func FormatSliderLabel(localID string, now time.Time, offsetHours float64) (string, error) {
	local, err := Load(localID)
	if err != nil {
		return "", err
	}
	return SliderLabel(local, now, offsetHours), nil
}
