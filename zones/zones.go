// Package zones resolves IANA zone ids and formats the offset, abbreviation
// and slider labels shown next to each city. Offsets are looked up at the
// instant being displayed, so DST transitions are honored.
package zones

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// InvalidZoneError reports a zone id the timezone database does not know.
type InvalidZoneError struct {
	ZoneID string
	Err    error
}

func (e *InvalidZoneError) Error() string {
	return fmt.Sprintf("invalid zone id %q: %v", e.ZoneID, e.Err)
}

func (e *InvalidZoneError) Unwrap() error { return e.Err }

// Load resolves a single zone id.
func Load(id string) (*time.Location, error) {
	// LoadLocation treats "" as UTC and "Local" as the host zone; neither is a
	// configured city zone.
	if strings.TrimSpace(id) == "" || id == "Local" {
		return nil, &InvalidZoneError{ZoneID: id, Err: errors.New("not an IANA zone")}
	}
	loc, err := time.LoadLocation(id)
	if err != nil {
		return nil, &InvalidZoneError{ZoneID: id, Err: err}
	}
	return loc, nil
}

// LoadAll resolves ids in order and stops at the first unknown one.
func LoadAll(ids []string) ([]*time.Location, error) {
	locs := make([]*time.Location, 0, len(ids))
	for _, id := range ids {
		loc, err := Load(id)
		if err != nil {
			return nil, err
		}
		locs = append(locs, loc)
	}
	return locs, nil
}

// LocalZoneID returns the system zone: $TZ, then the /etc/localtime symlink
// target, then "UTC".
func LocalZoneID() string {
	if tz := strings.TrimPrefix(os.Getenv("TZ"), ":"); tz != "" {
		if _, err := Load(tz); err == nil {
			return tz
		}
	}
	if target, err := filepath.EvalSymlinks("/etc/localtime"); err == nil {
		if _, after, ok := strings.Cut(target, "zoneinfo/"); ok && after != "" {
			return after
		}
	}
	return "UTC"
}

// Shift moves t by a fractional number of hours.
func Shift(t time.Time, hours float64) time.Time {
	return t.Add(time.Duration(hours * float64(time.Hour)))
}

// OffsetSeconds is loc's UTC offset in effect at instant at.
func OffsetSeconds(loc *time.Location, at time.Time) int {
	_, off := at.In(loc).Zone()
	return off
}
