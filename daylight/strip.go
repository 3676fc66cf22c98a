package daylight

import (
	"time"

	"swayzones/zones"
)

const (
	// StripBuckets covers hour displacements -24 .. +23.
	StripBuckets = 48
	// StripNow is the index of displacement 0.
	StripNow = 24
)

// neutralMix stands in for the average when there are no cities.
const neutralMix = 0.5

// AverageMix averages Mix over locs at instant at, using each zone's wall
// clock hour. With no zones it returns the neutral midpoint.
func (m *Model) AverageMix(locs []*time.Location, at time.Time) float64 {
	if len(locs) == 0 {
		return neutralMix
	}
	total := 0.0
	for _, loc := range locs {
		total += m.Mix(float64(at.In(loc).Hour()))
	}
	return total / float64(len(locs))
}

// StripFor renders the gradient for already resolved zones. now is shifted by
// sliderHours first, then bucket i sits at displacement i-StripNow hours.
func (m *Model) StripFor(locs []*time.Location, now time.Time, sliderHours float64) []string {
	base := zones.Shift(now, sliderHours)
	out := make([]string, StripBuckets)
	for i := range out {
		at := base.Add(time.Duration(i-StripNow) * time.Hour)
		// Contrast is applied a second time on purpose: averaging several
		// zones flattens the curve and this restores a crisp day/night edge.
		// Dropping it makes multi-city strips look washed out.
		mix := m.Contrast(m.AverageMix(locs, at))
		out[i] = m.MixColor(mix)
	}
	return out
}

// Strip resolves zoneIDs and renders the gradient. An unknown id is returned
// as *zones.InvalidZoneError rather than skipped, since dropping a city would
// skew the average.
func (m *Model) Strip(zoneIDs []string, now time.Time, sliderHours float64) ([]string, error) {
	locs, err := zones.LoadAll(zoneIDs)
	if err != nil {
		return nil, err
	}
	return m.StripFor(locs, now, sliderHours), nil
}
