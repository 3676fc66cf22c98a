package slider

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNudgeAndVersion(t *testing.T) {
	s := New(0.5, 0.3)
	assert.False(t, s.Shifted())
	assert.Equal(t, uint64(0), s.Version())

	assert.True(t, s.Nudge(3))
	assert.Equal(t, 1.5, s.Hours())
	assert.True(t, s.Shifted())
	assert.Equal(t, uint64(1), s.Version())

	assert.True(t, s.Nudge(-1))
	assert.Equal(t, 1.0, s.Hours())
	assert.Equal(t, uint64(2), s.Version())
}

func TestSetClampsAndSnaps(t *testing.T) {
	s := New(0.5, 0.3)

	s.Set(100)
	assert.Equal(t, MaxHours, s.Hours())
	s.Set(-100)
	assert.Equal(t, MinHours, s.Hours())

	s.Set(0.25)
	assert.Equal(t, 0.0, s.Hours())
	s.Set(-0.29)
	assert.Equal(t, 0.0, s.Hours())
	s.Set(0.3)
	assert.Equal(t, 0.3, s.Hours())

	assert.False(t, s.Set(math.NaN()))
	assert.Equal(t, 0.3, s.Hours())
}

func TestSetUnchangedKeepsVersion(t *testing.T) {
	s := New(1, 0)
	s.Set(2)
	v := s.Version()
	assert.False(t, s.Set(2))
	assert.Equal(t, v, s.Version())

	assert.True(t, s.Reset())
	assert.False(t, s.Reset())
	assert.False(t, s.Shifted())
}

func TestNudgeStopsAtEdge(t *testing.T) {
	s := New(6, 0)
	for i := 0; i < 10; i++ {
		s.Nudge(1)
	}
	assert.Equal(t, MaxHours, s.Hours())
	assert.False(t, s.Nudge(1))
}
