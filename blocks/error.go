package blocks

import (
	"swayzones/colormath"
	"swayzones/theme"
)

// ErrorBlock creates a red block for failures.
func ErrorBlock(p theme.Palette, name, instance, msg string) Block {
	return Block{
		Name:                name,
		Instance:            instance,
		FullText:            msg,
		Color:               p.Red,
		Background:          colormath.Darken(p.Red, 0.75),
		Separator:           false,
		SeparatorBlockWidth: SeparatorWidth,
		Urgent:              true,
	}
}

// staticProvider serves a block that never changes, such as a city whose
// zone could not be resolved.
type staticProvider struct {
	name string
	blk  Block
}

func (s *staticProvider) Name() string { return s.name }
func (s *staticProvider) MaybeRefresh(int64) bool { return false }
func (s *staticProvider) Current() Block { return s.blk }
