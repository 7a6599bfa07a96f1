package widgets

import "fmt"

// Carousel is the slide-index state machine behind a carousel instance.
// Index wraps modulo the slide count in both directions.
type Carousel struct {
	Count int
	Index int
}

// NewCarousel starts at slide 0.
func NewCarousel(count int) *Carousel {
	if count < 0 {
		count = 0
	}
	return &Carousel{Count: count}
}

// Next advances one slide, wrapping from the last back to the first.
func (c *Carousel) Next() int {
	if c.Count == 0 {
		return 0
	}
	c.Index = (c.Index + 1) % c.Count
	return c.Index
}

// Prev retreats one slide, wrapping from the first to the last.
func (c *Carousel) Prev() int {
	if c.Count == 0 {
		return 0
	}
	c.Index = (c.Index - 1 + c.Count) % c.Count
	return c.Index
}

// Goto jumps to a slide, wrapping out-of-range targets into [0, Count).
func (c *Carousel) Goto(index int) int {
	if c.Count == 0 {
		return 0
	}
	c.Index = ((index % c.Count) + c.Count) % c.Count
	return c.Index
}

// coverflowWindow limits how many neighbors render on each side; slides
// beyond the window are scaled to zero.
const coverflowWindow = 2

// SlideTransform computes the CSS transform for the slide at the given
// offset from the active index under the configured animation strategy.
func SlideTransform(animation Animation, offset int) string {
	switch animation {
	case AnimationFlip:
		if offset == 0 {
			return "rotateY(0deg)"
		}
		return fmt.Sprintf("rotateY(%ddeg)", clampInt(offset, -1, 1)*90)
	case AnimationCoverflow:
		if offset < -coverflowWindow || offset > coverflowWindow {
			return "scale(0)"
		}
		depth := offset
		if depth < 0 {
			depth = -depth
		}
		scale := 1.0 - 0.2*float64(depth)
		return fmt.Sprintf("translateX(%d%%) scale(%.1f)", offset*60, scale)
	default:
		// slide, pan, and none all stack slides along the X axis.
		return fmt.Sprintf("translateX(%d%%)", offset*100)
	}
}

// SlideVisible reports whether the slide at the offset renders at all.
func SlideVisible(animation Animation, offset int) bool {
	if animation == AnimationCoverflow {
		return offset >= -coverflowWindow && offset <= coverflowWindow
	}
	return true
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
