package widgets

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCarouselIndexWrap(t *testing.T) {
	c := NewCarousel(3)
	assert.Equal(t, 0, c.Index)

	// A -> B -> C -> wraps to A
	assert.Equal(t, 1, c.Next())
	assert.Equal(t, 2, c.Next())
	assert.Equal(t, 0, c.Next())

	// retreating from 0 wraps to N-1
	assert.Equal(t, 2, c.Prev())

	empty := NewCarousel(0)
	assert.Equal(t, 0, empty.Next())
	assert.Equal(t, 0, empty.Prev())
}

func TestCarouselGoto(t *testing.T) {
	c := NewCarousel(4)
	assert.Equal(t, 3, c.Goto(3))
	assert.Equal(t, 1, c.Goto(5))
	assert.Equal(t, 3, c.Goto(-1))
}

func TestSlideTransform(t *testing.T) {
	assert.Equal(t, "translateX(0%)", SlideTransform(AnimationSlide, 0))
	assert.Equal(t, "translateX(100%)", SlideTransform(AnimationSlide, 1))
	assert.Equal(t, "translateX(-100%)", SlideTransform(AnimationPan, -1))

	assert.Equal(t, "rotateY(0deg)", SlideTransform(AnimationFlip, 0))
	assert.Equal(t, "rotateY(90deg)", SlideTransform(AnimationFlip, 2))
	assert.Equal(t, "rotateY(-90deg)", SlideTransform(AnimationFlip, -1))

	// coverflow renders at most 2 neighbors per side
	assert.Equal(t, "translateX(60%) scale(0.8)", SlideTransform(AnimationCoverflow, 1))
	assert.Equal(t, "translateX(-120%) scale(0.6)", SlideTransform(AnimationCoverflow, -2))
	assert.Equal(t, "scale(0)", SlideTransform(AnimationCoverflow, 3))
	assert.False(t, SlideVisible(AnimationCoverflow, -3))
	assert.True(t, SlideVisible(AnimationSlide, 10))
}

func TestRepeatCount(t *testing.T) {
	// 1000px container, 100px items, 4 images: ceil(1000/400)+1 = 4
	assert.Equal(t, 4, RepeatCount(1000, 100, 4))
	// exact fit still gets the extra copy
	assert.Equal(t, 2, RepeatCount(400, 100, 4))
	assert.Equal(t, 1, RepeatCount(1000, 100, 0))
	assert.Equal(t, 1, RepeatCount(0, 100, 4))
}

func TestMarqueeDuration(t *testing.T) {
	assert.InDelta(t, 24.0, MarqueeDuration(8, 50), 1e-9)
	assert.Equal(t, 0.0, MarqueeDuration(0, 50))
	// non-positive speed falls back to 1 instead of dividing by zero
	assert.InDelta(t, 1200.0, MarqueeDuration(8, 0), 1e-9)
}

func TestCountUpValueMonotonic(t *testing.T) {
	prev := -1
	for elapsed := 0; elapsed <= 2500; elapsed += 50 {
		v := CountUpValue(1000, 2000, elapsed)
		assert.GreaterOrEqual(t, v, prev, "value must be non-decreasing")
		prev = v
	}
	assert.Equal(t, 1000, CountUpValue(1000, 2000, 2000))
	assert.Equal(t, 1000, CountUpValue(1000, 2000, 9999))
}

func TestCountUpValueInstantCompletion(t *testing.T) {
	// duration=0 displays the end value immediately and must not crash
	assert.Equal(t, 500, CountUpValue(500, 0, 0))
	assert.Equal(t, 500, CountUpValue(500, -1, 0))
}

func TestFormatCount(t *testing.T) {
	assert.Equal(t, "0", FormatCount(0))
	assert.Equal(t, "999", FormatCount(999))
	assert.Equal(t, "1,000", FormatCount(1000))
	assert.Equal(t, "12,345,678", FormatCount(12345678))
	assert.Equal(t, "-1,234", FormatCount(-1234))
}

func TestTotalPages(t *testing.T) {
	assert.Equal(t, 4, TotalPages(23, 6))
	assert.Equal(t, 1, TotalPages(3, 3))
	assert.Equal(t, 2, TotalPages(4, 3))
	assert.Equal(t, 0, TotalPages(0, 6))
	assert.Equal(t, 0, TotalPages(10, 0))
}

func TestListStateFilterReset(t *testing.T) {
	s := NewListState()
	s.SetPage(3)
	assert.Equal(t, 3, s.CurrentPage)

	// changing the search query resets to page 1
	s.SetSearch("boats")
	assert.Equal(t, 1, s.CurrentPage)
	assert.Equal(t, "boats", s.SearchQuery)

	// so does changing any dynamic attribute filter
	s.SetPage(2)
	s.SetAttribute("region", "north")
	assert.Equal(t, 1, s.CurrentPage)
	assert.Equal(t, "north", s.DynamicAttributes["region"])

	// clearing an attribute also resets
	s.SetPage(2)
	s.SetAttribute("region", "")
	assert.Equal(t, 1, s.CurrentPage)
	_, exists := s.DynamicAttributes["region"]
	assert.False(t, exists)

	s.SetPage(0)
	assert.Equal(t, 1, s.CurrentPage)
}

func TestListStateSequencing(t *testing.T) {
	s := NewListState()

	first := s.NextSeq()
	second := s.NextSeq()

	// the stale first response arrives after the second was issued
	assert.False(t, s.AcceptResult(first))
	assert.True(t, s.AcceptResult(second))

	third := s.NextSeq()
	assert.False(t, s.AcceptResult(second))
	assert.True(t, s.AcceptResult(third))
}

func TestTabSet(t *testing.T) {
	tabs := NewTabSet(2)

	// exactly one panel visible, index 0 initially
	assert.True(t, tabs.Visible(0))
	assert.False(t, tabs.Visible(1))

	tabs.Select(1)
	assert.False(t, tabs.Visible(0))
	assert.True(t, tabs.Visible(1))

	// out-of-range selections are ignored
	tabs.Select(5)
	assert.Equal(t, 1, tabs.Active)
	tabs.Select(-1)
	assert.Equal(t, 1, tabs.Active)
}

func TestFAQIndependentToggles(t *testing.T) {
	faq := NewFAQState()

	assert.True(t, faq.Toggle(0))
	assert.True(t, faq.Toggle(2))

	// multiple answers may be open at once
	assert.True(t, faq.IsOpen(0))
	assert.True(t, faq.IsOpen(2))
	assert.False(t, faq.IsOpen(1))

	assert.False(t, faq.Toggle(0))
	assert.False(t, faq.IsOpen(0))
	assert.True(t, faq.IsOpen(2))
}

func TestMatchesFilter(t *testing.T) {
	assert.True(t, MatchesFilter("How do I reset my password?", "PASSWORD"))
	assert.True(t, MatchesFilter("anything", ""))
	assert.True(t, MatchesFilter("anything", "   "))
	assert.False(t, MatchesFilter("Shipping times", "password"))
}
