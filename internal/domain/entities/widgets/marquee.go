package widgets

import "math"

// RepeatCount computes how many times the image list must be duplicated for
// the marquee strip to exceed the container width, plus one extra copy so the
// loop never shows a gap.
func RepeatCount(containerWidth, itemWidth float64, imageCount int) int {
	if imageCount <= 0 || itemWidth <= 0 || containerWidth <= 0 {
		return 1
	}
	return int(math.Ceil(containerWidth/(itemWidth*float64(imageCount)))) + 1
}

// MarqueeDuration computes the CSS animation duration in seconds for the
// duplicated strip: (totalItems * 150) / speed.
func MarqueeDuration(totalItems int, speed float64) float64 {
	if totalItems <= 0 {
		return 0
	}
	if speed <= 0 {
		speed = 1
	}
	return float64(totalItems) * 150 / speed
}
