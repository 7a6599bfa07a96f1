package widgets

import "strconv"

// CountUpValue computes the displayed counter value at the given elapsed
// time: floor(progress * endValue) with progress = min(elapsed/duration, 1).
// A zero or negative duration completes instantly. Both arguments are in
// milliseconds. The result is non-decreasing in elapsed and equals exactly
// endValue once elapsed >= duration.
func CountUpValue(endValue, duration, elapsed int) int {
	if duration <= 0 || elapsed >= duration {
		return endValue
	}
	if elapsed <= 0 {
		return 0
	}
	return int(float64(endValue) * float64(elapsed) / float64(duration))
}

// FormatCount renders a counter value with thousands separators.
func FormatCount(value int) string {
	negative := value < 0
	if negative {
		value = -value
	}

	digits := strconv.Itoa(value)
	if len(digits) <= 3 {
		if negative {
			return "-" + digits
		}
		return digits
	}

	var out []byte
	lead := len(digits) % 3
	if lead > 0 {
		out = append(out, digits[:lead]...)
	}
	for i := lead; i < len(digits); i += 3 {
		if len(out) > 0 {
			out = append(out, ',')
		}
		out = append(out, digits[i:i+3]...)
	}

	if negative {
		return "-" + string(out)
	}
	return string(out)
}

// CountUpThreshold is the viewport visibility ratio that triggers the
// count-up animation. The observer disconnects after the first trigger.
const CountUpThreshold = 0.6
