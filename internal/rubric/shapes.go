package rubric

// The three scoring shapes. Which shape a dimension uses is fixed at
// validator-definition time and documented next to the dimension table.

// CompositeScore returns 1.0 when every required element is present,
// 0.85 when a strict majority is present, and 0.0 otherwise.
func CompositeScore(found map[string]bool) float64 {
	if len(found) == 0 {
		return 0
	}
	present := 0
	for _, ok := range found {
		if ok {
			present++
		}
	}
	switch {
	case present == len(found):
		return 1.0
	case present*2 > len(found):
		return 0.85
	default:
		return 0.0
	}
}

// RatioScore returns found/required, clamped to [0,1].
func RatioScore(found, required int) float64 {
	if required <= 0 {
		return 0
	}
	if found >= required {
		return 1.0
	}
	if found <= 0 {
		return 0
	}
	return float64(found) / float64(required)
}

// CountThresholdScore returns 1.0 when count meets the target, 0.85 when
// it meets at least half the target, and 0.0 otherwise.
func CountThresholdScore(count, target int) float64 {
	if target <= 0 {
		return 0
	}
	switch {
	case count >= target:
		return 1.0
	case count*2 >= target:
		return 0.85
	default:
		return 0.0
	}
}
