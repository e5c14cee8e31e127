package generator

import "lead_qualifier/internal/domain/value"

const (
	baseScore = 50

	highBudgetThreshold = 600000
	highBudgetBonus     = 20
	sydneyBonus         = 15
	shortTimelineBonus  = 15

	// Границы случайной поправки к оценке (включительно)
	JitterMin = -10
	JitterMax = 20

	MinScore = 0
	MaxScore = 100
)

// Score оценивает лида. jitter это случайная поправка из [JitterMin, JitterMax],
// результат всегда в [MinScore, MaxScore].
func Score(budgetMin int, location value.Location, timeline value.Timeline, jitter int) int {
	score := baseScore

	if budgetMin > highBudgetThreshold {
		score += highBudgetBonus
	}

	if location == value.LocationSydney {
		score += sydneyBonus
	}

	if timeline == value.Timeline1To3Months {
		score += shortTimelineBonus
	}

	score += jitter

	return max(MinScore, min(MaxScore, score))
}
