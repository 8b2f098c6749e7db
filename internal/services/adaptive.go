package services

import "quizlens-backend/internal/models"

var difficultyLadder = []string{"beginner", "intermediate", "advanced"}

// AdjustDifficulty steps the base difficulty up or down one level based on
// recent quiz performance. At least three completed quizzes are required
// before any adjustment happens. The recent average is the mean of the last
// three scores, falling back to the overall average when fewer are recorded.
// Returns the (possibly unchanged) difficulty and whether it was adjusted.
func AdjustDifficulty(base string, perf models.Performance) (string, bool) {
	if perf.TotalQuizzes < 3 {
		return base, false
	}

	recentAvg := perf.AverageScore
	if n := len(perf.RecentScores); n >= 3 {
		sum := 0.0
		for _, score := range perf.RecentScores[n-3:] {
			sum += score
		}
		recentAvg = sum / 3
	}

	idx := ladderIndex(base)
	switch {
	case idx < 0:
		return base, false
	case recentAvg >= 90 && idx < len(difficultyLadder)-1:
		return difficultyLadder[idx+1], true
	case recentAvg < 60 && idx > 0:
		return difficultyLadder[idx-1], true
	}
	return base, false
}

func ladderIndex(difficulty string) int {
	for i, level := range difficultyLadder {
		if level == difficulty {
			return i
		}
	}
	return -1
}
