package services

import (
	"testing"

	"quizlens-backend/internal/models"
)

func TestAdjustDifficulty(t *testing.T) {
	tests := []struct {
		name         string
		base         string
		perf         models.Performance
		want         string
		wantAdjusted bool
	}{
		{
			"too few quizzes leaves difficulty unchanged",
			"beginner",
			models.Performance{AverageScore: 95, RecentScores: []float64{95, 96}, TotalQuizzes: 2},
			"beginner", false,
		},
		{
			"strong recent scores step up",
			"beginner",
			models.Performance{AverageScore: 70, RecentScores: []float64{95, 92, 91}, TotalQuizzes: 5},
			"intermediate", true,
		},
		{
			"no overflow past advanced",
			"advanced",
			models.Performance{AverageScore: 70, RecentScores: []float64{95, 92, 91}, TotalQuizzes: 5},
			"advanced", false,
		},
		{
			"weak recent scores step down",
			"advanced",
			models.Performance{AverageScore: 80, RecentScores: []float64{40, 50, 55}, TotalQuizzes: 5},
			"intermediate", true,
		},
		{
			"no underflow past beginner",
			"beginner",
			models.Performance{AverageScore: 80, RecentScores: []float64{40, 50, 55}, TotalQuizzes: 5},
			"beginner", false,
		},
		{
			"middling scores leave difficulty unchanged",
			"intermediate",
			models.Performance{AverageScore: 75, RecentScores: []float64{70, 75, 80}, TotalQuizzes: 10},
			"intermediate", false,
		},
		{
			"fewer than three recent scores fall back to average",
			"beginner",
			models.Performance{AverageScore: 92, RecentScores: []float64{50}, TotalQuizzes: 4},
			"intermediate", true,
		},
		{
			"only last three recent scores count",
			"intermediate",
			models.Performance{AverageScore: 50, RecentScores: []float64{10, 20, 95, 92, 94}, TotalQuizzes: 6},
			"advanced", true,
		},
		{
			"unknown difficulty is left alone",
			"expert",
			models.Performance{AverageScore: 95, RecentScores: []float64{95, 95, 95}, TotalQuizzes: 5},
			"expert", false,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, adjusted := AdjustDifficulty(tc.base, tc.perf)
			if got != tc.want {
				t.Errorf("Expected difficulty %q, got %q", tc.want, got)
			}
			if adjusted != tc.wantAdjusted {
				t.Errorf("Expected adjusted=%v, got %v", tc.wantAdjusted, adjusted)
			}
		})
	}
}
