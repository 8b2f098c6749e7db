package models

// Performance summarizes a user's recent quiz results. It is supplied by the
// frontend with quiz generation requests to drive adaptive difficulty.
type Performance struct {
	AverageScore float64   `json:"average_score"`
	RecentScores []float64 `json:"recent_scores"`
	TotalQuizzes int       `json:"total_quizzes"`
}

type AnalyzeRequest struct {
	VideoID string `json:"video_id"`
}

type VideoStatusRequest struct {
	VideoID string `json:"video_id"`
}

type ProcessVideoRequest struct {
	VideoID string `json:"video_id"`
}

type GenerateQuizRequest struct {
	VideoID         string         `json:"video_id"`
	Analysis        map[string]any `json:"analysis"`
	Difficulty      string         `json:"difficulty"`
	QuestionTypes   []string       `json:"question_types"`
	UserPerformance *Performance   `json:"user_performance"`
}

type GenerateExplanationsRequest struct {
	VideoID       string         `json:"video_id"`
	QuizData      map[string]any `json:"quiz_data"`
	UserAnswers   any            `json:"user_answers"`
	VideoAnalysis map[string]any `json:"video_analysis"`
}

type SmartRecommendationsRequest struct {
	VideoID         string         `json:"video_id"`
	UserPerformance *Performance   `json:"user_performance"`
	CurrentTopic    string         `json:"current_topic"`
	VideoAnalysis   map[string]any `json:"video_analysis"`
}
