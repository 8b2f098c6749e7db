package handlers

import (
	"encoding/json"
	"net/http"

	"quizlens-backend/internal/models"
	"quizlens-backend/internal/services"
)

// InsightHandler owns the AI-driven routes: analysis, quiz generation,
// answer explanations, and learning recommendations. Each one is a prompt
// against the Reka QA endpoint followed by best-effort payload extraction.
type InsightHandler struct {
	reka *services.RekaClient
}

func NewInsightHandler(reka *services.RekaClient) *InsightHandler {
	return &InsightHandler{reka: reka}
}

func (h *InsightHandler) Analyze(w http.ResponseWriter, r *http.Request) {
	var req models.AnalyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeFailure(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.VideoID == "" {
		writeFailure(w, http.StatusBadRequest, "No video ID provided")
		return
	}

	result, err := h.reka.Chat(r.Context(), req.VideoID, services.BuildAnalysisPrompt(), services.AnalysisTimeout)
	if err != nil {
		writeFailure(w, http.StatusInternalServerError, err.Error())
		return
	}
	if result.Error != "" {
		writeFailure(w, http.StatusInternalServerError, result.Error)
		return
	}
	if result.ChatResponse == "" {
		fallback := result.SystemMessage
		if fallback == "" {
			fallback = "No analysis data received"
		}
		writeFailure(w, http.StatusInternalServerError, fallback)
		return
	}

	payload := services.ExtractPayload(result.ChatResponse, "subject")
	analysis, message := normalized(payload, result.ChatResponse,
		"Video analysis completed successfully",
		"Analysis completed but structure may be unexpected",
		"Analysis completed but response format may be unexpected")

	writeJSON(w, http.StatusOK, map[string]any{
		"success":  true,
		"analysis": analysis,
		"message":  message,
	})
}

func (h *InsightHandler) GenerateQuiz(w http.ResponseWriter, r *http.Request) {
	var req models.GenerateQuizRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeFailure(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.VideoID == "" {
		writeFailure(w, http.StatusBadRequest, "No video ID provided")
		return
	}
	if len(req.Analysis) == 0 {
		writeFailure(w, http.StatusBadRequest, "No analysis data provided. Please analyze the video first.")
		return
	}

	difficulty := req.Difficulty
	if difficulty == "" {
		if s, ok := req.Analysis["difficulty"].(string); ok && s != "" {
			difficulty = s
		} else {
			difficulty = "intermediate"
		}
	}

	adjusted := difficulty
	adjustmentApplied := false
	if req.UserPerformance != nil {
		adjusted, adjustmentApplied = services.AdjustDifficulty(difficulty, *req.UserPerformance)
	}

	prompt := services.BuildQuizPrompt(req.Analysis, adjusted, req.QuestionTypes)
	result, err := h.reka.Chat(r.Context(), req.VideoID, prompt, services.GenerationTimeout)
	if err != nil {
		writeFailure(w, http.StatusInternalServerError, err.Error())
		return
	}
	if result.Error != "" {
		writeFailure(w, http.StatusInternalServerError, result.Error)
		return
	}
	if result.ChatResponse == "" {
		fallback := result.SystemMessage
		if fallback == "" {
			fallback = "No quiz data received"
		}
		writeFailure(w, http.StatusInternalServerError, fallback)
		return
	}

	payload := services.ExtractPayload(result.ChatResponse, "questions", "sections")
	quiz, message := normalized(payload, result.ChatResponse,
		"Quiz generated successfully",
		"Quiz generated but structure may be unexpected",
		"Quiz generated but response format may be unexpected")

	if req.UserPerformance != nil {
		quiz["adaptive_difficulty"] = adjusted
		quiz["difficulty_adjustment"] = adjustmentApplied
		quiz["original_difficulty"] = difficulty
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"quiz":    quiz,
		"message": message,
	})
}

func (h *InsightHandler) GenerateExplanations(w http.ResponseWriter, r *http.Request) {
	var req models.GenerateExplanationsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]any{"error": "Invalid request body"})
		return
	}
	if len(req.QuizData) == 0 {
		writeJSON(w, http.StatusBadRequest, map[string]any{"error": "No quiz data provided"})
		return
	}

	videoID := chatTarget(req.VideoID, req.QuizData, req.VideoAnalysis)
	if videoID == "" {
		writeJSON(w, http.StatusBadRequest, map[string]any{"error": "No video ID provided"})
		return
	}

	prompt := services.BuildExplanationsPrompt(req.QuizData, req.UserAnswers, req.VideoAnalysis)
	result, err := h.reka.Chat(r.Context(), videoID, prompt, services.GenerationTimeout)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]any{"error": err.Error()})
		return
	}
	if result.Error != "" || result.ChatResponse == "" {
		message := result.Error
		if message == "" {
			message = "No explanation data received"
		}
		writeJSON(w, http.StatusInternalServerError, map[string]any{"error": message})
		return
	}

	payload := services.ExtractPayload(result.ChatResponse, "explanations")
	explanations, message := normalized(payload, result.ChatResponse,
		"Explanations generated successfully",
		"Explanations generated but structure may be unexpected",
		"Explanations generated but response format may be unexpected")

	writeJSON(w, http.StatusOK, map[string]any{
		"success":      true,
		"explanations": explanations,
		"message":      message,
	})
}

func (h *InsightHandler) SmartRecommendations(w http.ResponseWriter, r *http.Request) {
	var req models.SmartRecommendationsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]any{"error": "Invalid request body"})
		return
	}

	videoID := chatTarget(req.VideoID, req.VideoAnalysis)
	if videoID == "" {
		writeJSON(w, http.StatusBadRequest, map[string]any{"error": "No video ID provided"})
		return
	}

	prompt := services.BuildRecommendationsPrompt(req.UserPerformance, req.CurrentTopic, req.VideoAnalysis)
	result, err := h.reka.Chat(r.Context(), videoID, prompt, services.GenerationTimeout)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]any{"error": err.Error()})
		return
	}
	if result.Error != "" || result.ChatResponse == "" {
		message := result.Error
		if message == "" {
			message = "No recommendation data received"
		}
		writeJSON(w, http.StatusInternalServerError, map[string]any{"error": message})
		return
	}

	payload := services.ExtractPayload(result.ChatResponse, "recommendations")
	recommendations, message := normalized(payload, result.ChatResponse,
		"Recommendations generated successfully",
		"Recommendations generated but structure may be unexpected",
		"Recommendations generated but response format may be unexpected")

	writeJSON(w, http.StatusOK, map[string]any{
		"success":         true,
		"recommendations": recommendations,
		"message":         message,
	})
}

// normalized applies the leniency policy: a parsed object with the expected
// marker passes through, anything else is wrapped under raw_response with a
// degraded message. Unparseable model output is never a hard failure.
func normalized(p services.Payload, raw, okMsg, structureMsg, formatMsg string) (map[string]any, string) {
	switch {
	case p.Parsed && p.HasMarker:
		return p.Data, okMsg
	case p.Parsed:
		return map[string]any{"raw_response": raw}, structureMsg
	default:
		return map[string]any{"raw_response": raw}, formatMsg
	}
}

// chatTarget resolves the video ID for routes whose request shape does not
// carry one at the top level, falling back to the embedded documents.
func chatTarget(videoID string, docs ...map[string]any) string {
	if videoID != "" {
		return videoID
	}
	for _, doc := range docs {
		if s, ok := doc["video_id"].(string); ok && s != "" {
			return s
		}
	}
	return ""
}
