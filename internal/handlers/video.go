package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"quizlens-backend/internal/models"
	"quizlens-backend/internal/services"
)

type VideoHandler struct {
	store *services.VideoStore
	reka  *services.RekaClient
}

func NewVideoHandler(store *services.VideoStore, reka *services.RekaClient) *VideoHandler {
	return &VideoHandler{store: store, reka: reka}
}

// Upload submits a video URL to Reka for indexing. Validation happens before
// any upstream call is made.
func (h *VideoHandler) Upload(w http.ResponseWriter, r *http.Request) {
	var req models.UploadVideoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeFailure(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	name := strings.TrimSpace(req.VideoName)
	videoURL := strings.TrimSpace(req.VideoURL)
	if name == "" || videoURL == "" {
		writeFailure(w, http.StatusBadRequest, "Both video_name and video_url are required")
		return
	}

	videoID, err := h.reka.UploadVideo(r.Context(), name, videoURL)
	if err != nil {
		writeFailure(w, uploadStatus(err), err.Error())
		return
	}

	// Force the next list request to pick up the new video.
	h.store.Invalidate()

	writeJSON(w, http.StatusOK, map[string]any{
		"success":  true,
		"video_id": videoID,
		"message":  "Video uploaded successfully",
	})
}

// Delete soft-deletes a video. The Reka API has no delete operation, so the
// ID is added to the local exclusion set and pruned from the cached list.
func (h *VideoHandler) Delete(w http.ResponseWriter, r *http.Request) {
	var req models.DeleteVideoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeFailure(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.VideoID == "" {
		writeFailure(w, http.StatusBadRequest, "No video ID provided")
		return
	}

	h.store.MarkDeleted(req.VideoID)
	h.store.Invalidate()

	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"message": "Video deleted",
	})
}

// CheckStatus probes whether a video has finished indexing by sending a
// throwaway question to the QA endpoint and inspecting the reply.
func (h *VideoHandler) CheckStatus(w http.ResponseWriter, r *http.Request) {
	var req models.VideoStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeFailure(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.VideoID == "" {
		writeFailure(w, http.StatusBadRequest, "No video ID provided")
		return
	}

	result, err := h.reka.Chat(r.Context(), req.VideoID, services.ProbePrompt, services.ProbeTimeout)
	if err != nil {
		writeFailure(w, http.StatusInternalServerError, err.Error())
		return
	}

	switch {
	case result.Processing:
		writeJSON(w, http.StatusOK, map[string]any{
			"success": true,
			"ready":   false,
			"message": result.Error,
		})
	case result.Error != "":
		writeFailure(w, http.StatusInternalServerError, result.Error)
	case result.ChatResponse != "":
		writeJSON(w, http.StatusOK, map[string]any{
			"success": true,
			"ready":   true,
			"message": "Video is ready for analysis",
		})
	default:
		message := result.SystemMessage
		if message == "" {
			message = "Video is still processing"
		}
		writeJSON(w, http.StatusOK, map[string]any{
			"success": true,
			"ready":   false,
			"message": message,
		})
	}
}

// Process asks the model for a light-hearted roast of the video and renders
// the markdown reply as HTML. Some model replies arrive as a sections JSON
// document instead of markdown; those are flattened first.
func (h *VideoHandler) Process(w http.ResponseWriter, r *http.Request) {
	var req models.ProcessVideoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeFailure(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.VideoID == "" {
		writeFailure(w, http.StatusBadRequest, "No video ID provided")
		return
	}

	result, err := h.reka.Chat(r.Context(), req.VideoID, services.RoastPrompt, services.RoastTimeout)
	if err != nil {
		writeFailure(w, http.StatusInternalServerError, err.Error())
		return
	}

	if result.ChatResponse == "" {
		fallback := result.SystemMessage
		if fallback == "" {
			fallback = result.Error
		}
		if fallback == "" {
			fallback = "Unknown error: chat_response missing."
		}
		writeJSON(w, http.StatusOK, map[string]any{
			"success": false,
			"error":   fallback,
		})
		return
	}

	content := services.FlattenSections(result.ChatResponse)
	html, err := services.RenderMarkdown(content)
	if err != nil {
		writeFailure(w, http.StatusInternalServerError, "Failed to render response")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"result":  html,
	})
}
