package services

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func TestListVideos(t *testing.T) {
	var gotKey string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/videos/get" {
			t.Errorf("Unexpected path %q", r.URL.Path)
		}
		if r.Method != http.MethodPost {
			t.Errorf("Expected POST, got %s", r.Method)
		}
		gotKey = r.Header.Get("X-Api-Key")
		w.Write([]byte(`{"results": [{"video_id": "v1", "metadata": {"title": "Intro"}}]}`))
	}))
	defer server.Close()

	client := NewRekaClient("secret", server.URL, "")
	videos, err := client.ListVideos(context.Background())
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if len(videos) != 1 || videos[0].VideoID != "v1" {
		t.Errorf("Expected one video v1, got %v", videos)
	}
	if gotKey != "secret" {
		t.Errorf("Expected X-Api-Key header, got %q", gotKey)
	}
}

func TestListVideos_NoBaseURL(t *testing.T) {
	client := NewRekaClient("secret", "", "")
	_, err := client.ListVideos(context.Background())

	var ue *UpstreamError
	if !errors.As(err, &ue) || ue.Kind != ErrTransport {
		t.Fatalf("Expected transport error for missing BASE_URL, got %v", err)
	}
}

func TestListVideos_HTTPError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	client := NewRekaClient("secret", server.URL, "")
	_, err := client.ListVideos(context.Background())

	var ue *UpstreamError
	if !errors.As(err, &ue) {
		t.Fatalf("Expected UpstreamError, got %v", err)
	}
	if ue.Kind != ErrHTTPStatus || ue.Status != http.StatusBadGateway {
		t.Errorf("Expected HTTP 502 error, got kind=%d status=%d", ue.Kind, ue.Status)
	}
}

func TestUploadVideo(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			t.Fatalf("Failed to parse form: %v", err)
		}
		if r.PostFormValue("video_name") != "Lecture 1" {
			t.Errorf("Expected video_name 'Lecture 1', got %q", r.PostFormValue("video_name"))
		}
		if r.PostFormValue("index") != "true" {
			t.Errorf("Expected index 'true', got %q", r.PostFormValue("index"))
		}
		w.Write([]byte(`{"video_id": "new-id"}`))
	}))
	defer server.Close()

	client := NewRekaClient("secret", server.URL, "")
	id, err := client.UploadVideo(context.Background(), "Lecture 1", "https://example.com/v.mp4")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if id != "new-id" {
		t.Errorf("Expected video_id 'new-id', got %q", id)
	}
}

func TestUploadVideo_ErrorMapping(t *testing.T) {
	tests := []struct {
		name       string
		status     int
		body       string
		wantInMsg  string
		wantStatus int
	}{
		{"error field preferred", http.StatusBadRequest, `{"error": "bad url"}`, "bad url", http.StatusBadRequest},
		{"message field fallback", http.StatusUnprocessableEntity, `{"message": "unsupported format"}`, "unsupported format", http.StatusUnprocessableEntity},
		{"status embedded when body empty", http.StatusInternalServerError, ``, "HTTP 500", http.StatusInternalServerError},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tc.status)
				w.Write([]byte(tc.body))
			}))
			defer server.Close()

			client := NewRekaClient("secret", server.URL, "")
			_, err := client.UploadVideo(context.Background(), "n", "u")

			var ue *UpstreamError
			if !errors.As(err, &ue) {
				t.Fatalf("Expected UpstreamError, got %v", err)
			}
			if ue.Status != tc.wantStatus {
				t.Errorf("Expected status %d, got %d", tc.wantStatus, ue.Status)
			}
			if !strings.Contains(ue.Message, tc.wantInMsg) {
				t.Errorf("Expected message containing %q, got %q", tc.wantInMsg, ue.Message)
			}
		})
	}
}

func TestUploadVideo_NoAPIKey(t *testing.T) {
	client := NewRekaClient("", "http://example.invalid", "")
	_, err := client.UploadVideo(context.Background(), "n", "u")

	var ue *UpstreamError
	if !errors.As(err, &ue) || ue.Kind != ErrTransport {
		t.Fatalf("Expected transport error for missing API key, got %v", err)
	}
}

func TestChat(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/qa/chat" {
			t.Errorf("Unexpected path %q", r.URL.Path)
		}
		w.Write([]byte(`{"chat_response": "{\"subject\": \"Math\"}"}`))
	}))
	defer server.Close()

	client := NewRekaClient("secret", server.URL, "")
	result, err := client.Chat(context.Background(), "v1", "analyze", AnalysisTimeout)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if result.ChatResponse == "" || result.Error != "" {
		t.Errorf("Expected clean chat response, got %+v", result)
	}
}

func TestChat_NonJSONBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte("<html>gateway error</html>"))
	}))
	defer server.Close()

	client := NewRekaClient("secret", server.URL, "")
	result, err := client.Chat(context.Background(), "v1", "analyze", AnalysisTimeout)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if result.Error != "Non-JSON response (status 502)" {
		t.Errorf("Expected synthetic non-JSON error, got %q", result.Error)
	}
}

func TestChat_HTTPErrorWithoutErrorField(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
		w.Write([]byte(`{"system_message": "overloaded"}`))
	}))
	defer server.Close()

	client := NewRekaClient("secret", server.URL, "")
	result, err := client.Chat(context.Background(), "v1", "analyze", AnalysisTimeout)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if result.Error != "HTTP 503 calling chat endpoint" {
		t.Errorf("Expected embedded HTTP status, got %q", result.Error)
	}
}

func TestChat_ProcessingHeuristic(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"chat_response": "", "system_message": "No video chunks found for video v1"}`))
	}))
	defer server.Close()

	client := NewRekaClient("secret", server.URL, "")
	result, err := client.Chat(context.Background(), "v1", "probe", ProbeTimeout)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if !result.Processing {
		t.Error("Expected Processing flag for chunkless video")
	}
	if !strings.Contains(result.Error, "still processing") {
		t.Errorf("Expected friendly processing message, got %q", result.Error)
	}
}

func TestChat_Timeout(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
		w.Write([]byte(`{}`))
	}))
	defer server.Close()

	client := NewRekaClient("secret", server.URL, "")
	_, err := client.Chat(context.Background(), "v1", "probe", 20*time.Millisecond)

	var ue *UpstreamError
	if !errors.As(err, &ue) || ue.Kind != ErrTimeout {
		t.Fatalf("Expected timeout error, got %v", err)
	}
}
