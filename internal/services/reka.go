package services

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"quizlens-backend/internal/models"
)

// Per-endpoint timeouts. Chat timeouts scale with how much the model has to
// produce: a readiness probe is near-instant, quiz generation is not.
const (
	ListTimeout       = 10 * time.Second
	UploadTimeout     = 30 * time.Second
	ProbeTimeout      = 10 * time.Second
	RoastTimeout      = 30 * time.Second
	AnalysisTimeout   = 60 * time.Second
	GenerationTimeout = 90 * time.Second
)

// processingMessage replaces the raw "No video chunks found" system message
// from upstream, which is the only signal that indexing has not finished.
const processingMessage = "Video is still processing. Please wait a few minutes and try again."

type ErrorKind int

const (
	ErrTimeout ErrorKind = iota
	ErrHTTPStatus
	ErrTransport
	ErrDecode
)

// UpstreamError is the failure of a single Reka API call. Status is only set
// for ErrHTTPStatus.
type UpstreamError struct {
	Kind    ErrorKind
	Status  int
	Message string
}

func (e *UpstreamError) Error() string {
	return e.Message
}

// RekaClient issues requests against the Reka Vision API. Every call carries
// its own deadline; the shared http.Client deliberately has no global timeout.
type RekaClient struct {
	apiKey     string
	baseURL    string
	qaEndpoint string
	httpClient *http.Client
}

func NewRekaClient(apiKey, baseURL, qaEndpoint string) *RekaClient {
	baseURL = strings.TrimRight(baseURL, "/")
	if qaEndpoint == "" && baseURL != "" {
		qaEndpoint = baseURL + "/qa/chat"
	}
	return &RekaClient{
		apiKey:     apiKey,
		baseURL:    baseURL,
		qaEndpoint: qaEndpoint,
		httpClient: &http.Client{},
	}
}

// ListVideos fetches the indexed video list. The API answers a bare POST with
// {"results": [...]}.
func (c *RekaClient) ListVideos(ctx context.Context) ([]models.Video, error) {
	if c.baseURL == "" {
		return nil, &UpstreamError{Kind: ErrTransport, Message: "BASE_URL is not configured"}
	}

	ctx, cancel := context.WithTimeout(ctx, ListTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/videos/get", nil)
	if err != nil {
		return nil, &UpstreamError{Kind: ErrTransport, Message: err.Error()}
	}
	c.setAuth(req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, wrapTransport(err, "video list request failed")
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &UpstreamError{
			Kind:    ErrHTTPStatus,
			Status:  resp.StatusCode,
			Message: fmt.Sprintf("HTTP %d listing videos", resp.StatusCode),
		}
	}

	var body struct {
		Results []models.Video `json:"results"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, &UpstreamError{Kind: ErrDecode, Message: "invalid JSON from video list endpoint"}
	}

	return body.Results, nil
}

// UploadVideo submits a video URL for indexing and returns the new video ID.
func (c *RekaClient) UploadVideo(ctx context.Context, name, videoURL string) (string, error) {
	if c.apiKey == "" {
		return "", &UpstreamError{Kind: ErrTransport, Message: "API key not configured"}
	}
	if c.baseURL == "" {
		return "", &UpstreamError{Kind: ErrTransport, Message: "BASE_URL is not configured"}
	}

	ctx, cancel := context.WithTimeout(ctx, UploadTimeout)
	defer cancel()

	form := url.Values{
		"video_name": {name},
		"index":      {"true"},
		"video_url":  {videoURL},
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/videos/upload", strings.NewReader(form.Encode()))
	if err != nil {
		return "", &UpstreamError{Kind: ErrTransport, Message: err.Error()}
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	c.setAuth(req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if isTimeout(err) {
			return "", &UpstreamError{Kind: ErrTimeout, Message: "Request timed out"}
		}
		return "", &UpstreamError{Kind: ErrTransport, Message: fmt.Sprintf("Upload failed: %v", err)}
	}
	defer resp.Body.Close()

	// Parse the body either way; error details ride in it on failure.
	var body map[string]any
	json.NewDecoder(resp.Body).Decode(&body)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		msg := stringValue(body, "error")
		if msg == "" {
			msg = stringValue(body, "message")
		}
		if msg == "" {
			msg = fmt.Sprintf("HTTP %d", resp.StatusCode)
		}
		return "", &UpstreamError{
			Kind:    ErrHTTPStatus,
			Status:  resp.StatusCode,
			Message: "Upload failed: " + msg,
		}
	}

	videoID := stringValue(body, "video_id")
	if videoID == "" {
		videoID = "unknown"
	}
	return videoID, nil
}

// Chat sends a single-turn prompt about a video to the QA endpoint. HTTP and
// payload level failures are reported inside the returned ChatResult, the way
// the upstream itself reports them; only transport failures become errors.
func (c *RekaClient) Chat(ctx context.Context, videoID, prompt string, timeout time.Duration) (*models.ChatResult, error) {
	if c.qaEndpoint == "" {
		return nil, &UpstreamError{Kind: ErrTransport, Message: "BASE_URL is not configured"}
	}

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	payload, err := json.Marshal(models.ChatRequest{
		VideoID: videoID,
		Messages: []models.ChatMessage{
			{Role: "user", Content: prompt},
		},
	})
	if err != nil {
		return nil, &UpstreamError{Kind: ErrTransport, Message: err.Error()}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.qaEndpoint, bytes.NewReader(payload))
	if err != nil {
		return nil, &UpstreamError{Kind: ErrTransport, Message: err.Error()}
	}
	req.Header.Set("Content-Type", "application/json")
	c.setAuth(req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, wrapTransport(err, "chat API call failed")
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, wrapTransport(err, "chat API call failed")
	}

	result := &models.ChatResult{}
	if err := json.Unmarshal(raw, result); err != nil {
		result = &models.ChatResult{
			Error: fmt.Sprintf("Non-JSON response (status %d)", resp.StatusCode),
		}
	}

	if (resp.StatusCode < 200 || resp.StatusCode >= 300) && result.Error == "" {
		result.Error = fmt.Sprintf("HTTP %d calling chat endpoint", resp.StatusCode)
	}

	if strings.Contains(result.SystemMessage, "No video chunks found") {
		result.Error = processingMessage
		result.Processing = true
	}

	return result, nil
}

func (c *RekaClient) setAuth(req *http.Request) {
	if c.apiKey != "" {
		req.Header.Set("X-Api-Key", c.apiKey)
	}
}

func wrapTransport(err error, context string) *UpstreamError {
	if isTimeout(err) {
		return &UpstreamError{Kind: ErrTimeout, Message: context + ": request timed out"}
	}
	return &UpstreamError{Kind: ErrTransport, Message: fmt.Sprintf("%s: %v", context, err)}
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr interface{ Timeout() bool }
	return errors.As(err, &netErr) && netErr.Timeout()
}

func stringValue(m map[string]any, key string) string {
	s, _ := m[key].(string)
	return s
}
