package models

// ChatMessage is a single message in a Reka QA conversation.
type ChatMessage struct {
	Role    string `json:"role"` // "user" or "assistant"
	Content string `json:"content"`
}

// ChatRequest is the payload sent to the Reka video QA endpoint.
type ChatRequest struct {
	VideoID  string        `json:"video_id"`
	Messages []ChatMessage `json:"messages"`
}

// ChatResult is the reply from the Reka video QA endpoint. The upstream API
// has no explicit job-status surface, so readiness has to be inferred from
// system_message content.
type ChatResult struct {
	ChatResponse  string `json:"chat_response"`
	SystemMessage string `json:"system_message"`
	Error         string `json:"error"`

	// Processing is set when the system message indicates the video has not
	// finished indexing yet.
	Processing bool `json:"-"`
}
