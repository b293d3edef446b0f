package dto

import (
	"time"

	"github.com/google/uuid"
)

const (
	SenderUser = "user"
	SenderBot  = "bot"

	FormatText = "text"
	FormatHTML = "html"
)

// ChatRequest is the body of POST /api/chat. A missing message is an empty one.
type ChatRequest struct {
	Message   string `json:"message"`
	SessionId string `json:"session_id,omitempty" validate:"omitempty,max=128"`
	Format    string `json:"format,omitempty" validate:"omitempty,oneof=text html"`
}

type ChatResponse struct {
	Response  string `json:"response"`
	Timestamp string `json:"timestamp"`
	Html      string `json:"html,omitempty"`
}

type ClearChatRequest struct {
	SessionId string `json:"session_id,omitempty" validate:"omitempty,max=128"`
}

type ClearChatResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// TranscriptEntry is one line of a session transcript.
type TranscriptEntry struct {
	Id        uuid.UUID `json:"id"`
	Sender    string    `json:"sender"`
	Content   string    `json:"content"`
	Timestamp time.Time `json:"timestamp"`
}

type ChatHistoryResponse struct {
	SessionId string            `json:"session_id"`
	Entries   []TranscriptEntry `json:"entries"`
}

type TopicResponse struct {
	Key  string   `json:"key"`
	Cues []string `json:"cues"`
}

type StatsResponse struct {
	Total  int64            `json:"total"`
	ByRule map[string]int64 `json:"by_rule"`
	ByKey  map[string]int64 `json:"by_key"`
}
