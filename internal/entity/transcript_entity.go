package entity

import (
	"time"

	"github.com/google/uuid"
)

// TranscriptEntry is one message of a chat session as kept by the server.
// Entries are append-only; a session is cleared as a whole.
type TranscriptEntry struct {
	Id        uuid.UUID `json:"id"`
	SessionId string    `json:"session_id"`
	Sender    string    `json:"sender"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}
