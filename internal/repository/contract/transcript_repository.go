package contract

import (
	"context"

	"cs-assistant-be/internal/entity"
)

// TranscriptRepository keeps an append-only log of messages per chat session.
type TranscriptRepository interface {
	Append(ctx context.Context, sessionId string, entries ...*entity.TranscriptEntry) error
	FindBySessionId(ctx context.Context, sessionId string) ([]*entity.TranscriptEntry, error)
	DeleteBySessionId(ctx context.Context, sessionId string) error
}
