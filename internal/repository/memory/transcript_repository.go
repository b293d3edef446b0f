package memory

import (
	"context"
	"sync"
	"time"

	"cs-assistant-be/internal/entity"

	"github.com/patrickmn/go-cache"
)

type TranscriptRepository struct {
	cache *cache.Cache
	mu    sync.Mutex
}

// NewTranscriptRepository keeps each session for ttl after its last append,
// purging expired sessions every 10 minutes.
func NewTranscriptRepository(ttl time.Duration) *TranscriptRepository {
	c := cache.New(ttl, 10*time.Minute)
	return &TranscriptRepository{
		cache: c,
	}
}

func (r *TranscriptRepository) Append(_ context.Context, sessionId string, entries ...*entity.TranscriptEntry) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	var current []*entity.TranscriptEntry
	if x, found := r.cache.Get(sessionId); found {
		current = x.([]*entity.TranscriptEntry)
	}

	next := make([]*entity.TranscriptEntry, 0, len(current)+len(entries))
	next = append(next, current...)
	for _, e := range entries {
		cp := *e
		next = append(next, &cp)
	}

	r.cache.Set(sessionId, next, cache.DefaultExpiration)
	return nil
}

func (r *TranscriptRepository) FindBySessionId(_ context.Context, sessionId string) ([]*entity.TranscriptEntry, error) {
	x, found := r.cache.Get(sessionId)
	if !found {
		return []*entity.TranscriptEntry{}, nil
	}

	stored := x.([]*entity.TranscriptEntry)
	out := make([]*entity.TranscriptEntry, len(stored))
	for i, e := range stored {
		cp := *e
		out[i] = &cp
	}
	return out, nil
}

func (r *TranscriptRepository) DeleteBySessionId(_ context.Context, sessionId string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.cache.Delete(sessionId)
	return nil
}
