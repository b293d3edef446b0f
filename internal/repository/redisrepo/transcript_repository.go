package redisrepo

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"cs-assistant-be/internal/entity"

	"github.com/redis/go-redis/v9"
)

const keyPrefix = "chat:transcript:"

// TranscriptRepository stores each session as a Redis list of JSON entries.
// The list TTL is refreshed on every append.
type TranscriptRepository struct {
	rdb redis.Cmdable
	ttl time.Duration
}

func NewTranscriptRepository(rdb redis.Cmdable, ttl time.Duration) *TranscriptRepository {
	return &TranscriptRepository{rdb: rdb, ttl: ttl}
}

func sessionKey(sessionId string) string {
	return keyPrefix + sessionId
}

func (r *TranscriptRepository) Append(ctx context.Context, sessionId string, entries ...*entity.TranscriptEntry) error {
	if len(entries) == 0 {
		return nil
	}

	values := make([]interface{}, 0, len(entries))
	for _, e := range entries {
		b, err := json.Marshal(e)
		if err != nil {
			return fmt.Errorf("encode transcript entry: %w", err)
		}
		values = append(values, b)
	}

	key := sessionKey(sessionId)
	_, err := r.rdb.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.RPush(ctx, key, values...)
		if r.ttl > 0 {
			pipe.Expire(ctx, key, r.ttl)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("append transcript %s: %w", sessionId, err)
	}
	return nil
}

func (r *TranscriptRepository) FindBySessionId(ctx context.Context, sessionId string) ([]*entity.TranscriptEntry, error) {
	raw, err := r.rdb.LRange(ctx, sessionKey(sessionId), 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("read transcript %s: %w", sessionId, err)
	}
	return decodeEntries(raw)
}

func (r *TranscriptRepository) DeleteBySessionId(ctx context.Context, sessionId string) error {
	if err := r.rdb.Del(ctx, sessionKey(sessionId)).Err(); err != nil {
		return fmt.Errorf("delete transcript %s: %w", sessionId, err)
	}
	return nil
}

func decodeEntries(raw []string) ([]*entity.TranscriptEntry, error) {
	out := make([]*entity.TranscriptEntry, 0, len(raw))
	for _, item := range raw {
		var e entity.TranscriptEntry
		if err := json.Unmarshal([]byte(item), &e); err != nil {
			return nil, fmt.Errorf("decode transcript entry: %w", err)
		}
		out = append(out, &e)
	}
	return out, nil
}
