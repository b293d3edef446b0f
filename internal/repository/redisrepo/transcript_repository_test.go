package redisrepo

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"cs-assistant-be/internal/entity"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionKey(t *testing.T) {
	assert.Equal(t, "chat:transcript:abc", sessionKey("abc"))
}

func TestDecodeEntries(t *testing.T) {
	in := entity.TranscriptEntry{
		Id:        uuid.New(),
		SessionId: "abc",
		Sender:    "bot",
		Content:   "**Algorithms**",
		CreatedAt: time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC),
	}
	b, err := json.Marshal(in)
	require.NoError(t, err)

	got, err := decodeEntries([]string{string(b)})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, in, *got[0])

	_, err = decodeEntries([]string{"not json"})
	assert.Error(t, err)
}

func newTestRepository(t *testing.T, ttl time.Duration) (*TranscriptRepository, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { rdb.Close() })
	return NewTranscriptRepository(rdb, ttl), mr
}

func entry(sessionId, sender, content string) *entity.TranscriptEntry {
	return &entity.TranscriptEntry{
		Id:        uuid.New(),
		SessionId: sessionId,
		Sender:    sender,
		Content:   content,
		CreatedAt: time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC),
	}
}

func TestTranscriptRoundTrip(t *testing.T) {
	ctx := context.Background()
	repo, mr := newTestRepository(t, time.Hour)

	first := []*entity.TranscriptEntry{entry("s1", "user", "big o"), entry("s1", "bot", "**Time Complexity Analysis**")}
	second := entry("s1", "user", "java")

	require.NoError(t, repo.Append(ctx, "s1", first...))
	require.NoError(t, repo.Append(ctx, "s1", second))
	require.NoError(t, repo.Append(ctx, "s2", entry("s2", "user", "other")))

	got, err := repo.FindBySessionId(ctx, "s1")
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, *first[0], *got[0])
	assert.Equal(t, *first[1], *got[1])
	assert.Equal(t, *second, *got[2])

	assert.Equal(t, time.Hour, mr.TTL(sessionKey("s1")))

	require.NoError(t, repo.DeleteBySessionId(ctx, "s1"))
	assert.False(t, mr.Exists(sessionKey("s1")))

	got, err = repo.FindBySessionId(ctx, "s1")
	require.NoError(t, err)
	assert.Empty(t, got)

	other, err := repo.FindBySessionId(ctx, "s2")
	require.NoError(t, err)
	assert.Len(t, other, 1)
}

func TestTranscriptTTLRefreshedOnAppend(t *testing.T) {
	ctx := context.Background()
	repo, mr := newTestRepository(t, time.Minute)

	require.NoError(t, repo.Append(ctx, "s1", entry("s1", "user", "a")))
	mr.FastForward(40 * time.Second)
	assert.Equal(t, 20*time.Second, mr.TTL(sessionKey("s1")))

	require.NoError(t, repo.Append(ctx, "s1", entry("s1", "bot", "b")))
	assert.Equal(t, time.Minute, mr.TTL(sessionKey("s1")))

	mr.FastForward(2 * time.Minute)
	got, err := repo.FindBySessionId(ctx, "s1")
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestTranscriptWithoutTTL(t *testing.T) {
	ctx := context.Background()
	repo, mr := newTestRepository(t, 0)

	require.NoError(t, repo.Append(ctx, "s1", entry("s1", "user", "a")))
	assert.Equal(t, time.Duration(0), mr.TTL(sessionKey("s1")))
	assert.NoError(t, repo.Append(ctx, "s1"))
}

func TestFindMissingSession(t *testing.T) {
	repo, _ := newTestRepository(t, time.Hour)

	got, err := repo.FindBySessionId(context.Background(), "nobody")
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestTranscriptErrorsWhenRedisDown(t *testing.T) {
	repo, mr := newTestRepository(t, time.Hour)
	mr.Close()

	assert.Error(t, repo.Append(context.Background(), "s1", entry("s1", "user", "a")))
	_, err := repo.FindBySessionId(context.Background(), "s1")
	assert.Error(t, err)
}
