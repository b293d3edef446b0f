package handler

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"cs-assistant-be/internal/dto"
	"cs-assistant-be/internal/pkg/logger"
	"cs-assistant-be/internal/pkg/markdown"
	"cs-assistant-be/internal/pkg/serverutils"
	"cs-assistant-be/internal/repository/memory"
	"cs-assistant-be/internal/service"
	"cs-assistant-be/pkg/assistant"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestHandler(maxLen int) (*ChatSocketHandler, *memory.TranscriptRepository) {
	repo := memory.NewTranscriptRepository(time.Hour)
	svc := service.NewChatService(
		assistant.NewSelector(assistant.Default()),
		markdown.NewRenderer(),
		repo,
		nil,
		logger.NewNopLogger(),
		0,
	)
	return NewChatSocketHandler(svc, logger.NewNopLogger(), maxLen), repo
}

func TestRespondPlainText(t *testing.T) {
	h, repo := newTestHandler(100)

	var res dto.ChatResponse
	require.NoError(t, json.Unmarshal(h.Respond(context.Background(), "ws-1", []byte("Neural Networks")), &res))
	assert.Contains(t, res.Response, "**Machine Learning**")
	assert.NotEmpty(t, res.Timestamp)

	entries, _ := repo.FindBySessionId(context.Background(), "ws-1")
	assert.Len(t, entries, 2)
}

func TestRespondJSONFrame(t *testing.T) {
	h, _ := newTestHandler(100)

	frame := []byte(`{"message": "cloud deployment", "format": "html", "session_id": "ignored"}`)
	var res dto.ChatResponse
	require.NoError(t, json.Unmarshal(h.Respond(context.Background(), "ws-1", frame), &res))
	assert.Contains(t, res.Response, "**Cloud Computing**")
	assert.Contains(t, res.Html, "<strong>Cloud Computing</strong>")
}

func TestRespondRejectsInvalidFrames(t *testing.T) {
	h, _ := newTestHandler(5)

	var res serverutils.BaseResponse[any]
	require.NoError(t, json.Unmarshal(h.Respond(context.Background(), "ws-1", []byte("much too long")), &res))
	assert.False(t, res.Success)
	assert.Equal(t, 400, res.Code)

	require.NoError(t, json.Unmarshal(h.Respond(context.Background(), "ws-1", []byte(`{"message":"a","format":"pdf"}`)), &res))
	assert.Equal(t, 400, res.Code)
}

func TestRespondJSONLookingText(t *testing.T) {
	h, repo := newTestHandler(100)
	sel := assistant.NewSelector(assistant.Default())

	frames := []string{
		`{"topic":"algorithms"}`,
		`{"message": 42}`,
		`{not json at all`,
	}
	for _, frame := range frames {
		t.Run(frame, func(t *testing.T) {
			var res dto.ChatResponse
			require.NoError(t, json.Unmarshal(h.Respond(context.Background(), "ws-2", []byte(frame)), &res))
			assert.Equal(t, sel.Select(frame), res.Response)
		})
	}

	// {"topic":"algorithms"} contains the topic key as a substring.
	var res dto.ChatResponse
	require.NoError(t, json.Unmarshal(h.Respond(context.Background(), "ws-3", []byte(`{"topic":"algorithms"}`)), &res))
	assert.Contains(t, res.Response, "**Algorithms**")

	entries, _ := repo.FindBySessionId(context.Background(), "ws-3")
	require.Len(t, entries, 2)
	assert.Equal(t, `{"topic":"algorithms"}`, entries[0].Content)
}

func TestParseFrame(t *testing.T) {
	tests := []struct {
		frame string
		want  dto.ChatRequest
	}{
		{"hello", dto.ChatRequest{Message: "hello"}},
		{`{"message":"hi","format":"html"}`, dto.ChatRequest{Message: "hi", Format: dto.FormatHTML}},
		{`  {"message":null}`, dto.ChatRequest{}},
		{`{"topic":"x"}`, dto.ChatRequest{Message: `{"topic":"x"}`}},
		{`{"message":["a"]}`, dto.ChatRequest{Message: `{"message":["a"]}`}},
		{"", dto.ChatRequest{}},
	}
	for _, tt := range tests {
		t.Run(tt.frame, func(t *testing.T) {
			assert.Equal(t, tt.want, parseFrame([]byte(tt.frame)))
		})
	}
}
