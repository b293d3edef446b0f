package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"cs-assistant-be/internal/dto"
	"cs-assistant-be/internal/entity"
	"cs-assistant-be/internal/mapper"
	"cs-assistant-be/internal/pkg/logger"
	"cs-assistant-be/internal/pkg/markdown"
	"cs-assistant-be/internal/repository/contract"
	"cs-assistant-be/pkg/assistant"
	"cs-assistant-be/pkg/events"

	"github.com/google/uuid"
)

var ErrSessionRequired = errors.New("session_id is required")

type IChatService interface {
	SendChat(ctx context.Context, request *dto.ChatRequest) (*dto.ChatResponse, error)
	ClearChat(ctx context.Context, sessionId string) (*dto.ClearChatResponse, error)
	GetHistory(ctx context.Context, sessionId string) (*dto.ChatHistoryResponse, error)
	GetTopics() []dto.TopicResponse
}

type chatService struct {
	selector    *assistant.Selector
	renderer    *markdown.Renderer
	transcripts contract.TranscriptRepository
	publisher   events.Publisher
	mapper      *mapper.TranscriptMapper
	logger      logger.ILogger
	replyDelay  time.Duration
	now         func() time.Time
}

// NewChatService wires the reply selector to the transport. transcripts and
// publisher may be nil, in which case nothing is recorded or announced.
func NewChatService(
	selector *assistant.Selector,
	renderer *markdown.Renderer,
	transcripts contract.TranscriptRepository,
	publisher events.Publisher,
	log logger.ILogger,
	replyDelay time.Duration,
) IChatService {
	return &chatService{
		selector:    selector,
		renderer:    renderer,
		transcripts: transcripts,
		publisher:   publisher,
		mapper:      mapper.NewTranscriptMapper(),
		logger:      log,
		replyDelay:  replyDelay,
		now:         time.Now,
	}
}

func (s *chatService) SendChat(ctx context.Context, request *dto.ChatRequest) (*dto.ChatResponse, error) {
	asked := s.now()

	if s.replyDelay > 0 {
		timer := time.NewTimer(s.replyDelay)
		select {
		case <-timer.C:
		case <-ctx.Done():
			timer.Stop()
			return nil, ctx.Err()
		}
	}

	match := s.selector.Match(request.Message)
	answered := s.now()

	res := &dto.ChatResponse{
		Response:  match.Text,
		Timestamp: answered.Format(time.RFC3339Nano),
	}

	if request.Format == dto.FormatHTML {
		html, err := s.renderer.Render(match.Text)
		if err != nil {
			return nil, fmt.Errorf("render reply: %w", err)
		}
		res.Html = html
	}

	s.logger.Debug("ChatService", "Reply selected", map[string]interface{}{
		"rule":       match.Rule,
		"key":        match.Key,
		"session_id": request.SessionId,
	})

	if request.SessionId != "" && s.transcripts != nil {
		err := s.transcripts.Append(ctx, request.SessionId,
			&entity.TranscriptEntry{Id: uuid.New(), SessionId: request.SessionId, Sender: dto.SenderUser, Content: request.Message, CreatedAt: asked},
			&entity.TranscriptEntry{Id: uuid.New(), SessionId: request.SessionId, Sender: dto.SenderBot, Content: match.Text, CreatedAt: answered},
		)
		if err != nil {
			s.logger.Warn("ChatService", "Failed to record transcript", map[string]interface{}{"error": err.Error(), "session_id": request.SessionId})
		}
	}

	if s.publisher != nil {
		event := events.NewChatAnswered(request.SessionId, string(match.Rule), match.Key, len(match.Text), answered)
		if err := s.publisher.Publish(ctx, event); err != nil {
			s.logger.Warn("ChatService", "Failed to publish chat event", map[string]interface{}{"error": err.Error()})
		}
	}

	return res, nil
}

func (s *chatService) ClearChat(ctx context.Context, sessionId string) (*dto.ClearChatResponse, error) {
	if sessionId != "" && s.transcripts != nil {
		if err := s.transcripts.DeleteBySessionId(ctx, sessionId); err != nil {
			return nil, fmt.Errorf("clear transcript: %w", err)
		}
		s.logger.Info("ChatService", "Transcript cleared", map[string]interface{}{"session_id": sessionId})
	}

	return &dto.ClearChatResponse{Status: "success", Message: "Chat cleared"}, nil
}

func (s *chatService) GetHistory(ctx context.Context, sessionId string) (*dto.ChatHistoryResponse, error) {
	if sessionId == "" {
		return nil, ErrSessionRequired
	}

	res := &dto.ChatHistoryResponse{SessionId: sessionId, Entries: []dto.TranscriptEntry{}}
	if s.transcripts == nil {
		return res, nil
	}

	entries, err := s.transcripts.FindBySessionId(ctx, sessionId)
	if err != nil {
		return nil, fmt.Errorf("load transcript: %w", err)
	}
	res.Entries = s.mapper.EntriesToDTO(entries)
	return res, nil
}

func (s *chatService) GetTopics() []dto.TopicResponse {
	topics := s.selector.KnowledgeBase().Topics()
	res := make([]dto.TopicResponse, 0, len(topics))
	for _, t := range topics {
		res = append(res, dto.TopicResponse{Key: t.Key, Cues: t.Cues})
	}
	return res
}
