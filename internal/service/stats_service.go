package service

import (
	"context"
	"encoding/json"
	"sync"

	"cs-assistant-be/internal/dto"
	"cs-assistant-be/internal/pkg/logger"
	"cs-assistant-be/pkg/events"

	"github.com/ThreeDotsLabs/watermill/message"
)

type IStatsService interface {
	Consume(ctx context.Context) error
	Snapshot() *dto.StatsResponse
}

// statsService counts answered chats per rule and per topic/fallback key.
type statsService struct {
	subscriber message.Subscriber
	topicName  string
	logger     logger.ILogger

	mu     sync.RWMutex
	total  int64
	byRule map[string]int64
	byKey  map[string]int64
}

func NewStatsService(subscriber message.Subscriber, topicName string, log logger.ILogger) IStatsService {
	return &statsService{
		subscriber: subscriber,
		topicName:  topicName,
		logger:     log,
		byRule:     make(map[string]int64),
		byKey:      make(map[string]int64),
	}
}

func (s *statsService) Consume(ctx context.Context) error {
	messages, err := s.subscriber.Subscribe(ctx, s.topicName)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			s.processMessage(msg)
		}
	}()

	return nil
}

func (s *statsService) processMessage(msg *message.Message) {
	// Invalid messages are acked so they are not redelivered forever.
	defer msg.Ack()

	var env eventEnvelope
	if err := json.Unmarshal(msg.Payload, &env); err != nil {
		s.logger.Warn("StatsService", "Dropping undecodable event", map[string]interface{}{"error": err.Error(), "uuid": msg.UUID})
		return
	}
	if env.Type != events.TypeChatAnswered {
		return
	}

	rule, _ := env.Data["rule"].(string)
	key, _ := env.Data["key"].(string)

	s.mu.Lock()
	s.total++
	s.byRule[rule]++
	if key != "" {
		s.byKey[key]++
	}
	s.mu.Unlock()
}

func (s *statsService) Snapshot() *dto.StatsResponse {
	s.mu.RLock()
	defer s.mu.RUnlock()

	res := &dto.StatsResponse{
		Total:  s.total,
		ByRule: make(map[string]int64, len(s.byRule)),
		ByKey:  make(map[string]int64, len(s.byKey)),
	}
	for k, v := range s.byRule {
		res.ByRule[k] = v
	}
	for k, v := range s.byKey {
		res.ByKey[k] = v
	}
	return res
}
