package bootstrap

import (
	"context"
	"log"

	"cs-assistant-be/internal/config"
	"cs-assistant-be/internal/controller"
	"cs-assistant-be/internal/handler"
	"cs-assistant-be/internal/pkg/logger"
	"cs-assistant-be/internal/pkg/markdown"
	"cs-assistant-be/internal/repository/contract"
	"cs-assistant-be/internal/repository/memory"
	"cs-assistant-be/internal/repository/redisrepo"
	"cs-assistant-be/internal/service"
	"cs-assistant-be/pkg/assistant"
	"cs-assistant-be/pkg/events"
	pktNats "cs-assistant-be/pkg/nats"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/redis/go-redis/v9"
)

type Container struct {
	// Controllers
	ChatController controller.IChatController
	ChatSocket     *handler.ChatSocketHandler

	// Background Services (Exposed for main.go to run)
	StatsService service.IStatsService

	Logger logger.ILogger

	closers []func()
}

// NewContainer builds every dependency from cfg. kb is injected so tests and
// tools can substitute their own knowledge base; nil means the built-in one.
func NewContainer(cfg *config.Config, kb *assistant.KnowledgeBase) *Container {
	// 1. Core Facades
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.IsProduction())
	wsLogger := logger.NewIsolatedLogger(cfg.App.WsLogFilePath)
	return NewContainerWithLoggers(cfg, kb, sysLogger, wsLogger)
}

// NewContainerWithLoggers is NewContainer with caller-supplied loggers.
func NewContainerWithLoggers(cfg *config.Config, kb *assistant.KnowledgeBase, sysLogger, wsLogger logger.ILogger) *Container {
	c := &Container{Logger: sysLogger}

	if kb == nil {
		kb = assistant.Default()
	}
	selector := assistant.NewSelector(kb)

	// 2. Event Bus
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermill.NewStdLogger(false, false),
	)
	c.closers = append(c.closers, func() { pubSub.Close() })

	publishers := events.MultiPublisher{service.NewPublisherService(cfg.Events.Topic, pubSub)}
	if cfg.Events.NatsEnabled {
		natsPub, err := pktNats.NewPublisher(cfg.Events.NatsURL)
		if err != nil {
			log.Printf("[WARN] Failed to connect to NATS Publisher: %v", err)
		} else {
			publishers = append(publishers, natsPub)
			c.closers = append(c.closers, natsPub.Close)
		}
	}

	// 3. Transcript store
	transcripts := c.newTranscriptRepository(cfg)

	// 4. Services
	chatService := service.NewChatService(
		selector,
		markdown.NewRenderer(),
		transcripts,
		publishers,
		sysLogger,
		cfg.Chat.ReplyDelay,
	)
	c.StatsService = service.NewStatsService(pubSub, cfg.Events.Topic, sysLogger)

	// 5. Transport
	c.ChatController = controller.NewChatController(chatService, c.StatsService, cfg.Chat.MaxMessageLength)
	c.ChatSocket = handler.NewChatSocketHandler(chatService, wsLogger, cfg.Chat.MaxMessageLength)

	return c
}

func (c *Container) newTranscriptRepository(cfg *config.Config) contract.TranscriptRepository {
	if cfg.Transcript.Store != config.TranscriptStoreRedis {
		return memory.NewTranscriptRepository(cfg.Transcript.TTL)
	}

	opt, err := redis.ParseURL(cfg.Transcript.RedisURL)
	if err != nil {
		log.Printf("[WARN] Failed to parse Redis URL: %v. Using direct Addr", err)
		opt = &redis.Options{
			Addr: cfg.Transcript.RedisURL,
		}
	}
	rdb := redis.NewClient(opt)
	if _, err := rdb.Ping(context.Background()).Result(); err != nil {
		log.Printf("[WARN] Failed to connect to Redis: %v. Falling back to memory transcripts", err)
		rdb.Close()
		return memory.NewTranscriptRepository(cfg.Transcript.TTL)
	}
	c.closers = append(c.closers, func() { rdb.Close() })

	log.Printf("[INFO] Using Redis transcript store (%s)", opt.Addr)
	return redisrepo.NewTranscriptRepository(rdb, cfg.Transcript.TTL)
}

// Close releases bus, NATS and Redis connections in reverse order.
func (c *Container) Close() {
	for i := len(c.closers) - 1; i >= 0; i-- {
		c.closers[i]()
	}
	_ = c.Logger.Sync()
}
