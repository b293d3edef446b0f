package controller

import (
	"errors"
	"strconv"

	"cs-assistant-be/internal/dto"
	"cs-assistant-be/internal/pkg/serverutils"
	"cs-assistant-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

const SessionHeader = "X-Session-Id"

type IChatController interface {
	RegisterRoutes(r fiber.Router)
	SendChat(ctx *fiber.Ctx) error
	ClearChat(ctx *fiber.Ctx) error
	GetHistory(ctx *fiber.Ctx) error
	GetTopics(ctx *fiber.Ctx) error
	GetStats(ctx *fiber.Ctx) error
}

type chatController struct {
	service          service.IChatService
	stats            service.IStatsService
	maxMessageLength int
}

func NewChatController(service service.IChatService, stats service.IStatsService, maxMessageLength int) IChatController {
	return &chatController{
		service:          service,
		stats:            stats,
		maxMessageLength: maxMessageLength,
	}
}

func (c *chatController) RegisterRoutes(r fiber.Router) {
	r.Post("/chat", c.SendChat)
	r.Post("/clear_chat", c.ClearChat)

	h := r.Group("/chat")
	h.Get("/history", c.GetHistory)
	h.Get("/topics", c.GetTopics)
	h.Get("/stats", c.GetStats)
}

func (c *chatController) SendChat(ctx *fiber.Ctx) error {
	var req dto.ChatRequest
	if err := parseOptionalBody(ctx, &req); err != nil {
		return err
	}
	if req.SessionId == "" {
		req.SessionId = sessionFromRequest(ctx)
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}
	if c.maxMessageLength > 0 {
		if err := serverutils.ValidateVar("message", req.Message, "max="+strconv.Itoa(c.maxMessageLength)); err != nil {
			return err
		}
	}

	res, err := c.service.SendChat(ctx.UserContext(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(res)
}

func (c *chatController) ClearChat(ctx *fiber.Ctx) error {
	var req dto.ClearChatRequest
	if err := parseOptionalBody(ctx, &req); err != nil {
		return err
	}
	if req.SessionId == "" {
		req.SessionId = sessionFromRequest(ctx)
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.ClearChat(ctx.UserContext(), req.SessionId)
	if err != nil {
		return err
	}

	return ctx.JSON(res)
}

func (c *chatController) GetHistory(ctx *fiber.Ctx) error {
	sessionId := sessionFromRequest(ctx)

	res, err := c.service.GetHistory(ctx.UserContext(), sessionId)
	if err != nil {
		if errors.Is(err, service.ErrSessionRequired) {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get chat history", res))
}

func (c *chatController) GetTopics(ctx *fiber.Ctx) error {
	return ctx.JSON(serverutils.SuccessResponse("Success get topics", c.service.GetTopics()))
}

func (c *chatController) GetStats(ctx *fiber.Ctx) error {
	return ctx.JSON(serverutils.SuccessResponse("Success get chat stats", c.stats.Snapshot()))
}

// sessionFromRequest reads the session id from the query, then the header.
func sessionFromRequest(ctx *fiber.Ctx) string {
	return ctx.Query("session_id", ctx.Get(SessionHeader))
}

// parseOptionalBody treats an empty body as the zero request; browser
// clients post clear_chat without a payload.
func parseOptionalBody(ctx *fiber.Ctx, out interface{}) error {
	if len(ctx.Body()) == 0 {
		return nil
	}
	if err := ctx.BodyParser(out); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	return nil
}
