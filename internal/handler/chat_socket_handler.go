package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"strconv"

	"cs-assistant-be/internal/dto"
	"cs-assistant-be/internal/pkg/logger"
	"cs-assistant-be/internal/pkg/serverutils"
	"cs-assistant-be/internal/service"
	internalWS "cs-assistant-be/internal/websocket"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"
	"github.com/google/uuid"
)

// ChatSocketHandler serves the chat over a websocket. Each inbound frame is
// the message text, or a ChatRequest JSON object when it has a "message"
// key. Each reply is a ChatResponse JSON object.
type ChatSocketHandler struct {
	service          service.IChatService
	logger           logger.ILogger
	maxMessageLength int
}

func NewChatSocketHandler(service service.IChatService, log logger.ILogger, maxMessageLength int) *ChatSocketHandler {
	return &ChatSocketHandler{
		service:          service,
		logger:           log,
		maxMessageLength: maxMessageLength,
	}
}

func (h *ChatSocketHandler) RegisterRoutes(r fiber.Router) {
	r.Get("/chat/ws", h.ServeWs)
}

func (h *ChatSocketHandler) ServeWs(c *fiber.Ctx) error {
	if !websocket.IsWebSocketUpgrade(c) {
		return fiber.ErrUpgradeRequired
	}

	sessionId := c.Query("session_id", c.Get("X-Session-Id"))
	if sessionId == "" {
		sessionId = uuid.NewString()
	}
	if err := serverutils.ValidateVar("session_id", sessionId, "max=128"); err != nil {
		return err
	}

	return websocket.New(func(conn *websocket.Conn) {
		h.logger.Info("ChatSocket", "Starting WebSocket session", map[string]interface{}{"session_id": sessionId})
		client := internalWS.NewClient(conn, sessionId, func(ctx context.Context, frame []byte) []byte {
			return h.Respond(ctx, sessionId, frame)
		}, h.logger)
		client.Serve()
		h.logger.Info("ChatSocket", "WebSocket session ended", map[string]interface{}{"session_id": sessionId})
	})(c)
}

// Respond answers one frame. Errors are encoded as an error envelope instead
// of closing the socket.
func (h *ChatSocketHandler) Respond(ctx context.Context, sessionId string, frame []byte) []byte {
	req := parseFrame(frame)
	req.SessionId = sessionId

	if err := serverutils.ValidateRequest(req); err != nil {
		return encodeError(fiber.StatusBadRequest, err.Error())
	}
	if h.maxMessageLength > 0 {
		if err := serverutils.ValidateVar("message", req.Message, "max="+strconv.Itoa(h.maxMessageLength)); err != nil {
			return encodeError(fiber.StatusBadRequest, err.Error())
		}
	}

	res, err := h.service.SendChat(ctx, &req)
	if err != nil {
		h.logger.Error("ChatSocket", "Failed to answer", map[string]interface{}{"session_id": sessionId, "error": err})
		return encodeError(fiber.StatusInternalServerError, "Internal server error")
	}

	b, _ := json.Marshal(res)
	return b
}

// parseFrame reads a frame as a ChatRequest only when it is a JSON object
// carrying a "message" key. Anything else, JSON-looking or not, is the
// message text itself.
func parseFrame(frame []byte) dto.ChatRequest {
	raw := dto.ChatRequest{Message: string(frame)}

	trimmed := bytes.TrimSpace(frame)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return raw
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(trimmed, &fields); err != nil {
		return raw
	}
	if _, ok := fields["message"]; !ok {
		return raw
	}

	var parsed dto.ChatRequest
	if err := json.Unmarshal(trimmed, &parsed); err != nil {
		return raw
	}
	return parsed
}

func encodeError(code int, message string) []byte {
	b, _ := json.Marshal(serverutils.ErrorResponse(code, message))
	return b
}
