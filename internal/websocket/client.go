package websocket

import (
	"context"
	"time"

	"cs-assistant-be/internal/pkg/logger"

	"github.com/gofiber/websocket/v2"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 16 * 1024
	sendBuffer     = 32
)

// Responder turns one inbound frame into one outbound frame.
type Responder func(ctx context.Context, frame []byte) []byte

// Client is a middleman between the websocket connection and the responder.
type Client struct {
	Conn      *websocket.Conn
	SessionId string
	Send      chan []byte

	respond Responder
	logger  logger.ILogger
}

func NewClient(conn *websocket.Conn, sessionId string, respond Responder, log logger.ILogger) *Client {
	return &Client{
		Conn:      conn,
		SessionId: sessionId,
		Send:      make(chan []byte, sendBuffer),
		respond:   respond,
		logger:    log,
	}
}

// Serve runs the pumps until the peer goes away. It blocks.
func (c *Client) Serve() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan struct{})
	go func() {
		c.writePump()
		close(done)
	}()

	c.readPump(ctx)
	<-done
}

// readPump answers each inbound message in order.
func (c *Client) readPump(ctx context.Context) {
	defer func() {
		close(c.Send)
	}()
	c.Conn.SetReadLimit(maxMessageSize)
	c.Conn.SetReadDeadline(time.Now().Add(pongWait))
	c.Conn.SetPongHandler(func(string) error {
		c.Conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		_, frame, err := c.Conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				c.logger.Warn("ChatSocket", "Unexpected close", map[string]interface{}{"session_id": c.SessionId, "error": err.Error()})
			}
			return
		}
		c.Conn.SetReadDeadline(time.Now().Add(pongWait))

		select {
		case c.Send <- c.respond(ctx, frame):
		default:
			c.logger.Warn("ChatSocket", "Send buffer full, dropping reply", map[string]interface{}{"session_id": c.SessionId})
		}
	}
}

// writePump pumps replies to the websocket connection.
func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.Conn.Close()
	}()

	for {
		select {
		case message, ok := <-c.Send:
			c.Conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				c.Conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.Conn.WriteMessage(websocket.TextMessage, message); err != nil {
				return
			}
		case <-ticker.C:
			c.Conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.Conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
