package server

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"github.com/gorilla/websocket"

	"github.com/lox/holdem-referee/internal/game"
	"github.com/lox/holdem-referee/internal/gameapi"
)

const (
	// Time allowed to write a message to the peer
	writeWait = 10 * time.Second

	// Send pings with this period. Must be less than the pong wait
	pingFraction = 9.0 / 10.0
)

// ErrConnectionClosed is returned when sending on a closed connection
var ErrConnectionClosed = websocket.ErrCloseSent

// Connection represents a WebSocket connection from the platform
type Connection struct {
	conn      *websocket.Conn
	send      chan *Message
	logger    *log.Logger
	clock     quartz.Clock
	verifier  *game.Verifier
	limits    LimitSettings
	ctx       context.Context
	cancel    context.CancelFunc
	closeOnce sync.Once
}

// NewConnection creates a new connection wrapper
func NewConnection(conn *websocket.Conn, logger *log.Logger, clock quartz.Clock, verifier *game.Verifier, limits LimitSettings) *Connection {
	ctx, cancel := context.WithCancel(context.Background())

	return &Connection{
		conn:     conn,
		send:     make(chan *Message, 64),
		logger:   logger.WithPrefix("conn"),
		clock:    clock,
		verifier: verifier,
		limits:   limits,
		ctx:      ctx,
		cancel:   cancel,
	}
}

// Start begins handling the connection
func (c *Connection) Start() {
	go c.writePump()
	go c.readPump()
}

// Close closes the connection
func (c *Connection) Close() error {
	var err error
	c.closeOnce.Do(func() {
		c.cancel()
		close(c.send)
		err = c.conn.Close()
	})
	return err
}

// Done is closed once the connection has shut down
func (c *Connection) Done() <-chan struct{} {
	return c.ctx.Done()
}

// SendMessage queues a message for delivery to the peer
func (c *Connection) SendMessage(msg *Message) error {
	defer func() {
		if r := recover(); r != nil {
			// Channel was closed during shutdown
			c.logger.Debug("Attempted to send message on closed connection", "error", r)
		}
	}()

	select {
	case c.send <- msg:
		return nil
	case <-c.ctx.Done():
		return c.ctx.Err()
	default:
		c.logger.Warn("Connection send buffer full, closing connection")
		_ = c.Close()
		return ErrConnectionClosed
	}
}

func (c *Connection) pongWait() time.Duration {
	return time.Duration(c.limits.PongWaitSeconds) * time.Second
}

// readPump handles incoming messages from the peer
func (c *Connection) readPump() {
	defer func() { _ = c.Close() }()

	c.conn.SetReadLimit(int64(c.limits.MaxMessageBytes))
	_ = c.conn.SetReadDeadline(time.Now().Add(c.pongWait()))
	c.conn.SetPongHandler(func(string) error {
		_ = c.conn.SetReadDeadline(time.Now().Add(c.pongWait()))
		return nil
	})

	for {
		select {
		case <-c.ctx.Done():
			return
		default:
		}

		var msg Message
		if err := c.conn.ReadJSON(&msg); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				c.logger.Error("WebSocket error", "error", err)
			}
			return
		}

		c.handleMessage(&msg)
	}
}

// writePump delivers queued messages and keeps the connection alive
func (c *Connection) writePump() {
	ticker := c.clock.NewTicker(time.Duration(float64(c.pongWait()) * pingFraction))
	defer func() {
		ticker.Stop()
		_ = c.Close()
	}()

	for {
		select {
		case msg, ok := <-c.send:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				_ = c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteJSON(msg); err != nil {
				c.logger.Error("Failed to write message", "error", err)
				return
			}

		case <-ticker.C:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}

		case <-c.ctx.Done():
			return
		}
	}
}

// handleMessage dispatches a request to the verifier and queues the
// verdict for delivery
func (c *Connection) handleMessage(msg *Message) {
	switch msg.Type {
	case MessageTypeVerifyMove:
		var req gameapi.VerifyMove
		if err := json.Unmarshal(msg.Data, &req); err != nil {
			c.sendError(msg.RequestID, "malformed_request", err.Error())
			return
		}

		verdict := c.verifier.Verify(req)
		reply, err := NewMessage(MessageTypeVerifyMoveDone, verdict)
		if err != nil {
			c.logger.Error("Failed to encode verdict", "error", err)
			return
		}
		reply.RequestID = msg.RequestID
		_ = c.SendMessage(reply)

	default:
		c.sendError(msg.RequestID, "unknown_type", string(msg.Type))
	}
}

func (c *Connection) sendError(requestID, code, message string) {
	c.logger.Warn("Rejecting request", "code", code, "error", message)
	reply, err := NewMessage(MessageTypeError, ErrorData{Code: code, Message: message})
	if err != nil {
		return
	}
	reply.RequestID = requestID
	_ = c.SendMessage(reply)
}
