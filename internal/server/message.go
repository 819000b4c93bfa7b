package server

import (
	"encoding/json"
	"time"
)

// MessageType identifies the kind of a WebSocket message
type MessageType string

const (
	// MessageTypeVerifyMove carries a gameapi.VerifyMove request from
	// the platform
	MessageTypeVerifyMove MessageType = "verifyMove"

	// MessageTypeVerifyMoveDone carries the verdict back
	MessageTypeVerifyMoveDone MessageType = "verifyMoveDone"

	// MessageTypeError reports a malformed request
	MessageTypeError MessageType = "error"
)

// Message represents the base WebSocket message structure
type Message struct {
	Type      MessageType     `json:"type"`
	Data      json.RawMessage `json:"data"`
	Timestamp time.Time       `json:"timestamp"`
	RequestID string          `json:"requestId,omitempty"`
}

// NewMessage creates a new message with the current timestamp
func NewMessage(messageType MessageType, data any) (*Message, error) {
	dataBytes, err := json.Marshal(data)
	if err != nil {
		return nil, err
	}

	return &Message{
		Type:      messageType,
		Data:      dataBytes,
		Timestamp: time.Now(),
	}, nil
}

// ErrorData describes a request the service could not process
type ErrorData struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
