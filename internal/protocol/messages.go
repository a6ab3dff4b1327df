// Package protocol defines the messages exchanged with a map server.
package protocol

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// MessageType identifies the type of message.
type MessageType string

// Map publishing message types
const (
	TypePublishMap  MessageType = "publish_map"
	TypeMapAccepted MessageType = "map_accepted"
)

// System message types
const (
	TypeError MessageType = "error"
)

// Message is the envelope for all messages.
type Message struct {
	Type      MessageType     `json:"type"`
	ID        string          `json:"id"`
	Timestamp int64           `json:"timestamp"`
	Payload   json.RawMessage `json:"payload"`
}

// NewMessage creates a new message with the given type and payload.
func NewMessage(msgType MessageType, payload interface{}) (*Message, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return &Message{
		Type:      msgType,
		ID:        uuid.New().String(),
		Timestamp: time.Now().UnixMilli(),
		Payload:   data,
	}, nil
}

// ParsePayload unmarshals the payload into the given type.
func (m *Message) ParsePayload(v interface{}) error {
	return json.Unmarshal(m.Payload, v)
}

// ErrorCode represents an error type.
type ErrorCode string

const (
	ErrCodeInvalidMap    ErrorCode = "invalid_map"
	ErrCodeMapExists     ErrorCode = "map_exists"
	ErrCodeInternalError ErrorCode = "internal_error"
)

// ErrorPayload is the payload for error messages.
type ErrorPayload struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
}

// PublishMapPayload carries a converted map to the server.
type PublishMapPayload struct {
	Map      json.RawMessage `json:"map"`
	Scenario json.RawMessage `json:"scenario"`
}

// MapAcceptedPayload confirms a published map.
type MapAcceptedPayload struct {
	MapID      string `json:"map_id"`
	ScenarioID string `json:"scenario_id"`
}
