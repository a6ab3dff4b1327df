// Package publish sends converted maps to a map server over WebSocket.
package publish

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"mapconv/internal/protocol"
	"mapconv/pkg/maps"

	"github.com/coder/websocket"
)

// DefaultTimeout bounds a whole publish exchange.
const DefaultTimeout = 10 * time.Second

// maxMessageSize caps server replies.
const maxMessageSize = 65536

// ErrNoReply is returned when the server closes without answering.
var ErrNoReply = errors.New("server closed without a reply")

// RejectedError is returned when the server refuses a map.
type RejectedError struct {
	Code    protocol.ErrorCode
	Message string
}

func (e *RejectedError) Error() string {
	return fmt.Sprintf("map rejected (%s): %s", e.Code, e.Message)
}

// Publisher sends maps to a single server URL.
type Publisher struct {
	URL     string
	Timeout time.Duration
	logger  *slog.Logger
}

// New creates a publisher for a ws:// or wss:// URL.
func New(url string, logger *slog.Logger) *Publisher {
	return &Publisher{
		URL:     url,
		Timeout: DefaultTimeout,
		logger:  logger,
	}
}

// Publish sends the output as a publish_map message and waits for the
// server to accept or reject it.
func (p *Publisher) Publish(ctx context.Context, out *maps.Output) (*protocol.MapAcceptedPayload, error) {
	ctx, cancel := context.WithTimeout(ctx, p.Timeout)
	defer cancel()

	msg, err := newPublishMessage(out)
	if err != nil {
		return nil, err
	}
	data, err := json.Marshal(msg)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal message: %w", err)
	}

	p.logger.Debug("Dialing map server.", "url", p.URL)
	conn, _, err := websocket.Dial(ctx, p.URL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to %s: %w", p.URL, err)
	}
	defer conn.CloseNow()
	conn.SetReadLimit(maxMessageSize)

	if err := conn.Write(ctx, websocket.MessageText, data); err != nil {
		return nil, fmt.Errorf("failed to send map: %w", err)
	}
	p.logger.Debug("Map sent, waiting for reply.", "message_id", msg.ID, "bytes", len(data))

	for {
		msgType, reply, err := conn.Read(ctx)
		if err != nil {
			status := websocket.CloseStatus(err)
			if status == websocket.StatusNormalClosure || status == websocket.StatusGoingAway {
				return nil, ErrNoReply
			}
			return nil, fmt.Errorf("failed to read reply: %w", err)
		}

		// Only process text messages
		if msgType != websocket.MessageText {
			continue
		}

		var resp protocol.Message
		if err := json.Unmarshal(reply, &resp); err != nil {
			p.logger.Warn("Ignoring malformed reply.", "error", err)
			continue
		}

		switch resp.Type {
		case protocol.TypeMapAccepted:
			var accepted protocol.MapAcceptedPayload
			if err := resp.ParsePayload(&accepted); err != nil {
				return nil, fmt.Errorf("failed to parse acceptance: %w", err)
			}
			conn.Close(websocket.StatusNormalClosure, "")
			return &accepted, nil

		case protocol.TypeError:
			var payload protocol.ErrorPayload
			if err := resp.ParsePayload(&payload); err != nil {
				return nil, fmt.Errorf("failed to parse error reply: %w", err)
			}
			conn.Close(websocket.StatusNormalClosure, "")
			return nil, &RejectedError{Code: payload.Code, Message: payload.Message}

		default:
			p.logger.Debug("Ignoring unrelated message.", "type", resp.Type)
		}
	}
}

func newPublishMessage(out *maps.Output) (*protocol.Message, error) {
	mapData, err := json.Marshal(out.Map)
	if err != nil {
		return nil, fmt.Errorf("failed to encode map section: %w", err)
	}
	scenarioData, err := json.Marshal(out.Scenario)
	if err != nil {
		return nil, fmt.Errorf("failed to encode scenario section: %w", err)
	}
	return protocol.NewMessage(protocol.TypePublishMap, protocol.PublishMapPayload{
		Map:      mapData,
		Scenario: scenarioData,
	})
}
