package wsrouter

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/gorilla/websocket"
)

type message struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

type HandlerFunc func(ctx context.Context, conn *websocket.Conn, payload json.RawMessage) error

type WSRouter struct {
	routes map[string]HandlerFunc
}

func New() *WSRouter {
	return &WSRouter{routes: make(map[string]HandlerFunc)}
}

func (r *WSRouter) Handle(messageType string, handler HandlerFunc) {
	r.routes[messageType] = handler
}

// Handler adapts a typed handler into a HandlerFunc that unmarshals the
// raw payload into T before dispatch.
func Handler[T any](handler func(ctx context.Context, conn *websocket.Conn, input T) error) HandlerFunc {
	return func(ctx context.Context, conn *websocket.Conn, payload json.RawMessage) error {
		var input T
		if len(payload) > 0 {
			if err := json.Unmarshal(payload, &input); err != nil {
				return fmt.Errorf("failed to unmarshal payload: %w", err)
			}
		}

		return handler(ctx, conn, input)
	}
}

// Dispatch routes a single already-parsed message. It returns an error
// for unknown message types and propagates handler errors.
func (r *WSRouter) Dispatch(ctx context.Context, conn *websocket.Conn, messageType string, payload json.RawMessage) error {
	handler, exists := r.routes[messageType]
	if !exists {
		return fmt.Errorf("unknown message type: %s", messageType)
	}

	ctx = context.WithValue(ctx, messageTypeKey, messageType)
	return handler(ctx, conn, payload)
}

// ServeConn reads JSON messages from the connection until the read fails
// and routes each one. Handler errors are reported through onError and do
// not terminate the connection.
func (r *WSRouter) ServeConn(ctx context.Context, conn *websocket.Conn, onError func(ctx context.Context, err error)) error {
	defer conn.Close()

	for {
		var msg message
		if err := conn.ReadJSON(&msg); err != nil {
			return err
		}

		if err := r.Dispatch(ctx, conn, msg.Type, msg.Payload); err != nil {
			if onError != nil {
				onError(ctx, err)
			}
		}
	}
}
