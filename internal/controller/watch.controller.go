package controller

import (
	"context"
	"log/slog"
	"net/http"
	"sync"

	"github.com/google/uuid"

	"github.com/courtcast/server/internal/domain"
	wshandle "github.com/courtcast/server/internal/handle/ws"
	"github.com/courtcast/server/internal/player"
	"github.com/courtcast/server/pkg/ctxlogger"
)

type Output struct {
	Type    string `json:"type"`
	Payload any    `json:"payload"`
}

// jsonWriter is the slice of the websocket connection Send writes to.
type jsonWriter interface {
	WriteJSON(v any) error
}

// watchSession owns one viewer connection: a player core instance, the
// websocket it talks over, and the write lock serializing every outbound
// message (handle commands and state snapshots share the connection).
type watchSession struct {
	c       *controller
	conn    jsonWriter
	writeMu sync.Mutex
	player  iPlayer
}

// Send implements the handle command transport.
func (ws *watchSession) Send(messageType string, payload any) error {
	ws.writeMu.Lock()
	defer ws.writeMu.Unlock()

	return ws.conn.WriteJSON(&Output{Type: messageType, Payload: payload})
}

// handleWatch upgrades the connection, builds a player core whose media
// handles proxy to the client's playback elements, and serves messages
// until the connection drops.
func (c *controller) handleWatch(w http.ResponseWriter, r *http.Request) {
	conn, err := c.upgrader.Upgrade(w, r, nil)
	if err != nil {
		c.logger.ErrorContext(r.Context(), "failed to upgrade connection", "error", err)
		return
	}

	ctx := ctxlogger.AppendCtx(r.Context(), slog.String("client_id", uuid.NewString()))

	ws := &watchSession{c: c, conn: conn}
	ws.player = player.NewService(c.angles, func(angle domain.AngleKey) player.MediaHandle {
		return wshandle.NewHandle(angle, ws, c.logger)
	}, c.playerCfg, c.metrics, c.logger)

	c.metrics.ConnectedClients.Inc()
	defer c.metrics.ConnectedClients.Dec()
	defer ws.player.Close()

	// Snapshot forwarder: every state change goes out as one message.
	// Close() closes the subscription channel and ends the goroutine.
	sub := ws.player.Subscribe()
	go func() {
		for status := range sub {
			if err := ws.Send("PLAYER_STATE_UPDATED", status); err != nil {
				return
			}
		}
	}()

	if err := ws.player.LoadAll(); err != nil {
		c.logger.ErrorContext(ctx, "failed to load angles", "error", err)
		conn.Close()
		return
	}

	if err := ws.getWSRouter().ServeConn(ctx, conn, func(ctx context.Context, err error) {
		c.logger.ErrorContext(ctx, "ws handler error", "error", err)
	}); err != nil {
		c.logger.DebugContext(ctx, "connection closed", "error", err)
	}
}
