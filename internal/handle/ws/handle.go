// Package ws implements the media handle contract over a websocket
// connection: each command becomes a typed message to the client hosting
// the actual playback elements, and the client reports completions back
// as handle events.
package ws

import (
	"log/slog"

	"github.com/courtcast/server/internal/domain"
)

// Sender serializes outbound messages on the underlying connection.
type Sender interface {
	Send(messageType string, payload any) error
}

const (
	msgSetSource = "HANDLE_SET_SOURCE"
	msgLoad      = "HANDLE_LOAD"
	msgPlay      = "HANDLE_PLAY"
	msgPause     = "HANDLE_PAUSE"
	msgSeek      = "HANDLE_SEEK"
	msgSetMuted  = "HANDLE_SET_MUTED"
)

type Handle struct {
	angle  domain.AngleKey
	sender Sender
	logger *slog.Logger
}

func NewHandle(angle domain.AngleKey, sender Sender, logger *slog.Logger) *Handle {
	return &Handle{
		angle:  angle,
		sender: sender,
		logger: logger,
	}
}

// send is fire-and-forget: handle commands are asynchronous by contract,
// so a failed write is logged and surfaces later as a missing event, not
// as a command error.
func (h *Handle) send(messageType string, payload any) {
	if err := h.sender.Send(messageType, payload); err != nil {
		h.logger.Error("wshandle:send", "angle", h.angle, "message_type", messageType, "error", err)
	}
}

func (h *Handle) SetSource(source string) {
	h.send(msgSetSource, map[string]any{"angle": h.angle, "source": source})
}

func (h *Handle) Load() {
	h.send(msgLoad, map[string]any{"angle": h.angle})
}

func (h *Handle) Play() {
	h.send(msgPlay, map[string]any{"angle": h.angle})
}

func (h *Handle) Pause() {
	h.send(msgPause, map[string]any{"angle": h.angle})
}

func (h *Handle) SeekTo(position float64) {
	h.send(msgSeek, map[string]any{"angle": h.angle, "position": position})
}

func (h *Handle) SetMuted(muted bool) {
	h.send(msgSetMuted, map[string]any{"angle": h.angle, "muted": muted})
}
