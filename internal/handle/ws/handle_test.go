package ws

import (
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/courtcast/server/internal/domain"
)

type recordedMessage struct {
	messageType string
	payload     any
}

type fakeSender struct {
	messages []recordedMessage
}

func (s *fakeSender) Send(messageType string, payload any) error {
	s.messages = append(s.messages, recordedMessage{messageType, payload})
	return nil
}

func TestHandleCommands(t *testing.T) {
	sender := &fakeSender{}
	h := NewHandle(domain.Angle2, sender, slog.New(slog.NewTextHandler(io.Discard, nil)))

	h.SetSource("https://cdn.example.com/match/baseline-north.mp4")
	h.Load()
	h.Play()
	h.SeekTo(134)
	h.SetMuted(true)
	h.Pause()

	types := make([]string, 0, len(sender.messages))
	for _, msg := range sender.messages {
		types = append(types, msg.messageType)
	}
	assert.Equal(t, []string{msgSetSource, msgLoad, msgPlay, msgSeek, msgSetMuted, msgPause}, types)

	seekPayload := sender.messages[3].payload.(map[string]any)
	assert.Equal(t, domain.Angle2, seekPayload["angle"])
	assert.Equal(t, 134.0, seekPayload["position"])
}
