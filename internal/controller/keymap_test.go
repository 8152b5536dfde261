package controller

import (
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/courtcast/server/internal/domain"
	"github.com/courtcast/server/internal/metrics"
	"github.com/courtcast/server/internal/player"
)

type fakePlayer struct {
	calls  []string
	skips  []float64
	angles []domain.AngleKey
}

func (p *fakePlayer) LoadAll() error { p.calls = append(p.calls, "LoadAll"); return nil }
func (p *fakePlayer) LoadAngle(angle domain.AngleKey) error {
	p.calls = append(p.calls, "LoadAngle")
	p.angles = append(p.angles, angle)
	return nil
}
func (p *fakePlayer) Play()       { p.calls = append(p.calls, "Play") }
func (p *fakePlayer) Pause()      { p.calls = append(p.calls, "Pause") }
func (p *fakePlayer) TogglePlay() { p.calls = append(p.calls, "TogglePlay") }
func (p *fakePlayer) Seek(target float64) {
	p.calls = append(p.calls, "Seek")
	p.skips = append(p.skips, target)
}
func (p *fakePlayer) Skip(delta float64) {
	p.calls = append(p.calls, "Skip")
	p.skips = append(p.skips, delta)
}
func (p *fakePlayer) SwitchMainAngle(angle domain.AngleKey) error {
	p.calls = append(p.calls, "SwitchMainAngle")
	p.angles = append(p.angles, angle)
	return nil
}
func (p *fakePlayer) ToggleMute() { p.calls = append(p.calls, "ToggleMute") }
func (p *fakePlayer) Activity()   { p.calls = append(p.calls, "Activity") }

func (p *fakePlayer) HandleEvent(ev domain.HandleEvent) {}

func (p *fakePlayer) Status() domain.PlayerStatus {
	return domain.PlayerStatus{MainAngle: domain.Angle1}
}

func (p *fakePlayer) Subscribe() chan domain.PlayerStatus  { return nil }
func (p *fakePlayer) Unsubscribe(chan domain.PlayerStatus) {}
func (p *fakePlayer) Close()                               {}

type fakeConn struct {
	written []any
}

func (c *fakeConn) WriteJSON(v any) error {
	c.written = append(c.written, v)
	return nil
}

func newTestWatchSession() (*watchSession, *fakePlayer) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	c := NewController(nil, player.DefaultConfig(), nil, metrics.New(), logger)
	p := &fakePlayer{}
	return &watchSession{c: c, player: p}, p
}

func TestDispatchKey(t *testing.T) {
	tests := []struct {
		name     string
		key      string
		expected string
	}{
		{"Space toggles playback", " ", "TogglePlay"},
		{"Named space toggles playback", "Space", "TogglePlay"},
		{"Left arrow skips back", "ArrowLeft", "Skip"},
		{"Right arrow skips forward", "ArrowRight", "Skip"},
		{"Lower m toggles mute", "m", "ToggleMute"},
		{"Upper M toggles mute", "M", "ToggleMute"},
		{"Digit switches angle", "3", "SwitchMainAngle"},
		{"Unmapped key is activity", "x", "Activity"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ws, p := newTestWatchSession()
			require.NoError(t, ws.dispatchKey(KeyPressInput{Key: tt.key}))
			require.Len(t, p.calls, 1)
			assert.Equal(t, tt.expected, p.calls[0])
		})
	}
}

func TestDispatchKeySkipDistance(t *testing.T) {
	ws, p := newTestWatchSession()

	require.NoError(t, ws.dispatchKey(KeyPressInput{Key: "ArrowLeft"}))
	require.NoError(t, ws.dispatchKey(KeyPressInput{Key: "ArrowRight"}))

	assert.Equal(t, []float64{-5, 5}, p.skips)
}

func TestDispatchKeyAngleShortcuts(t *testing.T) {
	ws, p := newTestWatchSession()

	for _, key := range []string{"1", "2", "3", "4"} {
		require.NoError(t, ws.dispatchKey(KeyPressInput{Key: key}))
	}

	assert.Equal(t, []domain.AngleKey{domain.Angle1, domain.Angle2, domain.Angle3, domain.Angle4}, p.angles)
}

func TestDispatchKeyFullscreenRelay(t *testing.T) {
	for _, key := range []string{"f", "F"} {
		t.Run(key, func(t *testing.T) {
			ws, p := newTestWatchSession()
			conn := &fakeConn{}
			ws.conn = conn

			require.NoError(t, ws.dispatchKey(KeyPressInput{Key: key}))

			require.Len(t, conn.written, 1)
			out, ok := conn.written[0].(*Output)
			require.True(t, ok)
			assert.Equal(t, "FULLSCREEN_TOGGLE", out.Type)
			assert.Equal(t, map[string]any{"angle": domain.Angle1}, out.Payload,
				"fullscreen relay must target the main angle")
			assert.Equal(t, []string{"Activity"}, p.calls)
		})
	}
}

func TestDispatchKeySuppressedInTextInput(t *testing.T) {
	ws, p := newTestWatchSession()

	for _, key := range []string{" ", "m", "1", "ArrowLeft", "f"} {
		require.NoError(t, ws.dispatchKey(KeyPressInput{Key: key, IsInputFocused: true}))
	}

	assert.Empty(t, p.calls, "shortcuts must be suppressed while a text input has focus")
}
