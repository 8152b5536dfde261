package controller

import (
	"fmt"

	"github.com/courtcast/server/internal/domain"
)

var angleShortcuts = map[string]domain.AngleKey{
	"1": domain.Angle1,
	"2": domain.Angle2,
	"3": domain.Angle3,
	"4": domain.Angle4,
}

// dispatchKey maps the keyboard surface onto player operations. Every
// shortcut is suppressed while focus is inside a text input; unmapped
// keys still count as activity so the controls reappear.
func (ws *watchSession) dispatchKey(input KeyPressInput) error {
	if input.IsInputFocused {
		return nil
	}

	switch input.Key {
	case " ", "Space":
		ws.player.TogglePlay()
	case "ArrowLeft":
		ws.player.Skip(-ws.c.playerCfg.SkipStep)
	case "ArrowRight":
		ws.player.Skip(ws.c.playerCfg.SkipStep)
	case "m", "M":
		ws.player.ToggleMute()
	case "f", "F":
		// Fullscreen belongs to the host environment; the server only
		// relays the request against the main handle.
		if err := ws.Send("FULLSCREEN_TOGGLE", map[string]any{"angle": ws.player.Status().MainAngle}); err != nil {
			return fmt.Errorf("failed to send fullscreen toggle: %w", err)
		}
		ws.player.Activity()
	default:
		if angle, ok := angleShortcuts[input.Key]; ok {
			if err := ws.player.SwitchMainAngle(angle); err != nil {
				return fmt.Errorf("failed to switch main angle: %w", err)
			}
			return nil
		}
		ws.player.Activity()
	}

	return nil
}
