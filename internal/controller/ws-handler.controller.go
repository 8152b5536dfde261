package controller

import (
	"context"
	"fmt"

	"github.com/gorilla/websocket"

	"github.com/courtcast/server/internal/domain"
)

type EmptyInput struct{}

func (ws *watchSession) handleAlive(_ context.Context, _ *websocket.Conn, _ EmptyInput) error {
	return nil
}

func (ws *watchSession) handlePlay(_ context.Context, _ *websocket.Conn, _ EmptyInput) error {
	ws.player.Play()
	return nil
}

func (ws *watchSession) handlePause(_ context.Context, _ *websocket.Conn, _ EmptyInput) error {
	ws.player.Pause()
	return nil
}

func (ws *watchSession) handleTogglePlay(_ context.Context, _ *websocket.Conn, _ EmptyInput) error {
	ws.player.TogglePlay()
	return nil
}

type SeekInput struct {
	Position float64 `json:"position"`
}

func (ws *watchSession) handleSeek(_ context.Context, _ *websocket.Conn, input SeekInput) error {
	ws.player.Seek(input.Position)
	return nil
}

type SkipInput struct {
	Delta float64 `json:"delta"`
}

func (ws *watchSession) handleSkip(_ context.Context, _ *websocket.Conn, input SkipInput) error {
	ws.player.Skip(input.Delta)
	return nil
}

type AngleInput struct {
	Angle domain.AngleKey `json:"angle" validate:"required,oneof=angle1 angle2 angle3 angle4"`
}

func (ws *watchSession) handleSwitchAngle(_ context.Context, _ *websocket.Conn, input AngleInput) error {
	if validationErrors, ok := ws.c.validate.Validate(input); !ok {
		return fmt.Errorf("invalid switch angle input: %s", validationErrors[0].Message)
	}

	if err := ws.player.SwitchMainAngle(input.Angle); err != nil {
		return fmt.Errorf("failed to switch main angle: %w", err)
	}

	return nil
}

func (ws *watchSession) handleToggleMute(_ context.Context, _ *websocket.Conn, _ EmptyInput) error {
	ws.player.ToggleMute()
	return nil
}

func (ws *watchSession) handleRetryAngle(_ context.Context, _ *websocket.Conn, input AngleInput) error {
	if validationErrors, ok := ws.c.validate.Validate(input); !ok {
		return fmt.Errorf("invalid retry angle input: %s", validationErrors[0].Message)
	}

	if err := ws.player.LoadAngle(input.Angle); err != nil {
		return fmt.Errorf("failed to retry angle: %w", err)
	}

	return nil
}

func (ws *watchSession) handleActivity(_ context.Context, _ *websocket.Conn, _ EmptyInput) error {
	ws.player.Activity()
	return nil
}

type KeyPressInput struct {
	Key            string `json:"key"`
	IsInputFocused bool   `json:"is_input_focused"`
}

func (ws *watchSession) handleKeyPress(_ context.Context, _ *websocket.Conn, input KeyPressInput) error {
	return ws.dispatchKey(input)
}
