package controller

import (
	"context"

	"github.com/gorilla/websocket"

	"github.com/courtcast/server/internal/domain"
)

// Inbound handle lifecycle messages. The client hosting the playback
// elements reports each asynchronous completion here; the controller
// only translates them into the core's uniform event type.

type HandleMetadataInput struct {
	Angle    domain.AngleKey `json:"angle"`
	Duration float64         `json:"duration"`
}

func (ws *watchSession) handleMetadataEvent(_ context.Context, _ *websocket.Conn, input HandleMetadataInput) error {
	ws.player.HandleEvent(domain.HandleEvent{
		Angle:    input.Angle,
		Type:     domain.EventMetadata,
		Duration: input.Duration,
	})
	return nil
}

type HandleTimeUpdateInput struct {
	Angle    domain.AngleKey `json:"angle"`
	Position float64         `json:"position"`
}

func (ws *watchSession) handleTimeUpdateEvent(_ context.Context, _ *websocket.Conn, input HandleTimeUpdateInput) error {
	ws.player.HandleEvent(domain.HandleEvent{
		Angle:    input.Angle,
		Type:     domain.EventTimeUpdate,
		Position: input.Position,
	})
	return nil
}

type HandleAngleInput struct {
	Angle domain.AngleKey `json:"angle"`
}

func (ws *watchSession) handlePlaySettledEvent(_ context.Context, _ *websocket.Conn, input HandleAngleInput) error {
	ws.player.HandleEvent(domain.HandleEvent{
		Angle: input.Angle,
		Type:  domain.EventPlaySettled,
	})
	return nil
}

type HandleRejectionInput struct {
	Angle  domain.AngleKey `json:"angle"`
	Reason string          `json:"reason"`
}

func (ws *watchSession) handlePlayRejectedEvent(_ context.Context, _ *websocket.Conn, input HandleRejectionInput) error {
	ws.player.HandleEvent(domain.HandleEvent{
		Angle:  input.Angle,
		Type:   domain.EventPlayRejected,
		Reason: input.Reason,
	})
	return nil
}

func (ws *watchSession) handleEndedEvent(_ context.Context, _ *websocket.Conn, input HandleAngleInput) error {
	ws.player.HandleEvent(domain.HandleEvent{
		Angle: input.Angle,
		Type:  domain.EventEnded,
	})
	return nil
}

type HandleErrorInput struct {
	Angle  domain.AngleKey `json:"angle"`
	Reason string          `json:"reason"`
}

func (ws *watchSession) handleErrorEvent(_ context.Context, _ *websocket.Conn, input HandleErrorInput) error {
	ws.player.HandleEvent(domain.HandleEvent{
		Angle:  input.Angle,
		Type:   domain.EventError,
		Reason: input.Reason,
	})
	return nil
}
