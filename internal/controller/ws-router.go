package controller

import (
	"github.com/courtcast/server/pkg/wsrouter"
)

func (ws *watchSession) getWSRouter() *wsrouter.WSRouter {
	mux := wsrouter.New()

	// transport
	mux.Handle("ALIVE", wsrouter.Handler(ws.handleAlive))
	mux.Handle("PLAY", wsrouter.Handler(ws.handlePlay))
	mux.Handle("PAUSE", wsrouter.Handler(ws.handlePause))
	mux.Handle("TOGGLE_PLAY", wsrouter.Handler(ws.handleTogglePlay))
	mux.Handle("SEEK", wsrouter.Handler(ws.handleSeek))
	mux.Handle("SKIP", wsrouter.Handler(ws.handleSkip))
	mux.Handle("SWITCH_ANGLE", wsrouter.Handler(ws.handleSwitchAngle))
	mux.Handle("TOGGLE_MUTE", wsrouter.Handler(ws.handleToggleMute))
	mux.Handle("RETRY_ANGLE", wsrouter.Handler(ws.handleRetryAngle))
	mux.Handle("ACTIVITY", wsrouter.Handler(ws.handleActivity))
	mux.Handle("KEY_PRESS", wsrouter.Handler(ws.handleKeyPress))

	// handle lifecycle events from the host environment
	mux.Handle("HANDLE_METADATA", wsrouter.Handler(ws.handleMetadataEvent))
	mux.Handle("HANDLE_TIME_UPDATE", wsrouter.Handler(ws.handleTimeUpdateEvent))
	mux.Handle("HANDLE_PLAY_SETTLED", wsrouter.Handler(ws.handlePlaySettledEvent))
	mux.Handle("HANDLE_PLAY_REJECTED", wsrouter.Handler(ws.handlePlayRejectedEvent))
	mux.Handle("HANDLE_ENDED", wsrouter.Handler(ws.handleEndedEvent))
	mux.Handle("HANDLE_ERROR", wsrouter.Handler(ws.handleErrorEvent))

	return mux
}
