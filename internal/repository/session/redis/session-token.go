package redis

import (
	"context"
	"errors"
	"log/slog"

	"github.com/redis/go-redis/v9"

	"github.com/courtcast/server/internal/repository/session"
)

func (r repo) getSessionTokenKey(token string) string {
	return "session-token:" + token
}

func (r repo) SetSession(ctx context.Context, params *session.SetSessionParams) error {
	funcName := "session.redis.SetSession"
	slog.DebugContext(ctx, funcName, "params", params)

	ok, err := r.rc.SetNX(ctx, r.getSessionTokenKey(params.Token), params.ViewerId, r.sessionExp).Result()
	if err != nil {
		slog.ErrorContext(ctx, funcName, "error", err)
		return err
	}

	if !ok {
		slog.DebugContext(ctx, funcName, "error", session.ErrSessionAlreadyExists)
		return session.ErrSessionAlreadyExists
	}

	return nil
}

func (r repo) GetViewerIdByToken(ctx context.Context, token string) (string, error) {
	funcName := "session.redis.GetViewerIdByToken"
	slog.DebugContext(ctx, funcName, "token", token)

	if token == "" {
		slog.DebugContext(ctx, funcName, "error", session.ErrSessionNotFound)
		return "", session.ErrSessionNotFound
	}

	viewerId, err := r.rc.Get(ctx, r.getSessionTokenKey(token)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			slog.DebugContext(ctx, funcName, "error", session.ErrSessionNotFound)
			return "", session.ErrSessionNotFound
		}
		slog.ErrorContext(ctx, funcName, "error", err)
		return "", err
	}

	slog.DebugContext(ctx, funcName, "viewerId", viewerId)
	return viewerId, nil
}
