package controller

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/gorilla/websocket"

	"github.com/courtcast/server/internal/domain"
	"github.com/courtcast/server/internal/metrics"
	"github.com/courtcast/server/internal/player"
	"github.com/courtcast/server/internal/repository/session"
	"github.com/courtcast/server/pkg/validator"
)

// iPlayer is the slice of the player core the transport layer drives.
type iPlayer interface {
	LoadAll() error
	LoadAngle(angle domain.AngleKey) error
	Play()
	Pause()
	TogglePlay()
	Seek(target float64)
	Skip(delta float64)
	SwitchMainAngle(angle domain.AngleKey) error
	ToggleMute()
	Activity()
	HandleEvent(ev domain.HandleEvent)
	Status() domain.PlayerStatus
	Subscribe() chan domain.PlayerStatus
	Unsubscribe(ch chan domain.PlayerStatus)
	Close()
}

type iSessionRepo interface {
	SetSession(ctx context.Context, params *session.SetSessionParams) error
}

type controller struct {
	angles      domain.AngleConfig
	playerCfg   *player.Config
	sessionRepo iSessionRepo
	metrics     *metrics.Metrics
	logger      *slog.Logger
	upgrader    websocket.Upgrader
	validate    *validator.Validator
}

func NewController(angles domain.AngleConfig, playerCfg *player.Config, sessionRepo iSessionRepo, m *metrics.Metrics, logger *slog.Logger) *controller {
	if playerCfg == nil {
		playerCfg = player.DefaultConfig()
	}

	return &controller{
		angles:      angles,
		playerCfg:   playerCfg,
		sessionRepo: sessionRepo,
		metrics:     m,
		logger:      logger,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool {
				return true
			},
		},
		validate: validator.NewValidator(),
	}
}
