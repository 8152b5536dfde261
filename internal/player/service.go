package player

import (
	"log/slog"
	"sync"
	"time"

	"github.com/courtcast/server/internal/domain"
	"github.com/courtcast/server/internal/metrics"
)

// MediaHandle is the contract the host environment satisfies for every
// displayed angle. All commands are asynchronous: completions and
// failures come back as domain.HandleEvent values delivered to the
// service's HandleEvent entry point.
type MediaHandle interface {
	SetSource(source string)
	Load()
	Play()
	Pause()
	SeekTo(position float64)
	SetMuted(muted bool)
}

// HandleFactory creates the media handle for an angle when it first
// becomes displayable.
type HandleFactory func(angle domain.AngleKey) MediaHandle

type Config struct {
	// SeekTolerance is the maximum divergence (seconds) an explicit seek
	// leaves uncorrected, to avoid redundant position writes that can
	// stall a decoding pipeline.
	SeekTolerance float64
	// DriftTolerance is the looser bound (seconds) applied by continuous
	// drift correction during playback.
	DriftTolerance float64
	// SkipStep is the keyboard skip distance in seconds.
	SkipStep float64
	// MetadataTimeout bounds the wait for a handle's metadata; on expiry
	// the handle is treated as ready with its duration left as-is.
	MetadataTimeout time.Duration
	// SettleDelay is the bounded pause between an angle-switch role swap
	// and the position re-application that completes it.
	SettleDelay time.Duration
	// ControlsHideDelay is the inactivity window before the transport
	// controls are hidden while playing.
	ControlsHideDelay time.Duration
}

func DefaultConfig() *Config {
	return &Config{
		SeekTolerance:     0.1,
		DriftTolerance:    0.5,
		SkipStep:          5,
		MetadataTimeout:   5 * time.Second,
		SettleDelay:       50 * time.Millisecond,
		ControlsHideDelay: 3 * time.Second,
	}
}

type handleRec struct {
	handle        MediaHandle
	loadState     domain.HandleLoadState
	position      float64
	duration      float64
	playing       bool
	muted         bool
	errorReason   string
	metadataTimer *time.Timer
}

// service owns the logical playback clock and the angle registry. Every
// mutation, including timer callbacks and handle events, runs under one
// mutex, which gives the single-logical-writer discipline the ensemble
// state requires.
type service struct {
	mu sync.Mutex

	angles  domain.AngleConfig
	factory HandleFactory
	cfg     Config
	logger  *slog.Logger
	metrics *metrics.Metrics

	handles   map[domain.AngleKey]*handleRec
	mainAngle domain.AngleKey
	position  float64
	duration  float64
	isPlaying bool
	isMuted   bool

	controlsVisible bool
	controlsTimer   *time.Timer

	// settleGen invalidates a pending switch settle when a newer switch
	// supersedes it (last request wins).
	settlePending bool
	settleGen     int
	settleTimer   *time.Timer

	subs   map[chan domain.PlayerStatus]struct{}
	closed bool
}

func NewService(angles domain.AngleConfig, factory HandleFactory, cfg *Config, m *metrics.Metrics, logger *slog.Logger) *service {
	if cfg == nil {
		cfg = DefaultConfig()
	}

	return &service{
		angles:          angles,
		factory:         factory,
		cfg:             *cfg,
		logger:          logger,
		metrics:         m,
		handles:         make(map[domain.AngleKey]*handleRec, len(domain.AngleKeys)),
		mainAngle:       domain.Angle1,
		controlsVisible: true,
		subs:            make(map[chan domain.PlayerStatus]struct{}),
	}
}

// Close cancels every outstanding timer and detaches subscribers. The
// service must not be used after Close.
func (s *service) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.closed = true
	if s.controlsTimer != nil {
		s.controlsTimer.Stop()
	}
	if s.settleTimer != nil {
		s.settleTimer.Stop()
	}
	for _, rec := range s.handles {
		if rec.metadataTimer != nil {
			rec.metadataTimer.Stop()
		}
	}
	for ch := range s.subs {
		delete(s.subs, ch)
		close(ch)
	}
}

func (s *service) MainAngle() domain.AngleKey {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.mainAngle
}

func (s *service) updateErroredGaugeLocked() {
	errored := 0
	for _, rec := range s.handles {
		if rec.loadState == domain.HandleErrored {
			errored++
		}
	}
	s.metrics.ErroredHandles.Set(float64(errored))
}
