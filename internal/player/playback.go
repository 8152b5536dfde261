package player

import (
	"math"
	"time"

	"github.com/courtcast/server/internal/domain"
)

// Play issues a best-effort play request to every ready handle. Each
// request settles asynchronously: the shared playing intent flips to
// true only once the main handle's settlement event arrives, and a
// single handle's rejection never blocks the rest of the ensemble.
func (s *service) Play() {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, rec := range s.handles {
		if rec.loadState == domain.HandleReady {
			rec.handle.Play()
		}
	}

	s.logger.Debug("player:Play", "position", s.position)
	s.showControlsLocked()
	s.broadcastLocked()
}

// Pause stops every ready handle and clears the playing intent
// immediately; unlike play requests, pauses do not get rejected.
func (s *service) Pause() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.pauseAllLocked()
	s.isPlaying = false
	s.showControlsLocked()

	s.logger.Debug("player:Pause", "position", s.position)
	s.broadcastLocked()
}

func (s *service) pauseAllLocked() {
	for _, rec := range s.handles {
		if rec.loadState == domain.HandleReady {
			rec.handle.Pause()
			rec.playing = false
		}
	}
}

func (s *service) TogglePlay() {
	s.mu.Lock()
	playing := s.isPlaying
	s.mu.Unlock()

	if playing {
		s.Pause()
	} else {
		s.Play()
	}
}

// Seek moves the logical position to target (clamped to the known
// duration) and pushes it to every handle whose reported position
// differs by more than the seek tolerance.
func (s *service) Seek(target float64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.applyPositionLocked(target)
	s.metrics.SeeksTotal.Inc()
	s.showControlsLocked()

	s.logger.Debug("player:Seek", "target", target, "position", s.position)
	s.broadcastLocked()
}

// Skip seeks relative to the current logical position; out-of-range
// targets are clamped, never an error.
func (s *service) Skip(delta float64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	target := s.position + delta
	s.applyPositionLocked(target)
	s.metrics.SeeksTotal.Inc()
	s.showControlsLocked()

	s.logger.Debug("player:Skip", "delta", delta, "position", s.position)
	s.broadcastLocked()
}

func (s *service) applyPositionLocked(target float64) {
	if target < 0 {
		target = 0
	}
	if s.duration > 0 && target > s.duration {
		target = s.duration
	}

	s.position = target
	for _, rec := range s.handles {
		if rec.loadState != domain.HandleReady {
			continue
		}
		if math.Abs(rec.position-target) > s.cfg.SeekTolerance {
			rec.handle.SeekTo(target)
			rec.position = target
		}
	}
}

// ToggleMute flips the mute flag of the main handle only. Thumbnails
// stay muted unconditionally so that at most one handle is ever audible.
func (s *service) ToggleMute() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.isMuted = !s.isMuted
	if rec, ok := s.handles[s.mainAngle]; ok {
		rec.muted = s.isMuted
		rec.handle.SetMuted(s.isMuted)
	}
	s.showControlsLocked()

	s.logger.Debug("player:ToggleMute", "is_muted", s.isMuted)
	s.broadcastLocked()
}

// Activity records user interaction: controls become visible and the
// auto-hide timer restarts.
func (s *service) Activity() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.showControlsLocked()
	s.broadcastLocked()
}

// showControlsLocked forces the controls visible and restarts the
// inactivity timer. While paused the timer stays suppressed and controls
// remain visible.
func (s *service) showControlsLocked() {
	s.controlsVisible = true
	if s.controlsTimer != nil {
		s.controlsTimer.Stop()
		s.controlsTimer = nil
	}
	if s.isPlaying {
		s.controlsTimer = time.AfterFunc(s.cfg.ControlsHideDelay, s.hideControls)
	}
}

func (s *service) hideControls() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed || !s.isPlaying {
		return
	}

	s.controlsVisible = false
	s.broadcastLocked()
}
