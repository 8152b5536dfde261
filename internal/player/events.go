package player

import (
	"math"

	"github.com/courtcast/server/internal/domain"
)

// HandleEvent is the single entry point for asynchronous completions
// reported by media handles. Events for angles that were never
// instantiated are dropped.
func (s *service) HandleEvent(ev domain.HandleEvent) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return
	}
	rec, ok := s.handles[ev.Angle]
	if !ok {
		s.logger.Debug("player:HandleEvent dropped", "angle", ev.Angle, "type", ev.Type)
		return
	}

	switch ev.Type {
	case domain.EventMetadata:
		s.onMetadataLocked(ev, rec)
	case domain.EventTimeUpdate:
		s.onTimeUpdateLocked(ev, rec)
	case domain.EventPlaySettled:
		s.onPlaySettledLocked(ev, rec)
	case domain.EventPlayRejected:
		s.onPlayRejectedLocked(ev, rec)
	case domain.EventEnded:
		s.onEndedLocked(ev, rec)
	case domain.EventError:
		s.onErrorLocked(ev, rec)
	default:
		s.logger.Warn("player:HandleEvent unknown type", "angle", ev.Angle, "type", ev.Type)
	}
}

func (s *service) onMetadataLocked(ev domain.HandleEvent, rec *handleRec) {
	if rec.metadataTimer != nil {
		rec.metadataTimer.Stop()
		rec.metadataTimer = nil
	}

	rec.loadState = domain.HandleReady
	rec.errorReason = ""
	if ev.Duration > 0 {
		rec.duration = ev.Duration
	}
	s.updateErroredGaugeLocked()

	// Only the main handle's duration is authoritative; thumbnail
	// durations are informational and assumed to match.
	if ev.Angle == s.mainAngle && ev.Duration > 0 {
		s.duration = ev.Duration
	}

	s.logger.Debug("player:metadata", "angle", ev.Angle, "duration", ev.Duration)
	s.broadcastLocked()
}

// onTimeUpdateLocked runs drift correction. During steady-state playback
// the main handle is the source of truth: the logical position follows
// it, and any thumbnail further than the drift tolerance away is
// forcibly rewritten. While a switch settle is pending the logical
// position is frozen, since the captured position must stay
// authoritative across the swap.
func (s *service) onTimeUpdateLocked(ev domain.HandleEvent, rec *handleRec) {
	rec.position = ev.Position

	if ev.Angle != s.mainAngle || s.settlePending {
		return
	}

	s.position = ev.Position

	if s.isPlaying {
		for angle, thumb := range s.handles {
			if angle == s.mainAngle || thumb.loadState != domain.HandleReady {
				continue
			}
			if math.Abs(thumb.position-s.position) > s.cfg.DriftTolerance {
				thumb.handle.SeekTo(s.position)
				thumb.position = s.position
				s.metrics.DriftCorrectionsTotal.Inc()
			}
		}
	}

	s.broadcastLocked()
}

func (s *service) onPlaySettledLocked(ev domain.HandleEvent, rec *handleRec) {
	rec.playing = true

	if ev.Angle == s.mainAngle && !s.isPlaying {
		s.isPlaying = true
		s.showControlsLocked()
	}

	s.broadcastLocked()
}

// onPlayRejectedLocked swallows a refused play request (autoplay policy
// and the like). The transport affordance follows the main handle's
// actual state rather than the requested intent, so a rejected main
// play clears the playing flag instead of leaving a stuck control.
func (s *service) onPlayRejectedLocked(ev domain.HandleEvent, rec *handleRec) {
	rec.playing = false
	s.metrics.PlayRejectionsTotal.Inc()
	s.logger.Warn("player:playRejected", "angle", ev.Angle, "reason", ev.Reason)

	if ev.Angle == s.mainAngle {
		s.isPlaying = false
		s.showControlsLocked()
	}

	s.broadcastLocked()
}

func (s *service) onEndedLocked(ev domain.HandleEvent, rec *handleRec) {
	rec.playing = false

	if ev.Angle == s.mainAngle {
		s.isPlaying = false
		s.showControlsLocked()
	}

	s.logger.Debug("player:ended", "angle", ev.Angle)
	s.broadcastLocked()
}

// onErrorLocked marks a single handle as errored without disturbing the
// rest of the ensemble; the UI surfaces it with a retry affordance that
// goes back through LoadAngle.
func (s *service) onErrorLocked(ev domain.HandleEvent, rec *handleRec) {
	if rec.metadataTimer != nil {
		rec.metadataTimer.Stop()
		rec.metadataTimer = nil
	}

	rec.loadState = domain.HandleErrored
	rec.playing = false
	rec.errorReason = ev.Reason
	s.metrics.HandleErrorsTotal.Inc()
	s.updateErroredGaugeLocked()

	if ev.Angle == s.mainAngle {
		s.isPlaying = false
		s.showControlsLocked()
	}

	s.logger.Error("player:handleError", "angle", ev.Angle, "reason", ev.Reason)
	s.broadcastLocked()
}
