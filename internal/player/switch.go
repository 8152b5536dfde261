package player

import (
	"time"

	"github.com/courtcast/server/internal/domain"
)

// SwitchMainAngle promotes newAngle to the main (audible, large) role
// without restarting playback. The sequence is strictly ordered: pause
// every handle, reassign the main-angle key, then — after a short,
// cancellable settle delay — re-apply the logical position to the whole
// ensemble and resume if the playing intent still holds. Role promotion reuses
// the thumbnail's already-buffered handle, so the swap itself is a key
// reassignment, not a reload.
func (s *service) SwitchMainAngle(newAngle domain.AngleKey) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !newAngle.Valid() {
		return domain.ErrAngleNotFound
	}
	if newAngle == s.mainAngle {
		return nil
	}

	// Nothing may advance independently while roles move.
	s.pauseAllLocked()

	prev := s.mainAngle
	s.mainAngle = newAngle

	// Audio follows the role: demoted handle goes silent, promoted one
	// inherits the mute intent.
	if prevRec, ok := s.handles[prev]; ok {
		prevRec.muted = true
		prevRec.handle.SetMuted(true)
	}
	if newRec, ok := s.handles[newAngle]; ok {
		newRec.muted = s.isMuted
		newRec.handle.SetMuted(s.isMuted)
		if newRec.duration > 0 {
			s.duration = newRec.duration
		}
	}

	// A second switch before the previous settle fires wins outright:
	// the stale settle is cancelled and its generation invalidated.
	if s.settleTimer != nil {
		s.settleTimer.Stop()
	}
	s.settleGen++
	s.settlePending = true
	gen := s.settleGen
	s.settleTimer = time.AfterFunc(s.cfg.SettleDelay, func() {
		s.settleSwitch(gen)
	})

	s.metrics.AngleSwitchesTotal.Inc()
	s.logger.Debug("player:SwitchMainAngle", "from", prev, "to", newAngle, "position", s.position, "was_playing", s.isPlaying)
	s.broadcastLocked()

	return nil
}

// settleSwitch completes a role swap: the logical position captured
// across the swap (or a seek target that superseded it, since explicit
// seeks carry user intent) is re-applied to every handle, correcting any
// drift accumulated before the pause, and playback resumes if the
// playing intent still calls for it. The intent is read at fire time,
// not captured at switch time, so a play or pause issued inside the
// settle window is honored rather than reverted.
func (s *service) settleSwitch(gen int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed || gen != s.settleGen {
		return
	}
	s.settlePending = false

	s.applyPositionLocked(s.position)

	if s.isPlaying {
		for _, rec := range s.handles {
			if rec.loadState == domain.HandleReady {
				rec.handle.Play()
			}
		}
	}

	s.logger.Debug("player:settleSwitch", "main_angle", s.mainAngle, "position", s.position, "resume", s.isPlaying)
	s.broadcastLocked()
}
