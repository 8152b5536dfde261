package player

import (
	"fmt"
	"time"

	"github.com/courtcast/server/internal/domain"
)

// LoadAll instantiates and begins loading every configured angle. The
// main angle's handle loads unmuted (unless muted by intent), thumbnails
// always muted.
func (s *service) LoadAll() error {
	for _, angle := range domain.AngleKeys {
		if err := s.LoadAngle(angle); err != nil {
			return fmt.Errorf("failed to load angle %s: %w", angle, err)
		}
	}

	return nil
}

// LoadAngle instantiates or reuses the handle for angle and begins
// loading its source. Readiness arrives later as a metadata event; if
// none arrives within the metadata timeout the handle is treated as
// ready anyway with its duration left at the last known value. LoadAngle
// is also the retry path after a load failure.
func (s *service) LoadAngle(angle domain.AngleKey) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !angle.Valid() {
		return domain.ErrAngleNotFound
	}
	cfgAngle, ok := s.angles[angle]
	if !ok {
		return domain.ErrAngleNotFound
	}
	if cfgAngle.Source == "" {
		return domain.ErrSourceEmpty
	}

	rec, ok := s.handles[angle]
	if !ok {
		rec = &handleRec{handle: s.factory(angle)}
		s.handles[angle] = rec
	}

	rec.loadState = domain.HandleLoading
	rec.playing = false
	rec.errorReason = ""
	s.updateErroredGaugeLocked()

	rec.muted = angle != s.mainAngle || s.isMuted
	rec.handle.SetMuted(rec.muted)
	rec.handle.SetSource(cfgAngle.Source)
	rec.handle.Load()

	// A reload must cancel the previous wait, or a stale expiry would
	// fire against the new load.
	if rec.metadataTimer != nil {
		rec.metadataTimer.Stop()
	}
	rec.metadataTimer = time.AfterFunc(s.cfg.MetadataTimeout, func() {
		s.metadataTimedOut(angle)
	})

	s.logger.Debug("player:LoadAngle", "angle", angle, "source", cfgAngle.Source)
	s.broadcastLocked()

	return nil
}

// metadataTimedOut resolves an overdue metadata wait as degraded but
// available: angle footage is pre-validated, so an indefinite loading
// state would cost more than a possibly stale duration.
func (s *service) metadataTimedOut(angle domain.AngleKey) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return
	}
	rec, ok := s.handles[angle]
	if !ok || rec.loadState != domain.HandleLoading {
		return
	}

	rec.loadState = domain.HandleReady
	s.metrics.MetadataTimeoutsTotal.Inc()
	s.logger.Warn("player:metadataTimedOut", "angle", angle, "duration", rec.duration)
	s.broadcastLocked()
}
