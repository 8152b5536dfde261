package player

import (
	"github.com/courtcast/server/internal/domain"
	"github.com/courtcast/server/pkg/timeformat"
)

// Status returns a snapshot of the ensemble state.
func (s *service) Status() domain.PlayerStatus {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.statusLocked()
}

func (s *service) statusLocked() domain.PlayerStatus {
	thumbnails := make([]domain.AngleKey, 0, len(domain.AngleKeys)-1)
	for _, angle := range domain.AngleKeys {
		if angle != s.mainAngle {
			thumbnails = append(thumbnails, angle)
		}
	}

	handles := make(map[domain.AngleKey]domain.HandleView, len(s.handles))
	for angle, rec := range s.handles {
		handles[angle] = domain.HandleView{
			LoadState:   rec.loadState.String(),
			Position:    rec.position,
			Duration:    rec.duration,
			IsPlaying:   rec.playing,
			IsMuted:     rec.muted,
			ErrorReason: rec.errorReason,
		}
	}

	return domain.PlayerStatus{
		MainAngle:       s.mainAngle,
		Position:        s.position,
		DisplayTime:     timeformat.Clock(s.position),
		Duration:        s.duration,
		IsPlaying:       s.isPlaying,
		IsMuted:         s.isMuted,
		ControlsVisible: s.controlsVisible,
		Thumbnails:      thumbnails,
		Handles:         handles,
	}
}

// Subscribe registers a status listener. Snapshots are delivered with
// non-blocking sends: a slow subscriber drops intermediate snapshots
// rather than stalling the player.
func (s *service) Subscribe() chan domain.PlayerStatus {
	ch := make(chan domain.PlayerStatus, 4)
	s.mu.Lock()
	defer s.mu.Unlock()
	s.subs[ch] = struct{}{}
	return ch
}

func (s *service) Unsubscribe(ch chan domain.PlayerStatus) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.subs[ch]; ok {
		delete(s.subs, ch)
		close(ch)
	}
}

func (s *service) broadcastLocked() {
	if len(s.subs) == 0 {
		return
	}

	status := s.statusLocked()
	for ch := range s.subs {
		select {
		case ch <- status:
		default:
		}
	}
}
