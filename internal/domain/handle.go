package domain

// HandleLoadState tracks how far a media handle has progressed through
// loading its source: unloaded → loading → {ready, errored}.
type HandleLoadState int

const (
	HandleUnloaded HandleLoadState = iota
	HandleLoading
	HandleReady
	HandleErrored
)

func (s HandleLoadState) String() string {
	switch s {
	case HandleUnloaded:
		return "unloaded"
	case HandleLoading:
		return "loading"
	case HandleReady:
		return "ready"
	case HandleErrored:
		return "errored"
	default:
		return "unknown"
	}
}

// HandleEventType names an asynchronous completion reported by a media
// handle back to the player core.
type HandleEventType string

const (
	EventMetadata     HandleEventType = "metadata"
	EventTimeUpdate   HandleEventType = "time_update"
	EventPlaySettled  HandleEventType = "play_settled"
	EventPlayRejected HandleEventType = "play_rejected"
	EventEnded        HandleEventType = "ended"
	EventError        HandleEventType = "error"
)

// HandleEvent is the uniform event type delivered to the player core's
// single event entry point. Position and Duration are in seconds and are
// meaningful only for the event types that carry them.
type HandleEvent struct {
	Angle    AngleKey        `json:"angle"`
	Type     HandleEventType `json:"type"`
	Position float64         `json:"position"`
	Duration float64         `json:"duration"`
	Reason   string          `json:"reason"`
}
