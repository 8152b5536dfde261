package domain

// HandleView is the observable slice of one media handle's state.
type HandleView struct {
	LoadState   string  `json:"load_state"`
	Position    float64 `json:"position"`
	Duration    float64 `json:"duration"`
	IsPlaying   bool    `json:"is_playing"`
	IsMuted     bool    `json:"is_muted"`
	ErrorReason string  `json:"error_reason,omitempty"`
}

// PlayerStatus is a snapshot of the ensemble, broadcast to the UI layer
// after every state change. Thumbnails is always every configured angle
// minus the main angle, in display order.
type PlayerStatus struct {
	MainAngle       AngleKey                `json:"main_angle"`
	Position        float64                 `json:"position"`
	DisplayTime     string                  `json:"display_time"`
	Duration        float64                 `json:"duration"`
	IsPlaying       bool                    `json:"is_playing"`
	IsMuted         bool                    `json:"is_muted"`
	ControlsVisible bool                    `json:"controls_visible"`
	Thumbnails      []AngleKey              `json:"thumbnails"`
	Handles         map[AngleKey]HandleView `json:"handles"`
}
