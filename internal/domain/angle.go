package domain

import "errors"

var (
	ErrAngleNotFound = errors.New("angle not found")
	ErrSourceEmpty   = errors.New("angle source is empty")
)

// AngleKey identifies one of the four fixed camera perspectives.
type AngleKey string

const (
	Angle1 AngleKey = "angle1"
	Angle2 AngleKey = "angle2"
	Angle3 AngleKey = "angle3"
	Angle4 AngleKey = "angle4"
)

// AngleKeys lists every recognized angle in display order.
var AngleKeys = []AngleKey{Angle1, Angle2, Angle3, Angle4}

func (k AngleKey) Valid() bool {
	for _, key := range AngleKeys {
		if k == key {
			return true
		}
	}
	return false
}

// CameraAngle is integrator-edited configuration data. Angles are never
// created or destroyed at runtime; identity is the angle key.
type CameraAngle struct {
	Source      string `json:"source" mapstructure:"source" validate:"required,min=1"`
	Label       string `json:"label" mapstructure:"label" validate:"required,min=1"`
	Description string `json:"description" mapstructure:"description"`
}

// AngleConfig maps each of the four recognized keys to its camera angle.
type AngleConfig map[AngleKey]CameraAngle
