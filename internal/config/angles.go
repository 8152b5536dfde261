package config

import (
	"fmt"

	"github.com/spf13/viper"

	"github.com/courtcast/server/internal/domain"
	"github.com/courtcast/server/pkg/validator"
)

// LoadAngles reads the integrator-edited angle map from path. The file
// must contain an "angles" section with exactly the four recognized keys
// (angle1..angle4), each carrying a source and a label.
func LoadAngles(path string) (domain.AngleConfig, error) {
	v := viper.New()
	v.SetConfigFile(path)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read angles config: %w", err)
	}

	var raw map[string]domain.CameraAngle
	if err := v.UnmarshalKey("angles", &raw); err != nil {
		return nil, fmt.Errorf("failed to unmarshal angles config: %w", err)
	}

	return buildAngleConfig(raw)
}

func buildAngleConfig(raw map[string]domain.CameraAngle) (domain.AngleConfig, error) {
	validate := validator.NewValidator()

	angles := make(domain.AngleConfig, len(domain.AngleKeys))
	for key, angle := range raw {
		angleKey := domain.AngleKey(key)
		if !angleKey.Valid() {
			return nil, fmt.Errorf("unrecognized angle key: %s", key)
		}

		if validationErrors, ok := validate.Validate(angle); !ok {
			return nil, fmt.Errorf("invalid angle %s: %s", key, validationErrors[0].Message)
		}

		angles[angleKey] = angle
	}

	for _, key := range domain.AngleKeys {
		if _, ok := angles[key]; !ok {
			return nil, fmt.Errorf("missing angle key: %s", key)
		}
	}

	return angles, nil
}
