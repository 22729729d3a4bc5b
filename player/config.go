package player

import "github.com/milk9111/fireteam/prefabs"

type Config struct {
	MoveSpeed       float64
	MinMoveSpeed    float64
	MaxMoveSpeed    float64
	SpeedChangeStep float64

	LeanAngle         float64
	LeanRotationSpeed float64
	// LeanClearance is the gap kept between the head and geometry on the
	// lean side; LeanProbeDistance is how far that side is probed.
	LeanClearance     float64
	LeanProbeRadius   float64
	LeanProbeDistance float64

	HeadHeight float64
	Radius     float64

	BobAmplitude   float64
	BobFrequency   float64
	BobReturnSpeed float64
}

func DefaultConfig() Config {
	return Config{
		MoveSpeed:         5,
		MinMoveSpeed:      2,
		MaxMoveSpeed:      10,
		SpeedChangeStep:   1,
		LeanAngle:         30,
		LeanRotationSpeed: 40,
		LeanClearance:     0.3,
		LeanProbeRadius:   0.2,
		LeanProbeDistance: 0.6,
		HeadHeight:        1.7,
		Radius:            0.35,
		BobAmplitude:      0.05,
		BobFrequency:      1.8,
		BobReturnSpeed:    0.5,
	}
}

// ConfigFromSpec overlays the non-zero fields of spec on the defaults.
func ConfigFromSpec(spec prefabs.PlayerSpec) Config {
	cfg := DefaultConfig()
	overlay := func(dst *float64, v float64) {
		if v != 0 {
			*dst = v
		}
	}
	overlay(&cfg.MoveSpeed, spec.MoveSpeed)
	overlay(&cfg.MinMoveSpeed, spec.MinMoveSpeed)
	overlay(&cfg.MaxMoveSpeed, spec.MaxMoveSpeed)
	overlay(&cfg.SpeedChangeStep, spec.SpeedChangeStep)
	overlay(&cfg.LeanAngle, spec.LeanAngle)
	overlay(&cfg.LeanRotationSpeed, spec.LeanRotationSpeed)
	overlay(&cfg.LeanClearance, spec.LeanClearance)
	overlay(&cfg.LeanProbeRadius, spec.LeanProbeRadius)
	overlay(&cfg.LeanProbeDistance, spec.LeanProbeDistance)
	overlay(&cfg.HeadHeight, spec.HeadHeight)
	overlay(&cfg.Radius, spec.Radius)
	overlay(&cfg.BobAmplitude, spec.BobAmplitude)
	overlay(&cfg.BobFrequency, spec.BobFrequency)
	overlay(&cfg.BobReturnSpeed, spec.BobReturnSpeed)
	return cfg
}
