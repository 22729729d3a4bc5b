package enemy

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/milk9111/fireteam/prefabs"
)

// Config is everything an Agent needs besides its collaborators.
type Config struct {
	Name       string
	Difficulty Difficulty
	Base       Stats

	EyeHeight       float64
	TargetAimHeight float64
	TurnSpeed       float64
	FireFacingAngle float64

	TurnThenMove      bool
	TurnInPlaceAngle  float64
	RotateWhileMoving bool

	Roam              bool
	RoamAroundCurrent bool
	RoamRadius        float64
	SampleDistance    float64
	PickAttempts      int
	WaitMin           float64
	WaitMax           float64
	ArriveTolerance   float64

	PatrolPoints    []mgl64.Vec3
	PatrolTolerance float64

	WalkParam    string
	SpeedParam   string
	ShootTrigger string
}

func DefaultConfig() Config {
	return Config{
		Name:       "enemy",
		Difficulty: Normal,
		Base: Stats{
			Speed:          1.25,
			DetectionRange: 18,
			ShootingRange:  11,
			FireRate:       1.2,
		},
		EyeHeight:         1.6,
		TargetAimHeight:   1.2,
		TurnSpeed:         8,
		FireFacingAngle:   10,
		TurnInPlaceAngle:  35,
		RotateWhileMoving: true,
		Roam:              true,
		RoamRadius:        12,
		SampleDistance:    3,
		PickAttempts:      20,
		WaitMin:           0.5,
		WaitMax:           2.5,
		ArriveTolerance:   1.2,
		PatrolTolerance:   1.2,
		WalkParam:         "IsWalking",
		SpeedParam:        "Speed",
		ShootTrigger:      "Shoot",
	}
}

// ConfigFromSpec overlays the fields spec sets onto DefaultConfig.
func ConfigFromSpec(spec prefabs.EnemySpec) (Config, error) {
	cfg := DefaultConfig()
	d, err := ParseDifficulty(spec.Difficulty)
	if err != nil {
		return cfg, fmt.Errorf("enemy %s: %w", spec.Name, err)
	}
	cfg.Difficulty = d

	setString(&cfg.Name, spec.Name)
	setFloat(&cfg.Base.Speed, spec.BaseSpeed)
	setFloat(&cfg.Base.DetectionRange, spec.DetectionRange)
	setFloat(&cfg.Base.ShootingRange, spec.ShootingRange)
	setFloat(&cfg.Base.FireRate, spec.FireRate)
	setFloat(&cfg.EyeHeight, spec.EyeHeight)
	setFloat(&cfg.TargetAimHeight, spec.TargetAimHeight)
	setFloat(&cfg.TurnSpeed, spec.TurnSpeed)
	setFloat(&cfg.FireFacingAngle, spec.FireFacingAngle)
	setFloat(&cfg.TurnInPlaceAngle, spec.TurnInPlaceAngle)
	setFloat(&cfg.RoamRadius, spec.RoamRadius)
	setFloat(&cfg.SampleDistance, spec.SampleDistance)
	setFloat(&cfg.WaitMin, spec.WaitMin)
	setFloat(&cfg.WaitMax, spec.WaitMax)
	setFloat(&cfg.ArriveTolerance, spec.ArriveTolerance)
	setFloat(&cfg.PatrolTolerance, spec.PatrolTolerance)
	setString(&cfg.WalkParam, spec.WalkParam)
	setString(&cfg.SpeedParam, spec.SpeedParam)
	setString(&cfg.ShootTrigger, spec.ShootTrigger)
	if spec.PickAttempts > 0 {
		cfg.PickAttempts = spec.PickAttempts
	}
	if spec.TurnThenMove != nil {
		cfg.TurnThenMove = *spec.TurnThenMove
	}
	if spec.RotateWhileMoving != nil {
		cfg.RotateWhileMoving = *spec.RotateWhileMoving
	}
	if spec.Roam != nil {
		cfg.Roam = *spec.Roam
	}
	cfg.RoamAroundCurrent = spec.RoamAroundCurrent
	for _, p := range spec.PatrolPoints {
		cfg.PatrolPoints = append(cfg.PatrolPoints, p.Vec())
	}
	return cfg, nil
}

func setFloat(dst *float64, v *float64) {
	if v != nil {
		*dst = *v
	}
}

func setString(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}
