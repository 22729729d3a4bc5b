package enemy

import (
	"errors"
	"fmt"
	"strings"
)

var ErrUnknownDifficulty = errors.New("enemy: unknown difficulty")

type Difficulty int

const (
	Easy Difficulty = iota
	Normal
	Hard
)

func (d Difficulty) String() string {
	switch d {
	case Easy:
		return "easy"
	case Hard:
		return "hard"
	default:
		return "normal"
	}
}

// ParseDifficulty accepts easy, normal or hard in any case. Blank means
// normal.
func ParseDifficulty(s string) (Difficulty, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "easy":
		return Easy, nil
	case "", "normal":
		return Normal, nil
	case "hard":
		return Hard, nil
	}
	return Normal, fmt.Errorf("%w: %q", ErrUnknownDifficulty, s)
}

// Stats are the difficulty-scaled values an agent acts on.
type Stats struct {
	Speed          float64
	DetectionRange float64
	ShootingRange  float64
	FireRate       float64
}

var multipliers = map[Difficulty]Stats{
	Easy:   {Speed: 0.8, DetectionRange: 0.8, ShootingRange: 0.9, FireRate: 0.75},
	Normal: {Speed: 1, DetectionRange: 1, ShootingRange: 1, FireRate: 1},
	Hard:   {Speed: 1.2, DetectionRange: 1.25, ShootingRange: 1.1, FireRate: 1.25},
}

// Multipliers returns the scaling row for d. Unknown values scale like
// Normal.
func Multipliers(d Difficulty) Stats {
	if m, ok := multipliers[d]; ok {
		return m
	}
	return multipliers[Normal]
}

// ApplyDifficulty scales base by the row for d. It has no other inputs, so
// applying it again with the same difficulty changes nothing.
func ApplyDifficulty(base Stats, d Difficulty) Stats {
	m := Multipliers(d)
	return Stats{
		Speed:          base.Speed * m.Speed,
		DetectionRange: base.DetectionRange * m.DetectionRange,
		ShootingRange:  base.ShootingRange * m.ShootingRange,
		FireRate:       base.FireRate * m.FireRate,
	}
}
