// Package script runs tengo shot scripts. A script sees the shot as
// globals (source, damage, distance, mode, ammo) and may rewrite damage.
package script

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
	"github.com/rs/zerolog"

	"github.com/milk9111/fireteam/enemy"
	"github.com/milk9111/fireteam/prefabs"
	"github.com/milk9111/fireteam/weapon"
)

var (
	ErrNoScript  = errors.New("script: no script")
	ErrNotNumber = errors.New("script: damage is not a number")
)

// Input is what a script is told about a shot.
type Input struct {
	Source   string
	Damage   float64
	Distance float64
	Mode     string
	Ammo     int
}

// ShotHook evaluates one compiled shot script. It is safe to share
// between a weapon and any number of enemies.
type ShotHook struct {
	name string
	log  zerolog.Logger

	mu       sync.Mutex
	compiled *tengo.Compiled
}

// Load compiles a script from the prefab scripts directory.
func Load(name string, log zerolog.Logger) (*ShotHook, error) {
	return LoadFrom(prefabs.Default, name, log)
}

// LoadFrom compiles the named script read from assets.
func LoadFrom(assets prefabs.ScriptSource, name string, log zerolog.Logger) (*ShotHook, error) {
	if strings.TrimSpace(name) == "" {
		return nil, ErrNoScript
	}
	src, err := assets.LoadScript(name)
	if err != nil {
		return nil, fmt.Errorf("script: load %q: %w", name, err)
	}
	return Compile(name, src, log)
}

// Compile builds a hook from source.
func Compile(name string, src []byte, log zerolog.Logger) (*ShotHook, error) {
	s := tengo.NewScript(src)
	for k, v := range map[string]any{
		"source":   "",
		"damage":   0.0,
		"distance": 0.0,
		"mode":     "",
		"ammo":     0,
	} {
		if err := s.Add(k, v); err != nil {
			return nil, fmt.Errorf("script: %s: %w", name, err)
		}
	}
	s.SetImports(stdlib.GetModuleMap(stdlib.AllModuleNames()...))

	compiled, err := s.Compile()
	if err != nil {
		return nil, fmt.Errorf("script: compile %s: %w", name, err)
	}
	return &ShotHook{name: name, log: log, compiled: compiled}, nil
}

func (h *ShotHook) Name() string { return h.name }

// Eval runs the script and returns the damage it settled on.
func (h *ShotHook) Eval(in Input) (float64, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	for k, v := range map[string]any{
		"source":   in.Source,
		"damage":   in.Damage,
		"distance": in.Distance,
		"mode":     in.Mode,
		"ammo":     in.Ammo,
	} {
		if err := h.compiled.Set(k, v); err != nil {
			return in.Damage, fmt.Errorf("script: %s: set %s: %w", h.name, k, err)
		}
	}
	if err := h.compiled.Run(); err != nil {
		return in.Damage, fmt.Errorf("script: %s: run: %w", h.name, err)
	}
	out := h.compiled.Get("damage")
	if out.IsUndefined() {
		return in.Damage, nil
	}
	switch v := out.Value().(type) {
	case int64:
		return float64(v), nil
	case float64:
		return v, nil
	}
	return in.Damage, fmt.Errorf("%w: %s left %s", ErrNotNumber, h.name, out.ValueType())
}

// damage evaluates in, keeping the incoming damage when the script fails.
func (h *ShotHook) damage(in Input) float64 {
	d, err := h.Eval(in)
	if err != nil {
		h.log.Warn().Err(err).Str("source", in.Source).Msg("shot script failed")
		return in.Damage
	}
	return d
}

// Weapon adapts the script to a weapon hook. next, when set, runs first
// so it can resolve the hit distance.
func (h *ShotHook) Weapon(next weapon.ShotHook) weapon.ShotHook {
	return func(s weapon.Shot) weapon.Shot {
		if next != nil {
			s = next(s)
		}
		s.Damage = h.damage(Input{
			Source:   s.Weapon,
			Damage:   s.Damage,
			Distance: s.Distance,
			Mode:     s.Mode.String(),
			Ammo:     s.Remaining,
		})
		return s
	}
}

// Enemy adapts the script to an enemy hook. Enemy shots carry no damage
// of their own, so base is scaled and handed to apply.
func (h *ShotHook) Enemy(base float64, apply func(enemy.Shot, float64)) enemy.ShotHook {
	return func(s enemy.Shot) {
		d := h.damage(Input{
			Source:   s.Enemy,
			Damage:   base,
			Distance: s.Distance,
			Mode:     "enemy",
		})
		if apply != nil {
			apply(s, d)
		}
	}
}
