package weapon

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/go-gl/mathgl/mgl64"
)

var (
	ErrUnknownStat   = errors.New("unknown stat")
	ErrBadValue      = errors.New("bad value")
	ErrUnsupportedOp = errors.New("unsupported operation")
)

// Stats are the weapon values attachments may modify.
type Stats struct {
	Name             string
	MagazineSize     int
	MaxReserveAmmo   int
	RoundsPerMinute  float64
	Damage           float64
	Spread           float32
	Recoil           mgl64.Vec3
	ReloadDuration   float64
	AimInDuration    float64
	AimOutDuration   float64
	HandSwapDuration float64
	RightHandOffset  mgl64.Vec3
	LeftHandOffset   mgl64.Vec3
	AimOffset        mgl64.Vec3
	AllowSafe        bool
	AllowSemi        bool
	AllowFull        bool
	SafeAngle        float64
	SemiAngle        float64
	FullAngle        float64
}

func (s Stats) Allowed() ModeSet {
	var set ModeSet
	if s.AllowSafe {
		set = set.With(Safe)
	}
	if s.AllowSemi {
		set = set.With(Semi)
	}
	if s.AllowFull {
		set = set.With(Full)
	}
	return set
}

func (s *Stats) SetAllowed(set ModeSet) {
	s.AllowSafe = set.Allows(Safe)
	s.AllowSemi = set.Allows(Semi)
	s.AllowFull = set.Allows(Full)
}

// Angle is the selector angle for mode.
func (s Stats) Angle(m FireMode) float64 {
	switch m {
	case Semi:
		return s.SemiAngle
	case Full:
		return s.FullAngle
	default:
		return s.SafeAngle
	}
}

// statTable maps lower-cased stat names to the field they address. Each
// entry returns a typed pointer; ApplyModifier switches on that type.
var statTable = map[string]func(w *Weapon) any{
	"name":             func(w *Weapon) any { return &w.stats.Name },
	"magazinesize":     func(w *Weapon) any { return &w.stats.MagazineSize },
	"maxreserveammo":   func(w *Weapon) any { return &w.stats.MaxReserveAmmo },
	"roundsperminute":  func(w *Weapon) any { return &w.stats.RoundsPerMinute },
	"damage":           func(w *Weapon) any { return &w.stats.Damage },
	"spread":           func(w *Weapon) any { return &w.stats.Spread },
	"recoil":           func(w *Weapon) any { return &w.stats.Recoil },
	"reloadduration":   func(w *Weapon) any { return &w.stats.ReloadDuration },
	"aiminduration":    func(w *Weapon) any { return &w.stats.AimInDuration },
	"aimoutduration":   func(w *Weapon) any { return &w.stats.AimOutDuration },
	"handswapduration": func(w *Weapon) any { return &w.stats.HandSwapDuration },
	"righthandoffset":  func(w *Weapon) any { return &w.stats.RightHandOffset },
	"lefthandoffset":   func(w *Weapon) any { return &w.stats.LeftHandOffset },
	"aimoffset":        func(w *Weapon) any { return &w.stats.AimOffset },
	"allowsafe":        func(w *Weapon) any { return &w.stats.AllowSafe },
	"allowsemi":        func(w *Weapon) any { return &w.stats.AllowSemi },
	"allowfull":        func(w *Weapon) any { return &w.stats.AllowFull },
	"safeangle":        func(w *Weapon) any { return &w.stats.SafeAngle },
	"semiangle":        func(w *Weapon) any { return &w.stats.SemiAngle },
	"fullangle":        func(w *Weapon) any { return &w.stats.FullAngle },
	"firemode":         func(w *Weapon) any { return &w.mode },
}

// StatNames lists the modifiable stats.
func StatNames() []string {
	names := make([]string, 0, len(statTable))
	for name := range statTable {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ApplyModifier applies m to the weapon. The value is parsed completely
// before anything is written, so a failed modifier changes nothing.
func (w *Weapon) ApplyModifier(m Modifier) error {
	name := strings.TrimSpace(m.Stat)
	ref := statTable[strings.ToLower(name)]
	if ref == nil {
		return fmt.Errorf("%w: %q", ErrUnknownStat, name)
	}
	if m.Op != OpSet && m.Op != OpAdd {
		return fmt.Errorf("%w: %s has no mode", ErrUnsupportedOp, name)
	}
	add := m.Op == OpAdd

	switch p := ref(w).(type) {
	case *int:
		v, err := strconv.Atoi(strings.TrimSpace(m.Value))
		if err != nil {
			return badValue(name, m.Value, err)
		}
		if add {
			v += *p
		}
		*p = v
	case *float32:
		v, err := strconv.ParseFloat(strings.TrimSpace(m.Value), 32)
		if err != nil {
			return badValue(name, m.Value, err)
		}
		if add {
			*p += float32(v)
		} else {
			*p = float32(v)
		}
	case *float64:
		v, err := strconv.ParseFloat(strings.TrimSpace(m.Value), 64)
		if err != nil {
			return badValue(name, m.Value, err)
		}
		if add {
			v += *p
		}
		*p = v
	case *mgl64.Vec3:
		v, err := ParseVec3(m.Value)
		if err != nil {
			return badValue(name, m.Value, err)
		}
		if add {
			v = p.Add(v)
		}
		*p = v
	case *bool:
		if add {
			return fmt.Errorf("%w: add on bool %s", ErrUnsupportedOp, name)
		}
		v, err := parseBool(m.Value)
		if err != nil {
			return badValue(name, m.Value, err)
		}
		*p = v
	case *string:
		if add {
			return fmt.Errorf("%w: add on string %s", ErrUnsupportedOp, name)
		}
		*p = m.Value
	case *FireMode:
		if add {
			return fmt.Errorf("%w: add on fire mode %s", ErrUnsupportedOp, name)
		}
		v, err := ParseFireMode(m.Value)
		if err != nil {
			return badValue(name, m.Value, err)
		}
		*p = v
	default:
		return fmt.Errorf("%w: %s has type %T", ErrUnsupportedOp, name, p)
	}
	return nil
}

func badValue(stat, value string, err error) error {
	return fmt.Errorf("%w: %s = %q: %v", ErrBadValue, stat, value, err)
}

func parseBool(s string) (bool, error) {
	switch {
	case strings.EqualFold(strings.TrimSpace(s), "true"):
		return true, nil
	case strings.EqualFold(strings.TrimSpace(s), "false"):
		return false, nil
	}
	return false, errors.New("not a bool")
}

// ParseVec3 reads "x,y,z", "(x y z)" or "[x, y, z]". Commas and spaces
// both separate components.
func ParseVec3(s string) (mgl64.Vec3, error) {
	s = strings.Trim(strings.TrimSpace(s), "()[]")
	parts := strings.FieldsFunc(s, func(r rune) bool { return r == ',' || r == ' ' })
	if len(parts) != 3 {
		return mgl64.Vec3{}, fmt.Errorf("want 3 components, got %d", len(parts))
	}
	var v mgl64.Vec3
	for i, part := range parts {
		f, err := strconv.ParseFloat(part, 64)
		if err != nil {
			return mgl64.Vec3{}, err
		}
		v[i] = f
	}
	return v, nil
}
