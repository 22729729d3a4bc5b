package weapon

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var ErrUnknownFireMode = errors.New("unknown fire mode")

type FireMode int

const (
	Safe FireMode = iota
	Semi
	Full
)

const numFireModes = 3

func (m FireMode) String() string {
	switch m {
	case Safe:
		return "safe"
	case Semi:
		return "semi"
	case Full:
		return "full"
	default:
		return "FireMode(" + strconv.Itoa(int(m)) + ")"
	}
}

// ParseFireMode accepts the short names, the long "semiauto"/"fullauto"
// forms and the ordinal, ignoring case.
func ParseFireMode(s string) (FireMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "safe":
		return Safe, nil
	case "semi", "semiauto", "semi_auto":
		return Semi, nil
	case "full", "fullauto", "full_auto", "auto":
		return Full, nil
	}
	if n, err := strconv.Atoi(strings.TrimSpace(s)); err == nil && n >= 0 && n < numFireModes {
		return FireMode(n), nil
	}
	return Safe, fmt.Errorf("%w: %q", ErrUnknownFireMode, s)
}

// ModeSet is a bitmask of allowed fire modes.
type ModeSet uint8

func NewModeSet(modes ...FireMode) ModeSet {
	var s ModeSet
	for _, m := range modes {
		s = s.With(m)
	}
	return s
}

// ParseModeSet builds a set from mode names.
func ParseModeSet(names []string) (ModeSet, error) {
	var s ModeSet
	for _, name := range names {
		m, err := ParseFireMode(name)
		if err != nil {
			return 0, err
		}
		s = s.With(m)
	}
	return s, nil
}

func (s ModeSet) With(m FireMode) ModeSet {
	if m < 0 || m >= numFireModes {
		return s
	}
	return s | 1<<uint(m)
}

func (s ModeSet) Without(m FireMode) ModeSet {
	if m < 0 || m >= numFireModes {
		return s
	}
	return s &^ (1 << uint(m))
}

func (s ModeSet) Allows(m FireMode) bool {
	if m < 0 || m >= numFireModes {
		return false
	}
	return s&(1<<uint(m)) != 0
}

func (s ModeSet) String() string {
	var parts []string
	for m := Safe; m < numFireModes; m++ {
		if s.Allows(m) {
			parts = append(parts, m.String())
		}
	}
	return "[" + strings.Join(parts, ",") + "]"
}

func (m FireMode) next() FireMode {
	return (m + 1) % numFireModes
}

// NextFireMode returns the first allowed mode after current in the cycle
// Safe, Semi, Full. Each candidate is tried once; with nothing allowed the
// result is Safe.
func NextFireMode(current FireMode, allowed ModeSet) FireMode {
	candidate := current
	for i := 0; i < numFireModes; i++ {
		candidate = candidate.next()
		if allowed.Allows(candidate) {
			return candidate
		}
	}
	return Safe
}

// Validate keeps current when it is allowed and otherwise falls back to
// the first allowed of Safe, Semi, Full, or Safe when none is.
func Validate(current FireMode, allowed ModeSet) FireMode {
	if allowed.Allows(current) {
		return current
	}
	for _, m := range [...]FireMode{Safe, Semi, Full} {
		if allowed.Allows(m) {
			return m
		}
	}
	return Safe
}
