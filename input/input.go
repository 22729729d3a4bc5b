// Package input turns per-tick device snapshots into named actions with
// level (held) and edge (pressed this tick) semantics.
package input

import (
	"fmt"
	"strings"
)

// MouseButtons is the number of mouse buttons tracked.
const MouseButtons = 5

// Snapshot is the raw device state for one tick.
type Snapshot struct {
	Keys    map[string]bool
	Mouse   [MouseButtons]bool
	MouseDX float64
	MouseDY float64
	ScrollY float64
}

// Source produces one snapshot per tick.
type Source interface {
	Poll() Snapshot
}

// NormalizeKey lowercases and trims a key name so config files and device
// adapters agree on spelling.
func NormalizeKey(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// State keeps the current and previous snapshot. Edges are derived from
// the pair, never from device callbacks.
type State struct {
	prev, cur Snapshot
}

// Advance makes next the current snapshot.
func (s *State) Advance(next Snapshot) {
	s.prev = s.cur
	s.cur = next
}

func (s *State) KeyHeld(key string) bool {
	return s.cur.Keys[NormalizeKey(key)]
}

func (s *State) KeyDown(key string) bool {
	k := NormalizeKey(key)
	return s.cur.Keys[k] && !s.prev.Keys[k]
}

func (s *State) MouseHeld(button int) bool {
	if button < 0 || button >= MouseButtons {
		return false
	}
	return s.cur.Mouse[button]
}

func (s *State) MouseDown(button int) bool {
	if button < 0 || button >= MouseButtons {
		return false
	}
	return s.cur.Mouse[button] && !s.prev.Mouse[button]
}

// LookDelta is this tick's cursor movement.
func (s *State) LookDelta() (dx, dy float64) {
	return s.cur.MouseDX, s.cur.MouseDY
}

func (s *State) Scroll() float64 {
	return s.cur.ScrollY
}

// Device is the class of control a binding reads.
type Device int

const (
	DeviceKey Device = iota
	DeviceMouse
)

// Binding maps an action to one key or mouse button.
type Binding struct {
	Action      string
	Device      Device
	Key         string
	MouseButton int
}

func (b Binding) String() string {
	if b.Device == DeviceMouse {
		return fmt.Sprintf("Mouse%d", b.MouseButton)
	}
	if b.Key == "" {
		return "None"
	}
	return b.Key
}

// Held is level state.
func (b Binding) Held(s *State) bool {
	if s == nil {
		return false
	}
	if b.Device == DeviceMouse {
		return s.MouseHeld(b.MouseButton)
	}
	if b.Key == "" {
		return false
	}
	return s.KeyHeld(b.Key)
}

// Down is the false to true edge.
func (b Binding) Down(s *State) bool {
	if s == nil {
		return false
	}
	if b.Device == DeviceMouse {
		return s.MouseDown(b.MouseButton)
	}
	if b.Key == "" {
		return false
	}
	return s.KeyDown(b.Key)
}
