package input

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/milk9111/fireteam/prefabs"
)

func boolPtr(b bool) *bool { return &b }

func controlSpec() prefabs.ControlSpec {
	return prefabs.ControlSpec{Controls: []prefabs.ControlValueSpec{
		{Action: "reloadWeapon", DefaultKey: "R"},
		{Action: "cycleFireMode", DefaultKey: "b", BoundKey: "V"},
		{Action: "aimWeapon", UseMouseButton: true, DefaultMouseButton: 0, BoundMouseButton: 1},
		{Action: "walkForward", DefaultKey: "w"},
		{Action: "openMenu", IsKeybind: boolPtr(false), DefaultKey: "escape"},
		{Action: "  ", DefaultKey: "z"},
		{Action: "upWalkSpeed", DefaultKey: "equal"},
	}}
}

func TestRebuildFiltersAndFallsBack(t *testing.T) {
	b := Rebuild(controlSpec(), RebuildOptions{
		Allow:       []string{"reloadWeapon", "cycleFireMode", "aimWeapon", "openMenu"},
		KeyFallback: true,
		Log:         zerolog.Nop(),
	})

	assert.Equal(t, []string{"reloadWeapon", "cycleFireMode", "aimWeapon"}, b.Actions())
	assert.Equal(t, "r", b.Describe("reloadWeapon"), "default key used when nothing is bound")
	assert.Equal(t, "v", b.Describe("cycleFireMode"), "bound key wins")
	assert.Equal(t, "Mouse1", b.Describe("aimWeapon"))
	assert.Equal(t, "None", b.Describe("walkForward"))
	assert.Equal(t, "None", b.Describe("openMenu"), "non-keybind entries are skipped")
}

func TestRebuildWithoutFallbackAndSkip(t *testing.T) {
	b := Rebuild(controlSpec(), RebuildOptions{Skip: []string{"upWalkSpeed"}})

	_, ok := b.Lookup("upWalkSpeed")
	assert.False(t, ok)
	reload, ok := b.Lookup("reloadWeapon")
	require.True(t, ok)
	assert.Empty(t, reload.Key, "no fallback leaves the key unbound")
	assert.Equal(t, 4, b.Len())
}

func TestEdgeAndLevel(t *testing.T) {
	b := Rebuild(controlSpec(), RebuildOptions{KeyFallback: true})
	var s State

	script := NewScript().HoldKey("R", 1, 3).HoldMouse(1, 0, 2)

	s.Advance(script.Poll())
	assert.True(t, b.Pressed(&s, "aimWeapon"))
	assert.True(t, b.PressedDown(&s, "aimWeapon"))
	assert.False(t, b.Pressed(&s, "reloadWeapon"))

	s.Advance(script.Poll())
	assert.True(t, b.Pressed(&s, "aimWeapon"))
	assert.False(t, b.PressedDown(&s, "aimWeapon"), "held is not a new edge")
	assert.True(t, b.PressedDown(&s, "reloadWeapon"))

	s.Advance(script.Poll())
	assert.True(t, b.Pressed(&s, "reloadWeapon"))
	assert.False(t, b.PressedDown(&s, "reloadWeapon"))
	assert.False(t, b.Pressed(&s, "aimWeapon"))

	s.Advance(script.Poll())
	assert.False(t, b.Pressed(&s, "reloadWeapon"))
}

func TestEmptyBindingsAreQuiescent(t *testing.T) {
	var nilBindings *Bindings
	var s State
	s.Advance(Snapshot{Keys: map[string]bool{"r": true}, Mouse: [MouseButtons]bool{true}})

	assert.False(t, nilBindings.Pressed(&s, "reloadWeapon"))
	assert.False(t, nilBindings.PressedDown(&s, "shootWeapon"))

	empty := Rebuild(prefabs.ControlSpec{}, RebuildOptions{})
	assert.Zero(t, empty.Len())
	assert.False(t, empty.PressedDown(&s, "reloadWeapon"))
}

func TestScriptPulses(t *testing.T) {
	mouse := 0
	script := ScriptFromSpec([]prefabs.InputStepSpec{
		{From: 0, LookX: 3, LookY: -1},
		{From: 1, Scroll: -1},
		{From: 1, To: 1, Mouse: &mouse},
	})

	var s State
	s.Advance(script.Poll())
	dx, dy := s.LookDelta()
	assert.Equal(t, 3.0, dx)
	assert.Equal(t, -1.0, dy)
	assert.False(t, s.MouseHeld(0))

	s.Advance(script.Poll())
	dx, _ = s.LookDelta()
	assert.Zero(t, dx, "deltas do not persist")
	assert.Equal(t, -1.0, s.Scroll())
	assert.True(t, s.MouseDown(0))
	assert.Equal(t, 2, script.Tick())

	assert.False(t, s.MouseHeld(9))
}
