// Package ebitensrc reads keyboard, mouse and gamepad state from ebiten.
// It must be polled from ebiten's Update goroutine.
package ebitensrc

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/milk9111/fireteam/input"
)

const stickDeadzone = 0.2

var mouseButtons = [input.MouseButtons]ebiten.MouseButton{
	ebiten.MouseButton0,
	ebiten.MouseButton1,
	ebiten.MouseButton2,
	ebiten.MouseButton3,
	ebiten.MouseButton4,
}

// Source implements input.Source. Key names are ebiten's Key.String(),
// lowercased ("w", "space", "shiftleft").
type Source struct {
	// StickLook scales the right gamepad stick into cursor pixels per tick.
	StickLook float64

	keys      []ebiten.Key
	lastX     int
	lastY     int
	haveMouse bool
}

func New() *Source {
	return &Source{StickLook: 12}
}

func (s *Source) Poll() input.Snapshot {
	snap := input.Snapshot{Keys: make(map[string]bool)}

	s.keys = inpututil.AppendPressedKeys(s.keys[:0])
	for _, k := range s.keys {
		snap.Keys[input.NormalizeKey(k.String())] = true
	}

	for i, b := range mouseButtons {
		snap.Mouse[i] = ebiten.IsMouseButtonPressed(b)
	}

	x, y := ebiten.CursorPosition()
	if s.haveMouse {
		snap.MouseDX = float64(x - s.lastX)
		// Screen y grows downward; look input treats up as positive.
		snap.MouseDY = float64(s.lastY - y)
	}
	s.lastX, s.lastY, s.haveMouse = x, y, true

	_, snap.ScrollY = ebiten.Wheel()

	if gamepads := ebiten.AppendGamepadIDs(nil); len(gamepads) > 0 {
		id := gamepads[0]
		if ebiten.IsStandardGamepadButtonPressed(id, ebiten.StandardGamepadButtonFrontBottomRight) {
			snap.Mouse[0] = true
		}
		if ebiten.IsStandardGamepadButtonPressed(id, ebiten.StandardGamepadButtonFrontBottomLeft) {
			snap.Mouse[1] = true
		}
		rx := ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisRightStickHorizontal)
		ry := ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisRightStickVertical)
		if math.Hypot(rx, ry) > stickDeadzone {
			snap.MouseDX += rx * s.StickLook
			snap.MouseDY -= ry * s.StickLook
		}
	}

	return snap
}
