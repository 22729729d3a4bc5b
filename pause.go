package main

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/basicfont"
)

type pauseAction int

const (
	pauseNone pauseAction = iota
	pauseResume
	pauseQuit
)

type button struct {
	label  string
	action pauseAction
	x, y   float32
	w, h   float32
}

func (b button) contains(x, y int) bool {
	fx, fy := float32(x), float32(y)
	return fx >= b.x && fx < b.x+b.w && fy >= b.y && fy < b.y+b.h
}

// pauseMenu is a centred panel with Resume and Quit buttons.
type pauseMenu struct {
	buttons []button
	resumed bool
}

var face ebtext.Face = ebtext.NewGoXFace(basicfont.Face7x13)

var (
	panelColor  = color.NRGBA{A: 200}
	buttonColor = color.NRGBA{R: 0x33, G: 0x33, B: 0x33, A: 0xff}
)

func newPauseMenu() *pauseMenu {
	const w, h = 160, 32
	x := float32(baseWidth-w) / 2
	return &pauseMenu{buttons: []button{
		{label: "Resume", action: pauseResume, x: x, y: baseHeight/2 - 10, w: w, h: h},
		{label: "Quit", action: pauseQuit, x: x, y: baseHeight/2 + 32, w: w, h: h},
	}}
}

// Update handles clicks and reports Quit; Resume sets resumed.
func (m *pauseMenu) Update() pauseAction {
	if !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return pauseNone
	}
	x, y := ebiten.CursorPosition()
	for _, b := range m.buttons {
		if !b.contains(x, y) {
			continue
		}
		if b.action == pauseResume {
			m.resumed = true
		}
		return b.action
	}
	return pauseNone
}

func (m *pauseMenu) Draw(screen *ebiten.Image) {
	vector.FillRect(screen, baseWidth/4, baseHeight/4, baseWidth/2, baseHeight/2, panelColor, false)
	drawCentered(screen, "Paused", baseHeight/2-50, 1)
	for _, b := range m.buttons {
		vector.FillRect(screen, b.x, b.y, b.w, b.h, buttonColor, false)
		drawCentered(screen, b.label, float64(b.y+b.h/2), 1)
	}
}

// drawCentered draws s centred horizontally on the screen around y.
func drawCentered(screen *ebiten.Image, s string, y, alpha float64) {
	op := &ebtext.DrawOptions{}
	op.GeoM.Translate(baseWidth/2, y)
	op.PrimaryAlign = ebtext.AlignCenter
	op.SecondaryAlign = ebtext.AlignCenter
	op.ColorScale.ScaleAlpha(float32(alpha))
	ebtext.Draw(screen, s, face, op)
}
