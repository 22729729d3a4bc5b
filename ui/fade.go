// Package ui holds HUD timing helpers: alpha fades and timed callback
// sequences. Rendering stays with the host.
package ui

import (
	"github.com/milk9111/fireteam/common"
	"github.com/milk9111/fireteam/event"
	"github.com/milk9111/fireteam/prefabs"
	"github.com/milk9111/fireteam/task"
	"github.com/milk9111/fireteam/tween"
)

// AlphaTarget is anything with an opacity in 0..1.
type AlphaTarget interface {
	Alpha() float64
	SetAlpha(a float64)
}

// Opacity is a bare AlphaTarget for hosts that read the value back.
type Opacity struct{ A float64 }

func (o *Opacity) Alpha() float64 { return o.A }

func (o *Opacity) SetAlpha(a float64) { o.A = a }

// Group fades several targets together. Nil entries are skipped.
type Group []AlphaTarget

// Alpha is the first target's alpha, or 1 for an empty group.
func (g Group) Alpha() float64 {
	for _, t := range g {
		if t != nil {
			return t.Alpha()
		}
	}
	return 1
}

func (g Group) SetAlpha(a float64) {
	for _, t := range g {
		if t != nil {
			t.SetAlpha(a)
		}
	}
}

// FadeConfig alphas are 0..255.
type FadeConfig struct {
	TextIn        int
	ImageIn       int
	FadeIn        float64
	RemainVisible float64
	TextOut       int
	ImageOut      int
	FadeOut       float64
}

func DefaultFadeConfig() FadeConfig {
	return FadeConfig{TextIn: 255, ImageIn: 255, FadeIn: 1, RemainVisible: 1, FadeOut: 1}
}

func FadeConfigFromSpec(spec prefabs.FadeSpec) FadeConfig {
	return FadeConfig{
		TextIn:        spec.TextFadeInAlpha,
		ImageIn:       spec.ImageFadeInAlpha,
		FadeIn:        spec.FadeIn,
		RemainVisible: spec.RemainVisible,
		TextOut:       spec.TextFadeOutAlpha,
		ImageOut:      spec.ImageFadeOutAlpha,
		FadeOut:       spec.FadeOut,
	}
}

func alpha01(a int) float64 {
	return common.Clamp01(float64(a) / 255)
}

// Fader fades text and images in, holds them, and fades them out.
type Fader struct {
	Name   string
	Config FadeConfig
	Text   Group
	Image  Group
	Events event.Pusher

	slot task.Slot
}

// Start begins a fade, cancelling the one in flight. Zero-length phases
// are applied before Start returns.
func (f *Fader) Start() {
	cfg := f.Config
	f.slot.Start(task.NewSequence(
		task.Defer(func() task.Task { return f.phase(alpha01(cfg.TextIn), alpha01(cfg.ImageIn), cfg.FadeIn) }),
		task.NewWait(cfg.RemainVisible),
		task.Defer(func() task.Task { return f.phase(alpha01(cfg.TextOut), alpha01(cfg.ImageOut), cfg.FadeOut) }),
		task.Do(func() { event.Emit(f.Events, event.FadeFinished, f.Name) }),
	))
	f.slot.Step(0)
}

// phase moves both groups from their current alpha to the given targets.
func (f *Fader) phase(text, image, duration float64) task.Task {
	textFrom, imageFrom := f.Text.Alpha(), f.Image.Alpha()
	progress := 0.0
	return &tween.Scalar{
		Get: func() float64 { return progress },
		Set: func(u float64) {
			progress = u
			if u >= 1 {
				f.Text.SetAlpha(text)
				f.Image.SetAlpha(image)
				return
			}
			f.Text.SetAlpha(common.Lerp(textFrom, text, u))
			f.Image.SetAlpha(common.Lerp(imageFrom, image, u))
		},
		To:       1,
		Duration: duration,
	}
}

// Stop abandons the fade where it is.
func (f *Fader) Stop() { f.slot.Cancel() }

func (f *Fader) Step(dt float64) { f.slot.Step(dt) }

func (f *Fader) Busy() bool { return f.slot.Busy() }
