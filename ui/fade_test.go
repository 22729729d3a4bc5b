package ui_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/milk9111/fireteam/event"
	"github.com/milk9111/fireteam/prefabs"
	"github.com/milk9111/fireteam/ui"
)

type swatch struct{ a float64 }

func (s *swatch) Alpha() float64     { return s.a }
func (s *swatch) SetAlpha(a float64) { s.a = a }

func newFader(cfg ui.FadeConfig) (*ui.Fader, *swatch, *swatch, *event.Queue) {
	text, image := &swatch{}, &swatch{}
	q := &event.Queue{}
	return &ui.Fader{
		Name:   "intro",
		Config: cfg,
		Text:   ui.Group{text},
		Image:  ui.Group{image},
		Events: q,
	}, text, image, q
}

func TestFadeRunsInHoldOut(t *testing.T) {
	cfg := ui.FadeConfig{TextIn: 255, ImageIn: 200, FadeIn: 1, RemainVisible: 1, FadeOut: 1}
	f, text, image, q := newFader(cfg)

	f.Start()
	assert.True(t, f.Busy())
	assert.Zero(t, text.a)

	f.Step(0.5)
	assert.InDelta(t, 0.5, text.a, 1e-9)
	assert.InDelta(t, 0.5*200.0/255.0, image.a, 1e-9)

	f.Step(0.5)
	assert.Equal(t, 1.0, text.a)
	assert.InDelta(t, 200.0/255.0, image.a, 1e-12)

	f.Step(0.5)
	assert.Equal(t, 1.0, text.a, "held while visible")

	f.Step(0.5)
	f.Step(0.5)
	assert.InDelta(t, 0.5, text.a, 1e-9)
	assert.Zero(t, q.Len())

	f.Step(0.5)
	assert.Zero(t, text.a)
	assert.Zero(t, image.a)
	assert.False(t, f.Busy())

	evts := q.Drain()
	require.Len(t, evts, 1)
	assert.Equal(t, event.FadeFinished, evts[0].Type)
	assert.Equal(t, "intro", evts[0].Data)
}

func TestFadeRestartCancelsRunningFade(t *testing.T) {
	f, text, _, q := newFader(ui.FadeConfig{TextIn: 255, FadeIn: 1, RemainVisible: 1, FadeOut: 1})
	f.Start()
	f.Step(0.5)
	require.InDelta(t, 0.5, text.a, 1e-9)

	f.Start()
	f.Step(0.5)
	assert.InDelta(t, 0.75, text.a, 1e-9, "restarts from the current alpha")

	f.Stop()
	f.Step(5)
	assert.InDelta(t, 0.75, text.a, 1e-9)
	assert.Zero(t, q.Len())
}

func TestFadeZeroDurationsSnap(t *testing.T) {
	f, text, image, q := newFader(ui.FadeConfig{TextIn: 255, ImageIn: 255, TextOut: 51, ImageOut: 102})
	f.Start()
	assert.False(t, f.Busy())
	assert.InDelta(t, 0.2, text.a, 1e-12)
	assert.InDelta(t, 0.4, image.a, 1e-12)
	assert.Equal(t, 1, q.Len())
}

func TestGroupSkipsNilTargets(t *testing.T) {
	assert.Equal(t, 1.0, ui.Group{}.Alpha())

	s := &swatch{a: 0.3}
	g := ui.Group{nil, s}
	assert.Equal(t, 0.3, g.Alpha())
	g.SetAlpha(0.9)
	assert.Equal(t, 0.9, s.a)

	f := &ui.Fader{Config: ui.FadeConfig{TextIn: 255, FadeIn: 1}, Text: ui.Group{nil}}
	f.Start()
	f.Step(2)
	assert.False(t, f.Busy())
}

func TestFadeConfigFromSpec(t *testing.T) {
	spec, err := prefabs.LoadFadeSpec()
	require.NoError(t, err)
	cfg := ui.FadeConfigFromSpec(spec)
	assert.Equal(t, spec.TextFadeInAlpha, cfg.TextIn)
	assert.Equal(t, spec.FadeOut, cfg.FadeOut)
}
