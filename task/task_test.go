package task

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWaitFinishesAfterDuration(t *testing.T) {
	w := NewWait(0.5)
	assert.False(t, w.Step(0.2))
	assert.InDelta(t, 0.3, w.Remaining(), 1e-9)
	assert.False(t, w.Step(0.2))
	assert.True(t, w.Step(0.2))
	assert.Zero(t, w.Remaining())
}

func TestSequenceCollapsesInstantPhases(t *testing.T) {
	var order []string
	seq := NewSequence(
		Do(func() { order = append(order, "a") }),
		Do(func() { order = append(order, "b") }),
		NewWait(1),
		Do(func() { order = append(order, "c") }),
	)

	require.False(t, seq.Step(0.5))
	assert.Equal(t, []string{"a", "b"}, order, "instant phases run on the first step")
	require.False(t, seq.Step(0.5), "the wait starts timing on the next step")
	require.True(t, seq.Step(0.5))
	assert.Equal(t, []string{"a", "b", "c"}, order)
}

func TestSequenceDropsOvershootAtPhaseEnd(t *testing.T) {
	seq := NewSequence(NewWait(0.3), NewWait(0.3))

	require.False(t, seq.Step(0.5), "0.2 left over from the first wait is not carried")
	require.False(t, seq.Step(0.2))
	assert.True(t, seq.Step(0.1))
}

func TestDeferBuildsOnFirstStep(t *testing.T) {
	value := 1
	captured := 0
	d := Defer(func() Task {
		captured = value
		return Do(nil)
	})
	value = 7
	require.True(t, d.Step(0))
	assert.Equal(t, 7, captured)
}

func TestSlotCancelAndRestart(t *testing.T) {
	var slot Slot
	firstSteps, secondSteps := 0, 0

	slot.Start(Func(func(float64) bool { firstSteps++; return false }))
	slot.Step(0.1)
	require.True(t, slot.Busy())

	slot.Start(Func(func(float64) bool { secondSteps++; return secondSteps == 2 }))
	slot.Step(0.1)
	slot.Step(0.1)

	assert.Equal(t, 1, firstSteps, "cancelled task must not run again")
	assert.Equal(t, 2, secondSteps)
	assert.False(t, slot.Busy())

	slot.Start(NewWait(10))
	slot.Cancel()
	assert.False(t, slot.Busy())
	slot.Step(1)
}

func TestSlotKeepsTaskStartedFromInsideStep(t *testing.T) {
	var slot Slot
	restarted := false
	slot.Start(Func(func(float64) bool {
		slot.Start(NewWait(1))
		restarted = true
		return true
	}))
	slot.Step(0.1)
	assert.True(t, restarted)
	assert.True(t, slot.Busy())
}
