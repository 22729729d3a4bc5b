package ui_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/milk9111/fireteam/ui"
)

func TestEventSequenceTiming(t *testing.T) {
	var got []string
	mark := func(s string) func() { return func() { got = append(got, s) } }
	seq := &ui.EventSequence{Points: []ui.Point{
		{Event: mark("a"), Delay: 1},
		{Event: mark("b")},
		{Event: mark("c"), Delay: 0.5},
		{Event: mark("d")},
	}}

	seq.Start()
	assert.Equal(t, []string{"a"}, got, "first point fires on start")

	seq.Step(0.5)
	assert.Equal(t, []string{"a"}, got)

	seq.Step(0.5)
	assert.Equal(t, []string{"a", "b", "c"}, got, "zero delay runs on the same tick")

	seq.Step(0.5)
	assert.Equal(t, []string{"a", "b", "c", "d"}, got)
	assert.False(t, seq.Busy())
}

func TestEventSequenceRestartAndStop(t *testing.T) {
	count := map[string]int{}
	seq := &ui.EventSequence{Points: []ui.Point{
		{Event: func() { count["a"]++ }, Delay: 1},
		{Event: func() { count["b"]++ }},
	}}

	seq.Start()
	seq.Step(0.9)
	seq.Start()
	seq.Step(0.9)
	assert.Equal(t, 2, count["a"])
	assert.Zero(t, count["b"], "restart resets the delay")

	seq.Stop()
	seq.Step(5)
	assert.Zero(t, count["b"])
	assert.False(t, seq.Busy())

	empty := &ui.EventSequence{}
	empty.Start()
	assert.False(t, empty.Busy())
}
