package ui

import "github.com/milk9111/fireteam/task"

// Point is one callback in an EventSequence, followed by a pause.
type Point struct {
	Event func()
	Delay float64
}

// EventSequence runs its points in order, pausing after each by its
// delay.
type EventSequence struct {
	Points []Point

	slot task.Slot
}

// Start runs the sequence from the top, cancelling a run in flight. The
// first point fires before Start returns.
func (s *EventSequence) Start() {
	tasks := make([]task.Task, 0, 2*len(s.Points))
	for _, p := range s.Points {
		tasks = append(tasks, task.Do(p.Event))
		if p.Delay > 0 {
			tasks = append(tasks, task.NewWait(p.Delay))
		}
	}
	s.slot.Start(task.NewSequence(tasks...))
	s.slot.Step(0)
}

func (s *EventSequence) Stop() { s.slot.Cancel() }

func (s *EventSequence) Step(dt float64) { s.slot.Step(dt) }

func (s *EventSequence) Busy() bool { return s.slot.Busy() }
