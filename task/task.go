// Package task provides resumable, cancellable units of multi-tick work.
//
// A task is advanced once per tick by its owner. Cancelling a task means
// dropping it: nothing else runs on its behalf, so each task must write a
// complete value every step it runs.
package task

// Task advances by dt seconds and reports whether it has finished.
type Task interface {
	Step(dt float64) (done bool)
}

// Func adapts a function to a Task.
type Func func(dt float64) bool

func (f Func) Step(dt float64) bool {
	if f == nil {
		return true
	}
	return f(dt)
}

// Do runs fn once and finishes on the same step.
func Do(fn func()) Task {
	return Func(func(float64) bool {
		if fn != nil {
			fn()
		}
		return true
	})
}

// Wait finishes after Duration seconds have elapsed.
type Wait struct {
	Duration float64
	elapsed  float64
}

func NewWait(seconds float64) *Wait {
	return &Wait{Duration: seconds}
}

func (w *Wait) Step(dt float64) bool {
	w.elapsed += dt
	return w.elapsed >= w.Duration
}

// Remaining reports how many seconds are left.
func (w *Wait) Remaining() float64 {
	r := w.Duration - w.elapsed
	if r < 0 {
		return 0
	}
	return r
}

// Defer builds its task lazily on the first step, so the wrapped task can
// capture state as it is when the previous phase ends.
func Defer(build func() Task) Task {
	var t Task
	return Func(func(dt float64) bool {
		if t == nil {
			if build == nil {
				return true
			}
			t = build()
			if t == nil {
				return true
			}
		}
		return t.Step(dt)
	})
}

// Sequence runs tasks in order. A phase that finishes hands control to the
// next phase on the same step with zero dt, which lets instantaneous
// phases collapse into one tick. Time is quantised to steps: the rest of a
// finishing step is not carried over, so every timed phase ends on a step
// boundary and may run up to one step longer than its duration.
type Sequence struct {
	tasks []Task
	index int
}

func NewSequence(tasks ...Task) *Sequence {
	return &Sequence{tasks: append([]Task(nil), tasks...)}
}

func (s *Sequence) Step(dt float64) bool {
	for s.index < len(s.tasks) {
		t := s.tasks[s.index]
		if t != nil && !t.Step(dt) {
			return false
		}
		s.index++
		dt = 0
	}
	return true
}

// Slot holds at most one running task. Starting a task cancels whatever
// was running; this is how competing writers to the same value are kept
// apart without locks.
type Slot struct {
	current Task
	gen     uint64
}

// Start cancels the running task, if any, and installs t.
func (s *Slot) Start(t Task) {
	s.gen++
	s.current = t
}

// Cancel drops the running task.
func (s *Slot) Cancel() {
	if s.current == nil {
		return
	}
	s.gen++
	s.current = nil
}

// Busy reports whether a task is installed.
func (s *Slot) Busy() bool {
	return s.current != nil
}

// Step advances the running task and clears the slot once it finishes.
// A task that restarts its own slot from inside Step keeps the new task.
func (s *Slot) Step(dt float64) {
	if s.current == nil {
		return
	}
	gen := s.gen
	done := s.current.Step(dt)
	if done && gen == s.gen {
		s.current = nil
	}
}
