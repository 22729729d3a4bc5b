// Package anim defines the animation signal sink consumed by gameplay code.
package anim

//go:generate mockgen -destination=mock_anim/mock_anim.go -package=mock_anim github.com/milk9111/fireteam/anim Sink

// Sink receives named animation parameters.
type Sink interface {
	SetBool(name string, value bool)
	SetFloat(name string, value float64)
	SetTrigger(name string)
}

// SetBool forwards to s unless s is nil or name is empty.
func SetBool(s Sink, name string, value bool) {
	if s == nil || name == "" {
		return
	}
	s.SetBool(name, value)
}

func SetFloat(s Sink, name string, value float64) {
	if s == nil || name == "" {
		return
	}
	s.SetFloat(name, value)
}

func SetTrigger(s Sink, name string) {
	if s == nil || name == "" {
		return
	}
	s.SetTrigger(name)
}

// Nop discards everything.
type Nop struct{}

func (Nop) SetBool(string, bool)     {}
func (Nop) SetFloat(string, float64) {}
func (Nop) SetTrigger(string)        {}

// Recorder keeps the latest parameter values and counts triggers.
type Recorder struct {
	Bools    map[string]bool
	Floats   map[string]float64
	Triggers map[string]int
}

func NewRecorder() *Recorder {
	return &Recorder{
		Bools:    make(map[string]bool),
		Floats:   make(map[string]float64),
		Triggers: make(map[string]int),
	}
}

func (r *Recorder) SetBool(name string, value bool) {
	r.Bools[name] = value
}

func (r *Recorder) SetFloat(name string, value float64) {
	r.Floats[name] = value
}

func (r *Recorder) SetTrigger(name string) {
	r.Triggers[name]++
}
