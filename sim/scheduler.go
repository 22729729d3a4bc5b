package sim

// System is one stage of a tick.
type System interface {
	Update(w *World)
}

// SystemFunc adapts a function to a System.
type SystemFunc func(w *World)

func (f SystemFunc) Update(w *World) { f(w) }

// Scheduler runs systems in the order they were added.
type Scheduler struct {
	systems []System
}

func NewScheduler(systems ...System) *Scheduler {
	copied := append([]System(nil), systems...)
	return &Scheduler{systems: copied}
}

func (s *Scheduler) Add(system System) {
	if system == nil {
		return
	}
	s.systems = append(s.systems, system)
}

func (s *Scheduler) Update(w *World) {
	for _, system := range s.systems {
		system.Update(w)
	}
}

func (s *Scheduler) Systems() []System {
	systems := make([]System, 0, len(s.systems))
	return append(systems, s.systems...)
}
