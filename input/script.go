package input

import "github.com/milk9111/fireteam/prefabs"

type hold struct {
	from, to int
	key      string
	mouse    int
}

type pulse struct {
	dx, dy, scroll float64
}

// Script is a Source that replays a fixed timeline, one tick per Poll.
// Holds cover ticks in [from, to).
type Script struct {
	tick   int
	holds  []hold
	pulses map[int]pulse
}

func NewScript() *Script {
	return &Script{pulses: make(map[int]pulse)}
}

// ScriptFromSpec converts scenario input steps.
func ScriptFromSpec(steps []prefabs.InputStepSpec) *Script {
	s := NewScript()
	for _, st := range steps {
		to := st.To
		if to <= st.From {
			to = st.From + 1
		}
		if st.Key != "" {
			s.HoldKey(st.Key, st.From, to)
		}
		if st.Mouse != nil {
			s.HoldMouse(*st.Mouse, st.From, to)
		}
		if st.LookX != 0 || st.LookY != 0 {
			s.Look(st.From, st.LookX, st.LookY)
		}
		if st.Scroll != 0 {
			s.ScrollAt(st.From, st.Scroll)
		}
	}
	return s
}

func (s *Script) HoldKey(key string, from, to int) *Script {
	s.holds = append(s.holds, hold{from: from, to: to, key: NormalizeKey(key), mouse: -1})
	return s
}

func (s *Script) HoldMouse(button, from, to int) *Script {
	s.holds = append(s.holds, hold{from: from, to: to, mouse: button})
	return s
}

func (s *Script) Look(tick int, dx, dy float64) *Script {
	p := s.pulses[tick]
	p.dx += dx
	p.dy += dy
	s.pulses[tick] = p
	return s
}

func (s *Script) ScrollAt(tick int, y float64) *Script {
	p := s.pulses[tick]
	p.scroll += y
	s.pulses[tick] = p
	return s
}

// Tick is the index the next Poll will produce.
func (s *Script) Tick() int {
	return s.tick
}

func (s *Script) Poll() Snapshot {
	snap := Snapshot{Keys: make(map[string]bool)}
	for _, h := range s.holds {
		if s.tick < h.from || s.tick >= h.to {
			continue
		}
		if h.key != "" {
			snap.Keys[h.key] = true
		}
		if h.mouse >= 0 && h.mouse < MouseButtons {
			snap.Mouse[h.mouse] = true
		}
	}
	if p, ok := s.pulses[s.tick]; ok {
		snap.MouseDX, snap.MouseDY, snap.ScrollY = p.dx, p.dy, p.scroll
	}
	s.tick++
	return snap
}
