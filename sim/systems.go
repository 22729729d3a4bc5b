package sim

import "github.com/milk9111/fireteam/input"

func pollInput(w *World) {
	if w.source == nil {
		w.in.Advance(input.Snapshot{})
		return
	}
	w.in.Advance(w.source.Poll())
}

func updateWeapon(w *World) {
	if w.Weapon != nil {
		w.Weapon.Update(&w.in, w.dt)
	}
}

// updateEnemies runs the behaviour of every live enemy once released.
func updateEnemies(w *World) {
	if !w.hot {
		return
	}
	for _, e := range w.Enemies {
		if !e.Dead {
			e.Agent.Update(w.now, w.dt)
		}
	}
}

func updatePlayer(w *World) {
	w.Player.Update(&w.in, w.dt)
}

func stepNav(w *World) {
	if !w.hot {
		return
	}
	for _, e := range w.Enemies {
		if !e.Dead {
			e.Nav.Step(w.dt)
		}
	}
}

func stepHUD(w *World) {
	w.intro.Step(w.dt)
	w.Banner.Step(w.dt)
}

// flushEvents hands the tick's signals to the host and counts them.
func flushEvents(w *World) {
	w.frame = w.events.Drain()
	for _, ev := range w.frame {
		w.tally.add(ev)
	}
}
