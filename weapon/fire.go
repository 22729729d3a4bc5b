package weapon

import (
	"github.com/milk9111/fireteam/event"
	"github.com/milk9111/fireteam/input"
)

func (w *Weapon) Mode() FireMode { return w.mode }

func (w *Weapon) Allowed() ModeSet { return w.stats.Allowed() }

// SetFireMode forces the mode. A disallowed mode is corrected on the next
// Update.
func (w *Weapon) SetFireMode(m FireMode) { w.mode = m }

// SetAllowed changes the allowed modes and corrects the current mode.
func (w *Weapon) SetAllowed(set ModeSet) {
	w.stats.SetAllowed(set)
	w.EnforceFireMode()
}

// EnforceFireMode replaces a disallowed mode with the first allowed one.
func (w *Weapon) EnforceFireMode() {
	w.mode = Validate(w.mode, w.stats.Allowed())
}

// CycleFireMode selects the next allowed mode.
func (w *Weapon) CycleFireMode() FireMode {
	w.mode = NextFireMode(w.mode, w.stats.Allowed())
	w.modeChanged()
	return w.mode
}

func (w *Weapon) modeChanged() {
	from := w.lastMode
	w.animateSelector()
	w.lastMode = w.mode
	w.log.Debug().Str("weapon", w.stats.Name).Stringer("from", from).Stringer("to", w.mode).Msg("fire mode")
	event.Emit(w.events, event.FireModeChanged, ModeChange{From: from, To: w.mode})
}

// interval is the time between automatic shots; zero means no cadence.
func (w *Weapon) interval() float64 {
	if w.stats.RoundsPerMinute <= 0 {
		return 0
	}
	return 60 / w.stats.RoundsPerMinute
}

// trigger fires Semi on the press edge and Full at the weapon's cadence
// while held.
func (w *Weapon) trigger(in *input.State, dt float64) {
	held := w.bindings.Pressed(in, ActionShoot)
	switch {
	case !held:
		w.dryFired = false
	case w.mode == Semi:
		if w.bindings.PressedDown(in, ActionShoot) {
			w.fire()
		}
	case w.mode == Full:
		step := w.interval()
		if step <= 0 {
			if w.bindings.PressedDown(in, ActionShoot) {
				w.fire()
			}
			break
		}
		for w.cooldown <= 0 {
			if !w.fire() {
				w.cooldown = 0
				break
			}
			w.cooldown += step
		}
	}

	// Only a held automatic trigger carries a debt into the next tick.
	w.cooldown -= dt
	if w.cooldown < 0 && !(held && w.mode == Full) {
		w.cooldown = 0
	}
}

// fire spends one round. An empty magazine clicks once per press.
func (w *Weapon) fire() bool {
	if w.mode == Safe || w.reloading {
		return false
	}
	if w.current <= 0 {
		if !w.dryFired {
			w.dryFired = true
			w.log.Debug().Str("weapon", w.stats.Name).Msg("dry fire")
			event.Emit(w.events, event.DryFire, w.stats.Name)
		}
		return false
	}
	w.current--
	w.cycleBolt()

	shot := Shot{
		Weapon:    w.stats.Name,
		Mode:      w.mode,
		Damage:    w.stats.Damage,
		Spread:    w.stats.Spread,
		Recoil:    w.stats.Recoil,
		Aiming:    w.aiming,
		Hand:      w.hand,
		Remaining: w.current,
		Time:      w.now,
	}
	if w.hook != nil {
		shot = w.hook(shot)
	}
	event.Emit(w.events, event.Shot, shot)
	return true
}
