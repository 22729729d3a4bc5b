package weapon

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/milk9111/fireteam/event"
	"github.com/milk9111/fireteam/task"
	"github.com/milk9111/fireteam/tween"
)

func (w *Weapon) restOffset() mgl64.Vec3 {
	if w.hand == LeftHand {
		return w.stats.LeftHandOffset
	}
	return w.stats.RightHandOffset
}

// moveTo replaces the running pose motion. A non-positive duration snaps.
func (w *Weapon) moveTo(target mgl64.Vec3, duration float64) {
	if duration <= 0 {
		w.pose.Cancel()
		w.position = target
		return
	}
	w.pose.Start(&tween.Vec3{
		Get:      func() mgl64.Vec3 { return w.position },
		Set:      func(v mgl64.Vec3) { w.position = v },
		To:       target,
		Duration: duration,
	})
}

// AimIn raises the weapon to its sight, cancelling any aim or swap motion.
func (w *Weapon) AimIn() {
	w.aiming = true
	w.moveTo(w.stats.AimOffset, w.stats.AimInDuration)
	event.Emit(w.events, event.AimIn, w.stats.Name)
}

// AimOut lowers the weapon to the current shoulder.
func (w *Weapon) AimOut() {
	w.aiming = false
	w.moveTo(w.restOffset(), w.stats.AimOutDuration)
	event.Emit(w.events, event.AimOut, w.stats.Name)
}

// TrySwapShoulder moves the weapon to the other shoulder. It does nothing
// while aiming.
func (w *Weapon) TrySwapShoulder() bool {
	if w.aiming {
		return false
	}
	if w.hand == LeftHand {
		w.hand = RightHand
	} else {
		w.hand = LeftHand
	}
	w.moveTo(w.restOffset(), w.stats.HandSwapDuration)
	w.log.Debug().Str("weapon", w.stats.Name).Stringer("hand", w.hand).Msg("shoulder swap")
	event.Emit(w.events, event.ShoulderSwap, w.hand)
	return true
}

func (w *Weapon) animateSelector() {
	w.switchTask.Start(&tween.Angle{
		Get:      func() float64 { return w.selector },
		Set:      func(v float64) { w.selector = v },
		To:       w.stats.Angle(w.mode),
		Duration: selectorDuration,
	})
}

// ApplySwitchImmediate puts the selector at the current mode's angle.
func (w *Weapon) ApplySwitchImmediate() {
	w.switchTask.Cancel()
	w.selector = w.stats.Angle(w.mode)
}

// StartReload begins a reload. It needs a magazine, a non-empty reserve
// and no reload already running; otherwise it returns false and changes
// nothing.
func (w *Weapon) StartReload() bool {
	if w.magazine == nil || w.reloading || w.reserve <= 0 {
		return false
	}
	w.reloading = true
	event.Emit(w.events, event.MagDrop, w.Ammo())
	w.reserve += w.current
	w.current = 0

	mag := w.magazine
	rest := w.magazineRest
	mag.Position = rest

	duration := w.stats.ReloadDuration
	if duration <= 0 {
		w.finishReload()
		return true
	}
	drop := mgl64.Vec3{rest[0], magazineDropY, rest[2]}
	get := func() mgl64.Vec3 { return mag.Position }
	set := func(v mgl64.Vec3) { mag.Position = v }
	w.reloadTask.Start(task.NewSequence(
		&tween.Vec3{Get: get, Set: set, To: drop, Duration: duration / 2},
		&tween.Vec3{Get: get, Set: set, To: rest, Duration: duration / 2},
		task.Do(w.finishReload),
	))
	return true
}

func (w *Weapon) finishReload() {
	loaded := max(min(w.stats.MagazineSize, w.reserve), 0)
	w.reserve -= loaded
	w.current = loaded
	w.reloading = false
	w.log.Debug().Str("weapon", w.stats.Name).Int("current", w.current).Int("reserve", w.reserve).Msg("reloaded")
	event.Emit(w.events, event.MagInsert, w.Ammo())
}
