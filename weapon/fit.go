package weapon

import (
	"strings"

	"github.com/go-gl/mathgl/mgl64"
)

// ClearSpawned removes every attachment instance and cancels the motions
// that were driving them. A reload in progress is abandoned.
func (w *Weapon) ClearSpawned() {
	w.reloadTask.Cancel()
	w.pose.Cancel()
	w.reloading = false
	w.instances = nil
	w.magazine = nil
	w.magazineRest = mgl64.Vec3{}
}

// Spawn creates an instance for every equipped, unlocked attachment. The
// magazine becomes the reload target and a scope replaces the sight
// offset.
func (w *Weapon) Spawn() {
	for _, f := range w.loadout.Fitted() {
		inst := &Instance{
			Category: f.Category,
			Name:     f.Name,
			Position: f.Position,
			Rotation: f.Rotation,
		}
		w.instances = append(w.instances, inst)
		switch f.Category {
		case Magazine:
			w.magazine = inst
			w.magazineRest = f.Position
		case Scope:
			w.stats.AimOffset = f.AimOffset
		}
	}
}

// ApplyModifiers applies the modifiers of every fitted attachment in
// category order. Failed modifiers are logged and skipped.
func (w *Weapon) ApplyModifiers() (applied, failed int) {
	for _, f := range w.loadout.Fitted() {
		for _, m := range f.Modifiers {
			if strings.TrimSpace(m.Stat) == "" {
				continue
			}
			if err := w.ApplyModifier(m); err != nil {
				failed++
				w.log.Warn().Err(err).Str("attachment", f.Name).Stringer("category", f.Category).Msg("modifier failed")
				continue
			}
			applied++
			w.log.Debug().Str("attachment", f.Name).Str("stat", m.Stat).Stringer("op", m.Op).Str("value", m.Value).Msg("modifier applied")
		}
	}
	return applied, failed
}

// Equip equips an attachment and refits the weapon. Ammo counts are kept.
func (w *Weapon) Equip(c Category, name string) error {
	slot := w.loadout.Slot(c)
	if slot == nil {
		return ErrUnknownAttachment
	}
	if err := slot.Equip(name); err != nil {
		return err
	}
	w.refit()
	return nil
}

func (w *Weapon) refit() {
	ammo := w.Ammo()
	mode := w.mode
	w.stats = w.base
	w.ClearSpawned()
	w.Spawn()
	w.ApplyModifiers()
	w.mode = mode
	w.EnforceFireMode()
	if w.mode != w.lastMode {
		w.modeChanged()
	}
	w.current = min(ammo.Current, max(w.stats.MagazineSize, 0))
	w.reserve = ammo.Reserve + ammo.Current - w.current
	if !w.aiming {
		w.position = w.restOffset()
	}
}
