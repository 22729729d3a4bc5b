package sim

import (
	"fmt"

	"github.com/milk9111/fireteam/logging"
	"github.com/milk9111/fireteam/prefabs"
	"github.com/milk9111/fireteam/script"
	"github.com/milk9111/fireteam/weapon"
)

func (w *World) registerReloads() {
	w.reloader.On("controls", w.reloadControls)
	w.reloader.On("weapon", w.reloadWeapon)
	w.watchScript()
}

// watchScript points the script reload handler at the weapon's current
// script.
func (w *World) watchScript() {
	if w.scriptOff != nil {
		w.scriptOff()
		w.scriptOff = nil
	}
	if w.weaponSpec.Script != "" {
		w.scriptOff = w.reloader.On(prefabs.Kind(w.weaponSpec.Script), w.reloadScript)
	}
}

// Reload applies a changed asset file by name. Unknown files are ignored.
func (w *World) Reload(name string) error {
	return w.reloader.Handle(name)
}

// PollReload applies whatever the watcher has queued since the last call.
func (w *World) PollReload(watcher *prefabs.Watcher) int {
	return w.reloader.Poll(watcher)
}

// reloadControls rebuilds every binding set from the control asset.
func (w *World) reloadControls() error {
	controls, err := load[prefabs.ControlSpec](w, "controls.yaml")
	if err != nil {
		return err
	}
	w.controls = controls
	w.Player.LoadBindings(controls)
	w.Weapon.LoadBindings(controls)
	return nil
}

// reloadWeapon refits from the weapon asset, keeping the rounds carried.
// Nothing changes unless the spec, its script and the new weapon all
// load.
func (w *World) reloadWeapon() error {
	spec, err := load[prefabs.WeaponSpec](w, "weapon.yaml")
	if err != nil {
		return err
	}
	shot := w.shot
	if spec.Script != w.weaponSpec.Script {
		if shot, err = w.loadShot(spec.Script); err != nil {
			return err
		}
	}
	next, err := weapon.New(spec, weapon.Options{
		Controls: w.controls,
		Log:      logging.Component(w.log, "weapon"),
		Events:   &w.events,
		Hook:     w.weaponHook,
	})
	if err != nil {
		return err
	}
	old := w.Weapon.Ammo()
	capacity := next.Ammo().Capacity
	next.SetAmmo(min(old.Current, capacity), old.Reserve+max(old.Current-capacity, 0))

	renamed := spec.Script != w.weaponSpec.Script
	w.weaponSpec = spec
	w.Weapon = next
	w.shot = shot
	if renamed {
		w.watchScript()
	}
	return nil
}

func (w *World) reloadScript() error {
	h, err := w.loadShot(w.weaponSpec.Script)
	if err != nil {
		return err
	}
	w.shot = h
	return nil
}

// loadShot compiles the named weapon script; no name means no script.
func (w *World) loadShot(name string) (*script.ShotHook, error) {
	if name == "" {
		return nil, nil
	}
	h, err := script.LoadFrom(w.assets, name, logging.Component(w.log, "script"))
	if err != nil {
		return nil, fmt.Errorf("weapon script: %w", err)
	}
	return h, nil
}
