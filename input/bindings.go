package input

import (
	"strings"

	"github.com/rs/zerolog"

	"github.com/milk9111/fireteam/prefabs"
)

// Bindings is an action table rebuilt wholesale from a control asset. The
// zero value (and nil) has no actions, so every query is false.
type Bindings struct {
	byAction map[string]Binding
	order    []string
}

// RebuildOptions filter which control entries become bindings.
type RebuildOptions struct {
	// Allow, when non-empty, is the only set of actions accepted.
	Allow []string
	// Skip lists actions that are never bound.
	Skip []string
	// KeyFallback uses the default key when no key is bound.
	KeyFallback bool
	Log         zerolog.Logger
}

// Rebuild builds a fresh table from spec. Blank actions and entries that
// are not keybinds are ignored; a later entry for the same action wins.
func Rebuild(spec prefabs.ControlSpec, opts RebuildOptions) *Bindings {
	allow := toSet(opts.Allow)
	skip := toSet(opts.Skip)

	b := &Bindings{byAction: make(map[string]Binding, len(spec.Controls))}
	for _, cv := range spec.Controls {
		action := strings.TrimSpace(cv.Action)
		if action == "" {
			continue
		}
		if skip[action] {
			continue
		}
		if !cv.Keybind() {
			continue
		}
		if len(allow) > 0 && !allow[action] {
			continue
		}

		binding := Binding{Action: action}
		if cv.UseMouseButton {
			binding.Device = DeviceMouse
			binding.MouseButton = cv.BoundMouseButton
		} else {
			binding.Device = DeviceKey
			binding.Key = NormalizeKey(cv.BoundKey)
			if binding.Key == "" && opts.KeyFallback {
				binding.Key = NormalizeKey(cv.DefaultKey)
			}
		}

		if _, exists := b.byAction[action]; !exists {
			b.order = append(b.order, action)
		}
		b.byAction[action] = binding
	}

	logged := opts.Allow
	if len(logged) == 0 {
		logged = b.order
	}
	for _, action := range logged {
		opts.Log.Debug().Str("action", action).Str("binding", b.Describe(action)).Msg("loaded binding")
	}
	return b
}

func toSet(xs []string) map[string]bool {
	if len(xs) == 0 {
		return nil
	}
	m := make(map[string]bool, len(xs))
	for _, x := range xs {
		m[x] = true
	}
	return m
}

// Lookup returns the binding for action.
func (b *Bindings) Lookup(action string) (Binding, bool) {
	if b == nil {
		return Binding{}, false
	}
	binding, ok := b.byAction[strings.TrimSpace(action)]
	return binding, ok
}

// Actions lists bound actions in asset order.
func (b *Bindings) Actions() []string {
	if b == nil {
		return nil
	}
	return append([]string(nil), b.order...)
}

func (b *Bindings) Len() int {
	if b == nil {
		return 0
	}
	return len(b.byAction)
}

// Describe renders the binding of action for logs and HUDs.
func (b *Bindings) Describe(action string) string {
	binding, ok := b.Lookup(action)
	if !ok {
		return "None"
	}
	return binding.String()
}

// Pressed reports level state for action.
func (b *Bindings) Pressed(s *State, action string) bool {
	binding, ok := b.Lookup(action)
	return ok && binding.Held(s)
}

// PressedDown reports the press edge for action.
func (b *Bindings) PressedDown(s *State, action string) bool {
	binding, ok := b.Lookup(action)
	return ok && binding.Down(s)
}
