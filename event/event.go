// Package event carries gameplay signals from the simulation to the host.
package event

// Event is a generic signal payload.
type Event struct {
	Type string
	Data any
}

// Signal types emitted by the weapon, enemy and player systems.
const (
	FireModeChanged = "fire_mode_changed"
	MagDrop         = "mag_drop"
	MagInsert       = "mag_insert"
	Shot            = "shot"
	DryFire         = "dry_fire"
	AmmoCheck       = "ammo_check"
	AimIn           = "aim_in"
	AimOut          = "aim_out"
	ShoulderSwap    = "shoulder_swap"
	EnemyShot       = "enemy_shot"
	EnemyState      = "enemy_state"
	FadeFinished    = "fade_finished"
	EnemyDown       = "enemy_down"
	PlayerHit       = "player_hit"
)

// Pusher accepts events.
type Pusher interface {
	Push(evt Event)
}

// Queue is a simple FIFO queue.
type Queue struct {
	items []Event
}

// Push adds an event.
func (q *Queue) Push(evt Event) {
	if q == nil {
		return
	}
	q.items = append(q.items, evt)
}

// Drain returns all events and clears the queue.
func (q *Queue) Drain() []Event {
	if q == nil || len(q.items) == 0 {
		return nil
	}
	out := q.items
	q.items = nil
	return out
}

// Len reports how many events are waiting.
func (q *Queue) Len() int {
	if q == nil {
		return 0
	}
	return len(q.items)
}

// Emit pushes to p when it is non-nil.
func Emit(p Pusher, typ string, data any) {
	if p == nil {
		return
	}
	p.Push(Event{Type: typ, Data: data})
}
