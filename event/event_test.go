package event

import "testing"

func TestQueueDrainOrder(t *testing.T) {
	var q Queue
	Emit(&q, MagDrop, nil)
	Emit(&q, MagInsert, 30)
	if q.Len() != 2 {
		t.Fatalf("expected 2 queued events, got %d", q.Len())
	}

	got := q.Drain()
	if len(got) != 2 || got[0].Type != MagDrop || got[1].Type != MagInsert {
		t.Fatalf("unexpected drain order: %+v", got)
	}
	if got[1].Data.(int) != 30 {
		t.Fatalf("payload lost: %+v", got[1])
	}
	if q.Drain() != nil {
		t.Fatalf("expected empty queue after drain")
	}
}

func TestNilQueueIsSafe(t *testing.T) {
	var q *Queue
	q.Push(Event{Type: Shot})
	if q.Drain() != nil || q.Len() != 0 {
		t.Fatalf("nil queue should stay empty")
	}
	Emit(nil, Shot, nil)
}
