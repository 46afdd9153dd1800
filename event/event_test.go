package event

import (
	"testing"
)

func TestEventQueueFIFO(t *testing.T) {
	q := NewEventQueue(4)
	q.Push(GameEvent{Type: EventRumble})
	q.Push(GameEvent{Type: EventWeaponShoot})

	got := q.Consume()
	if len(got) != 2 {
		t.Fatalf("Expected 2 events, got %d", len(got))
	}
	if got[0].Type != EventRumble || got[1].Type != EventWeaponShoot {
		t.Errorf("Unexpected order: %v, %v", got[0].Type, got[1].Type)
	}
	if q.Consume() != nil {
		t.Error("Expected empty queue after Consume")
	}
}

func TestEventQueueOverflowDropsOldest(t *testing.T) {
	q := NewEventQueue(3)
	for i := 0; i < 5; i++ {
		q.Push(GameEvent{Type: EventWeaponShoot, Payload: &WeaponShootPayload{ShooterID: uint32(i)}})
	}

	if q.Dropped() != 2 {
		t.Errorf("Expected 2 dropped, got %d", q.Dropped())
	}
	got := q.Consume()
	if len(got) != 3 {
		t.Fatalf("Expected 3 events, got %d", len(got))
	}
	for i, ev := range got {
		want := uint32(i + 2)
		if id := ev.Payload.(*WeaponShootPayload).ShooterID; id != want {
			t.Errorf("event %d shooter = %d, want %d", i, id, want)
		}
	}
}

type recorder struct {
	types []EventType
	seen  []GameEvent
}

func (r *recorder) HandleEvent(ctx *int, ev GameEvent) {
	*ctx++
	r.seen = append(r.seen, ev)
}

func (r *recorder) EventTypes() []EventType { return r.types }

func TestRouterDispatch(t *testing.T) {
	q := NewEventQueue(0)
	router := NewRouter[*int](q)

	rumble := &recorder{types: []EventType{EventRumble}}
	both := &recorder{types: []EventType{EventRumble, EventEditorReset}}
	router.Register(rumble)
	router.Register(both)

	if router.HandlerCount(EventRumble) != 2 {
		t.Errorf("Expected 2 rumble handlers, got %d", router.HandlerCount(EventRumble))
	}

	q.Push(GameEvent{Type: EventRumble})
	q.Push(GameEvent{Type: EventEditorReset})
	q.Push(GameEvent{Type: EventMasterToggle})

	calls := 0
	if n := router.DispatchAll(&calls); n != 3 {
		t.Errorf("Expected 3 consumed, got %d", n)
	}
	if calls != 3 {
		t.Errorf("Expected 3 handler calls, got %d", calls)
	}
	if len(rumble.seen) != 1 || len(both.seen) != 2 {
		t.Errorf("rumble saw %d, both saw %d", len(rumble.seen), len(both.seen))
	}
}

func TestEventTypeString(t *testing.T) {
	if EventWeaponShoot.String() != "weapon_shoot" {
		t.Errorf("got %q", EventWeaponShoot.String())
	}
	if EventType(99).String() != "unknown" {
		t.Errorf("got %q", EventType(99).String())
	}
}
