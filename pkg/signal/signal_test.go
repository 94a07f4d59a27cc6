package signal_test

import (
	"testing"

	"mapdisp/pkg/signal"
)

func TestSubscribe(t *testing.T) {
	sig := signal.New[bool]()
	var got []bool
	unsub := sig.Subscribe(func(v bool) {
		got = append(got, v)
	})
	sig.Emit(true)
	sig.Emit(false)
	unsub()
	sig.Emit(true)
	if len(got) != 2 || got[0] != true || got[1] != false {
		t.Errorf("Subscribe() got %v, want [true false]", got)
	}
	if sig.Len() != 0 {
		t.Errorf("Len() = %d after unsubscribe, want 0", sig.Len())
	}
}

func TestEmitOrder(t *testing.T) {
	sig := signal.New[int]()
	var order []string
	sig.Subscribe(func(int) { order = append(order, "first") })
	sig.Subscribe(func(int) { order = append(order, "second") })
	sig.Subscribe(func(int) { order = append(order, "third") })
	sig.Emit(1)
	want := []string{"first", "second", "third"}
	for i, name := range want {
		if order[i] != name {
			t.Fatalf("Emit() dispatch order %v, want %v", order, want)
		}
	}
}

func TestUnsubscribeDuringEmit(t *testing.T) {
	sig := signal.New[int]()
	var calls []string
	var unsubSelf, unsubNext func()
	unsubSelf = sig.Subscribe(func(int) {
		calls = append(calls, "self")
		unsubSelf()
	})
	sig.Subscribe(func(int) {
		calls = append(calls, "middle")
		unsubNext()
	})
	unsubNext = sig.Subscribe(func(int) {
		calls = append(calls, "next")
	})
	sig.Subscribe(func(int) {
		calls = append(calls, "last")
	})

	sig.Emit(1)
	want := []string{"self", "middle", "last"}
	if len(calls) != len(want) {
		t.Fatalf("Emit() calls %v, want %v", calls, want)
	}
	for i := range want {
		if calls[i] != want[i] {
			t.Fatalf("Emit() calls %v, want %v", calls, want)
		}
	}

	// self removed itself, next was removed by middle
	calls = nil
	sig.Emit(2)
	want = []string{"middle", "last"}
	if len(calls) != len(want) {
		t.Fatalf("second Emit() calls %v, want %v", calls, want)
	}
}

func TestSubscribeDuringEmit(t *testing.T) {
	sig := signal.New[int]()
	lateCalls := 0
	sig.Subscribe(func(int) {
		sig.Subscribe(func(int) {
			lateCalls++
		})
	})
	sig.Emit(1)
	if lateCalls != 0 {
		t.Errorf("subscriber added during Emit() saw the in-flight value")
	}
	sig.Emit(2)
	if lateCalls != 1 {
		t.Errorf("subscriber added during Emit() got %d calls on next emit, want 1", lateCalls)
	}
}

func TestResubscribeAppendsLast(t *testing.T) {
	sig := signal.New[int]()
	var order []string
	unsubA := sig.Subscribe(func(int) { order = append(order, "a") })
	sig.Subscribe(func(int) { order = append(order, "b") })
	unsubA()
	sig.Subscribe(func(int) { order = append(order, "a") })
	sig.Emit(1)
	if len(order) != 2 || order[0] != "b" || order[1] != "a" {
		t.Errorf("Emit() after resubscribe got order %v, want [b a]", order)
	}
}
