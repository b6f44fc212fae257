package watcher

import "testing"

func TestLatch(t *testing.T) {
	var l Latch

	steps := []struct {
		present bool
		fired   bool
		phase   Phase
	}{
		{false, false, Inactive},
		{true, true, Active},
		{true, false, Active},
		{true, false, Active},
		{false, false, Inactive},
		{true, true, Active},
	}

	for i, s := range steps {
		if got := l.Step(s.present); got != s.fired {
			t.Errorf("step %d: fired = %v, want %v", i, got, s.fired)
		}
		if l.Phase != s.phase {
			t.Errorf("step %d: phase = %v, want %v", i, l.Phase, s.phase)
		}
	}
}

func TestLatch_EnterReset(t *testing.T) {
	var l Latch
	if !l.Enter() {
		t.Fatal("first Enter should fire")
	}
	if l.Enter() {
		t.Fatal("second Enter should not fire")
	}
	if !l.IsActive() {
		t.Fatal("expected active")
	}
	l.Reset()
	if l.IsActive() || l.Phase.String() != "inactive" {
		t.Fatal("expected inactive after Reset")
	}
}
