package core

import "testing"

func TestInputFrameOrder(t *testing.T) {
	f := NewInputFrame()
	if !f.Empty() {
		t.Fatal("new frame should be empty")
	}

	f.Set(ActionLeft)
	f.Set(ActionNone) // ignored
	f.Set(ActionDown)

	if len(f.Actions) != 2 {
		t.Fatalf("expected 2 actions, got %d", len(f.Actions))
	}
	if f.Actions[0] != ActionLeft || f.Actions[1] != ActionDown {
		t.Errorf("actions should keep press order, got %v", f.Actions)
	}
	if !f.Has(ActionDown) || f.Has(ActionPause) {
		t.Error("Has() reports wrong membership")
	}

	clone := f.Clone()
	f.Clear()
	if !f.Empty() {
		t.Error("Clear() should empty the frame")
	}
	if len(clone.Actions) != 2 {
		t.Error("Clone() should not share storage with the original")
	}
}

func TestActionString(t *testing.T) {
	tests := []struct {
		a    Action
		want string
	}{
		{ActionUp, "Up"},
		{ActionRight, "Right"},
		{ActionRestart, "Restart"},
		{Action(99), "Unknown"},
	}
	for _, tc := range tests {
		if got := tc.a.String(); got != tc.want {
			t.Errorf("Action(%d).String() = %q, expected %q", tc.a, got, tc.want)
		}
	}
}

func TestStepResultHas(t *testing.T) {
	r := StepResult{Events: []Event{EventMoved, EventAte}}
	if !r.Has(EventAte) {
		t.Error("expected EventAte")
	}
	if r.Has(EventCollided) {
		t.Error("did not expect EventCollided")
	}
}
