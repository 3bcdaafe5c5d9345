package core

import "testing"

func TestInputFrameSetHasClear(t *testing.T) {
	var f InputFrame // zero value must be usable

	if f.Has(ActionJump) {
		t.Error("Empty frame should not have Jump")
	}

	f.Set(ActionJump)
	f.Type('a')
	f.Type(' ')

	if !f.Has(ActionJump) {
		t.Error("Frame should have Jump after Set")
	}
	if f.Has(ActionConfirm) {
		t.Error("Frame should not have Confirm")
	}
	if string(f.Chars) != "a " {
		t.Errorf("Chars = %q, expected %q", string(f.Chars), "a ")
	}

	f.Elapsed = 1.5
	f.Clear()

	if f.Has(ActionJump) || len(f.Chars) != 0 {
		t.Error("Clear should drop actions and characters")
	}
	if f.Elapsed != 1.5 {
		t.Error("Clear should keep timing fields")
	}
}

func TestActionString(t *testing.T) {
	tests := map[Action]string{
		ActionNone:    "None",
		ActionJump:    "Jump",
		ActionConfirm: "Confirm",
		ActionDelete:  "Delete",
		ActionQuit:    "Quit",
		Action(99):    "Unknown",
	}
	for a, want := range tests {
		if got := a.String(); got != want {
			t.Errorf("Action(%d).String() = %q, expected %q", int(a), got, want)
		}
	}
}
