package invariant

import "testing"

func TestCheck_PassingConditionNeverPanics(t *testing.T) {
	defer func() {
		if r := recover(); r != nil {
			t.Fatalf("unexpected panic: %v", r)
		}
	}()
	Check(true, "unused %d", 1)
}

func TestCheck_FailingConditionFollowsBuildMode(t *testing.T) {
	panicked := false
	func() {
		defer func() {
			if recover() != nil {
				panicked = true
			}
		}()
		Check(false, "index %d out of range", 7)
	}()
	if panicked != Enabled() {
		t.Fatalf("panicked=%v, want %v", panicked, Enabled())
	}
}
