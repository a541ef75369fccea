package dma

import "testing"

func TestLockoutEndsAfter640Cycles(t *testing.T) {
	c := NewController()
	c.Trigger()

	if !c.Running() {
		t.Fatalf("not running immediately after Trigger")
	}

	c.Step(639)
	if !c.Running() {
		t.Fatalf("lockout ended before 640 cycles")
	}

	c.Step(1)
	if c.Running() {
		t.Fatalf("lockout still running after 640 cycles")
	}
}

func TestRetriggerRestartsWindow(t *testing.T) {
	c := NewController()
	c.Trigger()
	c.Step(600)
	c.Trigger()
	c.Step(600)

	if !c.Running() {
		t.Fatalf("retrigger did not restart the 640-cycle window")
	}
}
