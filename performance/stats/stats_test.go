package stats

import "testing"

func TestCurrentBeforePublishIsZeroValue(t *testing.T) {
	if got := Current(); got != (Snapshot{}) {
		t.Fatalf("Current() before any Publish = %+v, want zero value", got)
	}
}

func TestPublishThenCurrent(t *testing.T) {
	Publish(Snapshot{Frame: 42, FPS: 59.7})

	got := Current()
	if got.Frame != 42 || got.FPS != 59.7 {
		t.Fatalf("Current() = %+v, want Frame=42 FPS=59.7", got)
	}
}
