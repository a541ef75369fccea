package logger

import (
	"strings"
	"testing"
)

func TestTailReturnsMostRecentEntries(t *testing.T) {
	Clear()
	Log("test", "one")
	Log("test", "two")
	Log("test", "three")

	var buf strings.Builder
	Tail(&buf, 2)

	out := buf.String()
	if !strings.Contains(out, "two") || !strings.Contains(out, "three") {
		t.Fatalf("Tail(2) missing recent entries: %q", out)
	}
	if strings.Contains(out, "one") {
		t.Fatalf("Tail(2) included an older entry: %q", out)
	}
}

func TestLogfFormats(t *testing.T) {
	Clear()
	Logf("test", "opcode %#02x", byte(0xfc))

	var buf strings.Builder
	Tail(&buf, 1)

	if !strings.Contains(buf.String(), "0xfc") {
		t.Fatalf("Logf did not format its arguments: %q", buf.String())
	}
}
