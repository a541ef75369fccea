package curated

import "testing"

func TestIsMatchesPattern(t *testing.T) {
	err := Errorf("cpu: unknown opcode %#02x at %#04x", byte(0xfc), uint16(0x0150))
	if !Is(err, "cpu: unknown opcode %#02x at %#04x") {
		t.Fatalf("Is() did not match the originating pattern")
	}
	if Is(err, "cartridgeloader: %v") {
		t.Fatalf("Is() matched an unrelated pattern")
	}
}

func TestErrorDeduplicatesAdjacentParts(t *testing.T) {
	inner := Errorf("cartridgeloader: %v", "cartridge file is empty")
	outer := Errorf("cartridgeloader: %v", inner)

	if got := outer.Error(); got != "cartridgeloader: cartridge file is empty" {
		t.Fatalf("Error() = %q, want deduplicated chain", got)
	}
}
