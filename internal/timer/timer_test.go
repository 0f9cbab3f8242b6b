package timer

import "testing"

func TestController_TIMAOverflowRequestsInterruptOnce(t *testing.T) {
	var requested []uint8
	c := NewController(func(bit uint8) { requested = append(requested, bit) })

	c.WriteTAC(0x05) // enabled, 262144 Hz -> bit 3
	c.WriteTMA(0x10)
	c.WriteTIMA(0xFF)

	// Bit 3 falls once every 16 internal-divider ticks; stepping exactly
	// 16 cycles from zero produces exactly one falling edge, so TIMA
	// overflows once and still holds the reloaded TMA value afterwards.
	c.Step(16)

	if len(requested) != 1 || requested[0] != InterruptBit {
		t.Fatalf("expected exactly one timer interrupt request, got %v", requested)
	}
	if c.TIMA() != 0x10 {
		t.Fatalf("TIMA reload got %02X want 10", c.TIMA())
	}
}

func TestController_DisabledTimerNeverIncrements(t *testing.T) {
	c := NewController(func(bit uint8) { t.Fatalf("unexpected interrupt request") })
	c.WriteTAC(0x00) // disabled
	c.WriteTIMA(0x00)
	c.Step(100000)
	if c.TIMA() != 0x00 {
		t.Fatalf("TIMA changed while timer disabled: %02X", c.TIMA())
	}
}

func TestController_DIVWriteCanCauseFallingEdgeIncrement(t *testing.T) {
	var requested int
	c := NewController(func(bit uint8) { requested++ })
	c.WriteTAC(0x04) // enabled, bit 9
	c.WriteTIMA(0x00)

	// Drive the internal divider so bit 9 is set, then writing DIV resets
	// it to 0, producing a 1->0 falling edge and a spurious TIMA bump.
	c.Step(1 << 9)
	before := c.TIMA()
	c.WriteDIV()
	if c.TIMA() != before+1 {
		t.Fatalf("expected DIV reset to bump TIMA once, got %02X from %02X", c.TIMA(), before)
	}
	_ = requested
}

func TestController_DIVReadsUpper8BitsOfInternalDivider(t *testing.T) {
	c := NewController(func(bit uint8) {})
	c.Step(0x1234)
	if c.DIV() != byte(0x1234>>8) {
		t.Fatalf("DIV got %02X want %02X", c.DIV(), byte(0x1234>>8))
	}
}
