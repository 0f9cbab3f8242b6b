package interrupts

import (
	"testing"

	"github.com/nmatthias/gbcore/internal/bus"
	"github.com/nmatthias/gbcore/internal/cpu"
)

func newMachine() (*cpu.CPU, *bus.Bus) {
	b := bus.New(make([]byte, 0x8000))
	c := cpu.New(b)
	c.ResetNoBoot()
	return c, b
}

func TestHandle_DispatchesHighestPriorityFirst(t *testing.T) {
	c, b := newMachine()
	c.IME = true
	c.SetPC(0x1000)
	b.Write(0xFFFF, 0xFF)    // all enabled
	b.SetInterruptFlag(0x06) // LCD (bit1) and Timer (bit2) pending

	cycles := Handle(c, b)
	if cycles != dispatchCycles {
		t.Fatalf("expected dispatch cost %d, got %d", dispatchCycles, cycles)
	}
	if c.PC != VectorLCD {
		t.Fatalf("expected LCD vector (higher priority than Timer), got %#04x", c.PC)
	}
	if b.InterruptFlag()&(1<<bus.IntLCD) != 0 {
		t.Fatalf("LCD IF bit should be cleared after dispatch")
	}
	if c.IME {
		t.Fatalf("IME should be cleared after dispatch")
	}
}

func TestHandle_DoesNothingWhenIMEFalse(t *testing.T) {
	c, b := newMachine()
	c.IME = false
	c.SetPC(0x2000)
	b.Write(0xFFFF, 0xFF)
	b.SetInterruptFlag(0x01)

	if cycles := Handle(c, b); cycles != 0 {
		t.Fatalf("expected no dispatch with IME false, got %d cycles", cycles)
	}
	if c.PC != 0x2000 {
		t.Fatalf("PC should not move when nothing is dispatched")
	}
}

func TestHandle_WakesHaltedCPURegardlessOfIME(t *testing.T) {
	c, b := newMachine()
	c.IME = false
	c.SetHalted(true)
	b.Write(0xFFFF, 0xFF)
	b.SetInterruptFlag(0x01)

	Handle(c, b)
	if c.Halted() {
		t.Fatalf("pending interrupt should wake the CPU even with IME false")
	}
}

func TestHandle_NoPendingLeavesHaltedCPUAsleep(t *testing.T) {
	c, b := newMachine()
	c.SetHalted(true)
	b.Write(0xFFFF, 0xFF)
	b.SetInterruptFlag(0x00)

	Handle(c, b)
	if !c.Halted() {
		t.Fatalf("CPU should remain halted with nothing pending")
	}
}

func TestHandle_PushesPCForResumeAfterRET(t *testing.T) {
	c, b := newMachine()
	c.IME = true
	c.SetPC(0x0150)
	c.SP = 0xFFFE
	b.Write(0xFFFF, 0x01)
	b.SetInterruptFlag(0x01)

	Handle(c, b)
	if c.PC != VectorVBlank {
		t.Fatalf("expected VBlank vector, got %#04x", c.PC)
	}
	if got := c.Pop16(); got != 0x0150 {
		t.Fatalf("expected pushed PC 0x0150, got %#04x", got)
	}
}
