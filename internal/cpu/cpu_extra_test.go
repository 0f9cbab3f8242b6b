package cpu

import "testing"

func TestCPU_EI_TakesEffectAfterFollowingInstruction(t *testing.T) {
	// EI; NOP; NOP
	c := newCPUWithROM([]byte{0xFB, 0x00, 0x00})
	c.Step() // EI
	if c.IME {
		t.Fatalf("IME must not be set immediately after EI")
	}
	c.Step() // instruction immediately following EI
	if !c.IME {
		t.Fatalf("IME must be set once the instruction after EI completes")
	}
}

func TestCPU_DI_TakesEffectAfterFollowingInstruction(t *testing.T) {
	c := newCPUWithROM([]byte{0xF3, 0x00, 0x00})
	c.IME = true
	c.Step() // DI
	if !c.IME {
		t.Fatalf("IME must not clear immediately after DI")
	}
	c.Step()
	if c.IME {
		t.Fatalf("IME must clear once the instruction after DI completes")
	}
}

func TestCPU_IllegalOpcodeHalts(t *testing.T) {
	c := newCPUWithROM([]byte{0xD3}) // illegal
	cycles := c.Step()
	if cycles == 0 {
		t.Fatalf("illegal opcode should still report a nonzero cycle count")
	}
	if !c.Halted() {
		t.Fatalf("illegal opcode should halt the CPU")
	}
}

func TestCPU_STOP_ConsumesTrailingZeroAndHalts(t *testing.T) {
	c := newCPUWithROM([]byte{0x10, 0x00, 0x00})
	c.Step()
	if c.PC != 2 {
		t.Fatalf("STOP should consume its trailing 0x00, PC got %d want 2", c.PC)
	}
	if !c.Halted() {
		t.Fatalf("STOP should halt")
	}
}

func TestCPU_LD_r_HL_FullCoverage(t *testing.T) {
	// LD B,(HL) was previously missing from the opcode table.
	c := newCPUWithROM([]byte{0x46})
	c.setHL(0xC000)
	c.bus.Write(0xC000, 0x99)
	c.Step()
	if c.B != 0x99 {
		t.Fatalf("LD B,(HL) got %02X want 99", c.B)
	}
}

func TestCPU_DAA_AfterBCDAddition(t *testing.T) {
	c := newCPUWithROM([]byte{0x27}) // DAA
	c.A = 0x09
	c.B = 0x01
	// simulate having just added 1 to produce 0x0A without a half-carry
	c.A = 0x0A
	c.F = 0 // N=0 (addition), H=0, C=0
	c.Step()
	if c.A != 0x10 {
		t.Fatalf("DAA got %02X want 10", c.A)
	}
}

func TestCPU_CCF_TogglesCarryPreservesZero(t *testing.T) {
	c := newCPUWithROM([]byte{0x3F})
	c.F = flagZ | flagC
	c.Step()
	if c.F&flagC != 0 {
		t.Fatalf("CCF should clear carry when it was set")
	}
	if c.F&flagZ == 0 {
		t.Fatalf("CCF must preserve Z")
	}
	if c.F&(flagN|flagH) != 0 {
		t.Fatalf("CCF must clear N and H")
	}
}

func TestCPU_PushPopRoundTrip(t *testing.T) {
	c := newCPUWithROM(nil)
	c.SP = 0xFFFE
	c.Push16(0xBEEF)
	if got := c.Pop16(); got != 0xBEEF {
		t.Fatalf("Push16/Pop16 round trip got %#04x want BEEF", got)
	}
}
