// Package interrupts implements DMG interrupt dispatch as a single
// stateless function driven by the scheduler once per tick, after the CPU
// and timer have advanced. It is deliberately not a CPU method: dispatch
// must happen after the timer observes the cycles the CPU's last
// instruction consumed, not from inside the instruction itself.
package interrupts

import (
	"github.com/nmatthias/gbcore/internal/bus"
	"github.com/nmatthias/gbcore/internal/cpu"
)

// Vector addresses for each interrupt source, in priority order.
const (
	VectorVBlank = 0x40
	VectorLCD    = 0x48
	VectorTimer  = 0x50
	VectorSerial = 0x58
	VectorJoypad = 0x60
)

var vectors = [5]uint16{VectorVBlank, VectorLCD, VectorTimer, VectorSerial, VectorJoypad}

// dispatchCycles is the fixed cost of servicing an interrupt: two stack
// pushes and a jump, independent of which source fired.
const dispatchCycles = 20

// Handle checks IE & IF for a pending, enabled interrupt, wakes the CPU
// from HALT if one is pending (regardless of IME), and if IME is set,
// dispatches the highest-priority pending interrupt: it clears the
// matching IF bit, clears IME, pushes PC, and jumps to the source's
// vector. It returns the number of extra cycles the dispatch consumed, or
// 0 if nothing was dispatched.
func Handle(c *cpu.CPU, b *bus.Bus) int {
	pending := b.InterruptEnable() & b.InterruptFlag() & 0x1F
	if pending == 0 {
		return 0
	}

	if c.Halted() {
		c.SetHalted(false)
	}

	if !c.IME {
		return 0
	}

	var bit uint
	for bit = 0; bit < 5; bit++ {
		if pending&(1<<bit) != 0 {
			break
		}
	}

	b.SetInterruptFlag(b.InterruptFlag() &^ (1 << bit))
	c.IME = false
	c.Push16(c.PC)
	c.PC = vectors[bit]
	return dispatchCycles
}
