// Package bus implements the DMG address space: it decodes every CPU
// address into ROM/RAM banking (delegated to a cartridge), plain internal
// RAM, and the IE/IF interrupt registers, and delegates the timer-backed
// registers (FF04-FF07) to a timer.Controller.
package bus

import (
	"github.com/nmatthias/gbcore/internal/cart"
	"github.com/nmatthias/gbcore/internal/timer"
)

// Bus owns every memory region the CPU can address except the cartridge's
// own ROM/RAM banking state, which lives behind the cart.Cartridge it
// holds a reference to.
type Bus struct {
	cart *cart.Cartridge

	vram [0x2000]byte // 0x8000-0x9FFF
	wram [0x2000]byte // 0xC000-0xDFFF
	oam  [0xA0]byte   // 0xFE00-0xFE9F
	io   [0x80]byte   // 0xFF00-0xFF7F, minus the timer registers below
	hram [0x7F]byte   // 0xFF80-0xFFFE

	ie    byte // 0xFFFF
	ifReg byte // 0xFF0F

	timer *timer.Controller
}

// New constructs a Bus over a raw ROM image, loading it as a cartridge.
// A malformed or undersized ROM still produces a usable Bus whose
// cartridge reads back open-bus 0xFF; New itself never fails since the
// file-level load error reporting belongs to the caller (see cart.Load).
func New(rom []byte) *Bus {
	c, err := cart.Load(rom)
	if err != nil {
		blank := make([]byte, 0x8000)
		for i := range blank {
			blank[i] = 0xFF
		}
		c, _ = cart.Load(blank)
	}
	return NewWithCartridge(c)
}

// NewWithCartridge constructs a Bus around an already-loaded cartridge,
// useful for tests that want precise control over ROM/header contents.
func NewWithCartridge(c *cart.Cartridge) *Bus {
	b := &Bus{cart: c}
	b.timer = timer.NewController(b.RequestInterrupt)
	return b
}

// Cart exposes the underlying cartridge for tests/tools.
func (b *Bus) Cart() *cart.Cartridge { return b.cart }

// Timer exposes the underlying timer controller for tests/tools.
func (b *Bus) Timer() *timer.Controller { return b.timer }

// Interrupt bit positions, matching the IE/IF layout and the CPU vector
// table (VBlank=0x40, LCD=0x48, Timer=0x50, Serial=0x58, Joypad=0x60).
const (
	IntVBlank = 0
	IntLCD    = 1
	IntTimer  = 2
	IntSerial = 3
	IntJoypad = 4
)

// RequestInterrupt sets the given bit in IF. It is the callback handed to
// collaborators (the timer here; a future PPU would use the same shape)
// so they can raise interrupts without importing Bus's own package, which
// would otherwise cycle back through this package's import of theirs.
func (b *Bus) RequestInterrupt(bit uint8) {
	b.ifReg |= 1 << bit
}

// InterruptEnable returns the IE register (0xFFFF).
func (b *Bus) InterruptEnable() byte { return b.ie }

// InterruptFlag returns the IF register (0xFF0F), masked to its 5 live bits.
func (b *Bus) InterruptFlag() byte { return b.ifReg & 0x1F }

// SetInterruptFlag overwrites the IF register's 5 live bits.
func (b *Bus) SetInterruptFlag(v byte) { b.ifReg = v & 0x1F }

// Read dispatches a CPU read to the correct backing region.
func (b *Bus) Read(addr uint16) byte {
	switch {
	case addr < 0x8000: // ROM, via cartridge
		return b.cart.ReadROM(addr)
	case addr < 0xA000: // VRAM
		return b.vram[addr-0x8000]
	case addr < 0xC000: // External RAM, via cartridge
		return b.cart.ReadRAM(addr)
	case addr < 0xE000: // WRAM
		return b.wram[addr-0xC000]
	case addr < 0xFE00: // Echo RAM, mirrors WRAM
		return b.wram[addr-0xE000]
	case addr < 0xFEA0: // OAM
		return b.oam[addr-0xFE00]
	case addr < 0xFF00: // Unusable
		return 0xFF
	case addr == 0xFF04:
		return b.timer.DIV()
	case addr == 0xFF05:
		return b.timer.TIMA()
	case addr == 0xFF06:
		return b.timer.TMA()
	case addr == 0xFF07:
		return b.timer.TAC()
	case addr == 0xFF0F:
		return 0xE0 | b.InterruptFlag()
	case addr < 0xFF80: // IO registers (catch-all)
		return b.io[addr-0xFF00]
	case addr < 0xFFFF: // HRAM
		return b.hram[addr-0xFF80]
	default: // 0xFFFF, IE
		return b.ie
	}
}

// Write dispatches a CPU write to the correct backing region.
func (b *Bus) Write(addr uint16, value byte) {
	switch {
	case addr < 0x8000: // ROM, MBC control registers
		b.cart.WriteControl(addr, value)
	case addr < 0xA000: // VRAM
		b.vram[addr-0x8000] = value
	case addr < 0xC000: // External RAM, via cartridge
		b.cart.WriteRAM(addr, value)
	case addr < 0xE000: // WRAM
		b.wram[addr-0xC000] = value
	case addr < 0xFE00: // Echo RAM, mirrors WRAM
		b.wram[addr-0xE000] = value
	case addr < 0xFEA0: // OAM
		b.oam[addr-0xFE00] = value
	case addr < 0xFF00: // Unusable: writes discarded
	case addr == 0xFF04:
		b.timer.WriteDIV()
	case addr == 0xFF05:
		b.timer.WriteTIMA(value)
	case addr == 0xFF06:
		b.timer.WriteTMA(value)
	case addr == 0xFF07:
		b.timer.WriteTAC(value)
	case addr == 0xFF0F:
		b.SetInterruptFlag(value)
	case addr < 0xFF80: // IO registers (catch-all)
		b.io[addr-0xFF00] = value
	case addr < 0xFFFF: // HRAM
		b.hram[addr-0xFF80] = value
	default: // 0xFFFF, IE
		b.ie = value
	}
}

// Tick advances the timer by the given number of T-cycles. The CPU does
// not call this directly; the scheduler in internal/machine does, after
// each CPU.Step, matching the concurrency model's ordering.
func (b *Bus) Tick(cycles int) {
	b.timer.Step(cycles)
}
