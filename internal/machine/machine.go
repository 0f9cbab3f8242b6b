// Package machine wires the CPU, Bus, and Timer into the single
// synchronous scheduler tick the core runs on: one CPU instruction, one
// timer advance by the cycles it took, then one interrupt-dispatch check.
// There are no goroutines or locks; Machine is the sole owner of its CPU
// and Bus, matching the single-threaded, single-owner resource model.
package machine

import (
	"fmt"
	"log"

	"github.com/nmatthias/gbcore/internal/bus"
	"github.com/nmatthias/gbcore/internal/cart"
	"github.com/nmatthias/gbcore/internal/cpu"
	"github.com/nmatthias/gbcore/internal/interrupts"
)

// Config carries the ambient run-time settings a caller (the CLI, or a
// test) can tune, independent of the ROM being run.
type Config struct {
	// Trace logs each step's PC and opcode to the configured logger.
	Trace bool
}

// Machine owns one CPU and Bus pair and drives them one tick at a time.
type Machine struct {
	CPU *cpu.CPU
	Bus *bus.Bus

	cfg   Config
	steps uint64
}

// New loads rom as a cartridge and builds a Machine ready to run from the
// post-boot register state (no boot ROM intercept is implemented; see
// DESIGN.md).
func New(rom []byte, cfg Config) (*Machine, error) {
	c, err := cart.Load(rom)
	if err != nil {
		return nil, fmt.Errorf("load cartridge: %w", err)
	}
	b := bus.NewWithCartridge(c)
	cp := cpu.New(b)
	cp.ResetNoBoot()
	return &Machine{CPU: cp, Bus: b, cfg: cfg}, nil
}

// Step runs exactly one scheduler tick: one CPU instruction (or one idle
// tick while halted), the matching timer advance, and one interrupt
// dispatch check. It returns the number of T-cycles the CPU step
// consumed.
func (m *Machine) Step() int {
	if m.cfg.Trace {
		log.Printf("[trace] step=%d PC=%#04x op=%#02x", m.steps, m.CPU.PC, m.Bus.Read(m.CPU.PC))
	}
	cycles := m.CPU.Step()
	m.Bus.Tick(cycles)
	interrupts.Handle(m.CPU, m.Bus)
	m.steps++
	return cycles
}

// Run steps the machine until it halts with interrupts permanently unable
// to wake it (a clean stop or an illegal-opcode halt with no interrupt
// source enabled in IE), or until maxSteps ticks have run if maxSteps is
// nonzero. It returns the number of ticks actually run.
func (m *Machine) Run(maxSteps uint64) uint64 {
	var n uint64
	for maxSteps == 0 || n < maxSteps {
		m.Step()
		n++
		if m.CPU.Halted() && (m.Bus.InterruptEnable()&0x1F) == 0 {
			break
		}
	}
	return n
}

// Halted reports whether the CPU is currently halted.
func (m *Machine) Halted() bool { return m.CPU.Halted() }
