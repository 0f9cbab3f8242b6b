package machine

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// haltROM builds a minimal ROM: a handful of NOPs followed by HALT, so Run
// settles once IE is left at zero (no interrupt can ever wake it).
func haltROM() []byte {
	rom := make([]byte, 0x8000)
	prog := []byte{0x00, 0x00, 0x00, 0x76} // NOP NOP NOP HALT
	copy(rom[0x0100:], prog)
	return rom
}

func TestNew_StartsAtCartridgeEntryPoint(t *testing.T) {
	m, err := New(haltROM(), Config{})
	require.NoError(t, err)
	require.Equal(t, uint16(0x0100), m.CPU.PC)
	require.False(t, m.Halted())
}

func TestRun_StopsOnHaltWithNoInterruptSourceEnabled(t *testing.T) {
	m, err := New(haltROM(), Config{})
	require.NoError(t, err)

	n := m.Run(1000)
	require.True(t, m.Halted())
	require.Less(t, n, uint64(1000), "Run should have stopped well before the step cap")
	require.Equal(t, uint16(0x0104), m.CPU.PC, "PC should sit just past the HALT opcode")
}

func TestRun_RespectsMaxSteps(t *testing.T) {
	rom := make([]byte, 0x8000)
	// An infinite loop: JR -2 at 0x0100 jumps back to itself forever.
	copy(rom[0x0100:], []byte{0x18, 0xFE})
	m, err := New(rom, Config{})
	require.NoError(t, err)

	n := m.Run(50)
	require.Equal(t, uint64(50), n)
	require.False(t, m.Halted())
}

func TestStep_AdvancesTimerByCPUCycles(t *testing.T) {
	// The ROM is all zero bytes past the entry point, i.e. an endless run
	// of NOPs (4 cycles each), so 64 steps advance the internal divider by
	// exactly 256 T-cycles: enough to roll DIV (the counter's upper byte)
	// over from 0 to 1.
	m, err := New(make([]byte, 0x8000), Config{})
	require.NoError(t, err)

	for i := 0; i < 64; i++ {
		m.Step()
	}
	require.Equal(t, byte(1), m.Bus.Read(0xFF04), "DIV should have advanced with the CPU steps' cycles")
}

func TestNew_WrapsCartridgeLoadErrors(t *testing.T) {
	_, err := New([]byte{0x01, 0x02}, Config{})
	require.Error(t, err)
	require.ErrorContains(t, err, "load cartridge")
}
