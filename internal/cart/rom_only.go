package cart

// None implements the no-MBC cartridge kind: ROM is a flat 32KB image with
// no banking, and external RAM (when the header declares any) is a single
// fixed block with no enable gate.
type None struct {
	rom []byte
	ram []byte
}

// NewNone constructs a None-kind cartridge, allocating external RAM only
// if the header reports a nonzero size.
func NewNone(rom []byte, ramSize int) *None {
	n := &None{rom: rom}
	if ramSize > 0 {
		n.ram = make([]byte, ramSize)
	}
	return n
}

func (n *None) ReadROM(addr uint16) byte {
	if int(addr) < len(n.rom) {
		return n.rom[addr]
	}
	return 0xFF
}

func (n *None) WriteControl(addr uint16, value byte) {
	// No banking registers; writes to ROM space are discarded.
}

func (n *None) ReadRAM(addr uint16) byte {
	off := int(addr - 0xA000)
	if off >= 0 && off < len(n.ram) {
		return n.ram[off]
	}
	return 0xFF
}

func (n *None) WriteRAM(addr uint16, value byte) {
	off := int(addr - 0xA000)
	if off >= 0 && off < len(n.ram) {
		n.ram[off] = value
	}
}

func (n *None) SaveRAM() []byte {
	if len(n.ram) == 0 {
		return nil
	}
	out := make([]byte, len(n.ram))
	copy(out, n.ram)
	return out
}

func (n *None) LoadRAM(data []byte) {
	copy(n.ram, data)
}
