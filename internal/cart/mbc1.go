package cart

// MBC1 implements the original banking scheme: 5-bit ROM bank select plus
// a 2-bit secondary register. The secondary register always supplies bits
// 5-6 of the 0x4000-0x7FFF bank number; in RAM-banking mode it also selects
// one of up to 4 RAM banks and remaps the 0x0000-0x3FFF window.
type MBC1 struct {
	rom []byte
	ram []byte

	bank1      byte // low 5 bits of ROM bank number, 0 remapped to 1
	bank2      byte // secondary 2-bit register
	ramEnabled bool
	mode       byte // 0: ROM banking mode, 1: RAM banking mode
}

func NewMBC1(rom []byte, ramSize int) *MBC1 {
	m := &MBC1{rom: rom, bank1: 1}
	if ramSize > 0 {
		m.ram = make([]byte, ramSize)
	}
	return m
}

func (m *MBC1) ReadROM(addr uint16) byte {
	if addr < 0x4000 {
		bank := 0
		if m.mode == 1 {
			bank = int(m.bank2&0x03) << 5
		}
		off := bank*0x4000 + int(addr)
		if off < len(m.rom) {
			return m.rom[off]
		}
		return 0xFF
	}
	off := int(m.effectiveROMBank())*0x4000 + int(addr-0x4000)
	if off < len(m.rom) {
		return m.rom[off]
	}
	return 0xFF
}

func (m *MBC1) WriteControl(addr uint16, value byte) {
	switch {
	case addr < 0x2000:
		m.ramEnabled = (value & 0x0F) == 0x0A
	case addr < 0x4000:
		bank := value & 0x1F
		if bank == 0 {
			bank = 1
		}
		m.bank1 = bank
	case addr < 0x6000:
		m.bank2 = value & 0x03
	case addr < 0x8000:
		m.mode = value & 0x01
	}
}

func (m *MBC1) ReadRAM(addr uint16) byte {
	if !m.ramEnabled || len(m.ram) == 0 {
		return 0xFF
	}
	off := m.ramBank()*0x2000 + int(addr-0xA000)
	if off >= 0 && off < len(m.ram) {
		return m.ram[off]
	}
	return 0xFF
}

func (m *MBC1) WriteRAM(addr uint16, value byte) {
	if !m.ramEnabled || len(m.ram) == 0 {
		return
	}
	off := m.ramBank()*0x2000 + int(addr-0xA000)
	if off >= 0 && off < len(m.ram) {
		m.ram[off] = value
	}
}

// effectiveROMBank combines bank1 with bank2's high bits. This applies to
// the 0x4000-0x7FFF window unconditionally: the mode bit only changes what
// bank2 means for the 0x0000-0x3FFF window and for RAM bank selection, not
// for this window.
func (m *MBC1) effectiveROMBank() byte {
	return m.bank1 | (m.bank2&0x03)<<5
}

func (m *MBC1) ramBank() int {
	if m.mode == 1 {
		return int(m.bank2 & 0x03)
	}
	return 0
}

func (m *MBC1) SaveRAM() []byte {
	if len(m.ram) == 0 {
		return nil
	}
	out := make([]byte, len(m.ram))
	copy(out, m.ram)
	return out
}

func (m *MBC1) LoadRAM(data []byte) {
	copy(m.ram, data)
}
