package cart

// MBC3 implements a 7-bit ROM bank select and a RAM-bank/RTC-register
// select in 0x4000-0x5FFF. Values 0x00-0x03 select one of up to 4 RAM
// banks; values 0x08-0x0C select an RTC register. The RTC is not
// implemented, so while one of those registers is selected, RAM reads
// return 0xFF and RAM writes are discarded rather than falling through to
// RAM bank 0.
type MBC3 struct {
	rom []byte
	ram []byte

	ramEnabled  bool
	romBank     byte // 7 bits, 0 remapped to 1
	ramBank     byte // 0-3, valid only when rtcSelected is false
	rtcSelected bool
}

func NewMBC3(rom []byte, ramSize int) *MBC3 {
	m := &MBC3{rom: rom, romBank: 1}
	if ramSize > 0 {
		m.ram = make([]byte, ramSize)
	}
	return m
}

func (m *MBC3) ReadROM(addr uint16) byte {
	if addr < 0x4000 {
		if int(addr) < len(m.rom) {
			return m.rom[addr]
		}
		return 0xFF
	}
	off := int(m.romBank&0x7F)*0x4000 + int(addr-0x4000)
	if off >= 0 && off < len(m.rom) {
		return m.rom[off]
	}
	return 0xFF
}

func (m *MBC3) WriteControl(addr uint16, value byte) {
	switch {
	case addr < 0x2000:
		m.ramEnabled = (value & 0x0F) == 0x0A
	case addr < 0x4000:
		v := value & 0x7F
		if v == 0 {
			v = 1
		}
		m.romBank = v
	case addr < 0x6000:
		if value <= 0x03 {
			m.ramBank = value
			m.rtcSelected = false
		} else if value >= 0x08 && value <= 0x0C {
			m.rtcSelected = true
		}
		// other values leave the current selection unchanged
	case addr < 0x8000:
		// Latch clock: RTC not implemented, no-op.
	}
}

func (m *MBC3) ReadRAM(addr uint16) byte {
	if m.rtcSelected {
		return 0xFF
	}
	if !m.ramEnabled || len(m.ram) == 0 {
		return 0xFF
	}
	off := int(m.ramBank&0x03)*0x2000 + int(addr-0xA000)
	if off >= 0 && off < len(m.ram) {
		return m.ram[off]
	}
	return 0xFF
}

func (m *MBC3) WriteRAM(addr uint16, value byte) {
	if m.rtcSelected {
		return
	}
	if !m.ramEnabled || len(m.ram) == 0 {
		return
	}
	off := int(m.ramBank&0x03)*0x2000 + int(addr-0xA000)
	if off >= 0 && off < len(m.ram) {
		m.ram[off] = value
	}
}

func (m *MBC3) SaveRAM() []byte {
	if len(m.ram) == 0 {
		return nil
	}
	out := make([]byte, len(m.ram))
	copy(out, m.ram)
	return out
}

func (m *MBC3) LoadRAM(data []byte) {
	copy(m.ram, data)
}
