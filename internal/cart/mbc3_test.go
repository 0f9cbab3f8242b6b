package cart

import "testing"

func TestMBC3_ROMBanking(t *testing.T) {
	rom := make([]byte, 256*1024)
	for bank := 0; bank < 16; bank++ {
		rom[bank*0x4000] = byte(bank)
	}
	m := NewMBC3(rom, 0)

	if got := m.ReadROM(0x4000); got != 0x01 {
		t.Fatalf("default bank got %02X want 01", got)
	}
	m.WriteControl(0x2000, 0x05)
	if got := m.ReadROM(0x4000); got != 0x05 {
		t.Fatalf("bank5 got %02X want 05", got)
	}
	m.WriteControl(0x2000, 0x00)
	if got := m.ReadROM(0x4000); got != 0x01 {
		t.Fatalf("bank0->1 remap failed: got %02X", got)
	}
}

func TestMBC3_RAMBanking(t *testing.T) {
	rom := make([]byte, 0x8000)
	m := NewMBC3(rom, 4*0x2000)

	m.WriteControl(0x0000, 0x0A) // enable
	m.WriteControl(0x4000, 0x02) // bank 2
	m.WriteRAM(0xA000, 0x42)
	if got := m.ReadRAM(0xA000); got != 0x42 {
		t.Fatalf("RAM bank2 RW failed: got %02X", got)
	}

	m.WriteControl(0x4000, 0x00)
	if got := m.ReadRAM(0xA000); got == 0x42 {
		t.Fatalf("bank0 should not alias bank2")
	}
}

func TestMBC3_RTCRegisterSelectReadsOpenBus(t *testing.T) {
	rom := make([]byte, 0x8000)
	m := NewMBC3(rom, 0x2000)
	m.WriteControl(0x0000, 0x0A) // enable RAM
	m.WriteControl(0x4000, 0x08) // select RTC seconds register

	if got := m.ReadRAM(0xA000); got != 0xFF {
		t.Fatalf("RTC register read got %02X want FF (not implemented)", got)
	}
	m.WriteRAM(0xA000, 0x99) // must be discarded, not written to RAM bank 0

	m.WriteControl(0x4000, 0x00) // back to RAM bank 0
	if got := m.ReadRAM(0xA000); got == 0x99 {
		t.Fatalf("RTC write leaked into RAM bank 0")
	}
}
