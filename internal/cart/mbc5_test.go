package cart

import "testing"

func TestMBC5_BankZeroIsValid(t *testing.T) {
	rom := make([]byte, 128*1024)
	rom[0x0000] = 0xAB
	m := NewMBC5(rom, 0)

	m.WriteControl(0x2000, 0x00) // bank 0 is legal on MBC5, unlike MBC1/MBC3
	if got := m.ReadROM(0x4000); got != 0xAB {
		t.Fatalf("bank0 read got %02X want AB", got)
	}
}

func TestMBC5_NineBitBankSelect(t *testing.T) {
	rom := make([]byte, 1024*1024*8) // enough for bank 0x101
	rom[0x101*0x4000] = 0x55
	m := NewMBC5(rom, 0)

	m.WriteControl(0x2000, 0x01) // low 8 bits
	m.WriteControl(0x3000, 0x01) // high bit
	if got := m.ReadROM(0x4000); got != 0x55 {
		t.Fatalf("bank 0x101 read got %02X want 55", got)
	}
}

func TestMBC5_RAMBanking16Banks(t *testing.T) {
	rom := make([]byte, 0x8000)
	m := NewMBC5(rom, 16*0x2000)

	m.WriteControl(0x0000, 0x0A)
	m.WriteControl(0x4000, 0x0F)
	m.WriteRAM(0xA000, 0x11)
	if got := m.ReadRAM(0xA000); got != 0x11 {
		t.Fatalf("RAM bank15 RW failed: got %02X", got)
	}
}
