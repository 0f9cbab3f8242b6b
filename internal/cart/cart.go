// Package cart implements DMG cartridge decoding: header parsing and the
// memory bank controllers (None, MBC1, MBC3, MBC5) that own the ROM/RAM
// banking state machines described in the cartridge-type table below.
package cart

import "fmt"

// MBC is the contract the Bus uses to route ROM and external-RAM accesses
// through a cartridge's banking state. Addresses are CPU addresses; the
// Bus is responsible for routing only 0x0000-0x7FFF and 0xA000-0xBFFF here.
type MBC interface {
	// ReadROM reads from 0x0000-0x7FFF.
	ReadROM(addr uint16) byte
	// WriteControl handles MBC register writes in 0x0000-0x7FFF.
	WriteControl(addr uint16, value byte)
	// ReadRAM reads from external RAM, 0xA000-0xBFFF.
	ReadRAM(addr uint16) byte
	// WriteRAM writes to external RAM, 0xA000-0xBFFF.
	WriteRAM(addr uint16, value byte)
}

// BatteryBacked is implemented by cartridges with persistable external RAM.
// No file-system wiring is built for it; it exists so a future host layer
// can snapshot/restore battery RAM without reaching into MBC internals.
type BatteryBacked interface {
	SaveRAM() []byte
	LoadRAM(data []byte)
}

// Kind identifies which banking scheme a cartridge header selects.
type Kind int

const (
	KindNone Kind = iota
	KindMBC1
	KindMBC3
	KindMBC5
)

func (k Kind) String() string {
	switch k {
	case KindNone:
		return "None"
	case KindMBC1:
		return "MBC1"
	case KindMBC3:
		return "MBC3"
	case KindMBC5:
		return "MBC5"
	default:
		return "Unknown"
	}
}

// kindFromCartType maps header byte 0x0147 to a banking Kind. MBC2 (0x05,
// 0x06) and MBC6/MBC7/etc. are not implemented; they fall back to None,
// which is safe for ROM access but gives no persistent external RAM.
func kindFromCartType(cartType byte) Kind {
	switch cartType {
	case 0x00, 0x08, 0x09:
		return KindNone
	case 0x01, 0x02, 0x03:
		return KindMBC1
	case 0x0F, 0x10, 0x11, 0x12, 0x13:
		return KindMBC3
	case 0x19, 0x1A, 0x1B, 0x1C, 0x1D, 0x1E:
		return KindMBC5
	default:
		return KindNone
	}
}

// Cartridge bundles a parsed header with its constructed MBC.
type Cartridge struct {
	Header *Header
	MBC    MBC
}

// Load validates and parses a ROM image and constructs the matching MBC.
// It is the in-memory half of the external ROM-loader collaborator; the
// CLI is responsible for turning a file path into the byte slice passed
// here.
func Load(rom []byte) (*Cartridge, error) {
	h, err := ParseHeader(rom)
	if err != nil {
		return nil, fmt.Errorf("parse header: %w", err)
	}

	kind := kindFromCartType(h.CartType)
	var mbc MBC
	switch kind {
	case KindMBC1:
		mbc = NewMBC1(rom, h.RAMSizeBytes)
	case KindMBC3:
		mbc = NewMBC3(rom, h.RAMSizeBytes)
	case KindMBC5:
		mbc = NewMBC5(rom, h.RAMSizeBytes)
	default:
		mbc = NewNone(rom, h.RAMSizeBytes)
	}

	return &Cartridge{Header: h, MBC: mbc}, nil
}

// ReadROM delegates to the underlying MBC.
func (c *Cartridge) ReadROM(addr uint16) byte { return c.MBC.ReadROM(addr) }

// WriteControl delegates to the underlying MBC.
func (c *Cartridge) WriteControl(addr uint16, value byte) { c.MBC.WriteControl(addr, value) }

// ReadRAM delegates to the underlying MBC.
func (c *Cartridge) ReadRAM(addr uint16) byte { return c.MBC.ReadRAM(addr) }

// WriteRAM delegates to the underlying MBC.
func (c *Cartridge) WriteRAM(addr uint16, value byte) { c.MBC.WriteRAM(addr, value) }
