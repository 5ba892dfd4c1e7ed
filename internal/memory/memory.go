// Package memory implements the CPU and PPU address decoders. Both are
// hand-coded switches: the bus layout is fixed, and these are the
// hottest paths in the machine.
package memory

import "famigo/internal/cartridge"

// PPURegisters is the CPU-visible PPU register file ($2000-$2007).
type PPURegisters interface {
	ReadRegister(addr uint16) uint8
	WriteRegister(addr uint16, value uint8)
}

// APURegisters is the APU register file ($4000-$4013, $4015, $4017).
type APURegisters interface {
	ReadRegister(addr uint16) uint8
	WriteRegister(addr uint16, value uint8)
}

// GamepadPort is one controller's serial interface.
type GamepadPort interface {
	Read() uint8
	Write(value uint8)
}

// CPUMemory routes the 2A03's 64 KiB address space.
type CPUMemory struct {
	ram [0x800]uint8

	ppu    PPURegisters
	apu    APURegisters
	pad1   GamepadPort
	pad2   GamepadPort
	mapper cartridge.Mapper

	// $4018-$401F test registers, backed by scratch RAM.
	ioScratch [8]uint8

	dmaStart func(page uint8)
}

// NewCPUMemory wires the decoder to its devices. The mapper arrives
// later, when a cartridge is inserted.
func NewCPUMemory(ppu PPURegisters, apu APURegisters, pad1, pad2 GamepadPort, dmaStart func(uint8)) *CPUMemory {
	return &CPUMemory{
		ppu:      ppu,
		apu:      apu,
		pad1:     pad1,
		pad2:     pad2,
		dmaStart: dmaStart,
	}
}

// SetMapper connects the cartridge's PRG half.
func (m *CPUMemory) SetMapper(mapper cartridge.Mapper) {
	m.mapper = mapper
}

// Read returns the byte at addr. Unmapped locations read as 0.
func (m *CPUMemory) Read(addr uint16) uint8 {
	switch {
	case addr < 0x2000:
		return m.ram[addr&0x07FF]

	case addr < 0x4000:
		return m.ppu.ReadRegister(0x2000 + addr&0x0007)

	case addr == 0x4016:
		return m.pad1.Read()

	case addr == 0x4017:
		return m.pad2.Read()

	case addr < 0x4018:
		return m.apu.ReadRegister(addr)

	case addr < 0x4020:
		return m.ioScratch[addr-0x4018]

	case addr < 0x8000:
		// Expansion and PRG RAM space, absent on the supported boards.
		return 0

	default:
		if m.mapper == nil {
			return 0
		}
		return m.mapper.ReadPRG(addr - 0x8000)
	}
}

// Write stores value at addr. Unmapped locations drop the write.
func (m *CPUMemory) Write(addr uint16, value uint8) {
	switch {
	case addr < 0x2000:
		m.ram[addr&0x07FF] = value

	case addr < 0x4000:
		m.ppu.WriteRegister(0x2000+addr&0x0007, value)

	case addr == 0x4014:
		m.dmaStart(value)

	case addr == 0x4016:
		// The strobe line reaches both pads.
		m.pad1.Write(value)
		m.pad2.Write(value)

	case addr < 0x4018:
		m.apu.WriteRegister(addr, value)

	case addr < 0x4020:
		m.ioScratch[addr-0x4018] = value

	case addr < 0x8000:
		// dropped

	default:
		if m.mapper != nil {
			m.mapper.WritePRG(addr-0x8000, value)
		}
	}
}

// PPUMemory routes the 2C02's 16 KiB address space: pattern tables on
// the cartridge, nametables in 2 KiB of console VRAM folded by the
// mirror mode, and palette RAM.
type PPUMemory struct {
	vram    [0x800]uint8
	palette [32]uint8

	mapper cartridge.Mapper
	mirror cartridge.MirrorMode
}

// NewPPUMemory creates the PPU-side decoder.
func NewPPUMemory() *PPUMemory {
	return &PPUMemory{}
}

// SetMapper connects the cartridge's CHR half.
func (m *PPUMemory) SetMapper(mapper cartridge.Mapper) {
	m.mapper = mapper
}

// SetMirror selects the nametable arrangement. MMC1 retargets this at
// runtime through the console.
func (m *PPUMemory) SetMirror(mode cartridge.MirrorMode) {
	m.mirror = mode
}

// Mirror returns the current nametable arrangement.
func (m *PPUMemory) Mirror() cartridge.MirrorMode {
	return m.mirror
}

// nametableIndex folds a $2000-$2FFF address into the 2 KiB VRAM.
func (m *PPUMemory) nametableIndex(addr uint16) uint16 {
	addr &= 0x0FFF
	table := addr >> 10
	offset := addr & 0x03FF

	switch m.mirror {
	case cartridge.MirrorHorizontal:
		// tables (A, A, B, B)
		if table >= 2 {
			return 0x400 + offset
		}
		return offset
	case cartridge.MirrorVertical:
		// tables (A, B, A, B)
		if table == 1 || table == 3 {
			return 0x400 + offset
		}
		return offset
	case cartridge.MirrorOneScreenLo:
		return offset
	case cartridge.MirrorOneScreenHi:
		return 0x400 + offset
	default:
		return offset
	}
}

// paletteIndex folds the palette mirrors: the whole region repeats
// every 32 bytes and the sprite backdrop entries alias the background
// ones.
func paletteIndex(addr uint16) uint16 {
	i := addr & 0x1F
	if i == 0x10 || i == 0x14 || i == 0x18 || i == 0x1C {
		i &= 0x0F
	}
	return i
}

// Read returns the byte at addr in PPU space.
func (m *PPUMemory) Read(addr uint16) uint8 {
	addr &= 0x3FFF
	switch {
	case addr < 0x2000:
		if m.mapper == nil {
			return 0
		}
		return m.mapper.ReadCHR(addr)

	case addr < 0x3F00:
		return m.vram[m.nametableIndex(addr)]

	default:
		return m.palette[paletteIndex(addr)]
	}
}

// Write stores value at addr in PPU space.
func (m *PPUMemory) Write(addr uint16, value uint8) {
	addr &= 0x3FFF
	switch {
	case addr < 0x2000:
		if m.mapper != nil {
			m.mapper.WriteCHR(addr, value)
		}

	case addr < 0x3F00:
		m.vram[m.nametableIndex(addr)] = value

	default:
		m.palette[paletteIndex(addr)] = value
	}
}
