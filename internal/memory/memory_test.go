package memory

import (
	"testing"

	"famigo/internal/cartridge"
)

type fakePPURegs struct {
	lastRead  uint16
	lastWrite uint16
	lastValue uint8
}

func (f *fakePPURegs) ReadRegister(addr uint16) uint8 {
	f.lastRead = addr
	return 0x21
}

func (f *fakePPURegs) WriteRegister(addr uint16, value uint8) {
	f.lastWrite = addr
	f.lastValue = value
}

type fakeAPURegs struct {
	regs map[uint16]uint8
}

func (f *fakeAPURegs) ReadRegister(addr uint16) uint8 {
	return f.regs[addr]
}

func (f *fakeAPURegs) WriteRegister(addr uint16, value uint8) {
	if f.regs == nil {
		f.regs = map[uint16]uint8{}
	}
	f.regs[addr] = value
}

type fakePad struct {
	reads  int
	writes []uint8
}

func (f *fakePad) Read() uint8       { f.reads++; return 1 }
func (f *fakePad) Write(value uint8) { f.writes = append(f.writes, value) }

func newTestCPUMemory() (*CPUMemory, *fakePPURegs, *fakePad, *fakePad, *uint8) {
	ppu := &fakePPURegs{}
	pad1 := &fakePad{}
	pad2 := &fakePad{}
	var dmaPage uint8
	mem := NewCPUMemory(ppu, &fakeAPURegs{}, pad1, pad2, func(page uint8) { dmaPage = page })
	return mem, ppu, pad1, pad2, &dmaPage
}

func TestRAMMirroring(t *testing.T) {
	mem, _, _, _, _ := newTestCPUMemory()
	mem.Write(0x0000, 0x42)
	for _, addr := range []uint16{0x0000, 0x0800, 0x1000, 0x1800} {
		if got := mem.Read(addr); got != 0x42 {
			t.Errorf("Read(%#04x) = %#02x, want 0x42", addr, got)
		}
	}

	mem.Write(0x1FFF, 0x24)
	if got := mem.Read(0x07FF); got != 0x24 {
		t.Errorf("Read(0x07FF) = %#02x, want 0x24", got)
	}
}

func TestPPURegisterMirroring(t *testing.T) {
	mem, ppu, _, _, _ := newTestCPUMemory()

	mem.Read(0x2002)
	if ppu.lastRead != 0x2002 {
		t.Errorf("register read folded to %#04x, want 0x2002", ppu.lastRead)
	}
	// $3456 folds to $2006.
	mem.Write(0x3456, 0x99)
	if ppu.lastWrite != 0x2006 || ppu.lastValue != 0x99 {
		t.Errorf("mirrored write hit %#04x = %#02x, want 0x2006 = 0x99", ppu.lastWrite, ppu.lastValue)
	}
}

func TestDMALatch(t *testing.T) {
	mem, _, _, _, dmaPage := newTestCPUMemory()
	mem.Write(0x4014, 0x03)
	if *dmaPage != 0x03 {
		t.Errorf("DMA page = %#02x, want 0x03", *dmaPage)
	}
}

func TestGamepadRouting(t *testing.T) {
	mem, _, pad1, pad2, _ := newTestCPUMemory()

	mem.Write(0x4016, 1)
	if len(pad1.writes) != 1 || len(pad2.writes) != 1 {
		t.Fatal("strobe write must reach both pads")
	}

	mem.Read(0x4016)
	mem.Read(0x4017)
	if pad1.reads != 1 || pad2.reads != 1 {
		t.Errorf("pad reads = (%d, %d), want (1, 1)", pad1.reads, pad2.reads)
	}
}

func TestUnmappedAccess(t *testing.T) {
	mem, _, _, _, _ := newTestCPUMemory()
	// No mapper installed, expansion space open.
	if got := mem.Read(0x5000); got != 0 {
		t.Errorf("Read(0x5000) = %#02x, want 0", got)
	}
	if got := mem.Read(0x8000); got != 0 {
		t.Errorf("Read(0x8000) with no mapper = %#02x, want 0", got)
	}
	mem.Write(0x5000, 0xFF) // must not panic
	mem.Write(0x8000, 0xFF)
}

func TestIOScratchRAM(t *testing.T) {
	mem, _, _, _, _ := newTestCPUMemory()
	mem.Write(0x4018, 0x5A)
	if got := mem.Read(0x4018); got != 0x5A {
		t.Errorf("scratch readback = %#02x, want 0x5A", got)
	}
}

func TestNametableMirroring(t *testing.T) {
	tests := []struct {
		mode  cartridge.MirrorMode
		write uint16
		reads []uint16
	}{
		{cartridge.MirrorHorizontal, 0x2000, []uint16{0x2000, 0x2400}},
		{cartridge.MirrorHorizontal, 0x2800, []uint16{0x2800, 0x2C00}},
		{cartridge.MirrorVertical, 0x2000, []uint16{0x2000, 0x2800}},
		{cartridge.MirrorVertical, 0x2400, []uint16{0x2400, 0x2C00}},
		{cartridge.MirrorOneScreenLo, 0x2000, []uint16{0x2000, 0x2400, 0x2800, 0x2C00}},
		{cartridge.MirrorOneScreenHi, 0x2400, []uint16{0x2000, 0x2400, 0x2800, 0x2C00}},
	}

	for _, tt := range tests {
		mem := NewPPUMemory()
		mem.SetMirror(tt.mode)
		mem.Write(tt.write, 0x77)
		for _, addr := range tt.reads {
			if got := mem.Read(addr); got != 0x77 {
				t.Errorf("%v: write %#04x, Read(%#04x) = %#02x, want 0x77",
					tt.mode, tt.write, addr, got)
			}
		}
	}
}

func TestHorizontalMirrorKeepsTablesApart(t *testing.T) {
	mem := NewPPUMemory()
	mem.SetMirror(cartridge.MirrorHorizontal)
	mem.Write(0x2000, 0x11)
	mem.Write(0x2800, 0x22)
	if got := mem.Read(0x2000); got != 0x11 {
		t.Errorf("table A = %#02x, want 0x11", got)
	}
	if got := mem.Read(0x2C00); got != 0x22 {
		t.Errorf("table B mirror = %#02x, want 0x22", got)
	}
}

func TestNametableMirrorRegion(t *testing.T) {
	mem := NewPPUMemory()
	mem.SetMirror(cartridge.MirrorVertical)
	mem.Write(0x2005, 0x33)
	if got := mem.Read(0x3005); got != 0x33 {
		t.Errorf("Read(0x3005) = %#02x, want 0x33 ($3000 mirrors $2000)", got)
	}
}

func TestPaletteMirroring(t *testing.T) {
	mem := NewPPUMemory()

	mem.Write(0x3F00, 0x0F)
	if got := mem.Read(0x3F10); got != 0x0F {
		t.Errorf("Read(0x3F10) = %#02x, want 0x0F (backdrop alias)", got)
	}
	mem.Write(0x3F14, 0x2A)
	if got := mem.Read(0x3F04); got != 0x2A {
		t.Errorf("Read(0x3F04) = %#02x, want 0x2A", got)
	}

	// The 32-byte block repeats through $3FFF.
	mem.Write(0x3F01, 0x16)
	if got := mem.Read(0x3F21); got != 0x16 {
		t.Errorf("Read(0x3F21) = %#02x, want 0x16", got)
	}
}

func TestPPUMemoryRoutesCHRToMapper(t *testing.T) {
	cart, err := cartridge.Load(buildCHRRAMROM())
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	mem := NewPPUMemory()
	mem.SetMapper(cart.Mapper())

	mem.Write(0x1000, 0x42)
	if got := mem.Read(0x1000); got != 0x42 {
		t.Errorf("CHR RAM readback = %#02x, want 0x42", got)
	}
}

// buildCHRRAMROM is a minimal NROM image with CHR RAM.
func buildCHRRAMROM() []byte {
	rom := make([]byte, 16+16*1024)
	copy(rom, []byte{'N', 'E', 'S', 0x1A, 1, 0, 0, 0})
	return rom
}
