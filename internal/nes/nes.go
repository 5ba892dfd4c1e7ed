// Package nes assembles the console: CPU, PPU, memory decoders, DMA
// and gamepads under the hardware's 3:1 clock.
package nes

import (
	"famigo/internal/apu"
	"famigo/internal/cartridge"
	"famigo/internal/cpu"
	"famigo/internal/input"
	"famigo/internal/memory"
	"famigo/internal/ppu"
)

// Console is the whole machine. One Clock call is one PPU dot; the CPU
// (or an active DMA transfer) receives every third dot.
type Console struct {
	CPU *cpu.CPU
	PPU *ppu.PPU

	cpuMem *memory.CPUMemory
	ppuMem *memory.PPUMemory
	apu    *apu.APU
	pad1   *input.Gamepad
	pad2   *input.Gamepad
	dma    oamDMA
	cart   *cartridge.Cartridge

	dots      uint64 // PPU dots since power-on
	cpuCycles uint64 // CPU clock slots since power-on
}

// New builds a console with no cartridge inserted.
func New() *Console {
	c := &Console{
		apu:  apu.New(),
		pad1: input.New(),
		pad2: input.New(),
	}
	c.ppuMem = memory.NewPPUMemory()
	c.PPU = ppu.New(c.ppuMem)
	c.cpuMem = memory.NewCPUMemory(c.PPU, c.apu, c.pad1, c.pad2, c.dma.Start)
	c.CPU = cpu.New(c.cpuMem)
	return c
}

// InsertCartridge connects a cartridge to both bus halves and resets
// the machine.
func (c *Console) InsertCartridge(cart *cartridge.Cartridge) {
	c.cart = cart
	c.cpuMem.SetMapper(cart.Mapper())
	c.ppuMem.SetMapper(cart.Mapper())
	c.ppuMem.SetMirror(cart.Mirror())
	if ms, ok := cart.Mapper().(cartridge.MirrorSetter); ok {
		ms.SetMirrorFunc(c.ppuMem.SetMirror)
	}
	c.Reset()
}

// LoadROM parses an iNES image and inserts it.
func (c *Console) LoadROM(data []byte) error {
	cart, err := cartridge.Load(data)
	if err != nil {
		return err
	}
	c.InsertCartridge(cart)
	return nil
}

// Cartridge returns the inserted cartridge, or nil.
func (c *Console) Cartridge() *cartridge.Cartridge { return c.cart }

// Reset presses the reset button.
func (c *Console) Reset() {
	c.CPU.Reset()
	c.PPU.Reset()
	c.apu.Reset()
	c.dma = oamDMA{}
	c.dots = 0
	c.cpuCycles = 0
}

// Clock advances the machine by one PPU dot.
func (c *Console) Clock() {
	c.PPU.Clock()

	if c.dots%3 == 0 {
		if c.dma.inProgress {
			c.dma.Transfer(c.cpuCycles, c.cpuMem, c.PPU)
		} else {
			c.CPU.Clock()
		}
		c.cpuCycles++
	}

	if c.PPU.PollNMI() {
		c.CPU.NMI()
	}

	c.dots++
}

// StepFrame clocks the machine until the PPU finishes the current
// frame and returns the RGB24 screen buffer.
func (c *Console) StepFrame() *[ppu.Width * ppu.Height * 3]uint8 {
	c.PPU.ClearFrameComplete()
	for !c.PPU.FrameComplete() {
		c.Clock()
	}
	return c.PPU.Frame()
}

// ButtonDown presses a button on pad 1 or 2.
func (c *Console) ButtonDown(pad int, btn input.Button) {
	if p := c.gamepad(pad); p != nil {
		p.ButtonDown(btn)
	}
}

// ButtonUp releases a button on pad 1 or 2.
func (c *Console) ButtonUp(pad int, btn input.Button) {
	if p := c.gamepad(pad); p != nil {
		p.ButtonUp(btn)
	}
}

func (c *Console) gamepad(pad int) *input.Gamepad {
	switch pad {
	case 1:
		return c.pad1
	case 2:
		return c.pad2
	default:
		return nil
	}
}
