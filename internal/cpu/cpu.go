// Package cpu implements the Ricoh 2A03 processor core, a 6502 without
// decimal mode, clocked one cycle at a time by the console.
package cpu

// Interrupt vectors.
const (
	nmiVector   = 0xFFFA
	resetVector = 0xFFFC
	irqVector   = 0xFFFE
)

const stackBase = 0x0100

// Memory is the CPU's view of the system bus.
type Memory interface {
	Read(addr uint16) uint8
	Write(addr uint16, value uint8)
}

// CPU holds the 2A03 register file and countdown state. An instruction
// executes in full on the cycle its opcode is fetched; the remaining
// cycles of its budget are burned one Clock call at a time, which keeps
// the core in lockstep with the PPU's 3:1 dot clock.
type CPU struct {
	A  uint8
	X  uint8
	Y  uint8
	SP uint8
	PC uint16

	// Status flags. B1 and B2 only materialize when the status byte is
	// pushed or pulled; the NES forces B1=0, B2=1 on every pull.
	C, Z, I, D, B1, B2, V, N bool

	mem Memory

	cycles      uint8 // cycles remaining before the next fetch
	extraCycle  bool  // current opcode pays the page-cross penalty
	branchCross bool  // relative target crossed a page
	totalCycles uint64
}

// New creates a CPU attached to the given memory. Call Reset before
// clocking.
func New(mem Memory) *CPU {
	return &CPU{mem: mem}
}

// Clock advances the CPU by one cycle. A new instruction is fetched and
// executed only when the previous one's cycle budget is spent.
func (c *CPU) Clock() {
	if c.cycles == 0 {
		opcode := c.mem.Read(c.PC)
		c.dispatch(opcode)
	}
	c.cycles--
	c.totalCycles++
}

// Reset loads PC from the reset vector and charges the startup cycles.
func (c *CPU) Reset() {
	c.A = 0
	c.X = 0
	c.Y = 0
	c.SP = 0xFD
	c.setStatus(0x00)

	lo := uint16(c.mem.Read(resetVector))
	hi := uint16(c.mem.Read(resetVector + 1))
	c.PC = hi<<8 | lo

	c.cycles = 8
}

// NMI services a non-maskable interrupt: the PPU raised vblank.
func (c *CPU) NMI() {
	c.push(uint8(c.PC >> 8))
	c.push(uint8(c.PC))

	c.B1 = false
	c.B2 = true
	c.push(c.status())
	c.I = true

	lo := uint16(c.mem.Read(nmiVector))
	hi := uint16(c.mem.Read(nmiVector + 1))
	c.PC = hi<<8 | lo

	c.cycles += 8
}

// IRQ services a maskable interrupt, honoring the I flag.
func (c *CPU) IRQ() {
	if c.I {
		return
	}
	c.push(uint8(c.PC >> 8))
	c.push(uint8(c.PC))

	c.B1 = false
	c.B2 = true
	c.push(c.status())
	c.I = true

	lo := uint16(c.mem.Read(irqVector))
	hi := uint16(c.mem.Read(irqVector + 1))
	c.PC = hi<<8 | lo

	c.cycles += 8
}

// TotalCycles returns the number of cycles clocked since power-on.
func (c *CPU) TotalCycles() uint64 { return c.totalCycles }

// Idle reports whether the current instruction has finished, i.e. the
// next Clock call fetches a new opcode.
func (c *CPU) Idle() bool { return c.cycles == 0 }

// status packs the flags into the 6502 status byte layout.
func (c *CPU) status() uint8 {
	var p uint8
	if c.C {
		p |= 0x01
	}
	if c.Z {
		p |= 0x02
	}
	if c.I {
		p |= 0x04
	}
	if c.D {
		p |= 0x08
	}
	if c.B1 {
		p |= 0x10
	}
	if c.B2 {
		p |= 0x20
	}
	if c.V {
		p |= 0x40
	}
	if c.N {
		p |= 0x80
	}
	return p
}

func (c *CPU) setStatus(p uint8) {
	c.C = p&0x01 != 0
	c.Z = p&0x02 != 0
	c.I = p&0x04 != 0
	c.D = p&0x08 != 0
	c.B1 = p&0x10 != 0
	c.B2 = p&0x20 != 0
	c.V = p&0x40 != 0
	c.N = p&0x80 != 0
}

// Status exposes the packed status byte for tracing and tests.
func (c *CPU) Status() uint8 { return c.status() }

// SetStatus overwrites the packed status byte.
func (c *CPU) SetStatus(p uint8) { c.setStatus(p) }

func (c *CPU) read16(addr uint16) uint16 {
	lo := uint16(c.mem.Read(addr))
	hi := uint16(c.mem.Read(addr + 1))
	return hi<<8 | lo
}

func (c *CPU) push(value uint8) {
	c.mem.Write(stackBase+uint16(c.SP), value)
	c.SP--
}

func (c *CPU) pop() uint8 {
	c.SP++
	return c.mem.Read(stackBase + uint16(c.SP))
}

func (c *CPU) pushWord(value uint16) {
	c.push(uint8(value >> 8))
	c.push(uint8(value))
}

func (c *CPU) popWord() uint16 {
	lo := uint16(c.pop())
	hi := uint16(c.pop())
	return hi<<8 | lo
}

func (c *CPU) setZN(value uint8) {
	c.Z = value == 0
	c.N = value&0x80 != 0
}

func pageCrossed(a, b uint16) bool {
	return a&0xFF00 != b&0xFF00
}

// execute pairs an addressing mode with an instruction body and
// charges the base cycle count. The mode function advances PC past the
// whole instruction, so bodies never touch PC except for control flow.
func (c *CPU) execute(mode func() uint16, op func(uint16), cycles uint8, extra bool) {
	c.extraCycle = extra
	c.cycles += cycles
	op(mode())
}

// Addressing modes.

func (c *CPU) imp() uint16 {
	c.PC++
	return 0
}

func (c *CPU) acc() uint16 {
	c.PC++
	return 0
}

func (c *CPU) imm() uint16 {
	addr := c.PC + 1
	c.PC += 2
	return addr
}

func (c *CPU) zp() uint16 {
	addr := uint16(c.mem.Read(c.PC + 1))
	c.PC += 2
	return addr
}

func (c *CPU) zpx() uint16 {
	addr := uint16(c.mem.Read(c.PC+1) + c.X)
	c.PC += 2
	return addr
}

func (c *CPU) zpy() uint16 {
	addr := uint16(c.mem.Read(c.PC+1) + c.Y)
	c.PC += 2
	return addr
}

func (c *CPU) abs() uint16 {
	addr := c.read16(c.PC + 1)
	c.PC += 3
	return addr
}

func (c *CPU) absx() uint16 {
	base := c.read16(c.PC + 1)
	addr := base + uint16(c.X)
	if c.extraCycle && pageCrossed(base, addr) {
		c.cycles++
	}
	c.PC += 3
	return addr
}

func (c *CPU) absy() uint16 {
	base := c.read16(c.PC + 1)
	addr := base + uint16(c.Y)
	if c.extraCycle && pageCrossed(base, addr) {
		c.cycles++
	}
	c.PC += 3
	return addr
}

// ind implements JMP (addr) with the hardware bug: when the pointer's
// low byte is 0xFF the high byte is fetched from the start of the same
// page instead of the next one.
func (c *CPU) ind() uint16 {
	ptr := c.read16(c.PC + 1)
	c.PC += 3
	lo := uint16(c.mem.Read(ptr))
	var hi uint16
	if ptr&0x00FF == 0x00FF {
		hi = uint16(c.mem.Read(ptr & 0xFF00))
	} else {
		hi = uint16(c.mem.Read(ptr + 1))
	}
	return hi<<8 | lo
}

func (c *CPU) indx() uint16 {
	zpAddr := c.mem.Read(c.PC+1) + c.X
	lo := uint16(c.mem.Read(uint16(zpAddr)))
	hi := uint16(c.mem.Read(uint16(zpAddr + 1)))
	c.PC += 2
	return hi<<8 | lo
}

func (c *CPU) indy() uint16 {
	zpAddr := c.mem.Read(c.PC + 1)
	lo := uint16(c.mem.Read(uint16(zpAddr)))
	hi := uint16(c.mem.Read(uint16(zpAddr + 1)))
	base := hi<<8 | lo
	addr := base + uint16(c.Y)
	if c.extraCycle && pageCrossed(base, addr) {
		c.cycles++
	}
	c.PC += 2
	return addr
}

// rel resolves the branch target and remembers whether it crosses a
// page; the branch body charges the penalty only when taken.
func (c *CPU) rel() uint16 {
	offset := int8(c.mem.Read(c.PC + 1))
	c.PC += 2
	target := uint16(int32(c.PC) + int32(offset))
	c.branchCross = pageCrossed(c.PC, target)
	return target
}

// Instruction bodies.

func (c *CPU) branch(taken bool, target uint16) {
	if !taken {
		return
	}
	c.cycles++
	if c.branchCross {
		c.cycles++
	}
	c.PC = target
}

// addCore implements the shared ADC/SBC datapath; SBC feeds the
// operand's complement. V = ~(A^M) & (A^R) & 0x80.
func (c *CPU) addCore(operand uint8) {
	sum := uint16(c.A) + uint16(operand)
	if c.C {
		sum++
	}
	result := uint8(sum)

	c.C = sum > 0xFF
	c.V = (^(c.A^operand)&(c.A^result))&0x80 != 0
	c.A = result
	c.setZN(c.A)
}

func (c *CPU) adc(addr uint16) { c.addCore(c.mem.Read(addr)) }
func (c *CPU) sbc(addr uint16) { c.addCore(c.mem.Read(addr) ^ 0xFF) }

func (c *CPU) and(addr uint16) {
	c.A &= c.mem.Read(addr)
	c.setZN(c.A)
}

func (c *CPU) ora(addr uint16) {
	c.A |= c.mem.Read(addr)
	c.setZN(c.A)
}

func (c *CPU) eor(addr uint16) {
	c.A ^= c.mem.Read(addr)
	c.setZN(c.A)
}

func (c *CPU) aslValue(v uint8) uint8 {
	c.C = v&0x80 != 0
	v <<= 1
	c.setZN(v)
	return v
}

func (c *CPU) lsrValue(v uint8) uint8 {
	c.C = v&0x01 != 0
	v >>= 1
	c.setZN(v)
	return v
}

func (c *CPU) rolValue(v uint8) uint8 {
	carryIn := c.C
	c.C = v&0x80 != 0
	v <<= 1
	if carryIn {
		v |= 0x01
	}
	c.setZN(v)
	return v
}

func (c *CPU) rorValue(v uint8) uint8 {
	carryIn := c.C
	c.C = v&0x01 != 0
	v >>= 1
	if carryIn {
		v |= 0x80
	}
	c.setZN(v)
	return v
}

func (c *CPU) aslAcc(uint16) { c.A = c.aslValue(c.A) }
func (c *CPU) lsrAcc(uint16) { c.A = c.lsrValue(c.A) }
func (c *CPU) rolAcc(uint16) { c.A = c.rolValue(c.A) }
func (c *CPU) rorAcc(uint16) { c.A = c.rorValue(c.A) }

func (c *CPU) aslMem(addr uint16) { c.mem.Write(addr, c.aslValue(c.mem.Read(addr))) }
func (c *CPU) lsrMem(addr uint16) { c.mem.Write(addr, c.lsrValue(c.mem.Read(addr))) }
func (c *CPU) rolMem(addr uint16) { c.mem.Write(addr, c.rolValue(c.mem.Read(addr))) }
func (c *CPU) rorMem(addr uint16) { c.mem.Write(addr, c.rorValue(c.mem.Read(addr))) }

func (c *CPU) compare(reg uint8, addr uint16) {
	operand := c.mem.Read(addr)
	c.C = reg >= operand
	c.setZN(reg - operand)
}

func (c *CPU) cmp(addr uint16) { c.compare(c.A, addr) }
func (c *CPU) cpx(addr uint16) { c.compare(c.X, addr) }
func (c *CPU) cpy(addr uint16) { c.compare(c.Y, addr) }

func (c *CPU) inc(addr uint16) {
	v := c.mem.Read(addr) + 1
	c.mem.Write(addr, v)
	c.setZN(v)
}

func (c *CPU) dec(addr uint16) {
	v := c.mem.Read(addr) - 1
	c.mem.Write(addr, v)
	c.setZN(v)
}

func (c *CPU) inx(uint16) { c.X++; c.setZN(c.X) }
func (c *CPU) iny(uint16) { c.Y++; c.setZN(c.Y) }
func (c *CPU) dex(uint16) { c.X--; c.setZN(c.X) }
func (c *CPU) dey(uint16) { c.Y--; c.setZN(c.Y) }

func (c *CPU) lda(addr uint16) { c.A = c.mem.Read(addr); c.setZN(c.A) }
func (c *CPU) ldx(addr uint16) { c.X = c.mem.Read(addr); c.setZN(c.X) }
func (c *CPU) ldy(addr uint16) { c.Y = c.mem.Read(addr); c.setZN(c.Y) }

func (c *CPU) sta(addr uint16) { c.mem.Write(addr, c.A) }
func (c *CPU) stx(addr uint16) { c.mem.Write(addr, c.X) }
func (c *CPU) sty(addr uint16) { c.mem.Write(addr, c.Y) }

func (c *CPU) tax(uint16) { c.X = c.A; c.setZN(c.X) }
func (c *CPU) tay(uint16) { c.Y = c.A; c.setZN(c.Y) }
func (c *CPU) txa(uint16) { c.A = c.X; c.setZN(c.A) }
func (c *CPU) tya(uint16) { c.A = c.Y; c.setZN(c.A) }
func (c *CPU) tsx(uint16) { c.X = c.SP; c.setZN(c.X) }
func (c *CPU) txs(uint16) { c.SP = c.X }

func (c *CPU) pha(uint16) { c.push(c.A) }

func (c *CPU) pla(uint16) {
	c.A = c.pop()
	c.setZN(c.A)
}

// php pushes the status byte with both break bits set, the documented
// NES behavior.
func (c *CPU) php(uint16) {
	c.push(c.status() | 0x30)
}

// plp pulls the status byte, forcing B1 clear and B2 set.
func (c *CPU) plp(uint16) {
	c.setStatus(c.pop()&^uint8(0x10) | 0x20)
}

func (c *CPU) bit(addr uint16) {
	operand := c.mem.Read(addr)
	c.Z = c.A&operand == 0
	c.V = operand&0x40 != 0
	c.N = operand&0x80 != 0
}

func (c *CPU) jmp(addr uint16) { c.PC = addr }

func (c *CPU) jsr(addr uint16) {
	c.pushWord(c.PC - 1)
	c.PC = addr
}

func (c *CPU) rts(uint16) {
	c.PC = c.popWord() + 1
}

func (c *CPU) rti(uint16) {
	c.setStatus(c.pop()&^uint8(0x10) | 0x20)
	c.PC = c.popWord()
}

// brk pushes the address two past the opcode, then vectors through
// $FFFE with the break bits set in the pushed status.
func (c *CPU) brk(uint16) {
	c.PC++
	c.pushWord(c.PC)
	c.push(c.status() | 0x30)
	c.I = true
	c.PC = c.read16(irqVector)
}

func (c *CPU) bcc(target uint16) { c.branch(!c.C, target) }
func (c *CPU) bcs(target uint16) { c.branch(c.C, target) }
func (c *CPU) bne(target uint16) { c.branch(!c.Z, target) }
func (c *CPU) beq(target uint16) { c.branch(c.Z, target) }
func (c *CPU) bpl(target uint16) { c.branch(!c.N, target) }
func (c *CPU) bmi(target uint16) { c.branch(c.N, target) }
func (c *CPU) bvc(target uint16) { c.branch(!c.V, target) }
func (c *CPU) bvs(target uint16) { c.branch(c.V, target) }

func (c *CPU) clc(uint16) { c.C = false }
func (c *CPU) sec(uint16) { c.C = true }
func (c *CPU) cli(uint16) { c.I = false }
func (c *CPU) sei(uint16) { c.I = true }
func (c *CPU) clv(uint16) { c.V = false }
func (c *CPU) cld(uint16) { c.D = false }
func (c *CPU) sed(uint16) { c.D = true }

func (c *CPU) nop(uint16) {}

// Illegal opcodes. Each composes the official cores on the already
// resolved address, so PC advances exactly once per instruction.

func (c *CPU) lax(addr uint16) {
	c.A = c.mem.Read(addr)
	c.X = c.A
	c.setZN(c.A)
}

func (c *CPU) sax(addr uint16) {
	c.mem.Write(addr, c.A&c.X)
}

func (c *CPU) dcp(addr uint16) {
	v := c.mem.Read(addr) - 1
	c.mem.Write(addr, v)
	c.C = c.A >= v
	c.setZN(c.A - v)
}

func (c *CPU) isc(addr uint16) {
	v := c.mem.Read(addr) + 1
	c.mem.Write(addr, v)
	c.addCore(v ^ 0xFF)
}

func (c *CPU) slo(addr uint16) {
	v := c.aslValue(c.mem.Read(addr))
	c.mem.Write(addr, v)
	c.A |= v
	c.setZN(c.A)
}

func (c *CPU) rla(addr uint16) {
	v := c.rolValue(c.mem.Read(addr))
	c.mem.Write(addr, v)
	c.A &= v
	c.setZN(c.A)
}

func (c *CPU) sre(addr uint16) {
	v := c.lsrValue(c.mem.Read(addr))
	c.mem.Write(addr, v)
	c.A ^= v
	c.setZN(c.A)
}

func (c *CPU) rra(addr uint16) {
	v := c.rorValue(c.mem.Read(addr))
	c.mem.Write(addr, v)
	c.addCore(v)
}
