package cpu

import "log"

// dispatch decodes one opcode into an addressing mode, an instruction
// body, and a base cycle count. The extra-cycle flag marks opcodes that
// pay one more cycle when indexing crosses a page.
func (c *CPU) dispatch(opcode uint8) {
	switch opcode {
	// Official opcodes.
	case 0x00:
		c.execute(c.imp, c.brk, 7, false)
	case 0x01:
		c.execute(c.indx, c.ora, 6, false)
	case 0x05:
		c.execute(c.zp, c.ora, 3, false)
	case 0x06:
		c.execute(c.zp, c.aslMem, 5, false)
	case 0x08:
		c.execute(c.imp, c.php, 3, false)
	case 0x09:
		c.execute(c.imm, c.ora, 2, false)
	case 0x0A:
		c.execute(c.acc, c.aslAcc, 2, false)
	case 0x0D:
		c.execute(c.abs, c.ora, 4, false)
	case 0x0E:
		c.execute(c.abs, c.aslMem, 6, false)
	case 0x10:
		c.execute(c.rel, c.bpl, 2, false)
	case 0x11:
		c.execute(c.indy, c.ora, 5, true)
	case 0x15:
		c.execute(c.zpx, c.ora, 4, false)
	case 0x16:
		c.execute(c.zpx, c.aslMem, 6, false)
	case 0x18:
		c.execute(c.imp, c.clc, 2, false)
	case 0x19:
		c.execute(c.absy, c.ora, 4, true)
	case 0x1D:
		c.execute(c.absx, c.ora, 4, true)
	case 0x1E:
		c.execute(c.absx, c.aslMem, 7, false)
	case 0x20:
		c.execute(c.abs, c.jsr, 6, false)
	case 0x21:
		c.execute(c.indx, c.and, 6, false)
	case 0x24:
		c.execute(c.zp, c.bit, 3, false)
	case 0x25:
		c.execute(c.zp, c.and, 3, false)
	case 0x26:
		c.execute(c.zp, c.rolMem, 5, false)
	case 0x28:
		c.execute(c.imp, c.plp, 4, false)
	case 0x29:
		c.execute(c.imm, c.and, 2, false)
	case 0x2A:
		c.execute(c.acc, c.rolAcc, 2, false)
	case 0x2C:
		c.execute(c.abs, c.bit, 4, false)
	case 0x2D:
		c.execute(c.abs, c.and, 4, false)
	case 0x2E:
		c.execute(c.abs, c.rolMem, 6, false)
	case 0x30:
		c.execute(c.rel, c.bmi, 2, false)
	case 0x31:
		c.execute(c.indy, c.and, 5, true)
	case 0x35:
		c.execute(c.zpx, c.and, 4, false)
	case 0x36:
		c.execute(c.zpx, c.rolMem, 6, false)
	case 0x38:
		c.execute(c.imp, c.sec, 2, false)
	case 0x39:
		c.execute(c.absy, c.and, 4, true)
	case 0x3D:
		c.execute(c.absx, c.and, 4, true)
	case 0x3E:
		c.execute(c.absx, c.rolMem, 7, false)
	case 0x40:
		c.execute(c.imp, c.rti, 6, false)
	case 0x41:
		c.execute(c.indx, c.eor, 6, false)
	case 0x45:
		c.execute(c.zp, c.eor, 3, false)
	case 0x46:
		c.execute(c.zp, c.lsrMem, 5, false)
	case 0x48:
		c.execute(c.imp, c.pha, 3, false)
	case 0x49:
		c.execute(c.imm, c.eor, 2, false)
	case 0x4A:
		c.execute(c.acc, c.lsrAcc, 2, false)
	case 0x4C:
		c.execute(c.abs, c.jmp, 3, false)
	case 0x4D:
		c.execute(c.abs, c.eor, 4, false)
	case 0x4E:
		c.execute(c.abs, c.lsrMem, 6, false)
	case 0x50:
		c.execute(c.rel, c.bvc, 2, false)
	case 0x51:
		c.execute(c.indy, c.eor, 5, true)
	case 0x55:
		c.execute(c.zpx, c.eor, 4, false)
	case 0x56:
		c.execute(c.zpx, c.lsrMem, 6, false)
	case 0x58:
		c.execute(c.imp, c.cli, 2, false)
	case 0x59:
		c.execute(c.absy, c.eor, 4, true)
	case 0x5D:
		c.execute(c.absx, c.eor, 4, true)
	case 0x5E:
		c.execute(c.absx, c.lsrMem, 7, false)
	case 0x60:
		c.execute(c.imp, c.rts, 6, false)
	case 0x61:
		c.execute(c.indx, c.adc, 6, false)
	case 0x65:
		c.execute(c.zp, c.adc, 3, false)
	case 0x66:
		c.execute(c.zp, c.rorMem, 5, false)
	case 0x68:
		c.execute(c.imp, c.pla, 4, false)
	case 0x69:
		c.execute(c.imm, c.adc, 2, false)
	case 0x6A:
		c.execute(c.acc, c.rorAcc, 2, false)
	case 0x6C:
		c.execute(c.ind, c.jmp, 5, false)
	case 0x6D:
		c.execute(c.abs, c.adc, 4, false)
	case 0x6E:
		c.execute(c.abs, c.rorMem, 6, false)
	case 0x70:
		c.execute(c.rel, c.bvs, 2, false)
	case 0x71:
		c.execute(c.indy, c.adc, 5, true)
	case 0x75:
		c.execute(c.zpx, c.adc, 4, false)
	case 0x76:
		c.execute(c.zpx, c.rorMem, 6, false)
	case 0x78:
		c.execute(c.imp, c.sei, 2, false)
	case 0x79:
		c.execute(c.absy, c.adc, 4, true)
	case 0x7D:
		c.execute(c.absx, c.adc, 4, true)
	case 0x7E:
		c.execute(c.absx, c.rorMem, 7, false)
	case 0x81:
		c.execute(c.indx, c.sta, 6, false)
	case 0x84:
		c.execute(c.zp, c.sty, 3, false)
	case 0x85:
		c.execute(c.zp, c.sta, 3, false)
	case 0x86:
		c.execute(c.zp, c.stx, 3, false)
	case 0x88:
		c.execute(c.imp, c.dey, 2, false)
	case 0x8A:
		c.execute(c.imp, c.txa, 2, false)
	case 0x8C:
		c.execute(c.abs, c.sty, 4, false)
	case 0x8D:
		c.execute(c.abs, c.sta, 4, false)
	case 0x8E:
		c.execute(c.abs, c.stx, 4, false)
	case 0x90:
		c.execute(c.rel, c.bcc, 2, false)
	case 0x91:
		c.execute(c.indy, c.sta, 6, false)
	case 0x94:
		c.execute(c.zpx, c.sty, 4, false)
	case 0x95:
		c.execute(c.zpx, c.sta, 4, false)
	case 0x96:
		c.execute(c.zpy, c.stx, 4, false)
	case 0x98:
		c.execute(c.imp, c.tya, 2, false)
	case 0x99:
		c.execute(c.absy, c.sta, 5, false)
	case 0x9A:
		c.execute(c.imp, c.txs, 2, false)
	case 0x9D:
		c.execute(c.absx, c.sta, 5, false)
	case 0xA0:
		c.execute(c.imm, c.ldy, 2, false)
	case 0xA1:
		c.execute(c.indx, c.lda, 6, false)
	case 0xA2:
		c.execute(c.imm, c.ldx, 2, false)
	case 0xA4:
		c.execute(c.zp, c.ldy, 3, false)
	case 0xA5:
		c.execute(c.zp, c.lda, 3, false)
	case 0xA6:
		c.execute(c.zp, c.ldx, 3, false)
	case 0xA8:
		c.execute(c.imp, c.tay, 2, false)
	case 0xA9:
		c.execute(c.imm, c.lda, 2, false)
	case 0xAA:
		c.execute(c.imp, c.tax, 2, false)
	case 0xAC:
		c.execute(c.abs, c.ldy, 4, false)
	case 0xAD:
		c.execute(c.abs, c.lda, 4, false)
	case 0xAE:
		c.execute(c.abs, c.ldx, 4, false)
	case 0xB0:
		c.execute(c.rel, c.bcs, 2, false)
	case 0xB1:
		c.execute(c.indy, c.lda, 5, true)
	case 0xB4:
		c.execute(c.zpx, c.ldy, 4, false)
	case 0xB5:
		c.execute(c.zpx, c.lda, 4, false)
	case 0xB6:
		c.execute(c.zpy, c.ldx, 4, false)
	case 0xB8:
		c.execute(c.imp, c.clv, 2, false)
	case 0xB9:
		c.execute(c.absy, c.lda, 4, true)
	case 0xBA:
		c.execute(c.imp, c.tsx, 2, false)
	case 0xBC:
		c.execute(c.absx, c.ldy, 4, true)
	case 0xBD:
		c.execute(c.absx, c.lda, 4, true)
	case 0xBE:
		c.execute(c.absy, c.ldx, 4, true)
	case 0xC0:
		c.execute(c.imm, c.cpy, 2, false)
	case 0xC1:
		c.execute(c.indx, c.cmp, 6, false)
	case 0xC4:
		c.execute(c.zp, c.cpy, 3, false)
	case 0xC5:
		c.execute(c.zp, c.cmp, 3, false)
	case 0xC6:
		c.execute(c.zp, c.dec, 5, false)
	case 0xC8:
		c.execute(c.imp, c.iny, 2, false)
	case 0xC9:
		c.execute(c.imm, c.cmp, 2, false)
	case 0xCA:
		c.execute(c.imp, c.dex, 2, false)
	case 0xCC:
		c.execute(c.abs, c.cpy, 4, false)
	case 0xCD:
		c.execute(c.abs, c.cmp, 4, false)
	case 0xCE:
		c.execute(c.abs, c.dec, 6, false)
	case 0xD0:
		c.execute(c.rel, c.bne, 2, false)
	case 0xD1:
		c.execute(c.indy, c.cmp, 5, true)
	case 0xD5:
		c.execute(c.zpx, c.cmp, 4, false)
	case 0xD6:
		c.execute(c.zpx, c.dec, 6, false)
	case 0xD8:
		c.execute(c.imp, c.cld, 2, false)
	case 0xD9:
		c.execute(c.absy, c.cmp, 4, true)
	case 0xDD:
		c.execute(c.absx, c.cmp, 4, true)
	case 0xDE:
		c.execute(c.absx, c.dec, 7, false)
	case 0xE0:
		c.execute(c.imm, c.cpx, 2, false)
	case 0xE1:
		c.execute(c.indx, c.sbc, 6, false)
	case 0xE4:
		c.execute(c.zp, c.cpx, 3, false)
	case 0xE5:
		c.execute(c.zp, c.sbc, 3, false)
	case 0xE6:
		c.execute(c.zp, c.inc, 5, false)
	case 0xE8:
		c.execute(c.imp, c.inx, 2, false)
	case 0xE9:
		c.execute(c.imm, c.sbc, 2, false)
	case 0xEA:
		c.execute(c.imp, c.nop, 2, false)
	case 0xEC:
		c.execute(c.abs, c.cpx, 4, false)
	case 0xED:
		c.execute(c.abs, c.sbc, 4, false)
	case 0xEE:
		c.execute(c.abs, c.inc, 6, false)
	case 0xF0:
		c.execute(c.rel, c.beq, 2, false)
	case 0xF1:
		c.execute(c.indy, c.sbc, 5, true)
	case 0xF5:
		c.execute(c.zpx, c.sbc, 4, false)
	case 0xF6:
		c.execute(c.zpx, c.inc, 6, false)
	case 0xF8:
		c.execute(c.imp, c.sed, 2, false)
	case 0xF9:
		c.execute(c.absy, c.sbc, 4, true)
	case 0xFD:
		c.execute(c.absx, c.sbc, 4, true)
	case 0xFE:
		c.execute(c.absx, c.inc, 7, false)

	// Illegal opcodes used by commercial ROMs.
	case 0x03:
		c.execute(c.indx, c.slo, 8, false)
	case 0x07:
		c.execute(c.zp, c.slo, 5, false)
	case 0x0F:
		c.execute(c.abs, c.slo, 6, false)
	case 0x13:
		c.execute(c.indy, c.slo, 8, false)
	case 0x17:
		c.execute(c.zpx, c.slo, 6, false)
	case 0x1B:
		c.execute(c.absy, c.slo, 7, false)
	case 0x1F:
		c.execute(c.absx, c.slo, 7, false)
	case 0x23:
		c.execute(c.indx, c.rla, 8, false)
	case 0x27:
		c.execute(c.zp, c.rla, 5, false)
	case 0x2F:
		c.execute(c.abs, c.rla, 6, false)
	case 0x33:
		c.execute(c.indy, c.rla, 8, false)
	case 0x37:
		c.execute(c.zpx, c.rla, 6, false)
	case 0x3B:
		c.execute(c.absy, c.rla, 7, false)
	case 0x3F:
		c.execute(c.absx, c.rla, 7, false)
	case 0x43:
		c.execute(c.indx, c.sre, 8, false)
	case 0x47:
		c.execute(c.zp, c.sre, 5, false)
	case 0x4F:
		c.execute(c.abs, c.sre, 6, false)
	case 0x53:
		c.execute(c.indy, c.sre, 8, false)
	case 0x57:
		c.execute(c.zpx, c.sre, 6, false)
	case 0x5B:
		c.execute(c.absy, c.sre, 7, false)
	case 0x5F:
		c.execute(c.absx, c.sre, 7, false)
	case 0x63:
		c.execute(c.indx, c.rra, 8, false)
	case 0x67:
		c.execute(c.zp, c.rra, 5, false)
	case 0x6F:
		c.execute(c.abs, c.rra, 6, false)
	case 0x73:
		c.execute(c.indy, c.rra, 8, false)
	case 0x77:
		c.execute(c.zpx, c.rra, 6, false)
	case 0x7B:
		c.execute(c.absy, c.rra, 7, false)
	case 0x7F:
		c.execute(c.absx, c.rra, 7, false)
	case 0x83:
		c.execute(c.indx, c.sax, 6, false)
	case 0x87:
		c.execute(c.zp, c.sax, 3, false)
	case 0x8F:
		c.execute(c.abs, c.sax, 4, false)
	case 0x97:
		c.execute(c.zpy, c.sax, 4, false)
	case 0xA3:
		c.execute(c.indx, c.lax, 6, false)
	case 0xA7:
		c.execute(c.zp, c.lax, 3, false)
	case 0xAB:
		c.execute(c.imm, c.lax, 2, false)
	case 0xAF:
		c.execute(c.abs, c.lax, 4, false)
	case 0xB3:
		c.execute(c.indy, c.lax, 5, true)
	case 0xB7:
		c.execute(c.zpy, c.lax, 4, false)
	case 0xBF:
		c.execute(c.absy, c.lax, 4, true)
	case 0xC3:
		c.execute(c.indx, c.dcp, 8, false)
	case 0xC7:
		c.execute(c.zp, c.dcp, 5, false)
	case 0xCF:
		c.execute(c.abs, c.dcp, 6, false)
	case 0xD3:
		c.execute(c.indy, c.dcp, 8, false)
	case 0xD7:
		c.execute(c.zpx, c.dcp, 6, false)
	case 0xDB:
		c.execute(c.absy, c.dcp, 7, false)
	case 0xDF:
		c.execute(c.absx, c.dcp, 7, false)
	case 0xE3:
		c.execute(c.indx, c.isc, 8, false)
	case 0xE7:
		c.execute(c.zp, c.isc, 5, false)
	case 0xEB:
		c.execute(c.imm, c.sbc, 2, false)
	case 0xEF:
		c.execute(c.abs, c.isc, 6, false)
	case 0xF3:
		c.execute(c.indy, c.isc, 8, false)
	case 0xF7:
		c.execute(c.zpx, c.isc, 6, false)
	case 0xFB:
		c.execute(c.absy, c.isc, 7, false)
	case 0xFF:
		c.execute(c.absx, c.isc, 7, false)

	// Unofficial NOPs of every length.
	case 0x1A, 0x3A, 0x5A, 0x7A, 0xDA, 0xFA:
		c.execute(c.imp, c.nop, 2, false)
	case 0x80, 0x82, 0x89, 0xC2, 0xE2:
		c.execute(c.imm, c.nop, 2, false)
	case 0x04, 0x44, 0x64:
		c.execute(c.zp, c.nop, 3, false)
	case 0x14, 0x34, 0x54, 0x74, 0xD4, 0xF4:
		c.execute(c.zpx, c.nop, 4, false)
	case 0x0C:
		c.execute(c.abs, c.nop, 4, false)
	case 0x1C, 0x3C, 0x5C, 0x7C, 0xDC, 0xFC:
		c.execute(c.absx, c.nop, 4, true)

	default:
		log.Printf("cpu: unknown opcode 0x%02X at 0x%04X", opcode, c.PC)
		c.PC++
		c.cycles += 2
	}
}
