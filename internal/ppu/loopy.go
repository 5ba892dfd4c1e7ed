package ppu

// loopy is the 2C02's internal scroll/address register, the 15-bit
// composite commonly named after its discoverer. Keeping the fields
// unpacked makes the increment/copy rules legible; Pack and Set convert
// to and from the wire layout:
//
//	yyy NN YYYYY XXXXX
//	||| || ||||| +++++-- coarse X
//	||| || +++++-------- coarse Y
//	||| ++-------------- nametable select
//	+++----------------- fine Y
type loopy struct {
	coarseX    uint8 // 5 bits
	coarseY    uint8 // 5 bits
	nametableX uint8 // 1 bit
	nametableY uint8 // 1 bit
	fineY      uint8 // 3 bits
}

// Pack folds the fields into the 15-bit register value.
func (l loopy) Pack() uint16 {
	return uint16(l.coarseX)&0x1F |
		(uint16(l.coarseY)&0x1F)<<5 |
		(uint16(l.nametableX)&0x01)<<10 |
		(uint16(l.nametableY)&0x01)<<11 |
		(uint16(l.fineY)&0x07)<<12
}

// Set unpacks a register value into the fields. Bit 15 is discarded.
func (l *loopy) Set(v uint16) {
	l.coarseX = uint8(v & 0x1F)
	l.coarseY = uint8(v >> 5 & 0x1F)
	l.nametableX = uint8(v >> 10 & 0x01)
	l.nametableY = uint8(v >> 11 & 0x01)
	l.fineY = uint8(v >> 12 & 0x07)
}
