// Package emu provides functional MIPS R4300i emulation.
package emu

// LoadStoreUnit implements MIPS load and store operations. Every
// access computes its effective address as rs + sign-extended
// immediate; bounds handling is Memory's degrade-to-zero policy.
type LoadStoreUnit struct {
	regFile *RegFile
	memory  *Memory
}

// NewLoadStoreUnit creates a LoadStoreUnit connected to the given
// register file and memory.
func NewLoadStoreUnit(regFile *RegFile, memory *Memory) *LoadStoreUnit {
	return &LoadStoreUnit{regFile: regFile, memory: memory}
}

func (l *LoadStoreUnit) effectiveAddr(rs uint8, imm int32) uint32 {
	return l.regFile.ReadReg(rs) + uint32(imm)
}

// LB loads a sign-extended byte into rt.
func (l *LoadStoreUnit) LB(rt, rs uint8, imm int32) {
	value := l.memory.Read8(l.effectiveAddr(rs, imm))
	l.regFile.WriteReg(rt, uint32(int32(int8(value))))
}

// LH loads a sign-extended halfword into rt.
func (l *LoadStoreUnit) LH(rt, rs uint8, imm int32) {
	value := l.memory.Read16(l.effectiveAddr(rs, imm))
	l.regFile.WriteReg(rt, uint32(int32(int16(value))))
}

// LW loads a word into rt.
func (l *LoadStoreUnit) LW(rt, rs uint8, imm int32) {
	l.regFile.WriteReg(rt, l.memory.Read32(l.effectiveAddr(rs, imm)))
}

// LBU loads a zero-extended byte into rt.
func (l *LoadStoreUnit) LBU(rt, rs uint8, imm int32) {
	l.regFile.WriteReg(rt, uint32(l.memory.Read8(l.effectiveAddr(rs, imm))))
}

// LHU loads a zero-extended halfword into rt.
func (l *LoadStoreUnit) LHU(rt, rs uint8, imm int32) {
	l.regFile.WriteReg(rt, uint32(l.memory.Read16(l.effectiveAddr(rs, imm))))
}

// SB stores the low byte of rt.
func (l *LoadStoreUnit) SB(rt, rs uint8, imm int32) {
	l.memory.Write8(l.effectiveAddr(rs, imm), uint8(l.regFile.ReadReg(rt)))
}

// SH stores the low halfword of rt.
func (l *LoadStoreUnit) SH(rt, rs uint8, imm int32) {
	l.memory.Write16(l.effectiveAddr(rs, imm), uint16(l.regFile.ReadReg(rt)))
}

// SW stores rt.
func (l *LoadStoreUnit) SW(rt, rs uint8, imm int32) {
	l.memory.Write32(l.effectiveAddr(rs, imm), l.regFile.ReadReg(rt))
}
