// Package emu provides functional MIPS R4300i emulation.
package emu

// ALU implements MIPS integer arithmetic, logic, shift, and
// multiply/divide operations against a register file.
//
// All results wrap mod 2^32. ADD and ADDI do not raise overflow
// exceptions; they behave identically to their unsigned forms, which
// matches the interpreter's no-fault policy.
type ALU struct {
	regFile *RegFile
}

// NewALU creates an ALU connected to the given register file.
func NewALU(regFile *RegFile) *ALU {
	return &ALU{regFile: regFile}
}

// SLL shifts rt left by shamt into rd.
func (a *ALU) SLL(rd, rt, shamt uint8) {
	a.regFile.WriteReg(rd, a.regFile.ReadReg(rt)<<(shamt&0x1F))
}

// SRL shifts rt right logically by shamt into rd.
func (a *ALU) SRL(rd, rt, shamt uint8) {
	a.regFile.WriteReg(rd, a.regFile.ReadReg(rt)>>(shamt&0x1F))
}

// SRA shifts rt right arithmetically by shamt into rd.
func (a *ALU) SRA(rd, rt, shamt uint8) {
	a.regFile.WriteReg(rd, uint32(int32(a.regFile.ReadReg(rt))>>(shamt&0x1F)))
}

// SLLV shifts rt left by the low 5 bits of rs into rd.
func (a *ALU) SLLV(rd, rt, rs uint8) {
	a.regFile.WriteReg(rd, a.regFile.ReadReg(rt)<<(a.regFile.ReadReg(rs)&0x1F))
}

// SRLV shifts rt right logically by the low 5 bits of rs into rd.
func (a *ALU) SRLV(rd, rt, rs uint8) {
	a.regFile.WriteReg(rd, a.regFile.ReadReg(rt)>>(a.regFile.ReadReg(rs)&0x1F))
}

// ADDU adds rs and rt into rd.
func (a *ALU) ADDU(rd, rs, rt uint8) {
	a.regFile.WriteReg(rd, a.regFile.ReadReg(rs)+a.regFile.ReadReg(rt))
}

// SUBU subtracts rt from rs into rd.
func (a *ALU) SUBU(rd, rs, rt uint8) {
	a.regFile.WriteReg(rd, a.regFile.ReadReg(rs)-a.regFile.ReadReg(rt))
}

// AND computes rs & rt into rd.
func (a *ALU) AND(rd, rs, rt uint8) {
	a.regFile.WriteReg(rd, a.regFile.ReadReg(rs)&a.regFile.ReadReg(rt))
}

// OR computes rs | rt into rd.
func (a *ALU) OR(rd, rs, rt uint8) {
	a.regFile.WriteReg(rd, a.regFile.ReadReg(rs)|a.regFile.ReadReg(rt))
}

// XOR computes rs ^ rt into rd.
func (a *ALU) XOR(rd, rs, rt uint8) {
	a.regFile.WriteReg(rd, a.regFile.ReadReg(rs)^a.regFile.ReadReg(rt))
}

// NOR computes ^(rs | rt) into rd.
func (a *ALU) NOR(rd, rs, rt uint8) {
	a.regFile.WriteReg(rd, ^(a.regFile.ReadReg(rs) | a.regFile.ReadReg(rt)))
}

// SLT sets rd to 1 if rs < rt as signed values, else 0.
func (a *ALU) SLT(rd, rs, rt uint8) {
	if int32(a.regFile.ReadReg(rs)) < int32(a.regFile.ReadReg(rt)) {
		a.regFile.WriteReg(rd, 1)
	} else {
		a.regFile.WriteReg(rd, 0)
	}
}

// SLTU sets rd to 1 if rs < rt as unsigned values, else 0.
func (a *ALU) SLTU(rd, rs, rt uint8) {
	if a.regFile.ReadReg(rs) < a.regFile.ReadReg(rt) {
		a.regFile.WriteReg(rd, 1)
	} else {
		a.regFile.WriteReg(rd, 0)
	}
}

// ADDIU adds the sign-extended immediate to rs into rt.
func (a *ALU) ADDIU(rt, rs uint8, imm int32) {
	a.regFile.WriteReg(rt, a.regFile.ReadReg(rs)+uint32(imm))
}

// SLTI sets rt to 1 if rs < sign-extended imm as signed values, else 0.
func (a *ALU) SLTI(rt, rs uint8, imm int32) {
	if int32(a.regFile.ReadReg(rs)) < imm {
		a.regFile.WriteReg(rt, 1)
	} else {
		a.regFile.WriteReg(rt, 0)
	}
}

// SLTIU sets rt to 1 if rs < sign-extended imm as unsigned values,
// else 0. The immediate is sign-extended first, then compared
// unsigned, per the MIPS definition.
func (a *ALU) SLTIU(rt, rs uint8, imm int32) {
	if a.regFile.ReadReg(rs) < uint32(imm) {
		a.regFile.WriteReg(rt, 1)
	} else {
		a.regFile.WriteReg(rt, 0)
	}
}

// ANDI computes rs & zero-extended imm into rt.
func (a *ALU) ANDI(rt, rs uint8, imm uint16) {
	a.regFile.WriteReg(rt, a.regFile.ReadReg(rs)&uint32(imm))
}

// ORI computes rs | zero-extended imm into rt.
func (a *ALU) ORI(rt, rs uint8, imm uint16) {
	a.regFile.WriteReg(rt, a.regFile.ReadReg(rs)|uint32(imm))
}

// XORI computes rs ^ zero-extended imm into rt.
func (a *ALU) XORI(rt, rs uint8, imm uint16) {
	a.regFile.WriteReg(rt, a.regFile.ReadReg(rs)^uint32(imm))
}

// LUI loads imm << 16 into rt.
func (a *ALU) LUI(rt uint8, imm uint16) {
	a.regFile.WriteReg(rt, uint32(imm)<<16)
}

// MULT computes the signed 64-bit product of rs and rt into HI:LO.
func (a *ALU) MULT(rs, rt uint8) {
	product := int64(int32(a.regFile.ReadReg(rs))) * int64(int32(a.regFile.ReadReg(rt)))
	a.regFile.LO = uint32(product)
	a.regFile.HI = uint32(uint64(product) >> 32)
}

// MULTU computes the unsigned 64-bit product of rs and rt into HI:LO.
func (a *ALU) MULTU(rs, rt uint8) {
	product := uint64(a.regFile.ReadReg(rs)) * uint64(a.regFile.ReadReg(rt))
	a.regFile.LO = uint32(product)
	a.regFile.HI = uint32(product >> 32)
}

// DIV computes the signed quotient into LO and remainder into HI.
// A zero divisor leaves HI and LO unchanged; there is no trap.
func (a *ALU) DIV(rs, rt uint8) {
	divisor := int32(a.regFile.ReadReg(rt))
	if divisor == 0 {
		return
	}
	dividend := int32(a.regFile.ReadReg(rs))
	a.regFile.LO = uint32(dividend / divisor)
	a.regFile.HI = uint32(dividend % divisor)
}

// DIVU computes the unsigned quotient into LO and remainder into HI.
// A zero divisor leaves HI and LO unchanged; there is no trap.
func (a *ALU) DIVU(rs, rt uint8) {
	divisor := a.regFile.ReadReg(rt)
	if divisor == 0 {
		return
	}
	dividend := a.regFile.ReadReg(rs)
	a.regFile.LO = dividend / divisor
	a.regFile.HI = dividend % divisor
}

// MFHI copies HI into rd.
func (a *ALU) MFHI(rd uint8) {
	a.regFile.WriteReg(rd, a.regFile.HI)
}

// MTHI copies rs into HI.
func (a *ALU) MTHI(rs uint8) {
	a.regFile.HI = a.regFile.ReadReg(rs)
}

// MFLO copies LO into rd.
func (a *ALU) MFLO(rd uint8) {
	a.regFile.WriteReg(rd, a.regFile.LO)
}

// MTLO copies rs into LO.
func (a *ALU) MTLO(rs uint8) {
	a.regFile.LO = a.regFile.ReadReg(rs)
}
