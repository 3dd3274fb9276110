// Package emu provides functional MIPS R4300i emulation.
package emu

// BranchUnit implements MIPS control-flow operations with delay-slot
// semantics.
//
// A branch or jump never redirects the current step. It records its
// target as pending; the instruction physically following the branch
// (the delay slot) executes once more, and the pending target becomes
// the PC on the step after that. Scheduling a second branch while one
// is pending overwrites the pending target; real MIPS leaves that
// sequence undefined and no supported image relies on it.
type BranchUnit struct {
	regFile *RegFile

	pending bool
	target  uint32
}

// NewBranchUnit creates a BranchUnit connected to the given register
// file.
func NewBranchUnit(regFile *RegFile) *BranchUnit {
	return &BranchUnit{regFile: regFile}
}

// Pending reports whether a branch target is outstanding.
func (b *BranchUnit) Pending() bool {
	return b.pending
}

// NextPC consumes the pending branch, if any, and returns the address
// of the next instruction to execute after the current one.
func (b *BranchUnit) NextPC() uint32 {
	if b.pending {
		b.pending = false
		return b.target
	}
	return b.regFile.PC + 4
}

// schedule records a branch target to take effect after the delay
// slot.
func (b *BranchUnit) schedule(target uint32) {
	b.pending = true
	b.target = target
}

// JR branches to the address in rs.
func (b *BranchUnit) JR(rs uint8) {
	b.schedule(b.regFile.ReadReg(rs))
}

// JALR links PC+8 into rd (past the delay slot), then branches to the
// address in rs.
func (b *BranchUnit) JALR(rd, rs uint8) {
	target := b.regFile.ReadReg(rs)
	b.regFile.WriteReg(rd, b.regFile.PC+8)
	b.schedule(target)
}

// J branches to the 26-bit target within the current 256 MiB region:
// (PC+4 high 4 bits) | (target << 2).
func (b *BranchUnit) J(target uint32) {
	b.schedule(((b.regFile.PC + 4) & 0xF0000000) | (target << 2))
}

// JAL links PC+8 into $ra, then branches like J.
func (b *BranchUnit) JAL(target uint32) {
	b.regFile.WriteReg(RegRA, b.regFile.PC+8)
	b.J(target)
}

// BEQ branches to PC+4 + (imm << 2) if rs == rt.
func (b *BranchUnit) BEQ(rs, rt uint8, imm int32) {
	if b.regFile.ReadReg(rs) == b.regFile.ReadReg(rt) {
		b.scheduleRelative(imm)
	}
}

// BNE branches if rs != rt.
func (b *BranchUnit) BNE(rs, rt uint8, imm int32) {
	if b.regFile.ReadReg(rs) != b.regFile.ReadReg(rt) {
		b.scheduleRelative(imm)
	}
}

// BLEZ branches if rs <= 0 as a signed value.
func (b *BranchUnit) BLEZ(rs uint8, imm int32) {
	if int32(b.regFile.ReadReg(rs)) <= 0 {
		b.scheduleRelative(imm)
	}
}

// BGTZ branches if rs > 0 as a signed value.
func (b *BranchUnit) BGTZ(rs uint8, imm int32) {
	if int32(b.regFile.ReadReg(rs)) > 0 {
		b.scheduleRelative(imm)
	}
}

// scheduleRelative records a branch to PC+4 + (imm << 2).
func (b *BranchUnit) scheduleRelative(imm int32) {
	b.schedule(b.regFile.PC + 4 + uint32(imm<<2))
}
