package rom

// TestROM builds the CPU verification image: a short program
// exercising arithmetic, logic, shifts, multiply, memory round-trips,
// a branch with its delay slot, and set-on-less-than, folding the key
// results into $v0 before halting with BREAK.
//
// The code body starts at HeaderSize. Register expectations after a
// run from that entry point: $t2=30, $t3=10, $t6=0x0F00, $t7=40,
// $s0=200, $s2=30, $s3=0, $s4=1, $v0=241.
func TestROM() []byte {
	b := NewBuilder("CPU TEST ROM", "TEST", 0xDEADBEEF, 0xCAFEBABE)

	// Basic arithmetic
	b.Emit(IType(0x09, 0, 8, 10))       // ADDIU $t0, $zero, 10
	b.Emit(IType(0x09, 0, 9, 20))       // ADDIU $t1, $zero, 20
	b.Emit(RType(8, 9, 10, 0, 0x21))    // ADDU $t2, $t0, $t1
	b.Emit(RType(9, 8, 11, 0, 0x23))    // SUBU $t3, $t1, $t0

	// Logical operations
	b.Emit(IType(0x0D, 0, 12, 0xFF00))  // ORI $t4, $zero, 0xFF00
	b.Emit(IType(0x0D, 0, 13, 0x0FF0))  // ORI $t5, $zero, 0x0FF0
	b.Emit(RType(12, 13, 14, 0, 0x24))  // AND $t6, $t4, $t5

	// Shift
	b.Emit(RType(0, 8, 15, 2, 0x00))    // SLL $t7, $t0, 2

	// Multiply
	b.Emit(RType(8, 9, 0, 0, 0x18))     // MULT $t0, $t1
	b.Emit(RType(0, 0, 16, 0, 0x12))    // MFLO $s0

	// Memory round-trip
	b.Emit(IType(0x0F, 0, 17, 0x8010))  // LUI $s1, 0x8010
	b.Emit(IType(0x2B, 17, 10, 0))      // SW $t2, 0($s1)
	b.Emit(IType(0x23, 17, 18, 0))      // LW $s2, 0($s1)

	// Branch with delay slot; the 999 write is skipped
	b.Emit(IType(0x09, 0, 19, 0))       // ADDIU $s3, $zero, 0
	b.Emit(IType(0x04, 8, 11, 2))       // BEQ $t0, $t3, +2
	b.Emit(IType(0x09, 0, 0, 0))        // NOP (delay slot)
	b.Emit(IType(0x09, 0, 19, 999))     // ADDIU $s3, $zero, 999 (skipped)

	// Set on less than
	b.Emit(RType(8, 9, 20, 0, 0x2A))    // SLT $s4, $t0, $t1

	// Checksum into $v0
	b.Emit(RType(10, 11, 2, 0, 0x21))   // ADDU $v0, $t2, $t3
	b.Emit(RType(2, 16, 2, 0, 0x21))    // ADDU $v0, $v0, $s0
	b.Emit(RType(2, 20, 2, 0, 0x21))    // ADDU $v0, $v0, $s4

	b.Emit(RType(0, 0, 0, 0, 0x0D))     // BREAK

	return b.Build()
}
