// Package emu provides functional MIPS R4300i emulation.
package emu

// MIPS ABI register indices used by the interpreter.
const (
	RegZero = 0  // $zero, hard-wired to zero
	RegV0   = 2  // $v0, syscall number
	RegA0   = 4  // $a0, first syscall argument
	RegGP   = 28 // $gp, global pointer
	RegSP   = 29 // $sp, stack pointer
	RegRA   = 31 // $ra, link register
)

// CP0 register indices.
const (
	CP0Status = 12 // Status register
	CP0PRId   = 15 // Processor revision identifier
)

// CP0 reset values.
const (
	CP0StatusReset = 0x34000000
	CP0PRIdR4300i  = 0x00000B22
)

// Conventional pointer presets applied when an image is loaded.
const (
	InitialSP = 0x801F0000
	InitialGP = 0x80000000
)

// RegFile represents the MIPS register file: 32 general-purpose
// registers, HI/LO for multiply and divide results, the program
// counter, and a 32-slot coprocessor 0 bank.
//
// GPR[0] is the $zero register. The interpreter forces it back to zero
// unconditionally at the end of every step, which is cheaper than
// guarding each write and equivalent since nothing legitimately
// depends on it being writable.
type RegFile struct {
	// GPR holds general-purpose registers $0-$31. Arithmetic wraps
	// mod 2^32 throughout.
	GPR [32]uint32

	// HI and LO hold multiply/divide results.
	HI uint32
	LO uint32

	// PC is the program counter (byte address).
	PC uint32

	// CP0 is the coprocessor 0 register bank. Reads and writes only,
	// no side effects modeled.
	CP0 [32]uint32
}

// ReadReg reads a general-purpose register.
func (r *RegFile) ReadReg(reg uint8) uint32 {
	return r.GPR[reg&0x1F]
}

// WriteReg writes a general-purpose register.
func (r *RegFile) WriteReg(reg uint8, value uint32) {
	r.GPR[reg&0x1F] = value
}

// ReadCP0 reads a coprocessor 0 register.
func (r *RegFile) ReadCP0(reg uint8) uint32 {
	return r.CP0[reg&0x1F]
}

// WriteCP0 writes a coprocessor 0 register.
func (r *RegFile) WriteCP0(reg uint8, value uint32) {
	r.CP0[reg&0x1F] = value
}
