// Package insts provides MIPS R4300i instruction definitions and decoding.
//
// This package implements decoding of 32-bit MIPS machine words into
// structured instruction representations. It supports:
//   - SPECIAL (R-type): shifts, jumps-through-register, ALU, MULT/DIV,
//     HI/LO moves, SYSCALL, BREAK
//   - I-type: immediate ALU, branches, loads, stores
//   - J-type: J, JAL
//   - COP0: MFC0, MTC0
//
// Usage:
//
//	decoder := insts.NewDecoder()
//	inst := decoder.Decode(0x2408000A) // ADDIU $t0, $zero, 10
//	fmt.Printf("Op: %v, Rt: %d, Imm: %d\n", inst.Op, inst.Rt, inst.Imm)
package insts

// Op represents a MIPS operation.
type Op uint16

// MIPS operations.
const (
	OpUnknown Op = iota
	OpSLL
	OpSRL
	OpSRA
	OpSLLV
	OpSRLV
	OpJR
	OpJALR
	OpSYSCALL
	OpBREAK
	OpMFHI
	OpMTHI
	OpMFLO
	OpMTLO
	OpMULT
	OpMULTU
	OpDIV
	OpDIVU
	OpADD
	OpADDU
	OpSUB
	OpSUBU
	OpAND
	OpOR
	OpXOR
	OpNOR
	OpSLT
	OpSLTU
	OpJ
	OpJAL
	OpBEQ
	OpBNE
	OpBLEZ
	OpBGTZ
	OpADDI
	OpADDIU
	OpSLTI
	OpSLTIU
	OpANDI
	OpORI
	OpXORI
	OpLUI
	OpLB
	OpLH
	OpLW
	OpLBU
	OpLHU
	OpSB
	OpSH
	OpSW
	OpMFC0
	OpMTC0
)

var opNames = [...]string{
	OpUnknown: "UNKNOWN",
	OpSLL:     "SLL",
	OpSRL:     "SRL",
	OpSRA:     "SRA",
	OpSLLV:    "SLLV",
	OpSRLV:    "SRLV",
	OpJR:      "JR",
	OpJALR:    "JALR",
	OpSYSCALL: "SYSCALL",
	OpBREAK:   "BREAK",
	OpMFHI:    "MFHI",
	OpMTHI:    "MTHI",
	OpMFLO:    "MFLO",
	OpMTLO:    "MTLO",
	OpMULT:    "MULT",
	OpMULTU:   "MULTU",
	OpDIV:     "DIV",
	OpDIVU:    "DIVU",
	OpADD:     "ADD",
	OpADDU:    "ADDU",
	OpSUB:     "SUB",
	OpSUBU:    "SUBU",
	OpAND:     "AND",
	OpOR:      "OR",
	OpXOR:     "XOR",
	OpNOR:     "NOR",
	OpSLT:     "SLT",
	OpSLTU:    "SLTU",
	OpJ:       "J",
	OpJAL:     "JAL",
	OpBEQ:     "BEQ",
	OpBNE:     "BNE",
	OpBLEZ:    "BLEZ",
	OpBGTZ:    "BGTZ",
	OpADDI:    "ADDI",
	OpADDIU:   "ADDIU",
	OpSLTI:    "SLTI",
	OpSLTIU:   "SLTIU",
	OpANDI:    "ANDI",
	OpORI:     "ORI",
	OpXORI:    "XORI",
	OpLUI:     "LUI",
	OpLB:      "LB",
	OpLH:      "LH",
	OpLW:      "LW",
	OpLBU:     "LBU",
	OpLHU:     "LHU",
	OpSB:      "SB",
	OpSH:      "SH",
	OpSW:      "SW",
	OpMFC0:    "MFC0",
	OpMTC0:    "MTC0",
}

// String returns the mnemonic for the operation.
func (o Op) String() string {
	if int(o) < len(opNames) {
		return opNames[o]
	}
	return "UNKNOWN"
}

// Format represents an instruction encoding format.
type Format uint8

// Instruction formats.
const (
	FormatUnknown Format = iota
	FormatR             // SPECIAL register format
	FormatI             // immediate format (ALU imm, branch, load, store)
	FormatJ             // 26-bit jump target format
	FormatCop0          // coprocessor 0 moves
)

// Instruction represents a decoded MIPS instruction.
//
// All fixed bit-fields are extracted regardless of format, matching
// the hardware decode: opcode [31:26], rs [25:21], rt [20:16],
// rd [15:11], shamt [10:6], funct [5:0], imm [15:0], target [25:0].
type Instruction struct {
	Op     Op     // Classified operation
	Format Format // Encoding format

	Opcode uint8 // 6-bit primary opcode
	Rs     uint8 // Source register
	Rt     uint8 // Target register
	Rd     uint8 // Destination register
	Shamt  uint8 // 5-bit shift amount
	Funct  uint8 // 6-bit function code (SPECIAL)

	Imm    uint16 // 16-bit immediate
	Target uint32 // 26-bit jump target
}

// SignedImm returns the 16-bit immediate sign-extended to 32 bits.
func (i *Instruction) SignedImm() int32 {
	return int32(int16(i.Imm))
}
