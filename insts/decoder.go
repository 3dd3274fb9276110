// Package insts provides MIPS R4300i instruction definitions and decoding.
package insts

// Decoder decodes MIPS machine code into instructions.
type Decoder struct{}

// NewDecoder creates a new MIPS instruction decoder.
func NewDecoder() *Decoder {
	return &Decoder{}
}

// Decode decodes a 32-bit MIPS instruction word.
//
// Encodings that do not map to a supported operation decode to
// OpUnknown rather than failing. The permissive policy is load-bearing:
// synthetic images exercise a small opcode subset and the interpreter
// treats unrecognized words as no-ops.
func (d *Decoder) Decode(word uint32) *Instruction {
	inst := &Instruction{
		Op:     OpUnknown,
		Format: FormatUnknown,
		Opcode: uint8((word >> 26) & 0x3F),
		Rs:     uint8((word >> 21) & 0x1F),
		Rt:     uint8((word >> 16) & 0x1F),
		Rd:     uint8((word >> 11) & 0x1F),
		Shamt:  uint8((word >> 6) & 0x1F),
		Funct:  uint8(word & 0x3F),
		Imm:    uint16(word & 0xFFFF),
		Target: word & 0x3FFFFFF,
	}

	switch inst.Opcode {
	case 0x00:
		d.decodeSpecial(inst)
	case 0x02, 0x03:
		d.decodeJump(inst)
	case 0x10:
		d.decodeCop0(inst)
	default:
		d.decodeImmediate(inst)
	}

	return inst
}

// decodeSpecial classifies SPECIAL (opcode 0) instructions by their
// 6-bit function code.
func (d *Decoder) decodeSpecial(inst *Instruction) {
	op, ok := specialOps[inst.Funct]
	if !ok {
		return
	}
	inst.Op = op
	inst.Format = FormatR
}

// decodeJump classifies J-type instructions.
func (d *Decoder) decodeJump(inst *Instruction) {
	inst.Format = FormatJ
	if inst.Opcode == 0x02 {
		inst.Op = OpJ
	} else {
		inst.Op = OpJAL
	}
}

// decodeCop0 classifies COP0 moves. The rs field selects the transfer
// direction: 0x00 is MFC0, 0x04 is MTC0. Other COP0 sub-operations
// (TLB maintenance, ERET) are not modeled and stay OpUnknown.
func (d *Decoder) decodeCop0(inst *Instruction) {
	switch inst.Rs {
	case 0x00:
		inst.Op = OpMFC0
		inst.Format = FormatCop0
	case 0x04:
		inst.Op = OpMTC0
		inst.Format = FormatCop0
	}
}

// decodeImmediate classifies I-type instructions by their primary
// opcode.
func (d *Decoder) decodeImmediate(inst *Instruction) {
	op, ok := immediateOps[inst.Opcode]
	if !ok {
		return
	}
	inst.Op = op
	inst.Format = FormatI
}

// specialOps maps SPECIAL function codes to operations.
var specialOps = map[uint8]Op{
	0x00: OpSLL,
	0x02: OpSRL,
	0x03: OpSRA,
	0x04: OpSLLV,
	0x06: OpSRLV,
	0x08: OpJR,
	0x09: OpJALR,
	0x0C: OpSYSCALL,
	0x0D: OpBREAK,
	0x10: OpMFHI,
	0x11: OpMTHI,
	0x12: OpMFLO,
	0x13: OpMTLO,
	0x18: OpMULT,
	0x19: OpMULTU,
	0x1A: OpDIV,
	0x1B: OpDIVU,
	0x20: OpADD,
	0x21: OpADDU,
	0x22: OpSUB,
	0x23: OpSUBU,
	0x24: OpAND,
	0x25: OpOR,
	0x26: OpXOR,
	0x27: OpNOR,
	0x2A: OpSLT,
	0x2B: OpSLTU,
}

// immediateOps maps primary opcodes to I-type operations.
var immediateOps = map[uint8]Op{
	0x04: OpBEQ,
	0x05: OpBNE,
	0x06: OpBLEZ,
	0x07: OpBGTZ,
	0x08: OpADDI,
	0x09: OpADDIU,
	0x0A: OpSLTI,
	0x0B: OpSLTIU,
	0x0C: OpANDI,
	0x0D: OpORI,
	0x0E: OpXORI,
	0x0F: OpLUI,
	0x20: OpLB,
	0x21: OpLH,
	0x23: OpLW,
	0x24: OpLBU,
	0x25: OpLHU,
	0x28: OpSB,
	0x29: OpSH,
	0x2B: OpSW,
}
