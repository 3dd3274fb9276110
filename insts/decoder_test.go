package insts_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/zshdevopscatftw/r4ksim/insts"
)

var _ = Describe("Decoder", func() {
	var decoder *insts.Decoder

	BeforeEach(func() {
		decoder = insts.NewDecoder()
	})

	Describe("I-type", func() {
		// ADDIU $t0, $zero, 10 -> 0x2408000A
		// Encoding: op=0x09, rs=0, rt=8, imm=10
		It("should decode ADDIU $t0, $zero, 10", func() {
			inst := decoder.Decode(0x2408000A)

			Expect(inst.Op).To(Equal(insts.OpADDIU))
			Expect(inst.Format).To(Equal(insts.FormatI))
			Expect(inst.Rs).To(Equal(uint8(0)))
			Expect(inst.Rt).To(Equal(uint8(8)))
			Expect(inst.Imm).To(Equal(uint16(10)))
		})

		// LUI $s1, 0x8010 -> 0x3C118010
		It("should decode LUI $s1, 0x8010", func() {
			inst := decoder.Decode(0x3C118010)

			Expect(inst.Op).To(Equal(insts.OpLUI))
			Expect(inst.Rt).To(Equal(uint8(17)))
			Expect(inst.Imm).To(Equal(uint16(0x8010)))
		})

		// BEQ $t0, $t3, +2 -> 0x110B0002
		It("should decode BEQ $t0, $t3, +2", func() {
			inst := decoder.Decode(0x110B0002)

			Expect(inst.Op).To(Equal(insts.OpBEQ))
			Expect(inst.Rs).To(Equal(uint8(8)))
			Expect(inst.Rt).To(Equal(uint8(11)))
			Expect(inst.SignedImm()).To(Equal(int32(2)))
		})

		// BNE $t0, $zero, -3 -> 0x1500FFFD
		It("should sign-extend negative branch offsets", func() {
			inst := decoder.Decode(0x1500FFFD)

			Expect(inst.Op).To(Equal(insts.OpBNE))
			Expect(inst.Rs).To(Equal(uint8(8)))
			Expect(inst.SignedImm()).To(Equal(int32(-3)))
		})

		// LW $s2, 0($s1) -> 0x8E320000
		It("should decode LW $s2, 0($s1)", func() {
			inst := decoder.Decode(0x8E320000)

			Expect(inst.Op).To(Equal(insts.OpLW))
			Expect(inst.Rs).To(Equal(uint8(17)))
			Expect(inst.Rt).To(Equal(uint8(18)))
			Expect(inst.Imm).To(Equal(uint16(0)))
		})

		// SW $t2, 0($s1) -> 0xAE2A0000
		It("should decode SW $t2, 0($s1)", func() {
			inst := decoder.Decode(0xAE2A0000)

			Expect(inst.Op).To(Equal(insts.OpSW))
			Expect(inst.Rs).To(Equal(uint8(17)))
			Expect(inst.Rt).To(Equal(uint8(10)))
		})
	})

	Describe("SPECIAL (R-type)", func() {
		// ADDU $t2, $t0, $t1 -> 0x01095021
		It("should decode ADDU $t2, $t0, $t1", func() {
			inst := decoder.Decode(0x01095021)

			Expect(inst.Op).To(Equal(insts.OpADDU))
			Expect(inst.Format).To(Equal(insts.FormatR))
			Expect(inst.Rs).To(Equal(uint8(8)))
			Expect(inst.Rt).To(Equal(uint8(9)))
			Expect(inst.Rd).To(Equal(uint8(10)))
		})

		// SLL $t7, $t0, 2 -> 0x00087880
		It("should decode SLL $t7, $t0, 2", func() {
			inst := decoder.Decode(0x00087880)

			Expect(inst.Op).To(Equal(insts.OpSLL))
			Expect(inst.Rt).To(Equal(uint8(8)))
			Expect(inst.Rd).To(Equal(uint8(15)))
			Expect(inst.Shamt).To(Equal(uint8(2)))
		})

		// SRA $t1, $t0, 4 -> 0x00084903
		It("should decode SRA $t1, $t0, 4", func() {
			inst := decoder.Decode(0x00084903)

			Expect(inst.Op).To(Equal(insts.OpSRA))
			Expect(inst.Rt).To(Equal(uint8(8)))
			Expect(inst.Rd).To(Equal(uint8(9)))
			Expect(inst.Shamt).To(Equal(uint8(4)))
		})

		// JR $ra -> 0x03E00008
		It("should decode JR $ra", func() {
			inst := decoder.Decode(0x03E00008)

			Expect(inst.Op).To(Equal(insts.OpJR))
			Expect(inst.Rs).To(Equal(uint8(31)))
		})

		// JALR $t9 -> 0x0320F809
		It("should decode JALR $t9", func() {
			inst := decoder.Decode(0x0320F809)

			Expect(inst.Op).To(Equal(insts.OpJALR))
			Expect(inst.Rs).To(Equal(uint8(25)))
			Expect(inst.Rd).To(Equal(uint8(31)))
		})

		It("should decode SYSCALL and BREAK", func() {
			Expect(decoder.Decode(0x0000000C).Op).To(Equal(insts.OpSYSCALL))
			Expect(decoder.Decode(0x0000000D).Op).To(Equal(insts.OpBREAK))
		})

		It("should decode the multiply and divide family", func() {
			Expect(decoder.Decode(0x01090018).Op).To(Equal(insts.OpMULT))
			Expect(decoder.Decode(0x01090019).Op).To(Equal(insts.OpMULTU))
			Expect(decoder.Decode(0x0109001A).Op).To(Equal(insts.OpDIV))
			Expect(decoder.Decode(0x0109001B).Op).To(Equal(insts.OpDIVU))
			Expect(decoder.Decode(0x00008010).Op).To(Equal(insts.OpMFHI))
			Expect(decoder.Decode(0x00008012).Op).To(Equal(insts.OpMFLO))
		})
	})

	Describe("J-type", func() {
		// J 0x100 -> 0x08000100
		It("should decode J", func() {
			inst := decoder.Decode(0x08000100)

			Expect(inst.Op).To(Equal(insts.OpJ))
			Expect(inst.Format).To(Equal(insts.FormatJ))
			Expect(inst.Target).To(Equal(uint32(0x100)))
		})

		// JAL 0x100 -> 0x0C000100
		It("should decode JAL", func() {
			inst := decoder.Decode(0x0C000100)

			Expect(inst.Op).To(Equal(insts.OpJAL))
			Expect(inst.Target).To(Equal(uint32(0x100)))
		})
	})

	Describe("COP0", func() {
		// MFC0 $t0, $12 -> 0x40086000
		It("should decode MFC0 $t0, $12", func() {
			inst := decoder.Decode(0x40086000)

			Expect(inst.Op).To(Equal(insts.OpMFC0))
			Expect(inst.Format).To(Equal(insts.FormatCop0))
			Expect(inst.Rt).To(Equal(uint8(8)))
			Expect(inst.Rd).To(Equal(uint8(12)))
		})

		// MTC0 $t0, $12 -> 0x40886000
		It("should decode MTC0 $t0, $12", func() {
			inst := decoder.Decode(0x40886000)

			Expect(inst.Op).To(Equal(insts.OpMTC0))
			Expect(inst.Rt).To(Equal(uint8(8)))
			Expect(inst.Rd).To(Equal(uint8(12)))
		})

		It("should leave unsupported COP0 sub-operations unknown", func() {
			// ERET -> 0x42000018
			Expect(decoder.Decode(0x42000018).Op).To(Equal(insts.OpUnknown))
		})
	})

	Describe("Unknown encodings", func() {
		It("should decode unrecognized primary opcodes to OpUnknown", func() {
			inst := decoder.Decode(0xFC000000) // opcode 0x3F

			Expect(inst.Op).To(Equal(insts.OpUnknown))
			Expect(inst.Format).To(Equal(insts.FormatUnknown))
		})

		It("should decode unrecognized SPECIAL functions to OpUnknown", func() {
			Expect(decoder.Decode(0x0000003F).Op).To(Equal(insts.OpUnknown))
		})

		It("should still extract the raw bit-fields", func() {
			inst := decoder.Decode(0xFD2B4567)

			Expect(inst.Opcode).To(Equal(uint8(0x3F)))
			Expect(inst.Rs).To(Equal(uint8((0xFD2B4567 >> 21) & 0x1F)))
			Expect(inst.Rt).To(Equal(uint8((0xFD2B4567 >> 16) & 0x1F)))
			Expect(inst.Imm).To(Equal(uint16(0x4567)))
		})
	})
})
