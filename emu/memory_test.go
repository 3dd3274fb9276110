package emu_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/zshdevopscatftw/r4ksim/emu"
)

var _ = Describe("Memory", func() {
	var m *emu.Memory

	BeforeEach(func() {
		m = emu.NewMemory()
	})

	It("should default to 4 MiB", func() {
		Expect(m.Size()).To(Equal(uint32(4 * 1024 * 1024)))
	})

	Describe("word access", func() {
		It("should round-trip a word in bounds", func() {
			m.Write32(0x1000, 0xDEADBEEF)
			Expect(m.Read32(0x1000)).To(Equal(uint32(0xDEADBEEF)))
		})

		It("should store big-endian", func() {
			m.Write32(0x2000, 0x11223344)

			Expect(m.Read8(0x2000)).To(Equal(uint8(0x11)))
			Expect(m.Read8(0x2001)).To(Equal(uint8(0x22)))
			Expect(m.Read8(0x2002)).To(Equal(uint8(0x33)))
			Expect(m.Read8(0x2003)).To(Equal(uint8(0x44)))
		})

		It("should mask addresses to the 29-bit physical range", func() {
			m.Write32(0x80001000, 0xCAFEBABE)

			// 0x80001000 & 0x1FFFFFFF == 0x1000
			Expect(m.Read32(0x1000)).To(Equal(uint32(0xCAFEBABE)))
		})

		It("should read zero past the end of the buffer", func() {
			Expect(m.Read32(m.Size())).To(Equal(uint32(0)))
			Expect(m.Read32(m.Size() - 2)).To(Equal(uint32(0)))
		})

		It("should drop writes past the end of the buffer", func() {
			m.Write32(m.Size(), 0xFFFFFFFF)
			m.Write32(m.Size()-2, 0xFFFFFFFF)

			Expect(m.Read32(m.Size() - 4)).To(Equal(uint32(0)))
		})

		It("should allow the last aligned word", func() {
			m.Write32(m.Size()-4, 0x12345678)
			Expect(m.Read32(m.Size() - 4)).To(Equal(uint32(0x12345678)))
		})
	})

	Describe("halfword and byte access", func() {
		It("should round-trip halfwords", func() {
			m.Write16(0x3000, 0xBEEF)
			Expect(m.Read16(0x3000)).To(Equal(uint16(0xBEEF)))
		})

		It("should round-trip bytes", func() {
			m.Write8(0x3005, 0xA5)
			Expect(m.Read8(0x3005)).To(Equal(uint8(0xA5)))
		})

		It("should degrade to zero out of range", func() {
			Expect(m.Read16(m.Size() - 1)).To(Equal(uint16(0)))
			Expect(m.Read8(m.Size())).To(Equal(uint8(0)))

			m.Write16(m.Size()-1, 0xFFFF)
			m.Write8(m.Size(), 0xFF)
			Expect(m.Read8(m.Size() - 1)).To(Equal(uint8(0)))
		})
	})

	Describe("LoadImage", func() {
		It("should copy the image to offset 0", func() {
			m.LoadImage([]byte{0xDE, 0xAD, 0xBE, 0xEF})

			Expect(m.Read32(0)).To(Equal(uint32(0xDEADBEEF)))
		})

		It("should truncate an image larger than capacity", func() {
			small := emu.NewMemorySized(8)
			image := make([]byte, 16)
			for i := range image {
				image[i] = byte(i + 1)
			}

			small.LoadImage(image)

			Expect(small.Read8(7)).To(Equal(uint8(8)))
			Expect(small.Read8(8)).To(Equal(uint8(0)))
		})

		It("should leave the remainder of the buffer untouched", func() {
			m.Write8(0x100, 0x77)
			m.LoadImage([]byte{1, 2, 3, 4})

			Expect(m.Read8(0x100)).To(Equal(uint8(0x77)))
		})
	})
})
