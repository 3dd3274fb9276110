// Package rom provides MIPS instruction encoding and ROM image
// construction.
//
// Images built here follow the conventional 64-byte header layout
// (magic word, boot parameters, CRC pair, title, code field) followed
// by big-endian instruction words. The interpreter itself never parses
// the header; it only copies the whole image into memory at offset 0.
package rom

import "encoding/binary"

// HeaderSize is the fixed header length in bytes.
const HeaderSize = 64

// Fixed header field values.
const (
	HeaderMagic     = 0x80371240 // PI BSD domain 1 register
	HeaderClockRate = 0x000F1E90
	HeaderBootAddr  = 0x80000400
	HeaderRelease   = 0x00001449
	CountryUSA      = 0x45
)

// Header field offsets.
const (
	OffsetMagic     = 0x00
	OffsetClockRate = 0x04
	OffsetBootAddr  = 0x08
	OffsetRelease   = 0x0C
	OffsetCRC1      = 0x10
	OffsetCRC2      = 0x14
	OffsetTitle     = 0x20 // 20 bytes
	OffsetCode      = 0x3B // 4 bytes
	OffsetCountry   = 0x3E
)

// TitleLen is the length of the title field.
const TitleLen = 20

// CodeLen is the length of the game code field.
const CodeLen = 4

// minBodyWords pads ROM bodies to a 4 KiB minimum.
const minBodyWords = 1024

// RType encodes a register-format instruction.
func RType(rs, rt, rd, shamt, funct uint32) uint32 {
	return (rs&0x1F)<<21 | (rt&0x1F)<<16 | (rd&0x1F)<<11 |
		(shamt&0x1F)<<6 | funct&0x3F
}

// IType encodes an immediate-format instruction.
func IType(op, rs, rt, imm uint32) uint32 {
	return (op&0x3F)<<26 | (rs&0x1F)<<21 | (rt&0x1F)<<16 | imm&0xFFFF
}

// JType encodes a jump-format instruction.
func JType(op, target uint32) uint32 {
	return (op&0x3F)<<26 | target&0x3FFFFFF
}

// BuildHeader builds the 64-byte image header. Title and code are
// truncated and space-padded to their field widths.
func BuildHeader(title, code string, crc1, crc2 uint32) []byte {
	header := make([]byte, HeaderSize)

	binary.BigEndian.PutUint32(header[OffsetMagic:], HeaderMagic)
	binary.BigEndian.PutUint32(header[OffsetClockRate:], HeaderClockRate)
	binary.BigEndian.PutUint32(header[OffsetBootAddr:], HeaderBootAddr)
	binary.BigEndian.PutUint32(header[OffsetRelease:], HeaderRelease)
	binary.BigEndian.PutUint32(header[OffsetCRC1:], crc1)
	binary.BigEndian.PutUint32(header[OffsetCRC2:], crc2)

	copy(header[OffsetTitle:OffsetTitle+TitleLen], padded(title, TitleLen))
	copy(header[OffsetCode:OffsetCode+CodeLen], padded(code, CodeLen))
	header[OffsetCountry] = CountryUSA

	return header
}

func padded(s string, n int) []byte {
	b := make([]byte, n)
	for i := range b {
		b[i] = ' '
	}
	copy(b, s)
	return b
}

// Builder accumulates instruction words and assembles them into a ROM
// image behind a header.
type Builder struct {
	title string
	code  string
	crc1  uint32
	crc2  uint32
	words []uint32
}

// NewBuilder creates a Builder for an image with the given title and
// game code.
func NewBuilder(title, code string, crc1, crc2 uint32) *Builder {
	return &Builder{title: title, code: code, crc1: crc1, crc2: crc2}
}

// Emit appends instruction words to the ROM body.
func (b *Builder) Emit(words ...uint32) *Builder {
	b.words = append(b.words, words...)
	return b
}

// Len returns the number of instruction words emitted so far.
func (b *Builder) Len() int {
	return len(b.words)
}

// Build assembles the header and body. The body is zero-padded to the
// minimum size.
func (b *Builder) Build() []byte {
	words := b.words
	for len(words) < minBodyWords {
		words = append(words, 0)
	}

	image := BuildHeader(b.title, b.code, b.crc1, b.crc2)
	body := make([]byte, 4*len(words))
	for i, w := range words {
		binary.BigEndian.PutUint32(body[4*i:], w)
	}

	return append(image, body...)
}
