// Package emu provides functional MIPS R4300i emulation.
package emu

import "encoding/binary"

// DefaultMemorySize is the conventional RAM size (4 MiB).
const DefaultMemorySize = 4 * 1024 * 1024

// PhysAddrMask reduces a virtual address to the 29-bit physical range
// before bounds-checking, modeling a simplified MMU.
const PhysAddrMask = 0x1FFFFFFF

// Memory is a fixed-size byte buffer with masked physical addressing
// and big-endian word access.
//
// Memory never faults: reads outside the buffer return zero and writes
// outside the buffer are silently dropped. The degrade-to-zero policy
// is load-bearing; synthetic images touch memory generously and must
// not crash the interpreter.
type Memory struct {
	data []byte
}

// NewMemory creates a Memory with the default 4 MiB capacity.
func NewMemory() *Memory {
	return NewMemorySized(DefaultMemorySize)
}

// NewMemorySized creates a Memory with the given capacity in bytes.
func NewMemorySized(size uint32) *Memory {
	return &Memory{data: make([]byte, size)}
}

// Size returns the buffer capacity in bytes.
func (m *Memory) Size() uint32 {
	return uint32(len(m.data))
}

// LoadImage copies min(len(image), capacity) bytes to offset 0.
// The remainder of the buffer keeps its prior contents; the low region
// holds the image header and code, higher addresses are scratch RAM.
func (m *Memory) LoadImage(image []byte) {
	copy(m.data, image)
}

// Read32 returns the big-endian word at addr & PhysAddrMask, or zero
// if the 4-byte span lies outside the buffer.
func (m *Memory) Read32(addr uint32) uint32 {
	phys := addr & PhysAddrMask
	if uint64(phys)+4 > uint64(len(m.data)) {
		return 0
	}
	return binary.BigEndian.Uint32(m.data[phys:])
}

// Read16 returns the big-endian halfword at addr & PhysAddrMask, or
// zero if out of range.
func (m *Memory) Read16(addr uint32) uint16 {
	phys := addr & PhysAddrMask
	if uint64(phys)+2 > uint64(len(m.data)) {
		return 0
	}
	return binary.BigEndian.Uint16(m.data[phys:])
}

// Read8 returns the byte at addr & PhysAddrMask, or zero if out of
// range.
func (m *Memory) Read8(addr uint32) uint8 {
	phys := addr & PhysAddrMask
	if phys >= uint32(len(m.data)) {
		return 0
	}
	return m.data[phys]
}

// Write32 stores a big-endian word at addr & PhysAddrMask. Out-of-range
// stores are dropped.
func (m *Memory) Write32(addr uint32, value uint32) {
	phys := addr & PhysAddrMask
	if uint64(phys)+4 > uint64(len(m.data)) {
		return
	}
	binary.BigEndian.PutUint32(m.data[phys:], value)
}

// Write16 stores a big-endian halfword at addr & PhysAddrMask.
// Out-of-range stores are dropped.
func (m *Memory) Write16(addr uint32, value uint16) {
	phys := addr & PhysAddrMask
	if uint64(phys)+2 > uint64(len(m.data)) {
		return
	}
	binary.BigEndian.PutUint16(m.data[phys:], value)
}

// Write8 stores a byte at addr & PhysAddrMask. Out-of-range stores are
// dropped.
func (m *Memory) Write8(addr uint32, value uint8) {
	phys := addr & PhysAddrMask
	if phys >= uint32(len(m.data)) {
		return
	}
	m.data[phys] = value
}
