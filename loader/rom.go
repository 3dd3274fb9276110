// Package loader provides ROM image loading for the MIPS interpreter.
package loader

import (
	"encoding/binary"
	"fmt"
	"os"
	"strings"

	"github.com/zshdevopscatftw/r4ksim/rom"
)

// Header holds the parsed fields of a 64-byte ROM header.
type Header struct {
	// Magic is the identification word at offset 0.
	Magic uint32
	// ClockRate is the clock rate field.
	ClockRate uint32
	// BootAddr is the declared boot address. The interpreter does not
	// honor it; the entry address is interpreter configuration.
	BootAddr uint32
	// Release is the release field.
	Release uint32
	// CRC1 and CRC2 are the checksum pair.
	CRC1 uint32
	CRC2 uint32
	// Title is the trimmed 20-byte title field.
	Title string
	// Code is the trimmed 4-byte game code field.
	Code string
}

// Image represents a loaded ROM ready for the emulator.
type Image struct {
	// Header is the parsed header.
	Header Header
	// Data is the full image, header included, as loaded into memory
	// at offset 0.
	Data []byte
}

// Load reads and parses a ROM image from a file.
func Load(path string) (*Image, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read ROM file: %w", err)
	}

	img, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return img, nil
}

// Parse validates a ROM image buffer and extracts its header fields.
func Parse(data []byte) (*Image, error) {
	if len(data) < rom.HeaderSize {
		return nil, fmt.Errorf("ROM too short: %d bytes, need at least %d",
			len(data), rom.HeaderSize)
	}

	magic := binary.BigEndian.Uint32(data[rom.OffsetMagic:])
	if magic != rom.HeaderMagic {
		return nil, fmt.Errorf("not a ROM image (magic 0x%08X)", magic)
	}

	h := Header{
		Magic:     magic,
		ClockRate: binary.BigEndian.Uint32(data[rom.OffsetClockRate:]),
		BootAddr:  binary.BigEndian.Uint32(data[rom.OffsetBootAddr:]),
		Release:   binary.BigEndian.Uint32(data[rom.OffsetRelease:]),
		CRC1:      binary.BigEndian.Uint32(data[rom.OffsetCRC1:]),
		CRC2:      binary.BigEndian.Uint32(data[rom.OffsetCRC2:]),
		Title:     strings.TrimRight(string(data[rom.OffsetTitle:rom.OffsetTitle+rom.TitleLen]), " \x00"),
		Code:      strings.TrimRight(string(data[rom.OffsetCode:rom.OffsetCode+rom.CodeLen]), " \x00"),
	}

	return &Image{Header: h, Data: data}, nil
}
