// Package emu provides functional MIPS R4300i emulation.
package emu

import (
	"fmt"
	"io"
	"strconv"
)

// Syscall numbers, read from $v0.
const (
	SyscallPrintInt    uint32 = 1  // append decimal of $a0 to the output buffer
	SyscallPrintString uint32 = 4  // append NUL-terminated string at $a0
	SyscallExit        uint32 = 10 // halt execution
)

// SyscallResult represents the result of a syscall execution.
type SyscallResult struct {
	// Halted is true if the syscall terminated execution.
	Halted bool
}

// SyscallHandler is the interface for handling MIPS syscalls.
type SyscallHandler interface {
	// Handle executes the syscall indicated by the register file
	// state. Convention: syscall number in $v0, argument in $a0.
	Handle() SyscallResult
}

// OutputBuffer is an append-only, ordered sequence of strings produced
// by syscalls. It is cleared only on interpreter reset.
type OutputBuffer struct {
	entries []string
}

// Append adds a string to the buffer.
func (b *OutputBuffer) Append(s string) {
	b.entries = append(b.entries, s)
}

// Entries returns a copy of the buffered strings in program order.
func (b *OutputBuffer) Entries() []string {
	out := make([]string, len(b.entries))
	copy(out, b.entries)
	return out
}

// Len returns the number of buffered strings.
func (b *OutputBuffer) Len() int {
	return len(b.entries)
}

// DefaultSyscallHandler provides the basic syscall implementation.
// Appended strings are mirrored to stdout when a writer is configured.
type DefaultSyscallHandler struct {
	regFile *RegFile
	memory  *Memory
	output  *OutputBuffer
	stdout  io.Writer
}

// NewDefaultSyscallHandler creates a default syscall handler.
func NewDefaultSyscallHandler(
	regFile *RegFile,
	memory *Memory,
	output *OutputBuffer,
	stdout io.Writer,
) *DefaultSyscallHandler {
	return &DefaultSyscallHandler{
		regFile: regFile,
		memory:  memory,
		output:  output,
		stdout:  stdout,
	}
}

// Handle executes the syscall indicated by the register file state.
// Unrecognized syscall numbers are no-ops.
func (h *DefaultSyscallHandler) Handle() SyscallResult {
	switch h.regFile.ReadReg(RegV0) {
	case SyscallPrintInt:
		return h.handlePrintInt()
	case SyscallPrintString:
		return h.handlePrintString()
	case SyscallExit:
		return SyscallResult{Halted: true}
	default:
		return SyscallResult{}
	}
}

// handlePrintInt appends the decimal string of $a0.
func (h *DefaultSyscallHandler) handlePrintInt() SyscallResult {
	h.append(strconv.FormatUint(uint64(h.regFile.ReadReg(RegA0)), 10))
	return SyscallResult{}
}

// handlePrintString reads bytes starting at $a0 until a zero byte and
// appends the decoded ASCII string.
func (h *DefaultSyscallHandler) handlePrintString() SyscallResult {
	addr := h.regFile.ReadReg(RegA0)

	var s []byte
	for {
		c := h.memory.Read8(addr)
		if c == 0 {
			break
		}
		s = append(s, c)
		addr++
	}

	h.append(string(s))
	return SyscallResult{}
}

func (h *DefaultSyscallHandler) append(s string) {
	h.output.Append(s)
	if h.stdout != nil {
		_, _ = fmt.Fprintln(h.stdout, s)
	}
}
