// Package emu provides functional MIPS R4300i emulation.
package emu

import (
	"fmt"
	"io"

	"github.com/zshdevopscatftw/r4ksim/insts"
)

// DefaultCycleBudget is the step budget after which Step reports
// completion. Callers may pass a larger budget to Run.
const DefaultCycleBudget = 2000

// Emulator executes MIPS R4300i instructions functionally. It
// exclusively owns its register file and memory; independent instances
// behave identically in isolation.
type Emulator struct {
	regFile        *RegFile
	memory         *Memory
	decoder        *insts.Decoder
	syscallHandler SyscallHandler

	// Execution units
	alu        *ALU
	lsu        *LoadStoreUnit
	branchUnit *BranchUnit

	// Syscall output
	output *OutputBuffer
	stdout io.Writer

	// Diagnostic channel for unknown opcodes. Optional; tracing does
	// not change observable behavior.
	trace io.Writer

	// Execution state
	halted     bool
	cycleCount uint32

	// Configuration
	entry       uint32
	cycleBudget uint32
	memorySize  uint32
}

// EmulatorOption is a functional option for configuring the Emulator.
type EmulatorOption func(*Emulator)

// WithStdout mirrors syscall output strings to the given writer.
func WithStdout(w io.Writer) EmulatorOption {
	return func(e *Emulator) {
		e.stdout = w
	}
}

// WithTrace logs unknown opcodes to the given writer.
func WithTrace(w io.Writer) EmulatorOption {
	return func(e *Emulator) {
		e.trace = w
	}
}

// WithSyscallHandler sets a custom syscall handler.
func WithSyscallHandler(handler SyscallHandler) EmulatorOption {
	return func(e *Emulator) {
		e.syscallHandler = handler
	}
}

// WithMemorySize sets the RAM capacity in bytes. Default 4 MiB.
func WithMemorySize(size uint32) EmulatorOption {
	return func(e *Emulator) {
		e.memorySize = size
	}
}

// WithEntryPoint sets the address execution starts from after an image
// load or reset. Default 0.
func WithEntryPoint(entry uint32) EmulatorOption {
	return func(e *Emulator) {
		e.entry = entry
	}
}

// WithCycleBudget sets the step budget. Default DefaultCycleBudget.
func WithCycleBudget(budget uint32) EmulatorOption {
	return func(e *Emulator) {
		e.cycleBudget = budget
	}
}

// NewEmulator creates a new MIPS emulator.
func NewEmulator(opts ...EmulatorOption) *Emulator {
	e := &Emulator{
		regFile:     &RegFile{},
		decoder:     insts.NewDecoder(),
		output:      &OutputBuffer{},
		cycleBudget: DefaultCycleBudget,
		memorySize:  DefaultMemorySize,
	}

	// Apply options first (may set memory size, writers, handler)
	for _, opt := range opts {
		opt(e)
	}

	e.memory = NewMemorySized(e.memorySize)

	// Create execution units
	e.alu = NewALU(e.regFile)
	e.lsu = NewLoadStoreUnit(e.regFile, e.memory)
	e.branchUnit = NewBranchUnit(e.regFile)

	// If no syscall handler was provided, create a default one
	if e.syscallHandler == nil {
		e.syscallHandler = NewDefaultSyscallHandler(e.regFile, e.memory, e.output, e.stdout)
	}

	e.applyResetState()

	return e
}

// RegFile returns the emulator's register file.
func (e *Emulator) RegFile() *RegFile {
	return e.regFile
}

// Memory returns the emulator's memory.
func (e *Emulator) Memory() *Memory {
	return e.memory
}

// CycleCount returns the number of steps executed since reset.
func (e *Emulator) CycleCount() uint32 {
	return e.cycleCount
}

// Halted reports whether execution has terminated via BREAK or the
// exit syscall.
func (e *Emulator) Halted() bool {
	return e.halted
}

// Output returns the syscall output strings in program order.
func (e *Emulator) Output() []string {
	return e.output.Entries()
}

// Reset returns the emulator to its initial running state: zeroed
// registers, PC at the entry address, conventional stack and global
// pointers, CP0 defaults, cleared output, fresh memory.
func (e *Emulator) Reset() {
	*e.regFile = RegFile{}
	e.memory = NewMemorySized(e.memorySize)
	e.output = &OutputBuffer{}
	e.halted = false
	e.cycleCount = 0

	// Recreate the units bound to the new memory
	e.lsu = NewLoadStoreUnit(e.regFile, e.memory)
	e.branchUnit = NewBranchUnit(e.regFile)
	e.syscallHandler = NewDefaultSyscallHandler(e.regFile, e.memory, e.output, e.stdout)

	e.applyResetState()
}

// applyResetState sets the architectural reset values.
func (e *Emulator) applyResetState() {
	e.regFile.PC = e.entry
	e.regFile.WriteReg(RegSP, InitialSP)
	e.regFile.WriteReg(RegGP, InitialGP)
	e.regFile.WriteCP0(CP0Status, CP0StatusReset)
	e.regFile.WriteCP0(CP0PRId, CP0PRIdR4300i)
}

// LoadImage copies the image into memory starting at offset 0,
// truncated to capacity, and points the PC at the entry address.
func (e *Emulator) LoadImage(image []byte) {
	e.memory.LoadImage(image)
	e.regFile.PC = e.entry
	e.regFile.WriteReg(RegSP, InitialSP)
	e.regFile.WriteReg(RegGP, InitialGP)
}

// Step executes a single instruction.
//
// It returns false without executing if the emulator has halted or the
// PC left the addressable range. Otherwise it fetches, decodes,
// executes, forces $zero, commits the next PC (honoring a pending
// delay-slot branch), counts the cycle, and returns true until the
// cycle budget is reached.
func (e *Emulator) Step() bool {
	if e.halted || e.regFile.PC >= e.memory.Size() {
		return false
	}

	// 1. Fetch
	word := e.memory.Read32(e.regFile.PC)

	// 2. Decode
	inst := e.decoder.Decode(word)

	// 3. Resolve the next PC before executing: a branch issued by this
	// instruction must not take effect until after its delay slot.
	nextPC := e.branchUnit.NextPC()

	// 4. Execute
	e.execute(inst)

	// 5. Commit
	e.regFile.GPR[RegZero] = 0
	e.regFile.PC = nextPC
	e.cycleCount++

	return e.cycleCount < e.cycleBudget
}

// Run executes steps until the emulator halts, the PC leaves the
// addressable range, the cycle budget is exhausted, or cycleCount
// reaches maxCycles. It returns the derived seed.
func (e *Emulator) Run(maxCycles uint32) uint32 {
	for e.Step() && e.cycleCount < maxCycles {
	}
	return e.Seed()
}

// Seed folds the final CPU state into a deterministic 32-bit value:
// the cycle count, each register scaled by its index+1, HI^LO, and the
// first 256 bytes of memory word-wise. The value has no CPU-semantic
// meaning; external content generators use it as a reproducible
// pseudo-random seed.
func (e *Emulator) Seed() uint32 {
	seed := e.cycleCount
	for i, r := range e.regFile.GPR {
		seed ^= r * uint32(i+1)
	}
	seed ^= e.regFile.HI ^ e.regFile.LO
	for addr := uint32(0); addr < 256; addr += 4 {
		seed ^= e.memory.Read32(addr)
	}
	return seed
}

// execute dispatches a decoded instruction to its execution unit.
// Unknown operations are no-ops.
func (e *Emulator) execute(inst *insts.Instruction) {
	switch inst.Op {
	case insts.OpSLL:
		e.alu.SLL(inst.Rd, inst.Rt, inst.Shamt)
	case insts.OpSRL:
		e.alu.SRL(inst.Rd, inst.Rt, inst.Shamt)
	case insts.OpSRA:
		e.alu.SRA(inst.Rd, inst.Rt, inst.Shamt)
	case insts.OpSLLV:
		e.alu.SLLV(inst.Rd, inst.Rt, inst.Rs)
	case insts.OpSRLV:
		e.alu.SRLV(inst.Rd, inst.Rt, inst.Rs)
	case insts.OpJR:
		e.branchUnit.JR(inst.Rs)
	case insts.OpJALR:
		e.branchUnit.JALR(inst.Rd, inst.Rs)
	case insts.OpSYSCALL:
		if e.syscallHandler.Handle().Halted {
			e.halted = true
		}
	case insts.OpBREAK:
		e.halted = true
	case insts.OpMFHI:
		e.alu.MFHI(inst.Rd)
	case insts.OpMTHI:
		e.alu.MTHI(inst.Rs)
	case insts.OpMFLO:
		e.alu.MFLO(inst.Rd)
	case insts.OpMTLO:
		e.alu.MTLO(inst.Rs)
	case insts.OpMULT:
		e.alu.MULT(inst.Rs, inst.Rt)
	case insts.OpMULTU:
		e.alu.MULTU(inst.Rs, inst.Rt)
	case insts.OpDIV:
		e.alu.DIV(inst.Rs, inst.Rt)
	case insts.OpDIVU:
		e.alu.DIVU(inst.Rs, inst.Rt)
	case insts.OpADD, insts.OpADDU:
		e.alu.ADDU(inst.Rd, inst.Rs, inst.Rt)
	case insts.OpSUB, insts.OpSUBU:
		e.alu.SUBU(inst.Rd, inst.Rs, inst.Rt)
	case insts.OpAND:
		e.alu.AND(inst.Rd, inst.Rs, inst.Rt)
	case insts.OpOR:
		e.alu.OR(inst.Rd, inst.Rs, inst.Rt)
	case insts.OpXOR:
		e.alu.XOR(inst.Rd, inst.Rs, inst.Rt)
	case insts.OpNOR:
		e.alu.NOR(inst.Rd, inst.Rs, inst.Rt)
	case insts.OpSLT:
		e.alu.SLT(inst.Rd, inst.Rs, inst.Rt)
	case insts.OpSLTU:
		e.alu.SLTU(inst.Rd, inst.Rs, inst.Rt)
	case insts.OpJ:
		e.branchUnit.J(inst.Target)
	case insts.OpJAL:
		e.branchUnit.JAL(inst.Target)
	case insts.OpBEQ:
		e.branchUnit.BEQ(inst.Rs, inst.Rt, inst.SignedImm())
	case insts.OpBNE:
		e.branchUnit.BNE(inst.Rs, inst.Rt, inst.SignedImm())
	case insts.OpBLEZ:
		e.branchUnit.BLEZ(inst.Rs, inst.SignedImm())
	case insts.OpBGTZ:
		e.branchUnit.BGTZ(inst.Rs, inst.SignedImm())
	case insts.OpADDI, insts.OpADDIU:
		e.alu.ADDIU(inst.Rt, inst.Rs, inst.SignedImm())
	case insts.OpSLTI:
		e.alu.SLTI(inst.Rt, inst.Rs, inst.SignedImm())
	case insts.OpSLTIU:
		e.alu.SLTIU(inst.Rt, inst.Rs, inst.SignedImm())
	case insts.OpANDI:
		e.alu.ANDI(inst.Rt, inst.Rs, inst.Imm)
	case insts.OpORI:
		e.alu.ORI(inst.Rt, inst.Rs, inst.Imm)
	case insts.OpXORI:
		e.alu.XORI(inst.Rt, inst.Rs, inst.Imm)
	case insts.OpLUI:
		e.alu.LUI(inst.Rt, inst.Imm)
	case insts.OpLB:
		e.lsu.LB(inst.Rt, inst.Rs, inst.SignedImm())
	case insts.OpLH:
		e.lsu.LH(inst.Rt, inst.Rs, inst.SignedImm())
	case insts.OpLW:
		e.lsu.LW(inst.Rt, inst.Rs, inst.SignedImm())
	case insts.OpLBU:
		e.lsu.LBU(inst.Rt, inst.Rs, inst.SignedImm())
	case insts.OpLHU:
		e.lsu.LHU(inst.Rt, inst.Rs, inst.SignedImm())
	case insts.OpSB:
		e.lsu.SB(inst.Rt, inst.Rs, inst.SignedImm())
	case insts.OpSH:
		e.lsu.SH(inst.Rt, inst.Rs, inst.SignedImm())
	case insts.OpSW:
		e.lsu.SW(inst.Rt, inst.Rs, inst.SignedImm())
	case insts.OpMFC0:
		e.regFile.WriteReg(inst.Rt, e.regFile.ReadCP0(inst.Rd))
	case insts.OpMTC0:
		e.regFile.WriteCP0(inst.Rd, e.regFile.ReadReg(inst.Rt))
	default:
		if e.trace != nil {
			_, _ = fmt.Fprintf(e.trace,
				"unknown opcode 0x%02X (funct 0x%02X) at PC=0x%08X\n",
				inst.Opcode, inst.Funct, e.regFile.PC)
		}
	}
}
