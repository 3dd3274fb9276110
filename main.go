// Package main provides the entry point for R4KSim.
// R4KSim is a MIPS R4300i-subset interpreter with deterministic
// bounded execution.
//
// For the full CLI, use: go run ./cmd/r4ksim
package main

import (
	"fmt"
	"os"
)

func main() {
	fmt.Println("R4KSim - MIPS R4300i Interpreter")
	fmt.Println("")
	fmt.Println("Usage: r4ksim [options] <image.rom>")
	fmt.Println("")
	fmt.Println("Options:")
	fmt.Println("  -testrom   Run the built-in CPU test ROM")
	fmt.Println("  -batch     Drive execution in batches on the Akita engine")
	fmt.Println("  -config    Path to driver configuration JSON file")
	fmt.Println("  -cycles    Cycle limit for the run")
	fmt.Println("  -v         Verbose output")
	fmt.Println("")
	fmt.Println("Run 'go run ./cmd/r4ksim' for the full CLI.")

	if len(os.Args) > 1 {
		fmt.Println("\nNote: You provided arguments. Use 'go run ./cmd/r4ksim' instead.")
	}
}
