// Package main provides the entry point for R4KSim.
// R4KSim is a MIPS R4300i-subset interpreter with deterministic
// bounded execution and seed derivation.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/zshdevopscatftw/r4ksim/driver"
	"github.com/zshdevopscatftw/r4ksim/emu"
	"github.com/zshdevopscatftw/r4ksim/loader"
	"github.com/zshdevopscatftw/r4ksim/rom"
)

var (
	testROM    = flag.Bool("testrom", false, "Run the built-in CPU test ROM")
	batch      = flag.Bool("batch", false, "Drive execution in batches on the Akita engine")
	configPath = flag.String("config", "", "Path to driver configuration JSON file")
	cycles     = flag.Uint("cycles", 100000, "Cycle limit for the run")
	entry      = flag.Uint("entry", 0, "Entry address (byte offset into the image)")
	verbose    = flag.Bool("v", false, "Verbose output")
)

func main() {
	flag.Parse()

	image, name, err := resolveImage()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading image: %v\n", err)
		os.Exit(1)
	}

	emulator := emu.NewEmulator(
		emu.WithEntryPoint(uint32(*entry)),
		emu.WithCycleBudget(uint32(*cycles)),
		emu.WithStdout(os.Stdout),
	)
	emulator.LoadImage(image)

	if *verbose {
		fmt.Printf("Loaded: %s (%d bytes)\n", name, len(image))
		fmt.Printf("Entry point: 0x%X\n", *entry)
	}

	var seed uint32
	if *batch {
		seed, err = runBatched(emulator)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	} else {
		seed = emulator.Run(uint32(*cycles))
	}

	fmt.Printf("Seed: 0x%08X\n", seed)

	if *verbose {
		report(emulator)
	}
}

// resolveImage picks the image bytes from the CLI arguments.
func resolveImage() ([]byte, string, error) {
	if *testROM {
		return rom.TestROM(), "built-in test ROM", nil
	}

	if flag.NArg() < 1 {
		fmt.Fprintf(os.Stderr, "Usage: r4ksim [options] <image.rom>\n")
		fmt.Fprintf(os.Stderr, "\nOptions:\n")
		flag.PrintDefaults()
		os.Exit(1)
	}

	path := flag.Arg(0)
	img, err := loader.Load(path)
	if err != nil {
		return nil, "", err
	}

	if *verbose {
		fmt.Printf("Title: %q  Code: %q  CRC: 0x%08X/0x%08X\n",
			img.Header.Title, img.Header.Code, img.Header.CRC1, img.Header.CRC2)
	}

	return img.Data, path, nil
}

// runBatched drives the emulator in batches on the Akita engine.
func runBatched(emulator *emu.Emulator) (uint32, error) {
	config := driver.DefaultConfig()
	if *configPath != "" {
		var err error
		config, err = driver.LoadConfig(*configPath)
		if err != nil {
			return 0, err
		}
	}
	config.MaxCycles = uint32(*cycles)

	d, err := driver.NewDriver(emulator, config)
	if err != nil {
		return 0, err
	}

	return d.Run()
}

// report prints the post-run machine state.
func report(emulator *emu.Emulator) {
	fmt.Printf("Cycles: %d  Halted: %v\n", emulator.CycleCount(), emulator.Halted())

	regFile := emulator.RegFile()
	fmt.Printf("PC: 0x%08X  HI: 0x%08X  LO: 0x%08X\n",
		regFile.PC, regFile.HI, regFile.LO)
	for i := 0; i < 32; i += 4 {
		fmt.Printf("r%-2d: %08X  r%-2d: %08X  r%-2d: %08X  r%-2d: %08X\n",
			i, regFile.GPR[i], i+1, regFile.GPR[i+1],
			i+2, regFile.GPR[i+2], i+3, regFile.GPR[i+3])
	}

	output := emulator.Output()
	if len(output) > 0 {
		fmt.Printf("Output buffer (%d entries):\n", len(output))
		for _, s := range output {
			fmt.Printf("  %s\n", s)
		}
	}
}
