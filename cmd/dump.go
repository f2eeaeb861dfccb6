package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/nevisdale/chip8vm/internal/chip8"
)

// dumpCmd disassembles a ROM to stdout without running it
var dumpCmd = &cobra.Command{
	Use:   "dump `path/to/rom`",
	Short: "disassemble a CHIP-8 ROM",
	Args:  cobra.ExactArgs(1),
	Run:   runDump,
}

func runDump(cmd *cobra.Command, args []string) {
	rom, err := chip8.NewRomFromFile(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "couldn't create a rom from the file: %s\n", err.Error())
		os.Exit(1)
	}
	fmt.Print(chip8.Disassemble(rom.Data))
}
