package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/nevisdale/chip8vm/internal/beep"
	"github.com/nevisdale/chip8vm/internal/chip8"
	"github.com/nevisdale/chip8vm/internal/config"
	"github.com/nevisdale/chip8vm/internal/renderer"
)

var (
	configPath string
	fgColorHex string
	bgColorHex string
	tps        int
	cycles     int
	volume     float64
	noSound    bool
)

// runCmd boots the virtual machine with a ROM and opens the window
var runCmd = &cobra.Command{
	Use:   "run `path/to/rom`",
	Short: "run a CHIP-8 ROM",
	Args:  cobra.ExactArgs(1),
	Run:   runChip8,
}

func init() {
	runCmd.Flags().StringVarP(&configPath, "config", "c", "", "path to a config file")
	runCmd.Flags().StringVar(&fgColorHex, "fg", "", "rgba foreground color in hex. white is default")
	runCmd.Flags().StringVar(&bgColorHex, "bg", "", "rgba background color in hex. black is default")
	runCmd.Flags().IntVar(&tps, "tps", 0, "renderer updates (and timer ticks) per second")
	runCmd.Flags().IntVar(&cycles, "cycles", 0, "instructions per renderer update")
	runCmd.Flags().Float64Var(&volume, "volume", -1, "beep volume in [0, 1]")
	runCmd.Flags().BoolVar(&noSound, "no-sound", false, "disable the sound timer tone")
}

func runChip8(cmd *cobra.Command, args []string) {
	conf, err := config.Load(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "couldn't load the config: %s\n", err.Error())
		os.Exit(1)
	}

	// flags win over file and environment
	if cmd.Flags().Changed("fg") {
		conf.FgColor = fgColorHex
	}
	if cmd.Flags().Changed("bg") {
		conf.BgColor = bgColorHex
	}
	if cmd.Flags().Changed("tps") {
		conf.TPS = tps
	}
	if cmd.Flags().Changed("cycles") {
		conf.CyclesPerTick = cycles
	}
	if cmd.Flags().Changed("volume") {
		conf.Volume = volume
	}
	if err := conf.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "invalid settings: %s\n", err.Error())
		os.Exit(1)
	}

	fgColor, err := renderer.DecodeColorFromHex(conf.FgColor)
	if err != nil {
		fmt.Fprintf(os.Stderr, "couldn't decode fg color from hex %s: %s\n", conf.FgColor, err.Error())
		os.Exit(1)
	}
	bgColor, err := renderer.DecodeColorFromHex(conf.BgColor)
	if err != nil {
		fmt.Fprintf(os.Stderr, "couldn't decode bg color from hex %s: %s\n", conf.BgColor, err.Error())
		os.Exit(1)
	}

	rom, err := chip8.NewRomFromFile(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "couldn't create a rom from the file: %s\n", err.Error())
		os.Exit(1)
	}

	machine, err := chip8.New(rom, chip8.NewRandom())
	if err != nil {
		fmt.Fprintf(os.Stderr, "couldn't create a machine: %s\n", err.Error())
		os.Exit(1)
	}
	machine.SetQuirks(conf.Chip8Quirks())

	var beeper *beep.Beep
	if !noSound {
		beeper, err = beep.New()
		if err != nil {
			fmt.Fprintf(os.Stderr, "couldn't create a beeper: %s\n", err.Error())
			os.Exit(1)
		}
		beeper.SetVolume(conf.Volume)
	}

	r := renderer.NewFromConfig(machine, beeper, renderer.Config{
		FgColor:       fgColor,
		BgColor:       bgColor,
		TPS:           conf.TPS,
		CyclesPerTick: conf.CyclesPerTick,
	})
	if err := r.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "couldn't run a renderer: %s\n", err.Error())
		os.Exit(1)
	}
}
