// Package config loads emulator settings from a config file, the
// environment, and defaults. Command-line flags are layered on top by
// the cmd package.
package config

import (
	"encoding/hex"
	"fmt"

	"github.com/spf13/viper"

	"github.com/nevisdale/chip8vm/internal/chip8"
)

// Config holds every host-side setting. The machine core takes only
// the quirk switches; the rest drives the renderer and the beeper.
type Config struct {
	// FgColor and BgColor are rgb or rgba hex strings, e.g. "FFFFFF"
	// or "000000FF".
	FgColor string `mapstructure:"fg_color"`
	BgColor string `mapstructure:"bg_color"`

	// TPS is how many times per second the renderer updates and the
	// timers tick.
	TPS int `mapstructure:"tps"`

	// CyclesPerTick is how many instructions execute per renderer
	// update.
	CyclesPerTick int `mapstructure:"cycles_per_tick"`

	// Volume is the beep volume in [0, 1].
	Volume float64 `mapstructure:"volume"`

	Quirks QuirksConfig `mapstructure:"quirks"`
}

// QuirksConfig mirrors chip8.Quirks for file/env binding.
type QuirksConfig struct {
	WrapSprites     bool `mapstructure:"wrap_sprites"`
	ShiftUsesVY     bool `mapstructure:"shift_uses_vy"`
	LoadStoreBumpsI bool `mapstructure:"load_store_bumps_i"`
}

// Chip8Quirks converts the bound quirk switches to the core type.
func (c *Config) Chip8Quirks() chip8.Quirks {
	return chip8.Quirks{
		WrapSprites:     c.Quirks.WrapSprites,
		ShiftUsesVY:     c.Quirks.ShiftUsesVY,
		LoadStoreBumpsI: c.Quirks.LoadStoreBumpsI,
	}
}

// Default returns the settings used when no file, env, or flag says
// otherwise: white on black, timer-rate updates, and the canonical
// instruction rate split across them.
func Default() *Config {
	return &Config{
		FgColor:       "FFFFFFFF",
		BgColor:       "000000FF",
		TPS:           chip8.TimerRate,
		CyclesPerTick: chip8.InstructionRate / chip8.TimerRate,
		Volume:        1.0,
	}
}

// Load reads the config file at configPath, or looks for
// chip8vm.{yaml,...} in the current working directory when the path
// is empty, then overlays CHIP8VM_* environment variables. Only keys
// that the config file sets are overlaid from the environment; with
// no file, the environment is not consulted. A missing file is fine;
// an unreadable or invalid one is an error.
func Load(configPath string) (*Config, error) {
	conf := Default()

	if configPath != "" {
		viper.SetConfigFile(configPath)
	} else {
		viper.SetConfigName("chip8vm")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")
	}

	viper.AutomaticEnv()
	viper.SetEnvPrefix("CHIP8VM")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("read config file: %w", err)
		}
	}

	if err := viper.Unmarshal(conf); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if err := conf.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return conf, nil
}

// Validate checks every field the hosts depend on.
func (c *Config) Validate() error {
	if err := validateColor(c.FgColor); err != nil {
		return fmt.Errorf("fg color %q: %w", c.FgColor, err)
	}
	if err := validateColor(c.BgColor); err != nil {
		return fmt.Errorf("bg color %q: %w", c.BgColor, err)
	}
	if c.TPS <= 0 {
		return fmt.Errorf("tps must be positive, got %d", c.TPS)
	}
	if c.CyclesPerTick <= 0 {
		return fmt.Errorf("cycles per tick must be positive, got %d", c.CyclesPerTick)
	}
	if c.Volume < 0 || c.Volume > 1 {
		return fmt.Errorf("volume must be in [0, 1], got %g", c.Volume)
	}
	return nil
}

func validateColor(s string) error {
	data, err := hex.DecodeString(s)
	if err != nil {
		return fmt.Errorf("decode hex: %w", err)
	}
	if len(data) != 3 && len(data) != 4 {
		return fmt.Errorf("color must be in rgb or rgba format")
	}
	return nil
}
