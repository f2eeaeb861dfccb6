package chip8

import (
	"fmt"
	"os"
	"path"
)

// Rom is a program image to be loaded at the entry point, with a
// display name for the host window title.
type Rom struct {
	Name string
	Data []byte
}

// NewRomFromFile reads a ROM image from disk. The image must fit in
// the program area above the entry point.
func NewRomFromFile(romPath string) (Rom, error) {
	data, err := os.ReadFile(romPath)
	if err != nil {
		return Rom{}, fmt.Errorf("read data from rom file %s: %w", romPath, err)
	}

	if len(data) > RomMaxSizeBytes {
		return Rom{}, fmt.Errorf("rom file %s is too large: actual size is %d bytes, max size is %d bytes",
			romPath, len(data), RomMaxSizeBytes,
		)
	}

	return Rom{
		Name: path.Base(romPath),
		Data: data,
	}, nil
}
