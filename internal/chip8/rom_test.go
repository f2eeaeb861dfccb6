package chip8

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewRomFromFile(t *testing.T) {
	t.Parallel()

	t.Run("reads data and keeps the base name", func(t *testing.T) {
		romPath := filepath.Join(t.TempDir(), "pong.ch8")
		require.NoError(t, os.WriteFile(romPath, []byte{0x12, 0x00}, 0o644))

		rom, err := NewRomFromFile(romPath)
		require.NoError(t, err)
		require.Equal(t, "pong.ch8", rom.Name)
		require.Equal(t, []byte{0x12, 0x00}, rom.Data)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := NewRomFromFile(filepath.Join(t.TempDir(), "nope.ch8"))
		require.Error(t, err)
	})

	t.Run("file bigger than the program area", func(t *testing.T) {
		romPath := filepath.Join(t.TempDir(), "big.ch8")
		require.NoError(t, os.WriteFile(romPath, make([]byte, RomMaxSizeBytes+1), 0o644))

		_, err := NewRomFromFile(romPath)
		require.Error(t, err)
	})
}
