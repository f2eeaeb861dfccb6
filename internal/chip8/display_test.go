package chip8

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDisplay_Draw(t *testing.T) {
	t.Parallel()

	t.Run("single byte lights eight pixels", func(t *testing.T) {
		var d Display

		collision := d.Draw(0, 0, []byte{0xff})
		require.False(t, collision)

		for x := 0; x < 8; x++ {
			require.True(t, d.PixelAt(x, 0), "x=%d", x)
		}
		require.False(t, d.PixelAt(8, 0))
	})

	t.Run("msb is the leftmost pixel", func(t *testing.T) {
		var d Display

		d.Draw(0, 0, []byte{0x80})

		require.True(t, d.PixelAt(0, 0))
		for x := 1; x < 8; x++ {
			require.False(t, d.PixelAt(x, 0), "x=%d", x)
		}
	})

	t.Run("redraw erases and reports collision", func(t *testing.T) {
		var d Display

		require.False(t, d.Draw(4, 2, []byte{0xf0, 0x90}))
		require.True(t, d.Draw(4, 2, []byte{0xf0, 0x90}))

		for y := 0; y < ScreenHeight; y++ {
			for x := 0; x < ScreenWidth; x++ {
				require.False(t, d.PixelAt(x, y), "x=%d y=%d", x, y)
			}
		}
	})

	t.Run("partial overlap keeps xor survivors", func(t *testing.T) {
		var d Display

		d.Draw(0, 0, []byte{0xf0})
		collision := d.Draw(4, 0, []byte{0xf0})

		require.False(t, collision, "overlap starts where the first sprite ended")
		for x := 0; x < 8; x++ {
			require.True(t, d.PixelAt(x, 0), "x=%d", x)
		}
	})

	t.Run("origin is taken mod 64 and mod 32", func(t *testing.T) {
		var d Display

		d.Draw(64, 32, []byte{0x80})
		require.True(t, d.PixelAt(0, 0))

		d.Draw(64+3, 32+2, []byte{0x80})
		require.True(t, d.PixelAt(3, 2))
	})

	t.Run("pixels past the right edge are clipped", func(t *testing.T) {
		var d Display

		d.Draw(62, 0, []byte{0xff})

		require.True(t, d.PixelAt(62, 0))
		require.True(t, d.PixelAt(63, 0))
		// nothing wrapped to the left side
		for x := 0; x < 6; x++ {
			require.False(t, d.PixelAt(x, 0), "x=%d", x)
		}
	})

	t.Run("rows past the bottom edge are clipped", func(t *testing.T) {
		var d Display

		d.Draw(0, 31, []byte{0x80, 0x80})

		require.True(t, d.PixelAt(0, 31))
		require.False(t, d.PixelAt(0, 0), "nothing wrapped to the top")
	})

	t.Run("wrap mode wraps instead of clipping", func(t *testing.T) {
		d := Display{wrap: true}

		d.Draw(62, 31, []byte{0xc0, 0xc0})

		require.True(t, d.PixelAt(62, 31))
		require.True(t, d.PixelAt(63, 31))
		require.True(t, d.PixelAt(62, 0))
		require.True(t, d.PixelAt(63, 0))
	})
}

func TestDisplay_Clear(t *testing.T) {
	t.Parallel()

	var d Display
	d.Draw(0, 0, []byte{0xff, 0xff, 0xff})

	d.Clear()

	for y := 0; y < ScreenHeight; y++ {
		for x := 0; x < ScreenWidth; x++ {
			require.False(t, d.PixelAt(x, y), "x=%d y=%d", x, y)
		}
	}
}

func TestDisplay_PixelAt_OutOfRange(t *testing.T) {
	t.Parallel()

	var d Display
	d.Draw(0, 0, []byte{0xff})

	require.False(t, d.PixelAt(-1, 0))
	require.False(t, d.PixelAt(0, -1))
	require.False(t, d.PixelAt(ScreenWidth, 0))
	require.False(t, d.PixelAt(0, ScreenHeight))
}

func TestFontSprites(t *testing.T) {
	t.Parallel()

	require.Len(t, font, 16*FontSpriteSize)

	// every row is packed in the top nibble
	for i, b := range font {
		require.Zero(t, b&0x0f, "byte %d", i)
	}
}
