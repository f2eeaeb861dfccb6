package chip8

const (
	// The original implementation of the Chip-8 language used
	// a 64x32-pixel monochrome display
	ScreenWidth  = 64
	ScreenHeight = 32

	// FontAddress is where the built-in hex digit sprites live.
	// Each digit is FontSpriteSize bytes tall.
	FontAddress    = 0x000
	FontSpriteSize = 5
)

// http://devernay.free.fr/hacks/chip8/C8TECH10.HTM#font
var font = []byte{
	0xF0, 0x90, 0x90, 0x90, 0xF0, // 0
	0x20, 0x60, 0x20, 0x20, 0x70, // 1
	0xF0, 0x10, 0xF0, 0x80, 0xF0, // 2
	0xF0, 0x10, 0xF0, 0x10, 0xF0, // 3
	0x90, 0x90, 0xF0, 0x10, 0x10, // 4
	0xF0, 0x80, 0xF0, 0x10, 0xF0, // 5
	0xF0, 0x80, 0xF0, 0x90, 0xF0, // 6
	0xF0, 0x10, 0x20, 0x40, 0x40, // 7
	0xF0, 0x90, 0xF0, 0x90, 0xF0, // 8
	0xF0, 0x90, 0xF0, 0x10, 0xF0, // 9
	0xF0, 0x90, 0xF0, 0x90, 0x90, // A
	0xE0, 0x90, 0xE0, 0x90, 0xE0, // B
	0xF0, 0x80, 0x80, 0x80, 0xF0, // C
	0xE0, 0x90, 0x90, 0x90, 0xE0, // D
	0xF0, 0x80, 0xF0, 0x80, 0xF0, // E
	0xF0, 0x80, 0xF0, 0x80, 0x80, // F
}

// Display is the 64x32 monochrome pixel grid. Sprites are blitted
// with XOR; the grid is mutated only by Draw and Clear. Rows are
// top to bottom, columns left to right.
type Display struct {
	pixels [ScreenHeight][ScreenWidth]bool

	// sprites that run off the right or bottom edge wrap around
	// instead of being clipped
	wrap bool
}

// Clear turns every pixel off.
func (d *Display) Clear() {
	d.pixels = [ScreenHeight][ScreenWidth]bool{}
}

// Draw XOR-blits a sprite at (x mod 64, y mod 32). Each sprite byte
// is one row of 8 pixels, MSB leftmost. Pixels past the right or
// bottom edge are clipped unless wrap mode is on. Reports whether
// any lit pixel was turned off by the blit.
func (d *Display) Draw(x, y uint8, sprite []byte) bool {
	posX := int(x) % ScreenWidth
	posY := int(y) % ScreenHeight

	collision := false
	for row, spriteByte := range sprite {
		screenY := posY + row
		if screenY >= ScreenHeight {
			if !d.wrap {
				break
			}
			screenY %= ScreenHeight
		}

		for bit := 0; bit < 8; bit++ {
			if spriteByte&(0x80>>bit) == 0 {
				continue
			}

			screenX := posX + bit
			if screenX >= ScreenWidth {
				if !d.wrap {
					continue
				}
				screenX %= ScreenWidth
			}

			if d.pixels[screenY][screenX] {
				collision = true
			}
			d.pixels[screenY][screenX] = !d.pixels[screenY][screenX]
		}
	}
	return collision
}

// PixelAt reports whether the pixel at column x, row y is lit.
// Coordinates outside the grid are never lit.
func (d *Display) PixelAt(x, y int) bool {
	if x < 0 || x >= ScreenWidth || y < 0 || y >= ScreenHeight {
		return false
	}
	return d.pixels[y][x]
}

// Width returns the number of pixel columns.
func (d *Display) Width() int { return ScreenWidth }

// Height returns the number of pixel rows.
func (d *Display) Height() int { return ScreenHeight }
