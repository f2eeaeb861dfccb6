package chip8

import v2 "math/rand/v2"

// Random produces one uniformly distributed byte per call. The RND
// opcode is the only consumer. Implementations may be deterministic,
// which the tests rely on; no seeding is ever done by the machine.
type Random interface {
	NextByte() uint8
}

// RandomFunc adapts a plain function to the Random interface.
type RandomFunc func() uint8

func (f RandomFunc) NextByte() uint8 { return f() }

// NewRandom returns the default Random backed by math/rand/v2.
func NewRandom() Random {
	return RandomFunc(func() uint8 {
		return uint8(v2.IntN(0x100))
	})
}
