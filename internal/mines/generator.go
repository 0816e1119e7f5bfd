package mines

import (
	"fmt"
	"hash/maphash"
	"math/rand/v2"
)

type GameParams struct {
	Width, Height, MineCount int
}

func (p GameParams) Capacity() int {
	return p.Width * p.Height
}

// Valid reports whether the board has room for the mines and at
// least one safe cell.
func (p GameParams) Valid() bool {
	return p.Width > 0 && p.Height > 0 &&
		p.MineCount > 0 && p.MineCount < p.Capacity()
}

func (p GameParams) String() string {
	return fmt.Sprintf("%dx%d(%d)", p.Width, p.Height, p.MineCount)
}

// NewRand returns a PCG generator seeded with seed, or with a
// random seed when seed is 0.
func NewRand(seed uint64) *rand.Rand {
	if seed == 0 {
		return rand.New(rand.NewPCG(
			new(maphash.Hash).Sum64(), new(maphash.Hash).Sum64(),
		))
	}
	return rand.New(rand.NewPCG(seed, seed))
}
