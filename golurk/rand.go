package golurk

import (
	cryptoRand "crypto/rand"
	"encoding/binary"
)

const (
	rngMultiplier uint32 = 1103515245
	rngIncrement  uint32 = 24691
)

// Rng is the battle's linear congruential generator.
// Its whole state is one word, so copying a BattleState forks the random stream with it.
type Rng struct {
	State uint32
}

func NewRng(seed uint32) Rng {
	return Rng{State: seed}
}

// Next advances the state and returns its upper 16 bits
func (r *Rng) Next() uint16 {
	r.State = r.State*rngMultiplier + rngIncrement
	return uint16(r.State >> 16)
}

// Range returns a value in [0, n). A non-positive n returns 0 without advancing the state.
func (r *Rng) Range(n int) int {
	if n <= 0 {
		return 0
	}

	return int(r.Next()) % n
}

// CreateRandomSeed is for hosts that were not given a seed
func CreateRandomSeed() uint32 {
	var randBytes [4]byte
	_, err := cryptoRand.Read(randBytes[:])
	if err != nil {
		// crypto/rand does not fail on supported platforms
		panic(err)
	}

	return binary.LittleEndian.Uint32(randBytes[:])
}
