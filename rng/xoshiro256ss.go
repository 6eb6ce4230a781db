package rng

import (
	"encoding/binary"
)

// Xoshiro256SSState is the 256-bit state of a xoshiro256** generator. The
// caller owns the value; nothing here is safe for concurrent mutation. The
// all-zero state is a fixed point of the permutation, so a generator that
// was never seeded (or was seeded with 32 zero bytes) outputs zero forever.
// Neither the constructor nor Seed guards against that, matching upstream.
type Xoshiro256SSState struct {
	State [4]uint64
}

func NewXoshiro256SS() *Xoshiro256SSState {
	state := Xoshiro256SSState{
		State: [4]uint64{0, 0, 0, 0},
	}

	return &state
}

// Seed pastes the given 32 bytes of seed material into the state in an
// endian-proof way: byte 0 becomes the most significant byte of State[0].
// Two machines of differing native byte order seeded with the same bytes
// produce bit-identical sequences.
func (state *Xoshiro256SSState) Seed(seed [32]byte) {
	for i := 0; i < 4; i++ {
		state.State[i] = binary.BigEndian.Uint64(seed[i*8:])
	}
}

// Next returns the raw 64-bit output of the generator, advancing the state
// by one step.
func (state *Xoshiro256SSState) Next() uint64 {
	return xoshiro256SSPermuteState(state.State[:])
}

// Jump128 advances the state as if Next had been called 2^128 times, at a
// cost of 256 actual permutations. Repeated jumps from one seed carve
// non-overlapping subsequences for parallel streams.
func (state *Xoshiro256SSState) Jump128() {
	var jump = [4]uint64{
		0x180ec6d33cfd0aba,
		0xd5a61266f0c9392c,
		0xa9582618e03fc9aa,
		0x39abdc4529b1661c,
	}

	jumpImpl(state.State[:], jump[:], xoshiro256SSPermuteState)
}

func (state *Xoshiro256SSState) String() string {
	return stateToString(state.State[:])
}
