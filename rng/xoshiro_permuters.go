package rng

// permutes a [4]uint64 state according to xoshiro256**
// https://prng.di.unimi.it/xoshiro256starstar.c
//
// The output word is scrambled from s[1] as it was before the permutation.
// The xor updates are sequential, not simultaneous: s[1] folds in the s[2]
// computed two lines up, s[0] the s[3] from the line above it. Reordering
// them changes the generator.
func xoshiro256SSPermuteState(s []uint64) (result uint64) {
	result = GenericRotLeft(s[1]*5, 7) * 9

	t := s[1] << 17

	s[2] ^= s[0]
	s[3] ^= s[1]
	s[1] ^= s[2]
	s[0] ^= s[3]

	s[2] ^= t

	s[3] = GenericRotLeft(s[3], 45)

	return result
}
