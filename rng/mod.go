package rng

import (
	"fmt"
	"unsafe"
)

func GenericRotLeft[T uint8 | uint16 | uint32 | uint64](x T, k int) T {
	bitWidth := int(unsafe.Sizeof(x) * 8)
	return (x << k) | (x >> (bitWidth - k))
}

// jumpImpl drives a polynomial jump: for every set bit of the table words
// the current state is folded into the accumulator, and the state is
// permuted once per bit regardless. One permute call per table bit, so a
// four-word table costs exactly 256 calls.
func jumpImpl[T uint8 | uint16 | uint32 | uint64](state []T, table []T, permute func([]T) T) {
	s := make([]T, len(state))

	for i := 0; i < len(table); i++ {
		for b := 0; b < 64; b++ {
			if (table[i] & (1 << b)) != 0 {
				for j := 0; j < len(state); j++ {
					s[j] ^= state[j]
				}
			}
			_ = permute(state)
		}
	}

	copy(state, s)
}

func stateToString[T uint8 | uint16 | uint32 | uint64](arr []T) string {
	ret := ""

	for _, v := range arr {
		bitWidth := int(unsafe.Sizeof(v) * 8)
		ret += fmt.Sprintf("%0[1]*[2]x", bitWidth/4, v)
	}

	return ret
}
