package tiger

import "encoding/binary"

// sampleUniform expands a 32-byte seed into a uniformly random
// polynomial of dimension n via direct SHAKE256 output.
func sampleUniform(seed []byte, n int) Polynomial {
	return Polynomial(shake256(n, seed))
}

// sampleSparseTernary draws a Hamming-weight-exact sparse ternary
// polynomial of dimension n and weight h from a 32-byte seed. It expands
// the seed to 3h bytes via SHAKE256, selects h distinct positions with a
// truncated Fisher-Yates shuffle driven by a 16-bit big-endian window per
// position, then assigns each selected position a sign from the low bit
// of one further stream byte.
//
// The 16-bit window keeps the modulo bias from N <= 1024 negligible at
// the sampler's target failure rates; it is not a general-purpose
// unbiased shuffle.
func sampleSparseTernary(seed []byte, n, h int) SparseTernary {
	stream := shake256(3*h, seed)

	positions := make([]int, n)
	for i := range positions {
		positions[i] = i
	}
	for i := 0; i < h; i++ {
		r := binary.BigEndian.Uint16(stream[2*i : 2*i+2])
		j := i + int(r)%(n-i)
		positions[i], positions[j] = positions[j], positions[i]
	}

	out := make(SparseTernary, h)
	for i := 0; i < h; i++ {
		sign := int8(-1)
		if stream[2*h+i]&1 == 1 {
			sign = 1
		}
		out[i] = SparseTerm{Index: positions[i], Sign: sign}
	}
	return out
}

// deriveSeed produces a 32-byte seed from a base seed and a counter,
// used to split an encryption coin into independent seeds for e1 and e2.
func deriveSeed(base []byte, counter uint32) []byte {
	var ctr [4]byte
	binary.LittleEndian.PutUint32(ctr[:], counter)
	return shake256(32, base, ctr[:])
}
