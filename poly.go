package tiger

import "crypto/subtle"

// Polynomial is a ring element of R_q = Z_256[X] / (X^N + 1): an ordered
// sequence of N byte-valued coefficients. Arithmetic is negacyclic and
// every coefficient operation wraps modulo 256 via Go's unsigned byte
// arithmetic. A Polynomial is a value type; copy it with append(nil, p...)
// or copyPolynomial when independent storage is required.
type Polynomial []byte

// newPolynomial returns the zero polynomial of dimension n.
func newPolynomial(n int) Polynomial {
	return make(Polynomial, n)
}

func copyPolynomial(p Polynomial) Polynomial {
	out := make(Polynomial, len(p))
	copy(out, p)
	return out
}

// Add returns p + other, coefficient-wise modulo 256.
func (p Polynomial) Add(other Polynomial) Polynomial {
	out := make(Polynomial, len(p))
	for i := range p {
		out[i] = p[i] + other[i]
	}
	return out
}

// Sub returns p - other, coefficient-wise modulo 256.
func (p Polynomial) Sub(other Polynomial) Polynomial {
	out := make(Polynomial, len(p))
	for i := range p {
		out[i] = p[i] - other[i]
	}
	return out
}

// Neg returns -p, coefficient-wise modulo 256.
func (p Polynomial) Neg() Polynomial {
	out := make(Polynomial, len(p))
	for i := range p {
		out[i] = -p[i]
	}
	return out
}

// Scale returns p with every coefficient multiplied by f modulo 256.
func (p Polynomial) Scale(f byte) Polynomial {
	out := make(Polynomial, len(p))
	for i := range p {
		out[i] = p[i] * f
	}
	return out
}

// ScaleRound returns p with every coefficient x replaced by
// floor((x*num + den/2) / den), x treated as an unsigned value in
// [0,255]. It provides the RLWR rounding used both to derive the public
// key from a*s and to decode a message bit from the decryption residue.
func (p Polynomial) ScaleRound(num, den int) Polynomial {
	out := make(Polynomial, len(p))
	for i, c := range p {
		v := (int(c)*num + den/2) / den
		out[i] = byte(v)
	}
	return out
}

// MultiplySchoolbook returns the negacyclic product p*other computed via
// the textbook O(N^2) convolution. It exists for use in tests that check
// polynomial-ring laws against the sparse multiplier; production paths
// use MultiplySparse.
func (p Polynomial) MultiplySchoolbook(other Polynomial) Polynomial {
	n := len(p)
	t := make([]byte, 2*n)
	for i, a := range p {
		if a == 0 {
			continue
		}
		for j, b := range other {
			t[i+j] += a * b
		}
	}
	out := make(Polynomial, n)
	for i := 0; i < n; i++ {
		out[i] = t[i] - t[i+n]
	}
	return out
}

// SparseTerm is a single non-zero entry of a SparseTernary polynomial.
type SparseTerm struct {
	Index int
	Sign  int8 // +1 or -1
}

// SparseTernary is the compact (index, sign) representation of a
// polynomial whose non-zero coefficients are all +-1 with a fixed count
// (the Hamming weight).
type SparseTernary []SparseTerm

// MultiplySparse returns the negacyclic product p*s, where s is a sparse
// ternary polynomial. Complexity is O(N * len(s)) rather than the
// schoolbook O(N^2), since every term of s contributes a single signed,
// rotated copy of p.
func (p Polynomial) MultiplySparse(s SparseTernary) Polynomial {
	n := len(p)
	acc := make(Polynomial, n)
	for _, term := range s {
		j := term.Index
		for i := 0; i < n; i++ {
			val := p[i]
			pos := i + j
			if pos >= n {
				pos -= n
				val = -val // X^N = -1: wrap flips sign
			}
			if term.Sign < 0 {
				val = -val
			}
			acc[pos] += val
		}
	}
	return acc
}

// ToSparse extracts the sparse ternary view of p: coefficients equal to
// 1 yield (i,+1), coefficients equal to 255 yield (i,-1), all others are
// ignored.
func (p Polynomial) ToSparse() SparseTernary {
	var s SparseTernary
	for i, c := range p {
		switch c {
		case 1:
			s = append(s, SparseTerm{Index: i, Sign: 1})
		case 255:
			s = append(s, SparseTerm{Index: i, Sign: -1})
		}
	}
	return s
}

// FromSparse materializes the dense form of a sparse ternary polynomial
// of dimension n.
func FromSparse(n int, s SparseTernary) Polynomial {
	p := make(Polynomial, n)
	for _, t := range s {
		if t.Sign > 0 {
			p[t.Index] = 1
		} else {
			p[t.Index] = 255
		}
	}
	return p
}

// Compress packs p into ceil(len(p)*logMod/8) bytes, keeping the top
// logMod bits of each coefficient. This is lossy unless logMod == 8.
func (p Polynomial) Compress(logMod int) []byte {
	n := len(p)
	out := make([]byte, (n*logMod+7)/8)
	var acc uint32
	var accBits uint
	pos := 0
	for _, c := range p {
		v := uint32(c) >> uint(8-logMod)
		acc |= v << accBits
		accBits += uint(logMod)
		for accBits >= 8 {
			out[pos] = byte(acc)
			pos++
			acc >>= 8
			accBits -= 8
		}
	}
	if accBits > 0 {
		out[pos] = byte(acc)
	}
	return out
}

// Decompress unpacks n coefficients, each logMod bits wide, from in,
// placing each value in the high bits of the output coefficient and
// zero-filling the rest. It is the inverse of Compress when logMod == 8,
// and otherwise recovers only the top logMod bits of each coefficient.
func Decompress(in []byte, n, logMod int) Polynomial {
	out := make(Polynomial, n)
	var acc uint32
	var accBits uint
	pos := 0
	mask := uint32(1<<uint(logMod)) - 1
	for i := 0; i < n; i++ {
		for accBits < uint(logMod) {
			acc |= uint32(in[pos]) << accBits
			pos++
			accBits += 8
		}
		v := acc & mask
		acc >>= uint(logMod)
		accBits -= uint(logMod)
		out[i] = byte(v << uint(8-logMod))
	}
	return out
}

// ctEqual reports whether a and b are equal, comparing every byte with
// no data-dependent branching or early exit. It wraps
// crypto/subtle.ConstantTimeCompare, the idiomatic Go primitive for this
// contract.
func ctEqual(a, b []byte) bool {
	return subtle.ConstantTimeCompare(a, b) == 1
}
