package tiger

// gf is a table-driven GF(2^m) finite field: log/antilog tables built
// once from a primitive polynomial via the standard LFSR construction,
// in the idiom the surrounding ring arithmetic already uses for small
// hand-rolled field code (no third-party finite-field library appears
// anywhere in the corpus this package was grounded on). Field elements
// are represented as ints in [0, size], where 0 is the additive
// identity and 1..size are alpha^log[x] for the multiplicative group.
type gf struct {
	m    int
	size int // 2^m - 1, the multiplicative group order
	exp  []int
	log  []int
}

// newGF builds the GF(2^m) field defined by the primitive polynomial
// poly (its bit pattern, with the x^m term implied).
func newGF(m int, poly int) *gf {
	size := (1 << uint(m)) - 1
	exp := make([]int, 2*size)
	log := make([]int, size+1)

	x := 1
	for i := 0; i < size; i++ {
		exp[i] = x
		log[x] = i
		x <<= 1
		if x&(1<<uint(m)) != 0 {
			x ^= poly
		}
	}
	for i := size; i < 2*size; i++ {
		exp[i] = exp[i-size]
	}
	return &gf{m: m, size: size, exp: exp, log: log}
}

func (g *gf) mul(a, b int) int {
	if a == 0 || b == 0 {
		return 0
	}
	return g.exp[g.log[a]+g.log[b]]
}

func (g *gf) inv(a int) int {
	return g.exp[g.size-g.log[a]]
}

// polyMulGF multiplies two polynomials with coefficients in GF(2^m),
// low-degree-first, using field multiplication and XOR (= GF(2^m), and
// therefore GF(2), addition).
func (g *gf) polyMulGF(a, b []int) []int {
	out := make([]int, len(a)+len(b)-1)
	for i, ai := range a {
		if ai == 0 {
			continue
		}
		for j, bj := range b {
			out[i+j] ^= g.mul(ai, bj)
		}
	}
	return out
}

// minimalPoly returns the minimal polynomial of alpha^i over GF(2), as a
// low-degree-first coefficient list whose entries are the field elements
// 0 and 1. It is computed as the product of (x + alpha^c) over every
// conjugate c in the cyclotomic coset of i modulo g.size.
func (g *gf) minimalPoly(i int) []int {
	i %= g.size
	seen := make(map[int]bool)
	poly := []int{1}
	c := i
	for !seen[c] {
		seen[c] = true
		poly = g.polyMulGF(poly, []int{g.exp[c], 1})
		c = (c * 2) % g.size
	}
	return poly
}
