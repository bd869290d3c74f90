package tiger

import "golang.org/x/crypto/sha3"

// shake256 returns outLen bytes of SHAKE256 output over the concatenation
// of parts, matching the FIPS-202 XOF contract the reference design
// treats as an external oracle.
func shake256(outLen int, parts ...[]byte) []byte {
	h := sha3.NewShake256()
	for _, p := range parts {
		h.Write(p)
	}
	out := make([]byte, outLen)
	h.Read(out)
	return out
}

// sha3Sum256 returns the 32-byte SHA3-256 digest of the concatenation of
// parts.
func sha3Sum256(parts ...[]byte) [32]byte {
	h := sha3.New256()
	for _, p := range parts {
		h.Write(p)
	}
	var out [32]byte
	h.Sum(out[:0])
	return out
}
