package tiger

import (
	"errors"
	"fmt"
)

// ErrMalformedKey is returned when a serialized public or secret key
// does not have the length its parameter set requires.
var ErrMalformedKey = errors.New("tiger: malformed key")

// ErrMalformedCiphertext is returned when a serialized ciphertext does
// not have the length its parameter set requires.
var ErrMalformedCiphertext = errors.New("tiger: malformed ciphertext")

// PublicKey is the PKE-layer public key: a. is never stored, only the
// 32-byte seed it is regenerated from on demand, plus the rounded
// product b = round((p/q)*a*s).
type PublicKey struct {
	SeedA [32]byte
	B     Polynomial
}

// SecretKey is the PKE-layer secret key: the dense representation of
// the sparse ternary secret s.
type SecretKey struct {
	S Polynomial
}

// packPublicKey serializes pk as [seed_a : 32][b compressed at log2(p) bits/coeff].
func packPublicKey(pk *PublicKey, params *Params) []byte {
	out := make([]byte, params.PKBytes)
	copy(out, pk.SeedA[:])
	copy(out[32:], pk.B.Compress(log2PowerOfTwo(params.P)))
	return out
}

// unpackPublicKey is the inverse of packPublicKey.
func unpackPublicKey(data []byte, params *Params) (*PublicKey, error) {
	if len(data) != params.PKBytes {
		return nil, fmt.Errorf("%w: public key has %d bytes, want %d", ErrMalformedKey, len(data), params.PKBytes)
	}
	pk := &PublicKey{B: Decompress(data[32:], params.N, log2PowerOfTwo(params.P))}
	copy(pk.SeedA[:], data[:32])
	return pk, nil
}

// packSecretKeyPKE serializes the PKE secret key plus u (the KEM-layer
// implicit-rejection randomness) as [s : N bytes, dense][u : u_size bytes].
func packSecretKeyPKE(sk *SecretKey, u []byte, params *Params) []byte {
	out := make([]byte, params.SKBytes)
	copy(out, sk.S)
	copy(out[params.N:], u)
	return out
}

// unpackSecretKeyPKE is the inverse of packSecretKeyPKE.
func unpackSecretKeyPKE(data []byte, params *Params) (*SecretKey, []byte, error) {
	if len(data) != params.SKBytes {
		return nil, nil, fmt.Errorf("%w: secret key has %d bytes, want %d", ErrMalformedKey, len(data), params.SKBytes)
	}
	s := make(Polynomial, params.N)
	copy(s, data[:params.N])
	u := make([]byte, params.USize)
	copy(u, data[params.N:])
	return &SecretKey{S: s}, u, nil
}

// Ciphertext is a packed TiGER ciphertext: two ring elements, each
// compressed at its own rounding modulus.
type Ciphertext struct {
	C1, C2 Polynomial
	Params *Params
}

// Bytes serializes ct as [c1 compressed at log2(k1)][c2 compressed at log2(k2)].
func (ct *Ciphertext) Bytes() []byte {
	params := ct.Params
	out := make([]byte, params.CTBytes)
	c1 := ct.C1.Compress(log2PowerOfTwo(params.K1))
	copy(out, c1)
	copy(out[len(c1):], ct.C2.Compress(log2PowerOfTwo(params.K2)))
	return out
}

// ParseCiphertext is the inverse of Ciphertext.Bytes.
func ParseCiphertext(data []byte, params *Params) (*Ciphertext, error) {
	if len(data) != params.CTBytes {
		return nil, fmt.Errorf("%w: ciphertext has %d bytes, want %d", ErrMalformedCiphertext, len(data), params.CTBytes)
	}
	c1Bytes := (params.N*log2PowerOfTwo(params.K1) + 7) / 8
	return &Ciphertext{
		C1:     Decompress(data[:c1Bytes], params.N, log2PowerOfTwo(params.K1)),
		C2:     Decompress(data[c1Bytes:], params.N, log2PowerOfTwo(params.K2)),
		Params: params,
	}, nil
}
