// Package tiger implements TiGER, a lattice-based Key Encapsulation
// Mechanism (KEM) built from Ring-LWE / Ring-LWR over the quotient ring
// R_q = Z_256[X] / (X^N + 1).
//
// TiGER offers three parameter sets targeting NIST security levels 1, 3,
// and 5. An IND-CPA public-key encryption primitive is lifted to an
// IND-CCA KEM via a Fujisaki-Okamoto transform with implicit rejection.
//
// Basic usage:
//
//	pub, priv, err := tiger.GenerateKeyPair(rand.Reader, tiger.TiGER256())
//	if err != nil {
//	    // handle error
//	}
//	ct, ss, err := tiger.Encapsulate(rand.Reader, pub)
//	if err != nil {
//	    // handle error
//	}
//	ss2, err := tiger.Decapsulate(priv, ct)
//	if err != nil {
//	    // handle error
//	}
//	// ss and ss2 are equal 32-byte shared secrets.
package tiger

// SeedSize is the number of random bytes key generation draws for the
// PKE seeds seed_a and seed_s (32 bytes each), before the u_size bytes
// of implicit-rejection randomness.
const SeedSize = 64

// SharedSecretSize is the size in bytes of the value produced by
// Encapsulate and Decapsulate.
const SharedSecretSize = 32

// GenerateKeyPair runs KEM.KeyGen for the given parameter set, drawing
// all required randomness from rand.
func GenerateKeyPair(rand randReader, params *Params) (*KEMPublicKey, *KEMSecretKey, error) {
	return kemKeyGen(rand, params)
}

// Encapsulate runs KEM.Encaps against pub, drawing randomness from rand.
// It returns the ciphertext and the 32-byte shared secret.
func Encapsulate(rand randReader, pub *KEMPublicKey) (*Ciphertext, [SharedSecretSize]byte, error) {
	return kemEncapsulate(rand, pub)
}

// Decapsulate runs KEM.Decaps, recovering the shared secret bound to ct.
// On a tampered or mismatched ciphertext it returns a pseudo-random
// value via implicit rejection rather than an error.
func Decapsulate(priv *KEMSecretKey, ct *Ciphertext) ([SharedSecretSize]byte, error) {
	return kemDecapsulate(priv, ct)
}
