package tiger

import "crypto/subtle"

// KEMPublicKey is the IND-CCA public key produced by GenerateKeyPair.
type KEMPublicKey struct {
	PKE    *PublicKey
	Params *Params
}

// KEMSecretKey is the IND-CCA secret key produced by GenerateKeyPair. It
// holds the dense PKE secret s, the u_size bytes of implicit-rejection
// randomness u, and the matching public key (needed to re-encrypt
// during Decapsulate).
type KEMSecretKey struct {
	S      Polynomial
	U      []byte
	PK     *PublicKey
	Params *Params
}

// Zero wipes the secret material held by sk. Callers that no longer
// need a KEMSecretKey should defer sk.Zero() immediately after use.
func (sk *KEMSecretKey) Zero() {
	zeroBytes(sk.S)
	zeroBytes(sk.U)
}

// kemKeyGen implements KEM.KeyGen: run PKE.KeyGen, then draw the u_size
// bytes of implicit-rejection randomness stored alongside the secret.
func kemKeyGen(rand randReader, params *Params) (*KEMPublicKey, *KEMSecretKey, error) {
	if err := params.Validate(); err != nil {
		return nil, nil, err
	}
	pkePub, pkeSec, err := pkeKeyGen(rand, params)
	if err != nil {
		return nil, nil, err
	}
	u, err := randomBytes(rand, params.USize)
	if err != nil {
		return nil, nil, err
	}
	pub := &KEMPublicKey{PKE: pkePub, Params: params}
	priv := &KEMSecretKey{S: pkeSec.S, U: u, PK: pkePub, Params: params}
	return pub, priv, nil
}

// kemEncapsulate implements KEM.Encaps: draw a random d-bit message
// delta, derive the deterministic encryption coin from its SHA3-256
// digest, encrypt, and derive the shared secret from the ciphertext and
// delta together.
func kemEncapsulate(rand randReader, pub *KEMPublicKey) (*Ciphertext, [SharedSecretSize]byte, error) {
	params := pub.Params
	delta, err := randomBytes(rand, params.D/8)
	if err != nil {
		return nil, [SharedSecretSize]byte{}, err
	}
	defer zeroBytes(delta)

	hDelta := sha3Sum256(delta)
	ct := pkeEncrypt(params, pub.PKE, delta, hDelta[:])

	var ss [SharedSecretSize]byte
	copy(ss[:], shake256(SharedSecretSize, ct.Bytes(), delta))
	return ct, ss, nil
}

// kemDecapsulate implements KEM.Decaps: decrypt, deterministically
// re-encrypt, and compare ciphertexts in constant time. On a match the
// shared secret is derived from the recovered message; on a mismatch it
// is derived from the secret-key's implicit-rejection value u instead,
// with the choice itself made via a constant-time byte blend rather
// than a data-dependent branch.
func kemDecapsulate(priv *KEMSecretKey, ct *Ciphertext) ([SharedSecretSize]byte, error) {
	params := priv.Params
	sk := &SecretKey{S: priv.S}

	deltaHat := pkeDecrypt(params, sk, ct)
	defer zeroBytes(deltaHat)

	hDeltaHat := sha3Sum256(deltaHat)
	ctPrime := pkeEncrypt(params, priv.PK, deltaHat, hDeltaHat[:])

	ctBytes := ct.Bytes()
	ctPrimeBytes := ctPrime.Bytes()
	match := subtle.ConstantTimeCompare(ctBytes, ctPrimeBytes)

	suffix := make([]byte, len(deltaHat))
	copy(suffix, deltaHat)
	subtle.ConstantTimeCopy(1-match, suffix, priv.U)
	defer zeroBytes(suffix)

	var ss [SharedSecretSize]byte
	copy(ss[:], shake256(SharedSecretSize, ctBytes, suffix))
	return ss, nil
}
