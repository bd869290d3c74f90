package tiger

import (
	"bytes"
	"crypto/rand"
	"io"
	"testing"
)

// zeroReader is an infinite stream of zero bytes, used to extend a fixed
// seed so a deterministic randReader never runs dry mid key-generation.
type zeroReader struct{}

func (zeroReader) Read(p []byte) (int, error) {
	for i := range p {
		p[i] = 0
	}
	return len(p), nil
}

func seededReader(seed []byte) io.Reader {
	return io.MultiReader(bytes.NewReader(seed), zeroReader{})
}

func TestKEMRoundTrip(t *testing.T) {
	for _, params := range []*Params{TiGER128(), TiGER192(), TiGER256()} {
		pub, priv, err := GenerateKeyPair(rand.Reader, params)
		if err != nil {
			t.Fatalf("%s: GenerateKeyPair: %v", params.Level, err)
		}
		ct, ss, err := Encapsulate(rand.Reader, pub)
		if err != nil {
			t.Fatalf("%s: Encapsulate: %v", params.Level, err)
		}
		ss2, err := Decapsulate(priv, ct)
		if err != nil {
			t.Fatalf("%s: Decapsulate: %v", params.Level, err)
		}
		if ss != ss2 {
			t.Errorf("%s: ss = %x, ss2 = %x, want equal", params.Level, ss, ss2)
		}
	}
}

func TestKEMWrongKeyRejection(t *testing.T) {
	params := TiGER128()
	pubA, _, err := GenerateKeyPair(rand.Reader, params)
	if err != nil {
		t.Fatalf("GenerateKeyPair A: %v", err)
	}
	_, privB, err := GenerateKeyPair(rand.Reader, params)
	if err != nil {
		t.Fatalf("GenerateKeyPair B: %v", err)
	}
	ct, ss, err := Encapsulate(rand.Reader, pubA)
	if err != nil {
		t.Fatalf("Encapsulate: %v", err)
	}
	ssWrong, err := Decapsulate(privB, ct)
	if err != nil {
		t.Fatalf("Decapsulate: %v", err)
	}
	if ssWrong == ss {
		t.Error("Decapsulate under the wrong secret key reproduced the original shared secret")
	}
}

func TestKEMImplicitRejectionOnTamperedCiphertext(t *testing.T) {
	params := TiGER128()
	pub, priv, err := GenerateKeyPair(rand.Reader, params)
	if err != nil {
		t.Fatalf("GenerateKeyPair: %v", err)
	}
	ct, ss, err := Encapsulate(rand.Reader, pub)
	if err != nil {
		t.Fatalf("Encapsulate: %v", err)
	}

	tampered := ct.Bytes()
	tampered[0] ^= 0x01
	tamperedCT, err := ParseCiphertext(tampered, params)
	if err != nil {
		t.Fatalf("ParseCiphertext: %v", err)
	}

	ssTampered, err := Decapsulate(priv, tamperedCT)
	if err != nil {
		t.Fatalf("Decapsulate: %v", err)
	}
	if ssTampered == ss {
		t.Error("Decapsulate accepted a tampered ciphertext and returned the original shared secret")
	}

	// Decapsulate must still succeed (return a value, not an error) and
	// must be deterministic for the same tampered ciphertext and key.
	ssTamperedAgain, err := Decapsulate(priv, tamperedCT)
	if err != nil {
		t.Fatalf("Decapsulate (second call): %v", err)
	}
	if ssTampered != ssTamperedAgain {
		t.Error("implicit rejection value is not deterministic across repeated Decapsulate calls")
	}
}

func TestKEMDeterministicGivenSameRandomness(t *testing.T) {
	params := TiGER128()
	seed := make([]byte, 2*32)
	for i := range seed {
		seed[i] = byte(i)
	}

	pub1, priv1, err := GenerateKeyPair(seededReader(seed), params)
	if err != nil {
		t.Fatalf("GenerateKeyPair (1): %v", err)
	}
	pub2, priv2, err := GenerateKeyPair(seededReader(seed), params)
	if err != nil {
		t.Fatalf("GenerateKeyPair (2): %v", err)
	}
	if !bytes.Equal(packPublicKey(pub1.PKE, params), packPublicKey(pub2.PKE, params)) {
		t.Error("GenerateKeyPair with identical randomness produced different public keys")
	}
	if !bytes.Equal(priv1.S, priv2.S) || !bytes.Equal(priv1.U, priv2.U) {
		t.Error("GenerateKeyPair with identical randomness produced different secret keys")
	}
}

func packKEMPublicKeyForTest(pub *KEMPublicKey) []byte {
	return packPublicKey(pub.PKE, pub.Params)
}

func packKEMSecretKeyForTest(priv *KEMSecretKey) []byte {
	return packSecretKeyPKE(&SecretKey{S: priv.S}, priv.U, priv.Params)
}

func TestE2EKEM128(t *testing.T) {
	params := TiGER128()
	masterSeed := make([]byte, SeedSize)

	pub, priv, err := GenerateKeyPair(seededReader(masterSeed), params)
	if err != nil {
		t.Fatalf("GenerateKeyPair: %v", err)
	}
	if got, want := len(packKEMPublicKeyForTest(pub)), 480; got != want {
		t.Errorf("len(pk) = %d, want %d", got, want)
	}
	if got, want := len(packKEMSecretKeyForTest(priv)), 528; got != want {
		t.Errorf("len(sk) = %d, want %d", got, want)
	}

	delta := make([]byte, params.D/8) // deterministic coin: delta = 0x00 x 16
	ct, ss, err := Encapsulate(bytes.NewReader(delta), pub)
	if err != nil {
		t.Fatalf("Encapsulate: %v", err)
	}
	if got, want := len(ct.Bytes()), 1024; got != want {
		t.Errorf("len(ct) = %d, want %d", got, want)
	}
	if len(ss) != 32 {
		t.Errorf("len(ss) = %d, want 32", len(ss))
	}

	ss2, err := Decapsulate(priv, ct)
	if err != nil {
		t.Fatalf("Decapsulate: %v", err)
	}
	if ss != ss2 {
		t.Errorf("Decapsulate(pk,sk,ct) = %x, want %x", ss2, ss)
	}

	tampered := ct.Bytes()
	tampered[0] ^= 0xFF
	tamperedCT, err := ParseCiphertext(tampered, params)
	if err != nil {
		t.Fatalf("ParseCiphertext: %v", err)
	}
	ssRejected, err := Decapsulate(priv, tamperedCT)
	if err != nil {
		t.Fatalf("Decapsulate (tampered): %v", err)
	}
	if ssRejected == ss {
		t.Error("implicit rejection returned the original shared secret for a tampered ciphertext")
	}
}

func TestE2EKEM256(t *testing.T) {
	params := TiGER256()
	masterSeed := make([]byte, SeedSize)
	for i := range masterSeed {
		masterSeed[i] = byte(i)
	}

	pub, priv, err := GenerateKeyPair(seededReader(masterSeed), params)
	if err != nil {
		t.Fatalf("GenerateKeyPair: %v", err)
	}
	if got, want := len(packKEMPublicKeyForTest(pub)), 928; got != want {
		t.Errorf("len(pk) = %d, want %d", got, want)
	}
	if got, want := len(packKEMSecretKeyForTest(priv)), 1056; got != want {
		t.Errorf("len(sk) = %d, want %d", got, want)
	}

	delta := bytes.Repeat([]byte{0xAA}, params.D/8)
	ct, ss, err := Encapsulate(bytes.NewReader(delta), pub)
	if err != nil {
		t.Fatalf("Encapsulate: %v", err)
	}
	if got, want := len(ct.Bytes()), 1792; got != want {
		t.Errorf("len(ct) = %d, want %d", got, want)
	}

	ss2, err := Decapsulate(priv, ct)
	if err != nil {
		t.Fatalf("Decapsulate: %v", err)
	}
	if ss != ss2 {
		t.Errorf("Decapsulate(pk,sk,ct) = %x, want %x", ss2, ss)
	}
}
