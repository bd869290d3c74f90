package tiger

// pkeKeyGen runs PKE.KeyGen: draws fresh seed_a and seed_s, expands a
// from seed_a, samples the Hamming-weight-hs secret s, and rounds a*s
// down to modulus p to form the public value b.
func pkeKeyGen(rand randReader, params *Params) (*PublicKey, *SecretKey, error) {
	seedA, err := randomBytes(rand, 32)
	if err != nil {
		return nil, nil, err
	}
	seedS, err := randomBytes(rand, 32)
	if err != nil {
		return nil, nil, err
	}

	a := sampleUniform(seedA, params.N)
	sSparse := sampleSparseTernary(seedS, params.N, params.Hs)
	s := FromSparse(params.N, sSparse)

	b := a.MultiplySparse(sSparse).ScaleRound(params.P, params.Q)

	pk := &PublicKey{B: b}
	copy(pk.SeedA[:], seedA)
	return pk, &SecretKey{S: s}, nil
}

// pkeEncrypt runs PKE.Encrypt: deterministic given the 32-byte coin, it
// samples r, e1, e2 from the coin (and seeds derived from it), embeds
// msg at amplitude q/2 via the D2-of-XEf encoding, and forms the two
// ciphertext components.
//
// The RLWR rounding of c1 and c2 (scale_round(k1,q), scale_round(k2,q))
// is intentionally omitted from every parameter set. For TiGER128,
// k1 = k2 = q makes that rounding the identity function outright. For
// TiGER192/256, k1 = k2 = q/2, and Ciphertext.Bytes compresses the raw
// residue to log2(k1)/log2(k2) bits per coefficient by truncation: it
// keeps the top bits and drops the rest, which for odd coefficients is
// one step below what scale_round's round-to-nearest would give.
func pkeEncrypt(params *Params, pk *PublicKey, msg []byte, coin []byte) *Ciphertext {
	rSparse := sampleSparseTernary(coin, params.N, params.Hr)

	seedE1 := deriveSeed(coin, 0)
	seedE2 := deriveSeed(coin, 1)
	e1 := FromSparse(params.N, sampleSparseTernary(seedE1, params.N, params.He))
	e2 := FromSparse(params.N, sampleSparseTernary(seedE2, params.N, params.He))

	a := sampleUniform(pk.SeedA[:], params.N)

	c1 := a.MultiplySparse(rSparse).Add(e1)

	codeword := xefEncode(msg, params)
	mPoly := d2Encode(codeword, 2*params.D)

	bScaled := pk.B.Scale(byte(params.Q / params.P))
	c2 := mPoly.Add(bScaled.MultiplySparse(rSparse)).Add(e2)

	return &Ciphertext{C1: c1, C2: c2, Params: params}
}

// pkeDecrypt runs PKE.Decrypt: it recovers the noisy amplitude residue
// c2 - c1*s, rounds it down to a bit plane, lifts that back to the
// amplitude domain the D2 decoder expects, and runs D2 then XEf
// decoding to recover the original message.
func pkeDecrypt(params *Params, sk *SecretKey, ct *Ciphertext) []byte {
	sSparse := sk.S.ToSparse()
	diff := ct.C2.Sub(ct.C1.MultiplySparse(sSparse))

	recovered := diff.ScaleRound(2, params.Q).Scale(byte(params.Q / 2))

	codeword := d2Decode(recovered, 2*params.D)
	return xefDecode(codeword, params)
}
