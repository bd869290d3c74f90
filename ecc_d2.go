package tiger

// d2Encode maps each bit of a 2d-bit codeword to two adjacent polynomial
// coefficients, each set to 128 (q/2) if the bit is 1, else 0.
func d2Encode(codeword []byte, bitCount int) Polynomial {
	bits := unpackBitsMSB(codeword, bitCount)
	poly := make(Polynomial, 2*bitCount)
	for i, b := range bits {
		var v byte
		if b == 1 {
			v = 128
		}
		poly[2*i] = v
		poly[2*i+1] = v
	}
	return poly
}

// d2Decode recovers a bitCount-bit codeword from a decryption residue
// polynomial: bit i is 1 iff the unsigned sum of coefficients 2i and
// 2i+1 is at least 128.
func d2Decode(poly Polynomial, bitCount int) []byte {
	bits := make([]int, bitCount)
	for i := 0; i < bitCount; i++ {
		sum := int(poly[2*i]) + int(poly[2*i+1])
		if sum >= 128 {
			bits[i] = 1
		}
	}
	return packBitsMSB(bits)
}
