package p25voice

import "testing"

func TestCryptoControlFields(t *testing.T) {
	c := NewCryptoControlFields([12]byte{
		0, 0, 0, 1, 0, 0, 0, 2, 0,
		0b10000100,
		0xDE, 0xAD,
	})

	if string(c.CryptoInit()) != string([]byte{0, 0, 0, 1, 0, 0, 0, 2, 0}) {
		t.Fatalf("crypto init = %v", c.CryptoInit())
	}
	alg, ok := c.CryptoAlg()
	if !ok || alg != AES {
		t.Fatalf("crypto alg = %v, %v", alg, ok)
	}
	if c.CryptoKey() != 0xDEAD {
		t.Fatalf("crypto key = %#x", c.CryptoKey())
	}
}

func TestCryptoAlgorithmFromBitsUnknown(t *testing.T) {
	if _, ok := CryptoAlgorithmFromBits(0xFF); ok {
		t.Fatal("expected unknown algorithm to report ok=false")
	}
}
