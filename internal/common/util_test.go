package common

import (
	"bytes"
	"testing"
)

func TestGenerateRandByteArray_Basic(t *testing.T) {
	const n = 32
	buf := GenerateRandByteArray(n)
	if len(buf) != n {
		t.Fatalf("length mismatch: got %d want %d", len(buf), n)
	}
}

func TestGenerateRandByteArray_EntropyHint(t *testing.T) {
	const n = 32
	a := GenerateRandByteArray(n)
	b := GenerateRandByteArray(n)

	if bytes.Equal(a, b) {
		t.Logf("warning: two GenerateRandByteArray(%d) results are identical; extremely unlikely", n)
		t.Fatalf("random source looks broken")
	}
}
