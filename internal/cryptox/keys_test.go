package cryptox

import (
	"bytes"
	"testing"
)

func TestDeriveMasterKeyDeterministic(t *testing.T) {
	salt := []byte("0123456789abcdef")

	k1 := DeriveMasterKey([]byte("hunter2"), salt)
	k2 := DeriveMasterKey([]byte("hunter2"), salt)
	if !bytes.Equal(k1, k2) {
		t.Error("same password and salt must derive the same key")
	}
	if len(k1) != 32 {
		t.Errorf("want 32-byte key, got %d", len(k1))
	}

	k3 := DeriveMasterKey([]byte("hunter3"), salt)
	if bytes.Equal(k1, k3) {
		t.Error("different passwords must derive different keys")
	}
}

func TestMakeVerifier(t *testing.T) {
	v := MakeVerifier([]byte("key"))
	if len(v) != 32 {
		t.Errorf("want sha256 digest, got %d bytes", len(v))
	}
}

func TestWipe(t *testing.T) {
	b := []byte("secret")
	Wipe(b)
	for _, c := range b {
		if c != 0 {
			t.Fatal("buffer not wiped")
		}
	}
}
