package common

import "testing"

func TestMakeRandHexString(t *testing.T) {
	s1, err := MakeRandHexString(16)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(s1) != 32 {
		t.Errorf("want 32 hex chars, got %d", len(s1))
	}
	s2, _ := MakeRandHexString(16)
	if s1 == s2 {
		t.Error("two random strings should differ")
	}
}

func TestGenerateRandByteArray(t *testing.T) {
	b := GenerateRandByteArray(32)
	if len(b) != 32 {
		t.Errorf("want 32 bytes, got %d", len(b))
	}
}
