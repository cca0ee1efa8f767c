package token

import (
	"errors"
	"testing"
)

func TestHashIP_DevFallbackSalt(t *testing.T) {
	h := NewIPHasher("", false)

	got, err := h.HashIP("127.0.0.1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// sha256("127.0.0.1:privy-default-salt-change-in-prod")
	const want = "7d140f2c15f7dcc2e49fbb8b93b25aa12f5a31c645c49c8874472d72cb4d2728"
	if got != want {
		t.Errorf("HashIP = %q, want %q", got, want)
	}
}

func TestHashIP_ProductionRequiresSalt(t *testing.T) {
	h := NewIPHasher("", true)

	_, err := h.HashIP("10.0.0.1")
	if !errors.Is(err, ErrMissingIPSalt) {
		t.Fatalf("expected ErrMissingIPSalt, got %v", err)
	}
}

func TestHashIP_SaltChangesDigest(t *testing.T) {
	a, err := NewIPHasher("salt-a", true).HashIP("10.0.0.1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	b, err := NewIPHasher("salt-b", true).HashIP("10.0.0.1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if a == b {
		t.Error("digests with different salts are identical")
	}
}

func TestHashIP_Deterministic(t *testing.T) {
	h := NewIPHasher("salt", true)

	a, _ := h.HashIP("192.168.1.1")
	b, _ := h.HashIP("192.168.1.1")
	if a != b {
		t.Error("two digests of the same ip differ")
	}
	if len(a) != 64 {
		t.Errorf("expected 64 hex chars, got %d", len(a))
	}
}
