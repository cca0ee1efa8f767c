package token

import (
	"strings"
	"testing"
)

func TestGenerateSecret_Format(t *testing.T) {
	secret, err := GenerateSecret()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(secret) != 64 {
		t.Errorf("expected 64 chars, got %d", len(secret))
	}
	if !IsValidFormat(secret) {
		t.Errorf("generated secret failed its own format check: %q", secret)
	}
	if secret != strings.ToLower(secret) {
		t.Errorf("expected lowercase hex, got %q", secret)
	}
}

func TestGenerateSecret_Unique(t *testing.T) {
	a, err := GenerateSecret()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	b, err := GenerateSecret()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if a == b {
		t.Error("two generated secrets are identical")
	}
}

func TestIsValidFormat(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{"valid lowercase", strings.Repeat("ab", 32), true},
		{"valid uppercase", strings.Repeat("AB", 32), true},
		{"valid mixed case", strings.Repeat("aB", 32), true},
		{"surrounding whitespace", "  " + strings.Repeat("ab", 32) + "\n", true},
		{"too short", strings.Repeat("a", 63), false},
		{"too long", strings.Repeat("a", 65), false},
		{"invalid hex char", strings.Repeat("a", 63) + "g", false},
		{"empty", "", false},
		{"inner whitespace", strings.Repeat("ab", 16) + " " + strings.Repeat("ab", 16), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsValidFormat(tt.input); got != tt.want {
				t.Errorf("IsValidFormat(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestHashSecret_KnownVector(t *testing.T) {
	secret := strings.Repeat("ab", 32)
	const want = "271a413bd339c5709fdceaec41f14f11e9fbfb5042d72d331c65f32b284cd09a"

	if got := HashSecret(secret); got != want {
		t.Errorf("HashSecret(%q) = %q, want %q", secret, got, want)
	}
}

func TestHashSecret_Deterministic(t *testing.T) {
	secret, _ := GenerateSecret()
	if HashSecret(secret) != HashSecret(secret) {
		t.Error("two digests of the same secret differ")
	}
}

func TestVerifySecret(t *testing.T) {
	secret := strings.Repeat("ab", 32)
	digest := HashSecret(secret)

	if !VerifySecret(secret, digest) {
		t.Error("expected secret to verify against its own digest")
	}
	if VerifySecret(strings.Repeat("cd", 32), digest) {
		t.Error("expected different secret to fail verification")
	}
	if VerifySecret(secret, digest[:32]) {
		t.Error("expected truncated digest to fail verification")
	}
}

func TestNormalize_UndoesDisplayFormat(t *testing.T) {
	secret := strings.Repeat("ab", 32)
	display := strings.Join(FormatForDisplay(secret), " ")

	if got := Normalize(display); got != secret {
		t.Errorf("Normalize(%q) = %q, want %q", display, got, secret)
	}
}

func TestNormalize_Lowercases(t *testing.T) {
	if got := Normalize(strings.Repeat("AB", 32)); got != strings.Repeat("ab", 32) {
		t.Errorf("expected lowercase, got %q", got)
	}
}

func TestFormatForDisplay_Chunks(t *testing.T) {
	secret := strings.Repeat("ab", 32)
	chunks := FormatForDisplay(secret)

	if len(chunks) != 8 {
		t.Fatalf("expected 8 chunks, got %d", len(chunks))
	}
	for i, chunk := range chunks {
		if len(chunk) != 8 {
			t.Errorf("chunk %d has length %d, want 8", i, len(chunk))
		}
	}
}

func TestShortID(t *testing.T) {
	if got := ShortID("abcdef0123456789"); got != "abcdef01" {
		t.Errorf("ShortID = %q, want %q", got, "abcdef01")
	}
	if got := ShortID("abc"); got != "abc" {
		t.Errorf("ShortID on short input = %q, want %q", got, "abc")
	}
}
