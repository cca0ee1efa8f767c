package crypto

import (
	"encoding/json"
	"testing"

	"github.com/privyhq/privy/models"
)

func envelopeJSON(t *testing.T, env models.Envelope) json.RawMessage {
	t.Helper()
	raw, err := json.Marshal(env)
	if err != nil {
		t.Fatalf("marshal envelope: %v", err)
	}
	return raw
}

func TestSafeDecryptParts_RoundTrip(t *testing.T) {
	c := newTestCipher()
	key := testKey(c)

	parts := []models.MessagePart{{Type: "text", Text: "hello"}}
	env, err := c.EncryptParts(parts, key)
	if err != nil {
		t.Fatalf("EncryptParts error: %v", err)
	}

	got := c.SafeDecryptParts(envelopeJSON(t, env), key)
	if len(got) != 1 || got[0].Text != "hello" {
		t.Errorf("SafeDecryptParts = %+v, want original parts", got)
	}
}

func TestSafeDecryptParts_LegacyPlaintextPassthrough(t *testing.T) {
	c := newTestCipher()

	stored := json.RawMessage(`[{"type":"text","text":"pre-migration"}]`)

	got := c.SafeDecryptParts(stored, testKey(c))
	if len(got) != 1 || got[0].Text != "pre-migration" {
		t.Errorf("expected legacy array unchanged, got %+v", got)
	}
}

func TestSafeDecryptParts_MissingKey(t *testing.T) {
	c := newTestCipher()
	key := testKey(c)

	env, err := c.EncryptParts([]models.MessagePart{{Type: "text", Text: "x"}}, key)
	if err != nil {
		t.Fatalf("EncryptParts error: %v", err)
	}

	got := c.SafeDecryptParts(envelopeJSON(t, env), nil)
	if len(got) != 1 || got[0].Text != PlaceholderKeyUnavailable {
		t.Errorf("expected key-unavailable placeholder, got %+v", got)
	}
}

func TestSafeDecryptParts_WrongKey(t *testing.T) {
	c := newTestCipher()
	key := testKey(c)
	wrong := c.DeriveKey("ffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffff", "0123456789abcdef0123456789abcdef")

	env, err := c.EncryptParts([]models.MessagePart{{Type: "text", Text: "x"}}, key)
	if err != nil {
		t.Fatalf("EncryptParts error: %v", err)
	}

	got := c.SafeDecryptParts(envelopeJSON(t, env), wrong)
	if len(got) != 1 || got[0].Text != PlaceholderDecryptFailed {
		t.Errorf("expected decrypt-failed placeholder, got %+v", got)
	}
}

func TestSafeDecryptParts_CorruptedEnvelope(t *testing.T) {
	c := newTestCipher()

	stored := json.RawMessage(`{"iv":"###","data":"###","tag":"###","v":1}`)

	got := c.SafeDecryptParts(stored, testKey(c))
	if len(got) != 1 || got[0].Text != PlaceholderDecryptFailed {
		t.Errorf("expected decrypt-failed placeholder, got %+v", got)
	}
}

func TestSafeDecryptParts_UnrecognizedShape(t *testing.T) {
	c := newTestCipher()

	for _, stored := range []json.RawMessage{
		json.RawMessage(`{"something":"else"}`),
		json.RawMessage(`42`),
		json.RawMessage(`"just a string"`),
		json.RawMessage(`null`),
	} {
		got := c.SafeDecryptParts(stored, testKey(c))
		if len(got) != 1 || got[0].Text != PlaceholderUnrecognized {
			t.Errorf("SafeDecryptParts(%s) = %+v, want unrecognized placeholder", stored, got)
		}
	}
}

func TestSafeDecryptParts_PartialEnvelopeIsNotEnvelope(t *testing.T) {
	c := newTestCipher()

	// Missing tag: must not be routed down the decryption path.
	stored := json.RawMessage(`{"iv":"aaaa","data":"bbbb","v":1}`)

	got := c.SafeDecryptParts(stored, testKey(c))
	if len(got) != 1 || got[0].Text != PlaceholderUnrecognized {
		t.Errorf("expected unrecognized placeholder for partial envelope, got %+v", got)
	}
}

func TestSafeDecryptText_RoundTrip(t *testing.T) {
	c := newTestCipher()
	key := testKey(c)

	env, err := c.EncryptText("remember this", key)
	if err != nil {
		t.Fatalf("EncryptText error: %v", err)
	}

	if got := c.SafeDecryptText(envelopeJSON(t, env), key); got != "remember this" {
		t.Errorf("SafeDecryptText = %q, want %q", got, "remember this")
	}
}

func TestSafeDecryptText_PlaintextPassthrough(t *testing.T) {
	c := newTestCipher()

	if got := c.SafeDecryptText(json.RawMessage(`"legacy note"`), testKey(c)); got != "legacy note" {
		t.Errorf("SafeDecryptText = %q, want %q", got, "legacy note")
	}
}

func TestSafeDecryptText_Unrecoverable(t *testing.T) {
	c := newTestCipher()
	key := testKey(c)

	env, err := c.EncryptText("x", key)
	if err != nil {
		t.Fatalf("EncryptText error: %v", err)
	}

	if got := c.SafeDecryptText(envelopeJSON(t, env), nil); got != "" {
		t.Errorf("expected empty string without key, got %q", got)
	}
	if got := c.SafeDecryptText(json.RawMessage(`{"not":"text"}`), key); got != "" {
		t.Errorf("expected empty string for unknown shape, got %q", got)
	}
}
