package ai

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"testing"
)

func signHex(secret string, payload []byte) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(payload)
	return hex.EncodeToString(mac.Sum(nil))
}

func TestVerifyHMAC(t *testing.T) {
	payload := []byte(`{"id": "abc123"}`)
	sig := signHex("my-secret", payload)

	if !VerifyHMAC("my-secret", payload, sig) {
		t.Fatalf("expected valid signature to verify")
	}
	if VerifyHMAC("other-secret", payload, sig) {
		t.Fatalf("signature must not verify with a different secret")
	}
	if VerifyHMAC("my-secret", []byte("tampered"), sig) {
		t.Fatalf("signature must not verify for a tampered payload")
	}
	if VerifyHMAC("", payload, sig) {
		t.Fatalf("empty secret must never verify")
	}
	if VerifyHMAC("my-secret", payload, "") {
		t.Fatalf("empty signature must never verify")
	}
}

func TestVerifySecret(t *testing.T) {
	if !VerifySecret("my-secret", "my-secret") {
		t.Fatalf("expected matching secrets to verify")
	}
	if VerifySecret("my-secret", "wrong") {
		t.Fatalf("mismatched secret must not verify")
	}
	if VerifySecret("", "") {
		t.Fatalf("empty secret must never verify")
	}
}
