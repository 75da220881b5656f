package ai

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
)

// VerifyHMAC verifies a sha256 HMAC hex signature against payload and secret
func VerifyHMAC(secret string, payload []byte, signatureHex string) bool {
	if secret == "" || signatureHex == "" {
		return false
	}
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(payload)
	expected := hex.EncodeToString(mac.Sum(nil))
	return hmac.Equal([]byte(expected), []byte(signatureHex))
}

// VerifySecret compares a shared webhook secret header in constant time.
// Fireflies sends the raw secret back in a header rather than signing the body.
func VerifySecret(secret, header string) bool {
	if secret == "" || header == "" {
		return false
	}
	return hmac.Equal([]byte(secret), []byte(header))
}
