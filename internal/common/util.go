package common

import (
	"encoding/hex"

	"golang.org/x/crypto/blake2b"
)

// fingerprintSize is the number of digest bytes kept in a token fingerprint.
const fingerprintSize = 6

// TokenFingerprint returns a short, stable, non-reversible tag for a bearer
// token so log records can correlate sessions without leaking the secret.
// An empty token yields an empty fingerprint.
func TokenFingerprint(token string) string {
	if token == "" {
		return ""
	}
	sum := blake2b.Sum256([]byte(token))
	return hex.EncodeToString(sum[:fingerprintSize])
}

// WipeByteArray overwrites the contents of b with zeros.
// Used for secrets read from the terminal once they are no longer needed.
func WipeByteArray(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
