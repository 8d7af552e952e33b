package auth

import (
	"crypto/rand"
	"encoding/hex"
	"time"
)

// NewEmailToken generates an opaque token for account verification and
// password reset mails, along with its expiry. The token is 32 random bytes
// hex encoded, so it is safe to embed in a URL.
func NewEmailToken(ttl time.Duration) (token string, expiresAt time.Time, err error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", time.Time{}, err
	}
	return hex.EncodeToString(buf), time.Now().Add(ttl), nil
}
