package blob

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strconv"
	"time"
)

// Signer issues and verifies HMAC-signed download URLs. A signed URL grants
// access to one blob until its expiry without requiring a session.
type Signer struct {
	key     []byte
	baseURL string
	ttl     time.Duration
}

// NewSigner creates a signer. The key is hashed so any secret length works.
func NewSigner(secret, baseURL string, ttl time.Duration) *Signer {
	key := sha256.Sum256([]byte(secret))
	return &Signer{key: key[:], baseURL: baseURL, ttl: ttl}
}

// SignedURL returns a download URL for the blob handle, valid for the
// signer's TTL.
func (s *Signer) SignedURL(id string) string {
	exp := time.Now().Add(s.ttl).Unix()
	return fmt.Sprintf("%s/files/%s?exp=%d&sig=%s", s.baseURL, id, exp, s.sign(id, exp))
}

// Verify checks a signature for the given blob handle and expiry. Returns
// false for tampered parameters or expired links.
func (s *Signer) Verify(id string, exp int64, sig string) bool {
	if time.Now().Unix() > exp {
		return false
	}
	expected := s.sign(id, exp)
	return hmac.Equal([]byte(expected), []byte(sig))
}

func (s *Signer) sign(id string, exp int64) string {
	mac := hmac.New(sha256.New, s.key)
	mac.Write([]byte(id))
	mac.Write([]byte{'|'})
	mac.Write([]byte(strconv.FormatInt(exp, 10)))
	return hex.EncodeToString(mac.Sum(nil))
}
