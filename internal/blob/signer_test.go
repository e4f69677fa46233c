package blob

import (
	"net/url"
	"strconv"
	"strings"
	"testing"
	"time"
)

func TestSignerRoundTrip(t *testing.T) {
	s := NewSigner("test-secret", "http://localhost:3000", time.Hour)

	signed := s.SignedURL("65f0c2a1e4b0f1a2b3c4d5e6")

	u, err := url.Parse(signed)
	if err != nil {
		t.Fatalf("SignedURL() produced unparseable URL: %v", err)
	}
	if !strings.HasPrefix(u.Path, "/files/") {
		t.Errorf("SignedURL() path = %q, want /files/ prefix", u.Path)
	}

	exp, err := strconv.ParseInt(u.Query().Get("exp"), 10, 64)
	if err != nil {
		t.Fatalf("SignedURL() exp not an integer: %v", err)
	}
	sig := u.Query().Get("sig")

	if !s.Verify("65f0c2a1e4b0f1a2b3c4d5e6", exp, sig) {
		t.Error("Verify() = false for a freshly signed URL")
	}
}

func TestSignerExpiry(t *testing.T) {
	s := NewSigner("test-secret", "http://localhost:3000", time.Hour)

	exp := time.Now().Add(-time.Minute).Unix()
	sig := s.sign("abc", exp)

	if s.Verify("abc", exp, sig) {
		t.Error("Verify() = true for an expired signature")
	}
}

func TestSignerTamper(t *testing.T) {
	s := NewSigner("test-secret", "http://localhost:3000", time.Hour)
	exp := time.Now().Add(time.Hour).Unix()
	sig := s.sign("abc", exp)

	mangled := []byte(sig)
	if mangled[0] == 'a' {
		mangled[0] = 'b'
	} else {
		mangled[0] = 'a'
	}

	tests := []struct {
		name string
		id   string
		exp  int64
		sig  string
	}{
		{"different id", "abd", exp, sig},
		{"extended expiry", "abc", exp + 3600, sig},
		{"mangled signature", "abc", exp, string(mangled)},
		{"empty signature", "abc", exp, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if s.Verify(tt.id, tt.exp, tt.sig) {
				t.Error("Verify() = true for tampered input")
			}
		})
	}
}

func TestSignerKeyIsolation(t *testing.T) {
	a := NewSigner("secret-a", "http://localhost:3000", time.Hour)
	b := NewSigner("secret-b", "http://localhost:3000", time.Hour)

	exp := time.Now().Add(time.Hour).Unix()
	if b.Verify("abc", exp, a.sign("abc", exp)) {
		t.Error("Verify() accepted a signature from a different key")
	}
}
