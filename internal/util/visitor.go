package util

import (
	"crypto/subtle"
	"encoding/base64"
	"errors"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/crypto/blake2b"
)

// VisitorSigner issues and verifies visitor identifiers of the form
// "<uuid>.<mac>". The MAC is a keyed BLAKE2b-256 over the identifier.
type VisitorSigner struct {
	key []byte
}

func NewVisitorSigner(secret string) (*VisitorSigner, error) {
	if strings.TrimSpace(secret) == "" {
		return nil, errors.New("visitor signer: empty secret")
	}
	sum := blake2b.Sum256([]byte(secret))
	return &VisitorSigner{key: sum[:]}, nil
}

// Issue returns a fresh visitor id and its signed cookie value.
func (s *VisitorSigner) Issue() (string, string) {
	id := uuid.NewString()
	return id, id + "." + s.mac(id)
}

// Verify returns the visitor id carried by a signed value.
func (s *VisitorSigner) Verify(value string) (string, bool) {
	i := strings.LastIndexByte(value, '.')
	if i <= 0 {
		return "", false
	}
	id, mac := value[:i], value[i+1:]
	if _, err := uuid.Parse(id); err != nil {
		return "", false
	}
	if subtle.ConstantTimeCompare([]byte(mac), []byte(s.mac(id))) != 1 {
		return "", false
	}
	return id, true
}

func (s *VisitorSigner) mac(id string) string {
	h, err := blake2b.New256(s.key)
	if err != nil {
		panic(err)
	}
	h.Write([]byte(id))
	return base64.RawURLEncoding.EncodeToString(h.Sum(nil))
}
