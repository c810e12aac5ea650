// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package auth

import (
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"errors"
	"fmt"
)

var ErrInvalidAdminKey = errors.New("invalid admin key")

// ElectionIDBytes is the entropy of a generated election ID.
const ElectionIDBytes = 16

const slugAlphabet = "0123456789abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"

// Signer derives admin keys and share slugs from election IDs.
// Both are HMACs, so nothing secret needs to be stored with the election.
type Signer struct {
	adminSalt []byte
	slugSalt  []byte
}

// NewSigner returns a Signer keyed by the two salts.
func NewSigner(adminSalt, slugSalt string) *Signer {
	return &Signer{adminSalt: []byte(adminSalt), slugSalt: []byte(slugSalt)}
}

// NewElectionID returns a random hex election ID.
func NewElectionID() (string, error) {
	return randomHex(ElectionIDBytes)
}

func randomHex(n int) (string, error) {
	b := make([]byte, n)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("failed to generate random ID: %w", err)
	}
	return hex.EncodeToString(b), nil
}

// AdminKey returns the URL-safe admin key for electionID.
func (s *Signer) AdminKey(electionID string) string {
	return base64.RawURLEncoding.EncodeToString(sign(s.adminSalt, electionID))
}

// VerifyAdminKey compares key against the expected admin key in constant time.
func (s *Signer) VerifyAdminKey(electionID, key string) error {
	if key == "" || !hmac.Equal([]byte(key), []byte(s.AdminKey(electionID))) {
		return ErrInvalidAdminKey
	}
	return nil
}

// ShareSlug returns a short alphanumeric slug for electionID.
func (s *Signer) ShareSlug(electionID string) string {
	return base62(sign(s.slugSalt, electionID)[:8])
}

func sign(key []byte, msg string) []byte {
	h := hmac.New(sha256.New, key)
	h.Write([]byte(msg))
	return h.Sum(nil)
}

// base62 encodes up to the first 8 bytes of data as a big-endian integer.
func base62(data []byte) string {
	var n uint64
	for _, b := range data[:min(len(data), 8)] {
		n = n<<8 | uint64(b)
	}
	if n == 0 {
		return "0"
	}

	var buf [11]byte
	i := len(buf)
	for n > 0 {
		i--
		buf[i] = slugAlphabet[n%62]
		n /= 62
	}
	return string(buf[i:])
}
