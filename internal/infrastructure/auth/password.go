package auth

import (
	"crypto/sha512"
	"encoding/hex"

	"golang.org/x/crypto/bcrypt"
)

// Hasher names in configuration
const (
	HasherSHA512 = "sha512"
	HasherBcrypt = "bcrypt"
)

// DefaultBcryptCost is the work factor used when none is configured
const DefaultBcryptCost = 12

// PasswordHasher derives a stored hash from a raw password
type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(password, hash string) bool
}

// SHA512Hasher hashes passwords with a single unsalted SHA-512 digest.
// The same password always yields the same hex string, which callers
// rely on; the lack of a per-user salt is a known weakness kept for
// stored-data compatibility. BcryptHasher is the hardened alternative.
type SHA512Hasher struct{}

// NewSHA512Hasher creates a SHA512Hasher
func NewSHA512Hasher() *SHA512Hasher {
	return &SHA512Hasher{}
}

// Hash returns the hex-encoded SHA-512 digest of the password
func (h *SHA512Hasher) Hash(password string) (string, error) {
	sum := sha512.Sum512([]byte(password))
	return hex.EncodeToString(sum[:]), nil
}

// Verify reports whether the password hashes to the given digest
func (h *SHA512Hasher) Verify(password, hash string) bool {
	computed, _ := h.Hash(password)
	return computed == hash
}

// BcryptHasher hashes passwords with bcrypt. Hashes carry a random
// salt, so they are not deterministic and the stored format differs
// from SHA512Hasher's; switching hashers invalidates existing hashes.
type BcryptHasher struct {
	cost int
}

// NewBcryptHasher creates a BcryptHasher with the given cost, falling
// back to DefaultBcryptCost when the cost is out of range
func NewBcryptHasher(cost int) *BcryptHasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = DefaultBcryptCost
	}
	return &BcryptHasher{cost: cost}
}

// Hash returns the bcrypt hash of the password
func (h *BcryptHasher) Hash(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// Verify reports whether the password matches the bcrypt hash
func (h *BcryptHasher) Verify(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// NewHasher selects a hasher by configured name. Unknown names fall
// back to SHA-512, the stored-data-compatible default.
func NewHasher(name string, bcryptCost int) PasswordHasher {
	if name == HasherBcrypt {
		return NewBcryptHasher(bcryptCost)
	}
	return NewSHA512Hasher()
}
