package identity

import (
	"crypto/subtle"

	"golang.org/x/crypto/bcrypt"
)

// SecretHasher transforms a secret for storage and verifies a supplied
// secret against the stored form.
type SecretHasher interface {
	Hash(secret string) (string, error)
	Compare(stored, supplied string) bool
}

// PlaintextHasher stores secrets verbatim and compares them in constant
// time. This mirrors the original browser demo and is NOT suitable for real
// credential storage; prefer BcryptHasher via WithSecretHasher.
type PlaintextHasher struct{}

func (PlaintextHasher) Hash(secret string) (string, error) { return secret, nil }

func (PlaintextHasher) Compare(stored, supplied string) bool {
	return subtle.ConstantTimeCompare([]byte(stored), []byte(supplied)) == 1
}

// BcryptHasher stores a salted bcrypt hash instead of the plain secret.
type BcryptHasher struct {
	// Cost is the bcrypt cost parameter; zero means bcrypt.DefaultCost.
	Cost int
}

func (h BcryptHasher) Hash(secret string) (string, error) {
	cost := h.Cost
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(secret), cost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

func (h BcryptHasher) Compare(stored, supplied string) bool {
	return bcrypt.CompareHashAndPassword([]byte(stored), []byte(supplied)) == nil
}
