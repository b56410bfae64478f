package password

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// Bcrypt hashes and verifies passwords with the bcrypt adaptive work-factor
// algorithm. The salt is generated per call and embedded in the digest.
type Bcrypt struct {
	cost int
}

// NewBcrypt creates a codec with the given cost. Cost 0 selects the
// library default.
func NewBcrypt(cost int) *Bcrypt {
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	return &Bcrypt{cost: cost}
}

// Hash produces a salted digest of the plaintext. Two calls with the same
// input yield different digests.
func (b *Bcrypt) Hash(plaintext string) (string, error) {
	digest, err := bcrypt.GenerateFromPassword([]byte(plaintext), b.cost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(digest), nil
}

// Verify reports whether plaintext matches the digest. Comparison inside
// bcrypt is constant-time. A malformed digest verifies as false, never
// as an error.
func (b *Bcrypt) Verify(plaintext string, digest string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(plaintext)) == nil
}
