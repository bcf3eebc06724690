package auth

import "golang.org/x/crypto/bcrypt"

// Hasher computes one-way password digests.
type Hasher interface {
	Hash(password string) (string, error)
}

// Verifier compares a stored digest with a plaintext candidate.
type Verifier interface {
	// Compare returns nil on match, or an error on mismatch.
	Compare(hashedPassword, password string) error
}

// BcryptHasher implements Hasher using bcrypt with a fixed cost.
type BcryptHasher struct {
	cost int
}

// NewBcryptHasher creates a BcryptHasher. Costs outside bcrypt's valid range
// fall back to the library default.
func NewBcryptHasher(cost int) *BcryptHasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &BcryptHasher{cost: cost}
}

func (h *BcryptHasher) Hash(password string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// BcryptVerifier implements Verifier using bcrypt's constant-time comparison.
type BcryptVerifier struct{}

// NewBcryptVerifier creates a new BcryptVerifier.
func NewBcryptVerifier() *BcryptVerifier {
	return &BcryptVerifier{}
}

func (v *BcryptVerifier) Compare(hashedPassword, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password))
}
