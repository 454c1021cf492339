// Package password hashes account passwords with bcrypt.
package password

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/dtroode/gophfeed-server/internal/model"
)

// DefaultCost is the bcrypt work factor used when none is configured.
const DefaultCost = 12

// Bcrypt implements model.PasswordHasher.
type Bcrypt struct {
	cost int
}

var _ model.PasswordHasher = (*Bcrypt)(nil)

// NewBcrypt returns a hasher using cost, or DefaultCost when cost is out of range.
func NewBcrypt(cost int) *Bcrypt {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = DefaultCost
	}
	return &Bcrypt{cost: cost}
}

func (b *Bcrypt) Hash(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), b.cost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hash), nil
}

func (b *Bcrypt) Compare(hash, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
}
