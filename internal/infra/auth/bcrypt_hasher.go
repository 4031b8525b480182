// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"fmt"
	"strings"
	"unicode"

	"golang.org/x/crypto/bcrypt"

	"plaza/config"
	domainerrors "plaza/internal/domain/errors"
	"plaza/internal/domain/service"
)

// bcryptHasher is a concrete implementation of the PasswordHasher interface using bcrypt.
type bcryptHasher struct {
	cost     int
	strength *config.PasswordStrengthConfig
}

// NewBcryptHasher is the constructor for bcryptHasher.
// It reads the cost factor and strength policy from configuration and falls
// back to sane defaults when they are absent.
func NewBcryptHasher(cfg *config.Config) service.PasswordHasher {
	cost := bcrypt.DefaultCost
	if cfg != nil && cfg.Auth != nil && cfg.Auth.BcryptCost >= bcrypt.MinCost && cfg.Auth.BcryptCost <= bcrypt.MaxCost {
		cost = cfg.Auth.BcryptCost
	}

	var strength *config.PasswordStrengthConfig
	if cfg != nil {
		strength = cfg.PasswordStrength
	}
	if strength == nil {
		strength = &config.PasswordStrengthConfig{
			MinLength:        8,
			MaxLength:        128,
			RequireUppercase: true,
			RequireLowercase: true,
			RequireNumbers:   true,
			RequireSpecial:   true,
		}
	}

	return &bcryptHasher{cost: cost, strength: strength}
}

// NewBcryptHasherWithCost creates a hasher with an explicit cost factor and no
// strength policy. Intended for tests that need fast hashing.
func NewBcryptHasherWithCost(cost int) service.PasswordHasher {
	return &bcryptHasher{cost: cost, strength: &config.PasswordStrengthConfig{}}
}

// Hash validates the password against the strength policy and generates a
// salted hash using bcrypt. bcrypt automatically handles salt generation.
func (h *bcryptHasher) Hash(password string) (string, error) {
	if err := h.validateStrength(password); err != nil {
		return "", err
	}

	bytes, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", domainerrors.ErrPasswordHashFailed.WrapMessage(err.Error())
	}

	return string(bytes), nil
}

// Check compares a plaintext password with a bcrypt hash.
func (h *bcryptHasher) Check(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	// err is nil if the password and hash match.
	return err == nil
}

func (h *bcryptHasher) validateStrength(password string) error {
	p := h.strength

	if p.MinLength > 0 && len(password) < p.MinLength {
		return domainerrors.ErrValidationFailed.WrapMessage(
			fmt.Sprintf("password must be at least %d characters long", p.MinLength))
	}
	if p.MaxLength > 0 && len(password) > p.MaxLength {
		return domainerrors.ErrValidationFailed.WrapMessage(
			fmt.Sprintf("password must be at most %d characters long", p.MaxLength))
	}
	if p.RequireLowercase && !containsClass(password, unicode.IsLower) {
		return domainerrors.ErrValidationFailed.WrapMessage("password must contain at least one lowercase letter")
	}
	if p.RequireUppercase && !containsClass(password, unicode.IsUpper) {
		return domainerrors.ErrValidationFailed.WrapMessage("password must contain at least one uppercase letter")
	}
	if p.RequireNumbers && !containsClass(password, unicode.IsNumber) {
		return domainerrors.ErrValidationFailed.WrapMessage("password must contain at least one number")
	}
	if p.RequireSpecial && !strings.ContainsAny(password, "!@#$%^&*()-_=+[]{};:'\",.<>/?\\|`~") {
		return domainerrors.ErrValidationFailed.WrapMessage("password must contain at least one special character")
	}

	return nil
}

func containsClass(s string, is func(rune) bool) bool {
	for _, r := range s {
		if is(r) {
			return true
		}
	}

	return false
}
