package auth

import (
	"testing"

	"plaza/config"
	domainerrors "plaza/internal/domain/errors"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func testHasherConfig() *config.Config {
	return &config.Config{
		Auth: &config.AuthConfig{BcryptCost: bcrypt.MinCost},
		PasswordStrength: &config.PasswordStrengthConfig{
			MinLength:        8,
			MaxLength:        72,
			RequireUppercase: true,
			RequireLowercase: true,
			RequireNumbers:   true,
			RequireSpecial:   true,
		},
	}
}

func TestBcryptHasher_HashAndCheck(t *testing.T) {
	hasher := NewBcryptHasher(testHasherConfig())

	password := "StrongPass123!"
	hash, err := hasher.Hash(password)
	require.NoError(t, err)
	assert.NotEmpty(t, hash)
	assert.NotEqual(t, password, hash)

	assert.True(t, hasher.Check(password, hash))
	assert.False(t, hasher.Check("WrongPassword123!", hash))
	assert.False(t, hasher.Check("", hash))
	assert.False(t, hasher.Check(password, "invalid_hash"))
}

func TestBcryptHasher_RejectsWeakPasswords(t *testing.T) {
	hasher := NewBcryptHasher(testHasherConfig())

	testCases := []struct {
		password    string
		expectedErr string
	}{
		{"123", "must be at least 8 characters long"},
		{"SECRET123!", "must contain at least one lowercase letter"},
		{"secret123!", "must contain at least one uppercase letter"},
		{"SecretABC!", "must contain at least one number"},
		{"Secret12345", "must contain at least one special character"},
	}

	for _, tc := range testCases {
		_, err := hasher.Hash(tc.password)
		require.Error(t, err, "expected error for password: %s", tc.password)
		assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
		assert.Contains(t, err.Error(), tc.expectedErr)
	}
}

func TestBcryptHasher_AcceptsStrongPasswords(t *testing.T) {
	hasher := NewBcryptHasher(testHasherConfig())

	validPasswords := []string{
		"StrongPass123!",
		"MySecure@Pass1",
		"Complex#Secret9",
		"Valid$Phrase2026",
		"Senh@Fortissima1",
	}

	for _, password := range validPasswords {
		_, err := hasher.Hash(password)
		assert.NoError(t, err, "expected no error for password: %s", password)
	}
}

func TestBcryptHasher_MaxLength(t *testing.T) {
	hasher := NewBcryptHasher(testHasherConfig())

	long := "Aa1!" + string(make([]byte, 100))
	_, err := hasher.Hash(long)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "must be at most 72 characters long")
}

func TestBcryptHasher_DefaultsWhenConfigMissing(t *testing.T) {
	hasher := NewBcryptHasher(&config.Config{})

	// The default policy still demands a reasonably strong password.
	_, err := hasher.Hash("weak")
	assert.Error(t, err)

	hash, err := hasher.Hash("StrongPass123!")
	require.NoError(t, err)

	cost, err := bcrypt.Cost([]byte(hash))
	require.NoError(t, err)
	assert.Equal(t, bcrypt.DefaultCost, cost)
}

func TestBcryptHasher_WithCustomCost(t *testing.T) {
	customCost := 6 // Lower cost for faster testing
	hasher := NewBcryptHasherWithCost(customCost)

	hash, err := hasher.Hash("anything goes here")
	require.NoError(t, err)

	cost, err := bcrypt.Cost([]byte(hash))
	require.NoError(t, err)
	assert.Equal(t, customCost, cost)
}

func TestBcryptHasher_UnicodePasswords(t *testing.T) {
	hasher := NewBcryptHasher(testHasherConfig())

	hash, err := hasher.Hash("Pässphräse123!")
	require.NoError(t, err)
	assert.True(t, hasher.Check("Pässphräse123!", hash))
}
