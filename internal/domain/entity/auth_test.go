package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRefreshToken_IsUsable(t *testing.T) {
	now := time.Now()
	revokedAt := now.Add(-time.Hour)

	tests := []struct {
		name   string
		token  RefreshToken
		usable bool
	}{
		{
			name:   "valid token",
			token:  RefreshToken{ExpiresAt: now.Add(time.Hour)},
			usable: true,
		},
		{
			name:   "expired token",
			token:  RefreshToken{ExpiresAt: now.Add(-time.Minute)},
			usable: false,
		},
		{
			name:   "revoked token",
			token:  RefreshToken{ExpiresAt: now.Add(time.Hour), RevokedAt: &revokedAt},
			usable: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.usable, tt.token.IsUsable(now))
		})
	}
}

func TestRefreshToken_IsExpiredBoundary(t *testing.T) {
	now := time.Now()
	token := RefreshToken{ExpiresAt: now}

	assert.False(t, token.IsExpired(now))
	assert.True(t, token.IsExpired(now.Add(time.Nanosecond)))
}

func TestBusinessUserProfile_IsElevated(t *testing.T) {
	admin := &BusinessUserProfile{AccessLevel: BusinessLevelAdmin}
	assert.True(t, admin.IsElevated())

	manager := &BusinessUserProfile{AccessLevel: BusinessLevelManager}
	assert.False(t, manager.IsElevated())
	assert.True(t, manager.CanManageUsers())

	granted := &BusinessUserProfile{
		AccessLevel: BusinessLevelUser,
		Permissions: []string{PermissionFullAccess},
	}
	assert.True(t, granted.IsElevated())
	assert.False(t, granted.CanManageUsers())
}
