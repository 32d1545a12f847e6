package service_test

import (
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/oguzhany/health-reminder/internal/config"
	"github.com/oguzhany/health-reminder/internal/domain"
	"github.com/oguzhany/health-reminder/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tokenConfig(expirationDays int) *config.Config {
	return &config.Config{
		JWTSecret:         "test-jwt-secret-key-for-testing-only",
		JWTExpirationDays: expirationDays,
	}
}

// Token issue/verify never touches the user store.
func newTokenService(expirationDays int) *service.AuthService {
	return service.NewAuthService(nil, tokenConfig(expirationDays))
}

func TestToken_RoundTrip(t *testing.T) {
	svc := newTokenService(7)

	tests := []struct {
		name string
		role domain.Role
	}{
		{name: "user role", role: domain.RoleUser},
		{name: "admin role", role: domain.RoleAdmin},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			user := &domain.User{ID: uuid.New(), Role: tt.role}

			token, err := svc.IssueToken(user)
			require.NoError(t, err)
			require.NotEmpty(t, token)

			claims, err := svc.VerifyToken(token)
			require.NoError(t, err)
			assert.Equal(t, user.ID, claims.UserID)
			assert.Equal(t, tt.role, claims.Role)
		})
	}
}

func TestToken_ExpiryEnforced(t *testing.T) {
	svc := newTokenService(-1) // already expired at issue time

	token, err := svc.IssueToken(&domain.User{ID: uuid.New(), Role: domain.RoleUser})
	require.NoError(t, err)

	_, err = svc.VerifyToken(token)
	assert.ErrorIs(t, err, domain.ErrInvalidToken)
}

func TestToken_TamperedSignatureRejected(t *testing.T) {
	svc := newTokenService(7)

	token, err := svc.IssueToken(&domain.User{ID: uuid.New(), Role: domain.RoleAdmin})
	require.NoError(t, err)

	parts := strings.Split(token, ".")
	require.Len(t, parts, 3)

	// Flip one character of the signature segment.
	sig := []byte(parts[2])
	if sig[0] == 'A' {
		sig[0] = 'B'
	} else {
		sig[0] = 'A'
	}
	tampered := parts[0] + "." + parts[1] + "." + string(sig)

	_, err = svc.VerifyToken(tampered)
	assert.ErrorIs(t, err, domain.ErrInvalidToken)
}

func TestToken_TamperedPayloadRejected(t *testing.T) {
	svc := newTokenService(7)

	token, err := svc.IssueToken(&domain.User{ID: uuid.New(), Role: domain.RoleUser})
	require.NoError(t, err)

	parts := strings.Split(token, ".")
	require.Len(t, parts, 3)

	// Payload swapped for another user's, signature untouched.
	other, err := svc.IssueToken(&domain.User{ID: uuid.New(), Role: domain.RoleAdmin})
	require.NoError(t, err)
	otherParts := strings.Split(other, ".")

	forged := parts[0] + "." + otherParts[1] + "." + parts[2]

	_, err = svc.VerifyToken(forged)
	assert.ErrorIs(t, err, domain.ErrInvalidToken)
}

func TestToken_GarbageRejected(t *testing.T) {
	svc := newTokenService(7)

	tests := []struct {
		name  string
		token string
	}{
		{name: "empty", token: ""},
		{name: "not a jwt", token: "notavalidjwt"},
		{name: "wrong structure", token: "a.b"},
		{name: "random segments", token: "aaaa.bbbb.cccc"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.VerifyToken(tt.token)
			assert.ErrorIs(t, err, domain.ErrInvalidToken)
		})
	}
}

func TestToken_WrongSecretRejected(t *testing.T) {
	token, err := newTokenService(7).IssueToken(&domain.User{ID: uuid.New(), Role: domain.RoleUser})
	require.NoError(t, err)

	other := service.NewAuthService(nil, &config.Config{
		JWTSecret:         "a-completely-different-secret",
		JWTExpirationDays: 7,
	})

	_, err = other.VerifyToken(token)
	assert.ErrorIs(t, err, domain.ErrInvalidToken)
}
