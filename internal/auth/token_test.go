package auth_test

import (
	"testing"
	"time"

	"github.com/joshua-takyi/staywise/internal/auth"
	"github.com/stretchr/testify/assert"
)

func TestIssueAndParseRoundTrip(t *testing.T) {
	svc := auth.NewService("test-secret", time.Hour)

	token, err := svc.Issue("64f1b2a3c4d5e6f708192a3b", "user")
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := svc.Parse(token)
	assert.NoError(t, err)
	assert.Equal(t, "64f1b2a3c4d5e6f708192a3b", claims.UserID)
	assert.Equal(t, "user", claims.Role)
	assert.False(t, claims.IsAdmin())
}

func TestParseRejectsWrongSecret(t *testing.T) {
	issuer := auth.NewService("secret-a", time.Hour)
	verifier := auth.NewService("secret-b", time.Hour)

	token, err := issuer.Issue("64f1b2a3c4d5e6f708192a3b", "user")
	assert.NoError(t, err)

	claims, err := verifier.Parse(token)
	assert.Nil(t, claims)
	assert.ErrorIs(t, err, auth.ErrInvalidToken)
}

func TestParseRejectsExpiredToken(t *testing.T) {
	svc := auth.NewService("test-secret", -time.Minute)

	token, err := svc.Issue("64f1b2a3c4d5e6f708192a3b", "user")
	assert.NoError(t, err)

	claims, err := svc.Parse(token)
	assert.Nil(t, claims)
	assert.ErrorIs(t, err, auth.ErrInvalidToken)
}

func TestParseRejectsGarbage(t *testing.T) {
	svc := auth.NewService("test-secret", time.Hour)

	claims, err := svc.Parse("not-a-token")
	assert.Nil(t, claims)
	assert.ErrorIs(t, err, auth.ErrInvalidToken)
}

func TestAdminClaims(t *testing.T) {
	svc := auth.NewService("test-secret", time.Hour)

	token, err := svc.Issue("64f1b2a3c4d5e6f708192a3b", "admin")
	assert.NoError(t, err)

	claims, err := svc.Parse(token)
	assert.NoError(t, err)
	assert.True(t, claims.IsAdmin())
}
