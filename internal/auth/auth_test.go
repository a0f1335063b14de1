package auth

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIssueAndParse(t *testing.T) {
	issuer := NewIssuer("test-secret", time.Hour)
	userID := uuid.New()

	token, err := issuer.Issue(userID, "jane@example.com")
	require.NoError(t, err)

	s, err := issuer.Parse(token)
	require.NoError(t, err)
	assert.Equal(t, userID, s.UserID)
	assert.Equal(t, "jane@example.com", s.Email)
	assert.WithinDuration(t, time.Now().Add(time.Hour), s.ExpiresAt, 5*time.Second)
}

func TestParse_Rejects(t *testing.T) {
	issuer := NewIssuer("test-secret", time.Hour)
	userID := uuid.New()

	other, err := NewIssuer("other-secret", time.Hour).Issue(userID, "a@b.c")
	require.NoError(t, err)

	expiredIssuer := NewIssuer("test-secret", time.Hour)
	expiredIssuer.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }
	expired, err := expiredIssuer.Issue(userID, "a@b.c")
	require.NoError(t, err)

	none := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.RegisteredClaims{Subject: userID.String()})
	unsigned, err := none.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	badSubject, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   "42",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}).SignedString([]byte("test-secret"))
	require.NoError(t, err)

	for name, token := range map[string]string{
		"garbage":       "not-a-token",
		"wrong secret":  other,
		"expired":       expired,
		"unsigned":      unsigned,
		"non uuid user": badSubject,
	} {
		t.Run(name, func(t *testing.T) {
			_, err := issuer.Parse(token)
			assert.ErrorIs(t, err, ErrInvalidToken)
		})
	}
}

func TestSessionContext(t *testing.T) {
	_, ok := SessionFrom(context.Background())
	assert.False(t, ok)

	_, ok = SessionFrom(WithSession(context.Background(), Session{}))
	assert.False(t, ok)

	want := Session{UserID: uuid.New(), Email: "x@y.z"}
	got, ok := SessionFrom(WithSession(context.Background(), want))
	assert.True(t, ok)
	assert.Equal(t, want, got)
}
