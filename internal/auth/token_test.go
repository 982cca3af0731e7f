package auth

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/beauty-booking/internal/apperr"
	"github.com/BruksfildServices01/beauty-booking/internal/models"
)

type memoryRevoker struct {
	mu  sync.Mutex
	ids map[string]time.Duration
	err error
}

func (m *memoryRevoker) Revoke(_ context.Context, id string, ttl time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.ids == nil {
		m.ids = map[string]time.Duration{}
	}
	m.ids[id] = ttl
	return nil
}

func (m *memoryRevoker) IsRevoked(_ context.Context, id string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return false, m.err
	}
	_, ok := m.ids[id]
	return ok, nil
}

func TestIssueAndParse(t *testing.T) {
	tokens := NewTokens("secret", time.Hour, nil)
	ctx := context.Background()

	token, exp, err := tokens.Issue(&models.User{ID: 7})
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(time.Hour), exp, 5*time.Second)

	claims, err := tokens.Parse(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, uint(7), claims.UserID)
	assert.NotEmpty(t, claims.TokenID)

	_, err = NewTokens("other", time.Hour, nil).Parse(ctx, token)
	assert.True(t, apperr.IsCode(err, apperr.CodeUnauthorized))

	_, err = tokens.Parse(ctx, "not-a-jwt")
	assert.True(t, apperr.IsCode(err, apperr.CodeUnauthorized))
}

func TestExpiredTokenIsRejected(t *testing.T) {
	tokens := NewTokens("secret", time.Minute, nil)
	issued := time.Now().Add(-time.Hour)
	tokens.now = func() time.Time { return issued }

	token, _, err := tokens.Issue(&models.User{ID: 1})
	require.NoError(t, err)

	tokens.now = time.Now
	_, err = tokens.Parse(context.Background(), token)
	assert.True(t, apperr.IsCode(err, apperr.CodeUnauthorized))
}

func TestTokenWithoutSubjectIsRejected(t *testing.T) {
	raw := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		ID:        "abc",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	})
	token, err := raw.SignedString([]byte("secret"))
	require.NoError(t, err)

	_, err = NewTokens("secret", time.Hour, nil).Parse(context.Background(), token)
	assert.True(t, apperr.IsCode(err, apperr.CodeUnauthorized))
}

func TestRevokedTokenIsRejected(t *testing.T) {
	revoker := &memoryRevoker{}
	tokens := NewTokens("secret", time.Hour, revoker)
	ctx := context.Background()

	token, _, err := tokens.Issue(&models.User{ID: 3})
	require.NoError(t, err)
	claims, err := tokens.Parse(ctx, token)
	require.NoError(t, err)

	require.NoError(t, tokens.Revoke(ctx, claims))
	assert.InDelta(t, time.Hour, revoker.ids[claims.TokenID], float64(5*time.Second))

	_, err = tokens.Parse(ctx, token)
	assert.True(t, apperr.IsCode(err, apperr.CodeUnauthorized))
}

func TestRevocationStoreFailureIsUnavailable(t *testing.T) {
	revoker := &memoryRevoker{err: errors.New("redis down")}
	tokens := NewTokens("secret", time.Hour, revoker)

	token, _, err := tokens.Issue(&models.User{ID: 3})
	require.NoError(t, err)

	_, err = tokens.Parse(context.Background(), token)
	assert.True(t, apperr.IsCode(err, apperr.CodeUnavailable))
}

func TestRevokeWithoutRedis(t *testing.T) {
	tokens := NewTokens("secret", time.Hour, nil)
	err := tokens.Revoke(context.Background(), &Claims{TokenID: "x", ExpiresAt: time.Now().Add(time.Hour)})
	assert.True(t, apperr.IsCode(err, apperr.CodeUnavailable))
}
