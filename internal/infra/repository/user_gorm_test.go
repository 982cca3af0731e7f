package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/beauty-booking/internal/apperr"
	"github.com/BruksfildServices01/beauty-booking/internal/models"
	"github.com/BruksfildServices01/beauty-booking/internal/testutil"
)

func TestUserRepository(t *testing.T) {
	db := testutil.NewDB(t)
	repo := NewUserGormRepository(db)
	ctx := context.Background()

	u := &models.User{Email: "Test@example.com", PasswordHash: "x", IsActive: true}
	require.NoError(t, repo.Create(ctx, u))
	assert.NotZero(t, u.ID)

	byEmail, err := repo.GetByEmail(ctx, "Test@example.com")
	require.NoError(t, err)
	assert.Equal(t, u.ID, byEmail.ID)

	_, err = repo.GetByEmail(ctx, "missing@example.com")
	assert.True(t, apperr.IsCode(err, apperr.CodeNotFound))

	dup := &models.User{Email: "Test@example.com", PasswordHash: "y", IsActive: true}
	err = repo.Create(ctx, dup)
	assert.True(t, apperr.IsCode(err, apperr.CodeConflict))

	byEmail.IsStaff = true
	require.NoError(t, repo.Update(ctx, byEmail))
	byID, err := repo.GetByID(ctx, u.ID)
	require.NoError(t, err)
	assert.True(t, byID.IsStaff)
}
