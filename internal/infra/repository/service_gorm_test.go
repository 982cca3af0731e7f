package repository

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/beauty-booking/internal/apperr"
	"github.com/BruksfildServices01/beauty-booking/internal/models"
	"github.com/BruksfildServices01/beauty-booking/internal/testutil"
)

func TestServiceRepository(t *testing.T) {
	db := testutil.NewDB(t)
	repo := NewServiceGormRepository(db)
	ctx := context.Background()

	brows := &models.Service{
		Name:        "Eyebrow Waxing",
		Description: "Waxing of the eyebrows",
		Duration:    30 * time.Minute,
		Cost:        decimal.RequireFromString("10.00"),
		Category:    models.CategoryBrows,
	}
	require.NoError(t, repo.Create(ctx, brows))
	testutil.CreateService(t, db, "Classic lashes", time.Hour)

	all, err := repo.List(ctx, "")
	require.NoError(t, err)
	assert.Len(t, all, 2)

	onlyBrows, err := repo.List(ctx, models.CategoryBrows)
	require.NoError(t, err)
	require.Len(t, onlyBrows, 1)
	assert.Equal(t, 30*time.Minute, onlyBrows[0].Duration)
	assert.True(t, decimal.RequireFromString("10").Equal(onlyBrows[0].Cost))

	require.NoError(t, repo.SetImageURL(ctx, brows.ID, "https://cdn.example.com/brows.webp"))
	got, err := repo.GetByID(ctx, brows.ID)
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example.com/brows.webp", got.ImageURL)

	err = repo.SetImageURL(ctx, 9999, "x")
	assert.True(t, apperr.IsCode(err, apperr.CodeNotFound))

	_, err = repo.GetByID(ctx, 9999)
	assert.True(t, apperr.IsCode(err, apperr.CodeNotFound))
}
