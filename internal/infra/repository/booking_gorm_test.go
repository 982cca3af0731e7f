package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/beauty-booking/internal/apperr"
	"github.com/BruksfildServices01/beauty-booking/internal/models"
	"github.com/BruksfildServices01/beauty-booking/internal/testutil"
)

func TestListForOwnerIsScopedAndDescending(t *testing.T) {
	db := testutil.NewDB(t)
	repo := NewBookingGormRepository(db)
	ctx := context.Background()

	owner := testutil.CreateUser(t, db, "user@example.com")
	other := testutil.CreateUser(t, db, "other@example.com")
	svc := testutil.CreateService(t, db, "Classic lashes", time.Hour)
	start := time.Now().Add(24 * time.Hour)

	first := testutil.CreateBooking(t, db, owner, svc, start)
	testutil.CreateBooking(t, db, other, svc, start)
	second := testutil.CreateBooking(t, db, owner, svc, start.Add(time.Hour))

	got, err := repo.ListForOwner(ctx, owner.ID)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, second.ID, got[0].ID)
	assert.Equal(t, first.ID, got[1].ID)

	empty, err := repo.ListForOwner(ctx, 9999)
	require.NoError(t, err)
	assert.NotNil(t, empty)
	assert.Empty(t, empty)
}

func TestGetForOwnerHidesOtherOwners(t *testing.T) {
	db := testutil.NewDB(t)
	repo := NewBookingGormRepository(db)
	ctx := context.Background()

	owner := testutil.CreateUser(t, db, "user@example.com")
	other := testutil.CreateUser(t, db, "other@example.com")
	svc := testutil.CreateService(t, db, "Gel nails", time.Hour)
	b := testutil.CreateBooking(t, db, owner, svc, time.Now().Add(time.Hour))

	got, err := repo.GetForOwner(ctx, b.ID, owner.ID)
	require.NoError(t, err)
	assert.Equal(t, b.ID, got.ID)

	_, err = repo.GetForOwner(ctx, b.ID, other.ID)
	assert.True(t, apperr.IsCode(err, apperr.CodeNotFound))

	_, err = repo.GetForOwner(ctx, b.ID+100, owner.ID)
	assert.True(t, apperr.IsCode(err, apperr.CodeNotFound))
}

func TestUpdateForOwner(t *testing.T) {
	db := testutil.NewDB(t)
	repo := NewBookingGormRepository(db)
	ctx := context.Background()

	owner := testutil.CreateUser(t, db, "user@example.com")
	other := testutil.CreateUser(t, db, "other@example.com")
	svc := testutil.CreateService(t, db, "Brow tint", 20*time.Minute)
	b := testutil.CreateBooking(t, db, owner, svc, time.Now().Add(time.Hour))

	updated, err := repo.UpdateForOwner(ctx, b.ID, owner.ID, func(b *models.Booking) error {
		b.Cancelled = true
		return nil
	})
	require.NoError(t, err)
	assert.True(t, updated.Cancelled)

	_, err = repo.UpdateForOwner(ctx, b.ID, other.ID, func(b *models.Booking) error {
		t.Fatal("mutate must not run for a foreign booking")
		return nil
	})
	assert.True(t, apperr.IsCode(err, apperr.CodeNotFound))

	reason := apperr.Invalid("notes", "too long")
	_, err = repo.UpdateForOwner(ctx, b.ID, owner.ID, func(b *models.Booking) error {
		b.Completed = true
		return reason
	})
	assert.ErrorIs(t, err, reason)

	stored, err := repo.GetForOwner(ctx, b.ID, owner.ID)
	require.NoError(t, err)
	assert.False(t, stored.Completed)
}

func TestDeleteForOwner(t *testing.T) {
	db := testutil.NewDB(t)
	repo := NewBookingGormRepository(db)
	ctx := context.Background()

	owner := testutil.CreateUser(t, db, "user@example.com")
	other := testutil.CreateUser(t, db, "other@example.com")
	svc := testutil.CreateService(t, db, "Lash lift", time.Hour)
	b := testutil.CreateBooking(t, db, owner, svc, time.Now().Add(time.Hour))

	err := repo.DeleteForOwner(ctx, b.ID, other.ID)
	assert.True(t, apperr.IsCode(err, apperr.CodeNotFound))

	require.NoError(t, repo.DeleteForOwner(ctx, b.ID, owner.ID))

	err = repo.DeleteForOwner(ctx, b.ID, owner.ID)
	assert.True(t, apperr.IsCode(err, apperr.CodeNotFound))
}

func TestBookingsCascadeWithOwnerAndService(t *testing.T) {
	db := testutil.NewDB(t)
	repo := NewBookingGormRepository(db)
	ctx := context.Background()

	owner := testutil.CreateUser(t, db, "user@example.com")
	lashes := testutil.CreateService(t, db, "Lashes", time.Hour)
	nails := testutil.CreateService(t, db, "Nails", time.Hour)
	testutil.CreateBooking(t, db, owner, lashes, time.Now().Add(time.Hour))
	testutil.CreateBooking(t, db, owner, nails, time.Now().Add(2*time.Hour))

	require.NoError(t, db.Delete(&models.Service{}, lashes.ID).Error)
	got, err := repo.ListForOwner(ctx, owner.ID)
	require.NoError(t, err)
	assert.Len(t, got, 1)

	require.NoError(t, db.Delete(&models.User{}, owner.ID).Error)
	var count int64
	require.NoError(t, db.Model(&models.Booking{}).Count(&count).Error)
	assert.Zero(t, count)
}
