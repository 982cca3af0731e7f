// Package testutil holds fixtures shared by package tests.
package testutil

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	dbpkg "github.com/BruksfildServices01/beauty-booking/internal/db"
	"github.com/BruksfildServices01/beauty-booking/internal/models"
)

// NewDB opens a private in-memory SQLite database with foreign keys on
// and the full schema migrated.
func NewDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_foreign_keys=on", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, dbpkg.Migrate(db))
	return db
}

func CreateUser(t *testing.T, db *gorm.DB, email string) *models.User {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	require.NoError(t, err)

	u := &models.User{Email: email, PasswordHash: string(hash), IsActive: true}
	require.NoError(t, db.Create(u).Error)
	return u
}

func CreateService(t *testing.T, db *gorm.DB, name string, duration time.Duration) *models.Service {
	t.Helper()

	s := &models.Service{
		Name:     name,
		Duration: duration,
		Cost:     decimal.RequireFromString("25.00"),
		Category: models.CategoryLashes,
	}
	require.NoError(t, db.Create(s).Error)
	return s
}

func CreateBooking(t *testing.T, db *gorm.DB, owner *models.User, service *models.Service, start time.Time) *models.Booking {
	t.Helper()

	b := &models.Booking{
		UserID:    owner.ID,
		ServiceID: service.ID,
		StartTime: start,
		EndTime:   start.Add(service.Duration),
		Notes:     "Test notes",
	}
	require.NoError(t, db.WithContext(context.Background()).Omit("User", "Service").Create(b).Error)
	return b
}
