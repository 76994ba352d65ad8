package store

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/hopee-platform/hopee-backend/internal/models"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.RefreshToken{},
		&models.NGO{},
		&models.Case{},
		&models.AdminRequest{},
		&models.ContactMessage{},
	))
	return db
}

func validCase() *models.Case {
	return &models.Case{
		Title:       "Elderly person needs help",
		Description: "Found an elderly person in distress near the station.",
		Category:    models.CategoryElderly,
		Priority:    models.PriorityHigh,
		Location: models.Location{
			Address: "123 Main Street, Downtown",
			City:    "Mumbai",
			State:   "Maharashtra",
		},
		CreatedBy: "reporter@example.com",
	}
}
