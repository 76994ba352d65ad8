package services

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/hopee-platform/hopee-backend/internal/authz"
	"github.com/hopee-platform/hopee-backend/internal/config"
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

func testConfig() *config.Config {
	cfg := config.Load()
	cfg.JWTSecret = "test-secret"
	return cfg
}

func seedUser(t *testing.T, db *gorm.DB, email string, role models.UserRole) *models.User {
	t.Helper()
	u := &models.User{
		ID:       uuid.New(),
		Email:    email,
		Password: "x",
		FullName: "Test User",
		Role:     role,
	}
	require.NoError(t, db.Create(u).Error)
	return u
}

func seedNGO(t *testing.T, db *gorm.DB, email string, areas ...string) *models.NGO {
	t.Helper()
	n := &models.NGO{
		ID:           uuid.New(),
		Name:         "Helping Hands",
		Email:        email,
		Description:  "Street outreach",
		ServiceAreas: datatypes.NewJSONSlice(areas),
	}
	require.NoError(t, db.Create(n).Error)
	return n
}

func principalFor(u *models.User) *authz.Principal {
	return &authz.Principal{UserID: u.ID, Email: u.Email, Role: u.Role, NGOID: u.NGOID}
}

// ngoAccount creates a user linked to an NGO profile covering areas and
// returns its principal.
func ngoAccount(t *testing.T, db *gorm.DB, email string, areas ...string) (*authz.Principal, *models.NGO) {
	t.Helper()
	ngo := seedNGO(t, db, email, areas...)
	u := seedUser(t, db, "u+"+email, models.RoleNGO)
	require.NoError(t, db.Model(u).Updates(map[string]interface{}{"role": models.RoleNGO, "ngo_id": ngo.ID}).Error)
	u.NGOID = &ngo.ID
	return principalFor(u), ngo
}
