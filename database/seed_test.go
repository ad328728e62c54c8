package database_test

import (
	"context"
	"testing"

	"blogapi/database"
	"blogapi/database/testdb"
	"blogapi/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm/logger"
)

func TestSeedIsIdempotent(t *testing.T) {
	db := testdb.New(t)
	ctx := context.Background()

	created, err := database.Seed(ctx, db, "P@ssword123")
	require.NoError(t, err)
	assert.Equal(t, 2, created)

	created, err = database.Seed(ctx, db, "P@ssword123")
	require.NoError(t, err)
	assert.Equal(t, 0, created)

	var count int64
	require.NoError(t, db.Model(&models.User{}).Count(&count).Error)
	assert.Equal(t, int64(2), count)

	var admin models.User
	require.NoError(t, db.Where("email = ?", "admin@blog.com").First(&admin).Error)
	assert.Equal(t, models.RoleAdmin, admin.Role)
	assert.Equal(t, "Admin User", admin.Name())
	assert.True(t, admin.CheckPassword("P@ssword123"))
}

func TestSeedKeepsExistingAccount(t *testing.T) {
	db := testdb.New(t)
	existing := &models.User{Email: "user@blog.com", Username: "user", Password: "other-password", Role: models.RoleUser}
	require.NoError(t, existing.HashPassword())
	require.NoError(t, db.Create(existing).Error)

	created, err := database.Seed(context.Background(), db, "P@ssword123")
	require.NoError(t, err)
	assert.Equal(t, 1, created)

	var user models.User
	require.NoError(t, db.Where("email = ?", "user@blog.com").First(&user).Error)
	assert.True(t, user.CheckPassword("other-password"))
}

func TestLogLevel(t *testing.T) {
	assert.Equal(t, logger.Silent, database.LogLevel("SILENT"))
	assert.Equal(t, logger.Info, database.LogLevel("info"))
	assert.Equal(t, logger.Warn, database.LogLevel("bogus"))
}
