// internal/database/database_test.go
package database

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
	"gorm.io/gorm"

	"github.com/javajoker/unihub-backend/internal/config"
	"github.com/javajoker/unihub-backend/internal/models"
)

func TestSQLiteMigrationsAndAdminBootstrap(t *testing.T) {
	db, err := Initialize(config.DatabaseConfig{
		Driver:     "sqlite",
		SQLitePath: "file:bootstrap?mode=memory&cache=shared",
		LogLevel:   "silent",
	})
	require.NoError(t, err)
	defer Close(db)

	require.NoError(t, RunMigrations(db))

	ctx := context.Background()
	cfg := config.AdminConfig{Email: " Admin@UniHub.test ", Password: "s3cret-pass", Name: "Ops"}

	created, err := EnsureAdmin(ctx, db, cfg)
	require.NoError(t, err)
	assert.True(t, created)

	created, err = EnsureAdmin(ctx, db, cfg)
	require.NoError(t, err)
	assert.False(t, created)

	var admins []models.AdminUser
	require.NoError(t, db.Find(&admins).Error)
	require.Len(t, admins, 1)
	assert.Equal(t, "admin@unihub.test", admins[0].Email)
	assert.NoError(t, admins[0].CheckPassword("s3cret-pass"))
}

func TestEnsureAdminSkipsWithoutEmail(t *testing.T) {
	created, err := EnsureAdmin(context.Background(), nil, config.AdminConfig{})
	require.NoError(t, err)
	assert.False(t, created)
}

func TestWithTransactionRollsBack(t *testing.T) {
	db, err := Initialize(config.DatabaseConfig{Driver: "sqlite", SQLitePath: "file:tx?mode=memory&cache=shared"})
	require.NoError(t, err)
	defer Close(db)
	require.NoError(t, RunMigrations(db))

	err = WithTransaction(db, func(tx *gorm.DB) error {
		admin := &models.AdminUser{Email: "rollback@unihub.test", PasswordHash: "x"}
		if err := tx.Create(admin).Error; err != nil {
			return err
		}
		return assert.AnError
	})
	assert.ErrorIs(t, err, assert.AnError)

	var count int64
	require.NoError(t, db.Model(&models.AdminUser{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestEnsureIndexes(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("creates catalog indexes", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateSuccessResponse(), mtest.CreateSuccessResponse())

		require.NoError(mt, EnsureIndexes(context.Background(), mt.DB))

		var commands []string
		for {
			ev := mt.GetStartedEvent()
			if ev == nil {
				break
			}
			commands = append(commands, ev.CommandName)
		}
		assert.Equal(mt, []string{"createIndexes", "createIndexes"}, commands)
	})
}
