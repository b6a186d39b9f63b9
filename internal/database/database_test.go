package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yukikurage/task-tracker-api/internal/config"
	"github.com/yukikurage/task-tracker-api/internal/logging"
	"github.com/yukikurage/task-tracker-api/internal/models"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func TestDialector(t *testing.T) {
	cfg := &config.Config{DBDriver: "postgres", DBHost: "db", DBPort: "5432", DBUser: "u", DBPassword: "p", DBName: "tasks"}

	d, err := Dialector(cfg)
	require.NoError(t, err)
	pg, ok := d.(*postgres.Dialector)
	require.True(t, ok)
	assert.Contains(t, pg.Config.DSN, "sslmode=disable")

	cfg.Stage = "prod"
	d, err = Dialector(cfg)
	require.NoError(t, err)
	assert.Contains(t, d.(*postgres.Dialector).Config.DSN, "sslmode=require")

	cfg.DBSSLMode = "verify-full"
	d, err = Dialector(cfg)
	require.NoError(t, err)
	assert.Contains(t, d.(*postgres.Dialector).Config.DSN, "sslmode=verify-full")

	cfg.DBDriver = "mysql"
	d, err = Dialector(cfg)
	require.NoError(t, err)
	_, ok = d.(*mysql.Dialector)
	assert.True(t, ok)

	cfg.DBDriver = "sqlite"
	d, err = Dialector(cfg)
	require.NoError(t, err)
	_, ok = d.(*sqlite.Dialector)
	assert.True(t, ok)

	cfg.DBDriver = "oracle"
	_, err = Dialector(cfg)
	assert.ErrorIs(t, err, config.ErrUnknownDBDriver)
}

func TestGormLogLevel(t *testing.T) {
	assert.Equal(t, logger.Info, GormLogLevel("debug"))
	assert.Equal(t, logger.Error, GormLogLevel("error"))
	assert.Equal(t, logger.Warn, GormLogLevel("info"))
}

func TestConnectAndMigrate_SQLite(t *testing.T) {
	cfg := &config.Config{DBDriver: "sqlite", DBName: ":memory:", LogLevel: "error"}
	log := logging.Discard()

	db, err := Connect(cfg, log)
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	defer sqlDB.Close()

	require.NoError(t, Migrate(db, log))
	// migrations are idempotent
	require.NoError(t, Migrate(db, log))

	assert.True(t, db.Migrator().HasTable(&models.User{}))
	assert.True(t, db.Migrator().HasTable(&models.Task{}))
	assert.True(t, db.Migrator().HasIndex(&models.Task{}, "idx_tasks_owner_status"))
	assert.True(t, db.Migrator().HasIndex(&models.Task{}, "idx_tasks_owner_created_at"))
}

func TestScopes(t *testing.T) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	defer sqlDB.Close()
	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Task{}))

	seed := []models.Task{
		{Title: "Ship 100% done", Description: "x", Status: models.TaskStatusDone, OwnerID: "owner-a"},
		{Title: "plain", Description: "snake_case name", Status: models.TaskStatusOpen, OwnerID: "owner-a"},
		{Title: "Ship it", Description: "y", Status: models.TaskStatusOpen, OwnerID: "owner-b"},
	}
	require.NoError(t, db.Create(&seed).Error)

	count := func(scopes ...func(*gorm.DB) *gorm.DB) int64 {
		var n int64
		require.NoError(t, db.Model(&models.Task{}).Scopes(scopes...).Count(&n).Error)
		return n
	}

	done := models.TaskStatusDone
	assert.EqualValues(t, 2, count(OwnedBy("owner-a")))
	assert.EqualValues(t, 1, count(OwnedBy("owner-a"), WithStatus(&done)))
	assert.EqualValues(t, 2, count(OwnedBy("owner-a"), WithStatus(nil)))
	assert.EqualValues(t, 1, count(OwnedBy("owner-a"), MatchingSearch("SHIP")))
	assert.EqualValues(t, 2, count(MatchingSearch("ship")))
	assert.EqualValues(t, 1, count(MatchingSearch("0%")))
	assert.EqualValues(t, 1, count(MatchingSearch("e_c")))
	assert.EqualValues(t, 0, count(MatchingSearch("p_i")))
	assert.EqualValues(t, 3, count(MatchingSearch("")))
}
