package database

import (
	"context"
	"log/slog"
	"testing"

	"blogapi/config"
	"blogapi/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	cfg := &config.Config{}
	cfg.Database.Driver = config.DriverSQLite
	cfg.Database.SQLitePath = "file:" + uuid.NewString() + "?mode=memory&cache=shared&_foreign_keys=on"
	cfg.Database.AutoMigrate = true

	db, err := Open(cfg, slog.New(slog.DiscardHandler))
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	return db
}

func createTestUser(t *testing.T, db *gorm.DB, email string) *entity.User {
	t.Helper()

	user := &entity.User{Name: "Test " + email, Email: email, PasswordHash: "$2a$12$hash"}
	require.NoError(t, NewUserRepository(db).Create(context.Background(), user))

	return user
}

func TestOpen_UnsupportedDriver(t *testing.T) {
	cfg := &config.Config{}
	cfg.Database.Driver = "mysql"

	_, err := Open(cfg, slog.New(slog.DiscardHandler))
	require.Error(t, err)
}

func TestOpen_PostgresWithoutSection(t *testing.T) {
	cfg := &config.Config{}
	cfg.Database.Driver = config.DriverPostgres

	_, err := Open(cfg, slog.New(slog.DiscardHandler))
	require.Error(t, err)
}

func TestSqliteDSN(t *testing.T) {
	require.Equal(t, "blog.db?_foreign_keys=on", sqliteDSN("blog.db"))
	require.Equal(t, "file:x?mode=memory", sqliteDSN("file:x?mode=memory"))
}
