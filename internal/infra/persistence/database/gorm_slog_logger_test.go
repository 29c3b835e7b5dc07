package database

import (
	"bytes"
	"context"
	"log/slog"
	"testing"
	"time"

	"blogapi/config"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func TestGormSlogLogger_Levels(t *testing.T) {
	cfg := &config.Config{}
	assert.Equal(t, logger.Warn, newGormSlogLogger(nil, cfg).level)

	cfg.Env.Debug = true
	assert.Equal(t, logger.Info, newGormSlogLogger(nil, cfg).level)
}

func TestGormSlogLogger_Trace(t *testing.T) {
	var buf bytes.Buffer
	l := newGormSlogLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})), &config.Config{})
	sqlFn := func() (string, int64) { return "SELECT * FROM users WHERE email = ?", 0 }

	l.Trace(context.Background(), time.Now(), sqlFn, gorm.ErrRecordNotFound)
	assert.Empty(t, buf.String())

	l.Trace(context.Background(), time.Now(), sqlFn, nil)
	assert.Empty(t, buf.String())

	l.Trace(context.Background(), time.Now(), sqlFn, gorm.ErrInvalidData)
	assert.Contains(t, buf.String(), "GORM query failed")

	buf.Reset()
	l.Trace(context.Background(), time.Now().Add(-time.Second), sqlFn, nil)
	assert.Contains(t, buf.String(), "GORM slow query")
}

func TestGormSlogLogger_ParamsFilterDropsValues(t *testing.T) {
	l := newGormSlogLogger(nil, nil)

	sql, params := l.ParamsFilter(context.Background(), "INSERT INTO users (password_hash) VALUES (?)", "$2a$12$secret")
	assert.Equal(t, "INSERT INTO users (password_hash) VALUES (?)", sql)
	assert.Nil(t, params)
}

func TestGormSlogLogger_IsParamsFilter(t *testing.T) {
	var l any = newGormSlogLogger(nil, nil)

	_, ok := l.(gorm.ParamsFilter)
	assert.True(t, ok, "gorm only drops bound values when the logger implements gorm.ParamsFilter")
}
