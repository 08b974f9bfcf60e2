//go:build integration

package database

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

func setupPostgres(t *testing.T) *Config {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("wes"),
		postgres.WithUsername("wes"),
		postgres.WithPassword("pwd"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second)),
	)
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = container.Terminate(context.Background())
	})

	host, err := container.Host(ctx)
	require.NoError(t, err)
	port, err := container.MappedPort(ctx, "5432/tcp")
	require.NoError(t, err)

	return &Config{
		Driver:   "postgres",
		Host:     host,
		Port:     port.Int(),
		User:     "wes",
		Password: "pwd",
		DBName:   "wes",
		SSLMode:  "disable",
		LogLevel: "silent",
	}
}

func TestPostgresAutocommit(t *testing.T) {
	cfg := setupPostgres(t)
	ctx := context.Background()

	writer, err := New(cfg, zerolog.Nop())
	require.NoError(t, err)
	defer Close(writer)
	require.NoError(t, Ping(ctx, writer))

	require.NoError(t, writer.Exec("CREATE TABLE short_ids (id TEXT PRIMARY KEY)").Error)
	require.NoError(t, writer.Exec("INSERT INTO short_ids (id) VALUES (?)", "4PBaWLPnBhS2hjzggwJQXz").Error)

	reader, err := New(cfg, zerolog.Nop())
	require.NoError(t, err)
	defer Close(reader)

	var count int64
	require.NoError(t, reader.Table("short_ids").Count(&count).Error)
	assert.Equal(t, int64(1), count)
}
