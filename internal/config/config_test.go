package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, 9142, cfg.Cassandra.Port)
	assert.Equal(t, "LOCAL_QUORUM", cfg.Cassandra.Consistency)
	assert.Equal(t, 60*time.Second, cfg.Cassandra.Timeout)
	assert.Equal(t, 60*time.Second, cfg.Cassandra.ConnectTimeout)
	assert.Equal(t, 4, cfg.Cassandra.ProtoVersion)
	assert.True(t, cfg.Cassandra.HostVerification)
	assert.Equal(t, "postgres", cfg.Database.Driver)
	assert.Equal(t, 5432, cfg.Database.Port)
	assert.Equal(t, "require", cfg.Database.SSLMode)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestLoadFileWithEnvOverrides(t *testing.T) {
	dir := t.TempDir()
	yaml := `
cassandra:
  hosts: ["cassandra.eu-west-1.amazonaws.com"]
  local_dc: eu-west-1
  timeout: 15s
database:
  host: db.internal
  dbname: rooms
log:
  level: debug
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "toolbox.yaml"), []byte(yaml), 0o600))

	t.Setenv("CASSANDRA_HOSTS", "node1, node2")
	t.Setenv("CASSANDRA_USERNAME", "svc")
	t.Setenv("POSTGRES_PASSWORD", "pw")

	cfg, err := Load(dir)
	require.NoError(t, err)

	assert.Equal(t, []string{"node1", "node2"}, cfg.Cassandra.Hosts)
	assert.Equal(t, "eu-west-1", cfg.Cassandra.LocalDC)
	assert.Equal(t, "svc", cfg.Cassandra.Username)
	assert.Equal(t, 15*time.Second, cfg.Cassandra.Timeout)
	assert.Equal(t, "db.internal", cfg.Database.Host)
	assert.Equal(t, "rooms", cfg.Database.DBName)
	assert.Equal(t, "pw", cfg.Database.Password)
	assert.Equal(t, "debug", cfg.Log.Level)
}
