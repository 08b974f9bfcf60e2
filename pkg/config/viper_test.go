package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFile(t *testing.T) {
	v, err := Load(t.TempDir(), "absent")
	require.NoError(t, err)
	assert.Empty(t, v.ConfigFileUsed())
}

func TestLoadFileAndEnv(t *testing.T) {
	dir := t.TempDir()
	yaml := []byte("cassandra:\n  keyspace: wes_chat\n  local_dc: eu-west-1\n")
	require.NoError(t, os.WriteFile(filepath.Join(dir, "toolbox.yaml"), yaml, 0o600))

	t.Setenv("CASSANDRA_LOCAL_DC", "us-east-1")

	v, err := Load(dir, "toolbox")
	require.NoError(t, err)
	assert.Equal(t, "wes_chat", v.GetString("cassandra.keyspace"))
	assert.Equal(t, "us-east-1", v.GetString("cassandra.local_dc"))
}

func TestLoadInvalidFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "broken.yaml"), []byte("a: [1, 2"), 0o600))

	_, err := Load(dir, "broken")
	assert.Error(t, err)
}

func TestDuration(t *testing.T) {
	v, err := Load(t.TempDir(), "absent")
	require.NoError(t, err)

	v.Set("timeout", "45s")
	v.Set("broken", "soon")
	assert.Equal(t, 45*time.Second, Duration(v, "timeout", time.Second))
	assert.Equal(t, time.Second, Duration(v, "broken", time.Second))
	assert.Equal(t, time.Minute, Duration(v, "missing", time.Minute))
}

func TestList(t *testing.T) {
	v, err := Load(t.TempDir(), "absent")
	require.NoError(t, err)

	v.Set("from_env", "host1:9142, host2:9142 ,")
	v.Set("from_yaml", []string{"a", "b"})
	assert.Equal(t, []string{"host1:9142", "host2:9142"}, List(v, "from_env"))
	assert.Equal(t, []string{"a", "b"}, List(v, "from_yaml"))
	assert.Nil(t, List(v, "missing"))
}
