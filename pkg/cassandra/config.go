package cassandra

import (
	"errors"
	"fmt"
	"time"
)

const defaultTimeout = 60 * time.Second

// ErrInvalidConfig is returned when a Config is missing required fields.
var ErrInvalidConfig = errors.New("invalid cassandra config")

// Config describes a TLS-encrypted, authenticated cluster connection.
type Config struct {
	Hosts    []string `mapstructure:"hosts"`
	Port     int      `mapstructure:"port"`
	Username string   `mapstructure:"username"`
	Password string   `mapstructure:"password"`
	LocalDC  string   `mapstructure:"local_dc"`
	Keyspace string   `mapstructure:"keyspace"` // optional

	// CAPath is the PEM bundle used to verify the cluster certificate.
	CAPath           string `mapstructure:"ca_path"`
	HostVerification bool   `mapstructure:"host_verification"`

	Consistency    string        `mapstructure:"consistency"`
	Timeout        time.Duration `mapstructure:"timeout"`
	ConnectTimeout time.Duration `mapstructure:"connect_timeout"`
	ProtoVersion   int           `mapstructure:"proto_version"`
	NumConns       int           `mapstructure:"num_conns"`
}

// DefaultConfig returns the connection settings shared by every service.
// Hosts, credentials, LocalDC and CAPath must still be set by the caller.
func DefaultConfig() Config {
	return Config{
		Port:             9142,
		HostVerification: true,
		Consistency:      "LOCAL_QUORUM",
		Timeout:          defaultTimeout,
		ConnectTimeout:   defaultTimeout,
		ProtoVersion:     4,
		NumConns:         2,
	}
}

// Validate reports the first missing required field. Zero timeouts are
// accepted and mean the 60 second default.
func (c Config) Validate() error {
	switch {
	case len(c.Hosts) == 0:
		return fmt.Errorf("%w: at least one host is required", ErrInvalidConfig)
	case c.Port <= 0:
		return fmt.Errorf("%w: port must be positive, got %d", ErrInvalidConfig, c.Port)
	case c.LocalDC == "":
		return fmt.Errorf("%w: local datacenter is required", ErrInvalidConfig)
	case c.Username == "" || c.Password == "":
		return fmt.Errorf("%w: username and password are required", ErrInvalidConfig)
	case c.CAPath == "":
		return fmt.Errorf("%w: CA certificate path is required", ErrInvalidConfig)
	case c.Timeout < 0 || c.ConnectTimeout < 0:
		return fmt.Errorf("%w: timeouts must not be negative", ErrInvalidConfig)
	}
	return nil
}
