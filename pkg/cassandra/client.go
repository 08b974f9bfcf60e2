// Package cassandra opens sessions against a TLS-only, password-protected
// Cassandra-compatible cluster.
package cassandra

import (
	"context"
	"crypto/tls"
	"fmt"
	"strings"
	"time"

	"github.com/gocql/gocql"
)

// Client wraps the Cassandra session.
type Client struct {
	session *gocql.Session
}

// NewClient validates cfg and establishes a session. The call blocks on the
// TLS handshake and initial host discovery.
func NewClient(cfg Config) (*Client, error) {
	cluster, err := newClusterConfig(cfg)
	if err != nil {
		return nil, err
	}

	session, err := cluster.CreateSession()
	if err != nil {
		return nil, fmt.Errorf("failed to create Cassandra session: %w", err)
	}

	return &Client{session: session}, nil
}

func newClusterConfig(cfg Config) (*gocql.ClusterConfig, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	cluster := gocql.NewCluster(cfg.Hosts...)
	cluster.Port = cfg.Port
	cluster.Keyspace = cfg.Keyspace
	cluster.Consistency = parseConsistency(cfg.Consistency)
	cluster.Timeout = orDefault(cfg.Timeout)
	cluster.ConnectTimeout = orDefault(cfg.ConnectTimeout)
	cluster.ProtoVersion = cfg.ProtoVersion
	if cfg.NumConns > 0 {
		cluster.NumConns = cfg.NumConns
	}

	// No idle keepalive probes on the connections.
	cluster.SocketKeepalive = 0

	cluster.Authenticator = gocql.PasswordAuthenticator{
		Username: cfg.Username,
		Password: cfg.Password,
	}

	cluster.SslOpts = &gocql.SslOptions{
		Config: &tls.Config{
			MinVersion: tls.VersionTLS12,
		},
		CaPath:                 cfg.CAPath,
		EnableHostVerification: cfg.HostVerification,
	}

	// Round-robin across the local datacenter only.
	cluster.PoolConfig.HostSelectionPolicy = gocql.DCAwareRoundRobinPolicy(cfg.LocalDC)

	return cluster, nil
}

func orDefault(d time.Duration) time.Duration {
	if d == 0 {
		return defaultTimeout
	}
	return d
}

// Session returns the underlying gocql session.
func (c *Client) Session() *gocql.Session {
	return c.session
}

// Query runs stmt and returns every row as a column-name keyed map.
func (c *Client) Query(ctx context.Context, stmt string, values ...interface{}) ([]map[string]interface{}, error) {
	iter := c.session.Query(stmt, values...).WithContext(ctx).Iter()

	rows, err := iter.SliceMap()
	if err != nil {
		iter.Close()
		return nil, fmt.Errorf("failed to read rows: %w", err)
	}
	if err := iter.Close(); err != nil {
		return nil, fmt.Errorf("failed to iterate rows: %w", err)
	}

	return rows, nil
}

// Exec runs a statement that returns no rows.
func (c *Client) Exec(ctx context.Context, stmt string, values ...interface{}) error {
	if err := c.session.Query(stmt, values...).WithContext(ctx).Exec(); err != nil {
		return fmt.Errorf("failed to execute statement: %w", err)
	}
	return nil
}

// Close closes the Cassandra session.
func (c *Client) Close() {
	if c.session != nil {
		c.session.Close()
	}
}

// parseConsistency converts a string consistency level to gocql.Consistency.
func parseConsistency(s string) gocql.Consistency {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "ANY":
		return gocql.Any
	case "ONE":
		return gocql.One
	case "TWO":
		return gocql.Two
	case "THREE":
		return gocql.Three
	case "QUORUM":
		return gocql.Quorum
	case "ALL":
		return gocql.All
	case "EACH_QUORUM":
		return gocql.EachQuorum
	case "LOCAL_ONE":
		return gocql.LocalOne
	default:
		return gocql.LocalQuorum
	}
}
