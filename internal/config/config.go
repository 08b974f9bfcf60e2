package config

import (
	"time"

	"github.com/weiawesome/wes-io-live/shared/pkg/cassandra"
	pkgconfig "github.com/weiawesome/wes-io-live/shared/pkg/config"
	"github.com/weiawesome/wes-io-live/shared/pkg/database"
	pkglog "github.com/weiawesome/wes-io-live/shared/pkg/log"
)

type Config struct {
	Cassandra cassandra.Config `mapstructure:"cassandra"`
	Database  database.Config  `mapstructure:"database"`
	Log       pkglog.Config    `mapstructure:"log"`
}

// Load reads toolbox.yaml from configPath and applies env overrides.
func Load(configPath string) (*Config, error) {
	v, err := pkgconfig.Load(configPath, "toolbox")
	if err != nil {
		return nil, err
	}

	defaults := cassandra.DefaultConfig()

	// Set defaults
	v.SetDefault("cassandra.port", defaults.Port)
	v.SetDefault("cassandra.host_verification", defaults.HostVerification)
	v.SetDefault("cassandra.consistency", defaults.Consistency)
	v.SetDefault("cassandra.timeout", defaults.Timeout.String())
	v.SetDefault("cassandra.connect_timeout", defaults.ConnectTimeout.String())
	v.SetDefault("cassandra.proto_version", defaults.ProtoVersion)
	v.SetDefault("cassandra.num_conns", defaults.NumConns)
	v.SetDefault("cassandra.ca_path", "/etc/ssl/certs/AmazonRootCA1.pem")
	v.SetDefault("database.driver", "postgres")
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.sslmode", "require")
	v.SetDefault("database.timezone", "UTC")
	v.SetDefault("database.log_level", "warn")
	v.SetDefault("log.level", "info")

	// Override from environment
	_ = v.BindEnv("cassandra.hosts", "CASSANDRA_HOSTS")
	_ = v.BindEnv("cassandra.port", "CASSANDRA_PORT")
	_ = v.BindEnv("cassandra.username", "CASSANDRA_USERNAME")
	_ = v.BindEnv("cassandra.password", "CASSANDRA_PASSWORD")
	_ = v.BindEnv("cassandra.local_dc", "CASSANDRA_LOCAL_DC")
	_ = v.BindEnv("cassandra.keyspace", "CASSANDRA_KEYSPACE")
	_ = v.BindEnv("cassandra.ca_path", "CASSANDRA_CA_PATH")
	_ = v.BindEnv("database.host", "POSTGRES_HOST")
	_ = v.BindEnv("database.port", "POSTGRES_PORT")
	_ = v.BindEnv("database.user", "POSTGRES_USER")
	_ = v.BindEnv("database.password", "POSTGRES_PASSWORD")
	_ = v.BindEnv("database.dbname", "POSTGRES_DB")
	_ = v.BindEnv("log.level", "LOG_LEVEL")

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	// CASSANDRA_HOSTS: comma-separated, e.g. "host1,host2"
	cfg.Cassandra.Hosts = pkgconfig.List(v, "cassandra.hosts")

	// Parse durations
	cfg.Cassandra.Timeout = pkgconfig.Duration(v, "cassandra.timeout", 60*time.Second)
	cfg.Cassandra.ConnectTimeout = pkgconfig.Duration(v, "cassandra.connect_timeout", 60*time.Second)

	return &cfg, nil
}
