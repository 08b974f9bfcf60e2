package database

import (
	"crypto/tls"
	"crypto/x509"
	"fmt"
	"hash/fnv"
	"net"
	"os"
	"strconv"
	"strings"

	gomysql "github.com/go-sql-driver/mysql"
)

const (
	defaultPostgresPort = 5432
	defaultMySQLPort    = 3306
	defaultSSLMode      = "require"

	mysqlTLSConfigPrefix = "wes-ca-"
)

// PostgresDSN builds a libpq keyword/value connection string for cfg.
func PostgresDSN(cfg *Config) string {
	port := cfg.Port
	if port == 0 {
		port = defaultPostgresPort
	}
	sslMode := cfg.SSLMode
	if sslMode == "" {
		sslMode = defaultSSLMode
	}
	tz := cfg.TimeZone
	if tz == "" {
		tz = "UTC"
	}

	parts := []string{
		"host=" + quoteValue(cfg.Host),
		"port=" + strconv.Itoa(port),
		"user=" + quoteValue(cfg.User),
		"password=" + quoteValue(cfg.Password),
		"dbname=" + quoteValue(cfg.DBName),
		"sslmode=" + sslMode,
	}
	if cfg.SSLRootCert != "" {
		parts = append(parts, "sslrootcert="+quoteValue(cfg.SSLRootCert))
	}
	parts = append(parts, "TimeZone="+quoteValue(tz))

	return strings.Join(parts, " ")
}

// quoteValue quotes v for a keyword/value DSN when it is empty or contains
// spaces, quotes or backslashes.
func quoteValue(v string) string {
	if v != "" && !strings.ContainsAny(v, " '\\") {
		return v
	}
	v = strings.ReplaceAll(v, `\`, `\\`)
	v = strings.ReplaceAll(v, `'`, `\'`)
	return "'" + v + "'"
}

// MySQLDSN builds a go-sql-driver DSN for cfg. A custom CA is registered
// with the driver when SSLRootCert is set.
func MySQLDSN(cfg *Config) (string, error) {
	port := cfg.Port
	if port == 0 {
		port = defaultMySQLPort
	}

	mc := gomysql.NewConfig()
	mc.User = cfg.User
	mc.Passwd = cfg.Password
	mc.Net = "tcp"
	mc.Addr = net.JoinHostPort(cfg.Host, strconv.Itoa(port))
	mc.DBName = cfg.DBName
	mc.ParseTime = true
	mc.Params = map[string]string{"charset": "utf8mb4"}

	tlsName, err := mysqlTLS(cfg)
	if err != nil {
		return "", err
	}
	mc.TLSConfig = tlsName

	return mc.FormatDSN(), nil
}

// mysqlTLS maps libpq-style ssl modes onto the driver's tls parameter.
func mysqlTLS(cfg *Config) (string, error) {
	switch cfg.SSLMode {
	case "disable":
		return "false", nil
	case "prefer":
		return "preferred", nil
	case "", "require":
		return "skip-verify", nil
	case "verify-ca", "verify-full":
		if cfg.SSLRootCert == "" {
			return "true", nil
		}
		verifyHost := cfg.SSLMode == "verify-full"
		name := mysqlTLSConfigName(cfg.SSLRootCert, cfg.Host, verifyHost)
		if err := registerMySQLCA(name, cfg.SSLRootCert, cfg.Host, verifyHost); err != nil {
			return "", err
		}
		return name, nil
	default:
		return "", fmt.Errorf("unsupported sslmode %q", cfg.SSLMode)
	}
}

// mysqlTLSConfigName derives the driver's global TLS registry key from the
// settings that shape the tls.Config, so distinct CAs never share a name.
func mysqlTLSConfigName(path, host string, verifyHost bool) string {
	h := fnv.New64a()
	_, _ = h.Write([]byte(path))
	if verifyHost {
		_, _ = h.Write([]byte{1})
		_, _ = h.Write([]byte(host))
	} else {
		_, _ = h.Write([]byte{0})
	}
	return fmt.Sprintf("%s%016x", mysqlTLSConfigPrefix, h.Sum64())
}

func registerMySQLCA(name, path, host string, verifyHost bool) error {
	pem, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read CA bundle: %w", err)
	}

	pool := x509.NewCertPool()
	if !pool.AppendCertsFromPEM(pem) {
		return fmt.Errorf("no certificates found in %s", path)
	}

	tlsCfg := &tls.Config{
		RootCAs:    pool,
		MinVersion: tls.VersionTLS12,
	}
	if verifyHost {
		tlsCfg.ServerName = host
	} else {
		// verify-ca: check the chain but not the host name.
		tlsCfg.InsecureSkipVerify = true
		tlsCfg.VerifyPeerCertificate = verifyChain(pool)
	}

	if err := gomysql.RegisterTLSConfig(name, tlsCfg); err != nil {
		return fmt.Errorf("failed to register TLS config: %w", err)
	}
	return nil
}

func verifyChain(roots *x509.CertPool) func([][]byte, [][]*x509.Certificate) error {
	return func(rawCerts [][]byte, _ [][]*x509.Certificate) error {
		if len(rawCerts) == 0 {
			return fmt.Errorf("server presented no certificates")
		}
		certs := make([]*x509.Certificate, 0, len(rawCerts))
		for _, raw := range rawCerts {
			c, err := x509.ParseCertificate(raw)
			if err != nil {
				return err
			}
			certs = append(certs, c)
		}
		intermediates := x509.NewCertPool()
		for _, c := range certs[1:] {
			intermediates.AddCert(c)
		}
		_, err := certs[0].Verify(x509.VerifyOptions{
			Roots:         roots,
			Intermediates: intermediates,
		})
		return err
	}
}
