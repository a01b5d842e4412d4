package config

import (
	"errors"
	"flag"
	"net"
	"strconv"
	"strings"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// parseFlags parses all configuration flags from args.
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-d database DSN
//	-db-driver database driver (pgx, sqlite3, memory)
//	-redis redis URL for the redis session backend
//	-session-backend session store (sql, redis, memory)
//	-session-max-age session lifetime (e.g., "12h")
//	-session-hash-key session token hash key
//	-cookie-hash-key cookie signing key
//	-cookie-block-key cookie encryption key
//	-logout-redirect route name after logout (signup, login)
//	-log-level zerolog level
//	-c/-config json file path with configs
//	-request-timeout request timeout (e.g., "30s", "1m")
func parseFlags(args []string) (*StructuredConfig, error) {
	fs := flag.NewFlagSet("go-gated-site", flag.ContinueOnError)

	var serverAddress NetAddress
	var databaseDSN, databaseDriver, redisURL string
	var sessionBackend, sessionHashKey string
	var cookieHashKey, cookieBlockKey string
	var logoutRedirect, logLevel string
	var jsonConfigPath string
	var sessionMaxAge, requestTimeout time.Duration

	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.StringVar(&databaseDSN, "d", "", "Database DSN")
	fs.StringVar(&databaseDriver, "db-driver", "", "Database driver (pgx, sqlite3, memory)")
	fs.StringVar(&redisURL, "redis", "", "Redis URL")
	fs.StringVar(&sessionBackend, "session-backend", "", "Session store (sql, redis, memory)")
	fs.DurationVar(&sessionMaxAge, "session-max-age", 0, "Session lifetime (e.g., 12h)")
	fs.StringVar(&sessionHashKey, "session-hash-key", "", "Session token hash key")
	fs.StringVar(&cookieHashKey, "cookie-hash-key", "", "Cookie signing key")
	fs.StringVar(&cookieBlockKey, "cookie-block-key", "", "Cookie encryption key")
	fs.StringVar(&logoutRedirect, "logout-redirect", "", "Route name after logout (signup, login)")
	fs.StringVar(&logLevel, "log-level", "", "Log level")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	return &StructuredConfig{
		App: App{
			LogLevel:       logLevel,
			SessionHashKey: sessionHashKey,
			CookieHashKey:  cookieHashKey,
			CookieBlockKey: cookieBlockKey,
			LogoutRedirect: logoutRedirect,
		},
		Session: Session{
			MaxAge:  sessionMaxAge,
			Backend: sessionBackend,
		},
		Storage: Storage{
			DB: DB{
				Driver: databaseDriver,
				DSN:    databaseDSN,
			},
			Redis: Redis{URL: redisURL},
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			RequestTimeout: requestTimeout,
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns an empty string.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// It validates the port range, checks IP correctness unless host is "localhost",
// and returns an error if the format or values are invalid.
func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}

	if port < 1 {
		return errors.New("port number is a positive integer")
	}

	if host != "localhost" {
		ip := net.ParseIP(hostAndPort[0])
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
