package store

import (
	"time"

	"alaynorm/internal/platform/config"
)

// Config aggregates per backend settings
type Config struct {
	AppName string

	PG PGConfig
	CH CHConfig
}

// PGConfig configures the Postgres pool
type PGConfig struct {
	Enabled     bool
	URL         string
	MaxConns    int32
	LogSQL      bool
	SlowQueryMs int

	ConnectRetries int
	PingTimeout    time.Duration
}

// CHConfig configures the ClickHouse connection
type CHConfig struct {
	Enabled bool
	URL     string
	Role    string
}

// ConfigFrom reads backend settings from a SERVICE_ scoped view
// A backend is enabled when its URL is set
func ConfigFrom(c config.Conf, appName string) Config {
	pgURL := c.MayString("PGSQL_DBURL", "")
	chURL := c.MayString("CLICKHOUSE_DBURL", "")
	return Config{
		AppName: appName,
		PG: PGConfig{
			Enabled:        pgURL != "",
			URL:            pgURL,
			MaxConns:       int32(c.MayInt("PGSQL_MAX_CONNS", 4)),
			LogSQL:         c.MayBool("PGSQL_LOG_SQL", false),
			SlowQueryMs:    c.MayInt("PGSQL_SLOW_MS", 200),
			ConnectRetries: c.MayInt("PGSQL_CONNECT_RETRIES", 6),
			PingTimeout:    c.MayDuration("PGSQL_PING_TIMEOUT", 3*time.Second),
		},
		CH: CHConfig{
			Enabled: chURL != "",
			URL:     chURL,
			Role:    appName,
		},
	}
}
