package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

const (
	EnvPrefix = "PARANA"

	AppEnvDev  = "dev"
	AppEnvProd = "prod"

	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"

	EnvDBDSN  = "PARANA_DB_DSN"
	EnvDBHost = "PARANA_DB_HOST"
	EnvDBUser = "PARANA_DB_USER"
	EnvDBName = "PARANA_DB_NAME"
)

var legacyDBEnvVars = []string{EnvDBHost, EnvDBUser, EnvDBName}

type Config struct {
	App          AppConfig
	DB           DBConfig
	FeatureFlags FeatureFlagsConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.DB.ensureDSN(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

type AppConfig struct {
	Env          string `envconfig:"PARANA_APP_ENV" default:"dev"`
	LogLevel     string `envconfig:"PARANA_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"PARANA_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

type DBConfig struct {
	DSN    string `envconfig:"PARANA_DB_DSN"`
	Driver string `envconfig:"PARANA_DB_DRIVER" default:"sqlite"`

	// SQLitePath is the database file used when no DSN is supplied for the
	// sqlite driver. Foreign keys are always switched on in the DSN.
	SQLitePath string `envconfig:"PARANA_DB_SQLITE_PATH" default:"parana.db"`

	LegacyHost     string `envconfig:"PARANA_DB_HOST"`
	LegacyPort     int    `envconfig:"PARANA_DB_PORT" default:"5432"`
	LegacyUser     string `envconfig:"PARANA_DB_USER"`
	LegacyPassword string `envconfig:"PARANA_DB_PASSWORD"`
	LegacyName     string `envconfig:"PARANA_DB_NAME"`
	LegacySSLMode  string `envconfig:"PARANA_DB_SSLMODE" default:"disable"`

	// The session serialises every statement through one connection.
	MaxOpenConns    int           `envconfig:"PARANA_DB_MAX_OPEN_CONNS" default:"1"`
	MaxIdleConns    int           `envconfig:"PARANA_DB_MAX_IDLE_CONNS" default:"1"`
	ConnMaxLifetime time.Duration `envconfig:"PARANA_DB_CONN_MAX_LIFETIME" default:"1h"`
	ConnMaxIdleTime time.Duration `envconfig:"PARANA_DB_CONN_MAX_IDLE_TIME" default:"10m"`
}

func (db DBConfig) IsSQLite() bool {
	return strings.EqualFold(db.Driver, DriverSQLite)
}

type FeatureFlagsConfig struct {
	AutoMigrate bool `envconfig:"PARANA_AUTO_MIGRATE" default:"true"`
}

func (db *DBConfig) ensureDSN() error {
	if db.DSN != "" {
		return nil
	}

	if db.IsSQLite() {
		db.DSN = fmt.Sprintf("file:%s?_foreign_keys=on", db.SQLitePath)
		return nil
	}

	missing := []string{}
	legacyValues := map[string]string{
		EnvDBHost: db.LegacyHost,
		EnvDBUser: db.LegacyUser,
		EnvDBName: db.LegacyName,
	}
	for _, env := range legacyDBEnvVars {
		if legacyValues[env] == "" {
			missing = append(missing, env)
		}
	}

	if len(missing) > 0 {
		return fmt.Errorf("either %s or %s are required", EnvDBDSN, strings.Join(missing, ", "))
	}

	userInfo := url.User(db.LegacyUser)
	if db.LegacyPassword != "" {
		userInfo = url.UserPassword(db.LegacyUser, db.LegacyPassword)
	}

	u := &url.URL{
		Scheme: "postgres",
		User:   userInfo,
		Host:   fmt.Sprintf("%s:%d", db.LegacyHost, db.LegacyPort),
		Path:   db.LegacyName,
	}

	if db.LegacySSLMode != "" {
		q := u.Query()
		q.Set("sslmode", db.LegacySSLMode)
		u.RawQuery = q.Encode()
	}

	db.DSN = u.String()
	return nil
}
