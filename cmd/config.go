package cmd

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"parcelhub/internal/core/domain/model/kernel"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Auth providers accepted in AUTH_PROVIDER.
const (
	AuthProviderFirebase = "firebase"
	AuthProviderJWT      = "jwt"
)

type Config struct {
	AppEnv   string `mapstructure:"APP_ENV"`
	AppName  string `mapstructure:"APP_NAME"`
	HTTPPort string `mapstructure:"HTTP_PORT"`

	DBHost       string `mapstructure:"DB_HOST"`
	DBPort       string `mapstructure:"DB_PORT"`
	DBUser       string `mapstructure:"DB_USER"`
	DBPassword   string `mapstructure:"DB_PASSWORD"`
	DBName       string `mapstructure:"DB_NAME"`
	DBSslMode    string `mapstructure:"DB_SSLMODE"`
	DBShowSQL    bool   `mapstructure:"DB_SHOW_SQL"`
	DBMaxConns   int    `mapstructure:"DB_MAX_OPEN_CONNS"`
	DBConnectTry int    `mapstructure:"DB_CONNECT_TRIES"`

	AuthProvider            string `mapstructure:"AUTH_PROVIDER"`
	FirebaseCredentialsPath string `mapstructure:"FIREBASE_CREDENTIALS_PATH"`
	JWTSecret               string `mapstructure:"JWT_SECRET"`
	JWTIssuer               string `mapstructure:"JWT_ISSUER"`

	RedisAddr     string        `mapstructure:"REDIS_ADDR"`
	RedisPassword string        `mapstructure:"REDIS_PASSWORD"`
	RedisDB       int           `mapstructure:"REDIS_DB"`
	StatsCacheTTL time.Duration `mapstructure:"STATS_CACHE_TTL"`

	AdminEmails   string `mapstructure:"ADMIN_EMAILS"`
	SnowflakeNode int64  `mapstructure:"SNOWFLAKE_NODE"`

	RoleReconcileSchedule string        `mapstructure:"ROLE_RECONCILE_SCHEDULE"`
	StatsRefreshSchedule  string        `mapstructure:"STATS_REFRESH_SCHEDULE"`
	JobTimeout            time.Duration `mapstructure:"JOB_TIMEOUT"`

	OpenAPIValidation bool `mapstructure:"OPENAPI_VALIDATION"`
}

var defaults = map[string]any{
	"APP_ENV":                   "development",
	"APP_NAME":                  "parcelhub",
	"HTTP_PORT":                 "8080",
	"DB_HOST":                   "localhost",
	"DB_PORT":                   "5432",
	"DB_USER":                   "postgres",
	"DB_PASSWORD":               "",
	"DB_NAME":                   "parcelhub",
	"DB_SSLMODE":                "disable",
	"DB_SHOW_SQL":               false,
	"DB_MAX_OPEN_CONNS":         20,
	"DB_CONNECT_TRIES":          10,
	"AUTH_PROVIDER":             AuthProviderJWT,
	"FIREBASE_CREDENTIALS_PATH": "",
	"JWT_SECRET":                "",
	"JWT_ISSUER":                "parcelhub",
	"REDIS_ADDR":                "",
	"REDIS_PASSWORD":            "",
	"REDIS_DB":                  0,
	"STATS_CACHE_TTL":           "60s",
	"ADMIN_EMAILS":              "",
	"SNOWFLAKE_NODE":            1,
	"ROLE_RECONCILE_SCHEDULE":   "@every 5m",
	"STATS_REFRESH_SCHEDULE":    "@every 1m",
	"JOB_TIMEOUT":               "30s",
	"OPENAPI_VALIDATION":        true,
}

// LoadConfig reads an optional .env file and then the process environment.
// Environment variables win over .env values, which win over defaults.
func LoadConfig(envFiles ...string) (Config, error) {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	// A missing .env is normal outside local development.
	_ = godotenv.Load(envFiles...)

	v := viper.New()
	for key, value := range defaults {
		v.SetDefault(key, value)
	}
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("failed to decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks the settings that have no usable default.
func (c Config) Validate() error {
	var errList []error
	switch c.AuthProvider {
	case AuthProviderFirebase:
		if c.FirebaseCredentialsPath == "" {
			errList = append(errList, errors.New("FIREBASE_CREDENTIALS_PATH is required for the firebase auth provider"))
		}
	case AuthProviderJWT:
		if c.JWTSecret == "" {
			errList = append(errList, errors.New("JWT_SECRET is required for the jwt auth provider"))
		}
	default:
		errList = append(errList, fmt.Errorf("unknown AUTH_PROVIDER %q", c.AuthProvider))
	}
	if c.SnowflakeNode < 0 || c.SnowflakeNode > 1023 {
		errList = append(errList, fmt.Errorf("SNOWFLAKE_NODE must be within 0..1023, got %d", c.SnowflakeNode))
	}
	if _, err := c.AdminEmailList(); err != nil {
		errList = append(errList, err)
	}
	return errors.Join(errList...)
}

// DSN is the PostgreSQL connection string.
func (c Config) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSslMode,
	)
}

// AdminEmailList parses ADMIN_EMAILS.
func (c Config) AdminEmailList() ([]kernel.Email, error) {
	var list []kernel.Email
	for _, raw := range strings.Split(c.AdminEmails, ",") {
		if strings.TrimSpace(raw) == "" {
			continue
		}
		email, err := kernel.NewEmail(raw)
		if err != nil {
			return nil, fmt.Errorf("ADMIN_EMAILS: %w", err)
		}
		list = append(list, email)
	}
	return list, nil
}

// CacheEnabled reports whether a Redis address is configured.
func (c Config) CacheEnabled() bool {
	return c.RedisAddr != ""
}
