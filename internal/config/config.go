package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	App      AppConfig
	Analysis AnalysisConfig
	Log      LogConfig
	Database DatabaseConfig
	Redis    RedisConfig
	JWT      JWTConfig
}

type AppConfig struct {
	AppName     string
	Environment string
	HTTPPort    string
}

type AnalysisConfig struct {
	JobProfilesPath string
	ConfigPath      string
	Workers         int
	MaxUploadBytes  int
}

type LogConfig struct {
	Level  string
	Format string
}

type DatabaseConfig struct {
	DBHost        string
	DBPort        string
	DBName        string
	DBUser        string
	DBPassword    string
	DBSSLMode     string
	MigrationsDir string

	ConnectTimeout time.Duration
	PoolMaxConns   int32
}

// Enabled reports whether history persistence is configured.
func (c DatabaseConfig) Enabled() bool {
	return c.DBHost != ""
}

type RedisConfig struct {
	Host     string
	Port     string
	Password string
	TTL      time.Duration
}

func (c RedisConfig) Enabled() bool {
	return c.Host != ""
}

func (c RedisConfig) Addr() string {
	port := c.Port
	if port == "" {
		port = "6379"
	}
	return c.Host + ":" + port
}

type JWTConfig struct {
	AccessSecret    string
	AccessExpiresIn time.Duration
}

func (c JWTConfig) Enabled() bool {
	return c.AccessSecret != ""
}

var errMissingRequiredEnv = errors.New("missing required environment variables")

const (
	defaultJobProfilesPath = "dataset/jobs.csv"
	defaultWorkers         = 4
	defaultMaxUploadBytes  = 10 << 20
	defaultRedisTTL        = 600 * time.Second
	defaultAccessExpiresIn = 15 * time.Minute
)

// Load reads an optional .env file and then the process environment.
// Variables already set in the environment win over .env entries.
func Load() (Config, error) {
	_ = godotenv.Load()
	return FromEnv()
}

func FromEnv() (Config, error) {
	cfg := Config{}

	var missing []string
	req := func(key string) string {
		v := strings.TrimSpace(os.Getenv(key))
		if v == "" {
			missing = append(missing, key)
		}
		return v
	}
	opt := func(key string) string {
		return strings.TrimSpace(os.Getenv(key))
	}
	optDefault := func(key, def string) string {
		if v := opt(key); v != "" {
			return v
		}
		return def
	}

	cfg.App = AppConfig{
		AppName:     req("APP_NAME"),
		Environment: req("APP_ENV"),
		HTTPPort:    req("HTTP_PORT"),
	}

	cfg.Analysis = AnalysisConfig{
		JobProfilesPath: optDefault("JOB_PROFILES_PATH", defaultJobProfilesPath),
		ConfigPath:      opt("ANALYSIS_CONFIG_PATH"),
		Workers:         positiveInt(opt("ANALYZE_WORKERS"), defaultWorkers),
		MaxUploadBytes:  positiveInt(opt("MAX_UPLOAD_BYTES"), defaultMaxUploadBytes),
	}

	cfg.Log = LogConfig{
		Level:  optDefault("LOG_LEVEL", "info"),
		Format: optDefault("LOG_FORMAT", "json"),
	}

	cfg.Database = DatabaseConfig{
		DBHost:         opt("DB_HOST"),
		DBPort:         optDefault("DB_PORT", "5432"),
		DBName:         opt("DB_NAME"),
		DBUser:         opt("DB_USER"),
		DBPassword:     opt("DB_PASSWORD"),
		DBSSLMode:      optDefault("DB_SSL_MODE", "disable"),
		MigrationsDir:  optDefault("DB_MIGRATIONS_DIR", "migrations"),
		ConnectTimeout: duration(opt("DB_CONNECT_TIMEOUT"), 5*time.Second),
		PoolMaxConns:   int32(positiveInt(opt("DB_POOL_MAX_CONNS"), 10)),
	}

	cfg.Redis = RedisConfig{
		Host:     opt("REDIS_HOST"),
		Port:     optDefault("REDIS_PORT", "6379"),
		Password: opt("REDIS_PASSWORD"),
		TTL:      seconds(opt("REDIS_TTL"), defaultRedisTTL),
	}

	cfg.JWT = JWTConfig{
		AccessSecret:    opt("JWT_ACCESS_SECRET"),
		AccessExpiresIn: duration(opt("JWT_ACCESS_EXPIRES_IN"), defaultAccessExpiresIn),
	}

	if len(missing) > 0 {
		return Config{}, fmt.Errorf("%w: %s", errMissingRequiredEnv, strings.Join(missing, ", "))
	}

	return cfg, nil
}

func positiveInt(raw string, def int) int {
	v, err := strconv.Atoi(raw)
	if err != nil || v <= 0 {
		return def
	}
	return v
}

func seconds(raw string, def time.Duration) time.Duration {
	v, err := strconv.Atoi(raw)
	if err != nil || v <= 0 {
		return def
	}
	return time.Duration(v) * time.Second
}

func duration(raw string, def time.Duration) time.Duration {
	d, err := time.ParseDuration(raw)
	if err != nil || d <= 0 {
		return def
	}
	return d
}
