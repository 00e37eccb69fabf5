package config

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	App      AppConfig
	Log      LogConfig
	Database DatabaseConfig
	Redis    RedisConfig
	JWT      JWTConfig
	Matching MatchingConfig
}

type AppConfig struct {
	AppName     string `mapstructure:"APP_NAME" validate:"required"`
	Environment string `mapstructure:"APP_ENV" validate:"required"`
	HTTPPort    string `mapstructure:"HTTP_PORT" validate:"required"`
}

type LogConfig struct {
	Level string `mapstructure:"LOG_LEVEL" validate:"omitempty,oneof=debug info warn error"`
	JSON  bool   `mapstructure:"LOG_JSON"`
}

type DatabaseConfig struct {
	DBHost      string `mapstructure:"DB_HOST" validate:"required"`
	DBPort      string `mapstructure:"DB_PORT" validate:"required"`
	DBName      string `mapstructure:"DB_NAME" validate:"required"`
	DBUser      string `mapstructure:"DB_USER" validate:"required"`
	DBPassword  string `mapstructure:"DB_PASSWORD"`
	DBSSLMode   string `mapstructure:"DB_SSL_MODE" validate:"omitempty,oneof=disable allow prefer require verify-ca verify-full"`
	AutoMigrate bool   `mapstructure:"DB_AUTO_MIGRATE"`

	ConnectTimeout        time.Duration `mapstructure:"DB_CONNECT_TIMEOUT"`
	PoolMaxConns          int32         `mapstructure:"DB_POOL_MAX_CONNS" validate:"gte=0"`
	PoolMinConns          int32         `mapstructure:"DB_POOL_MIN_CONNS" validate:"gte=0"`
	PoolMaxConnLifetime   time.Duration `mapstructure:"DB_POOL_MAX_CONN_LIFETIME"`
	PoolMaxConnIdleTime   time.Duration `mapstructure:"DB_POOL_MAX_CONN_IDLE_TIME"`
	PoolHealthCheckPeriod time.Duration `mapstructure:"DB_POOL_HEALTH_CHECK_PERIOD"`
}

type RedisConfig struct {
	Host     string        `mapstructure:"REDIS_HOST"`
	Port     string        `mapstructure:"REDIS_PORT"`
	Password string        `mapstructure:"REDIS_PASSWORD"`
	DB       int           `mapstructure:"REDIS_DB" validate:"gte=0"`
	CacheTTL time.Duration `mapstructure:"RECOMMENDATION_CACHE_TTL" validate:"gte=0"`
}

func (r RedisConfig) Addr() string {
	return fmt.Sprintf("%s:%s", r.Host, r.Port)
}

type JWTConfig struct {
	AccessSecret string `mapstructure:"JWT_ACCESS_SECRET" validate:"required"`
}

type MatchingConfig struct {
	Workers int `mapstructure:"MATCHING_WORKERS" validate:"gte=0"`
}

var errInvalidConfig = errors.New("invalid configuration")

// keys lists every setting Load knows about. viper only resolves env vars
// for keys it has seen, so each one is bound explicitly.
var keys = []string{
	"APP_NAME", "APP_ENV", "HTTP_PORT",
	"LOG_LEVEL", "LOG_JSON",
	"DB_HOST", "DB_PORT", "DB_NAME", "DB_USER", "DB_PASSWORD", "DB_SSL_MODE", "DB_AUTO_MIGRATE",
	"DB_CONNECT_TIMEOUT", "DB_POOL_MAX_CONNS", "DB_POOL_MIN_CONNS",
	"DB_POOL_MAX_CONN_LIFETIME", "DB_POOL_MAX_CONN_IDLE_TIME", "DB_POOL_HEALTH_CHECK_PERIOD",
	"REDIS_HOST", "REDIS_PORT", "REDIS_PASSWORD", "REDIS_DB", "RECOMMENDATION_CACHE_TTL",
	"JWT_ACCESS_SECRET",
	"MATCHING_WORKERS",
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("APP_NAME", "jobmatch")
	v.SetDefault("APP_ENV", "development")
	v.SetDefault("HTTP_PORT", "8080")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("DB_PORT", "5432")
	v.SetDefault("DB_SSL_MODE", "disable")
	v.SetDefault("DB_CONNECT_TIMEOUT", 5*time.Second)
	v.SetDefault("REDIS_HOST", "localhost")
	v.SetDefault("REDIS_PORT", "6379")
	v.SetDefault("RECOMMENDATION_CACHE_TTL", time.Duration(0))
}

// Load reads configuration from the environment, an optional .env file and
// an optional config file (yaml/json/toml, keys named like the env vars).
func Load(configFile string) (Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	setDefaults(v)
	for _, k := range keys {
		if err := v.BindEnv(k); err != nil {
			return Config{}, err
		}
	}

	if strings.TrimSpace(configFile) != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config file %s: %w", configFile, err)
		}
	}

	return decode(v)
}

func decode(v *viper.Viper) (Config, error) {
	var cfg Config
	sections := []any{&cfg.App, &cfg.Log, &cfg.Database, &cfg.Redis, &cfg.JWT, &cfg.Matching}
	for _, s := range sections {
		if err := v.Unmarshal(s); err != nil {
			return Config{}, fmt.Errorf("decode config: %w", err)
		}
	}

	cfg.App.HTTPPort = strings.TrimSpace(cfg.App.HTTPPort)
	cfg.Log.Level = strings.ToLower(strings.TrimSpace(cfg.Log.Level))

	if err := Validate(cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate reports every invalid or missing key at once, named by its env
// var.
func Validate(cfg Config) error {
	validate := validator.New()
	validate.RegisterTagNameFunc(func(f reflect.StructField) string {
		return f.Tag.Get("mapstructure")
	})

	err := validate.Struct(cfg)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}

	bad := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		bad = append(bad, fmt.Sprintf("%s (%s)", fe.Field(), fe.Tag()))
	}
	return fmt.Errorf("%w: %s", errInvalidConfig, strings.Join(bad, ", "))
}
