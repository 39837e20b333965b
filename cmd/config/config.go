package config

import (
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

var configPath = pflag.String("config-path", "", "directory holding server.yaml, searched before ./config and /config")

var loadConfigOnce sync.Once
var configInstance AppConfig

// LoadConfig reads the process configuration once. Command line flags are
// parsed on first use.
func LoadConfig() AppConfig {
	loadConfigOnce.Do(func() {
		if !pflag.Parsed() {
			pflag.Parse()
		}

		var paths []string
		if *configPath != "" {
			paths = append(paths, *configPath)
		}

		cfg, err := Load(paths...)
		if err != nil {
			panic(fmt.Errorf("fatal error config file: %w", err))
		}
		configInstance = cfg
	})

	return configInstance
}

// Load builds an AppConfig from server.yaml, looked up in paths and then in
// config and /config, with ENTITY_CONFIG_SERVER_* environment variables on top.
// A missing file leaves the defaults in place.
func Load(paths ...string) (AppConfig, error) {
	v := viper.New()
	v.SetEnvPrefix("entity_config_server")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.SetConfigName("server")
	v.SetConfigType("yaml")
	for _, path := range paths {
		v.AddConfigPath(path)
	}
	v.AddConfigPath("config")
	v.AddConfigPath("/config")
	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return AppConfig{}, err
		}
	}

	return AppConfig{
		General: GeneralConfig{
			LogLevel:    v.GetString("general.log_level"),
			Environment: v.GetString("general.environment"),
			Timezone:    v.GetString("general.timezone"),
		},
		HTTP: HTTPConfig{
			Address:        v.GetString("http.address"),
			AllowedOrigins: v.GetStringSlice("http.allowed_origins"),
		},
		Database: DatabaseConfig{
			Driver:        v.GetString("database.driver"),
			DSN:           v.GetString("database.dsn"),
			Timeout:       v.GetDuration("database.timeout"),
			AutoMigration: v.GetBool("database.auto_migration"),
		},
		Kafka: KafkaConfig{
			Brokers: v.GetStringSlice("kafka.brokers"),
			Group:   v.GetString("kafka.group"),
		},
		Cache: CacheConfig{
			Backend:   v.GetString("cache.backend"),
			DraftTTL:  v.GetDuration("cache.draft_ttl"),
			SchemaTTL: v.GetDuration("cache.schema_ttl"),
		},
		Redis: RedisConfig{
			Addr:     v.GetString("redis.addr"),
			Password: v.GetString("redis.password"),
			DB:       v.GetInt("redis.db"),
		},
	}, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("general.log_level", "info")
	v.SetDefault("general.environment", "local")
	v.SetDefault("general.timezone", "UTC")
	v.SetDefault("http.address", ":3000")
	v.SetDefault("database.driver", DatabaseDriverSQLite)
	v.SetDefault("database.dsn", "entity_config")
	v.SetDefault("database.timeout", 5*time.Second)
	v.SetDefault("database.auto_migration", true)
	v.SetDefault("kafka.group", "entity-config-server")
	v.SetDefault("cache.backend", CacheBackendMemory)
	v.SetDefault("cache.draft_ttl", 24*time.Hour)
	v.SetDefault("cache.schema_ttl", 10*time.Minute)
	v.SetDefault("redis.addr", "localhost:6379")
}

const (
	DatabaseDriverSQLite   = "sqlite"
	DatabaseDriverPostgres = "postgres"

	CacheBackendMemory = "memory"
	CacheBackendRedis  = "redis"
)

type AppConfig struct {
	General  GeneralConfig
	HTTP     HTTPConfig
	Database DatabaseConfig
	Kafka    KafkaConfig
	Cache    CacheConfig
	Redis    RedisConfig
}

type GeneralConfig struct {
	LogLevel    string
	Environment string
	Timezone    string
}

type HTTPConfig struct {
	Address        string
	AllowedOrigins []string
}

type DatabaseConfig struct {
	Driver        string
	DSN           string
	Timeout       time.Duration
	AutoMigration bool
}

type KafkaConfig struct {
	Brokers []string
	Group   string
}

type CacheConfig struct {
	Backend   string
	DraftTTL  time.Duration
	SchemaTTL time.Duration
}

type RedisConfig struct {
	Addr     string
	Password string //pragma: allowlist secret
	DB       int
}
