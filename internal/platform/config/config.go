// Package config loads application configuration from the environment and an optional config file.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds application level configuration aggregated from env/config files.
// Keys map to environment variables by upper-casing and replacing "." with "_",
// e.g. db.host -> DB_HOST, jwt.secret -> JWT_SECRET.
type Config struct {
	Server struct {
		Addr            string
		ShutdownTimeout time.Duration
		CORSOrigins     []string
		// AuthRateLimit はIPごとの1分あたりのログイン/登録試行回数。0で無効。
		AuthRateLimit int
		// TrustedProxies はX-Forwarded-Forを信頼するプロキシのIP/CIDR。空なら接続元IPを使う。
		TrustedProxies []string
	}
	DB struct {
		Driver        string
		User          string
		Password      string
		Name          string
		Host          string
		Port          string
		Instance      string
		Path          string
		RunMigrations bool
	}
	Redis struct {
		Host     string
		Port     string
		Password string
		DB       int
	}
	JWT struct {
		Secret     string
		Expiration time.Duration
	}
	Log struct {
		Level  string
		Format string
	}
	Cache struct {
		TagTTL time.Duration
	}
}

// Load reads configuration from environment variables and an optional config.yaml
// in the working directory.
func Load() (Config, error) {
	v := viper.New()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	v.SetConfigName("config")
	v.AddConfigPath(".")
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.addr", ":8080")
	v.SetDefault("server.shutdowntimeout", 10*time.Second)
	v.SetDefault("server.corsorigins", []string{})
	v.SetDefault("server.authratelimit", 20)
	v.SetDefault("server.trustedproxies", []string{})

	v.SetDefault("db.driver", "mysql")
	v.SetDefault("db.user", "")
	v.SetDefault("db.password", "")
	v.SetDefault("db.name", "blog")
	v.SetDefault("db.host", "127.0.0.1")
	v.SetDefault("db.port", "3306")
	v.SetDefault("db.instance", "")
	v.SetDefault("db.path", "blog.db")
	v.SetDefault("db.runmigrations", true)

	v.SetDefault("redis.host", "")
	v.SetDefault("redis.port", "6379")
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)

	v.SetDefault("jwt.secret", "")
	v.SetDefault("jwt.expiration", 24*time.Hour)

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")

	v.SetDefault("cache.tagttl", 5*time.Minute)
}
