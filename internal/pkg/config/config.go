package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/careloop/careloop/internal/pkg/models"
)

// InitConfig loads configuration from an optional config file and the
// environment. Environment variables win over file values and use underscore
// separators, e.g. DATABASE_HOST for database.host.
func InitConfig(configPath string) (*models.Config, error) {
	v := viper.New()

	setDefaults(v)

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configPath != "" {
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", configPath, err)
		}
	}

	cfg := &models.Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("app.name", "auth-service")
	v.SetDefault("app.environment", "local")
	v.SetDefault("app.debug", true)
	v.SetDefault("app.version", "development")

	v.SetDefault("server.host", "")
	v.SetDefault("server.port", 9990)
	v.SetDefault("server.read_timeout", 30)
	v.SetDefault("server.write_timeout", 30)
	v.SetDefault("server.shutdown_timeout", 30)

	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.ssl_mode", "disable")
	v.SetDefault("database.max_conns", 10)
	v.SetDefault("database.idle_conns", 2)

	v.SetDefault("redis.host", "localhost")
	v.SetDefault("redis.port", 6379)
	v.SetDefault("redis.db", 0)
	v.SetDefault("redis.pool_size", 10)

	v.SetDefault("nsq.address", "localhost:4150")

	v.SetDefault("jwt.expiration", 1440)
	v.SetDefault("jwt.issuer", "careloop-auth")

	v.SetDefault("services.collection_service_url", "http://localhost:9994")

	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.file_path", "")
}
