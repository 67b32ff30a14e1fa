package config

import (
	"strings"
	"sync"

	"github.com/kelseyhightower/envconfig"
	"github.com/rs/zerolog/log"
)

type Config struct {
	Server struct {
		Port     string `envconfig:"PORT" default:"8080"`
		LogLevel string `envconfig:"LOG_LEVEL" default:"info"`
	}

	Storage struct {
		// mysql (default), redis, or memory for an ephemeral run.
		Backend     string `envconfig:"STORAGE_BACKEND" default:"mysql"`
		RedisPrefix string `envconfig:"STORAGE_REDIS_PREFIX" default:"hotel:"`
	}

	DB struct {
		// URL wins when set; otherwise the DSN is assembled from the parts.
		URL  string `envconfig:"MYSQL_URL"`
		User string `envconfig:"DB_USER" default:"root"`
		Pass string `envconfig:"DB_PASS"`
		Host string `envconfig:"DB_HOST" default:"127.0.0.1"`
		Port string `envconfig:"DB_PORT" default:"3306"`
		Name string `envconfig:"DB_NAME" default:"hotel_infinity"`
	}

	Redis struct {
		Host     string `envconfig:"REDIS_HOST" default:"127.0.0.1"`
		Port     string `envconfig:"REDIS_PORT" default:"6379"`
		Password string `envconfig:"REDIS_PASSWORD"`
		DB       int    `envconfig:"REDIS_DB" default:"0"`
	}

	Admin struct {
		Email    string `envconfig:"ADMIN_EMAIL" default:"admin@hotelinfinity.com"`
		Password string `envconfig:"ADMIN_PASSWORD" default:"admin123"`
		Name     string `envconfig:"ADMIN_NAME" default:"Admin User"`
	}

	Payment struct {
		DelayMS     int     `envconfig:"PAYMENT_DELAY_MS" default:"1500"`
		DeclineRate float64 `envconfig:"PAYMENT_DECLINE_RATE" default:"0"`
	}

	CORS struct {
		Origins string `envconfig:"CORS_ORIGINS"`
	}
}

var (
	conf *Config
	once sync.Once
)

// Get loads the configuration from the environment exactly once.
func Get() *Config {
	once.Do(func() {
		conf = &Config{}
		if err := envconfig.Process("", conf); err != nil {
			log.Fatal().Err(err).Msg("failed to load configuration")
		}
	})
	return conf
}

// CORSOrigins returns the configured origins, defaulting to a wildcard.
func (c *Config) CORSOrigins() []string {
	raw := strings.TrimSpace(c.CORS.Origins)
	if raw == "" {
		return []string{"*"}
	}
	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))
	for _, part := range parts {
		if origin := strings.TrimSpace(part); origin != "" {
			origins = append(origins, origin)
		}
	}
	if len(origins) == 0 {
		return []string{"*"}
	}
	return origins
}
