package shared

import (
	"errors"
	"io/fs"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/rs/zerolog/log"
)

type Config struct {
	AppEnv      string        `envconfig:"APP_ENV" default:"prod"`
	HTTPAddr    string        `envconfig:"HTTP_ADDR" default:":8080"`
	MetricsAddr string        `envconfig:"METRICS_ADDR"`
	APIBase     string        `envconfig:"API_BASE_URL" default:"http://localhost:5000/api"`
	APIRate     int           `envconfig:"API_RPS" default:"10"`
	TokenCookie string        `envconfig:"TOKEN_COOKIE" default:"token"`
	HTTPTimeout time.Duration `envconfig:"HTTP_TIMEOUT" default:"0s"`
}

// Load reads .env (when present) and then the process environment.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Warn().Err(err).Msg("could not load .env file")
	}
	var c Config
	if err := envconfig.Process("", &c); err != nil {
		return Config{}, err
	}
	if c.APIBase == "" {
		return Config{}, errors.New("API_BASE_URL is empty")
	}
	if c.TokenCookie == "" {
		c.TokenCookie = "token"
	}
	return c, nil
}
