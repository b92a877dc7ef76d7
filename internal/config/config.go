package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config contains server configuration parameters.
type Config struct {
	LogLevel int      `env:"LOG_LEVEL" envDefault:"0"`
	HTTP     HTTP     `envPrefix:"HTTP_"`
	Database Database `envPrefix:"DATABASE_"`
	JWT      JWT      `envPrefix:"JWT_"`
	Web      Web      `envPrefix:"WEB_"`
}

// HTTP contains HTTP server parameters.
type HTTP struct {
	Port               string `env:"PORT" envDefault:"3000"`
	EnableHTTPS        bool   `env:"ENABLE_HTTPS" envDefault:"false"`
	CertFileName       string `env:"CERT_FILE_NAME" envDefault:"cert.pem"`
	PrivateKeyFileName string `env:"PRIVATE_KEY_FILE_NAME" envDefault:"key.pem"`
}

// Database contains database connection parameters. The DSN has no default:
// the server refuses to start without externally supplied credentials.
type Database struct {
	DSN string `env:"DSN,notEmpty"`
}

// JWT contains session token parameters. The secret has no default for the
// same reason the DSN has none.
type JWT struct {
	Secret string `env:"SECRET,notEmpty"`
}

// Web contains parameters of the single-page client serving shim.
type Web struct {
	Mode         string `env:"MODE" envDefault:"development"`
	StaticDir    string `env:"STATIC_DIR" envDefault:"dist"`
	DevServerURL string `env:"DEV_SERVER_URL" envDefault:"http://localhost:5173"`
}

// ModeProduction selects serving the pre-built static bundle; any other mode
// proxies unmatched requests to the bundler dev server.
const ModeProduction = "production"

// NewConfig loads configuration from environment variables.
func NewConfig() (*Config, error) {
	cfg := Config{}
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	return &cfg, nil
}
