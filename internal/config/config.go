package config

import (
	"time"

	"github.com/caarlos0/env/v10"
)

type Config struct {
	Environment  Environment
	Log          Log
	HTTP         HTTPServer
	StaticDir    string `env:"STATIC_DIR" envDefault:"public"`
	SeedProducts bool   `env:"SEED_PRODUCTS" envDefault:"true"`

	Database Database `envPrefix:"DATABASE_"`
	JWT      JWT      `envPrefix:"JWT_"`
}

type Database struct {
	Driver       string `env:"DRIVER" envDefault:"sqlite"` // sqlite, mysql
	URL          string `env:"URL" envDefault:"ecommerce.db"`
	MaxOpenConns int    `env:"MAX_OPEN_CONNS" envDefault:"50"`
	MaxIdleConns int    `env:"MAX_IDLE_CONNS" envDefault:"10"`
}

type JWT struct {
	Secret string `env:"SECRET,required"`
	// zero means tokens carry no exp claim
	TTL time.Duration `env:"TTL" envDefault:"0s"`
}

type Environment struct {
	Name string `env:"ENVIRONMENT" envDefault:"development"`
}

type Log struct {
	Level  string `env:"LOG_LEVEL" envDefault:"info"`
	Format string `env:"LOG_FORMAT" envDefault:"json"`
}

type HTTPServer struct {
	Host string `env:"HTTP_HOST" envDefault:"0.0.0.0"`
	Port string `env:"HTTP_PORT" envDefault:"3000"`
	// requests per second per client IP on register/login, 0 disables
	AuthRateLimit float64       `env:"HTTP_AUTH_RATE_LIMIT" envDefault:"0"`
	ReadTimeout   time.Duration `env:"HTTP_READ_TIMEOUT" envDefault:"15s"`
	WriteTimeout  time.Duration `env:"HTTP_WRITE_TIMEOUT" envDefault:"15s"`
}

func (h HTTPServer) Address() string {
	return h.Host + ":" + h.Port
}

// Load parses the process environment.
func Load() (*Config, error) {
	return parse(env.Options{})
}

// LoadFrom parses the given variables instead of the process environment.
func LoadFrom(vars map[string]string) (*Config, error) {
	return parse(env.Options{Environment: vars})
}

func parse(opts env.Options) (*Config, error) {
	cfg := &Config{}
	if err := env.ParseWithOptions(cfg, opts); err != nil {
		return nil, err
	}
	return cfg, nil
}
