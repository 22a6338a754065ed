package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

const (
	EnvLocal = "local"
	EnvDev   = "dev"
	EnvProd  = "prod"
)

type Config struct {
	Env               string `yaml:"env" env:"ENV" env-default:"local"`
	RuntimeConfigPath string `yaml:"runtime_config_path" env:"RUNTIME_CONFIG_PATH"`
	HTTPServer        `yaml:"http_server"`
	Upstream          Upstream `yaml:"upstream"`
	Services          Services `yaml:"services"`
	Session           Session  `yaml:"session"`
	Display           Display  `yaml:"display"`
}

type HTTPServer struct {
	Address     string        `yaml:"address" env:"HTTP_ADDRESS" env-default:"localhost:8080"`
	Timeout     time.Duration `yaml:"timeout" env:"HTTP_TIMEOUT" env-default:"4s"`
	IdleTimeout time.Duration `yaml:"idle_timeout" env:"HTTP_IDLE_TIMEOUT" env-default:"60s"`
}

type Upstream struct {
	// Timeout of zero leaves the transport defaults in charge.
	Timeout time.Duration `yaml:"timeout" env:"UPSTREAM_TIMEOUT" env-default:"0s"`
}

type Services struct {
	UserURL      string `yaml:"user" env:"USER_API_BASE_URL" env-default:"http://localhost:8081/api"`
	EventURL     string `yaml:"event" env:"EVENT_API_BASE_URL" env-default:"http://localhost:8082/api"`
	BookingURL   string `yaml:"booking" env:"BOOKING_API_BASE_URL" env-default:"http://localhost:8083/api"`
	TicketingURL string `yaml:"ticketing" env:"TICKETING_API_BASE_URL" env-default:"http://localhost:8084/api"`
}

const (
	SessionDriverFile     = "file"
	SessionDriverPostgres = "postgres"
	SessionDriverRedis    = "redis"
)

type Session struct {
	Driver        string `yaml:"driver" env:"SESSION_DRIVER" env-default:"file"`
	Dir           string `yaml:"dir" env:"SESSION_DIR" env-default:"./storage/session"`
	PostgresDSN   string `yaml:"postgres_dsn" env:"SESSION_POSTGRES_DSN"`
	RedisAddr     string `yaml:"redis_addr" env:"SESSION_REDIS_ADDR" env-default:"localhost:6379"`
	RedisPassword string `yaml:"redis_password" env:"SESSION_REDIS_PASSWORD"`
	RedisDB       int    `yaml:"redis_db" env:"SESSION_REDIS_DB" env-default:"0"`
	RedisPrefix   string `yaml:"redis_prefix" env:"SESSION_REDIS_PREFIX" env-default:"event-portal"`
}

type Display struct {
	Timezone string `yaml:"timezone" env:"DISPLAY_TIMEZONE" env-default:"Local"`
}

func MustLoad() *Config {
	cfg, err := Load(os.Getenv("CONFIG_PATH"))
	if err != nil {
		log.Fatalf("cannot load config: %s", err)
	}

	return cfg
}

// Load reads configPath when given, otherwise only the environment. The
// runtime config file, when present, wins over both for the service URLs.
func Load(configPath string) (*Config, error) {
	var cfg Config

	if configPath != "" {
		if _, err := os.Stat(configPath); os.IsNotExist(err) {
			return nil, fmt.Errorf("config file does not exist: %s", configPath)
		}

		if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
			return nil, fmt.Errorf("cannot read config: %w", err)
		}
	} else if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("cannot read env: %w", err)
	}

	if cfg.RuntimeConfigPath != "" {
		rt, err := readRuntime(cfg.RuntimeConfigPath)
		if err != nil {
			return nil, err
		}
		cfg.Services = rt.apply(cfg.Services)
	}

	cfg.Services = cfg.Services.trimmed()

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) Location() (*time.Location, error) {
	if c.Display.Timezone == "" || c.Display.Timezone == "Local" {
		return time.Local, nil
	}
	return time.LoadLocation(c.Display.Timezone)
}

func (c *Config) validate() error {
	switch c.Env {
	case EnvLocal, EnvDev, EnvProd:
	default:
		return fmt.Errorf("unknown env %q", c.Env)
	}

	switch c.Session.Driver {
	case SessionDriverFile, SessionDriverRedis:
	case SessionDriverPostgres:
		if c.Session.PostgresDSN == "" {
			return errors.New("session.postgres_dsn is required for the postgres driver")
		}
	default:
		return fmt.Errorf("unknown session driver %q", c.Session.Driver)
	}

	if _, err := c.Location(); err != nil {
		return fmt.Errorf("display timezone: %w", err)
	}

	return nil
}

// runtime mirrors the object a deployment injects next to the front end.
type runtime struct {
	UserURL      string `json:"USER_API_BASE_URL"`
	EventURL     string `json:"EVENT_API_BASE_URL"`
	BookingURL   string `json:"BOOKING_API_BASE_URL"`
	TicketingURL string `json:"TICKETING_API_BASE_URL"`
}

func readRuntime(path string) (runtime, error) {
	var rt runtime

	b, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return rt, nil
		}
		return rt, fmt.Errorf("cannot read runtime config: %w", err)
	}

	if err := json.Unmarshal(b, &rt); err != nil {
		return rt, fmt.Errorf("cannot parse runtime config: %w", err)
	}

	return rt, nil
}

func (rt runtime) apply(s Services) Services {
	s.UserURL = firstNonEmpty(rt.UserURL, s.UserURL)
	s.EventURL = firstNonEmpty(rt.EventURL, s.EventURL)
	s.BookingURL = firstNonEmpty(rt.BookingURL, s.BookingURL)
	s.TicketingURL = firstNonEmpty(rt.TicketingURL, s.TicketingURL)
	return s
}

func (s Services) trimmed() Services {
	s.UserURL = strings.TrimRight(s.UserURL, "/")
	s.EventURL = strings.TrimRight(s.EventURL, "/")
	s.BookingURL = strings.TrimRight(s.BookingURL, "/")
	s.TicketingURL = strings.TrimRight(s.TicketingURL, "/")
	return s
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if strings.TrimSpace(v) != "" {
			return strings.TrimSpace(v)
		}
	}
	return ""
}
