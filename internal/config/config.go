package config

import (
	"strings"
	"time"

	"github.com/caarlos0/env/v6"
)

type Environment string

const (
	EnvLocal      Environment = "local"
	EnvDev        Environment = "dev"
	EnvStage      Environment = "stage"
	EnvProduction Environment = "production"
)

type ConfigBasicClient struct {
	Username string
	Password string
}

type Config struct {
	App struct {
		Version  string      `env:"APP_VERSION" envDefault:"local"`
		Env      Environment `env:"APP_ENV" envDefault:"local"`
		Timezone string      `env:"APP_TIMEZONE" envDefault:"America/Sao_Paulo"`
	}

	HTTP struct {
		Port string `env:"HTTP_SERVER_PORT" envDefault:"8080"`
		Host string `env:"HTTP_SERVER_HOST" envDefault:"localhost"`
	}

	Supabase struct {
		URL    string `env:"SUPABASE_URL"`
		Key    string `env:"SUPABASE_SERVICE_ROLE_KEY"`
		Schema string `env:"SUPABASE_SCHEMA" envDefault:"public"`
	}

	Auth struct {
		BasicClientsString string `env:"AUTH_BASIC_CLIENTS" envDefault:"schedule_slots:schedule_slots"`
		BasicClients       []ConfigBasicClient
	}

	RabbitMQ struct {
		Enabled bool   `env:"RABBITMQ_ENABLED"`
		AmqpURI string `env:"RABBITMQ_URL"`

		QueueConfig struct {
			AppointmentQueueName     string `env:"RABBITMQ_APPOINTMENT_QUEUE" envDefault:"clinic.schedule-slots-svc.appointment"`
			AppointmentQueueBind     string `env:"RABBITMQ_APPOINTMENT_QUEUE_BIND" envDefault:"clinic.schedule-slots-svc.appointment.cache.*"`
			AppointmentQueueExchange string `env:"RABBITMQ_APPOINTMENT_QUEUE_EXCHANGE" envDefault:"clinic.events"`
		}
	}

	Cache struct {
		Enabled      bool `env:"CACHE_ENABLED"`
		DaysSize     int  `env:"CACHE_DAYS_SIZE" envDefault:"2048"`
		MonthsSize   int  `env:"CACHE_MONTHS_SIZE" envDefault:"512"`
		MonthTTLMins int  `env:"CACHE_MONTH_TTL_MINUTES" envDefault:"5"`
	}

	location *time.Location
}

func NewConfig() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}

	// Приведение окружения к нижнему регистру для унификации
	cfg.App.Env = Environment(strings.ToLower(string(cfg.App.Env)))

	// Разбор пар логин:пароль для basic auth
	if cfg.Auth.BasicClients == nil {
		cfg.Auth.BasicClients = []ConfigBasicClient{}
	}
	clientPairs := strings.Split(cfg.Auth.BasicClientsString, ",")
	for _, pair := range clientPairs {
		parts := strings.Split(pair, ":")
		if len(parts) == 2 {
			cfg.Auth.BasicClients = append(cfg.Auth.BasicClients, ConfigBasicClient{
				Username: parts[0],
				Password: parts[1],
			})
		}
	}

	loc, err := time.LoadLocation(cfg.App.Timezone)
	if err != nil {
		return nil, err
	}
	cfg.location = loc

	// Без шины событий кэш не инвалидируется, поэтому и не включается
	if !cfg.RabbitMQ.Enabled {
		cfg.Cache.Enabled = false
	}

	return cfg, nil
}

// Location - таймзона клиники, времена расписания - ее настенные часы
func (c *Config) Location() *time.Location {
	if c.location == nil {
		return time.Local
	}
	return c.location
}

func (c *Config) MonthOverviewTTL() time.Duration {
	return time.Duration(c.Cache.MonthTTLMins) * time.Minute
}

func (c *Config) IsLocal() bool {
	return c.App.Env == EnvLocal
}

func (c *Config) IsNotLocal() bool {
	return c.App.Env == EnvDev || c.App.Env == EnvStage || c.App.Env == EnvProduction
}
