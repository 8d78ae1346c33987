package config

import (
	"errors"

	"github.com/caarlos0/env/v11"
)

type Config struct {
	MES struct {
		BaseURL        string `env:"BASE_URL" envDefault:"http://localhost:8080/api/v1"`
		RequestTimeout int    `env:"REQUEST_TIMEOUT" envDefault:"30"`
	} `envPrefix:"MES_"`
	MockMES struct {
		Port            string `env:"PORT" envDefault:"8080"`
		ReadTimeout     int    `env:"READ_TIMEOUT" envDefault:"10"`
		WriteTimeout    int    `env:"WRITE_TIMEOUT" envDefault:"15"`
		IdleTimeout     int    `env:"IDLE_TIMEOUT" envDefault:"60"`
		ShutdownTimeout int    `env:"SHUTDOWN_TIMEOUT" envDefault:"10"`
		ExposeMetrics   bool   `env:"EXPOSE_METRICS" envDefault:"true"`
		Seed            struct {
			OperatorCount      int `env:"OPERATOR_COUNT" envDefault:"12"`
			MaxLotsPerOperator int `env:"MAX_LOTS_PER_OPERATOR" envDefault:"8"`
		} `envPrefix:"SEED_"`
	} `envPrefix:"MOCKMES_"`
}

func LoadConfig() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		aggErr := env.AggregateError{}
		if ok := errors.As(err, &aggErr); ok {
			// 只返回第一个错误使得日志更清晰
			return nil, aggErr.Errors[0]
		}
	}

	return cfg, nil
}
