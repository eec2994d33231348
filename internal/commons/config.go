package commons

import (
	"fmt"
	"os"
	"time"

	"go.yaml.in/yaml/v3"

	"canteen/internal/config"
)

// yamlConfig mirrors config.Config with durations kept as strings so the
// yaml file can say "5m" instead of nanosecond counts.
type yamlConfig struct {
	Server struct {
		Port int `yaml:"port"`
	} `yaml:"server"`
	Database struct {
		Host            string `yaml:"host"`
		Port            int    `yaml:"port"`
		User            string `yaml:"user"`
		Password        string `yaml:"password"`
		Name            string `yaml:"name"`
		MaxOpenConns    int    `yaml:"maxOpenConns"`
		MaxIdleConns    int    `yaml:"maxIdleConns"`
		ConnMaxLifetime string `yaml:"connMaxLifetime"`
	} `yaml:"database"`
	RabbitMQ struct {
		Host     string `yaml:"host"`
		Port     int    `yaml:"port"`
		User     string `yaml:"user"`
		Password string `yaml:"password"`
	} `yaml:"rabbitmq"`
	Order struct {
		CreateTxTimeout  string `yaml:"createTxTimeout"`
		MaxRetryAttempts int    `yaml:"maxRetryAttempts"`
	} `yaml:"order"`
	Log struct {
		Level string `yaml:"level"`
	} `yaml:"log"`
}

func LoadConfig(path string) (*config.Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	var raw yamlConfig
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	connMaxLifetime, err := time.ParseDuration(raw.Database.ConnMaxLifetime)
	if err != nil {
		return nil, fmt.Errorf("parsing database.connMaxLifetime: %w", err)
	}

	createTxTimeout, err := time.ParseDuration(raw.Order.CreateTxTimeout)
	if err != nil {
		return nil, fmt.Errorf("parsing order.createTxTimeout: %w", err)
	}

	cfg := &config.Config{
		Server: config.ServerConfig{
			Port: raw.Server.Port,
		},
		Database: config.DatabaseConfig{
			Host:            raw.Database.Host,
			Port:            raw.Database.Port,
			User:            raw.Database.User,
			Password:        raw.Database.Password,
			Name:            raw.Database.Name,
			MaxOpenConns:    raw.Database.MaxOpenConns,
			MaxIdleConns:    raw.Database.MaxIdleConns,
			ConnMaxLifetime: connMaxLifetime,
		},
		RabbitMQ: config.RabbitMQConfig{
			Host:     raw.RabbitMQ.Host,
			Port:     raw.RabbitMQ.Port,
			User:     raw.RabbitMQ.User,
			Password: raw.RabbitMQ.Password,
		},
		Order: config.OrderConfig{
			CreateTxTimeout:  createTxTimeout,
			MaxRetryAttempts: raw.Order.MaxRetryAttempts,
		},
		Log: config.LogConfig{
			Level: raw.Log.Level,
		},
	}

	return cfg, nil
}
