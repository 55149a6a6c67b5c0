package config

import (
	"os"
	"sync"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/sirupsen/logrus"
)

type Config struct {
	Port              string `envconfig:"PORT"                default:":8080"`
	LogLevel          string `envconfig:"LOG_LEVEL"           default:"info"`
	GenerateAPIURL    string `envconfig:"GENERATE_API_URL"    default:""`
	GenerateTimeoutMS int    `envconfig:"GENERATE_TIMEOUT_MS" default:"15000"`
	PaymentDelayMS    int    `envconfig:"PAYMENT_DELAY_MS"    default:"2000"`
}

var (
	config Config
	once   sync.Once
)

func LoadConfig(logger *logrus.Logger) *Config {
	once.Do(func() {
		err := godotenv.Load()
		if err != nil && !os.IsNotExist(err) {
			logger.Warnf("Error loading .env file (but continuing): %v", err)
		} else if err == nil {
			logger.Info("Loaded configuration from .env file")
		}

		err = envconfig.Process("", &config)
		if err != nil {
			logger.Fatalf("Failed to process configuration from environment variables: %v", err)
		}

		logger.Infof("Configuration loaded: Port=%s, LogLevel=%s, PaymentDelayMS=%d", config.Port, config.LogLevel, config.PaymentDelayMS)
		if config.GenerateAPIURL != "" {
			logger.Info("Configuration loaded: GenerateAPIURL is set")
		} else {
			logger.Warn("Configuration: GENERATE_API_URL is not set, chat replies will degrade to network errors")
		}
	})
	return &config
}
