package cmd

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	HTTPPort   string `envconfig:"HTTP_PORT" default:"8080"`
	DBHost     string `envconfig:"DB_HOST" default:"localhost"`
	DBPort     string `envconfig:"DB_PORT" default:"5432"`
	DBUser     string `envconfig:"DB_USER" required:"true"`
	DBPassword string `envconfig:"DB_PASSWORD"`
	DBName     string `envconfig:"DB_NAME" required:"true"`
	DBSslMode  string `envconfig:"DB_SSLMODE" default:"disable"`
	LogLevel   string `envconfig:"LOG_LEVEL" default:"info"`

	LalamoveAPIKey        string        `envconfig:"LALAMOVE_API_KEY" required:"true"`
	LalamoveAPISecret     string        `envconfig:"LALAMOVE_API_SECRET" required:"true"`
	LalamoveTimeout       time.Duration `envconfig:"LALAMOVE_TIMEOUT" default:"20s"`
	LalamoveSandboxURL    string        `envconfig:"LALAMOVE_SANDBOX_URL"`
	LalamoveProductionURL string        `envconfig:"LALAMOVE_PRODUCTION_URL"`

	DispatchWorkers     int           `envconfig:"COURIER_DISPATCH_WORKERS" default:"4"`
	DispatchQueueSize   int           `envconfig:"COURIER_DISPATCH_QUEUE_SIZE" default:"100"`
	DispatchTimeout     time.Duration `envconfig:"COURIER_DISPATCH_TIMEOUT" default:"30s"`
	CourierSyncSchedule string        `envconfig:"COURIER_SYNC_SCHEDULE" default:"@every 1m"`
	CourierSyncTimeout  time.Duration `envconfig:"COURIER_SYNC_TIMEOUT" default:"1m"`

	Store StoreSettings `envconfig:"STORE"`
}

// StoreSettings seed the store_settings row at startup when Name is set.
// Otherwise the stored row is left alone.
type StoreSettings struct {
	Name                string
	Phone               string
	Address             string
	Lat                 float64
	Lng                 float64
	LalamoveMarket      string `split_words:"true" default:"PH"`
	LalamoveServiceType string `split_words:"true" default:"MOTORCYCLE"`
	LalamoveSandbox     bool   `split_words:"true" default:"true"`
}

// LoadConfig reads the configuration from the process environment.
func LoadConfig() (Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSslMode)
}

func (s StoreSettings) IsSet() bool {
	return s.Name != ""
}
