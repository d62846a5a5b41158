package types

type Config struct {
	Environment     string `envconfig:"ENVIRONMENT" default:"development"`
	ServerPort      uint   `envconfig:"PORT" default:"8000"`
	ReadTimeoutSec  uint   `envconfig:"READ_TIMEOUT_SEC" default:"10"`
	WriteTimeoutSec uint   `envconfig:"WRITE_TIMEOUT_SEC" default:"15"`

	// Mongo
	DatabaseURL        string `envconfig:"DATABASE_URL"`
	DatabaseName       string `envconfig:"DATABASE_NAME"`
	DatabaseTimeoutSec uint   `envconfig:"DATABASE_TIMEOUT_SEC" default:"5"`
}

func (c *Config) IsDevelopment() bool {
	return c.Environment == "" || c.Environment == "development"
}
