package e2e

import (
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	// E2E_COLOURS enables colorized output for better log readability
	Colours bool `envconfig:"E2E_COLOURS" default:"true"`
	// E2E_SEED fixes the simulator sampling for reproducible runs
	Seed      int64 `envconfig:"E2E_SEED" default:"42"`
	ChunkSize int   `envconfig:"E2E_CHUNK_SIZE" default:"3"`
	Shots     int   `envconfig:"E2E_SHOTS" default:"500"`
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	return cfg, err
}
