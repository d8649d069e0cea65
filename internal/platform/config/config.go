package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config agrupa los ajustes de proceso. Ninguno cambia la conversación con Billy,
// solo el diagnóstico (logs) y la reproducibilidad (semilla).
type Config struct {
	LogLevel  string `env:"LOG_LEVEL" envDefault:"warn"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"text"`
	AppName   string `env:"APP_NAME" envDefault:"billy"`

	PetName string `env:"BILLY_PET_NAME" envDefault:"Billy"`

	// Seed 0 = semilla aleatoria en cada arranque.
	Seed int64 `env:"BILLY_SEED" envDefault:"0"`
}

// Load lee la configuración desde variables de entorno.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}
