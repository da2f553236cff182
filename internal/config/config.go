package config

import (
	"fmt"

	"github.com/ilyakaznacheev/cleanenv"
)

type App struct {
	Port            string `env:"API_PORT" env-default:"3000"`
	DBConnectionURL string `env:"DB_CONNECTION_URL" env-required:"true"`
	JWTSecret       string `env:"JWT_SECRET" env-required:"true"`
	ImageDir        string `env:"IMAGE_DIR" env-default:"images"`
	MaxUploadBytes  int64  `env:"MAX_UPLOAD_BYTES" env-default:"10485760"`
}

func NewApp() (App, error) {
	var cfg App
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return App{}, fmt.Errorf("read environment config: %w", err)
	}

	return cfg, nil
}
