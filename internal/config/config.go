package config

import "github.com/caarlos0/env/v10"

// Config centraliza la configuracion del servicio.
type Config struct {
	HTTPPort       string `env:"HTTP_PORT" envDefault:"8080"`
	LLMAPIKey      string `env:"LLM_API_KEY"`
	LLMBaseURL     string `env:"LLM_BASE_URL" envDefault:"https://api.openai.com/v1"`
	LLMModel       string `env:"LLM_MODEL" envDefault:"gpt-4o-mini"`
	ClassifierMode string `env:"CLASSIFIER_MODE" envDefault:"keyword"`
	DefaultCulture string `env:"DEFAULT_CULTURE" envDefault:"default"`
	TrendWindow    int    `env:"TREND_WINDOW" envDefault:"10"`
}

// LoadConfig carga la configuracion desde variables de entorno.
func LoadConfig() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
