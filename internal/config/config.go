package config

import (
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Store struct {
		Path string `yaml:"path"` // SQLite database file
	} `yaml:"store"`
	Render struct {
		IncludeWrapper bool `yaml:"include_wrapper"`
	} `yaml:"render"`
	Watch struct {
		MinDebounceMs int `yaml:"min_debounce_ms"`
		MaxDebounceMs int `yaml:"max_debounce_ms"`
	} `yaml:"watch"`
	AI struct {
		Model  string `yaml:"model"` // LLM model for template descriptions
		APIKey string `yaml:"api_key"`
	} `yaml:"ai"`
}

// Default returns the configuration used when no config file is given.
func Default() *Config {
	var cfg Config
	cfg.Store.Path = "templatekit.db"
	cfg.Render.IncludeWrapper = true
	cfg.Watch.MinDebounceMs = 150
	cfg.Watch.MaxDebounceMs = 1000
	cfg.AI.Model = "gemini-2.5-flash"
	applyEnv(&cfg)
	return &cfg
}

func LoadConfig(path string) (*Config, error) {
	// 1. Load .env if exists
	_ = godotenv.Load()

	// 2. Load YAML config
	file, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	cfg := Default()
	if err := yaml.Unmarshal(file, cfg); err != nil {
		return nil, err
	}

	// 3. Override with Environment Variables if present
	applyEnv(cfg)

	return cfg, nil
}

func applyEnv(cfg *Config) {
	if apiKey := os.Getenv("TEMPLATEKIT_API_KEY"); apiKey != "" {
		cfg.AI.APIKey = apiKey
	}
	if model := os.Getenv("TEMPLATEKIT_AI_MODEL"); model != "" {
		cfg.AI.Model = model
	}
	if path := os.Getenv("TEMPLATEKIT_STORE_PATH"); path != "" {
		cfg.Store.Path = path
	}
}
