package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

type ServerConfig struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port"`
}

type QRConfig struct {
	BaseURL string `yaml:"base_url"`
}

type SeedConfig struct {
	File string `yaml:"file"`
}

type Config struct {
	Server ServerConfig `yaml:"server"`
	QR     QRConfig     `yaml:"qr"`
	Seed   SeedConfig   `yaml:"seed"`
}

func Default() Config {
	return Config{
		Server: ServerConfig{Host: "", Port: 8080},
		QR:     QRConfig{BaseURL: "http://localhost:8080"},
	}
}

// Load reads the YAML config at path (empty path skips the file) and
// then applies env overrides: SERVER_HOST, SERVER_PORT, QR_BASE_URL,
// SEED_FILE.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse config: %w", err)
		}
	}

	if host := os.Getenv("SERVER_HOST"); host != "" {
		cfg.Server.Host = host
	}
	if port := os.Getenv("SERVER_PORT"); port != "" {
		p, err := strconv.Atoi(port)
		if err != nil {
			return Config{}, fmt.Errorf("invalid SERVER_PORT %q", port)
		}
		cfg.Server.Port = p
	}
	if baseURL := os.Getenv("QR_BASE_URL"); baseURL != "" {
		cfg.QR.BaseURL = baseURL
	}
	if seedFile := os.Getenv("SEED_FILE"); seedFile != "" {
		cfg.Seed.File = seedFile
	}

	return cfg, nil
}

func (c Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}
