// Package conf loads the console configuration: a TOML file overlaid on
// defaults, with environment variables taking precedence over both so a
// deployment can point the console at another backend without touching
// the file.
package conf

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

type Config struct {
	API    APIConfig    `toml:"api"`
	Search SearchConfig `toml:"search"`
}

type APIConfig struct {
	// primary OJ REST API, the /api/... one
	BaseURL string `toml:"base_url"`
	// microservice API serving /workbook, /organization, /user, /monitor, /auth
	MicroserviceURL string `toml:"microservice_url"`
	TimeoutMs       int    `toml:"timeout_ms"`
}

type SearchConfig struct {
	PageSize int `toml:"page_size"`
	// trailing-edge debounce for the search box, 0 keeps the built-in delay
	DebounceMs int `toml:"debounce_ms"`
}

func Default() Config {
	return Config{
		API: APIConfig{
			BaseURL:         "http://localhost:8080/api",
			MicroserviceURL: "http://localhost:8080",
			TimeoutMs:       10000,
		},
		Search: SearchConfig{
			PageSize: 20,
		},
	}
}

// Load reads path when it exists and applies env overrides. A missing
// file is fine; a file that fails to parse is not.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		body, err := os.ReadFile(path)
		if err == nil {
			if err := toml.Unmarshal(body, &cfg); err != nil {
				return cfg, fmt.Errorf("parse config %s: %w", path, err)
			}
		} else if !os.IsNotExist(err) {
			return cfg, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	if v := os.Getenv("CONSOLE_API_URL"); v != "" {
		cfg.API.BaseURL = v
	}
	if v := os.Getenv("CONSOLE_MICROSERVICE_URL"); v != "" {
		cfg.API.MicroserviceURL = v
	}

	return cfg, nil
}
