package config

import (
	"os"
	"regexp"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config represents the application configuration
type Config struct {
	Server struct {
		Port         int           `yaml:"port" default:"8080"`
		Host         string        `yaml:"host" default:"0.0.0.0"`
		ReadTimeout  time.Duration `yaml:"read_timeout" default:"30s"`
		WriteTimeout time.Duration `yaml:"write_timeout" default:"30s"`
		IdleTimeout  time.Duration `yaml:"idle_timeout" default:"60s"`
	} `yaml:"server"`

	Profiles struct {
		Dir string `yaml:"dir" default:"profiles"`
	} `yaml:"profiles"`

	Templates struct {
		Default string `yaml:"default" default:"classic"`
	} `yaml:"templates"`

	Renderer struct {
		Engine     string `yaml:"engine" default:"browser"` // "browser" or "remote"
		RemoteURL  string `yaml:"remote_url"`
		ChromePath string `yaml:"chrome_path"`
		Headless   bool   `yaml:"headless" default:"true"`
	} `yaml:"renderer"`

	RateLimit struct {
		RequestsPerSecond float64 `yaml:"requests_per_second" default:"10"`
		Burst             int     `yaml:"burst" default:"20"`
	} `yaml:"rate_limit"`

	Logging struct {
		Level  string `yaml:"level" default:"info"`
		Format string `yaml:"format" default:"json"`
		Output string `yaml:"output" default:"stdout"`

		Adapters []struct {
			Name    string                 `yaml:"name"`
			Type    string                 `yaml:"type"`
			Enabled bool                   `yaml:"enabled"`
			Options map[string]interface{} `yaml:"options"`
		} `yaml:"adapters"`
	} `yaml:"logging"`
}

// expandEnvVars expands environment variables in a string using ${VAR} or
// $VAR syntax. Unset variables expand to the empty string so downstream
// "value present" checks see absence, not the literal placeholder.
func expandEnvVars(s string) string {
	// Expand ${VAR} syntax
	re := regexp.MustCompile(`\$\{([^}]+)\}`)
	s = re.ReplaceAllStringFunc(s, func(match string) string {
		return os.Getenv(match[2 : len(match)-1])
	})

	// Expand $VAR syntax
	re2 := regexp.MustCompile(`\$([A-Za-z_][A-Za-z0-9_]*)`)
	s = re2.ReplaceAllStringFunc(s, func(match string) string {
		return os.Getenv(match[1:])
	})

	return s
}

// LoadConfig loads configuration from file and environment variables
func LoadConfig(configPath string) (*Config, error) {
	// Load .env file if it exists (ignore errors if file doesn't exist)
	_ = godotenv.Load()

	config := &Config{}

	// Set defaults
	config.Server.Port = 8080
	config.Server.Host = "0.0.0.0"
	config.Server.ReadTimeout = 30 * time.Second
	config.Server.WriteTimeout = 30 * time.Second
	config.Server.IdleTimeout = 60 * time.Second

	config.Profiles.Dir = "profiles"
	config.Templates.Default = "classic"

	config.Renderer.Engine = "browser"
	config.Renderer.Headless = true

	config.RateLimit.RequestsPerSecond = 10
	config.RateLimit.Burst = 20

	config.Logging.Level = "info"
	config.Logging.Format = "json"
	config.Logging.Output = "stdout"

	// Load from YAML file if it exists
	if configPath != "" {
		if data, err := os.ReadFile(configPath); err == nil {
			// Expand environment variables in the YAML content
			yamlContent := expandEnvVars(string(data))

			if err := yaml.Unmarshal([]byte(yamlContent), config); err != nil {
				return nil, err
			}
		}
	}

	// Override with environment variables
	config.loadFromEnv()

	return config, nil
}

// loadFromEnv loads configuration from environment variables
func (c *Config) loadFromEnv() {
	if port := os.Getenv("PORT"); port != "" {
		if p, err := strconv.Atoi(port); err == nil {
			c.Server.Port = p
		}
	}

	if host := os.Getenv("HOST"); host != "" {
		c.Server.Host = host
	}

	if dir := os.Getenv("PROFILES_DIR"); dir != "" {
		c.Profiles.Dir = dir
	}

	if def := os.Getenv("TEMPLATE_DEFAULT"); def != "" {
		c.Templates.Default = def
	}

	if engine := os.Getenv("RENDERER_ENGINE"); engine != "" {
		c.Renderer.Engine = engine
	}

	if remoteURL := os.Getenv("PDF_RENDERER_URL"); remoteURL != "" {
		c.Renderer.RemoteURL = remoteURL
	}

	if chromePath := os.Getenv("CHROME_PATH"); chromePath != "" {
		c.Renderer.ChromePath = chromePath
	}

	if headless := os.Getenv("RENDERER_HEADLESS"); headless != "" {
		c.Renderer.Headless = headless == "true" || headless == "1"
	}

	if rps := os.Getenv("RATE_LIMIT_RPS"); rps != "" {
		if v, err := strconv.ParseFloat(rps, 64); err == nil {
			c.RateLimit.RequestsPerSecond = v
		}
	}

	if burst := os.Getenv("RATE_LIMIT_BURST"); burst != "" {
		if v, err := strconv.Atoi(burst); err == nil {
			c.RateLimit.Burst = v
		}
	}

	if logLevel := os.Getenv("LOG_LEVEL"); logLevel != "" {
		c.Logging.Level = logLevel
	}

	if logFormat := os.Getenv("LOG_FORMAT"); logFormat != "" {
		c.Logging.Format = logFormat
	}
}
