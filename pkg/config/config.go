package config

import (
	"fmt"
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Config holds application configuration
type Config struct {
	Server    ServerConfig
	Fireflies FirefliesConfig
	Asana     AsanaConfig
	Gemini    GeminiConfig
	Routing   RoutingConfig
}

// ServerConfig holds server configuration
type ServerConfig struct {
	Port            string `envconfig:"PORT" default:"8080"`
	Host            string `envconfig:"HOST" default:"0.0.0.0"`
	Environment     string `envconfig:"ENVIRONMENT" default:"development"`
	ShutdownTimeout int    `envconfig:"SHUTDOWN_TIMEOUT" default:"10"`
}

// FirefliesConfig holds transcription provider configuration
type FirefliesConfig struct {
	APIKey        string `envconfig:"FIREFLIES_API_KEY"`
	BaseURL       string `envconfig:"FIREFLIES_API_URL" default:"https://api.fireflies.ai/graphql"`
	WebhookSecret string `envconfig:"FIREFLIES_WEBHOOK_SECRET"`
}

// AsanaConfig holds task tracker configuration
type AsanaConfig struct {
	AccessToken       string `envconfig:"ASANA_PERSONAL_ACCESS_TOKEN"`
	WorkspaceGID      string `envconfig:"ASANA_WORKSPACE_GID"`
	DefaultProjectGID string `envconfig:"ASANA_PROJECT_GID"`
	BaseURL           string `envconfig:"ASANA_API_URL" default:"https://app.asana.com/api/1.0"`
}

// GeminiConfig holds LLM analysis backend configuration
type GeminiConfig struct {
	APIKey  string        `envconfig:"GEMINI_API_KEY"`
	Model   string        `envconfig:"GEMINI_MODEL" default:"gemini-1.5-flash-latest"`
	BaseURL string        `envconfig:"GEMINI_API_URL" default:"https://generativelanguage.googleapis.com"`
	Timeout time.Duration `envconfig:"GEMINI_TIMEOUT" default:"60s"`
}

// RoutingConfig selects how the destination project is chosen.
// "fixed" always uses the default project; "classifier" asks the
// analysis backend to classify the meeting and looks up a matching
// client project, falling back to the default.
type RoutingConfig struct {
	Mode string `envconfig:"ROUTING_MODE" default:"fixed"`
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if exists (ignore error if file doesn't exist)
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found, using environment variables or defaults")
	}

	var config Config
	if err := envconfig.Process("", &config); err != nil {
		return nil, fmt.Errorf("failed to process environment: %w", err)
	}

	// Validate required fields
	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Asana.AccessToken == "" {
		return fmt.Errorf("ASANA_PERSONAL_ACCESS_TOKEN is required")
	}
	if c.Asana.WorkspaceGID == "" {
		return fmt.Errorf("ASANA_WORKSPACE_GID is required")
	}
	if c.Asana.DefaultProjectGID == "" {
		return fmt.Errorf("ASANA_PROJECT_GID is required")
	}
	if c.Routing.Mode != "fixed" && c.Routing.Mode != "classifier" {
		return fmt.Errorf("ROUTING_MODE must be \"fixed\" or \"classifier\", got %q", c.Routing.Mode)
	}
	return nil
}
