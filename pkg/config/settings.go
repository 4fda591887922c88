// Package config loads service settings from the environment and holds the
// queue tuning knobs.
package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Settings is the full environment-driven configuration surface.
type Settings struct {
	// Application store (PostgreSQL)
	DBHost     string
	DBPort     int
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string

	// Warehouse (ClickHouse)
	WHHost     string
	WHPort     int
	WHUser     string
	WHPassword string
	WHName     string
	WHSecure   bool
	WHParams   map[string]string

	// Auth: user issuer (Auth0) and guest issuer
	Auth0Domain     string
	Auth0Audience   string
	Auth0Issuer     string
	Auth0Algorithms []string
	GuestAuthHost   string
	GuestAuthIssuer string

	// LLM providers
	OpenAIAPIKey     string
	OpenAIModel      string
	DeepSeekAPIURL   string
	DeepSeekAPIKey   string
	DeepSeekModel    string
	AnthropicAPIKey  string
	AnthropicModel   string
	GoogleProjectID  string
	GoogleCredFile   string
	GeminiModel      string

	// Prompt packs
	PacksResourcesDir string
	ClientID          string
	Env               string
	SystemVersion     string

	// MCP providers
	DBMetaURL string
	DBRefURL  string

	// Flow tuning
	MaxSteps        int
	ChartServiceURL string
	ChartDir        string

	// Preflight advisory thresholds
	PreflightMaxRows  int64
	PreflightMaxMarks int64
	PreflightMaxParts int64

	// Server
	HTTPPort string
	LogLevel string
	JSONLog  bool

	Queue     *QueueConfig
	Retention *RetentionConfig
}

// Load reads settings from the environment, applying defaults where the
// original deployment has them.
func Load() (*Settings, error) {
	s := &Settings{
		DBHost:     getEnv("DATABASE_HOST", "localhost"),
		DBPort:     getEnvInt("DATABASE_PORT", 5432),
		DBUser:     getEnv("DATABASE_USER", "postgres"),
		DBPassword: os.Getenv("DATABASE_PASSWORD"),
		DBName:     getEnv("DATABASE_NAME", "queryflow"),
		DBSSLMode:  getEnv("DATABASE_SSLMODE", "disable"),

		WHHost:     getEnv("DATABASE_WH_HOST", "localhost"),
		WHPort:     getEnvInt("DATABASE_WH_PORT", 9440),
		WHUser:     getEnv("DATABASE_WH_USER", "default"),
		WHPassword: os.Getenv("DATABASE_WH_PASSWORD"),
		WHName:     getEnv("DATABASE_WH_NAME", "default"),
		WHSecure:   getEnvBool("DATABASE_WH_SECURE", true),
		WHParams:   parseParams(os.Getenv("DATABASE_WH_PARAMS")),

		Auth0Domain:     os.Getenv("AUTH0_DOMAIN"),
		Auth0Audience:   os.Getenv("AUTH0_API_AUDIENCE"),
		Auth0Issuer:     os.Getenv("AUTH0_ISSUER"),
		Auth0Algorithms: splitList(getEnv("AUTH0_ALGORITHMS", "RS256")),
		GuestAuthHost:   os.Getenv("GUEST_AUTH_HOST"),
		GuestAuthIssuer: os.Getenv("GUEST_AUTH_ISSUER"),

		OpenAIAPIKey:    os.Getenv("OPENAI_API_KEY"),
		OpenAIModel:     getEnv("OPENAI_LLM_NAME", "gpt-4o"),
		DeepSeekAPIURL:  getEnv("DEEPSEEK_AI_API_URL", "https://api.deepseek.com"),
		DeepSeekAPIKey:  os.Getenv("DEEPSEEK_AI_API_KEY"),
		DeepSeekModel:   getEnv("DEEPSEEK_LLM_NAME", "deepseek-chat"),
		AnthropicAPIKey: os.Getenv("ANTHROPIC_API_KEY"),
		AnthropicModel:  getEnv("ANTHROPIC_LLM_NAME", "claude-sonnet-4-20250514"),
		GoogleProjectID: os.Getenv("GOOGLE_PROJECT_ID"),
		GoogleCredFile:  os.Getenv("GOOGLE_CRED_FILE"),
		GeminiModel:     getEnv("GEMINI_LLM_NAME", "gemini-2.0-flash"),

		PacksResourcesDir: getEnv("PACKS_RESOURCES_DIR", "./resources/packs"),
		ClientID:          getEnv("CLIENT_ID", "default"),
		Env:               getEnv("ENV", "dev"),
		SystemVersion:     os.Getenv("SYSTEM_VERSION"),

		DBMetaURL: os.Getenv("DB_META_URL"),
		DBRefURL:  os.Getenv("DB_REF_URL"),

		MaxSteps:        getEnvInt("MAX_STEPS", 5),
		ChartServiceURL: os.Getenv("CHART_SERVICE_URL"),
		ChartDir:        getEnv("CHART_DIR", "./charts"),

		PreflightMaxRows:  getEnvInt64("PREFLIGHT_MAX_ROWS", 50_000_000),
		PreflightMaxMarks: getEnvInt64("PREFLIGHT_MAX_MARKS", 100_000),
		PreflightMaxParts: getEnvInt64("PREFLIGHT_MAX_PARTS", 3),

		HTTPPort: getEnv("HTTP_PORT", "8080"),
		LogLevel: getEnv("LOG_LEVEL", "info"),
		JSONLog:  getEnvBool("JSON_LOG", false),

		Queue:     LoadQueueConfig(),
		Retention: LoadRetentionConfig(),
	}

	if err := s.validate(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Settings) validate() error {
	if s.DBPassword == "" {
		return missing("DATABASE_PASSWORD")
	}
	if s.Auth0Domain == "" {
		return missing("AUTH0_DOMAIN")
	}
	if s.Auth0Audience == "" {
		return missing("AUTH0_API_AUDIENCE")
	}
	if s.Auth0Issuer == "" {
		s.Auth0Issuer = "https://" + s.Auth0Domain + "/"
	}
	if s.GuestAuthHost != "" && s.GuestAuthIssuer == "" {
		s.GuestAuthIssuer = s.GuestAuthHost
	}
	if s.MaxSteps < 1 {
		return invalid("MAX_STEPS", "must be at least 1")
	}
	if s.OpenAIAPIKey == "" && s.DeepSeekAPIKey == "" &&
		s.AnthropicAPIKey == "" && s.GoogleProjectID == "" {
		return missing("OPENAI_API_KEY (no LLM provider configured)")
	}
	return nil
}

// HasProvider reports whether the given model family has credentials.
func (s *Settings) HasProvider(model string) bool {
	switch model {
	case "openai":
		return s.OpenAIAPIKey != ""
	case "deepseek":
		return s.DeepSeekAPIKey != ""
	case "anthropic":
		return s.AnthropicAPIKey != ""
	case "gemini":
		return s.GoogleProjectID != ""
	}
	return false
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return defaultValue
}

func getEnvInt64(key string, defaultValue int64) int64 {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.ParseInt(value, 10, 64); err == nil {
			return n
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}

// parseParams parses "k1=v1,k2=v2" warehouse connection parameters.
func parseParams(raw string) map[string]string {
	if raw == "" {
		return nil
	}
	params := make(map[string]string)
	for _, pair := range strings.Split(raw, ",") {
		k, v, ok := strings.Cut(strings.TrimSpace(pair), "=")
		if ok && k != "" {
			params[k] = v
		}
	}
	return params
}

func splitList(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
