package app

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"

	forgeconfig "github.com/genreforge/genreforge/internal/config"
)

// Config holds the CLI configuration assembled from command-line flags,
// environment variables, and .env files, plus the loaded pipeline
// configuration.
type Config struct {
	// Global flags
	Verbose bool
	Quiet   bool
	NoColor bool
	Output  string

	// Config file
	ConfigFile string

	// Pipeline configuration loaded from the config file
	Forge *forgeconfig.Config

	// Logging configuration
	LogLevel  string
	LogFormat string
	LogOutput string
}

// LoadConfig builds the CLI configuration from the environment. Flag values
// are applied later through UpdateFromFlags, once cobra has parsed them;
// the pipeline configuration is loaded through LoadForge, once the config
// file path is known.
func LoadConfig() (*Config, error) {
	// Load .env files first so variables defined there are visible
	loadEnvFiles()

	return &Config{
		Verbose: envBool("VERBOSE"),
		Quiet:   envBool("QUIET"),
		// Any non-empty NO_COLOR disables color, per the no-color.org convention
		NoColor: os.Getenv("NO_COLOR") != "",
		Output:  os.Getenv("OUTPUT"),

		// LogLevel stays empty unless set; the empty value triggers the
		// -v/-q precedence logic in logger.go
		LogLevel:  os.Getenv("LOG_LEVEL"),
		LogFormat: getEnvOrDefault("LOG_FORMAT", "auto"),
		LogOutput: getEnvOrDefault("LOG_OUTPUT", "stderr"),
	}, nil
}

// LoadForge loads the pipeline configuration from the configured file path.
// An empty path searches the standard locations.
func (c *Config) LoadForge() error {
	cfg, err := forgeconfig.Load(c.ConfigFile)
	if err != nil {
		return err
	}
	c.Forge = cfg
	return nil
}

// UpdateFromFlags updates config values from parsed command flags.
// This should be called after cobra parses flags to ensure flag
// values take precedence over env vars. Boolean flags can only enable;
// an unset flag leaves the env-derived value in place.
func (c *Config) UpdateFromFlags(verbose, quiet, noColor bool, output, logLevel, logFormat string) {
	c.Verbose = c.Verbose || verbose
	c.Quiet = c.Quiet || quiet
	c.NoColor = c.NoColor || noColor
	if output != "" {
		c.Output = output
	}
	if logLevel != "" {
		c.LogLevel = logLevel
	}
	if logFormat != "" {
		c.LogFormat = logFormat
	}
}

// loadEnvFiles loads environment variables from .env files. godotenv never
// overrides variables that are already set, so .env.local is loaded first
// and wins over .env.
func loadEnvFiles() {
	envFiles := []string{
		".env.local",
		".env",
	}

	for _, envFile := range envFiles {
		_ = godotenv.Load(envFile)
	}
}

// getEnvOrDefault returns the environment variable value or the default if not set.
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// envBool parses a boolean environment variable, treating unset or
// malformed values as false.
func envBool(key string) bool {
	value, err := strconv.ParseBool(os.Getenv(key))
	return err == nil && value
}
