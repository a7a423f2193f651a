package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all application configuration
type Config struct {
	App      App      `mapstructure:"app"`
	Owner    Owner    `mapstructure:"owner"`
	Defaults Defaults `mapstructure:"defaults"`
	Output   Output   `mapstructure:"output"`
	AI       AI       `mapstructure:"ai"`
	Server   Server   `mapstructure:"server"`
}

// App holds general application configuration
type App struct {
	Debug   bool   `mapstructure:"debug"`
	DataDir string `mapstructure:"data_dir"`
}

// Owner identifies the current user for post store operations. Store calls
// fail as unauthenticated when UserID is empty.
type Owner struct {
	UserID string `mapstructure:"user_id"`
	Name   string `mapstructure:"name"`
}

// Defaults holds the pipeline defaults applied when flags are omitted.
type Defaults struct {
	Platform string `mapstructure:"platform"`
	Tone     string `mapstructure:"tone"`
	Template string `mapstructure:"template"`
	Colors   string `mapstructure:"colors"`
	Logo     string `mapstructure:"logo"`
}

// Output holds export configuration
type Output struct {
	Directory string `mapstructure:"directory"`
	Format    string `mapstructure:"format"`
}

// AI holds the optional remote expansion configuration
type AI struct {
	Gemini GeminiConfig `mapstructure:"gemini"`
}

// GeminiConfig holds Google Gemini configuration
type GeminiConfig struct {
	APIKey string `mapstructure:"api_key"`
	Model  string `mapstructure:"model"`
}

// Server holds the JSON API configuration
type Server struct {
	Host        string `mapstructure:"host"`
	Port        int    `mapstructure:"port"`
	CORSEnabled bool   `mapstructure:"cors_enabled"`
}

var globalConfig *Config

// Load loads configuration from the config file, .env and environment
// variables, in that order of increasing precedence.
func Load(configFile string) (*Config, error) {
	if globalConfig != nil {
		return globalConfig, nil
	}

	// Load .env file if it exists
	if _, err := os.Stat(".env"); err == nil {
		if err := godotenv.Load(".env"); err != nil {
			fmt.Printf("Warning: Error loading .env file: %v\n", err)
		}
	}

	if configFile != "" {
		viper.SetConfigFile(configFile)
	} else {
		viper.AddConfigPath(".")
		viper.AddConfigPath("$HOME")
		viper.SetConfigName(".carousel")
		viper.SetConfigType("yaml")
	}

	setDefaults()

	viper.AutomaticEnv()
	viper.SetEnvPrefix("carousel")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	config := &Config{}
	if err := viper.Unmarshal(config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	// The Gemini key commonly lives in the environment rather than the
	// config file.
	if config.AI.Gemini.APIKey == "" {
		config.AI.Gemini.APIKey = os.Getenv("GEMINI_API_KEY")
	}

	globalConfig = config
	return config, nil
}

// Get returns the global configuration, loading it if necessary
func Get() *Config {
	if globalConfig == nil {
		config, err := Load("")
		if err != nil {
			panic(fmt.Sprintf("Failed to load configuration: %v", err))
		}
		return config
	}
	return globalConfig
}

// Reset clears the cached configuration. Intended for tests.
func Reset() {
	globalConfig = nil
	viper.Reset()
}

func setDefaults() {
	viper.SetDefault("app.debug", false)
	viper.SetDefault("app.data_dir", ".carousel-cache")

	viper.SetDefault("owner.user_id", "local")
	viper.SetDefault("owner.name", "")

	viper.SetDefault("defaults.platform", "instagram")
	viper.SetDefault("defaults.tone", "professional")
	viper.SetDefault("defaults.template", "modern-minimal")
	viper.SetDefault("defaults.colors", "Classic")
	viper.SetDefault("defaults.logo", "CC")

	viper.SetDefault("output.directory", "exports")
	viper.SetDefault("output.format", "html")

	viper.SetDefault("ai.gemini.model", "gemini-flash-lite-latest")

	viper.SetDefault("server.host", "localhost")
	viper.SetDefault("server.port", 8080)
	viper.SetDefault("server.cors_enabled", true)
}
