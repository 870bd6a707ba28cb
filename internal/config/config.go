package config

import (
	"fmt"
	"log"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	DiscordBot DiscordBotConfig
	Storage    StorageConfig
	PostgreSQL PostgreSQLConfig
}

// DiscordBotConfig holds Discord bot configuration
type DiscordBotConfig struct {
	Token         string
	AdminRoleName string
}

// StorageConfig selects and configures the persistence backend
type StorageConfig struct {
	Backend      string // "file" or "postgres"
	BalancesFile string
	RequestsFile string
}

// PostgreSQLConfig holds database configuration
type PostgreSQLConfig struct {
	Host         string
	Port         int
	User         string
	Password     string
	DBName       string
	Schema       string
	PoolMaxConns int
}

// setDefaults registers the default value for every configuration key.
func setDefaults() {
	viper.SetDefault("DiscordBot.AdminRoleName", "banker")

	viper.SetDefault("Storage.Backend", "file")
	viper.SetDefault("Storage.BalancesFile", "balances.json")
	viper.SetDefault("Storage.RequestsFile", "requests.json")

	viper.SetDefault("PostgreSQL.Host", "localhost")
	viper.SetDefault("PostgreSQL.Port", 5432)
	viper.SetDefault("PostgreSQL.User", "postgres")
	viper.SetDefault("PostgreSQL.DBName", "guild-bank-db")
	viper.SetDefault("PostgreSQL.Schema", "public")
	viper.SetDefault("PostgreSQL.PoolMaxConns", 10)
}

// Load loads configuration from file and environment variables
func Load(configPath string) (*Config, error) {
	if configPath == "" {
		configPath = "config.yaml"
	}

	viper.SetConfigFile(configPath)
	viper.SetConfigType("yaml")
	setDefaults()

	// The bot token is a secret and comes from the environment.
	viper.BindEnv("DiscordBot.Token", "DISCORD_BOT_TOKEN")

	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if cfg.DiscordBot.Token == "" {
		return nil, fmt.Errorf("discord bot token is required (set DISCORD_BOT_TOKEN)")
	}

	if cfg.Storage.Backend != "file" && cfg.Storage.Backend != "postgres" {
		return nil, fmt.Errorf("unknown storage backend %q", cfg.Storage.Backend)
	}

	return &cfg, nil
}

// Initialize sets up viper with defaults and loads the optional config file.
// Unlike Load it does not fail when no file is present, since every key has
// a default and the token can come from the environment.
func Initialize() {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")

	setDefaults()
	viper.BindEnv("DiscordBot.Token", "DISCORD_BOT_TOKEN")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			log.Fatalf("Fatal error reading config file: %v", err)
		}
		log.Println("No config file found, using defaults and environment")
		return
	}

	log.Println("Configuration loaded successfully")
}

// GetString gets a string value from the configuration
func GetString(key string) string {
	return viper.GetString(key)
}

// GetInt gets an integer value from the configuration
func GetInt(key string) int {
	return viper.GetInt(key)
}

// GetBool gets a boolean value from the configuration
func GetBool(key string) bool {
	return viper.GetBool(key)
}
