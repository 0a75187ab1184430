package config

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

const (
	DefaultPort           = "5000"
	DefaultDatabaseName   = "flavour_fusion_recipes"
	DefaultProfilePicture = "https://res.cloudinary.com/de74jeqj6/image/upload/v1750413153/DEFAULT_PROFILE_PICTURE_zuuai4.png"
)

// Database holds document store connection parameters
type Database struct {
	URI            string        `envconfig:"MONGO_URI" required:"true"`
	Name           string        `envconfig:"DB_NAME" default:"flavour_fusion_recipes"`
	ConnectTimeout time.Duration `envconfig:"DB_CONNECT_TIMEOUT" default:"10s"`
}

// Images holds the placeholder URLs used when a document has no picture of its own
type Images struct {
	ProfilePicture   string `envconfig:"DEFAULT_PROFILE_PICTURE" default:"https://res.cloudinary.com/de74jeqj6/image/upload/v1750413153/DEFAULT_PROFILE_PICTURE_zuuai4.png"`
	RecipeImage      string `envconfig:"DEFAULT_RECIPE_IMAGE" default:"https://res.cloudinary.com/de74jeqj6/image/upload/v1750413153/DEFAULT_RECIPE_IMAGE.png"`
	IngredientsImage string `envconfig:"DEFAULT_INGREDIENTS_IMAGE" default:"https://res.cloudinary.com/de74jeqj6/image/upload/v1750413153/DEFAULT_INGREDIENTS_IMAGE.png"`
}

// Server holds HTTP listener settings
type Server struct {
	Port            string        `envconfig:"PORT" default:"5000"`
	GinMode         string        `envconfig:"GIN_MODE" default:"release"`
	ReadTimeout     time.Duration `envconfig:"READ_TIMEOUT" default:"15s"`
	WriteTimeout    time.Duration `envconfig:"WRITE_TIMEOUT" default:"15s"`
	IdleTimeout     time.Duration `envconfig:"IDLE_TIMEOUT" default:"60s"`
	ShutdownTimeout time.Duration `envconfig:"SHUTDOWN_TIMEOUT" default:"5s"`
}

// Log holds logger settings
type Log struct {
	Level  string `envconfig:"LOG_LEVEL" default:"info"`
	Format string `envconfig:"LOG_FORMAT" default:"json"`
}

// Config is the full application configuration
type Config struct {
	Database Database
	Images   Images
	Server   Server
	Log      Log
}

// Load reads an optional .env file and then the process environment.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		slog.Info("No .env file found or error loading, relying on environment variables")
	}
	return FromEnv()
}

// FromEnv populates a Config from the process environment only.
func FromEnv() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	if strings.TrimSpace(cfg.Server.Port) == "" {
		cfg.Server.Port = DefaultPort
	}
	if strings.TrimSpace(cfg.Database.Name) == "" {
		cfg.Database.Name = DefaultDatabaseName
	}
	if strings.TrimSpace(cfg.Database.URI) == "" {
		return nil, fmt.Errorf("database connection string not set (MONGO_URI)")
	}
	if cfg.Server.GinMode == "" {
		cfg.Server.GinMode = gin.ReleaseMode
	}
	switch cfg.Server.GinMode {
	case gin.DebugMode, gin.ReleaseMode, gin.TestMode:
	default:
		return nil, fmt.Errorf("invalid GIN_MODE %q", cfg.Server.GinMode)
	}

	return &cfg, nil
}

// SlogLevel maps the configured level name to a slog.Level, defaulting to info.
func (l Log) SlogLevel() slog.Level {
	switch strings.ToLower(l.Level) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
