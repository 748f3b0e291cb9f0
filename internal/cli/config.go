package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"github.com/mcoot/tilegame/internal/factory"
	redisstorage "github.com/mcoot/tilegame/internal/storage/redis"
)

// Config holds CLI configuration
type Config struct {
	// Engine settings
	Dictionary    string
	Layout        string
	Storage       string
	RedisURL      string
	MaxCandidates int
	Seed          uint64
	BoardFile     string

	// Server settings
	Addr      string
	ServerURL string

	Output   string
	LogLevel string
}

// DefaultConfig returns a Config with defaults taken from the environment.
// A .env file in the working directory is read first; real environment
// variables win over it.
func DefaultConfig() *Config {
	_ = godotenv.Load()

	return &Config{
		Dictionary:    os.Getenv("TILEGAME_DICTIONARY"),
		Layout:        os.Getenv("TILEGAME_LAYOUT"),
		Storage:       getEnvOrDefault("TILEGAME_STORAGE", factory.StorageTypeMemory),
		RedisURL:      getEnvOrDefault("REDIS_URL", redisstorage.DefaultConfig().URL),
		MaxCandidates: getEnvIntOrDefault("TILEGAME_MAX_CANDIDATES", 0),
		Seed:          uint64(getEnvIntOrDefault("TILEGAME_SEED", 0)),
		Addr:          getEnvOrDefault("TILEGAME_ADDR", ":8080"),
		ServerURL:     getEnvOrDefault("TILEGAME_SERVER", "http://localhost:8080"),
		Output:        "text",
		LogLevel:      getEnvOrDefault("TILEGAME_LOG_LEVEL", "warn"),
	}
}

// FactoryConfig converts the CLI settings for the application factory
func (c *Config) FactoryConfig(logger *slog.Logger) factory.Config {
	fc := factory.Config{
		DictionaryPath: c.Dictionary,
		Layout:         c.Layout,
		MaxCandidates:  c.MaxCandidates,
		Seed:           c.Seed,
		Logger:         logger,
		StorageType:    c.Storage,
	}
	if c.Storage == factory.StorageTypeRedis {
		redisCfg := redisstorage.DefaultConfig()
		redisCfg.URL = c.RedisURL
		fc.RedisConfig = &redisCfg
	}
	return fc
}

// NewLogger builds a logger at the configured level. JSON output is used for
// the server, text for interactive commands.
func (c *Config) NewLogger(w io.Writer, json bool) (*slog.Logger, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.ToUpper(c.LogLevel))); err != nil {
		return nil, fmt.Errorf("invalid log level %q", c.LogLevel)
	}
	opts := &slog.HandlerOptions{Level: level}
	if json {
		return slog.New(slog.NewJSONHandler(w, opts)), nil
	}
	return slog.New(slog.NewTextHandler(w, opts)), nil
}

func getEnvOrDefault(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func getEnvIntOrDefault(key string, defaultVal int) int {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal
	}
	n, err := strconv.Atoi(val)
	if err != nil {
		return defaultVal
	}
	return n
}
