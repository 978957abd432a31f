package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config is the typed configuration of the demo application.
type Config struct {
	App  AppConfig
	Game GameConfig
}

type AppConfig struct {
	Name  string
	Env   string // local | production | testing
	Debug bool
	Port  string
}

type GameConfig struct {
	Audio     string // test | production
	LogPrefix string
}

// Clone returns a copy of the config. Config has no reference fields, so a
// value copy is already deep.
func (c Config) Clone() Config { return c }

var defaults = map[string]any{
	"app.name":        "GoLocator",
	"app.env":         "local",
	"app.debug":       true,
	"app.port":        "8000",
	"game.audio":      "test",
	"game.log_prefix": "game",
}

// Source reads .env files into the process environment and returns a viper
// instance that resolves keys such as "app.port" from the matching variables
// (APP_PORT) with built-in defaults. Files that do not exist are skipped;
// variables already set in the environment win over file values. Callers may
// bind command-line flags to the same keys before calling FromViper.
func Source(envFiles ...string) (*viper.Viper, error) {
	files := envFiles
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		// .env may not exist in production
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("config: loading %s: %w", f, err)
		}
	}

	v := viper.New()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	for key, val := range defaults {
		v.SetDefault(key, val)
	}
	return v, nil
}

// FromViper builds a Config from an already prepared viper instance.
func FromViper(v *viper.Viper) *Config {
	return &Config{
		App: AppConfig{
			Name:  v.GetString("app.name"),
			Env:   v.GetString("app.env"),
			Debug: v.GetBool("app.debug"),
			Port:  v.GetString("app.port"),
		},
		Game: GameConfig{
			Audio:     v.GetString("game.audio"),
			LogPrefix: v.GetString("game.log_prefix"),
		},
	}
}

// Load reads the env files and the environment into a Config.
// Call once at bootstrap: cfg, err := config.Load()
func Load(envFiles ...string) (*Config, error) {
	v, err := Source(envFiles...)
	if err != nil {
		return nil, err
	}
	return FromViper(v), nil
}

// Get returns a raw env value, falling back to defaultVal.
func Get(key, defaultVal string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultVal
}

// GetInt returns an int env value.
func GetInt(key string, defaultVal int) int {
	i, err := strconv.Atoi(os.Getenv(key))
	if err != nil {
		return defaultVal
	}
	return i
}

// GetBool returns a bool env value.
func GetBool(key string, defaultVal bool) bool {
	b, err := strconv.ParseBool(os.Getenv(key))
	if err != nil {
		return defaultVal
	}
	return b
}
