package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

const appName = "wendler"

type Config struct {
	DB     DBConfig     `toml:"database"`
	Cache  CacheConfig  `toml:"cache"`
	Advice AdviceConfig `toml:"advice"`
	Log    LogConfig    `toml:"log"`

	// Timeout bounds every storage, cache and advice call of a command.
	Timeout Duration `toml:"timeout"`
}

type DBConfig struct {
	ConnectionString string `toml:"connection_string"` // libsql://, https:// or a SQLite file DSN.
	AuthToken        string `toml:"auth_token"`
}

type CacheConfig struct {
	RedisAddr string   `toml:"redis_addr"` // Empty disables the cycle cache.
	Password  string   `toml:"password"`
	DB        int      `toml:"db"`
	TTL       Duration `toml:"ttl"`
}

type AdviceConfig struct {
	APIKey string `toml:"api_key"`
	Model  string `toml:"model"`
}

type LogConfig struct {
	Mode string `toml:"mode"` // "development" or "production".
}

// Duration decodes TOML strings like "30s".
type Duration struct {
	time.Duration
}

func (d *Duration) UnmarshalText(text []byte) error {
	parsed, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	d.Duration = parsed
	return nil
}

func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// Default is used for every key missing from the config file.
func Default() *Config {
	return &Config{
		DB:      DBConfig{ConnectionString: "file:./wendler.db?cache=shared&mode=rwc"},
		Cache:   CacheConfig{TTL: Duration{24 * time.Hour}},
		Advice:  AdviceConfig{Model: "gpt-4o"},
		Log:     LogConfig{Mode: "production"},
		Timeout: Duration{30 * time.Second},
	}
}

// Returns the path to the config file.
func GetConfigPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	dir := filepath.Join(home, ".config", appName)
	return filepath.Join(dir, "config.toml"), nil
}

// Reads the configuration from the config file. A missing file is not an
// error: defaults plus environment overrides apply.
func LoadConfig() (*Config, error) {
	path, err := GetConfigPath()
	if err != nil {
		return nil, err
	}
	return LoadFrom(path)
}

func LoadFrom(path string) (*Config, error) {
	// A .env file is optional.
	_ = godotenv.Load()

	cfg := Default()
	if _, err := toml.DecodeFile(path, cfg); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, err
	}

	applyEnv(cfg)
	return cfg, nil
}

func applyEnv(cfg *Config) {
	if v := os.Getenv("WENDLER_DATABASE_URL"); v != "" {
		cfg.DB.ConnectionString = v
	}
	if v := os.Getenv("WENDLER_AUTH_TOKEN"); v != "" {
		cfg.DB.AuthToken = v
	}
	if v := os.Getenv("OPENAI_API_KEY"); v != "" {
		cfg.Advice.APIKey = v
	}
	if v := os.Getenv("WENDLER_REDIS_ADDR"); v != "" {
		cfg.Cache.RedisAddr = v
	}

	// Check for a DEV_MODE environment variable.
	if strings.EqualFold(os.Getenv("DEV_MODE"), "true") {
		cfg.DB.ConnectionString = "file:./local.db?cache=shared&mode=rwc"
		cfg.Log.Mode = "development"
	}
}

// Save writes cfg to path, creating the config directory if needed.
func Save(path string, cfg *Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	return toml.NewEncoder(f).Encode(cfg)
}
