package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// DefaultBaseURL is the public exchangerate-api endpoint root.
const DefaultBaseURL = "https://api.exchangerate-api.com/v4"

// Config holds application configuration.
type Config struct {
	Provider ProviderConfig
	UI       UIConfig
	Log      LogConfig
}

// ProviderConfig holds rate provider settings.
type ProviderConfig struct {
	BaseURL   string        `mapstructure:"base_url"`
	Timeout   time.Duration `mapstructure:"timeout"`
	UserAgent string        `mapstructure:"user_agent"`
}

// UIConfig holds presentation settings.
type UIConfig struct {
	DefaultAmount string `mapstructure:"default_amount"`
	DefaultFrom   string `mapstructure:"default_from"`
	DefaultTo     string `mapstructure:"default_to"`
	Locale        string `mapstructure:"locale"`
	ToastSeconds  int    `mapstructure:"toast_seconds"`
}

// LogConfig holds diagnostic log settings. Path "-" discards output.
type LogConfig struct {
	Path   string `mapstructure:"path"`
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// Load reads configuration from file and env. Env var overrides use prefix JASKFX_.
func Load() (Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetConfigType("toml")

	cfgPath := os.Getenv("JASKFX_CONFIG")
	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else {
		v.AddConfigPath(filepath.Join(os.Getenv("HOME"), ".config", "jaskfx"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("JASKFX")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		// an explicit path that does not exist is still an error
		if !errors.As(err, &notFound) || cfgPath != "" {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	c.normalize()
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("provider.base_url", DefaultBaseURL)
	v.SetDefault("provider.timeout", time.Duration(0))
	v.SetDefault("provider.user_agent", "jaskfx/1.0")
	v.SetDefault("ui.default_amount", "1")
	v.SetDefault("ui.default_from", "USD")
	v.SetDefault("ui.default_to", "EUR")
	v.SetDefault("ui.locale", "en-US")
	v.SetDefault("ui.toast_seconds", 5)
	v.SetDefault("log.path", defaultLogPath())
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")
}

func defaultLogPath() string {
	if dir := os.Getenv("XDG_STATE_HOME"); dir != "" {
		return filepath.Join(dir, "jaskfx", "jaskfx.log")
	}
	return filepath.Join(os.Getenv("HOME"), ".local", "state", "jaskfx", "jaskfx.log")
}

func (c *Config) normalize() {
	c.Provider.BaseURL = strings.TrimRight(strings.TrimSpace(c.Provider.BaseURL), "/")
	c.UI.DefaultFrom = strings.ToUpper(strings.TrimSpace(c.UI.DefaultFrom))
	c.UI.DefaultTo = strings.ToUpper(strings.TrimSpace(c.UI.DefaultTo))
	c.UI.DefaultAmount = strings.TrimSpace(c.UI.DefaultAmount)
	c.Log.Level = strings.ToLower(strings.TrimSpace(c.Log.Level))
	c.Log.Format = strings.ToLower(strings.TrimSpace(c.Log.Format))
}

// Validate reports the first setting that cannot be used.
func (c Config) Validate() error {
	switch {
	case c.Provider.BaseURL == "":
		return errors.New("config: provider.base_url is required")
	case c.Provider.Timeout < 0:
		return fmt.Errorf("config: provider.timeout must not be negative, got %s", c.Provider.Timeout)
	case c.UI.DefaultFrom == "" || c.UI.DefaultTo == "":
		return errors.New("config: ui.default_from and ui.default_to are required")
	case c.UI.ToastSeconds <= 0:
		return fmt.Errorf("config: ui.toast_seconds must be positive, got %d", c.UI.ToastSeconds)
	}
	return nil
}

// ToastDuration is how long a notification stays on screen.
func (c UIConfig) ToastDuration() time.Duration {
	return time.Duration(c.ToastSeconds) * time.Second
}
