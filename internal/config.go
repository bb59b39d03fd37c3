package internal

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

const (
	// AppName is the application name used for config files and directories
	AppName = "zwift-workout"

	// EnvPrefix is the prefix for environment variables
	EnvPrefix = "ZWIFT_WORKOUT"
)

// SupportedFormats lists every export format name, aliases included.
var SupportedFormats = []string{"zwo", "zwift", "json", "yaml", "md", "markdown", "mrc", "plist"}

// Config holds the application configuration
type Config struct {
	Author    string   `mapstructure:"author"`
	Format    string   `mapstructure:"format"`
	Precision int      `mapstructure:"precision"` // -1 writes the shortest exact ratio
	SportType string   `mapstructure:"sport_type"`
	Tags      []string `mapstructure:"tags"`
	Library   string   `mapstructure:"library"`

	Debug     bool   `mapstructure:"debug"`
	LogFormat string `mapstructure:"log_format"`
	LogFile   string `mapstructure:"log_file"`

	// File is the config file that was read, empty when none was found.
	File string `mapstructure:"-"`
}

// LoadConfig reads configuration from defaults, the optional config file and
// ZWIFT_WORKOUT_* environment variables, in increasing order of precedence.
func LoadConfig(cfgFile string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		addSearchPaths(v)
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		LogDebug("no config file found, using defaults and environment")
	} else {
		cfg.File = v.ConfigFileUsed()
	}

	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error parsing config: %w", err)
	}
	cfg.Format = strings.ToLower(cfg.Format)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// DefaultConfig returns the configuration used when nothing is configured.
func DefaultConfig() *Config {
	return &Config{
		Format:    "zwo",
		Precision: -1,
		SportType: "bike",
		Library:   DefaultLibraryPath(),
		LogFormat: "human",
	}
}

func setDefaults(v *viper.Viper) {
	d := DefaultConfig()
	v.SetDefault("author", d.Author)
	v.SetDefault("format", d.Format)
	v.SetDefault("precision", d.Precision)
	v.SetDefault("sport_type", d.SportType)
	v.SetDefault("tags", []string{})
	v.SetDefault("library", d.Library)
	v.SetDefault("debug", false)
	v.SetDefault("log_format", d.LogFormat)
	v.SetDefault("log_file", "")
}

// addSearchPaths adds config search paths
func addSearchPaths(v *viper.Viper) {
	v.AddConfigPath(".")
	if dir, err := os.UserConfigDir(); err == nil {
		v.AddConfigPath(filepath.Join(dir, AppName))
	}
	if home, err := os.UserHomeDir(); err == nil {
		v.AddConfigPath(filepath.Join(home, "."+AppName))
	}
}

// DefaultLibraryPath returns the default location of the workout library database.
func DefaultLibraryPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "library.db"
	}
	return filepath.Join(dir, AppName, "library.db")
}

// Validate checks values that would otherwise fail late, during export.
func (c *Config) Validate() error {
	if !IsSupportedFormat(c.Format) {
		return fmt.Errorf("unsupported format: %s (supported: %s)", c.Format, strings.Join(SupportedFormats, ", "))
	}
	if c.Precision < -1 {
		return fmt.Errorf("invalid precision %d: must be -1 or greater", c.Precision)
	}
	switch c.LogFormat {
	case "human", "json":
	default:
		return fmt.Errorf("invalid log_format %q: must be human or json", c.LogFormat)
	}
	if strings.TrimSpace(c.SportType) == "" {
		return fmt.Errorf("sport_type must not be empty")
	}
	return nil
}

// IsSupportedFormat reports whether format names a known exporter.
func IsSupportedFormat(format string) bool {
	format = strings.ToLower(format)
	for _, f := range SupportedFormats {
		if f == format {
			return true
		}
	}
	return false
}

// LoggerConfig returns the logging part of the configuration.
func (c *Config) LoggerConfig() LoggerConfig {
	lc := DefaultLoggerConfig()
	lc.Debug = c.Debug
	lc.LogFile = c.LogFile
	if c.LogFormat != "" {
		lc.LogFormat = c.LogFormat
	}
	return lc
}
