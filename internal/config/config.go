package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	DataDir       string        `mapstructure:"WOOF_DATA_DIR"`
	SessionSecret string        `mapstructure:"WOOF_SESSION_SECRET"`
	UploadDelay   time.Duration `mapstructure:"WOOF_UPLOAD_DELAY"`
	LogLevel      string        `mapstructure:"WOOF_LOG_LEVEL"`
}

func Load() Config {
	viper.AutomaticEnv()
	viper.SetDefault("WOOF_DATA_DIR", defaultDataDir())
	viper.SetDefault("WOOF_SESSION_SECRET", "dev-secret-change-me")
	viper.SetDefault("WOOF_UPLOAD_DELAY", "1500ms")
	viper.SetDefault("WOOF_LOG_LEVEL", "info")

	var cfg Config
	_ = viper.Unmarshal(&cfg)
	return cfg
}

// SessionDBPath is the directory of the embedded database that holds the
// single persisted session record.
func (c Config) SessionDBPath() string {
	return filepath.Join(c.DataDir, "session")
}

// LogPath is the log file location; the terminal UI owns stdout, so logs go
// to a file.
func (c Config) LogPath() string {
	return filepath.Join(c.DataDir, "woofstagram.log")
}

func defaultDataDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".woofstagram"
	}
	return filepath.Join(home, ".woofstagram")
}
