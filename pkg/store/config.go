package store

import (
	"fmt"
	"os"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

type Config interface {
	BasePath() string
}

// LoadConfig resolves the planner database path from a .semana config
// file or SEMANA_* environment variables, defaulting to ~/.semana.db.
func LoadConfig() (Config, error) {
	viper.SetDefault("path", "~/.semana.db")
	viper.SetConfigName(".semana") // .yaml is implicit
	viper.SetEnvPrefix("SEMANA")
	viper.AutomaticEnv()

	if override := os.Getenv("SEMANA_CONFIG_PATH"); override != "" {
		viper.AddConfigPath(override)
	}

	viper.AddConfigPath("./")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("store: reading config file: %w", err)
		}
	}

	path, err := homedir.Expand(viper.GetString("path"))
	if err != nil {
		return nil, fmt.Errorf("store: expanding path: %w", err)
	}

	return &fileConfig{Path: path}, nil
}

type fileConfig struct {
	Path string `json:"path"`
}

func (f *fileConfig) BasePath() string {
	return f.Path
}
