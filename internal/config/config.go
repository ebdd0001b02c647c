package config

import (
	"blackjack-server/internal/util"
	"os"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"
)

// Config provides configuration for the blackjack server
type Config struct {
	loaded bool
	Log    struct {
		Level             string `yaml:"level" envconfig:"level"`
		DisableAccessLogs bool   `yaml:"disableAccessLogs" envconfig:"disable_access_logs"`
	}
	// ShoeSize is the number of 52-card decks in each room's shoe
	ShoeSize int `yaml:"shoeSize" envconfig:"shoe_size"`
	// DefaultRooms is the number of permanent rooms created at startup
	DefaultRooms int `yaml:"defaultRooms" envconfig:"default_rooms"`
	// StartingBalance is the balance each new player starts with
	StartingBalance int `yaml:"startingBalance" envconfig:"starting_balance"`
}

var config Config

// DefaultConfig returns the configuration before any file or environment
// overrides are applied
func DefaultConfig() Config {
	var c Config
	c.ShoeSize = 6
	c.DefaultRooms = 3
	c.StartingBalance = 1000
	return c
}

// Instance returns a singleton instance
// If the config hasn't been loaded, it will be loaded
func Instance() Config {
	if !config.loaded {
		if err := Load(); err != nil {
			panic(err)
		}
	}

	return config
}

// Load will load the configuration
// A missing config file is not an error; the defaults are used instead
func Load() error {
	config = DefaultConfig()

	configFile := util.Getenv("BJ_CONFIG_FILE", "config.yaml")
	file, err := os.Open(configFile)
	if err == nil {
		defer file.Close()

		if err := yaml.NewDecoder(file).Decode(&config); err != nil {
			return err
		}
	} else if !os.IsNotExist(err) {
		return err
	}

	if err := envconfig.Process("bj", &config); err != nil {
		return err
	}

	config.loaded = true
	return nil
}
