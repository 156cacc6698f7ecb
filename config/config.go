// Package config is for app wide settings that are unmarshalled
// from Viper (see: /cmd)
package config

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

var (
	// SettingsFile is the optional user settings file, read when no other is passed
	SettingsFile = defaultSettingsFile()

	// stderr is for logging to Stderr (without an annoying timestamp)
	stderr = log.New(os.Stderr, "", 0)
)

// Scoring are the scores of one alignment mode
type Scoring struct {
	// added for identical aligned symbols
	Match int `mapstructure:"match"`

	// added for differing aligned symbols
	Mismatch int `mapstructure:"mismatch"`

	// added for every gap column
	GapOpening int `mapstructure:"gap-opening"`

	// added on the alternative diagonal branch
	GapExtension int `mapstructure:"gap-extension"`
}

// Config is the root-level settings struct and is a mix
// of settings available in the settings file and those
// available from the command line
type Config struct {
	// Verbose is whether to log timing and progress to stderr
	Verbose bool `mapstructure:"verbose"`

	// JSON is whether to write results as JSON rather than text
	JSON bool `mapstructure:"json"`

	// Global scores the end to end alignment
	Global Scoring `mapstructure:"global"`

	// Local scores the best sub-region alignment
	Local Scoring `mapstructure:"local"`

	// KmerSize is the default k for k-mer profiles
	KmerSize int `mapstructure:"kmer-size"`
}

// New returns a new Config struct populated by the global Viper
// (the settings file, SEQLAB_* environment and bound flags).
func New() *Config {
	c, err := Load(viper.GetViper())
	if err != nil {
		stderr.Fatalf("failed to load settings: %v", err)
	}
	return c
}

// Load registers the defaults on v, merges the settings file named by
// its "settings" key and unmarshals the result.
func Load(v *viper.Viper) (*Config, error) {
	SetDefaults(v)

	v.SetEnvPrefix("seqlab")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	if settings := v.GetString("settings"); settings != "" {
		_, statErr := os.Stat(settings)
		optional := settings == SettingsFile && os.IsNotExist(statErr)

		if !optional {
			v.SetConfigFile(settings)
			if err := v.MergeInConfig(); err != nil {
				return nil, fmt.Errorf("failed to read settings file %s: %w", settings, err)
			}
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return nil, fmt.Errorf("unable to decode into struct: %w", err)
	}
	return &c, nil
}

// SetDefaults registers the default scores and settings on v.
func SetDefaults(v *viper.Viper) {
	for _, mode := range []string{"global", "local"} {
		v.SetDefault(mode+".match", 3)
		v.SetDefault(mode+".mismatch", -2)
		v.SetDefault(mode+".gap-opening", -3)
		v.SetDefault(mode+".gap-extension", -2)
	}
	v.SetDefault("kmer-size", 3)
	v.SetDefault("verbose", false)
	v.SetDefault("json", false)
}

func defaultSettingsFile() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".seqlab", "settings.yaml")
}
