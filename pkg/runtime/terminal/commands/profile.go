package commands

import (
	"fmt"

	"github.com/spf13/viper"
)

// Profile holds output settings for the CLI.
type Profile struct {
	// Format selects the table style: simple or grid.
	Format string `mapstructure:"format"`
	// StrictHeaders fails the merge when a file's header differs from the
	// first file's header.
	StrictHeaders bool `mapstructure:"strict_headers"`
}

func DefaultProfile() Profile {
	return Profile{Format: "simple"}
}

// LoadProfile loads an output profile from the specified path
func LoadProfile(path string) (*Profile, error) {
	v := viper.New()
	v.SetConfigFile(path)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read profile file: %w", err)
	}

	profile := DefaultProfile()
	if err := v.Unmarshal(&profile); err != nil {
		return nil, fmt.Errorf("failed to parse profile: %w", err)
	}
	return &profile, nil
}
