package config

import "time"

// Config is the resolved initgen configuration.
type Config struct {
	LogLevel           string        `mapstructure:"log-level" validate:"oneof=debug info warn warning error"`
	RegistryURL        string        `mapstructure:"registry-url" validate:"required,url"`
	Package            string        `mapstructure:"package" validate:"required"`
	CommandTimeout     time.Duration `mapstructure:"command-timeout" validate:"gt=0"`
	HTTPTimeout        time.Duration `mapstructure:"http-timeout" validate:"gt=0"`
	DocsAddr           string        `mapstructure:"docs-addr" validate:"required"`
	DefaultProjectName string        `mapstructure:"default-project-name" validate:"required"`
	MaxOutputBytes     int           `mapstructure:"max-output-bytes" validate:"gt=0"`

	// ConfigFile is the file the values were read from, empty when none was found.
	ConfigFile string `mapstructure:"-"`
}
