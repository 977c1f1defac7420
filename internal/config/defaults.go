package config

import "time"

// Default value constants.
const (
	DefaultLogLevel       = "warn"
	DefaultRegistryURL    = "https://api.npmjs.org"
	DefaultPackage        = "initgen"
	DefaultCommandTimeout = 5 * time.Minute
	DefaultHTTPTimeout    = 10 * time.Second
	DefaultDocsAddr       = ":8080"
	DefaultProjectName    = "my-app"
	DefaultMaxOutputBytes = 50 * 1024 * 1024
	DefaultConfigName     = "config"
	EnvPrefix             = "INITGEN"
	appDirName            = "initgen"
)

// Key names shared by the config file, environment and flags.
const (
	KeyLogLevel           = "log-level"
	KeyRegistryURL        = "registry-url"
	KeyPackage            = "package"
	KeyCommandTimeout     = "command-timeout"
	KeyHTTPTimeout        = "http-timeout"
	KeyDocsAddr           = "docs-addr"
	KeyDefaultProjectName = "default-project-name"
	KeyMaxOutputBytes     = "max-output-bytes"
)

// NewDefaultConfig returns a Config populated with default values.
func NewDefaultConfig() *Config {
	return &Config{
		LogLevel:           DefaultLogLevel,
		RegistryURL:        DefaultRegistryURL,
		Package:            DefaultPackage,
		CommandTimeout:     DefaultCommandTimeout,
		HTTPTimeout:        DefaultHTTPTimeout,
		DocsAddr:           DefaultDocsAddr,
		DefaultProjectName: DefaultProjectName,
		MaxOutputBytes:     DefaultMaxOutputBytes,
	}
}
