package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

// Loader resolves configuration from defaults, an optional YAML file,
// and INITGEN_* environment variables, in increasing precedence.
type Loader struct {
	v          *viper.Viper
	searchDirs []string
}

// NewLoader creates a Loader backed by v. A nil v gets a fresh viper instance.
func NewLoader(v *viper.Viper) *Loader {
	if v == nil {
		v = viper.New()
	}
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()
	setDefaults(v)
	return &Loader{v: v, searchDirs: SearchDirs()}
}

// Viper exposes the underlying viper instance for flag binding.
func (l *Loader) Viper() *viper.Viper {
	return l.v
}

// WithSearchDirs overrides the directories searched for config.yaml.
func (l *Loader) WithSearchDirs(dirs ...string) *Loader {
	l.searchDirs = dirs
	return l
}

// Load reads the config file (explicitPath, or config.yaml in the search dirs),
// decodes the merged values and validates them. A missing file in the search
// dirs is not an error; a missing or malformed explicit file is.
func (l *Loader) Load(explicitPath string) (*Config, error) {
	if explicitPath != "" {
		l.v.SetConfigFile(explicitPath)
	} else {
		l.v.SetConfigName(DefaultConfigName)
		l.v.SetConfigType("yaml")
		for _, dir := range l.searchDirs {
			l.v.AddConfigPath(dir)
		}
	}

	if err := l.v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) || explicitPath != "" {
			return nil, fmt.Errorf("%w: %v", ErrConfigRead, err)
		}
	}

	cfg := NewDefaultConfig()
	if err := l.v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("%w: decode: %v", ErrInvalidConfig, err)
	}
	cfg.ConfigFile = l.v.ConfigFileUsed()

	if err := Validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	d := NewDefaultConfig()
	v.SetDefault(KeyLogLevel, d.LogLevel)
	v.SetDefault(KeyRegistryURL, d.RegistryURL)
	v.SetDefault(KeyPackage, d.Package)
	v.SetDefault(KeyCommandTimeout, d.CommandTimeout)
	v.SetDefault(KeyHTTPTimeout, d.HTTPTimeout)
	v.SetDefault(KeyDocsAddr, d.DocsAddr)
	v.SetDefault(KeyDefaultProjectName, d.DefaultProjectName)
	v.SetDefault(KeyMaxOutputBytes, d.MaxOutputBytes)
}

// SearchDirs lists the directories searched for config.yaml, most specific first.
func SearchDirs() []string {
	added := make(map[string]struct{})
	var dirs []string
	add := func(path string) {
		if path == "" {
			return
		}
		if _, ok := added[path]; ok {
			return
		}
		added[path] = struct{}{}
		dirs = append(dirs, path)
	}
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		add(filepath.Join(xdg, appDirName))
	}
	if home, err := homedir.Dir(); err == nil && home != "" {
		add(filepath.Join(home, ".config", appDirName))
	}
	add(".")
	return dirs
}
