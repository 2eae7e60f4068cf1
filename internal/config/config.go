// Package config wires the CLI settings into viper: defaults, MOLTEN_*
// environment variables and an optional molten.yaml file.
package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
	"github.com/spf13/viper"
)

// Configuration keys.
const (
	KeyExportFormat = "export.format"
	KeyExportPrefix = "export.prefix"
	KeyLogLevel     = "log.level"
	KeyLogJSON      = "log.json"
	KeySwatch       = "ui.swatch"
)

// Default holds the factory value of every key.
var Default = map[string]any{
	KeyExportFormat: "json",
	KeyExportPrefix: "molten",
	KeyLogLevel:     "warn",
	KeyLogJSON:      false,
	KeySwatch:       "██",
}

// EnvPrefix is prepended to every environment variable, e.g. MOLTEN_LOG_LEVEL.
const EnvPrefix = "molten"

// EnvKeyReplacer maps dotted keys to environment variable names.
var EnvKeyReplacer = strings.NewReplacer(".", "_")

// Setup initializes the global viper instance. A missing config file is
// not an error.
func Setup(fs afero.Fs) error {
	viper.SetConfigName("molten")
	viper.SetConfigType("yaml")
	viper.SetFs(fs)
	for _, dir := range searchPaths() {
		viper.AddConfigPath(dir)
	}

	viper.SetEnvPrefix(EnvPrefix)
	viper.SetEnvKeyReplacer(EnvKeyReplacer)
	viper.AutomaticEnv()

	viper.SetTypeByDefaultValue(true)
	for key, value := range Default {
		viper.SetDefault(key, value)
	}

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return nil
		}
		return err
	}
	return nil
}

func searchPaths() []string {
	paths := []string{"."}
	if dir, err := os.UserConfigDir(); err == nil {
		paths = append(paths, filepath.Join(dir, "molten"))
	}
	return paths
}
