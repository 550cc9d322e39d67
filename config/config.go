// Package config provides centralized management for application settings, defaults, and the Viper-based configuration engine.
package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/cinefind/cinefind/constant"
	"github.com/cinefind/cinefind/filesystem"
	"github.com/cinefind/cinefind/where"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// EnvKeyReplacer is a strings.Replacer used to normalize configuration keys into environment variable naming conventions.
var EnvKeyReplacer = strings.NewReplacer(".", "_")

// Setup initializes the global configuration state, including defaults, environment bindings, and localized file resolution.
func Setup() error {
	// Dotenv files only fill variables that are not already set by the process.
	loadDotenv(".env", filepath.Join(where.Config(), ".env"))

	viper.SetConfigName(constant.App)
	viper.SetConfigType("toml")
	viper.SetFs(filesystem.API())
	viper.AddConfigPath(where.Config())

	// Synchronize environment variable bindings.
	viper.SetEnvPrefix(constant.App)
	viper.SetEnvKeyReplacer(EnvKeyReplacer)
	for _, env := range EnvExposed {
		viper.MustBindEnv(env)
	}

	// Initialize factory default values.
	viper.SetTypeByDefaultValue(true)
	for name, field := range Default {
		viper.SetDefault(name, field.Value)
	}

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return nil
		}
		return err
	}

	return nil
}

func loadDotenv(paths ...string) {
	for _, path := range paths {
		if exists, err := filesystem.API().Exists(path); err != nil || !exists {
			continue
		}

		f, err := filesystem.API().Open(path)
		if err != nil {
			continue
		}

		env, err := godotenv.Parse(f)
		_ = f.Close()
		if err != nil {
			continue
		}

		for k, v := range env {
			if _, set := os.LookupEnv(k); !set {
				_ = os.Setenv(k, v)
			}
		}
	}
}
