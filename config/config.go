package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/creasty/defaults"
	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

const (
	// ConfigName is looked up as icongen.{yaml,json,toml} in the working directory.
	ConfigName = "icongen"
	EnvPrefix  = "ICONGEN"
)

// IconSizes maps Android density folders to launcher icon edge lengths.
var IconSizes = map[string]int{
	"mipmap-mdpi":    48,
	"mipmap-hdpi":    72,
	"mipmap-xhdpi":   96,
	"mipmap-xxhdpi":  144,
	"mipmap-xxxhdpi": 192,
}

// keys that may be overridden from the environment
var envKeys = []string{
	"source",
	"res_dir",
	"icon_name",
	"store.path",
	"store.size",
	"cache.size",
	"report",
	"log.level",
	"log.format",
	"log.file",
}

type Config struct {
	Source   string         `mapstructure:"source" default:"TradeFolio_Icon_0 (1).png" validate:"required"`
	ResDir   string         `mapstructure:"res_dir" default:"app/src/main/res" validate:"required"`
	IconName string         `mapstructure:"icon_name" default:"ic_launcher.png" validate:"required"`
	Sizes    map[string]int `mapstructure:"sizes" validate:"min=1,dive,keys,required,endkeys,gt=0"`
	Store    Store          `mapstructure:"store"`
	Cache    Cache          `mapstructure:"cache"`
	// Report is an optional path for the JSON run summary.
	Report string `mapstructure:"report"`
	Log    Log    `mapstructure:"log"`
}

type Store struct {
	Path string `mapstructure:"path" default:"store_icon.png" validate:"required"`
	Size int    `mapstructure:"size" default:"512" validate:"gt=0"`
}

type Cache struct {
	Size int `mapstructure:"size" default:"4" validate:"gte=1"`
}

type Log struct {
	Level  string `mapstructure:"level" default:"info" validate:"oneof=debug info warn error"`
	Format string `mapstructure:"format" default:"console" validate:"oneof=console json"`
	// File enables a rotating log file in addition to the terminal.
	File string `mapstructure:"file"`
}

// SetDefaults fills the size table when none was set.
func (c *Config) SetDefaults() {
	if len(c.Sizes) == 0 {
		c.Sizes = make(map[string]int, len(IconSizes))
		for folder, size := range IconSizes {
			c.Sizes[folder] = size
		}
	}
}

// Default returns the built-in configuration.
func Default() Config {
	var c Config
	if err := defaults.Set(&c); err != nil {
		panic(err)
	}
	return c
}

// Load fills defaults, then applies the optional config file and ICONGEN_*
// environment overrides on top and validates the result. An empty file
// searches the working directory and tolerates a missing file; an explicit
// file must exist.
func Load(v *viper.Viper, file string) (Config, error) {
	if len(file) > 0 {
		v.SetConfigFile(file)
	} else {
		v.AddConfigPath(".")
		v.SetConfigName(ConfigName)
	}
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()
	for _, key := range envKeys {
		if err := v.BindEnv(key); err != nil {
			return Config{}, fmt.Errorf("failed to bind env for %s: %w", key, err)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	// defaults first so explicit zero values reach validation
	var c Config
	if err := defaults.Set(&c); err != nil {
		return Config{}, fmt.Errorf("failed to set config defaults: %w", err)
	}
	if v.IsSet("sizes") {
		// a configured table replaces the built-in one instead of merging into it
		c.Sizes = nil
	}
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

func (c Config) Validate() error {
	validate := validator.New(validator.WithRequiredStructEnabled())
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}
