package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

var ErrUnknownColorMode = errors.New("unknown color mode")

type Config struct {
	LogLevel string  `yaml:"log-level" env:"LOG_LEVEL" env-default:"info" env-description:"debug, info, warn or error"`
	Console  Console `yaml:"console"`
}

type Console struct {
	Color  string `yaml:"color" env:"CONSOLE_COLOR" env-default:"auto" env-description:"auto, always or never"`
	Prompt string `yaml:"prompt" env:"CONSOLE_PROMPT" env-default:"Enter the coordinates: " env-description:"text shown before each move"`
}

// Load - reads the yaml file at path with env overrides.
// A missing file is not an error: the config then comes from the environment alone.
func Load(path string) (*Config, error) {
	config := &Config{}

	_, err := os.Stat(path)
	switch {
	case err == nil:
		if err = cleanenv.ReadConfig(path, config); err != nil {
			return nil, fmt.Errorf("unable to read config file: %w", err)
		}
	case errors.Is(err, fs.ErrNotExist):
		if err = cleanenv.ReadEnv(config); err != nil {
			return nil, fmt.Errorf("unable to read config from env: %w", err)
		}
	default:
		return nil, fmt.Errorf("unable to stat config file: %w", err)
	}

	if err = config.Console.validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// MustLoad - load all configurations in config.yml file.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(fmt.Errorf("unable to load config file: %w", err))
	}

	return config
}

// LoadDotEnv - exports variables from a .env file, if there is one.
func LoadDotEnv(path string) error {
	err := godotenv.Load(path)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("unable to load env file: %w", err)
	}

	return nil
}

func (that *Console) validate() error {
	switch that.Color {
	case ColorAuto, ColorAlways, ColorNever:
		return nil
	default:
		return fmt.Errorf("%w: %q", ErrUnknownColorMode, that.Color)
	}
}
