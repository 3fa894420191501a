package config

import (
	"github.com/spf13/viper"

	"github.com/neuronlabs/jsonapi/errors"
	"github.com/neuronlabs/jsonapi/errors/class"
	"github.com/neuronlabs/jsonapi/log"
)

var defaultConfig *Config

// ReadNamedConfig reads the config with the provided name.
// The config is searched in the working directory and in the 'configs' directory.
func ReadNamedConfig(name string) (*Config, error) {
	v := viper.New()
	v.SetConfigName(name)

	v.AddConfigPath(".")
	v.AddConfigPath("configs")
	return readConfig(v)
}

// ReadConfigFile reads the config from the file at given 'path'.
func ReadConfigFile(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	return readConfig(v)
}

// ReadConfig reads the config named 'config'.
func ReadConfig() (*Config, error) {
	return ReadNamedConfig("config")
}

// ReadDefaultConfig reads the default configuration.
func ReadDefaultConfig() *Config {
	if defaultConfig == nil {
		v := viper.New()
		setDefaults(v)

		c := &Config{}
		if err := v.Unmarshal(c); err != nil {
			log.Debugf("Unmarshaling Config failed: %v", err)
			panic(err)
		}
		defaultConfig = c
	}
	return defaultConfig
}

func readConfig(v *viper.Viper) (*Config, error) {
	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return nil, errors.Newf(class.ConfigReadNotFound, "config not found: %v", err)
		}
		return nil, errors.Newf(class.ConfigValueInvalid, "reading config failed: %v", err)
	}

	c := &Config{}
	if err := v.Unmarshal(c); err != nil {
		log.Debugf("Unmarshaling Config failed. %v", err)
		return nil, errors.Newf(class.ConfigValueInvalid, "unmarshaling config failed: %v", err)
	}

	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// Default values
func setDefaults(v *viper.Viper) {
	keys := map[string]interface{}{
		"log_level":                "info",
		"encoder.url_prefix":       "",
		"encoder.jsonapi_version":  "",
		"encoder.include_paths":    []string{},
		"encoder.field_sets":       map[string][]string{},
		"encoder.pretty_print":     false,
		"encoder.indent":           DefaultIndent,
		"encoder.depth":            DefaultDepth,
		"decoder.strict":           false,
		"schema.naming_convention": "snake",
		"i18n.supported_languages": []string{"en"},
	}

	for k, value := range keys {
		v.SetDefault(k, value)
	}
}
