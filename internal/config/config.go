package config

type Config struct {
	Owner      string         `mapstructure:"owner"`
	Database   DatabaseConfig `mapstructure:"database"`
	Defaults   DefaultsConfig `mapstructure:"defaults"`
	Log        LogConfig      `mapstructure:"log"`
	ConfigPath string         `mapstructure:"-"`
}

type DatabaseConfig struct {
	Path string `mapstructure:"path"`
}

type DefaultsConfig struct {
	// Currency is a display symbol only; amounts carry no currency.
	Currency string `mapstructure:"currency"`
	Locale   string `mapstructure:"locale"`
}

type LogConfig struct {
	Level string `mapstructure:"level"`
}

func NewDefault() *Config {
	return &Config{
		Database: DatabaseConfig{Path: ""},
		Defaults: DefaultsConfig{Currency: "$", Locale: "en"},
		Log:      LogConfig{Level: "warn"},
	}
}
