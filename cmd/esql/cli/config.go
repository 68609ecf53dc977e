package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

const envPrefix = "ESQL"

// Config represents CLI configuration
type Config struct {
	Schema  string `mapstructure:"schema" yaml:"schema"`   //YAML schema URL, empty reads dictionary tables
	Dialect string `mapstructure:"dialect" yaml:"dialect"` //product name, empty detects dialect from db
	Driver  string `mapstructure:"driver" yaml:"driver"`
	DSN     string `mapstructure:"dsn" yaml:"dsn"`
}

// LoadConfig reads optional YAML file overridden by ESQL_* environment variables
func LoadConfig(configPath string) (*Config, error) {
	v := viper.New()
	setDefaults(v)
	if configPath != "" {
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	cfg := new(Config)
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("schema", "")
	v.SetDefault("dialect", "")
	v.SetDefault("driver", "sqlite3")
	v.SetDefault("dsn", "")
}
