package config

import (
	"fmt"
	"strings"
	"sync"

	"github.com/spf13/viper"
)

var loadConfigOnce sync.Once
var configInstance AppConfig

func LoadConfig() AppConfig {
	loadConfigOnce.Do(func() {
		viper.SetEnvPrefix("staybook_server")
		viper.AutomaticEnv()
		viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
		viper.SetConfigName("server")
		viper.AddConfigPath("config")
		viper.AddConfigPath("/config")
		if err := viper.ReadInConfig(); err != nil {
			panic(fmt.Errorf("fatal error config file: %w", err))
		}
		configInstance = AppConfig{
			General: GeneralConfig{
				LogLevel: viper.GetString("general.log_level"),
			},
			Database: DatabaseConfig{
				Driver: viper.GetString("database.driver"),
				DSN:    viper.GetString("database.dsn"),
				URL:    viper.GetString("database.url"),
			},
		}
	})

	return configInstance
}

type AppConfig struct {
	General  GeneralConfig
	Database DatabaseConfig
}

type GeneralConfig struct {
	LogLevel string
}

// DatabaseConfig selects the backing store. Driver is "postgres" or
// "memory"; DSN feeds the postgres ORM, URL the raw pgx pool.
type DatabaseConfig struct {
	Driver string
	DSN    string
	URL    string
}
