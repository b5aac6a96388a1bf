package utils

import (
	"github.com/spf13/viper"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	Session  SessionConfig
	Finance  FinanceConfig
}

type AppConfig struct {
	Name    string
	Port    string
	Debug   bool
	LogPath string
}

type DatabaseConfig struct {
	Host     string
	Port     string
	Name     string
	User     string
	Password string
	MaxConns int32
}

type SessionConfig struct {
	CookieName string
	// TTLHours applies to a normal login session.
	TTLHours int
	// TempTTLMinutes applies while the user still has to change the password.
	TempTTLMinutes int
	CookieSecure   bool
}

type FinanceConfig struct {
	// SupplierCostRatio is the share of recognized revenue payable to suppliers.
	SupplierCostRatio float64
}

func LoadConfig() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.SetConfigType("env")

	// Set defaults
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("DEBUG", false)
	viper.SetDefault("DB_MAX_CONNS", 10)
	viper.SetDefault("LOG_PATH", "logs/")
	viper.SetDefault("SESSION_COOKIE_NAME", "cm_session")
	viper.SetDefault("SESSION_TTL_HOURS", 24)
	viper.SetDefault("SESSION_TEMP_TTL_MINUTES", 30)
	viper.SetDefault("SESSION_COOKIE_SECURE", false)
	viper.SetDefault("SUPPLIER_COST_RATIO", 0.80)

	if err := viper.ReadInConfig(); err != nil {
		return nil, err
	}

	viper.AutomaticEnv()

	config := &Config{
		App: AppConfig{
			Name:    viper.GetString("APP_NAME"),
			Port:    viper.GetString("PORT"),
			Debug:   viper.GetBool("DEBUG"),
			LogPath: viper.GetString("LOG_PATH"),
		},
		Database: DatabaseConfig{
			Host:     viper.GetString("DB_HOST"),
			Port:     viper.GetString("DB_PORT"),
			Name:     viper.GetString("DB_NAME"),
			User:     viper.GetString("DB_USER"),
			Password: viper.GetString("DB_PASS"),
			MaxConns: viper.GetInt32("DB_MAX_CONNS"),
		},
		Session: SessionConfig{
			CookieName:     viper.GetString("SESSION_COOKIE_NAME"),
			TTLHours:       viper.GetInt("SESSION_TTL_HOURS"),
			TempTTLMinutes: viper.GetInt("SESSION_TEMP_TTL_MINUTES"),
			CookieSecure:   viper.GetBool("SESSION_COOKIE_SECURE"),
		},
		Finance: FinanceConfig{
			SupplierCostRatio: viper.GetFloat64("SUPPLIER_COST_RATIO"),
		},
	}

	return config, nil
}
