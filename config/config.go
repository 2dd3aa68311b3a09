package config

import (
	"log"
	"path/filepath"

	"github.com/spf13/viper"
)

// Config carries the few startup knobs the app has. Everything is read
// once at boot; nothing is reloadable.
type Config struct {
	BusinessName string
	DBPath       string
	Port         string
	TemplateGlob string
}

// Load reads configuration from a .env file when present, with real
// environment variables taking precedence.
func Load() *Config {
	viper.SetConfigFile(".env")
	viper.SetConfigType("env")

	if err := viper.ReadInConfig(); err != nil {
		log.Printf("config: no .env file, using environment variables: %v", err)
	}
	viper.AutomaticEnv()

	viper.SetDefault("BUSINESS_NAME", "Mana Saree Collection")
	viper.SetDefault("DB_PATH", "saree_crm.db")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("TEMPLATE_GLOB", "templates/*.html")

	cfg := &Config{
		BusinessName: viper.GetString("BUSINESS_NAME"),
		DBPath:       viper.GetString("DB_PATH"),
		Port:         viper.GetString("PORT"),
		TemplateGlob: viper.GetString("TEMPLATE_GLOB"),
	}

	// The dashboard shows where the data lives; make the path absolute so
	// the answer does not depend on the working directory.
	if abs, err := filepath.Abs(cfg.DBPath); err == nil && cfg.DBPath != ":memory:" {
		cfg.DBPath = abs
	}

	return cfg
}
