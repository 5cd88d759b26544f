package utils

import (
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	App AppConfig
	API APIConfig
}

type AppConfig struct {
	Name     string
	Debug    bool
	LogPath  string
	PageSize int
}

type APIConfig struct {
	BaseURL string
	Timeout time.Duration
	Token   string
}

func LoadConfig() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.SetConfigType("env")

	// Set defaults
	viper.SetDefault("APP_NAME", "cinema-client")
	viper.SetDefault("DEBUG", false)
	viper.SetDefault("LOG_PATH", "logs/")
	viper.SetDefault("PAGE_SIZE", 12)
	viper.SetDefault("API_TIMEOUT_SECONDS", 15)

	if err := viper.ReadInConfig(); err != nil {
		return nil, err
	}

	viper.AutomaticEnv()

	config := &Config{
		App: AppConfig{
			Name:     viper.GetString("APP_NAME"),
			Debug:    viper.GetBool("DEBUG"),
			LogPath:  viper.GetString("LOG_PATH"),
			PageSize: viper.GetInt("PAGE_SIZE"),
		},
		API: APIConfig{
			BaseURL: viper.GetString("API_BASE_URL"),
			Timeout: time.Duration(viper.GetInt("API_TIMEOUT_SECONDS")) * time.Second,
			Token:   viper.GetString("API_TOKEN"),
		},
	}

	return config, nil
}
