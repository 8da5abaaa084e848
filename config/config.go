// Ininicializing common application configuration
package config

import (
	"log"
	"os"

	"github.com/spf13/viper"
)

type Config struct {
	App AppConfig `mapstructure:"app"`
}

type AppConfig struct {
	ForegroundDir string `mapstructure:"foreground_dir"`
	BackgroundDir string `mapstructure:"background_dir"`
	OutputDir     string `mapstructure:"output_dir"`
	ProfileSize   int    `mapstructure:"profile_size"`
	FillColor     string `mapstructure:"fill_color"`
	SlackAPIURL   string `mapstructure:"slack_api_url"`
	TokenFile     string `mapstructure:"token_file"`
}

func LoadConfig() (*viper.Viper, error) {

	viperInstance := viper.New()

	viperInstance.AddConfigPath("./config")
	viperInstance.SetConfigName("config")
	viperInstance.SetConfigType("yaml")

	viperInstance.SetDefault("app.foreground_dir", "foreground")
	viperInstance.SetDefault("app.background_dir", "background")
	viperInstance.SetDefault("app.output_dir", "output")
	viperInstance.SetDefault("app.profile_size", 512)
	viperInstance.SetDefault("app.fill_color", "#ffffff")
	viperInstance.SetDefault("app.slack_api_url", "https://slack.com/api")
	viperInstance.SetDefault("app.token_file", ".slack_config.json")

	err := viperInstance.ReadInConfig()

	if err != nil {
		// the defaults above are a complete configuration on their own
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return viperInstance, nil
		}
		return nil, err
	}
	return viperInstance, nil
}

func ParseConfig(v *viper.Viper) (*Config, error) {

	var c Config

	err := v.Unmarshal(&c)
	if err != nil {
		log.Fatalf("unable to decode config into struct, %v", err)
		return nil, err
	}
	return &c, nil
}

func GetEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
