package config

import (
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func Init(root *cobra.Command) {
	viper.AutomaticEnv()
	_ = godotenv.Load()
	if root != nil {
		_ = viper.BindPFlags(root.PersistentFlags())
	}
	setDefaults()
}

func setDefaults() {
	viper.SetDefault(KeySlackAPIURL, "https://slack.com/api")
	viper.SetDefault(KeyHTTPTimeout, 30*time.Second)
	viper.SetDefault(KeyHTTPRetries, 0)
	viper.SetDefault(KeyLogLevel, "info")
	viper.SetDefault(KeyHost, "0.0.0.0")
	viper.SetDefault(KeyPort, 8000)
}

func SlackBotToken() string           { return viper.GetString(KeySlackBotToken) }
func SlackUserToken() string          { return viper.GetString(KeySlackUserToken) }
func SlackAPIURL() string             { return viper.GetString(KeySlackAPIURL) }
func SlackHTTPTimeout() time.Duration { return viper.GetDuration(KeyHTTPTimeout) }
func SlackHTTPRetries() int           { return viper.GetInt(KeyHTTPRetries) }
func LogLevel() string                { return viper.GetString(KeyLogLevel) }
func Host() string                    { return viper.GetString(KeyHost) }
func Port() int                       { return viper.GetInt(KeyPort) }
