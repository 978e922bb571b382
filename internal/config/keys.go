package config

const (
	KeySlackBotToken  = "slack_bot_token"
	KeySlackUserToken = "slack_user_token"
	KeySlackAPIURL    = "slack_api_url"
	KeyHTTPTimeout    = "slack_http_timeout"
	KeyHTTPRetries    = "slack_http_retries"
	KeyLogLevel       = "log_level"
	KeyHost           = "host"
	KeyPort           = "port"
)
