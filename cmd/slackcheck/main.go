package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/roivaz/slack-toolbridge/internal/logging"
	"github.com/roivaz/slack-toolbridge/internal/slack"
)

// slackcheck probes the configured credentials against auth.test and
// reports which identity each token resolves to.
func main() {
	ctx := context.Background()
	fmt.Println("Slack Credential Status:")
	fmt.Println("========================")

	_ = godotenv.Load()

	client := slack.NewClient(slack.DefaultBaseURL, slack.WithTimeout(10*time.Second))

	botToken := os.Getenv(slack.EnvBotToken)
	userToken := os.Getenv(slack.EnvUserToken)

	ok := true
	if botToken == "" {
		fmt.Printf("❌ %s not set (required)\n", slack.EnvBotToken)
		ok = false
	} else {
		ok = probe(ctx, client, slack.EnvBotToken, botToken) && ok
	}

	if userToken == "" {
		fmt.Printf("⚠️  %s not set (user-scoped tools will report MissingCredential)\n", slack.EnvUserToken)
	} else {
		ok = probe(ctx, client, slack.EnvUserToken, userToken) && ok
	}

	if !ok {
		os.Exit(1)
	}
}

func probe(ctx context.Context, client *slack.Client, name, token string) bool {
	payload, err := client.Call(ctx, "auth.test", token, nil)
	if err != nil {
		fmt.Printf("❌ %s (%s): %v\n", name, logging.RedactToken(token), err)
		return false
	}
	fmt.Printf("✅ %s (%s): authed as %v in team %v\n",
		name, logging.RedactToken(token), payload["user"], payload["team"])
	return true
}
