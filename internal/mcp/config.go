package mcp

import (
	"log"

	"github.com/mark3labs/mcp-go/server"

	"github.com/roivaz/slack-toolbridge/internal/bridge"
	"github.com/roivaz/slack-toolbridge/internal/catalog"
	"github.com/roivaz/slack-toolbridge/internal/config"
	"github.com/roivaz/slack-toolbridge/internal/logging"
	"github.com/roivaz/slack-toolbridge/internal/slack"
)

type Config struct {
	Invoker *bridge.Invoker
	Options []server.StreamableHTTPOption
}

// DefaultConfig wires the registry, credentials, transport and pipeline
// from the process configuration. Credential resolution acts as a startup
// barrier: a missing bot token is fatal before any tool can be served.
func DefaultConfig() Config {
	registry, err := catalog.Default()
	if err != nil {
		log.Fatalf("failed to build tool registry: %v", err)
	}

	creds, err := slack.LoadCredentials()
	if err != nil {
		log.Fatalf("failed to resolve credentials: %v", err)
	}

	baseLogger := logging.New(logging.DefaultLogger())
	client := slack.NewClient(
		config.SlackAPIURL(),
		slack.WithTimeout(config.SlackHTTPTimeout()),
		slack.WithRetries(config.SlackHTTPRetries()),
		slack.WithLogger(baseLogger.WithName("slack")),
	)

	invoker := bridge.NewInvoker(registry, creds, client, baseLogger.WithName("bridge"))

	return Config{
		Invoker: invoker,
		Options: []server.StreamableHTTPOption{
			server.WithEndpointPath("/mcp/jsonrpc"),
			server.WithStateLess(true),
		},
	}
}
