// Package slack provides the credential set and the thin Web API transport
// used by the dispatch pipeline.
package slack

import (
	"fmt"

	"github.com/roivaz/slack-toolbridge/internal/catalog"
	"github.com/roivaz/slack-toolbridge/internal/config"
)

const (
	// EnvBotToken is the environment variable holding the primary (bot)
	// token. It is required for the process to start.
	EnvBotToken = "SLACK_BOT_TOKEN"
	// EnvUserToken is the environment variable holding the secondary
	// (user) token. Optional at startup; required only when a tool scoped
	// to a delegated user is invoked.
	EnvUserToken = "SLACK_USER_TOKEN"
)

// MissingCredentialError reports that the credential a tool requires is not
// configured. It is raised at call time, never during startup, except for
// the primary token which is checked once before serving begins.
type MissingCredentialError struct {
	Kind   catalog.CredentialKind
	EnvVar string
}

func (e *MissingCredentialError) Error() string {
	if e.Kind == catalog.CredentialSecondary {
		return fmt.Sprintf("%s environment variable is required for user-scoped operations like DND and reminders", e.EnvVar)
	}
	return fmt.Sprintf("%s environment variable is required", e.EnvVar)
}

// CredentialSet holds the two workspace tokens. It is resolved once at
// startup and read-only afterwards, so concurrent reads need no locking.
type CredentialSet struct {
	botToken  string
	userToken string
}

// LoadCredentials resolves both tokens from the environment. A missing bot
// token is a startup error; a missing user token is not.
func LoadCredentials() (*CredentialSet, error) {
	bot := config.SlackBotToken()
	if bot == "" {
		return nil, &MissingCredentialError{Kind: catalog.CredentialPrimary, EnvVar: EnvBotToken}
	}
	return &CredentialSet{
		botToken:  bot,
		userToken: config.SlackUserToken(),
	}, nil
}

// NewCredentialSet builds a CredentialSet from explicit tokens. Intended
// for tests and for callers that manage their own configuration.
func NewCredentialSet(botToken, userToken string) *CredentialSet {
	return &CredentialSet{botToken: botToken, userToken: userToken}
}

// Resolve returns the token for the requested credential kind, or a
// MissingCredentialError when it is not configured. CredentialNone resolves
// to an empty token: such tools carry their own token argument.
func (c *CredentialSet) Resolve(kind catalog.CredentialKind) (string, error) {
	switch kind {
	case catalog.CredentialPrimary:
		if c.botToken == "" {
			return "", &MissingCredentialError{Kind: kind, EnvVar: EnvBotToken}
		}
		return c.botToken, nil
	case catalog.CredentialSecondary:
		if c.userToken == "" {
			return "", &MissingCredentialError{Kind: kind, EnvVar: EnvUserToken}
		}
		return c.userToken, nil
	default:
		return "", nil
	}
}
