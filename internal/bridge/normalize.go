package bridge

import (
	"context"
	"errors"
	"fmt"

	"github.com/roivaz/slack-toolbridge/internal/catalog"
	"github.com/roivaz/slack-toolbridge/internal/slack"
)

// Normalize maps a raw outcome to the envelope. This is the single place
// where failure messages are formatted, so every tool reports errors in an
// identical shape.
func Normalize(payload map[string]any, err error) Envelope {
	if err == nil {
		return successEnvelope(payload)
	}

	var validation *catalog.ValidationError
	if errors.As(err, &validation) {
		return failureEnvelope(validation.Error())
	}

	var missing *slack.MissingCredentialError
	if errors.As(err, &missing) {
		return failureEnvelope("Configuration Error: " + missing.Error())
	}

	var api *slack.APIError
	if errors.As(err, &api) {
		return failureEnvelope("Slack API Error: " + api.Code)
	}

	var transport *slack.TransportError
	if errors.As(err, &transport) {
		return failureEnvelope("Network Error: " + transport.Error())
	}

	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return failureEnvelope("Network Error: " + err.Error())
	}

	return failureEnvelope(fmt.Sprintf("Unexpected error: %v", err))
}
