package bridge

import (
	"context"
	"strings"
	"testing"

	"github.com/go-logr/logr"

	"github.com/roivaz/slack-toolbridge/internal/catalog"
	"github.com/roivaz/slack-toolbridge/internal/logging"
	"github.com/roivaz/slack-toolbridge/internal/slack"
)

type fakeCaller struct {
	calls   int
	lastOp  string
	lastTok string
	lastArg map[string]string
	payload map[string]any
	err     error
}

func (f *fakeCaller) Call(ctx context.Context, op, token string, args map[string]string) (map[string]any, error) {
	f.calls++
	f.lastOp = op
	f.lastTok = token
	f.lastArg = args
	if f.err != nil {
		return nil, f.err
	}
	return f.payload, nil
}

func newTestInvoker(t *testing.T, caller *fakeCaller, creds *slack.CredentialSet) *Invoker {
	t.Helper()
	reg, err := catalog.Default()
	if err != nil {
		t.Fatalf("building registry: %v", err)
	}
	return NewInvoker(reg, creds, caller, logging.New(logr.Discard()))
}

func TestDispatchUnknownTool(t *testing.T) {
	caller := &fakeCaller{}
	inv := newTestInvoker(t, caller, slack.NewCredentialSet("xoxb-bot", "xoxp-user"))

	env := inv.Dispatch(context.Background(), "does_not_exist", nil)
	if env.Successful {
		t.Fatalf("unknown tool dispatch reported success")
	}
	if !strings.Contains(env.Error, "does_not_exist") {
		t.Fatalf("error %q does not name the tool", env.Error)
	}
	if caller.calls != 0 {
		t.Fatalf("unknown tool must not trigger a network call")
	}
}

func TestDispatchMissingRequiredField(t *testing.T) {
	caller := &fakeCaller{}
	inv := newTestInvoker(t, caller, slack.NewCredentialSet("xoxb-bot", "xoxp-user"))

	env := inv.Dispatch(context.Background(), "slack_send_message", map[string]any{"text": "hi"})
	if env.Successful {
		t.Fatalf("expected validation failure")
	}
	if !strings.Contains(env.Error, `"channel"`) {
		t.Fatalf("error %q does not name the missing field", env.Error)
	}
	if caller.calls != 0 {
		t.Fatalf("validation failure must not trigger a network call")
	}
}

func TestDispatchMissingSecondaryCredential(t *testing.T) {
	caller := &fakeCaller{}
	inv := newTestInvoker(t, caller, slack.NewCredentialSet("xoxb-bot", ""))

	env := inv.Dispatch(context.Background(), "slack_activate_or_modify_do_not_disturb_duration",
		map[string]any{"num_minutes": "30"})
	if env.Successful {
		t.Fatalf("expected missing credential failure")
	}
	if !strings.Contains(env.Error, slack.EnvUserToken) {
		t.Fatalf("error %q does not reference %s", env.Error, slack.EnvUserToken)
	}
	if caller.calls != 0 {
		t.Fatalf("missing credential must not trigger a network call")
	}
}

func TestDispatchSnoozeDuration(t *testing.T) {
	caller := &fakeCaller{payload: map[string]any{
		"ok":     true,
		"snooze": map[string]any{"snooze_remaining": float64(1800)},
	}}
	inv := newTestInvoker(t, caller, slack.NewCredentialSet("xoxb-bot", "xoxp-user"))

	env := inv.Dispatch(context.Background(), "slack_activate_or_modify_do_not_disturb_duration",
		map[string]any{"num_minutes": "30"})
	if !env.Successful {
		t.Fatalf("expected success, got error %q", env.Error)
	}
	if env.Error != "" {
		t.Fatalf("successful envelope carries error %q", env.Error)
	}
	if caller.lastOp != "dnd.setSnooze" {
		t.Fatalf("unexpected operation %s", caller.lastOp)
	}
	if caller.lastTok != "xoxp-user" {
		t.Fatalf("DND call must use the user token, got %q", caller.lastTok)
	}
	if caller.lastArg["num_minutes"] != "30" {
		t.Fatalf("num_minutes not forwarded, got %v", caller.lastArg)
	}
	snooze, _ := env.Data["snooze"].(map[string]any)
	if snooze["snooze_remaining"] != float64(1800) {
		t.Fatalf("payload not reflected in envelope: %v", env.Data)
	}
}

func TestDispatchInvalidDurationQuotesValue(t *testing.T) {
	caller := &fakeCaller{}
	inv := newTestInvoker(t, caller, slack.NewCredentialSet("xoxb-bot", "xoxp-user"))

	env := inv.Dispatch(context.Background(), "slack_activate_or_modify_do_not_disturb_duration",
		map[string]any{"num_minutes": "invalid"})
	if env.Successful {
		t.Fatalf("expected coercion failure")
	}
	if !strings.Contains(env.Error, `"invalid"`) {
		t.Fatalf("error %q does not quote the raw value", env.Error)
	}
	if caller.calls != 0 {
		t.Fatalf("coercion failure must not trigger a network call")
	}
}

func TestWireArgsDropsOptionalDefaults(t *testing.T) {
	caller := &fakeCaller{payload: map[string]any{"ok": true}}
	inv := newTestInvoker(t, caller, slack.NewCredentialSet("xoxb-bot", ""))

	env := inv.Dispatch(context.Background(), "slack_send_message", map[string]any{
		"channel":      "C123",
		"text":         "hello",
		"unfurl_links": false,
	})
	if !env.Successful {
		t.Fatalf("unexpected failure: %q", env.Error)
	}
	if _, sent := caller.lastArg["as_user"]; sent {
		t.Fatalf("optional parameter at default was forwarded: %v", caller.lastArg)
	}
	if caller.lastArg["unfurl_links"] != "false" {
		t.Fatalf("non-default unfurl_links not forwarded: %v", caller.lastArg)
	}
	if caller.lastArg["text"] != "hello" {
		t.Fatalf("text not forwarded: %v", caller.lastArg)
	}
}

func TestWireArgsRenamesParameters(t *testing.T) {
	caller := &fakeCaller{payload: map[string]any{"ok": true}}
	inv := newTestInvoker(t, caller, slack.NewCredentialSet("xoxb-bot", ""))

	env := inv.Dispatch(context.Background(), "slack_archive_a_public_or_private_channel",
		map[string]any{"channel_id": "C123"})
	if !env.Successful {
		t.Fatalf("unexpected failure: %q", env.Error)
	}
	if caller.lastArg["channel"] != "C123" {
		t.Fatalf("channel_id was not renamed on the wire: %v", caller.lastArg)
	}
	if _, present := caller.lastArg["channel_id"]; present {
		t.Fatalf("tool-facing parameter name leaked onto the wire")
	}
}

func TestWireArgsTokenTools(t *testing.T) {
	caller := &fakeCaller{payload: map[string]any{"ok": true}}
	inv := newTestInvoker(t, caller, slack.NewCredentialSet("xoxb-bot", ""))

	env := inv.Dispatch(context.Background(), "slack_add_emoji", map[string]any{
		"name":  "party",
		"token": "xoxp-admin",
		"url":   "https://example.com/party.png",
	})
	if !env.Successful {
		t.Fatalf("unexpected failure: %q", env.Error)
	}
	if caller.lastTok != "xoxp-admin" {
		t.Fatalf("explicit token argument must authorize the call, got %q", caller.lastTok)
	}
	if _, present := caller.lastArg["token"]; present {
		t.Fatalf("token must not be forwarded as a form field")
	}
}

func TestWireArgsStaticArgs(t *testing.T) {
	caller := &fakeCaller{payload: map[string]any{"ok": true}}
	inv := newTestInvoker(t, caller, slack.NewCredentialSet("xoxb-bot", ""))

	env := inv.Dispatch(context.Background(), "slack_delete_user_profile_photo",
		map[string]any{"token": "xoxp-user"})
	if !env.Successful {
		t.Fatalf("unexpected failure: %q", env.Error)
	}
	if caller.lastOp != "users.profile.set" {
		t.Fatalf("unexpected operation %s", caller.lastOp)
	}
	if !strings.Contains(caller.lastArg["profile"], `"image_512":""`) {
		t.Fatalf("static profile payload missing: %v", caller.lastArg)
	}
}

func TestDispatchRemoteFailure(t *testing.T) {
	caller := &fakeCaller{err: &slack.APIError{Op: "chat.postMessage", Code: "channel_not_found"}}
	inv := newTestInvoker(t, caller, slack.NewCredentialSet("xoxb-bot", ""))

	env := inv.Dispatch(context.Background(), "slack_send_message",
		map[string]any{"channel": "C404", "text": "hi"})
	if env.Successful {
		t.Fatalf("expected failure envelope")
	}
	if !strings.Contains(env.Error, "channel_not_found") {
		t.Fatalf("error %q does not embed the remote code", env.Error)
	}
	if len(env.Data) != 0 {
		t.Fatalf("failure envelope must have empty data, got %v", env.Data)
	}
}
