package bridge

import (
	"context"
	"fmt"
	"strconv"

	"github.com/go-logr/logr"

	"github.com/roivaz/slack-toolbridge/internal/catalog"
	"github.com/roivaz/slack-toolbridge/internal/logging"
)

// Caller performs the single remote call for a tool. Implemented by
// slack.Client.
type Caller interface {
	Call(ctx context.Context, op, token string, args map[string]string) (map[string]any, error)
}

// CredentialResolver maps a credential kind to a token. Implemented by
// slack.CredentialSet.
type CredentialResolver interface {
	Resolve(kind catalog.CredentialKind) (string, error)
}

// Invoker runs the five-stage pipeline for one invocation at a time. It
// holds no mutable state, so a single Invoker serves any number of
// concurrent invocations.
type Invoker struct {
	registry *catalog.Registry
	creds    CredentialResolver
	caller   Caller
	log      logging.Logger
}

func NewInvoker(registry *catalog.Registry, creds CredentialResolver, caller Caller, log logging.Logger) *Invoker {
	if log.Logr().GetSink() == nil {
		log = logging.New(logr.Discard())
	}
	return &Invoker{registry: registry, creds: creds, caller: caller, log: log}
}

// Registry exposes the tool table the invoker dispatches over.
func (inv *Invoker) Registry() *catalog.Registry { return inv.registry }

// Dispatch resolves a tool by name, validates the raw arguments, performs
// the remote call and returns the normalized envelope. It never returns an
// error: every failure path, including unknown tools, is an envelope with
// Successful=false. Validation and credential failures short-circuit before
// any network interaction.
func (inv *Invoker) Dispatch(ctx context.Context, name string, raw map[string]any) Envelope {
	def, ok := inv.registry.Lookup(name)
	if !ok {
		return failureEnvelope(fmt.Sprintf("tool %q is not registered", name))
	}

	args, err := catalog.Validate(def, raw)
	if err != nil {
		return Normalize(nil, err)
	}

	token, err := inv.resolveToken(def, args)
	if err != nil {
		return Normalize(nil, err)
	}

	payload, err := inv.caller.Call(ctx, def.Operation, token, wireArgs(def, args))
	if err != nil {
		inv.log.Debug("invocation failed", "tool", name, "op", def.Operation, "err", err.Error())
	}
	return Normalize(payload, err)
}

// resolveToken picks the credential for the call. Tools registered with
// CredentialNone carry their token as a validated argument.
func (inv *Invoker) resolveToken(def catalog.ToolDefinition, args map[string]any) (string, error) {
	if def.Credential == catalog.CredentialNone {
		token, _ := args["token"].(string)
		return token, nil
	}
	return inv.creds.Resolve(def.Credential)
}

// wireArgs builds the form arguments for the Slack method: required
// parameters always, optional parameters only when they differ from their
// default, fixed StaticArgs last. The token parameter of CredentialNone
// tools authorizes the call and is never sent as a form field.
func wireArgs(def catalog.ToolDefinition, args map[string]any) map[string]string {
	out := make(map[string]string, len(args))
	for _, p := range def.Params {
		if p.Name == "token" && def.Credential == catalog.CredentialNone {
			continue
		}
		value, ok := args[p.Name]
		if !ok {
			continue
		}
		if !p.Required && value == p.DefaultValue() {
			continue
		}
		out[p.WireName()] = formValue(value)
	}
	for k, v := range def.StaticArgs {
		out[k] = v
	}
	return out
}

func formValue(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case bool:
		return strconv.FormatBool(t)
	case int:
		return strconv.Itoa(t)
	default:
		return fmt.Sprint(t)
	}
}
