// Package catalog holds the static tool table: one ToolDefinition per
// exposed tool, each mapping to exactly one Slack Web API method. The table
// is data; all dispatch logic lives in the bridge package.
package catalog

// ParamType is the semantic type of a tool parameter.
type ParamType int

const (
	TypeString ParamType = iota
	TypeInteger
	TypeBoolean
	TypeEnum
)

func (t ParamType) String() string {
	switch t {
	case TypeString:
		return "string"
	case TypeInteger:
		return "integer"
	case TypeBoolean:
		return "boolean"
	case TypeEnum:
		return "enum"
	default:
		return "unknown"
	}
}

// CredentialKind selects which token authorizes a tool's remote call.
type CredentialKind int

const (
	// CredentialNone means the tool carries its own token argument.
	CredentialNone CredentialKind = iota
	// CredentialPrimary is the bot token (SLACK_BOT_TOKEN).
	CredentialPrimary
	// CredentialSecondary is the user token (SLACK_USER_TOKEN), needed for
	// operations scoped to a delegated human user such as DND and reminders.
	CredentialSecondary
)

func (k CredentialKind) String() string {
	switch k {
	case CredentialPrimary:
		return "primary"
	case CredentialSecondary:
		return "secondary"
	default:
		return "none"
	}
}

// ParameterSpec declares a single tool parameter.
type ParameterSpec struct {
	Name        string
	Description string
	Type        ParamType
	Required    bool
	// Default is substituted when an optional parameter is absent. A nil
	// Default means the zero value of the declared type.
	Default any
	// Enum lists the allowed values for TypeEnum parameters.
	Enum []string
	// Min and Max bound TypeInteger values when non-nil.
	Min *int
	Max *int
	// APIName overrides the wire name of the argument when the tool's
	// parameter name differs from the Slack method's (e.g. channel_id vs
	// channel). Empty means Name is used as-is.
	APIName string
}

// WireName returns the argument name sent to the Slack method.
func (p ParameterSpec) WireName() string {
	if p.APIName != "" {
		return p.APIName
	}
	return p.Name
}

// ToolDefinition describes one tool: its schema, the credential it needs
// and the Slack method it forwards to. Immutable after registry construction.
type ToolDefinition struct {
	Name        string
	Description string
	Params      []ParameterSpec
	Credential  CredentialKind
	// Operation is the Slack Web API method, e.g. "chat.postMessage".
	Operation string
	// Scope documents the OAuth scope the operation needs remotely. It is
	// informational only; scope violations surface as remote API errors.
	Scope string
	// StaticArgs are fixed arguments always sent to the Slack method,
	// e.g. the blank profile payload of delete_user_profile_photo.
	StaticArgs map[string]string
}

func intPtr(v int) *int { return &v }
