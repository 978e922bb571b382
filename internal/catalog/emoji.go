package catalog

// The emoji admin methods take an explicit token argument instead of an
// environment credential, matching their upstream signatures. The token
// parameter authorizes the call and is never forwarded as a form field.
func emojiTools() []ToolDefinition {
	return []ToolDefinition{
		{
			Name:        "slack_add_a_custom_emoji_to_a_slack_team",
			Description: "Add a custom emoji to a Slack workspace given a unique name and an image URL.",
			Operation:   "admin.emoji.add",
			Credential:  CredentialNone,
			Scope:       "admin.teams:write",
			Params: []ParameterSpec{
				{Name: "name", Type: TypeString, Required: true, Description: "Unique name for the emoji"},
				{Name: "token", Type: TypeString, Required: true, Description: "Admin token authorizing the call"},
				{Name: "url", Type: TypeString, Required: true, Description: "URL of the image to use as the emoji"},
			},
		},
		{
			Name:        "slack_add_an_emoji_alias_in_slack",
			Description: "Add an alias for an existing emoji in a Slack workspace.",
			Operation:   "admin.emoji.addAlias",
			Credential:  CredentialNone,
			Scope:       "admin.teams:write",
			Params: []ParameterSpec{
				{Name: "alias_for", Type: TypeString, Required: true, Description: "Name of the emoji to alias"},
				{Name: "name", Type: TypeString, Required: true, Description: "Name of the new alias"},
				{Name: "token", Type: TypeString, Required: true, Description: "Admin token authorizing the call"},
			},
		},
		{
			Name:        "slack_add_emoji",
			Description: "Add a custom emoji to a Slack workspace.",
			Operation:   "admin.emoji.add",
			Credential:  CredentialNone,
			Scope:       "admin.teams:write",
			Params: []ParameterSpec{
				{Name: "name", Type: TypeString, Required: true, Description: "Unique name for the emoji"},
				{Name: "token", Type: TypeString, Required: true, Description: "Admin token authorizing the call"},
				{Name: "url", Type: TypeString, Required: true, Description: "URL of the image to use as the emoji"},
			},
		},
	}
}
