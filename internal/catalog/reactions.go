package catalog

func reactionTools() []ToolDefinition {
	return []ToolDefinition{
		{
			Name:        "slack_add_reaction_to_an_item",
			Description: "Add an emoji reaction to a message.",
			Operation:   "reactions.add",
			Credential:  CredentialPrimary,
			Scope:       "reactions:write",
			Params: []ParameterSpec{
				{Name: "channel", Type: TypeString, Required: true, Description: "Channel ID containing the message"},
				{Name: "name", Type: TypeString, Required: true, Description: "Reaction (emoji) name, without colons"},
				{Name: "timestamp", Type: TypeString, Required: true, Description: "Timestamp of the message to react to"},
			},
		},
		{
			Name:        "slack_fetch_item_reactions",
			Description: "Fetch the reactions on a message, file or file comment.",
			Operation:   "reactions.get",
			Credential:  CredentialPrimary,
			Scope:       "reactions:read",
			Params: []ParameterSpec{
				{Name: "channel", Type: TypeString, Description: "Channel ID containing the message"},
				{Name: "file", Type: TypeString, Description: "File ID to get reactions for"},
				{Name: "file_comment", Type: TypeString, Description: "File comment ID to get reactions for"},
				{Name: "full", Type: TypeBoolean, Description: "Return the complete reaction list"},
				{Name: "timestamp", Type: TypeString, Description: "Timestamp of the message to get reactions for"},
			},
		},
		{
			Name:        "slack_add_a_star_to_an_item",
			Description: "Save a channel, file, file comment or message for later.",
			Operation:   "stars.add",
			Credential:  CredentialPrimary,
			Scope:       "stars:write",
			Params: []ParameterSpec{
				{Name: "channel", Type: TypeString, Description: "Channel ID of the item to star"},
				{Name: "file", Type: TypeString, Description: "File ID to star"},
				{Name: "file_comment", Type: TypeString, Description: "File comment ID to star"},
				{Name: "timestamp", Type: TypeString, Description: "Timestamp of the message to star"},
			},
		},
	}
}
