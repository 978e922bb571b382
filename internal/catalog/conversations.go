package catalog

func conversationTools() []ToolDefinition {
	return []ToolDefinition{
		{
			Name:        "slack_archive_a_public_or_private_channel",
			Description: "Archive a public or private channel by its ID.",
			Operation:   "conversations.archive",
			Credential:  CredentialPrimary,
			Scope:       "channels:manage",
			Params: []ParameterSpec{
				{Name: "channel_id", APIName: "channel", Type: TypeString, Required: true, Description: "ID of the channel to archive"},
			},
		},
		{
			Name:        "slack_archive_a_slack_conversation",
			Description: "Archive a Slack conversation.",
			Operation:   "conversations.archive",
			Credential:  CredentialPrimary,
			Scope:       "channels:manage",
			Params: []ParameterSpec{
				{Name: "channel", Type: TypeString, Required: true, Description: "ID of the conversation to archive"},
			},
		},
		{
			Name:        "slack_close_dm_or_multi_person_dm",
			Description: "Close a direct message or multi-person direct message.",
			Operation:   "conversations.close",
			Credential:  CredentialPrimary,
			Scope:       "im:write",
			Params: []ParameterSpec{
				{Name: "channel", Type: TypeString, Required: true, Description: "ID of the DM or MPDM to close"},
			},
		},
		{
			Name:        "slack_create_channel",
			Description: "Create a public or private channel.",
			Operation:   "conversations.create",
			Credential:  CredentialPrimary,
			Scope:       "channels:manage",
			Params: []ParameterSpec{
				{Name: "name", Type: TypeString, Required: true, Description: "Name of the channel to create"},
				{Name: "is_private", Type: TypeBoolean, Description: "Create a private channel"},
				{Name: "team_id", Type: TypeString, Description: "Workspace to create the channel in"},
			},
		},
		{
			Name:        "slack_create_channel_based_conversation",
			Description: "Create a channel-based conversation, optionally org-wide.",
			Operation:   "conversations.create",
			Credential:  CredentialPrimary,
			Scope:       "channels:manage",
			Params: []ParameterSpec{
				{Name: "name", Type: TypeString, Required: true, Description: "Name of the conversation to create"},
				{Name: "is_private", Type: TypeBoolean, Required: true, Description: "Create a private conversation"},
				{Name: "description", Type: TypeString, Description: "Description of the conversation"},
				{Name: "org_wide", Type: TypeBoolean, Description: "Make the conversation available org-wide"},
				{Name: "team_id", Type: TypeString, Description: "Workspace to create the conversation in"},
			},
		},
		{
			Name:        "slack_delete_a_public_or_private_channel",
			Description: "Permanently delete a public or private channel (admin operation).",
			Operation:   "admin.conversations.delete",
			Credential:  CredentialPrimary,
			Scope:       "admin.conversations:write",
			Params: []ParameterSpec{
				{Name: "channel_id", Type: TypeString, Required: true, Description: "ID of the channel to delete"},
			},
		},
	}
}
