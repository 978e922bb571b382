package catalog

func teamTools() []ToolDefinition {
	return []ToolDefinition{
		{
			Name:        "slack_fetch_bot_user_information",
			Description: "Fetch information about a bot user.",
			Operation:   "users.info",
			Credential:  CredentialPrimary,
			Scope:       "users:read",
			Params: []ParameterSpec{
				{Name: "bot", APIName: "user", Type: TypeString, Required: true, Description: "Bot user ID to look up"},
			},
		},
		{
			Name:        "slack_fetch_current_team_info_with_optional_team_scope",
			Description: "Fetch information about the current team, optionally scoped to another team.",
			Operation:   "team.info",
			Credential:  CredentialPrimary,
			Scope:       "team:read",
			Params: []ParameterSpec{
				{Name: "team", Type: TypeString, Description: "Team ID to scope the request to"},
			},
		},
		{
			Name:        "slack_fetch_team_info",
			Description: "Fetch information about a Slack team.",
			Operation:   "team.info",
			Credential:  CredentialPrimary,
			Scope:       "team:read",
			Params: []ParameterSpec{
				{Name: "team", Type: TypeString, Description: "Team ID to look up"},
			},
		},
		{
			Name:        "slack_fetch_workspace_settings_information",
			Description: "Fetch settings information for a workspace (admin operation).",
			Operation:   "admin.teams.settings.info",
			Credential:  CredentialPrimary,
			Scope:       "admin.teams:read",
			Params: []ParameterSpec{
				{Name: "team_id", Type: TypeString, Required: true, Description: "Workspace ID to fetch settings for"},
			},
		},
		{
			Name:        "slack_delete_user_profile_photo",
			Description: "Delete the user profile photo by clearing all profile image fields.",
			Operation:   "users.profile.set",
			Credential:  CredentialNone,
			Scope:       "users.profile:write",
			Params: []ParameterSpec{
				{Name: "token", Type: TypeString, Required: true, Description: "User token authorizing the call"},
			},
			StaticArgs: map[string]string{
				"profile": `{"image_24":"","image_32":"","image_48":"","image_72":"","image_192":"","image_512":"","image_1024":""}`,
			},
		},
	}
}
