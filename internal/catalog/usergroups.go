package catalog

func usergroupTools() []ToolDefinition {
	return []ToolDefinition{
		{
			Name:        "slack_create_a_slack_user_group",
			Description: "Create a user group in the workspace.",
			Operation:   "usergroups.create",
			Credential:  CredentialPrimary,
			Scope:       "usergroups:write",
			Params: []ParameterSpec{
				{Name: "name", Type: TypeString, Required: true, Description: "Name of the user group"},
				{Name: "channels", Type: TypeString, Description: "Comma-separated channel IDs the group defaults to"},
				{Name: "description", Type: TypeString, Description: "Short description of the user group"},
				{Name: "handle", Type: TypeString, Description: "Mention handle, without the leading @"},
				{Name: "include_count", Type: TypeBoolean, Description: "Include the member count in the response"},
			},
		},
		{
			Name:        "slack_disable_an_existing_slack_user_group",
			Description: "Disable an existing user group.",
			Operation:   "usergroups.disable",
			Credential:  CredentialPrimary,
			Scope:       "usergroups:write",
			Params: []ParameterSpec{
				{Name: "usergroup", Type: TypeString, Required: true, Description: "ID of the user group to disable"},
				{Name: "include_count", Type: TypeBoolean, Description: "Include the member count in the response"},
			},
		},
		{
			Name:        "slack_enable_a_specified_user_group",
			Description: "Re-enable a previously disabled user group.",
			Operation:   "usergroups.enable",
			Credential:  CredentialPrimary,
			Scope:       "usergroups:write",
			Params: []ParameterSpec{
				{Name: "usergroup", Type: TypeString, Required: true, Description: "ID of the user group to enable"},
				{Name: "include_count", Type: TypeBoolean, Description: "Include the member count in the response"},
			},
		},
	}
}
