package catalog

func reminderTools() []ToolDefinition {
	return []ToolDefinition{
		{
			Name:        "slack_create_a_reminder",
			Description: "Create a reminder for a user; time accepts unix timestamps, relative seconds or natural language.",
			Operation:   "reminders.add",
			Credential:  CredentialSecondary,
			Scope:       "reminders:write",
			Params: []ParameterSpec{
				{Name: "text", Type: TypeString, Required: true, Description: "Reminder text"},
				{Name: "time", Type: TypeString, Required: true, Description: "When the reminder should fire"},
				{Name: "user", Type: TypeString, Description: "User ID to set the reminder for (defaults to the token's user)"},
			},
		},
	}
}
