package catalog

// DND operations act on a delegated human user, so they all require the
// secondary (user) credential; bot tokens cannot control DND settings.
func dndTools() []ToolDefinition {
	return []ToolDefinition{
		{
			Name:        "slack_activate_or_modify_do_not_disturb_duration",
			Description: "Turn on do not disturb mode for the current user, or change its duration.",
			Operation:   "dnd.setSnooze",
			Credential:  CredentialSecondary,
			Scope:       "dnd:write",
			Params: []ParameterSpec{
				{Name: "num_minutes", Type: TypeInteger, Required: true, Min: intPtr(1), Max: intPtr(4320), Description: "Number of minutes to snooze notifications for"},
			},
		},
		{
			Name:        "slack_end_snooze",
			Description: "End the current user's snooze mode immediately.",
			Operation:   "dnd.endSnooze",
			Credential:  CredentialSecondary,
			Scope:       "dnd:write",
		},
		{
			Name:        "slack_end_user_do_not_disturb_session",
			Description: "End the current user's do not disturb session immediately.",
			Operation:   "dnd.endDnd",
			Credential:  CredentialSecondary,
			Scope:       "dnd:write",
		},
		{
			Name:        "slack_end_user_snooze_mode_immediately",
			Description: "End the current user's snooze mode immediately.",
			Operation:   "dnd.endSnooze",
			Credential:  CredentialSecondary,
			Scope:       "dnd:write",
		},
		{
			Name:        "slack_fetch_dnd_status_for_multiple_team_members",
			Description: "Fetch do-not-disturb status for up to 50 team members.",
			Operation:   "dnd.teamInfo",
			Credential:  CredentialSecondary,
			Scope:       "dnd:read",
			Params: []ParameterSpec{
				{Name: "users", Type: TypeString, Required: true, Description: "Comma-separated list of user IDs"},
			},
		},
	}
}
