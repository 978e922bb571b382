package catalog

func callTools() []ToolDefinition {
	return []ToolDefinition{
		{
			Name:        "slack_add_call_participants",
			Description: "Register new participants added to a call.",
			Operation:   "calls.participants.add",
			Credential:  CredentialPrimary,
			Scope:       "calls:write",
			Params: []ParameterSpec{
				{Name: "id", Type: TypeString, Required: true, Description: "ID of the call returned by calls.add"},
				{Name: "users", Type: TypeString, Required: true, Description: "JSON list of users joining the call"},
			},
		},
		{
			Name:        "slack_end_a_call_with_duration_and_id",
			Description: "End a call, optionally recording its duration in seconds.",
			Operation:   "calls.end",
			Credential:  CredentialPrimary,
			Scope:       "calls:write",
			Params: []ParameterSpec{
				{Name: "id", Type: TypeString, Required: true, Description: "ID of the call to end"},
				{Name: "duration", Type: TypeInteger, Min: intPtr(1), Description: "Call duration in seconds"},
			},
		},
	}
}
