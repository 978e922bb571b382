package catalog

func messagingTools() []ToolDefinition {
	return []ToolDefinition{
		{
			Name:        "slack_send_message",
			Description: "Send a message to a Slack channel with formatting and attachment options.",
			Operation:   "chat.postMessage",
			Credential:  CredentialPrimary,
			Scope:       "chat:write",
			Params: []ParameterSpec{
				{Name: "channel", Type: TypeString, Required: true, Description: "Channel ID to send the message to"},
				{Name: "text", Type: TypeString, Description: "Message text content"},
				{Name: "as_user", Type: TypeBoolean, Description: "Send the message as the bot user"},
				{Name: "attachments", Type: TypeString, Description: "JSON string of attachments"},
				{Name: "blocks", Type: TypeString, Description: "JSON string of blocks"},
				{Name: "icon_emoji", Type: TypeString, Description: "Emoji to use as icon"},
				{Name: "icon_url", Type: TypeString, Description: "URL to use as icon"},
				{Name: "link_names", Type: TypeBoolean, Description: "Link @mentions and #channels"},
				{Name: "markdown_text", Type: TypeString, Description: "Markdown formatted text"},
				{Name: "mrkdwn", Type: TypeBoolean, Description: "Parse markdown in the message"},
				{Name: "parse", Type: TypeEnum, Enum: []string{"full", "none"}, Description: "How to parse the message"},
				{Name: "reply_broadcast", Type: TypeBoolean, Description: "Broadcast the threaded reply to the channel"},
				{Name: "thread_ts", Type: TypeString, Description: "Timestamp of the parent message for threading"},
				{Name: "unfurl_links", Type: TypeBoolean, Default: true, Description: "Unfurl links in the message"},
				{Name: "unfurl_media", Type: TypeBoolean, Default: true, Description: "Unfurl media in the message"},
				{Name: "username", Type: TypeString, Description: "Username to display"},
			},
		},
		{
			Name:        "slack_customize_url_unfurl",
			Description: "Customize how a URL is unfurled in a previously posted message.",
			Operation:   "chat.unfurl",
			Credential:  CredentialPrimary,
			Scope:       "links:write",
			Params:      unfurlParams(),
		},
		{
			Name:        "slack_customize_url_unfurling_in_messages",
			Description: "Customize URL unfurling in messages using structured unfurl payloads.",
			Operation:   "chat.unfurl",
			Credential:  CredentialPrimary,
			Scope:       "links:write",
			Params:      unfurlParams(),
		},
		{
			Name:        "slack_delete_a_scheduled_message_in_a_chat",
			Description: "Delete a pending scheduled message before it is sent.",
			Operation:   "chat.deleteScheduledMessage",
			Credential:  CredentialPrimary,
			Scope:       "chat:write",
			Params: []ParameterSpec{
				{Name: "channel", Type: TypeString, Required: true, Description: "Channel ID the message was scheduled for"},
				{Name: "scheduled_message_id", Type: TypeString, Required: true, Description: "ID returned by chat.scheduleMessage"},
				{Name: "as_user", Type: TypeBoolean, Description: "Delete the message as the authed user"},
			},
		},
		{
			Name:        "slack_deletes_a_message_from_a_chat",
			Description: "Delete a message from a channel or conversation.",
			Operation:   "chat.delete",
			Credential:  CredentialPrimary,
			Scope:       "chat:write",
			Params: []ParameterSpec{
				{Name: "channel", Type: TypeString, Required: true, Description: "Channel ID containing the message"},
				{Name: "ts", Type: TypeString, Required: true, Description: "Timestamp of the message to delete"},
				{Name: "as_user", Type: TypeBoolean, Description: "Delete the message as the authed user"},
			},
		},
		{
			Name:        "slack_fetch_conversation_history",
			Description: "Fetch a conversation's message history with pagination support.",
			Operation:   "conversations.history",
			Credential:  CredentialPrimary,
			Scope:       "channels:history",
			Params: []ParameterSpec{
				{Name: "channel", Type: TypeString, Required: true, Description: "Channel ID to read history from"},
				{Name: "cursor", Type: TypeString, Description: "Pagination cursor from a previous response"},
				{Name: "inclusive", Type: TypeBoolean, Description: "Include messages with latest or oldest timestamps"},
				{Name: "latest", Type: TypeString, Description: "End of the time range (timestamp)"},
				{Name: "limit", Type: TypeInteger, Min: intPtr(1), Max: intPtr(1000), Description: "Maximum number of messages to return"},
				{Name: "oldest", Type: TypeString, Description: "Start of the time range (timestamp)"},
			},
		},
		{
			Name:        "slack_fetch_message_thread_from_a_conversation",
			Description: "Fetch a message thread (parent and replies) from a conversation.",
			Operation:   "conversations.replies",
			Credential:  CredentialPrimary,
			Scope:       "channels:history",
			Params: []ParameterSpec{
				{Name: "channel", Type: TypeString, Required: true, Description: "Channel ID containing the thread"},
				{Name: "ts", Type: TypeString, Required: true, Description: "Timestamp of the parent message"},
				{Name: "cursor", Type: TypeString, Description: "Pagination cursor from a previous response"},
				{Name: "inclusive", Type: TypeBoolean, Description: "Include messages with latest or oldest timestamps"},
				{Name: "latest", Type: TypeString, Description: "End of the time range (timestamp)"},
				{Name: "limit", Type: TypeInteger, Min: intPtr(1), Max: intPtr(1000), Description: "Maximum number of messages to return"},
				{Name: "oldest", Type: TypeString, Description: "Start of the time range (timestamp)"},
			},
		},
	}
}

func unfurlParams() []ParameterSpec {
	return []ParameterSpec{
		{Name: "channel", Type: TypeString, Required: true, Description: "Channel ID of the message to unfurl"},
		{Name: "ts", Type: TypeString, Required: true, Description: "Timestamp of the message to unfurl"},
		{Name: "unfurls", Type: TypeString, Required: true, Description: "JSON map of URL to unfurl blocks"},
		{Name: "user_auth_message", Type: TypeString, Description: "Invitation message for user authentication"},
		{Name: "user_auth_required", Type: TypeBoolean, Description: "Require user authentication to unfurl"},
		{Name: "user_auth_url", Type: TypeString, Description: "URL for user authentication"},
	}
}
