package catalog

// Definitions returns the full built-in tool catalog in its advertised
// order. Each entry forwards to exactly one Slack Web API method; adding a
// tool means appending a row here, not writing a new code path.
func Definitions() []ToolDefinition {
	var defs []ToolDefinition
	defs = append(defs, dndTools()...)
	defs = append(defs, emojiTools()...)
	defs = append(defs, reactionTools()...)
	defs = append(defs, callTools()...)
	defs = append(defs, conversationTools()...)
	defs = append(defs, messagingTools()...)
	defs = append(defs, reminderTools()...)
	defs = append(defs, usergroupTools()...)
	defs = append(defs, teamTools()...)
	return defs
}
