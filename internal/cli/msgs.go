package cli

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort = "Manage the ordered entries of the PATH variable"
	MsgRootLong = `pathctl manages the ordered list of directory entries in the PATH
variable at one of three scopes: the transient Process scope, the
per-user persistent User scope, or the machine-wide Machine scope.

Mutations never reorder entries that stay in the list, duplicates are
detected case-insensitively, and Machine-scope changes require elevated
privileges.`
	MsgGetShort    = "Print the ordered PATH entries for a scope"
	MsgFindShort   = "Print the position of an entry in the PATH list"
	MsgPushShort   = "Append directories to the PATH list"
	MsgPushLong    = "Push appends the given directories to the PATH list of the selected scope.\nCandidates that are not existing directories or are already present are skipped."
	MsgRemoveShort = "Remove directories from the PATH list"
	MsgConfigShort = "Manage the pathctl configuration file"
	MsgDocsShort   = "Display documentation topics"
	MsgDocsLong    = "Display a list of all available documentation topics, or render one topic."

	// Status messages
	MsgNotFound          = "not found"
	MsgPushSummaryFormat = "%s added %d, skipped %d (not a directory), skipped %d (already present)\n"
	MsgRemoveSummary     = "%s removed %d, skipped %d (not present)\n"
	MsgConfigWritten     = "Wrote %s\n"
	MsgConfigExists      = "Config file already exists at %s\n"
	MsgAvailableTopics   = "Available topics:"
	MsgTopicItem         = "  %s\n"

	// Flag descriptions
	MsgFlagScope  = "Scope to operate on: Process, User or Machine"
	MsgFlagPath   = "Directory entry (repeatable)"
	MsgFlagFormat = "Output format: auto, term, text, json, yaml or xml"
)
