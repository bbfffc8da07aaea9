package logger

// ErrorEntry exposes the collected fields for white-box testing.
type ErrorEntry = errorEntry

func (e errorEntry) Message() string { return e.message }

func (e errorEntry) MetadataMap() map[string]any { return e.metadata }

var (
	CollectErrorEntries = collectErrorEntries
	FormatErrorEntries  = formatErrorEntries
)
