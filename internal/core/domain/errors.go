package domain

import "go.trai.ch/zerr"

var (
	// ErrBackendUnavailable is returned when a backend's underlying tool is missing or unusable.
	ErrBackendUnavailable = zerr.New("backend unavailable")

	// ErrQueryFailed is returned when querying installed or explicit packages fails.
	ErrQueryFailed = zerr.New("package query failed")

	// ErrActionFailed is returned when installing or removing packages fails after confirmation.
	ErrActionFailed = zerr.New("package action failed")

	// ErrUnknownBackend is returned when a backend name does not match any known backend.
	ErrUnknownBackend = zerr.New("unknown backend")

	// ErrGroupNotFound is returned when a group file requested by name does not exist.
	ErrGroupNotFound = zerr.New("group file not found")

	// ErrNoGroupsSpecified is returned when a command requires at least one group name.
	ErrNoGroupsSpecified = zerr.New("no groups specified")

	// ErrGroupReadFailed is returned when a group file or the groups directory cannot be read.
	ErrGroupReadFailed = zerr.New("failed to read group file")

	// ErrGroupParseFailed is returned when a group file contains an invalid line.
	ErrGroupParseFailed = zerr.New("failed to parse group file")

	// ErrEditorFailed is returned when the editor exits with an error.
	ErrEditorFailed = zerr.New("editor exited with error")

	// ErrConfigDirNotFound is returned when neither XDG_CONFIG_HOME nor HOME can be resolved.
	ErrConfigDirNotFound = zerr.New("could not determine config directory")

	// ErrConfigReadFailed is returned when the config file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the config file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrConfirmationFailed is returned when the user's answer cannot be read.
	ErrConfirmationFailed = zerr.New("failed to read confirmation")
)
