package domain

import "strings"

// Outcome describes how a reconciliation run ended.
type Outcome int

const (
	// OutcomeNothingToDo indicates no backend had any package to act on.
	OutcomeNothingToDo Outcome = iota
	// OutcomeDeclined indicates the user declined the confirmation; nothing was changed.
	OutcomeDeclined
	// OutcomeDone indicates the confirmed actions completed.
	OutcomeDone
)

// String returns the message shown to the user for the outcome.
func (o Outcome) String() string {
	switch o {
	case OutcomeNothingToDo:
		return "nothing to do"
	case OutcomeDeclined:
		return "aborted"
	case OutcomeDone:
		return "done"
	default:
		return "unknown"
	}
}

// ActionOptions tunes how a backend installs or removes packages.
type ActionOptions struct {
	// NoConfirm asks the underlying tool not to prompt on its own.
	NoConfirm bool
}

// SectionPackages is one row of a reconciliation summary.
type SectionPackages struct {
	Section  string
	Packages PackageSet
}

// Command is an external program invocation.
type Command struct {
	Name string
	Args []string
}

// NewCommand creates a Command from a program name and its arguments.
func NewCommand(name string, args ...string) Command {
	return Command{Name: name, Args: args}
}

// String renders the command line for logs and error metadata.
func (c Command) String() string {
	if len(c.Args) == 0 {
		return c.Name
	}
	return c.Name + " " + strings.Join(c.Args, " ")
}
