// Package skills holds the built-in slash-command registry used by the
// picker. The REPL host owns interpretation of a selected command.
package skills

import "slashline/selector"

// Builtin returns the registered slash commands as picker items.
func Builtin() []selector.Item {
	return []selector.Item{
		{Name: "read", Description: "read a file into the conversation", NeedsArg: true, ArgHint: "path"},
		{Name: "refine", Description: "refine the previous answer", NeedsArg: true, ArgHint: "instructions"},
		{Name: "explain", Description: "explain the selected code", NeedsArg: true, ArgHint: "topic"},
		{Name: "history", Description: "show recent entries, or \"session\" for this run", NeedsArg: true, ArgHint: "session"},
		{Name: "theme", Description: "cycle the color theme"},
		{Name: "help", Description: "show available commands"},
		{Name: "quit", Description: "exit the session"},
	}
}
