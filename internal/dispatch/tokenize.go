// Package dispatch is the out-of-scope collaborator spec.md §1 names:
// command-line tokenization, numeric parsing, and the command
// dispatcher. Input is contractually well-formed (spec.md §7); these
// helpers return a plain error for an unknown keyword, an unparsable
// number or verdict, or a filter clause without '='. Token counts are
// not checked: a line with too few tokens makes Dispatch panic.
package dispatch

import "strings"

// Tokenize splits a line on runs of whitespace. The grammar in
// spec.md §6 never needs quoting.
func Tokenize(line string) []string {
	return strings.Fields(line)
}
