// Package prompt provides simple interactive prompts.
//
// The only prompt is [Confirm], a yes/no question shown before
// destructive operations such as cleanup deletion. Selection flows use
// the fuzzy selector in the parent ui package instead.
package prompt
