package anki

import (
	"fmt"
	"strings"
)

// Error is the single error type this package surfaces. Action always names
// the failing AnkiConnect action; Err carries the transport cause when one
// exists.
type Error struct {
	Action  string
	Message string
	Err     error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Action, e.Message)
}

func (e *Error) Unwrap() error { return e.Err }

// rewriteRules maps known AnkiConnect failure substrings to more actionable
// messages that point at the parameter to fix. Unmatched messages pass
// through verbatim, prefixed with the action name by Error().
var rewriteRules = []struct {
	substr  string
	rewrite string
}{
	{
		substr:  "deck was not found",
		rewrite: "deck does not exist; check the deck parameter or create it with create_deck first",
	},
	{
		substr:  "cannot create note because it is a duplicate",
		rewrite: "note is a duplicate; set allowDuplicate to true to add it anyway",
	},
	{
		substr:  "model was not found",
		rewrite: "note type does not exist; check modelName against list_models",
	},
	{
		substr:  "collection is not available",
		rewrite: "Anki is not running or the collection is locked; open Anki and retry",
	},
}

// semanticError classifies an API-level failure message. AnkiConnect itself
// does not classify errors, so the matching lives here.
func semanticError(action, message string) *Error {
	lower := strings.ToLower(message)
	for _, r := range rewriteRules {
		if strings.Contains(lower, r.substr) {
			return &Error{Action: action, Message: r.rewrite}
		}
	}
	return &Error{Action: action, Message: message}
}
