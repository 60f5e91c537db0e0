package errorbag

import (
	"fmt"
	"strings"
)

// Entry is one recorded validation failure. Entries only exist inside a Bag;
// the values handed out by Entries are copies.
type Entry struct {
	Field   string
	Message string
	Rule    string
	Scope   Scope
}

func NewEntry(field, message, rule string, scope Scope) Entry {
	return Entry{
		Field:   field,
		Message: message,
		Rule:    rule,
		Scope:   scope,
	}
}

func (e Entry) Error() string {
	return fmt.Sprintf("validation failed for field %q (%s): %s", e.Field, e.Rule, e.Message)
}

// Errors is the error form of a set of entries, returned by Bag.Err and
// Scoped.Err.
type Errors []Entry

func (e Errors) Error() string {
	messages := make([]string, 0, len(e))
	for _, entry := range e {
		messages = append(messages, fmt.Sprintf("%s: %s", entry.Field, entry.Message))
	}
	return "validation failed: " + strings.Join(messages, ", ")
}

// Unwrap exposes each entry to errors.Is and errors.As.
func (e Errors) Unwrap() []error {
	errs := make([]error, 0, len(e))
	for _, entry := range e {
		errs = append(errs, entry)
	}
	return errs
}
