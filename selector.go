package errorbag

import "strings"

// SelectorDelimiter separates the field from the rule in a selector string.
const SelectorDelimiter = ":"

// Selector addresses the messages produced by one rule for one field.
type Selector struct {
	Field string
	Rule  string
}

// ParseSelector parses "field:rule" into a Selector. The input is split at
// the first delimiter, so the rule may itself contain ':'.
//
// ok is false when the input has no delimiter. Such a string is still a valid
// bare field name everywhere a field is accepted.
//
// Example:
//
//	sel, ok := errorbag.ParseSelector("email:required") // {email required}, true
//	_, ok = errorbag.ParseSelector("email")             // false
func ParseSelector(input string) (Selector, bool) {
	field, rule, found := strings.Cut(input, SelectorDelimiter)
	if !found {
		return Selector{}, false
	}
	return Selector{Field: field, Rule: rule}, true
}

func (s Selector) String() string {
	return s.Field + SelectorDelimiter + s.Rule
}

func (s Selector) matches(e Entry) bool {
	return e.Field == s.Field && e.Rule == s.Rule
}
