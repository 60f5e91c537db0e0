package errorbag

import (
	"errors"
	"fmt"
	"io"
	"maps"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// MessageFunc renders the message recorded for a failed validator rule.
type MessageFunc func(fe validator.FieldError) string

// Messages dispatches on the validator tag to pick the MessageFunc for a
// failure. Tags without an entry get a generic message.
type Messages map[string]MessageFunc

// Template returns a MessageFunc that fills {field} and {param} in tmpl.
//
// Example:
//
//	msgs := errorbag.Messages{
//	    "min": errorbag.Template("The {field} field must be at least {param}."),
//	}
func Template(tmpl string) MessageFunc {
	return func(fe validator.FieldError) string {
		return strings.NewReplacer(
			"{field}", fe.Field(),
			"{param}", fe.Param(),
		).Replace(tmpl)
	}
}

func DefaultMessages() Messages {
	return Messages{
		"required": Template("The {field} field is required."),
		"email":    Template("The {field} field must be a valid email address."),
		"url":      Template("The {field} field must be a valid URL."),
		"min":      Template("The {field} field must be at least {param}."),
		"max":      Template("The {field} field may not be greater than {param}."),
		"len":      Template("The {field} field must be {param} in length."),
		"gte":      Template("The {field} field must be greater than or equal to {param}."),
		"lte":      Template("The {field} field must be less than or equal to {param}."),
		"oneof":    Template("The {field} field must be one of: {param}."),
	}
}

// Message renders the message for fe.
func (m Messages) Message(fe validator.FieldError) string {
	if render, ok := m[fe.Tag()]; ok && render != nil {
		return render(fe)
	}
	return fmt.Sprintf("The %s field failed the %s rule.", fe.Field(), fe.Tag())
}

// SupportedRules returns the tags that have a message registered, in no
// particular order.
func (m Messages) SupportedRules() []string {
	rules := make([]string, 0, len(m))
	for rule := range m {
		rules = append(rules, rule)
	}
	return rules
}

// Merge returns a new catalog holding m overlaid with other.
func (m Messages) Merge(other Messages) Messages {
	merged := make(Messages, len(m)+len(other))
	maps.Copy(merged, m)
	maps.Copy(merged, other)
	return merged
}

// LoadMessages reads a YAML document mapping validator tags to templates:
//
//	required: "Please fill in {field}."
//	min: "{field} needs at least {param} characters."
//
// An empty document yields an empty catalog. Multiple documents and empty
// templates are rejected.
func LoadMessages(r io.Reader) (Messages, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var raw map[string]string
	if err := dec.Decode(&raw); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("parse messages YAML: %w", err)
	}

	var extra any
	if err := dec.Decode(&extra); err == nil {
		return nil, errors.New("parse messages YAML: multiple documents are not allowed")
	} else if !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("parse messages YAML: %w", err)
	}

	messages := make(Messages, len(raw))
	for rule, tmpl := range raw {
		if strings.TrimSpace(tmpl) == "" {
			return nil, fmt.Errorf("message for rule %q is empty", rule)
		}
		messages[rule] = Template(tmpl)
	}
	return messages, nil
}
