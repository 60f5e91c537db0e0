package errorbag

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

// Fill records every failure in a validator.ValidationErrors as an unscoped
// entry. See Scoped.Fill.
func (b *Bag) Fill(err error, messages Messages) error {
	return b.unscoped().Fill(err, messages)
}

// ValidateStruct validates obj and records its failures as unscoped entries.
// See Scoped.ValidateStruct.
func (b *Bag) ValidateStruct(v *validator.Validate, obj any, messages Messages) error {
	return b.unscoped().ValidateStruct(v, obj, messages)
}

// Fill records every failure in err, which is expected to come from a
// go-playground validator, in the view's scope. Each failure becomes an entry
// with the failing field as field, the validator tag as rule and the message
// rendered by messages.
//
// A nil err is a no-op. Any error that is not a validator.ValidationErrors is
// returned wrapped and nothing is recorded.
func (s Scoped) Fill(err error, messages Messages) error {
	if err == nil {
		return nil
	}

	var invalid *validator.InvalidValidationError
	if errors.As(err, &invalid) {
		return fmt.Errorf("invalid validation input: %w", err)
	}

	var failures validator.ValidationErrors
	if !errors.As(err, &failures) {
		return fmt.Errorf("unsupported validation error %T: %w", err, err)
	}

	for _, fe := range failures {
		s.Add(fe.Field(), messages.Message(fe), fe.Tag())
	}
	return nil
}

// ValidateStruct runs v against obj and records the failures in the view's
// scope. Validation failures are not returned as an error; only problems
// with the input itself are. A nil v uses a fresh validator.
//
// Example:
//
//	bag := errorbag.New()
//	billing := bag.In(errorbag.Named("billing"))
//	if err := billing.ValidateStruct(validate, form, errorbag.DefaultMessages()); err != nil {
//	    return err
//	}
//	if billing.Any() {
//	    // render billing.Group()
//	}
func (s Scoped) ValidateStruct(v *validator.Validate, obj any, messages Messages) error {
	if v == nil {
		v = validator.New(validator.WithRequiredStructEnabled())
	}
	return s.Fill(v.Struct(obj), messages)
}
