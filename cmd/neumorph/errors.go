package main

import (
	"errors"
	"fmt"

	neuerrors "github.com/alexisbeaulieu97/neumorph/pkg/errors"
)

// describeError turns configuration failures into a one-line hint for the
// terminal. Other errors print as they are.
func describeError(err error) string {
	var parseErr *neuerrors.ParseError
	if errors.As(err, &parseErr) {
		if parseErr.Line > 0 {
			return fmt.Sprintf("error: %s line %d: %s", parseErr.Path, parseErr.Line, parseErr.Message)
		}
		return fmt.Sprintf("error: %s: %s", parseErr.Path, parseErr.Message)
	}

	var validationErr *neuerrors.ValidationError
	if errors.As(err, &validationErr) {
		msg := fmt.Sprintf("error: invalid %s: %s", validationErr.Field, validationErr.Message)
		if validationErr.Suggestion != "" {
			msg += fmt.Sprintf("\n  did you mean %q?", validationErr.Suggestion)
		}
		return msg
	}

	return "error: " + err.Error()
}
