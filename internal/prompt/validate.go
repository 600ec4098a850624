package prompt

import (
	"fmt"
	"strings"
)

// notEmpty returns a field validator rejecting blank input.
func notEmpty(field string) func(string) error {
	return func(value string) error {
		if strings.TrimSpace(value) == "" {
			return fmt.Errorf("%s must not be empty", field)
		}
		return nil
	}
}
