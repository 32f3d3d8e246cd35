// FILE: lixenwraith/dotenv/errors.go
package dotenv

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingVariable matches any *MissingVariableError via errors.Is.
	ErrMissingVariable = errors.New("missing required variable")

	// ErrSourceNotFound is returned by FileResolver when the file does not exist.
	ErrSourceNotFound = errors.New("configuration source not found")

	// ErrUnsupportedFormat is returned when a file format cannot be determined or parsed.
	ErrUnsupportedFormat = errors.New("unsupported configuration format")

	// ErrUnsupportedSource is returned by Load for sources that are neither a tree nor a reference.
	ErrUnsupportedSource = errors.New("unsupported configuration source")
)

// MissingVariableError reports a required key that resolved to nothing after load.
type MissingVariableError struct {
	Key string
}

func (e *MissingVariableError) Error() string {
	return fmt.Sprintf("dotenv variable '%s' is missing", e.Key)
}

// Is lets errors.Is(err, ErrMissingVariable) match.
func (e *MissingVariableError) Is(target error) bool {
	return target == ErrMissingVariable
}
