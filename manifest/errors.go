package manifest

import (
	"errors"
	"fmt"
)

// ErrProjectNotFound indicates the requested project path has no
// directory under the locator root.
var ErrProjectNotFound = errors.New("project not found")

// ParseError describes an invalid manifest with position information.
type ParseError struct {
	File    string
	Line    int
	Message string
	Err     error
}

func (e *ParseError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("%s:%d: %s", e.File, e.Line, e.Message)
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.File, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.File, e.Message)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
