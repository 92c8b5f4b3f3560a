package window

import (
	"errors"
	"fmt"
)

// ErrDuplicateWindow indicates a window with the same id is already registered.
var ErrDuplicateWindow = errors.New("window already registered")

// ToolkitError reports a failed host toolkit call.
type ToolkitError struct {
	Op  string
	Err error
}

func (err *ToolkitError) Error() string {
	return fmt.Sprintf("host toolkit: %s: %v", err.Op, err.Err)
}

func (err *ToolkitError) Unwrap() error {
	return err.Err
}

// WrapToolkit wraps err as a ToolkitError. It returns nil when err is nil.
func WrapToolkit(op string, err error) error {
	if err == nil {
		return nil
	}
	var toolkitErr *ToolkitError
	if errors.As(err, &toolkitErr) {
		return err
	}
	return &ToolkitError{Op: op, Err: err}
}
