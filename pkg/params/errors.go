package params

import (
	"errors"
	"fmt"
)

// ErrNoPath indicates Read or Write without a file configured.
var ErrNoPath = errors.New("no params file configured")

// ErrBadValue indicates a stored value that does not fit the parameter type.
type ErrBadValue struct {
	Name  string
	Value interface{}
}

// Error implements error.
func (e *ErrBadValue) Error() string {
	return fmt.Sprintf("bad value for %s: %v", e.Name, e.Value)
}
