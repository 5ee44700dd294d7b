package router

import (
	"errors"
	"fmt"
	"reflect"
)

// ErrNotComparable is returned when a value that cannot be compared for
// equality is added to a NavigationPath.
var ErrNotComparable = errors.New("router: screen value is not comparable")

// ElementTypeError reports a type-erased screen that does not belong to the
// stack it is being written to.
type ElementTypeError struct {
	Index int          // Position of the offending element
	Want  reflect.Type // Element type of the typed stack
	Got   reflect.Type // Dynamic type found; nil for a nil element
}

func (e *ElementTypeError) Error() string {
	got := "<nil>"
	if e.Got != nil {
		got = e.Got.String()
	}
	return fmt.Sprintf("router: cannot add %s to stack of %s (index %d)", got, e.Want, e.Index)
}

// IsElementTypeError checks if an error is an ElementTypeError.
func IsElementTypeError(err error) bool {
	var typeErr *ElementTypeError
	return errors.As(err, &typeErr)
}
