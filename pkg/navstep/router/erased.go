package router

import (
	"fmt"
	"reflect"
)

// NavigationPath is a type-erased navigation stack. It lets code that does
// not know a stack's element type push and pop screens; the result is
// recovered into the typed stack with Recover.
type NavigationPath struct {
	elements []any
}

// NewNavigationPath creates an erased path holding the given screens.
func NewNavigationPath(screens ...any) (*NavigationPath, error) {
	np := &NavigationPath{}
	for _, screen := range screens {
		if err := np.Append(screen); err != nil {
			return nil, err
		}
	}
	return np, nil
}

// Append pushes a screen. Screens must be non-nil and comparable.
func (np *NavigationPath) Append(screen any) error {
	if screen == nil || !reflect.TypeOf(screen).Comparable() {
		return fmt.Errorf("append %T: %w", screen, ErrNotComparable)
	}
	np.elements = append(np.elements, screen)
	return nil
}

// RemoveLast removes up to k screens from the top.
func (np *NavigationPath) RemoveLast(k int) {
	k = min(max(k, 0), len(np.elements))
	np.elements = np.elements[:len(np.elements)-k]
}

// Count returns the number of screens.
func (np *NavigationPath) Count() int {
	return len(np.elements)
}

// IsEmpty returns true if the path has no screens.
func (np *NavigationPath) IsEmpty() bool {
	return len(np.elements) == 0
}

// Elements returns a copy of the erased screens, root first.
func (np *NavigationPath) Elements() []any {
	return clone(np.elements)
}

// Erase converts a typed stack into its erased form.
func Erase[S comparable](screens []S) []any {
	out := make([]any, len(screens))
	for i, s := range screens {
		out[i] = s
	}
	return out
}

// Recover converts erased screens back into a typed stack. It fails with an
// *ElementTypeError on the first element whose dynamic type is not S.
func Recover[S comparable](elements []any) ([]S, error) {
	out := make([]S, len(elements))
	for i, e := range elements {
		s, ok := e.(S)
		if !ok {
			return nil, &ElementTypeError{
				Index: i,
				Want:  reflect.TypeOf((*S)(nil)).Elem(),
				Got:   reflect.TypeOf(e),
			}
		}
		out[i] = s
	}
	return out, nil
}
