package ludeme

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrIllegalParameters is wrapped by every ConstructionError.
	ErrIllegalParameters = errors.New("illegal parameters")
	// ErrMisuse is wrapped by every MisuseError.
	ErrMisuse = errors.New("internal misuse")
)

// ConstructionError is returned by a constructor given a parameter
// combination that cannot describe a rule. The game cannot be compiled.
type ConstructionError struct {
	Ludeme string
	Reason string
}

func (e *ConstructionError) Error() string {
	return fmt.Sprintf("%s: %s: %s", e.Ludeme, ErrIllegalParameters, e.Reason)
}

func (e *ConstructionError) Unwrap() error {
	return ErrIllegalParameters
}

func Illegal(ludeme, format string, args ...any) error {
	return &ConstructionError{Ludeme: ludeme, Reason: fmt.Sprintf(format, args...)}
}

// MisuseError means the engine or its caller did something that can never
// be right, such as evaluating a dispatcher node. It is raised with panic.
type MisuseError struct {
	Node string
	Op   string
}

func (e *MisuseError) Error() string {
	return fmt.Sprintf("%s: %s on %s", ErrMisuse, e.Op, e.Node)
}

func (e *MisuseError) Unwrap() error {
	return ErrMisuse
}

// Misuse panics with a MisuseError for op on n.
func Misuse(n Ludeme, op string) {
	panic(&MisuseError{Node: Name(n), Op: op})
}

// Param is one optional constructor argument: its name and whether it was
// supplied.
type Param struct {
	Name string
	Set  bool
}

func P(name string, set bool) Param {
	return Param{Name: name, Set: set}
}

func countSet(ps []Param) (int, []string) {
	n := 0
	names := make([]string, len(ps))
	for i, p := range ps {
		names[i] = p.Name
		if p.Set {
			n++
		}
	}
	return n, names
}

// ExactlyOne fails unless exactly one of ps is set.
func ExactlyOne(ludeme string, ps ...Param) error {
	n, names := countSet(ps)
	if n != 1 {
		return Illegal(ludeme, "exactly one of {%s} must be given, got %d", strings.Join(names, ", "), n)
	}
	return nil
}

// AtMostOne fails if more than one of ps is set.
func AtMostOne(ludeme string, ps ...Param) error {
	n, names := countSet(ps)
	if n > 1 {
		return Illegal(ludeme, "at most one of {%s} may be given, got %d", strings.Join(names, ", "), n)
	}
	return nil
}

// Required fails if p is not set.
func Required(ludeme string, p Param) error {
	if !p.Set {
		return Illegal(ludeme, "%s is required", p.Name)
	}
	return nil
}

// FirstError returns the first non-nil error, so validations can be
// chained.
func FirstError(errs ...error) error {
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}
