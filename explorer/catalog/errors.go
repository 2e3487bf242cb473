package catalog

import (
	"errors"
	"fmt"
)

// Kind tells which catalog identifier could not be resolved
type Kind int

const (
	KindFamily Kind = iota
	KindVariant
	KindParameter
)

func (k Kind) String() string {
	switch k {
	case KindFamily:
		return "function"
	case KindVariant:
		return "variant"
	case KindParameter:
		return "parameter"
	default:
		return "unknown"
	}
}

// NotFoundError is returned when an identifier is absent from the static catalog.
// Catalog ids are known at build time, so callers holding a literal id should
// treat it as a programming error (see Catalog.MustGet).
type NotFoundError struct {
	Kind   Kind
	ID     string
	Family string // owning family for variant and parameter lookups
}

func (e *NotFoundError) Error() string {
	if e.Family != "" {
		return fmt.Sprintf("%s %q not found in function %q", e.Kind, e.ID, e.Family)
	}
	return fmt.Sprintf("%s %q not found", e.Kind, e.ID)
}

// IsNotFound reports whether any error in err's chain is a NotFoundError
func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}
