package hydration

import (
	"errors"
	"fmt"
)

// NotFoundError signals that a referenced Profile or IntakeEvent does not
// exist. It is the only domain error; everything else propagates unmodified.
type NotFoundError struct {
	Resource string
	ID       int64
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %d not found", e.Resource, e.ID)
}

// IsNotFound reports whether err wraps a NotFoundError.
func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}
