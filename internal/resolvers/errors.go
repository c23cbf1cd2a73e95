package resolvers

import (
	"github.com/pkg/errors"

	"github.com/prakasham-tecinyaw/serverless-api/internal/store"
)

// CodeNotFound is reported in the error extensions of a missing record.
const CodeNotFound = "NOT_FOUND"

// NotFoundError is returned when an update or delete targets a record that
// does not exist. The engine reports it as a field error and nulls the field.
type NotFoundError struct {
	// Kind is the record type, "Product" or "Seller".
	Kind string
	err  error
}

func (e *NotFoundError) Error() string { return e.Kind + " not found" }

func (e *NotFoundError) Unwrap() error { return e.err }

// Extensions implements gqlerrors.ExtendedError.
func (e *NotFoundError) Extensions() map[string]interface{} {
	return map[string]interface{}{"code": CodeNotFound}
}

func translate(kind string, err error) error {
	if errors.Is(err, store.ErrNotFound) {
		return &NotFoundError{Kind: kind, err: err}
	}
	return errors.Wrapf(err, "%s mutation", kind)
}
