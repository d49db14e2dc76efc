package schema

import (
	"errors"
	"fmt"
)

// ErrNoMatchingRule is returned when no schema rule accepts the dataset.
// The dataset is rejected outright; nothing is persisted.
var ErrNoMatchingRule = errors.New("no schema rule matches the dataset")

// InvalidStructureError reports a malformed document: wrong top-level
// types, a non-object data element, or a record without a category.
// Index is the offending record index, or -1 for top-level problems.
type InvalidStructureError struct {
	Index  int
	Reason string
}

func (e *InvalidStructureError) Error() string {
	if e.Index < 0 {
		return fmt.Sprintf("invalid structure: %s", e.Reason)
	}
	return fmt.Sprintf("invalid structure at record %d: %s", e.Index, e.Reason)
}

// structErr builds an InvalidStructureError for record index i.
func structErr(i int, format string, args ...any) error {
	return &InvalidStructureError{Index: i, Reason: fmt.Sprintf(format, args...)}
}
