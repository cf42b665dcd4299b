package records

import "errors"

var (
	// ErrDuplicateTemplate reports two print templates sharing an ID.
	ErrDuplicateTemplate = errors.New("records: duplicate print template")
	// ErrDuplicateSelection reports two print selections sharing an ID.
	ErrDuplicateSelection = errors.New("records: duplicate print selection")
	// ErrEmptyDocument reports a file without content.
	ErrEmptyDocument = errors.New("records: empty document")
)
