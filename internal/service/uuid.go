package service

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// ErrInvalidID indicates a path identifier is not a well-formed UUID
var ErrInvalidID = errors.New("invalid id format")

// ValidateRecordID checks a record identifier before it reaches the store,
// so malformed ids fail fast as client errors instead of upstream queries.
func ValidateRecordID(id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidID, err)
	}
	return nil
}
