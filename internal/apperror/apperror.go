package apperror

import "fmt"

// DataAccessError wraps a failed store round trip with the entity and
// operation it belonged to. Not-found is never a DataAccessError; the
// repositories signal it with a nil record instead.
type DataAccessError struct {
	Entity string // entity name, e.g. "aircraft"
	Op     string // "list" or "get"
	ID     int    // subject id for get operations, 0 otherwise
	Err    error  // underlying store error
}

func (e *DataAccessError) Error() string {
	if e.Op == "get" {
		return fmt.Sprintf("fetching %s with ID %d: %v", e.Entity, e.ID, e.Err)
	}
	return fmt.Sprintf("fetching %s: %v", e.Entity, e.Err)
}

func (e *DataAccessError) Unwrap() error {
	return e.Err
}

// List wraps a store error from a list operation
func List(entity string, err error) *DataAccessError {
	return &DataAccessError{Entity: entity, Op: "list", Err: err}
}

// Get wraps a store error from a get-by-id operation
func Get(entity string, id int, err error) *DataAccessError {
	return &DataAccessError{Entity: entity, Op: "get", ID: id, Err: err}
}
