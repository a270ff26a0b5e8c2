package apply

import "fmt"

// RenameError is a primary-path rejection. It is recovered locally by
// trying the structural fallback.
type RenameError struct {
	ID     string
	Target string
	Err    error
}

func (e *RenameError) Error() string {
	return fmt.Sprintf("rename %s -> %s: %v", e.ID, e.Target, e.Err)
}

func (e *RenameError) Unwrap() error { return e.Err }

// RenameFallbackError means both paths rejected the rename. It is recorded
// in the run result, never raised.
type RenameFallbackError struct {
	ID       string
	Target   string
	Primary  error
	Fallback error
}

func (e *RenameFallbackError) Error() string {
	return fmt.Sprintf("rename %s -> %s: primary: %v; fallback: %v", e.ID, e.Target, e.Primary, e.Fallback)
}

// Unwrap exposes both causes to errors.Is and errors.As.
func (e *RenameFallbackError) Unwrap() []error { return []error{e.Primary, e.Fallback} }
