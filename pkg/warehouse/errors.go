package warehouse

import "fmt"

// Error wraps a warehouse failure with the phase it happened in
// (preflight, count, execute).
type Error struct {
	Phase string
	Err   error
}

func (e *Error) Error() string {
	return fmt.Sprintf("warehouse %s: %v", e.Phase, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}
