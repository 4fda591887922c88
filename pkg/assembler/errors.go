package assembler

import "fmt"

// SlotNotFoundError indicates the effective tree has no template for a slot.
type SlotNotFoundError struct {
	Slot string
}

func (e *SlotNotFoundError) Error() string {
	return fmt.Sprintf("slot not found: %s", e.Slot)
}

// RenderError indicates slot rendering failed: bad template, missing
// variable, or a required provider failure.
type RenderError struct {
	Slot string
	Err  error
}

func (e *RenderError) Error() string {
	return fmt.Sprintf("failed to render slot %s: %v", e.Slot, e.Err)
}

func (e *RenderError) Unwrap() error {
	return e.Err
}
