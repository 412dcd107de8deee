package models

import "fmt"

// InvalidQuantityError reports a quantity that is, or would become, negative.
type InvalidQuantityError struct {
	Value int
}

func (e InvalidQuantityError) Error() string {
	return fmt.Sprintf("Invalid quantity: %d", e.Value)
}

// InvalidTextError reports a blank value offered to a validated text field.
type InvalidTextError struct {
	Field string
	Value string
}

func (e InvalidTextError) Error() string {
	return fmt.Sprintf("Invalid %s: %s", e.Field, e.Value)
}

// InvalidBusinessIdentifierError reports a blank business identifier.
type InvalidBusinessIdentifierError struct {
	Value string
}

func (e InvalidBusinessIdentifierError) Error() string {
	return "Invalid business identifier: " + e.Value
}

// InvalidPermissionError reports a permission name outside the closed set.
type InvalidPermissionError struct {
	Name string
}

func (e InvalidPermissionError) Error() string {
	return "Invalid permission name: " + e.Name
}

// InvalidDocumentError wraps the validation failure that prevented a JSON
// document from being converted into an entity.
type InvalidDocumentError struct {
	Concept string
	Err     error
}

func (e InvalidDocumentError) Error() string {
	return fmt.Sprintf("invalid representation of %s on JSON: %v", e.Concept, e.Err)
}

func (e InvalidDocumentError) Unwrap() error {
	return e.Err
}
