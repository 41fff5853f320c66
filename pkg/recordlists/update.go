package recordlists

import (
	"fmt"

	"github.com/matforge/recordlists-go/pkg/serverapi"
)

// Nullable carries a tri-state update value: not provided, explicitly null,
// or set to a value. The zero Nullable means "not provided" so callers can
// list only the fields they want to change.
type Nullable[T any] struct {
	value    T
	provided bool
	null     bool
}

// Set returns a Nullable carrying v.
func Set[T any](v T) Nullable[T] {
	return Nullable[T]{value: v, provided: true}
}

// Null returns a Nullable that clears the target field on the server.
func Null[T any]() Nullable[T] {
	return Nullable[T]{provided: true, null: true}
}

// IsProvided reports whether the value was given at all, as a value or as
// an explicit null.
func (n Nullable[T]) IsProvided() bool { return n.provided }

// IsNull reports whether the value is an explicit null.
func (n Nullable[T]) IsNull() bool { return n.null }

// Value returns the carried value. The second return is false when the
// Nullable is unprovided or null.
func (n Nullable[T]) Value() (T, bool) {
	if !n.provided || n.null {
		var zero T
		return zero, false
	}
	return n.value, true
}

// UpdateListProperties describes a partial update of a record list. Fields
// left at their zero value are not touched on the server.
type UpdateListProperties struct {
	// Name is the new list name. It can be replaced but never cleared.
	Name Nullable[string]

	Description Nullable[string]
	Notes       Nullable[string]
}

// Validate checks that the update describes at least one change and does
// not null out a required field.
func (p UpdateListProperties) Validate() error {
	if !p.Name.IsProvided() && !p.Description.IsProvided() && !p.Notes.IsProvided() {
		return fmt.Errorf("at least one property must be provided")
	}
	if p.Name.IsNull() {
		return fmt.Errorf("if provided, name cannot be null")
	}
	return nil
}

// patchOperations maps the provided fields to replace operations. Explicit
// nulls become replace operations with a null value.
func (p UpdateListProperties) patchOperations() []serverapi.PatchOperation {
	var ops []serverapi.PatchOperation
	for _, field := range []struct {
		path  string
		value Nullable[string]
	}{
		{"/name", p.Name},
		{"/description", p.Description},
		{"/notes", p.Notes},
	} {
		if !field.value.IsProvided() {
			continue
		}
		op := serverapi.PatchOperation{Op: "replace", Path: field.path}
		if v, ok := field.value.Value(); ok {
			op.Value = v
		}
		ops = append(ops, op)
	}
	return ops
}
