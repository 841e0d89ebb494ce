package models

import "encoding/json"

// Optional is a field that can be unset, explicitly null, or hold a value.
// The zero value is unset.
type Optional[T any] struct {
	set   bool
	null  bool
	value T
}

// Some returns an Optional holding v.
func Some[T any](v T) Optional[T] {
	return Optional[T]{set: true, value: v}
}

// Null returns an Optional that was explicitly set to null.
func Null[T any]() Optional[T] {
	return Optional[T]{set: true, null: true}
}

// IsSet reports whether the field was present, null or not.
func (o Optional[T]) IsSet() bool { return o.set }

// IsNull reports whether the field was present and null.
func (o Optional[T]) IsNull() bool { return o.set && o.null }

// Get returns the value and true when the field holds a value.
func (o Optional[T]) Get() (T, bool) {
	if !o.set || o.null {
		var zero T
		return zero, false
	}
	return o.value, true
}

// Ptr returns a pointer to the value, or nil when unset or null.
func (o Optional[T]) Ptr() *T {
	if v, ok := o.Get(); ok {
		return &v
	}
	return nil
}

// validationValue exposes the value to the validator; unset and null are skipped by omitempty.
func (o Optional[T]) validationValue() any {
	return o.Ptr()
}

// UnmarshalJSON is only called for keys present in the document, which is what
// separates unset from null.
func (o *Optional[T]) UnmarshalJSON(data []byte) error {
	var zero T
	o.set = true
	o.value = zero
	if string(data) == "null" {
		o.null = true
		return nil
	}
	o.null = false
	return json.Unmarshal(data, &o.value)
}

// MarshalJSON writes null for unset and null fields.
func (o Optional[T]) MarshalJSON() ([]byte, error) {
	if v, ok := o.Get(); ok {
		return json.Marshal(v)
	}
	return []byte("null"), nil
}

// OptionalValue is implemented by every Optional instantiation.
type OptionalValue interface {
	IsSet() bool
	IsNull() bool
	validationValue() any
}

// ValidationValue returns what the validator should see for an optional field.
func ValidationValue(o OptionalValue) any {
	return o.validationValue()
}
