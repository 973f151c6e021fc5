package models

import "encoding/json"

// Optional distinguishes an absent JSON field from an explicit null. A plain
// pointer cannot represent "clear this value": several update fields (the
// driver banking details) accept null to erase the stored value, while
// omitting the key leaves it untouched.
type Optional[T any] struct {
	Set   bool
	Value *T
}

func (o *Optional[T]) UnmarshalJSON(data []byte) error {
	o.Set = true
	if string(data) == "null" {
		o.Value = nil
		return nil
	}
	return json.Unmarshal(data, &o.Value)
}

func (o Optional[T]) MarshalJSON() ([]byte, error) {
	if o.Value == nil {
		return []byte("null"), nil
	}
	return json.Marshal(o.Value)
}

// NewOptional builds a set Optional holding v.
func NewOptional[T any](v T) Optional[T] {
	return Optional[T]{Set: true, Value: &v}
}

// NullOptional builds a set Optional holding an explicit null.
func NullOptional[T any]() Optional[T] {
	return Optional[T]{Set: true}
}
