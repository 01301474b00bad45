package port

import "encoding/json"

// Optional distinguishes a field that was omitted from one that was sent,
// including one sent as null. Present is only set when the key appears.
type Optional[T any] struct {
	Present bool
	Value   T
}

// Some returns a present optional holding v.
func Some[T any](v T) Optional[T] {
	return Optional[T]{Present: true, Value: v}
}

// UnmarshalJSON is only invoked for keys present in the document.
func (o *Optional[T]) UnmarshalJSON(data []byte) error {
	o.Present = true
	return json.Unmarshal(data, &o.Value)
}
