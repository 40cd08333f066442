package option

import (
	"bytes"

	json "github.com/goccy/go-json"
)

var jsonNull = []byte("null")

// MarshalJSON encodes None as null and Some as its payload.
func (o Option[T]) MarshalJSON() ([]byte, error) {
	if !o.some {
		return jsonNull, nil
	}
	return json.Marshal(o.value)
}

// UnmarshalJSON decodes null as None. It is the only operation that writes to
// an existing Option and is meant for decoders only.
func (o *Option[T]) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), jsonNull) {
		*o = None[T]()
		return nil
	}

	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*o = Of(v)
	return nil
}
