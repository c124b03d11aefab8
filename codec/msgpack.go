package codec

import "github.com/vmihailenco/msgpack/v5"

// Msgpack decodes entries encoded with vmihailenco/msgpack/v5. The zero value
// is ready to use.
//
// Msgpack is compact and fast; be mindful of struct tag differences vs JSON.
// Use `msgpack:"fieldName"` tags if you need explicit control.
type Msgpack struct{}

func (Msgpack) Decode(data []byte, v any) error {
	return msgpack.Unmarshal(data, v)
}
