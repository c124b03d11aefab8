package servicebindings

import (
	"fmt"

	"github.com/unkn0wn-root/servicebindings/codec"
)

// Decode retrieves the entry at key and decodes it into v using c. Returns
// (false, nil) when the entry is absent and (true, err) when the entry exists
// but cannot be decoded.
func Decode(b Binding, key string, c codec.Codec, v any) (bool, error) {
	raw, ok := b.GetAsBytes(key)
	if !ok {
		return false, nil
	}
	if err := c.Decode(raw, v); err != nil {
		return true, fmt.Errorf("decode entry %q of binding %q: %w", key, b.GetName(), err)
	}
	return true, nil
}
