package codec

import "fmt"

// Limit wraps another codec to enforce a maximum allowed payload size at
// Decode time. If MaxDecode <= 0, size limiting is disabled.
//
// Typical use: protect against oversized entries projected by a
// misconfigured or untrusted source.
type Limit struct {
	// Inner is the underlying codec being wrapped. It must be set.
	Inner Codec
	// MaxDecode is the maximum permitted length (in bytes) of the incoming
	// payload. If the payload exceeds MaxDecode, Decode returns an error
	// without invoking Inner.
	MaxDecode int
}

func (c Limit) Decode(data []byte, v any) error {
	if c.MaxDecode > 0 && len(data) > c.MaxDecode {
		return fmt.Errorf("payload too large: %d > %d", len(data), c.MaxDecode)
	}
	return c.Inner.Decode(data, v)
}
