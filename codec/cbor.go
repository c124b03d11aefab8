package codec

import (
	"github.com/fxamacker/cbor/v2"
)

// CBOR decodes entries encoded with fxamacker/cbor.
// The zero value is NOT ready to use. Construct with NewCBOR or MustCBOR.
type CBOR struct {
	dec cbor.DecMode
}

var _ Codec = CBOR{}

// NewCBOR constructs a CBOR codec with default decode options.
func NewCBOR() (CBOR, error) {
	dm, err := (cbor.DecOptions{}).DecMode()
	if err != nil {
		return CBOR{}, err
	}
	return CBOR{dec: dm}, nil
}

// MustCBOR is like NewCBOR but panics on error.
// Should not use for prod just handy for package-level variables in tests/examples.
func MustCBOR() CBOR {
	c, err := NewCBOR()
	if err != nil {
		panic(err)
	}
	return c
}

// Decode decodes data into v using the configured DecMode.
func (c CBOR) Decode(data []byte, v any) error {
	return c.dec.Unmarshal(data, v)
}
