// Package codec provides decoders for structured binding entries.
//
// Binding entries are plain text by convention, but an entry may hold a
// structured document: a JSON connection spec, a CBOR-encoded certificate
// bundle, a serialized protobuf message. A Codec decodes such an entry into a
// Go value. Bindings are read-only, so there is no encode side.
package codec

// Codec decodes a raw binding entry into v.
type Codec interface {
	Decode(data []byte, v any) error
}
