package servicebindings

import (
	"bytes"
	"sort"
)

// MapBinding returns entries from a fixed in-memory map. Useful for tests and
// statically configured bindings.
type MapBinding struct {
	name    string
	content map[string][]byte
}

var _ Binding = (*MapBinding)(nil)
var _ KeyLister = (*MapBinding)(nil)

// NewMap creates a Binding with the given name and content. The content is
// copied; the binding never observes later mutation of the argument.
func NewMap(name string, content map[string][]byte) *MapBinding {
	m := make(map[string][]byte, len(content))
	for k, v := range content {
		m[k] = bytes.Clone(v)
	}
	return &MapBinding{name: name, content: m}
}

func (b *MapBinding) GetAsBytes(key string) ([]byte, bool) {
	if !IsValidSecretKey(key) {
		return nil, false
	}
	v, ok := b.content[key]
	if !ok {
		return nil, false
	}
	return bytes.Clone(v), true
}

func (b *MapBinding) GetName() string { return b.name }

// Keys returns the valid entry keys of the binding, sorted.
func (b *MapBinding) Keys() []string {
	keys := make([]string, 0, len(b.content))
	for k := range b.content {
		if IsValidSecretKey(k) {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	return keys
}
