package servicebindings

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

const (
	// Provider is the key for the provider of a Binding. Optional.
	Provider = "provider"

	// Type is the key for the type of a Binding. Every binding must declare one.
	Type = "type"
)

// InvalidBindingError reports a binding that violates the workload
// projection, e.g. one that declares no type.
type InvalidBindingError struct {
	Message string
}

func (e *InvalidBindingError) Error() string { return e.Message }

// Binding is a single projected binding: a named set of entries keyed by
// valid secret keys.
//
// Implementations never report errors from entry lookups. A missing entry, an
// invalid key, or an unreadable backing store all resolve to "absent"; the
// second return value is the sole failure signal at this layer.
type Binding interface {
	// GetAsBytes returns the raw contents of the entry at key, or
	// (nil, false) if the entry does not exist.
	GetAsBytes(key string) ([]byte, bool)

	// GetName returns the name of the binding. Stable for the binding's
	// lifetime.
	GetName() string
}

// KeyLister is an optional capability of Bindings whose entries can be
// enumerated. ConfigTreeBinding and MapBinding implement it; CacheBinding
// forwards to its delegate.
type KeyLister interface {
	// Keys returns the valid entry keys the binding currently holds, sorted.
	Keys() []string
}

// Get returns the contents of the entry at key as a UTF-8 string with
// surrounding whitespace trimmed, or ("", false) if the entry does not exist.
//
// Binding entries are text by contract. An entry that is not valid UTF-8 is
// corrupt data, not a miss, and Get panics rather than masking it as absent.
func Get(b Binding, key string) (string, bool) {
	raw, ok := b.GetAsBytes(key)
	if !ok {
		return "", false
	}
	if !utf8.Valid(raw) {
		panic(fmt.Sprintf("servicebindings: entry %q of binding %q is not valid UTF-8", key, b.GetName()))
	}
	return strings.TrimSpace(string(raw)), true
}

// GetProvider returns the value of the Provider entry if it exists.
func GetProvider(b Binding) (string, bool) {
	return Get(b, Provider)
}

// GetType returns the value of the Type entry. A binding without one is
// invalid and yields an *InvalidBindingError. This is the only lookup that
// treats absence as a hard error.
func GetType(b Binding) (string, error) {
	t, ok := Get(b, Type)
	if !ok {
		return "", &InvalidBindingError{Message: "binding does not contain a type"}
	}
	return t, nil
}
