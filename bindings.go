package servicebindings

import (
	"os"
	"path/filepath"
	"strings"
)

// Root is the environment variable holding the directory all bindings for a
// workload are projected under.
const Root = "SERVICE_BINDING_ROOT"

// Cached wraps each Binding in a CacheBinding, preserving order.
func Cached(bindings []Binding, opts ...Option) []Binding {
	out := make([]Binding, len(bindings))
	for i, b := range bindings {
		out[i] = NewCached(b, opts...)
	}
	return out
}

// From creates a collection of Bindings from the direct subdirectories of
// root. Each child directory becomes a ConfigTreeBinding rooted at that
// child, so its entries resolve against the projected files. If root does not
// exist, is not a directory, or cannot be read, an empty collection is
// returned. Non-directory children are skipped.
//
// Order follows directory enumeration order and is not guaranteed sorted.
func From(root string, opts ...Option) []Binding {
	fi, err := os.Stat(root)
	if err != nil || !fi.IsDir() {
		return nil
	}

	entries, err := os.ReadDir(root)
	if err != nil {
		return nil
	}

	var bindings []Binding
	for _, e := range entries {
		p := filepath.Join(root, e.Name())
		fi, err := os.Stat(p) // follow symlinked binding directories
		if err != nil || !fi.IsDir() {
			continue
		}
		bindings = append(bindings, NewConfigTree(p, opts...))
	}
	return bindings
}

// FromServiceBindingRoot creates Bindings from the directory named by
// $SERVICE_BINDING_ROOT. If the variable is not set, an empty collection is
// returned.
func FromServiceBindingRoot(opts ...Option) []Binding {
	root, ok := os.LookupEnv(Root)
	if !ok {
		return nil
	}
	return From(root, opts...)
}

// Find returns the first Binding with the given name. Comparison is
// case-insensitive.
func Find(bindings []Binding, name string) (Binding, bool) {
	for _, b := range bindings {
		if strings.EqualFold(b.GetName(), name) {
			return b, true
		}
	}
	return nil, false
}

// FilterWithProvider returns the Bindings matching the given type and
// provider. An empty bindingType or provider imposes no constraint on that
// attribute; both constraints combine with AND. Comparisons are
// case-insensitive and relative order is preserved.
//
// A binding that declares no type never matches a type constraint; the
// InvalidBindingError is treated as "does not match", not propagated.
func FilterWithProvider(bindings []Binding, bindingType, provider string) []Binding {
	var out []Binding
	for _, b := range bindings {
		if bindingType != "" {
			t, err := GetType(b)
			if err != nil || !strings.EqualFold(t, bindingType) {
				continue
			}
		}
		if provider != "" {
			p, ok := GetProvider(b)
			if !ok || !strings.EqualFold(p, provider) {
				continue
			}
		}
		out = append(out, b)
	}
	return out
}

// Filter returns the Bindings with the given type. Equivalent to
// FilterWithProvider with no provider constraint.
func Filter(bindings []Binding, bindingType string) []Binding {
	return FilterWithProvider(bindings, bindingType, "")
}
