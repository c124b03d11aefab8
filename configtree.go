package servicebindings

import (
	"os"
	"path/filepath"
	"sort"
)

// ConfigTreeBinding reads entries from a volume mounted Kubernetes Secret
// (https://kubernetes.io/docs/concepts/configuration/secret/#using-secrets):
// each regular file under the root is an entry, the file name is the key and
// the file contents are the value. Kubernetes projects entries as symlinks
// into a data directory, so lookups follow symlinks.
type ConfigTreeBinding struct {
	root string
	name string
	log  Logger
}

var _ Binding = (*ConfigTreeBinding)(nil)
var _ KeyLister = (*ConfigTreeBinding)(nil)

// NewConfigTree creates a Binding backed by the directory tree at root. The
// binding's name is the final element of root, computed once.
func NewConfigTree(root string, opts ...Option) *ConfigTreeBinding {
	o := applyOptions(opts)
	return &ConfigTreeBinding{
		root: root,
		name: filepath.Base(root),
		log:  o.logger,
	}
}

func (b *ConfigTreeBinding) GetAsBytes(key string) ([]byte, bool) {
	if !IsValidSecretKey(key) {
		return nil, false
	}

	p := filepath.Join(b.root, key)
	fi, err := os.Stat(p)
	if err != nil || !fi.Mode().IsRegular() {
		return nil, false
	}

	raw, err := os.ReadFile(p)
	if err != nil {
		// Read failures collapse to "no value" at this layer.
		b.log.Debug("binding entry unreadable", Fields{"binding": b.name, "key": key, "error": err})
		return nil, false
	}
	return raw, true
}

func (b *ConfigTreeBinding) GetName() string { return b.name }

// Keys lists the valid entry keys currently projected under the root.
func (b *ConfigTreeBinding) Keys() []string {
	entries, err := os.ReadDir(b.root)
	if err != nil {
		return nil
	}

	var keys []string
	for _, e := range entries {
		if !IsValidSecretKey(e.Name()) {
			continue
		}
		fi, err := os.Stat(filepath.Join(b.root, e.Name()))
		if err != nil || !fi.Mode().IsRegular() {
			continue
		}
		keys = append(keys, e.Name())
	}
	sort.Strings(keys)
	return keys
}
