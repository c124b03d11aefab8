package servicebindings

import (
	"bytes"
	"context"

	"github.com/unkn0wn-root/servicebindings/store"
)

// CacheBinding memoizes entries retrieved from a delegate Binding. Found
// values are cached; misses are not, so a lookup for a permanently absent key
// always reaches the delegate.
//
// The backing store defaults to an in-process store.Memory, which is safe for
// concurrent callers. Under contention two callers may both reach the
// delegate for the same key; the duplicate read is benign because binding
// values are stable for a workload's lifetime. Store failures downgrade to a
// miss and the delegate stays the source of truth.
type CacheBinding struct {
	delegate Binding
	store    store.Store
	log      Logger
}

var _ Binding = (*CacheBinding)(nil)
var _ KeyLister = (*CacheBinding)(nil)

// NewCached creates a CacheBinding around delegate. The wrapper owns its
// store for its own lifetime; use WithStore to share an external one.
func NewCached(delegate Binding, opts ...Option) *CacheBinding {
	o := applyOptions(opts)
	s := o.store
	if s == nil {
		s = store.NewMemory()
	}
	return &CacheBinding{delegate: delegate, store: s, log: o.logger}
}

func (b *CacheBinding) GetAsBytes(key string) ([]byte, bool) {
	// Entry lookups carry no caller context; binding reads are local,
	// startup-time IO.
	ctx := context.Background()

	raw, ok, err := b.store.Get(ctx, key)
	if err != nil {
		b.log.Warn("cache store get failed", Fields{"binding": b.delegate.GetName(), "key": key, "error": err})
	} else if ok {
		return bytes.Clone(raw), true
	}

	raw, ok = b.delegate.GetAsBytes(key)
	if !ok {
		return nil, false
	}
	if err := b.store.Set(ctx, key, raw); err != nil {
		b.log.Warn("cache store set failed", Fields{"binding": b.delegate.GetName(), "key": key, "error": err})
	}
	return bytes.Clone(raw), true
}

// GetName always delegates; names are cheap and stable.
func (b *CacheBinding) GetName() string { return b.delegate.GetName() }

// Keys forwards to the delegate when it supports enumeration.
func (b *CacheBinding) Keys() []string {
	if kl, ok := b.delegate.(KeyLister); ok {
		return kl.Keys()
	}
	return nil
}
