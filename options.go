package servicebindings

import "github.com/unkn0wn-root/servicebindings/store"

type options struct {
	logger Logger
	store  store.Store
}

// Option tunes optional behavior of a Binding constructor.
type Option func(*options)

// WithLogger sets the Logger used for diagnostics (swallowed IO errors,
// cache store failures). A nil Logger leaves logging disabled.
func WithLogger(l Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithStore sets the byte store backing a CacheBinding. Constructors that do
// not cache ignore it. If unset, an in-process store.Memory is used.
func WithStore(s store.Store) Option {
	return func(o *options) { o.store = s }
}

func applyOptions(opts []Option) options {
	o := options{logger: NopLogger{}}
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}
	return o
}
