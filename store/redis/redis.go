package redis

import (
	"context"
	"errors"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/unkn0wn-root/servicebindings/store"
)

var ErrNilClient = errors.New("redis store: nil client")

// Redis keeps cached binding entries in a shared Redis tier, useful when many
// replicas resolve the same projected bindings. The binding source itself
// stays the local file tree; Redis only memoizes reads.
type Redis struct {
	rdb         goredis.UniversalClient
	ttl         time.Duration
	closeClient bool
}

var _ store.Store = (*Redis)(nil)

type Config struct {
	Client      goredis.UniversalClient
	TTL         time.Duration // per-entry expiry; 0 => no expiry
	CloseClient bool          // set true only if this store exclusively owns the client
}

func New(cfg Config) (*Redis, error) {
	if cfg.Client == nil {
		return nil, ErrNilClient
	}
	ttl := cfg.TTL
	if ttl < 0 {
		ttl = 0
	}
	return &Redis{rdb: cfg.Client, ttl: ttl, closeClient: cfg.CloseClient}, nil
}

func (s *Redis) Get(ctx context.Context, key string) ([]byte, bool, error) {
	b, err := s.rdb.Get(ctx, key).Bytes()
	if err == goredis.Nil {
		return nil, false, nil // miss
	}
	if err != nil {
		return nil, false, err // transport/server error
	}
	return b, true, nil
}

func (s *Redis) Set(ctx context.Context, key string, value []byte) error {
	return s.rdb.Set(ctx, key, value, s.ttl).Err()
}

// Close releases the underlying redis client only when this store owns it.
// Safe to call multiple times; repeated calls become no-ops.
func (s *Redis) Close(context.Context) error {
	if s.closeClient {
		if err := s.rdb.Close(); err != nil && !errors.Is(err, goredis.ErrClosed) {
			return err
		}
	}
	return nil
}
