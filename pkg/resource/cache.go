package resource

import "context"

// Cache stores raw response bodies of reads so that several stores of the
// same resource can share them. Transports invalidate every key of their
// resource after a successful mutation. A read that overlaps a mutation of
// the same Client is not cached. Mutations made through other clients of a
// shared backend are only seen once the TTL of the cached body expires.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte) error
	Invalidate(ctx context.Context, prefix string) error
}
