package ports

import "context"

// KV is the minimal key/value port all persistence goes through. Values are
// serialized text under named keys, mirroring the origin-scoped key/value
// store the application was designed around; a networked backend satisfies
// the same port.
type KV interface {
	// Get returns the stored value for key. ok is false when the key is absent.
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
	Close() error
}
