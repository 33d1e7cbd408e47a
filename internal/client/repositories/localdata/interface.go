// Package localdata persists small client-side values, such as the bearer
// credential, across process restarts. It is the terminal-app analog of
// browser local storage: a string-keyed table of opaque values.
package localdata

import "context"

type Repository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	Clear(ctx context.Context) error
}
