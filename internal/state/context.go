package state

import "context"

type storeContextKey struct{}

// NewContext provisions the store into ctx for downstream consumers.
func NewContext(ctx context.Context, s *Store) context.Context {
	return context.WithValue(ctx, storeContextKey{}, s)
}

// FromContext returns the provisioned store, if any.
func FromContext(ctx context.Context) (*Store, bool) {
	s, ok := ctx.Value(storeContextKey{}).(*Store)
	return s, ok
}

// MustFromContext returns the provisioned store and panics when none
// is present. Reaching for the store outside its provisioning scope is
// a programming error and must surface immediately, not degrade.
func MustFromContext(ctx context.Context) *Store {
	s, ok := FromContext(ctx)
	if !ok {
		panic("state: store accessed outside its provisioning scope")
	}
	return s
}
