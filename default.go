package origin

import "sync/atomic"

var defaultResolver atomic.Pointer[Resolver]

func init() {
	defaultResolver.Store(MustResolver())
}

// Default returns the process-wide resolver used by ResolveAdminOrigin.
func Default() *Resolver {
	return defaultResolver.Load()
}

// ResolveAdminOrigin resolves loc against the process-wide resolver, whose
// cache cell lives for the lifetime of the process.
func ResolveAdminOrigin(loc Location) string {
	return Default().ResolveAdminOrigin(loc)
}
