package origin

// SwapDefaultForTest installs r as the process-wide resolver and returns a
// function restoring the previous one.
func SwapDefaultForTest(r *Resolver) (restore func()) {
	previous := defaultResolver.Swap(r)
	return func() {
		defaultResolver.Store(previous)
	}
}
