package xlist

// SetAllocNodeHook installs ok as the node allocation outcome for Insert and
// returns a func restoring the previous hook. Test-only.
func SetAllocNodeHook(ok func() bool) (restore func()) {
	old := allocNodeHook
	allocNodeHook = ok

	return func() {
		allocNodeHook = old
	}
}
