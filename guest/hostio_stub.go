//go:build !wasip1

package guest

// forwardIO stub for native builds.
type forwardIO struct{}

// ReadArgs panics because the forward host imports only resolve inside a
// wasm instance. Native tests inject a stub HostIO instead (see guesttest).
func (forwardIO) ReadArgs(buf []byte) {
	panic("guest: forward host imports are only available in wasip1 builds")
}

// ReturnData panics for the same reason as ReadArgs.
func (forwardIO) ReturnData(data []byte) {
	panic("guest: forward host imports are only available in wasip1 builds")
}
