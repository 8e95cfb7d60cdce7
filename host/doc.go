// Package host provides the runtime environment for executing contract
// guest modules.
//
// It abstracts the underlying wasm engine (wazero), manages contract
// lifecycle, and implements the host side of the calling convention: the
// forward module's read_args and return_data functions, argument staging,
// and result collection. Per-invocation staging travels in the
// context.Context so the host functions can locate the invocation they
// belong to.
package host
