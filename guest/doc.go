// Package guest implements the contract side of the host/guest calling
// convention.
//
// A contract does no I/O of its own. The host delivers invocation arguments
// through the imported read_args function and consumes the result through
// the imported return_data function; the exported entrypoint wires one
// Handler between the two. Each invocation is a single synchronous call
// chain with no state carried across invocations.
//
// Contract authors write a Handler and install it with Register during
// module initialization:
//
//	func init() {
//		guest.Register(func(args []byte) abi.Result {
//			return abi.Success(args)
//		})
//	}
//
// The host import surface is an injected capability (HostIO), so the
// entrypoint adapter is unit-testable against an in-process stub without a
// wasm runtime. See the guesttest package.
package guest
