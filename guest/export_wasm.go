//go:build wasip1

package guest

// contract_main is the fixed-symbol export the host locates to run one
// invocation (abi.EntrypointSymbol). It adapts the registered handler to
// the host calling convention; everything it allocates lives and dies
// within this one call.
//
//go:wasmexport contract_main
//nolint:revive // intentional snake_case to match the wasm export name
func contract_main(argsLen uint32) uint32 {
	if registered == nil {
		panic("guest: no handler registered")
	}
	return NewEntrypoint(forwardIO{}, registered).Invoke(argsLen)
}
