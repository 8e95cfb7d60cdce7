package host

import (
	"context"
	"fmt"

	"github.com/tetratelabs/wazero/api"

	"github.com/0glabs/nitro/abi"
)

// registerForwardModule instantiates the host module contract guests import
// their I/O from. Both functions resolve the current invocation from ctx.
//
// Neither function has a guest-visible failure path: a call made outside an
// invocation, a repeated call, or an out-of-bounds pointer panics, which
// wazero turns into a trap that fails the whole guest call.
func (e *Executor) registerForwardModule(ctx context.Context) error {
	builder := e.runtime.NewHostModuleBuilder(abi.HostModule)

	builder.NewFunctionBuilder().
		WithFunc(func(ctx context.Context, m api.Module, ptr uint32) {
			inv := invocationFrom(ctx)
			if inv == nil {
				panic("host: read_args called outside an invocation")
			}
			if inv.readCalls > 0 {
				panic("host: read_args called twice in one invocation")
			}
			inv.readCalls++

			if len(inv.args) > 0 && !m.Memory().Write(ptr, inv.args) {
				panic(fmt.Sprintf("host: read_args destination [%d, %d) out of bounds",
					ptr, ptr+uint32(len(inv.args))))
			}
			e.logger.DebugContext(ctx, "hostio",
				"func", abi.FuncReadArgs, "ptr", ptr, "len", len(inv.args))
		}).
		Export(abi.FuncReadArgs)

	builder.NewFunctionBuilder().
		WithFunc(func(ctx context.Context, m api.Module, ptr, length uint32) {
			inv := invocationFrom(ctx)
			if inv == nil {
				panic("host: return_data called outside an invocation")
			}
			if inv.returnCalls > 0 {
				panic("host: return_data called twice in one invocation")
			}
			inv.returnCalls++

			var output []byte
			if length > 0 {
				data, ok := m.Memory().Read(ptr, length)
				if !ok {
					panic(fmt.Sprintf("host: return_data source [%d, %d) out of bounds",
						ptr, ptr+length))
				}
				// Copy out of guest memory now; the guest is free to reuse
				// the buffer once this call returns.
				output = make([]byte, length)
				copy(output, data)
			}
			inv.output = output

			e.logger.DebugContext(ctx, "hostio",
				"func", abi.FuncReturnData, "ptr", ptr, "len", length)
		}).
		Export(abi.FuncReturnData)

	_, err := builder.Instantiate(ctx)
	return err
}
