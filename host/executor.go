package host

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/tetratelabs/wazero"
	"github.com/tetratelabs/wazero/api"
	"github.com/tetratelabs/wazero/imports/wasi_snapshot_preview1"

	"github.com/0glabs/nitro/abi"
)

// Executor manages the lifecycle of contract guest modules.
type Executor struct {
	runtime wazero.Runtime
	logger  *slog.Logger

	memoryLimitPages uint32
}

// NewExecutor creates a new executor with the given options. It owns a
// wazero runtime with WASI and the forward host module instantiated; every
// contract loaded through it shares that import surface.
func NewExecutor(ctx context.Context, opts ...Option) (*Executor, error) {
	e := &Executor{logger: slog.Default()}
	for _, opt := range opts {
		opt(e)
	}

	cfg := wazero.NewRuntimeConfig()
	if e.memoryLimitPages > 0 {
		cfg = cfg.WithMemoryLimitPages(e.memoryLimitPages)
	}
	rt := wazero.NewRuntimeWithConfig(ctx, cfg)
	wasi_snapshot_preview1.MustInstantiate(ctx, rt)
	e.runtime = rt

	if err := e.registerForwardModule(ctx); err != nil {
		rt.Close(ctx)
		return nil, fmt.Errorf("failed to register forward host module: %w", err)
	}

	return e, nil
}

// Close releases resources held by the executor, including every contract
// instance loaded through it.
func (e *Executor) Close(ctx context.Context) error {
	return e.runtime.Close(ctx)
}

// Instance is an instantiated contract guest module, scoped to one
// in-memory guest. The host is assumed to run at most one invocation at a
// time per instance; Invoke is not safe for concurrent use.
type Instance struct {
	module     api.Module
	entrypoint api.Function
	logger     *slog.Logger
}

// LoadContract instantiates a contract module and resolves its entrypoint
// export.
func (e *Executor) LoadContract(ctx context.Context, wasmBytes []byte, opts ...LoadOption) (*Instance, error) {
	cfg := loadConfig{entrypoint: abi.EntrypointSymbol}
	for _, opt := range opts {
		opt(&cfg)
	}

	mod, err := e.runtime.Instantiate(ctx, wasmBytes)
	if err != nil {
		return nil, fmt.Errorf("failed to instantiate contract module: %w", err)
	}

	// Reactor-style guests (e.g. Go's wasip1 c-shared buildmode) expose
	// _initialize instead of _start; run it before touching other exports.
	if init := mod.ExportedFunction("_initialize"); init != nil {
		if _, err := init.Call(ctx); err != nil {
			mod.Close(ctx)
			return nil, fmt.Errorf("failed to call _initialize: %w", err)
		}
	}

	fn := mod.ExportedFunction(cfg.entrypoint)
	if fn == nil {
		mod.Close(ctx)
		return nil, fmt.Errorf("contract does not export %q", cfg.entrypoint)
	}

	return &Instance{module: mod, entrypoint: fn, logger: e.logger}, nil
}

// Invoke runs one contract invocation: stage the argument bytes, call the
// entrypoint with their length, and decode the returned status. The output
// payload was already copied out of guest memory by return_data, so the
// result remains valid after the guest's call frame is gone.
//
// A trap inside the guest (or a protocol violation the host functions
// detect) surfaces as an error, never as a Result.
func (inst *Instance) Invoke(ctx context.Context, args []byte) (abi.Result, error) {
	inv := &invocation{args: args}
	ctx = withInvocation(ctx, inv)

	results, err := inst.entrypoint.Call(ctx, uint64(uint32(len(args))))
	if err != nil {
		return abi.Result{}, fmt.Errorf("contract trapped: %w", err)
	}
	if len(results) != 1 {
		return abi.Result{}, fmt.Errorf("entrypoint returned %d values, want 1", len(results))
	}
	if inv.returnCalls == 0 {
		return abi.Result{}, ErrNoReturnData
	}

	status := abi.StatusFromCode(uint32(results[0]))
	inst.logger.DebugContext(ctx, "invocation complete",
		"status", status.String(), "output_len", len(inv.output))

	return abi.Result{Status: status, Output: inv.output}, nil
}

// Close releases the underlying module instance.
func (inst *Instance) Close(ctx context.Context) error {
	return inst.module.Close(ctx)
}
