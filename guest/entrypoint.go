package guest

import (
	"fmt"

	"github.com/0glabs/nitro/abi"
)

// Handler is a contract's business-logic function. It receives the
// invocation's argument bytes (the length travels with the slice) and
// produces the Result the entrypoint forwards to the host.
type Handler func(args []byte) abi.Result

// entrypointConfig holds adapter configuration. Unexported to enforce the
// functional options pattern.
type entrypointConfig struct {
	maxArgsLen uint32
}

// Option configures an Entrypoint.
type Option func(*entrypointConfig)

// WithMaxArgsLen bounds the host-declared argument length. Declaring more
// bytes than the bound traps the instance before any allocation. The
// default is unbounded: host and guest are co-designed and the length is
// trusted, so this check is meant for test environments.
func WithMaxArgsLen(n uint32) Option {
	return func(c *entrypointConfig) {
		c.maxArgsLen = n
	}
}

// Entrypoint adapts a Handler to the host calling convention. One Invoke
// performs exactly one ReadArgs and exactly one ReturnData around the
// handler, in that order, and returns the handler's status code. The
// adapter has no failure path of its own: a failed Result is a value the
// handler produced, and anything the adapter itself cannot do (allocate the
// argument buffer, dispatch a nil handler) traps the whole instance.
//
// The adapter trusts the host-declared args_len: it never learns how many
// bytes ReadArgs actually wrote, and it trusts both host calls to succeed.
type Entrypoint struct {
	io      HostIO
	handler Handler
	config  entrypointConfig
}

// NewEntrypoint builds the adapter around the given host capability and
// handler. Both are required; passing nil traps.
func NewEntrypoint(io HostIO, h Handler, opts ...Option) *Entrypoint {
	if io == nil {
		panic("guest: nil HostIO")
	}
	if h == nil {
		panic("guest: nil handler")
	}
	e := &Entrypoint{io: io, handler: h}
	for _, opt := range opts {
		opt(&e.config)
	}
	return e
}

// Invoke runs one contract invocation: allocate argsLen bytes, read the
// arguments from the host, run the handler, forward its output to the host
// verbatim regardless of status, and return the status code. Every buffer
// is scoped to this call.
func (e *Entrypoint) Invoke(argsLen uint32) uint32 {
	if max := e.config.maxArgsLen; max > 0 && argsLen > max {
		panic(fmt.Sprintf("guest: host declared %d argument bytes, limit is %d", argsLen, max))
	}

	args := make([]byte, argsLen)
	e.io.ReadArgs(args)

	result := e.handler(args)

	e.io.ReturnData(result.Output)
	return result.Status.Code()
}
