package host

import (
	"context"
	"errors"
)

// ErrNoReturnData reports a guest that ran to completion without handing a
// result payload to the host. A conforming guest calls return_data exactly
// once per invocation.
var ErrNoReturnData = errors.New("host: guest completed without calling return_data")

// invocation is the per-call staging area for one entrypoint invocation:
// the argument bytes the guest will read and the payload it returns. Every
// field is scoped to a single Invoke; nothing persists across invocations.
type invocation struct {
	args   []byte
	output []byte

	readCalls   int
	returnCalls int
}

type invocationKey struct{}

// withInvocation attaches the staging area to the context passed into the
// guest call, where the forward host functions can find it.
func withInvocation(ctx context.Context, inv *invocation) context.Context {
	return context.WithValue(ctx, invocationKey{}, inv)
}

// invocationFrom returns the current invocation, or nil when the context
// does not belong to a guest call.
func invocationFrom(ctx context.Context) *invocation {
	inv, _ := ctx.Value(invocationKey{}).(*invocation)
	return inv
}
