package guest

import "log/slog"

// registered holds the handler the exported entrypoint dispatches to.
var registered Handler

// Register installs the contract's Handler behind the exported entrypoint.
// Contract authors call this from a package init function so it runs during
// module initialization (reactor builds never call main). A second call is
// ignored with a
// warning; the first handler stays installed. Invoking the entrypoint with
// no handler registered traps the instance.
func Register(h Handler) {
	if registered != nil {
		slog.Warn("guest: handler already registered, ignoring second call")
		return
	}
	registered = h
}
