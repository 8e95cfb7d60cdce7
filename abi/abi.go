// Package abi defines the binary contract between a contract guest module
// and its host environment: the host import surface, the entrypoint export,
// and the status/result encoding.
//
// The ABI is fixed and unversioned. A host and guest bind to each other by
// resolving the (module, name) pairs below exactly; there is no overload
// resolution or negotiation.
package abi

// HostModule is the wasm module namespace the guest imports its host
// functions from.
const HostModule = "forward"

// Import names within HostModule.
const (
	// FuncReadArgs has wire signature (ptr: u32) -> (). The host writes the
	// current invocation's argument bytes into guest memory at ptr. The
	// destination must be at least args_len bytes; the host knows the length
	// from its own call context, not from a parameter here.
	FuncReadArgs = "read_args"

	// FuncReturnData has wire signature (ptr: u32, len: u32) -> (). The host
	// copies len bytes of result payload out of guest memory at ptr. After
	// the call returns the guest may discard or reuse that memory.
	FuncReturnData = "return_data"
)

// EntrypointSymbol is the export the host locates to run one contract
// invocation. Wire signature: (args_len: u32) -> (status: u32).
const EntrypointSymbol = "contract_main"

// Status is the outcome of a contract invocation. On the wire it is a
// single integer: 0 is reserved for success, every nonzero value denotes
// failure. Failure subkinds are not distinguished at this layer; anything
// more specific travels in the Result output payload.
type Status uint32

const (
	StatusSuccess Status = 0
	StatusFailure Status = 1
)

// Code returns the integer encoding of the status.
func (s Status) Code() uint32 {
	return uint32(s)
}

// IsSuccess reports whether the status denotes success.
func (s Status) IsSuccess() bool {
	return s == StatusSuccess
}

func (s Status) String() string {
	if s.IsSuccess() {
		return "success"
	}
	return "failure"
}

// StatusFromCode decodes an entrypoint return value into a Status. The
// original code is preserved; any nonzero value reads as failure.
func StatusFromCode(code uint32) Status {
	return Status(code)
}

// Result is the value a contract's business logic produces for one
// invocation. Output is owned by the business logic for the duration of the
// call; the entrypoint adapter borrows it read-only to forward to the host,
// and the host copies out anything it needs before the call ends. The
// payload length is len(Output); an empty output is forwarded with zero
// length.
type Result struct {
	Status Status
	Output []byte
}

// Success builds a successful Result carrying the given output payload.
func Success(output []byte) Result {
	return Result{Status: StatusSuccess, Output: output}
}

// Failure builds a failed Result. The output commonly carries an error
// description for the host, but may be empty.
func Failure(output []byte) Result {
	return Result{Status: StatusFailure, Output: output}
}
