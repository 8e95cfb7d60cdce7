// Package guesttest provides an in-process stub host for testing contract
// handlers and the entrypoint adapter without a wasm runtime.
package guesttest

import (
	"testing"

	"github.com/0glabs/nitro/abi"
	"github.com/0glabs/nitro/guest"
)

// StubHost implements guest.HostIO in process. It serves configured
// argument bytes, captures the returned payload, and records every host
// call so tests can assert the protocol sequence.
type StubHost struct {
	// Args is served to ReadArgs.
	Args []byte
	// Returned is the payload captured from ReturnData, copied out the way
	// a real host must.
	Returned []byte

	ReadCalls   int
	ReturnCalls int
	// Trace records host calls in order, by import name.
	Trace []string
}

var _ guest.HostIO = (*StubHost)(nil)

// NewStubHost builds a stub serving the given argument bytes.
func NewStubHost(args []byte) *StubHost {
	return &StubHost{Args: args}
}

// ReadArgs fills buf from the configured arguments.
func (s *StubHost) ReadArgs(buf []byte) {
	s.ReadCalls++
	s.Trace = append(s.Trace, abi.FuncReadArgs)
	copy(buf, s.Args)
}

// ReturnData captures a copy of the payload.
func (s *StubHost) ReturnData(data []byte) {
	s.ReturnCalls++
	s.Trace = append(s.Trace, abi.FuncReturnData)
	s.Returned = append([]byte(nil), data...)
}

// TestCase defines one invocation of a contract handler.
type TestCase struct {
	Name     string
	Args     []byte
	Validate func(t *testing.T, status abi.Status, host *StubHost)
}

// RunContractTests drives a handler through the full entrypoint call
// sequence for each case, with a fresh stub host per invocation.
func RunContractTests(t *testing.T, h guest.Handler, tests []TestCase) {
	t.Helper()

	for _, tc := range tests {
		t.Run(tc.Name, func(t *testing.T) {
			host := NewStubHost(tc.Args)
			code := guest.NewEntrypoint(host, h).Invoke(uint32(len(tc.Args)))
			if tc.Validate != nil {
				tc.Validate(t, abi.StatusFromCode(code), host)
			}
		})
	}
}

// AssertSuccess asserts the invocation succeeded.
func AssertSuccess(t *testing.T, status abi.Status) {
	t.Helper()
	if !status.IsSuccess() {
		t.Errorf("expected success, got %s (code %d)", status, status.Code())
	}
}

// AssertFailure asserts the invocation failed.
func AssertFailure(t *testing.T, status abi.Status) {
	t.Helper()
	if status.IsSuccess() {
		t.Errorf("expected failure, got %s", status)
	}
}
