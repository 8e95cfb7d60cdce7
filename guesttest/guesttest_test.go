package guesttest

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/0glabs/nitro/abi"
)

func TestStubHost_ReadArgs(t *testing.T) {
	s := NewStubHost([]byte{1, 2, 3})

	buf := make([]byte, 3)
	s.ReadArgs(buf)

	assert.Equal(t, []byte{1, 2, 3}, buf)
	assert.Equal(t, 1, s.ReadCalls)
	assert.Equal(t, []string{abi.FuncReadArgs}, s.Trace)
}

func TestStubHost_ReturnDataCopies(t *testing.T) {
	s := NewStubHost(nil)

	payload := []byte("result")
	s.ReturnData(payload)

	// Mutating the guest's buffer after the call must not change what the
	// host captured, the same ownership rule a real host follows.
	payload[0] = 'X'
	assert.Equal(t, []byte("result"), s.Returned)
	assert.Equal(t, 1, s.ReturnCalls)
}

func TestStubHost_ZeroLength(t *testing.T) {
	s := NewStubHost(nil)

	s.ReadArgs(nil)
	s.ReturnData(nil)

	assert.Equal(t, 1, s.ReadCalls)
	assert.Equal(t, 1, s.ReturnCalls)
	assert.Empty(t, s.Returned)
}
