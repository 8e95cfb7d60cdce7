//go:build wasip1

package guest

import "unsafe"

// Raw host imports. Pointers cross the boundary as 32-bit offsets into
// linear memory; the (module, name) pairs match package abi.

//go:wasmimport forward read_args
//nolint:revive // intentional snake_case to match the wasm import name
func host_read_args(ptr uint32)

//go:wasmimport forward return_data
//nolint:revive // intentional snake_case to match the wasm import name
func host_return_data(ptr uint32, length uint32)

// forwardIO implements HostIO on the real host imports.
type forwardIO struct{}

func (forwardIO) ReadArgs(buf []byte) {
	host_read_args(bufferPtr(buf))
}

func (forwardIO) ReturnData(data []byte) {
	host_return_data(bufferPtr(data), uint32(len(data)))
}

// bufferPtr returns the linear-memory offset of the slice's backing array.
// The caller must keep the slice reachable for the duration of the host
// call. An empty slice yields offset 0; the host transfers zero bytes and
// never dereferences it.
func bufferPtr(b []byte) uint32 {
	if len(b) == 0 {
		return 0
	}
	return uint32(uintptr(unsafe.Pointer(unsafe.SliceData(b))))
}
