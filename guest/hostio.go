package guest

// HostIO is the capability surface the host supplies to a contract: exactly
// the two functions of the host import surface. In a wasip1 build it is
// backed by the real imports from abi.HostModule; tests inject an
// in-process stub.
//
// Trust boundary: neither call can report failure to the guest. The host is
// trusted to fill the ReadArgs buffer completely and to copy the ReturnData
// payload out before the call returns; a host that cannot satisfy a call
// aborts the whole guest instance rather than surfacing an error here.
type HostIO interface {
	// ReadArgs fills buf with the current invocation's argument bytes.
	// buf must be at least as large as the invocation's argument length.
	// An empty buf is a valid call; the host writes nothing.
	ReadArgs(buf []byte)

	// ReturnData hands the result payload to the host. The host copies the
	// bytes before returning, so the guest may reuse data afterwards. A
	// zero-length payload is still delivered; the host must not dereference
	// the buffer in that case.
	ReturnData(data []byte)
}
