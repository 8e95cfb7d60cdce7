package host

// Hand-assembled test guests. Building real contract modules needs a wasm
// toolchain, so the tests carry a minimal module in binary form instead.
//
// The module corresponds to this text format:
//
//	(module
//	  (import "forward" "read_args" (func $read_args (param i32)))
//	  (import "forward" "return_data" (func $return_data (param i32 i32)))
//	  (memory (export "memory") 17)
//	  (func (export "contract_main") (param $args_len i32) (result i32)
//	    (call $read_args (i32.const 0))
//	    (call $return_data (i32.const 0) (local.get $args_len))
//	    (i32.const 0))
//	  (func (export "contract_fail") (param i32) (result i32)
//	    (call $read_args (i32.const 0))
//	    (call $return_data (i32.const 0) (i32.const 9))
//	    (i32.const 1))
//	  (func (export "contract_silent") (param i32) (result i32)
//	    (i32.const 0))
//	  (data (i32.const 0) "bad input"))
//
// contract_main echoes its arguments with a success status. contract_fail
// ignores them and returns the 9-byte "bad input" payload with a failure
// status. contract_silent breaks the protocol by never calling return_data.
// Memory is 17 pages so a 1 MB argument buffer fits at offset 0.
func testGuestWasm() []byte {
	return []byte{
		// magic + version
		0x00, 0x61, 0x73, 0x6D, 0x01, 0x00, 0x00, 0x00,

		// type section: (i32)->(), (i32,i32)->(), (i32)->(i32)
		0x01, 0x0F, 0x03,
		0x60, 0x01, 0x7F, 0x00,
		0x60, 0x02, 0x7F, 0x7F, 0x00,
		0x60, 0x01, 0x7F, 0x01, 0x7F,

		// import section: forward.read_args, forward.return_data
		0x02, 0x2B, 0x02,
		0x07, 'f', 'o', 'r', 'w', 'a', 'r', 'd',
		0x09, 'r', 'e', 'a', 'd', '_', 'a', 'r', 'g', 's',
		0x00, 0x00,
		0x07, 'f', 'o', 'r', 'w', 'a', 'r', 'd',
		0x0B, 'r', 'e', 't', 'u', 'r', 'n', '_', 'd', 'a', 't', 'a',
		0x00, 0x01,

		// function section: three funcs of type 2
		0x03, 0x04, 0x03, 0x02, 0x02, 0x02,

		// memory section: min 17 pages
		0x05, 0x03, 0x01, 0x00, 0x11,

		// export section
		0x07, 0x3C, 0x04,
		0x06, 'm', 'e', 'm', 'o', 'r', 'y', 0x02, 0x00,
		0x0D, 'c', 'o', 'n', 't', 'r', 'a', 'c', 't', '_', 'm', 'a', 'i', 'n', 0x00, 0x02,
		0x0D, 'c', 'o', 'n', 't', 'r', 'a', 'c', 't', '_', 'f', 'a', 'i', 'l', 0x00, 0x03,
		0x0F, 'c', 'o', 'n', 't', 'r', 'a', 'c', 't', '_', 's', 'i', 'l', 'e', 'n', 't', 0x00, 0x04,

		// code section
		0x0A, 0x24, 0x03,
		// contract_main: read_args(0); return_data(0, args_len); 0
		0x0E, 0x00,
		0x41, 0x00, 0x10, 0x00,
		0x41, 0x00, 0x20, 0x00, 0x10, 0x01,
		0x41, 0x00, 0x0B,
		// contract_fail: read_args(0); return_data(0, 9); 1
		0x0E, 0x00,
		0x41, 0x00, 0x10, 0x00,
		0x41, 0x00, 0x41, 0x09, 0x10, 0x01,
		0x41, 0x01, 0x0B,
		// contract_silent: 0
		0x04, 0x00, 0x41, 0x00, 0x0B,

		// data section: "bad input" at offset 0
		0x0B, 0x0F, 0x01,
		0x00, 0x41, 0x00, 0x0B,
		0x09, 'b', 'a', 'd', ' ', 'i', 'n', 'p', 'u', 't',
	}
}

// emptyWasm is a syntactically valid module with no exports at all.
func emptyWasm() []byte {
	return []byte{0x00, 0x61, 0x73, 0x6D, 0x01, 0x00, 0x00, 0x00}
}
