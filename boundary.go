package main

import (
	"unsafe"

	"git.gammaspectra.live/P2Pool/monero-scalar/scalar"
	"git.gammaspectra.live/P2Pool/monero-scalar/utils"
)

// boundaryMultiply reinterprets the three foreign pointers as scalar
// wire buffers and runs decode, multiply, encode. This is the only
// place foreign memory is punned into a typed value: each pointer must
// reference 32 bytes laid out per moneroscalar.h, the inputs readable
// and the output writable for the duration of the call.
//
// The exported ABI returns void, so there is no channel to report a bad
// pointer. A null pointer aborts the process instead.
func boundaryMultiply(s1, s2, result unsafe.Pointer) {
	if s1 == nil || s2 == nil || result == nil {
		utils.Panicf("multiply: null scalar pointer (s1=%p s2=%p result=%p)", s1, s2, result)
	}

	scalar.MultiplyBuffers(
		(*scalar.Buffer)(result),
		(*scalar.Buffer)(s1),
		(*scalar.Buffer)(s2),
	)
}
