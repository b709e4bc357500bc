package main

/*
#include "moneroscalar.h"
*/
import "C"

import (
	"unsafe"
)

// multiply is the sole exported symbol of the shared library. It
// computes the field product of the two input scalars and writes its
// wire form to *result. The buffers are caller-owned; nothing persists
// across calls.
//
//export multiply
func multiply(s1, s2, result *C.monero_scalar_t) {
	boundaryMultiply(unsafe.Pointer(s1), unsafe.Pointer(s2), unsafe.Pointer(result))
}

// main is mandatory in every package built with -buildmode=c-shared.
func main() {}
