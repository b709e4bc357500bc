package main

import (
	"testing"
	"unsafe"

	"git.gammaspectra.live/P2Pool/monero-scalar/scalar"
	"git.gammaspectra.live/P2Pool/monero-scalar/utils"
)

func TestBoundaryMultiply(t *testing.T) {
	a := scalar.BufferFromLimbs([scalar.NumLimbs]uint64{2})
	b := scalar.BufferFromLimbs([scalar.NumLimbs]uint64{3})
	aCopy, bCopy := a, b

	var out scalar.Buffer
	boundaryMultiply(unsafe.Pointer(&a), unsafe.Pointer(&b), unsafe.Pointer(&out))

	if out != scalar.BufferFromLimbs([scalar.NumLimbs]uint64{6}) {
		t.Fatalf("got %s, expected 6", out.String())
	}

	// Input buffers are only read, never written.
	if a != aCopy || b != bCopy {
		t.Fatal("input buffer mutated")
	}
}

func TestBoundaryMultiplyNullPointer(t *testing.T) {
	var a, b, out scalar.Buffer

	for _, e := range []struct {
		Name      string
		S1, S2, R unsafe.Pointer
	}{
		{"NullS1", nil, unsafe.Pointer(&b), unsafe.Pointer(&out)},
		{"NullS2", unsafe.Pointer(&a), nil, unsafe.Pointer(&out)},
		{"NullResult", unsafe.Pointer(&a), unsafe.Pointer(&b), nil},
		{"AllNull", nil, nil, nil},
	} {
		t.Run(e.Name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Fatal("expected panic on null pointer")
				}
			}()
			boundaryMultiply(e.S1, e.S2, e.R)
		})
	}
}

func TestBoundaryMultiplyConcurrent(t *testing.T) {
	const calls = 1024

	// Sequential baseline first, then the same work fanned out over
	// goroutines on disjoint buffers must produce identical bytes.
	operands := func(i uint64) (a, b scalar.Buffer) {
		return scalar.BufferFromLimbs([scalar.NumLimbs]uint64{i + 1, i, i ^ 0xdeadbeef, i << 3}),
			scalar.BufferFromLimbs([scalar.NumLimbs]uint64{^i, i * 7, i + 13, i >> 1})
	}

	var sequential [calls]scalar.Buffer
	for i := uint64(0); i < calls; i++ {
		a, b := operands(i)
		scalar.MultiplyBuffers(&sequential[i], &a, &b)
	}

	var concurrent [calls]scalar.Buffer
	if err := utils.SplitWork(8, calls, func(workIndex uint64, routineIndex int) error {
		a, b := operands(workIndex)
		boundaryMultiply(unsafe.Pointer(&a), unsafe.Pointer(&b), unsafe.Pointer(&concurrent[workIndex]))
		return nil
	}, nil); err != nil {
		t.Fatal(err)
	}

	if sequential != concurrent {
		t.Fatal("concurrent results differ from sequential execution")
	}
}
