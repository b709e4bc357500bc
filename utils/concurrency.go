package utils

import (
	"runtime"
	"sync/atomic"

	"golang.org/x/sync/errgroup"
)

// SplitWork fans workSize independent work items out over the given
// amount of goroutines. routines <= 0 selects a count based on the
// number of CPUs. init, if not nil, runs once per routine before any
// work is issued.
func SplitWork(routines int, workSize uint64, do func(workIndex uint64, routineIndex int) error, init func(routines, routineIndex int) error) error {
	if routines <= 0 {
		routines = max(runtime.NumCPU()-routines, 4)
	}

	if workSize < uint64(routines) {
		routines = int(workSize)
	}

	if init != nil {
		for routineIndex := 0; routineIndex < routines; routineIndex++ {
			if err := init(routines, routineIndex); err != nil {
				return err
			}
		}
	}

	var counter atomic.Uint64

	var eg errgroup.Group

	for routineIndex := 0; routineIndex < routines; routineIndex++ {
		routineIndex := routineIndex
		eg.Go(func() error {
			for {
				workIndex := counter.Add(1)
				if workIndex > workSize {
					return nil
				}

				if err := do(workIndex-1, routineIndex); err != nil {
					return err
				}
			}
		})
	}

	return eg.Wait()
}
