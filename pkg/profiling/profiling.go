// Package profiling writes CPU and heap profiles of a browsing session.
package profiling

import (
	"fmt"
	"os"
	"runtime"
	"runtime/pprof"
)

var (
	osCreate              = os.Create
	pprofStartCPUProfile  = pprof.StartCPUProfile
	pprofStopCPUProfile   = pprof.StopCPUProfile
	pprofWriteHeapProfile = pprof.WriteHeapProfile
)

// DoCPUProfiling starts CPU profiling into path. The returned func stops
// profiling and closes the file.
func DoCPUProfiling(path string) (stop func() error, err error) {
	f, err := osCreate(path)
	if err != nil {
		return nil, fmt.Errorf("could not create CPU profile: %w", err)
	}
	if err = pprofStartCPUProfile(f); err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("could not start CPU profile: %w", err)
	}
	return func() error {
		pprofStopCPUProfile()
		return f.Close()
	}, nil
}

// DoMemProfiling returns a func that writes a heap profile to path. It is
// meant to be deferred so the profile reflects the end of the session.
func DoMemProfiling(path string) func() error {
	return func() (err error) {
		var f *os.File
		if f, err = osCreate(path); err != nil {
			return fmt.Errorf("could not create memory profile: %w", err)
		}
		defer func() {
			if closeErr := f.Close(); closeErr != nil && err == nil {
				err = closeErr
			}
		}()
		runtime.GC()
		if err = pprofWriteHeapProfile(f); err != nil {
			return fmt.Errorf("could not write memory profile: %w", err)
		}
		return nil
	}
}
