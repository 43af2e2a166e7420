// This file is part of GopherCoCo.
//
// GopherCoCo is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// GopherCoCo is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with GopherCoCo.  If not, see <https://www.gnu.org/licenses/>.

package performance

import (
	"os"
	"runtime"
	"runtime/pprof"

	"github.com/colourclash/gophercoco/curated"
)

// Profile is used to specify the type of profile to run.
type Profile int

// List of valid Profile values.
const (
	ProfileNone Profile = iota
	ProfileCPU
	ProfileMem
	ProfileAll
)

// sentinal error returned by runWithProfiling.
const (
	ErrProfiling = "profiling: %v"
)

// runWithProfiling runs the supplied function, wrapping it in the
// requested profiles. profile files are written to the working directory.
func runWithProfiling(profile Profile, run func() error) error {
	if profile == ProfileCPU || profile == ProfileAll {
		f, err := os.Create("cpu.profile")
		if err != nil {
			return curated.Errorf(ErrProfiling, err)
		}
		defer f.Close()

		err = pprof.StartCPUProfile(f)
		if err != nil {
			return curated.Errorf(ErrProfiling, err)
		}
		defer pprof.StopCPUProfile()
	}

	err := run()
	if err != nil {
		return err
	}

	if profile == ProfileMem || profile == ProfileAll {
		f, err := os.Create("mem.profile")
		if err != nil {
			return curated.Errorf(ErrProfiling, err)
		}
		defer f.Close()

		runtime.GC()

		err = pprof.WriteHeapProfile(f)
		if err != nil {
			return curated.Errorf(ErrProfiling, err)
		}
	}

	return nil
}
