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

// Package performance measures how quickly the emulation core runs on the
// host machine, compared with the field rate of the real hardware. The
// measurement is headless: a chip wired to stub ports, driven as fast as
// the host allows.
package performance

import (
	"fmt"
	"io"
	"time"

	"github.com/colourclash/gophercoco/hardware/clock"
	"github.com/colourclash/gophercoco/hardware/gime"
	"github.com/colourclash/gophercoco/hardware/scheduler"
	"github.com/colourclash/gophercoco/statsview"
)

// the nominal field rate of the 60Hz machine
const nominalFieldRate = 59.94

// how many scanlines to run between checks of the wall clock. checking
// time.Since() is expensive relative to a scanline of emulation
const checkBrake = 1024

// Check runs a headless emulation for (roughly) the wall clock duration
// and reports the achieved field rate. A profile of the run can be
// requested; with the stats argument and the statsview build constraint a
// statistics server is launched for the duration.
func Check(output io.Writer, profile Profile, duration time.Duration, variant gime.Variant, stats bool) error {
	if stats && statsview.Available() {
		statsview.Launch(output)
	}

	clk := &clock.Clock{}
	sched := scheduler.NewQueue(clk)
	chip := gime.NewGIME(variant, clk, sched, gime.StubPorts{})

	// a configuration that exercises the renderer: bitmap, sixteen
	// colours, full width
	chip.MemCycle(false, gime.AddrRegisters+0x8, 0x80)
	chip.MemCycle(false, gime.AddrRegisters+0x9, 0x3e)

	run := func() error {
		start := time.Now()

		brake := 0
		for {
			clk.Advance(gime.TicksPerScanline)
			sched.RunDue()

			brake++
			if brake >= checkBrake {
				brake = 0
				if time.Since(start) >= duration {
					break
				}
			}
		}

		elapsed := time.Since(start).Seconds()
		rate := float64(chip.FieldCount()) / elapsed

		fmt.Fprintf(output, "%d fields in %.2fs\n", chip.FieldCount(), elapsed)
		fmt.Fprintf(output, "%.2f fields/s (%.1fx nominal)\n", rate, rate/nominalFieldRate)

		return nil
	}

	return runWithProfiling(profile, run)
}
