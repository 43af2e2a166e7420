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

package main

import (
	"fmt"
	"os"
	"time"

	"github.com/colourclash/gophercoco/hardware/clock"
	"github.com/colourclash/gophercoco/hardware/gime"
	"github.com/colourclash/gophercoco/hardware/scheduler"
	"github.com/colourclash/gophercoco/logger"
	"github.com/colourclash/gophercoco/modalflag"
	"github.com/colourclash/gophercoco/performance"
	"github.com/colourclash/gophercoco/screendigest"
	"github.com/colourclash/gophercoco/version"
)

func main() {
	md := modalflag.Modes{Output: os.Stdout}
	md.NewArgs(os.Args[1:])
	md.AddSubModes("RUN", "PERFORMANCE", "VERSION")

	log := md.AddBool("log", false, "echo log entries to stderr")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		os.Exit(0)
	case modalflag.ParseError:
		fmt.Printf("* %s\n", err)
		os.Exit(10)
	}

	if *log {
		logger.SetEcho(os.Stderr)
	}

	switch md.Mode() {
	case "RUN":
		err = run(&md)
	case "PERFORMANCE":
		err = perform(&md)
	case "VERSION":
		v, _ := version.Version()
		fmt.Printf("%s (%s)\n", version.ApplicationName, v)
	}

	if err != nil {
		fmt.Printf("* %s\n", err)
		os.Exit(10)
	}
}

func parseVariant(s string) (gime.Variant, error) {
	switch s {
	case "1986":
		return gime.Variant1986, nil
	case "1987":
		return gime.Variant1987, nil
	}
	return 0, fmt.Errorf("unknown chip variant (%s)", s)
}

// run a headless emulation for a number of fields and report the digest of
// the video output.
func run(md *modalflag.Modes) error {
	md.NewMode()
	fields := md.AddInt("fields", 60, "number of fields to run")
	variant := md.AddString("variant", "1987", "chip variant: 1986, 1987")
	graph := md.AddString("graph", "", "write a state graph to file on completion")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		return nil
	case modalflag.ParseError:
		return err
	}

	v, err := parseVariant(*variant)
	if err != nil {
		return err
	}

	clk := &clock.Clock{}
	sched := scheduler.NewQueue(clk)
	dig := screendigest.NewSHA1(nil)
	chip := gime.NewGIME(v, clk, sched, dig)

	for chip.FieldCount() < *fields {
		clk.Advance(gime.TicksPerScanline)
		sched.RunDue()
	}

	fmt.Printf("%d fields, %d lines\n", chip.FieldCount(), dig.Lines())
	fmt.Printf("digest: %s\n", dig.Hash())

	if *graph != "" {
		f, err := os.Create(*graph)
		if err != nil {
			return err
		}
		defer f.Close()
		chip.WriteStateGraph(f)
	}

	return nil
}

// perform measures emulation speed against the field rate of the real
// hardware.
func perform(md *modalflag.Modes) error {
	md.NewMode()
	duration := md.AddDuration("duration", 10*time.Second, "run time")
	variant := md.AddString("variant", "1987", "chip variant: 1986, 1987")
	profile := md.AddString("profile", "none", "run with profiling: cpu, mem, all, none")
	stats := md.AddBool("statsview", false, "serve runtime statistics (requires the statsview build tag)")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		return nil
	case modalflag.ParseError:
		return err
	}

	v, err := parseVariant(*variant)
	if err != nil {
		return err
	}

	var prf performance.Profile
	switch *profile {
	case "none":
		prf = performance.ProfileNone
	case "cpu":
		prf = performance.ProfileCPU
	case "mem":
		prf = performance.ProfileMem
	case "all":
		prf = performance.ProfileAll
	default:
		return fmt.Errorf("unknown profile type (%s)", *profile)
	}

	return performance.Check(os.Stdout, prf, *duration, v, *stats)
}
