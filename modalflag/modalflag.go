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

// Package modalflag layers sub-modes on top of the standard flag package.
// Each mode has its own flag set; parsing peels off one mode at a time,
// building a path of the modes encountered.
package modalflag

import (
	"flag"
	"fmt"
	"io"
	"strings"
	"time"
)

// Modes parses a command line of the form: [flags] [mode [flags] ...].
// The Output field should be set before calling Parse() or help messages
// will not be seen.
type Modes struct {
	// where to print help messages. defaults to io.Discard
	Output io.Writer

	flags *flag.FlagSet

	args    []string
	argsIdx int

	// the sub-modes valid for the next call to Parse(). the first entry is
	// the default
	subModes []string

	// the modes encountered by every Parse() so far
	path []string
}

func (md *Modes) String() string {
	return strings.Join(md.path, "/")
}

// NewArgs begins parsing of a fresh argument list.
func (md *Modes) NewArgs(args []string) {
	md.args = args
	md.argsIdx = 0
	md.NewMode()
}

// NewMode indicates that further arguments belong to a new mode with its
// own flag set.
func (md *Modes) NewMode() {
	md.subModes = md.subModes[:0]
	md.flags = flag.NewFlagSet("", flag.ContinueOnError)
}

// Mode returns the last mode encountered by Parse().
func (md *Modes) Mode() string {
	if len(md.path) == 0 {
		return ""
	}
	return md.path[len(md.path)-1]
}

// AddSubModes declares the valid sub-modes for the next call to Parse().
// The first sub-mode given is the default. Comparison is case insensitive.
func (md *Modes) AddSubModes(subModes ...string) {
	for _, m := range subModes {
		md.subModes = append(md.subModes, strings.ToUpper(m))
	}
}

// ParseResult is returned from the Parse() function.
type ParseResult int

// List of valid ParseResult values.
const (
	ParseContinue ParseResult = iota

	// help was requested and has been printed
	ParseHelp

	ParseError
)

// Parse the next layer of arguments. If sub-modes were declared the chosen
// sub-mode (or the default) is appended to the mode path and can be read
// with Mode().
func (md *Modes) Parse() (ParseResult, error) {
	output := md.Output
	if output == nil {
		output = io.Discard
	}

	// the flag package wants to write usage itself. suppress that and
	// print our own, which includes the sub-mode list
	md.flags.SetOutput(io.Discard)

	err := md.flags.Parse(md.args[md.argsIdx:])
	if err != nil {
		if err == flag.ErrHelp {
			md.printHelp(output)
			return ParseHelp, nil
		}
		return ParseError, err
	}

	// step over the arguments this layer consumed as flags
	md.argsIdx = len(md.args) - md.flags.NArg()

	if len(md.subModes) > 0 {
		mode := md.subModes[0]
		arg := strings.ToUpper(md.flags.Arg(0))
		for _, m := range md.subModes {
			if m == arg {
				mode = arg
				md.argsIdx++
				break // for loop
			}
		}
		md.path = append(md.path, mode)
	}

	return ParseContinue, nil
}

func (md *Modes) printHelp(output io.Writer) {
	md.flags.SetOutput(output)
	md.flags.PrintDefaults()
	if len(md.subModes) > 0 {
		fmt.Fprintf(output, "available sub-modes: %s\n", strings.Join(md.subModes, ", "))
		fmt.Fprintf(output, "	default: %s\n", md.subModes[0])
	}
}

// RemainingArgs returns the arguments left over after Parse(), less any
// consumed sub-mode.
func (md *Modes) RemainingArgs() []string {
	return md.args[md.argsIdx:]
}

// AddBool flag for the next call to Parse().
func (md *Modes) AddBool(name string, value bool, usage string) *bool {
	return md.flags.Bool(name, value, usage)
}

// AddDuration flag for the next call to Parse().
func (md *Modes) AddDuration(name string, value time.Duration, usage string) *time.Duration {
	return md.flags.Duration(name, value, usage)
}

// AddInt flag for the next call to Parse().
func (md *Modes) AddInt(name string, value int, usage string) *int {
	return md.flags.Int(name, value, usage)
}

// AddString flag for the next call to Parse().
func (md *Modes) AddString(name string, value string, usage string) *string {
	return md.flags.String(name, value, usage)
}
