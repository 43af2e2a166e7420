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

// Package version records the version of the program and the revision it
// was built from.
package version

// The name to use when referring to the application.
const ApplicationName = "GopherCoCo"

// number and revision are set through the linker by the release script. if
// both are empty the build did not come from a release.
var number string
var revision string

// Version returns the version string and whether the build is a numbered
// release. Unreleased builds report the vcs revision when the build
// carries one.
func Version() (string, bool) {
	if number != "" {
		return number, true
	}
	if revision != "" {
		return revision, false
	}
	return "unreleased", false
}
