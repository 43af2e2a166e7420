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

package digest_test

import (
	"testing"

	"github.com/colourclash/gophercoco/digest"
	"github.com/colourclash/gophercoco/test"
)

func TestScanline(t *testing.T) {
	lineA := []uint8{0x00, 0x12, 0x3f, 0x2a}
	lineB := []uint8{0x3f, 0x12, 0x00, 0x2a}

	a := digest.NewScanline()
	b := digest.NewScanline()

	// same input sequence produces the same digest
	a.WriteLine(lineA)
	a.WriteLine(lineB)
	b.WriteLine(lineA)
	b.WriteLine(lineB)
	test.Equate(t, a.Hash(), b.Hash())
	test.Equate(t, a.Lines(), 2)

	// line order is pinned by the chaining
	c := digest.NewScanline()
	c.WriteLine(lineB)
	c.WriteLine(lineA)
	test.ExpectedFailure(t, c.Hash() == a.Hash())

	// reset returns to the starting state
	a.Reset()
	test.Equate(t, a.Lines(), 0)
	a.WriteLine(lineA)
	a.WriteLine(lineB)
	test.Equate(t, a.Hash(), b.Hash())
}
