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

package clock_test

import (
	"testing"

	"github.com/colourclash/gophercoco/hardware/clock"
	"github.com/colourclash/gophercoco/test"
)

func TestDelta(t *testing.T) {
	test.Equate(t, clock.Delta(10, 4), int32(6))
	test.Equate(t, clock.Delta(4, 10), int32(-6))
	test.Equate(t, clock.Delta(100, 100), int32(0))
}

func TestDeltaWraparound(t *testing.T) {
	// a is chronologically after b even though the counter has wrapped
	a := clock.Tick(5)
	b := clock.Tick(0xfffffff0)

	test.Equate(t, clock.Delta(a, b), int32(21))
	test.Equate(t, clock.Delta(b, a), int32(-21))

	// antisymmetry near the wrap boundary
	test.Equate(t, clock.Delta(a, b), -clock.Delta(b, a))

	test.ExpectedSuccess(t, clock.AtOrAfter(a, b))
	test.ExpectedFailure(t, clock.AtOrAfter(b, a))
}

func TestAdvance(t *testing.T) {
	clk := &clock.Clock{Current: 0xffffffff}
	clk.Advance(3)
	test.Equate(t, uint32(clk.Current), uint32(2))
}
