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

package gime

import (
	"io"

	"github.com/bradleyjkemp/memviz"
)

// WriteStateGraph writes a graphviz visualisation of the chip's object
// graph to the io.Writer. Strictly a debugging aid; render the output with
// the dot tool.
func (g *GIME) WriteStateGraph(output io.Writer) {
	memviz.Map(output, g)
}
