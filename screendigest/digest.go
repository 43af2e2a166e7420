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

// Package screendigest fingerprints the video output of a running chip
// without displaying it anywhere. It piggybacks on another Ports
// implementation, observing scanline handoffs on the way past.
package screendigest

import (
	"github.com/colourclash/gophercoco/digest"
	"github.com/colourclash/gophercoco/hardware/gime"
)

// SHA1 is an implementation of the gime.Ports interface that folds every
// handed-off scanline into a chained digest. All port traffic is forwarded
// to the wrapped implementation.
type SHA1 struct {
	gime.Ports
	dig    *digest.Scanline
	fields int
}

// NewSHA1 is the preferred method of initialisation for the SHA1 type. The
// ports argument can be nil, in which case the chip's outward calls
// terminate here.
func NewSHA1(ports gime.Ports) *SHA1 {
	if ports == nil {
		ports = gime.StubPorts{}
	}
	return &SHA1{
		Ports: ports,
		dig:   digest.NewScanline(),
	}
}

func (d *SHA1) String() string {
	return d.dig.String()
}

// RenderLine implements the gime.Ports interface.
func (d *SHA1) RenderLine(pixels []uint8, invertPhase bool) {
	d.dig.WriteLine(pixels)
	d.Ports.RenderLine(pixels, invertPhase)
}

// SignalFSync implements the gime.Ports interface.
func (d *SHA1) SignalFSync(level bool) {
	if level {
		d.fields++
	}
	d.Ports.SignalFSync(level)
}

// Hash returns the chained digest of every scanline seen so far.
func (d *SHA1) Hash() string {
	return d.dig.Hash()
}

// Lines returns the number of scanlines folded into the digest.
func (d *SHA1) Lines() int {
	return d.dig.Lines()
}

// Fields returns the number of rising field sync edges seen.
func (d *SHA1) Fields() int {
	return d.fields
}

// ResetDigest returns the digest to its starting state. The field count is
// unaffected.
func (d *SHA1) ResetDigest() {
	d.dig.Reset()
}
