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

// Package digest fingerprints rendered video output for regression and
// characterisation tests. Two emulations producing the same digest over the
// same period rendered bit identical scanlines.
//
// SHA-1 is used for the hashing. This is fine for detecting accidental
// changes in video output, which is not a cryptographic task.
package digest

import (
	"crypto/sha1"
	"fmt"
)

// Scanline accumulates a chained hash of every scanline handed to it. The
// digest of each line is folded into the next so the final value pins both
// pixel content and line order.
type Scanline struct {
	digest [sha1.Size]byte
	work   []byte
	lines  int
}

// NewScanline is the preferred method of initialisation for the Scanline
// type.
func NewScanline() *Scanline {
	return &Scanline{}
}

func (dig *Scanline) String() string {
	return fmt.Sprintf("%x", dig.digest)
}

// WriteLine folds one scanline of palette indices into the digest.
func (dig *Scanline) WriteLine(pixels []uint8) {
	if cap(dig.work) < len(dig.digest)+len(pixels) {
		dig.work = make([]byte, 0, len(dig.digest)+len(pixels))
	}
	dig.work = dig.work[:0]
	dig.work = append(dig.work, dig.digest[:]...)
	dig.work = append(dig.work, pixels...)
	dig.digest = sha1.Sum(dig.work)
	dig.lines++
}

// Hash returns the current chained digest as a hex string.
func (dig *Scanline) Hash() string {
	return fmt.Sprintf("%x", dig.digest)
}

// Lines returns the number of scanlines folded into the digest so far.
func (dig *Scanline) Lines() int {
	return dig.lines
}

// Reset the digest to its starting state.
func (dig *Scanline) Reset() {
	dig.digest = [sha1.Size]byte{}
	dig.lines = 0
}
