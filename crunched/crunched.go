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

// Package crunched compresses save state payloads. Snapshot records are
// dominated by long runs of equal bytes (unprogrammed palette entries, MMU
// banks left at reset values) so a very basic run length encoding performs
// well, and performs quickly in both directions.
//
// The output is self describing. If the RLE pass does not pay for itself
// the payload is stored raw, so Crunch() never grows the data by more than
// the small fixed header.
package crunched

import (
	"encoding/binary"

	"github.com/colourclash/gophercoco/curated"
)

// Error patterns for the crunched package.
const (
	ErrHeader  = "crunched: malformed header"
	ErrPayload = "crunched: malformed payload"
)

// payload markers. first byte of the crunched output.
const (
	markerRaw uint8 = iota
	markerRLE
)

// header is marker byte plus uncrunched size
const headerSize = 5

// Crunch returns a compressed copy of data. The copy carries a small header
// recording the method used and the uncrunched size.
func Crunch(data []byte) []byte {
	out := make([]byte, headerSize, headerSize+len(data))
	out[0] = markerRLE
	binary.LittleEndian.PutUint32(out[1:], uint32(len(data)))

	// very basic RLE: pairs of (value, repeat count). count is the number
	// of additional occurrences, so a lone byte costs two bytes of output
	i := 0
	for i < len(data) {
		v := data[i]
		var ct uint8
		for i+int(ct)+1 < len(data) && ct < 255 && data[i+int(ct)+1] == v {
			ct++
		}
		out = append(out, v, ct)
		i += int(ct) + 1

		// crunching isn't paying. store raw instead
		if len(out) >= headerSize+len(data) {
			out = out[:headerSize]
			out[0] = markerRaw
			out = append(out, data...)
			return out
		}
	}

	return out
}

// Uncrunch reverses Crunch, returning the original payload.
func Uncrunch(data []byte) ([]byte, error) {
	if len(data) < headerSize {
		return nil, curated.Errorf(ErrHeader)
	}

	size := int(binary.LittleEndian.Uint32(data[1:]))
	body := data[headerSize:]

	switch data[0] {
	case markerRaw:
		if len(body) != size {
			return nil, curated.Errorf(ErrPayload)
		}
		out := make([]byte, size)
		copy(out, body)
		return out, nil

	case markerRLE:
		// with the current RLE method the number of bytes in the crunched
		// payload should be a multiple of two
		if len(body)&0x01 == 0x01 {
			return nil, curated.Errorf(ErrPayload)
		}

		out := make([]byte, 0, size)
		for i := 0; i < len(body); i += 2 {
			for r := 0; r <= int(body[i+1]); r++ {
				out = append(out, body[i])
			}
		}
		if len(out) != size {
			return nil, curated.Errorf(ErrPayload)
		}
		return out, nil
	}

	return nil, curated.Errorf(ErrHeader)
}
