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

// the chip's internal character generator. sixty-four glyphs of eight rows,
// most significant bit leftmost. glyph order follows the character
// generator's own code ordering: '@' then the upper case letters, then
// space and the punctuation/digit block. a character byte indexes the table
// with its low six bits, which lands lower case letters on their upper
// case glyphs.
var font = [64][8]uint8{
	{0x7c, 0xc6, 0xde, 0xde, 0xde, 0xc0, 0x78, 0x00}, // @
	{0x30, 0x78, 0xcc, 0xcc, 0xfc, 0xcc, 0xcc, 0x00}, // A
	{0xfc, 0x66, 0x66, 0x7c, 0x66, 0x66, 0xfc, 0x00}, // B
	{0x3c, 0x66, 0xc0, 0xc0, 0xc0, 0x66, 0x3c, 0x00}, // C
	{0xf8, 0x6c, 0x66, 0x66, 0x66, 0x6c, 0xf8, 0x00}, // D
	{0xfe, 0x62, 0x68, 0x78, 0x68, 0x62, 0xfe, 0x00}, // E
	{0xfe, 0x62, 0x68, 0x78, 0x68, 0x60, 0xf0, 0x00}, // F
	{0x3c, 0x66, 0xc0, 0xc0, 0xce, 0x66, 0x3e, 0x00}, // G
	{0xcc, 0xcc, 0xcc, 0xfc, 0xcc, 0xcc, 0xcc, 0x00}, // H
	{0x78, 0x30, 0x30, 0x30, 0x30, 0x30, 0x78, 0x00}, // I
	{0x1e, 0x0c, 0x0c, 0x0c, 0xcc, 0xcc, 0x78, 0x00}, // J
	{0xe6, 0x66, 0x6c, 0x78, 0x6c, 0x66, 0xe6, 0x00}, // K
	{0xf0, 0x60, 0x60, 0x60, 0x62, 0x66, 0xfe, 0x00}, // L
	{0xc6, 0xee, 0xfe, 0xfe, 0xd6, 0xc6, 0xc6, 0x00}, // M
	{0xc6, 0xe6, 0xf6, 0xde, 0xce, 0xc6, 0xc6, 0x00}, // N
	{0x38, 0x6c, 0xc6, 0xc6, 0xc6, 0x6c, 0x38, 0x00}, // O
	{0xfc, 0x66, 0x66, 0x7c, 0x60, 0x60, 0xf0, 0x00}, // P
	{0x78, 0xcc, 0xcc, 0xcc, 0xdc, 0x78, 0x1c, 0x00}, // Q
	{0xfc, 0x66, 0x66, 0x7c, 0x6c, 0x66, 0xe6, 0x00}, // R
	{0x78, 0xcc, 0xe0, 0x70, 0x1c, 0xcc, 0x78, 0x00}, // S
	{0xfc, 0xb4, 0x30, 0x30, 0x30, 0x30, 0x78, 0x00}, // T
	{0xcc, 0xcc, 0xcc, 0xcc, 0xcc, 0xcc, 0xfc, 0x00}, // U
	{0xcc, 0xcc, 0xcc, 0xcc, 0xcc, 0x78, 0x30, 0x00}, // V
	{0xc6, 0xc6, 0xc6, 0xd6, 0xfe, 0xee, 0xc6, 0x00}, // W
	{0xc6, 0xc6, 0x6c, 0x38, 0x38, 0x6c, 0xc6, 0x00}, // X
	{0xcc, 0xcc, 0xcc, 0x78, 0x30, 0x30, 0x78, 0x00}, // Y
	{0xfe, 0xc6, 0x8c, 0x18, 0x32, 0x66, 0xfe, 0x00}, // Z
	{0x78, 0x60, 0x60, 0x60, 0x60, 0x60, 0x78, 0x00}, // [
	{0xc0, 0x60, 0x30, 0x18, 0x0c, 0x06, 0x02, 0x00}, // backslash
	{0x78, 0x18, 0x18, 0x18, 0x18, 0x18, 0x78, 0x00}, // ]
	{0x10, 0x38, 0x6c, 0xc6, 0x00, 0x00, 0x00, 0x00}, // up arrow
	{0x00, 0x30, 0x60, 0xfe, 0x60, 0x30, 0x00, 0x00}, // left arrow
	{0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00}, // space
	{0x30, 0x78, 0x78, 0x30, 0x30, 0x00, 0x30, 0x00}, // !
	{0x6c, 0x6c, 0x6c, 0x00, 0x00, 0x00, 0x00, 0x00}, // "
	{0x6c, 0x6c, 0xfe, 0x6c, 0xfe, 0x6c, 0x6c, 0x00}, // #
	{0x30, 0x7c, 0xc0, 0x78, 0x0c, 0xf8, 0x30, 0x00}, // $
	{0x00, 0xc6, 0xcc, 0x18, 0x30, 0x66, 0xc6, 0x00}, // %
	{0x38, 0x6c, 0x38, 0x76, 0xdc, 0xcc, 0x76, 0x00}, // &
	{0x60, 0x60, 0xc0, 0x00, 0x00, 0x00, 0x00, 0x00}, // '
	{0x18, 0x30, 0x60, 0x60, 0x60, 0x30, 0x18, 0x00}, // (
	{0x60, 0x30, 0x18, 0x18, 0x18, 0x30, 0x60, 0x00}, // )
	{0x00, 0x66, 0x3c, 0xff, 0x3c, 0x66, 0x00, 0x00}, // *
	{0x00, 0x30, 0x30, 0xfc, 0x30, 0x30, 0x00, 0x00}, // +
	{0x00, 0x00, 0x00, 0x00, 0x00, 0x30, 0x30, 0x60}, // ,
	{0x00, 0x00, 0x00, 0xfc, 0x00, 0x00, 0x00, 0x00}, // -
	{0x00, 0x00, 0x00, 0x00, 0x00, 0x30, 0x30, 0x00}, // .
	{0x06, 0x0c, 0x18, 0x30, 0x60, 0xc0, 0x80, 0x00}, // /
	{0x7c, 0xc6, 0xce, 0xde, 0xf6, 0xe6, 0x7c, 0x00}, // 0
	{0x30, 0x70, 0x30, 0x30, 0x30, 0x30, 0xfc, 0x00}, // 1
	{0x78, 0xcc, 0x0c, 0x38, 0x60, 0xcc, 0xfc, 0x00}, // 2
	{0x78, 0xcc, 0x0c, 0x38, 0x0c, 0xcc, 0x78, 0x00}, // 3
	{0x1c, 0x3c, 0x6c, 0xcc, 0xfe, 0x0c, 0x1e, 0x00}, // 4
	{0xfc, 0xc0, 0xf8, 0x0c, 0x0c, 0xcc, 0x78, 0x00}, // 5
	{0x38, 0x60, 0xc0, 0xf8, 0xcc, 0xcc, 0x78, 0x00}, // 6
	{0xfc, 0xcc, 0x0c, 0x18, 0x30, 0x30, 0x30, 0x00}, // 7
	{0x78, 0xcc, 0xcc, 0x78, 0xcc, 0xcc, 0x78, 0x00}, // 8
	{0x78, 0xcc, 0xcc, 0x7c, 0x0c, 0x18, 0x70, 0x00}, // 9
	{0x00, 0x30, 0x30, 0x00, 0x00, 0x30, 0x30, 0x00}, // :
	{0x00, 0x30, 0x30, 0x00, 0x00, 0x30, 0x30, 0x60}, // ;
	{0x18, 0x30, 0x60, 0xc0, 0x60, 0x30, 0x18, 0x00}, // <
	{0x00, 0x00, 0xfc, 0x00, 0x00, 0xfc, 0x00, 0x00}, // =
	{0x60, 0x30, 0x18, 0x0c, 0x18, 0x30, 0x60, 0x00}, // >
	{0x78, 0xcc, 0x0c, 0x18, 0x30, 0x00, 0x30, 0x00}, // ?
}

// glyphRow returns one row of the glyph for the given character byte. Rows
// beyond the glyph height are blank, which is what tall character row
// configurations display.
func glyphRow(ch uint8, row int) uint8 {
	if row < 0 || row > 7 {
		return 0
	}
	return font[ch&0x3f][row]
}
