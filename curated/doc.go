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

// Package curated is a helper package for the plain Go language error type.
// Curated errors are created with the Errorf() function and can be compared
// against a pattern string with the Is() and Has() functions.
//
// The emulation core itself raises no errors during simulation. Curated
// errors appear only at the snapshot surface, where a corrupt or truncated
// record must be reported to the session layer above.
package curated
