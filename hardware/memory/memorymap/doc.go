// This file is part of Nestalgic.
//
// Nestalgic is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Nestalgic is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Nestalgic.  If not, see <https://www.gnu.org/licenses/>.

// Package memorymap describes the layout of the address space as seen from
// the CPU. Large parts of the space are mirrors: many logical addresses
// intentionally alias the same physical storage. The MapAddress() function
// collapses a mirror address onto its primary address and names the area of
// memory that owns it.
//
// The memory package uses MapAddress() to route every bus access to exactly
// one device. Nothing in this package performs an access itself.
package memorymap
