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

package registers

// StackPointer is the 8 bit stack pointer register. The stack of the 2A03
// lives in page one of the address space; the Address() function includes
// the page offset.
//
// The pointer itself wraps within the page. Pushing past the bottom of the
// stack is legal and overwrites the top.
type StackPointer struct {
	Register
}

// NewStackPointer is the preferred method of initialisation for StackPointer.
func NewStackPointer(val uint8) StackPointer {
	return StackPointer{Register: NewRegister(val, "SP")}
}

// stack lives in page one
const stackOrigin = uint16(0x0100)

// Address returns the full 16 bit address currently pointed to by the stack
// pointer.
func (sp StackPointer) Address() uint16 {
	return stackOrigin | uint16(sp.Value())
}
