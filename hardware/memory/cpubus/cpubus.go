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

// Package cpubus defines the interfaces that memory-mapped participants on
// the CPU bus must implement. The CPU itself only ever sees the Memory
// interface; which device services an address is the bus's concern.
package cpubus

import "errors"

// Memory defines the operations for the memory system when accessed from the
// CPU. All memory areas implement this interface. The CPUBus type in the
// memory package also implements this interface and maps the read/write
// address to the correct memory area, meaning that the CPU need not care
// which part of memory it is accessing.
//
// A Read() must always return a usable value. When an address cannot be
// serviced the implementation returns the defined safe default (zero) along
// with an error wrapping AddressError. Callers that want the emulation to
// keep running treat AddressError as advisory.
type Memory interface {
	Read(address uint16) (uint8, error)
	Write(address uint16, data uint8) error
}

// DebugBus defines the meta-operations for memory areas. These functions are
// outside of the normal operation of the machine and must not be used by the
// emulation itself. Peek and Poke never have side effects on the state of
// the attached device.
type DebugBus interface {
	Peek(address uint16) (uint8, error)
	Poke(address uint16, data uint8) error
}

// AddressError is the sentinel error wrapped by all errors that indicate an
// address could not be serviced by any device on the bus. The CPU
// distinguishes these soft errors from genuine failures with errors.Is().
var AddressError = errors.New("address error")

// The interrupt vectors of the 2A03. Each is the address of the low byte of
// a little-endian 16 bit address.
const (
	NMI   = uint16(0xfffa)
	Reset = uint16(0xfffc)
	IRQ   = uint16(0xfffe)
)
