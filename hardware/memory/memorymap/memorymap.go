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

package memorymap

// Area represents the different areas of the CPU bus.
type Area int

func (a Area) String() string {
	switch a {
	case RAM:
		return "RAM"
	case PPU:
		return "PPU"
	case APU:
		return "APU"
	case Cartridge:
		return "Cartridge"
	}

	return "undefined"
}

// The different memory areas on the CPU bus of the NES.
const (
	Undefined Area = iota
	RAM
	PPU
	APU
	Cartridge
)

// The origin and memory top for each area of memory. Checking which area an
// address falls within and forcing the address into the normalised range is
// all handled by the MapAddress() function.
//
//	0x0000 to 0x07ff    2KB internal RAM
//	0x0800 to 0x1fff    RAM mirrors (repeats every 0x0800 bytes)
//	0x2000 to 0x2007    PPU registers
//	0x2008 to 0x3fff    PPU register mirrors (repeats every 8 bytes)
//	0x4000 to 0x401f    APU and IO registers
//	0x4020 to 0xffff    cartridge space (PRG ROM/RAM and mapper registers)
const (
	OriginRAM  = uint16(0x0000)
	MemtopRAM  = uint16(0x1fff)
	OriginPPU  = uint16(0x2000)
	MemtopPPU  = uint16(0x3fff)
	OriginAPU  = uint16(0x4000)
	MemtopAPU  = uint16(0x401f)
	OriginCart = uint16(0x4020)
	MemtopCart = uint16(0xffff)
)

// MaskRAM keeps only the bits of a RAM address that select a byte in the
// physical 2KB array. Applying the mask collapses every RAM mirror onto the
// primary address range.
const MaskRAM = uint16(0x07ff)

// MaskPPU keeps only the bits of a PPU address that select one of the eight
// hardware registers.
const MaskPPU = uint16(0x0007)

// Memtop is the top most address on the CPU bus.
const Memtop = uint16(0xffff)

// MapAddress translates the address argument from mirror space to primary
// space and identifies the memory area the address belongs to. An address
// should be passed through this function before accessing memory.
//
// Every address in the 16 bit address space resolves to exactly one area.
// The Undefined area is never returned; it exists only as the zero value of
// the Area type.
func MapAddress(address uint16) (uint16, Area) {
	// note that the order of these filters is important

	if address <= MemtopRAM {
		return address & MaskRAM, RAM
	}

	if address <= MemtopPPU {
		return OriginPPU | (address & MaskPPU), PPU
	}

	if address <= MemtopAPU {
		return address, APU
	}

	return address, Cartridge
}
