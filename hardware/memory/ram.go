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

package memory

import (
	"encoding/hex"

	"github.com/zeeps31/nestalgic/hardware/memory/memorymap"
)

// RAM represents the 2KB of internal RAM connected to the CPU bus. The
// physical array is exposed across the whole RAM window of the memory map;
// the window repeats the array every 2KB.
//
// The array is allocated once and never resized.
type RAM struct {
	data []uint8
}

// NewRAM is the preferred method of initialisation for the RAM memory area.
// Contents are zero.
func NewRAM() *RAM {
	return &RAM{
		data: make([]uint8, memorymap.MaskRAM+1),
	}
}

// Reset zeroes the contents of RAM.
func (ram *RAM) Reset() {
	for i := range ram.data {
		ram.data[i] = 0
	}
}

func (ram *RAM) String() string {
	return hex.Dump(ram.data)
}

// Read is an implementation of cpubus.Memory. Address may be any address in
// the RAM window; mirrors collapse onto the physical array.
func (ram *RAM) Read(address uint16) (uint8, error) {
	return ram.data[address&memorymap.MaskRAM], nil
}

// Write is an implementation of cpubus.Memory.
func (ram *RAM) Write(address uint16, data uint8) error {
	ram.data[address&memorymap.MaskRAM] = data
	return nil
}

// Peek is an implementation of cpubus.DebugBus.
func (ram *RAM) Peek(address uint16) (uint8, error) {
	return ram.Read(address)
}

// Poke is an implementation of cpubus.DebugBus.
func (ram *RAM) Poke(address uint16, data uint8) error {
	return ram.Write(address, data)
}
