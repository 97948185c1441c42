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

package hardware

import (
	"github.com/zeeps31/nestalgic/hardware/cpu"
	"github.com/zeeps31/nestalgic/hardware/memory"
	"github.com/zeeps31/nestalgic/hardware/memory/cpubus"
)

// Nestalgic is the collection of components that make up the emulated
// console: the CPU and the bus it addresses memory through. Peripheral
// devices (PPU, APU, cartridge) are attached to the bus by the host.
type Nestalgic struct {
	CPU *cpu.CPU
	Mem *memory.CPUBus
}

// NewNestalgic is the preferred method of initialisation for the Nestalgic
// structure. Reset() must be called, after any devices have been attached,
// before the machine is stepped.
func NewNestalgic() *Nestalgic {
	mem := memory.NewCPUBus()
	return &Nestalgic{
		CPU: cpu.NewCPU(mem),
		Mem: mem,
	}
}

// AttachCartridge connects a cartridge to the bus. The reset vector is
// read from the cartridge area so in practice a cartridge must be attached
// before Reset() can do anything useful.
func (nes *Nestalgic) AttachCartridge(cart cpubus.Memory) {
	nes.Mem.AttachCartridge(cart)
}

// AttachPPU connects a PPU to the bus.
func (nes *Nestalgic) AttachPPU(ppu cpubus.Memory) {
	nes.Mem.AttachPPU(ppu)
}

// AttachAPU connects an APU to the bus.
func (nes *Nestalgic) AttachAPU(apu cpubus.Memory) {
	nes.Mem.AttachAPU(apu)
}

// Reset the console to its power-on state. Work RAM is zeroed and the CPU
// begins its start sequence at the address in the reset vector.
func (nes *Nestalgic) Reset() error {
	nes.Mem.RAM.Reset()
	return nes.CPU.Reset()
}

// Clock advances the console by one CPU cycle.
func (nes *Nestalgic) Clock() error {
	return nes.CPU.Clock()
}

// Step advances the console to the end of the current instruction: at
// least one clock pulse, then as many as the instruction still owes.
func (nes *Nestalgic) Step() error {
	if err := nes.CPU.Clock(); err != nil {
		return err
	}
	for !nes.CPU.Idle() {
		if err := nes.CPU.Clock(); err != nil {
			return err
		}
	}
	return nil
}
