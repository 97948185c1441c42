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
	"github.com/pkg/errors"

	"github.com/zeeps31/nestalgic/hardware/memory/cpubus"
	"github.com/zeeps31/nestalgic/hardware/memory/memorymap"
	"github.com/zeeps31/nestalgic/logger"
)

// CPUBus is the single root of the CPU's view of memory. It owns the
// internal RAM and routes all other accesses to the device attached to the
// area the address belongs to.
//
// Exactly one of two things happens on every access: either the address is
// served by a device, or the access is reported as unserviceable and the
// safe default applies. Never both.
type CPUBus struct {
	RAM *RAM

	ppu  cpubus.Memory
	apu  cpubus.Memory
	cart cpubus.Memory
}

// NewCPUBus is the preferred method of initialisation for the CPUBus type.
// The bus starts with internal RAM only; other areas are empty until a
// device is attached.
func NewCPUBus() *CPUBus {
	return &CPUBus{
		RAM: NewRAM(),
	}
}

// AttachPPU binds a device to the PPU register area. Attaching nil detaches
// the current device.
func (mem *CPUBus) AttachPPU(d cpubus.Memory) {
	mem.ppu = d
}

// AttachAPU binds a device to the APU/IO register area.
func (mem *CPUBus) AttachAPU(d cpubus.Memory) {
	mem.apu = d
}

// AttachCartridge binds a device to the cartridge area of the memory map.
// The reset/IRQ/NMI vectors live in this area so the machine is not usable
// until a cartridge is attached.
func (mem *CPUBus) AttachCartridge(d cpubus.Memory) {
	mem.cart = d
}

// device returns whichever device is attached to the area.
func (mem *CPUBus) device(area memorymap.Area) cpubus.Memory {
	switch area {
	case memorymap.RAM:
		return mem.RAM
	case memorymap.PPU:
		return mem.ppu
	case memorymap.APU:
		return mem.apu
	case memorymap.Cartridge:
		return mem.cart
	}
	return nil
}

// Read is an implementation of cpubus.Memory. A read of an address with no
// attached device returns zero and an error wrapping cpubus.AddressError.
func (mem *CPUBus) Read(address uint16) (uint8, error) {
	pri, area := memorymap.MapAddress(address)

	if d := mem.device(area); d != nil {
		return d.Read(pri)
	}

	logger.Logf(logger.Allow, "memory", "read of %#04x: no device attached to %s area", address, area)
	return 0, errors.Wrapf(cpubus.AddressError, "read of %#04x (%s area)", address, area)
}

// Write is an implementation of cpubus.Memory. A write to an address with no
// attached device is dropped and an error wrapping cpubus.AddressError is
// returned.
func (mem *CPUBus) Write(address uint16, data uint8) error {
	pri, area := memorymap.MapAddress(address)

	if d := mem.device(area); d != nil {
		return d.Write(pri, data)
	}

	logger.Logf(logger.Allow, "memory", "write of %#04x: no device attached to %s area", address, area)
	return errors.Wrapf(cpubus.AddressError, "write of %#04x (%s area)", address, area)
}

// Peek is an implementation of cpubus.DebugBus. Unlike Read it never
// touches the diagnostic log and, where the attached device distinguishes
// the two, never disturbs device state.
func (mem *CPUBus) Peek(address uint16) (uint8, error) {
	pri, area := memorymap.MapAddress(address)

	d := mem.device(area)
	if d == nil {
		return 0, errors.Wrapf(cpubus.AddressError, "peek of %#04x (%s area)", address, area)
	}

	if db, ok := d.(cpubus.DebugBus); ok {
		return db.Peek(pri)
	}
	return d.Read(pri)
}

// Poke is an implementation of cpubus.DebugBus.
func (mem *CPUBus) Poke(address uint16, data uint8) error {
	pri, area := memorymap.MapAddress(address)

	d := mem.device(area)
	if d == nil {
		return errors.Wrapf(cpubus.AddressError, "poke of %#04x (%s area)", address, area)
	}

	if db, ok := d.(cpubus.DebugBus); ok {
		return db.Poke(pri, data)
	}
	return d.Write(pri, data)
}
