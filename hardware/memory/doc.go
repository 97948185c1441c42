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

// Package memory implements the bus that the CPU reads and writes through.
// The bus owns the 2KB of internal RAM and routes every other address to
// whichever device has been attached to the owning area of the memory map
// (PPU registers, APU registers, cartridge space).
//
// Routing is by address-range ownership, never by device type: a device is
// anything that implements cpubus.Memory. An access to an area with no
// attached device is a configuration defect. It is reported to the central
// logger and answered with a safe default (zero for reads, no-op for
// writes) so that the emulated machine keeps running. The returned error
// wraps cpubus.AddressError and is advisory.
package memory
