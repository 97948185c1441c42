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

// Package cpu emulates the 2A03, the CPU at the heart of the NES. The 2A03
// is a 6502 with the decimal arithmetic circuitry disabled; the decimal
// flag itself survives and can be set and cleared but it never influences
// the result of an addition or subtraction.
//
// The CPU is initialised with a reference to a cpubus.Memory
// implementation and driven with repeated calls to the Clock() function,
// one emulated cycle per call. Timing is aggregate rather than
// cycle-perfect: an instruction's effects all land on the first pulse of
// its execution window and the remaining pulses of the window simply
// drain. Observed between instruction boundaries the machine state is
// exactly that of the real hardware, including the extra cycle charged for
// page-crossing reads and taken branches.
//
// Interrupts are delivered by calling IRQ() or NMI(). The request is
// latched and serviced when the in-flight instruction completes.
//
// A diagnostic record of the most recently completed instruction is kept
// in the LastResult field. Addresses that no attached device can serve do
// not stop the machine: the bus substitutes a safe default, the event is
// logged and noted in LastResult.Error. The StrictErrors field promotes
// these conditions to errors returned from Clock().
package cpu
