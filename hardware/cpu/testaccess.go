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

package cpu

import "github.com/zeeps31/nestalgic/hardware/cpu/registers"

// TestAccess is a back-door into the CPU's register file for tests and
// debugging tools. Normal consumers of the package drive the CPU through
// Clock() and should never need it.
type TestAccess struct {
	mc *CPU
}

// NewTestAccess wraps a CPU for register level access.
func NewTestAccess(mc *CPU) TestAccess {
	return TestAccess{mc: mc}
}

// A returns the value of the accumulator.
func (ta TestAccess) A() uint8 {
	return ta.mc.a.Value()
}

// SetA loads the accumulator. Status flags are unaffected.
func (ta TestAccess) SetA(v uint8) {
	ta.mc.a.Load(v)
}

// X returns the value of the X index register.
func (ta TestAccess) X() uint8 {
	return ta.mc.x.Value()
}

// SetX loads the X index register. Status flags are unaffected.
func (ta TestAccess) SetX(v uint8) {
	ta.mc.x.Load(v)
}

// Y returns the value of the Y index register.
func (ta TestAccess) Y() uint8 {
	return ta.mc.y.Value()
}

// SetY loads the Y index register. Status flags are unaffected.
func (ta TestAccess) SetY(v uint8) {
	ta.mc.y.Load(v)
}

// SP returns the value of the stack pointer.
func (ta TestAccess) SP() uint8 {
	return ta.mc.sp.Value()
}

// SetSP loads the stack pointer.
func (ta TestAccess) SetSP(v uint8) {
	ta.mc.sp.Load(v)
}

// PC returns the value of the program counter.
func (ta TestAccess) PC() uint16 {
	return ta.mc.pc.Address()
}

// SetPC loads the program counter.
func (ta TestAccess) SetPC(v uint16) {
	ta.mc.pc.Load(v)
}

// Status returns a copy of the status register.
func (ta TestAccess) Status() registers.StatusRegister {
	return ta.mc.status
}

// SetStatus replaces the status register.
func (ta TestAccess) SetStatus(sr registers.StatusRegister) {
	ta.mc.status = sr
}

// PendingCycles returns the number of cycles still owed by the in-flight
// instruction. Zero means the engine is idle and the next Clock() will
// fetch.
func (ta TestAccess) PendingCycles() int {
	return ta.mc.pendingCycles
}
