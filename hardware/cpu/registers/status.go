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

import (
	"strings"
)

// StatusRegister is the special purpose register that stores the flags of
// the CPU. Individual flags are set and read by direct field access; Value()
// and FromValue() convert to and from the packed byte form used by reset and
// by the stack (PHP/PLP/BRK/RTI).
//
// The two forms are convertible losslessly in both directions: every bit of
// the byte form, including the break and unused bits, is represented.
type StatusRegister struct {
	Sign             bool
	Overflow         bool
	Unused           bool
	Break            bool
	DecimalMode      bool
	InterruptDisable bool
	Zero             bool
	Carry            bool
}

// bit positions of each flag in the packed byte form
const (
	maskSign             = uint8(0x80)
	maskOverflow         = uint8(0x40)
	maskUnused           = uint8(0x20)
	maskBreak            = uint8(0x10)
	maskDecimalMode      = uint8(0x08)
	maskInterruptDisable = uint8(0x04)
	maskZero             = uint8(0x02)
	maskCarry            = uint8(0x01)
)

// NewStatusRegister is the preferred method of initialisation for the status
// register.
func NewStatusRegister() StatusRegister {
	return StatusRegister{}
}

// Label returns the canonical name for the status register.
func (sr StatusRegister) Label() string {
	return "SR"
}

func (sr StatusRegister) String() string {
	s := strings.Builder{}

	if sr.Sign {
		s.WriteRune('N')
	} else {
		s.WriteRune('n')
	}
	if sr.Overflow {
		s.WriteRune('V')
	} else {
		s.WriteRune('v')
	}

	s.WriteRune('-')

	if sr.Break {
		s.WriteRune('B')
	} else {
		s.WriteRune('b')
	}
	if sr.DecimalMode {
		s.WriteRune('D')
	} else {
		s.WriteRune('d')
	}
	if sr.InterruptDisable {
		s.WriteRune('I')
	} else {
		s.WriteRune('i')
	}
	if sr.Zero {
		s.WriteRune('Z')
	} else {
		s.WriteRune('z')
	}
	if sr.Carry {
		s.WriteRune('C')
	} else {
		s.WriteRune('c')
	}

	return s.String()
}

// Reset status flags to the power-on state. All flags clear except the
// unused bit, which is hardwired on.
func (sr *StatusRegister) Reset() {
	sr.FromValue(maskUnused)
}

// Value converts the StatusRegister struct into a value suitable for pushing
// onto the stack.
func (sr StatusRegister) Value() uint8 {
	var v uint8

	if sr.Sign {
		v |= maskSign
	}
	if sr.Overflow {
		v |= maskOverflow
	}
	if sr.Unused {
		v |= maskUnused
	}
	if sr.Break {
		v |= maskBreak
	}
	if sr.DecimalMode {
		v |= maskDecimalMode
	}
	if sr.InterruptDisable {
		v |= maskInterruptDisable
	}
	if sr.Zero {
		v |= maskZero
	}
	if sr.Carry {
		v |= maskCarry
	}

	return v
}

// FromValue converts an 8 bit integer (taken from the stack, for example) to
// the StatusRegister struct receiver.
func (sr *StatusRegister) FromValue(v uint8) {
	sr.Sign = v&maskSign == maskSign
	sr.Overflow = v&maskOverflow == maskOverflow
	sr.Unused = v&maskUnused == maskUnused
	sr.Break = v&maskBreak == maskBreak
	sr.DecimalMode = v&maskDecimalMode == maskDecimalMode
	sr.InterruptDisable = v&maskInterruptDisable == maskInterruptDisable
	sr.Zero = v&maskZero == maskZero
	sr.Carry = v&maskCarry == maskCarry
}
