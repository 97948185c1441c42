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

package execution

import (
	"fmt"
	"strings"

	"github.com/zeeps31/nestalgic/hardware/cpu/instructions"
)

// Result records the details of the most recently executed instruction. It
// exists for hosts and tests that want to observe the CPU; the emulation
// itself never reads it.
type Result struct {
	// address of the opcode
	Address uint16

	// the instruction definition. nil if the opcode at Address had no
	// definition (in which case Error describes the problem)
	Defn *instructions.Definition

	// the operand bytes assembled into a single value. hi byte is zero for
	// single byte operands. meaningless if ByteCount < 2
	InstructionData uint16

	// the number of bytes read during decoding, including the opcode
	ByteCount int

	// total number of cycles the instruction will consume, including any
	// page-cross or branch penalties
	Cycles int

	// whether a page was crossed during address resolution, costing the
	// extra cycle recorded in Cycles
	PageFault bool

	// whether a branch instruction took its branch
	BranchSuccess bool

	// description of any soft error encountered during execution. empty
	// string if there was none
	Error string
}

// Reset nullifies all of the fields of the Result instance.
func (r *Result) Reset() {
	r.Address = 0
	r.Defn = nil
	r.InstructionData = 0
	r.ByteCount = 0
	r.Cycles = 0
	r.PageFault = false
	r.BranchSuccess = false
	r.Error = ""
}

// String returns a disassembly-style rendition of the result.
func (r Result) String() string {
	s := strings.Builder{}
	s.WriteString(fmt.Sprintf("%#04x", r.Address))

	if r.Defn == nil {
		s.WriteString(" ???")
		return s.String()
	}

	s.WriteString(" ")
	s.WriteString(r.Defn.Operator.String())

	operand := r.InstructionData
	switch r.Defn.AddressingMode {
	case instructions.Implied:
	case instructions.Accumulator:
		s.WriteString(" A")
	case instructions.Immediate:
		s.WriteString(fmt.Sprintf(" #$%02x", operand))
	case instructions.Relative:
		s.WriteString(fmt.Sprintf(" $%02x", operand))
	case instructions.Absolute:
		s.WriteString(fmt.Sprintf(" $%04x", operand))
	case instructions.ZeroPage:
		s.WriteString(fmt.Sprintf(" $%02x", operand))
	case instructions.Indirect:
		s.WriteString(fmt.Sprintf(" ($%04x)", operand))
	case instructions.IndexedIndirect:
		s.WriteString(fmt.Sprintf(" ($%02x,X)", operand))
	case instructions.IndirectIndexed:
		s.WriteString(fmt.Sprintf(" ($%02x),Y", operand))
	case instructions.AbsoluteIndexedX:
		s.WriteString(fmt.Sprintf(" $%04x,X", operand))
	case instructions.AbsoluteIndexedY:
		s.WriteString(fmt.Sprintf(" $%04x,Y", operand))
	case instructions.ZeroPageIndexedX:
		s.WriteString(fmt.Sprintf(" $%02x,X", operand))
	case instructions.ZeroPageIndexedY:
		s.WriteString(fmt.Sprintf(" $%02x,Y", operand))
	}

	s.WriteString(fmt.Sprintf(" [%d]", r.Cycles))

	if r.PageFault {
		s.WriteString(" page-fault")
	}

	return s.String()
}
