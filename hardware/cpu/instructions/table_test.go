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

package instructions_test

import (
	"testing"

	"github.com/zeeps31/nestalgic/hardware/cpu/instructions"
	"github.com/zeeps31/nestalgic/test"
)

func TestTableIntegrity(t *testing.T) {
	table := instructions.GetDefinitions()
	test.Equate(t, len(table), 256)

	count := 0
	for i, defn := range table {
		if defn == nil {
			continue
		}
		count++

		// an entry must sit at the index matching its opcode
		test.Equate(t, defn.OpCode, uint8(i))

		// all documented instructions cost between 2 and 7 cycles
		if defn.Cycles < 2 || defn.Cycles > 7 {
			t.Errorf("%s: suspicious cycle count %d", defn, defn.Cycles)
		}

		// byte count is a property of the addressing mode
		var bytes int
		switch defn.AddressingMode {
		case instructions.Implied, instructions.Accumulator:
			bytes = 1
		case instructions.Immediate, instructions.Relative,
			instructions.ZeroPage, instructions.ZeroPageIndexedX, instructions.ZeroPageIndexedY,
			instructions.IndexedIndirect, instructions.IndirectIndexed:
			bytes = 2
		case instructions.Absolute, instructions.AbsoluteIndexedX,
			instructions.AbsoluteIndexedY, instructions.Indirect:
			bytes = 3
		}
		if defn.Bytes != bytes {
			t.Errorf("%s: byte count does not match addressing mode", defn)
		}

		// page sensitivity never applies to write or modify instructions
		if defn.PageSensitive && (defn.Effect == instructions.Write || defn.Effect == instructions.RMW) {
			t.Errorf("%s: page sensitive %s instruction", defn, defn.AddressingMode)
		}
	}

	// the documented instruction set
	test.Equate(t, count, 151)
}

func TestTableSpotChecks(t *testing.T) {
	table := instructions.GetDefinitions()

	defn := table[0xa9]
	test.Equate(t, defn.Operator.String(), "LDA")
	test.Equate(t, defn.Cycles, 2)
	test.Equate(t, defn.AddressingMode == instructions.Immediate, true)

	defn = table[0x6c]
	test.Equate(t, defn.Operator.String(), "JMP")
	test.Equate(t, defn.Cycles, 5)

	defn = table[0x00]
	test.Equate(t, defn.Operator.String(), "BRK")
	test.Equate(t, defn.Cycles, 7)

	test.Equate(t, table[0x90].IsBranch(), true)
	test.Equate(t, table[0xa9].IsBranch(), false)

	// an undocumented opcode has no entry
	if table[0x02] != nil {
		t.Errorf("expected no definition for opcode 0x02")
	}
}
