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

package hardware_test

import (
	"testing"

	"github.com/zeeps31/nestalgic/hardware"
	"github.com/zeeps31/nestalgic/hardware/cpu"
	"github.com/zeeps31/nestalgic/test"
)

// testCart is a fixed 32K ROM occupying the upper half of the address
// space, the arrangement of the simplest real cartridges.
type testCart struct {
	rom [0x8000]uint8
}

func (ct *testCart) Read(address uint16) (uint8, error) {
	if address < 0x8000 {
		return 0, nil
	}
	return ct.rom[address-0x8000], nil
}

func (ct *testCart) Write(_ uint16, _ uint8) error {
	// ROM. writes have no effect
	return nil
}

func TestConsoleProgram(t *testing.T) {
	ct := &testCart{}

	// program at $8000:
	//    LDA #$42
	//    STA $00      store in work RAM
	//    LDA $0800    read it back through the first RAM mirror
	//    STA $2000    PPU area, nothing attached
	program := []uint8{
		0xa9, 0x42,
		0x85, 0x00,
		0xad, 0x00, 0x08,
		0x8d, 0x00, 0x20,
	}
	copy(ct.rom[:], program)

	// reset vector at $fffc
	ct.rom[0x7ffc] = 0x00
	ct.rom[0x7ffd] = 0x80

	nes := hardware.NewNestalgic()
	nes.AttachCartridge(ct)
	test.ExpectedSuccess(t, nes.Reset())

	ta := cpu.NewTestAccess(nes.CPU)
	test.Equate(t, ta.PC(), 0x8000)

	test.ExpectedSuccess(t, nes.Step()) // LDA #$42
	test.ExpectedSuccess(t, nes.Step()) // STA $00
	v, err := nes.Mem.Peek(0x0000)
	test.ExpectedSuccess(t, err)
	test.Equate(t, v, 0x42)

	ta.SetA(0x00)
	test.ExpectedSuccess(t, nes.Step()) // LDA $0800
	test.Equate(t, ta.A(), 0x42)

	// the write to the unattached PPU area must not stop the machine but
	// it is reported in the instruction result
	test.ExpectedSuccess(t, nes.Step()) // STA $2000
	if nes.CPU.LastResult.Error == "" {
		t.Errorf("expected the unserviceable write to be reported")
	}
}

func TestConsoleReset(t *testing.T) {
	ct := &testCart{}
	ct.rom[0x7ffc] = 0x34
	ct.rom[0x7ffd] = 0x92

	nes := hardware.NewNestalgic()
	nes.AttachCartridge(ct)

	// scribble on RAM before the reset
	test.ExpectedSuccess(t, nes.Mem.Poke(0x0123, 0xff))

	test.ExpectedSuccess(t, nes.Reset())
	test.Equate(t, cpu.NewTestAccess(nes.CPU).PC(), 0x9234)

	v, err := nes.Mem.Peek(0x0123)
	test.ExpectedSuccess(t, err)
	test.Equate(t, v, 0x00)
}
