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

package registers_test

import (
	"testing"

	"github.com/zeeps31/nestalgic/hardware/cpu/registers"
	"github.com/zeeps31/nestalgic/test"
)

func TestStatusConversionRoundTrip(t *testing.T) {
	// the byte form and the flag form are convertible losslessly in both
	// directions, for every possible byte value
	var sr registers.StatusRegister
	for v := 0; v <= 0xff; v++ {
		sr.FromValue(uint8(v))
		test.Equate(t, sr.Value(), uint8(v))
	}
}

func TestStatusSingleFlag(t *testing.T) {
	var sr registers.StatusRegister
	sr.Reset()

	// setting one flag leaves all others untouched
	v := sr.Value()
	sr.Carry = true
	test.Equate(t, sr.Value(), v|0x01)

	sr.Sign = true
	test.Equate(t, sr.Value(), v|0x81)

	sr.Carry = false
	test.Equate(t, sr.Value(), v|0x80)
}

func TestStatusReset(t *testing.T) {
	var sr registers.StatusRegister
	sr.FromValue(0xff)
	sr.Reset()

	// only the hardwired unused bit survives a reset
	test.Equate(t, sr.Value(), 0x20)
	test.ExpectedFailure(t, sr.Carry)
	test.ExpectedFailure(t, sr.Zero)
	test.ExpectedSuccess(t, sr.Unused)
}

func TestStatusString(t *testing.T) {
	var sr registers.StatusRegister
	sr.Reset()
	test.Equate(t, sr.String(), "nv-bdizc")

	sr.Sign = true
	sr.Zero = true
	sr.InterruptDisable = true
	test.Equate(t, sr.String(), "Nv-bdIZc")
}
