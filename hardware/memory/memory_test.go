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

package memory_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zeeps31/nestalgic/hardware/memory"
	"github.com/zeeps31/nestalgic/hardware/memory/cpubus"
	"github.com/zeeps31/nestalgic/logger"
)

// mockDevice records accesses made through it. it implements cpubus.Memory
// and nothing else.
type mockDevice struct {
	lastRead   uint16
	lastWrite  uint16
	lastData   uint8
	readValue  uint8
	writeCount int
}

func (d *mockDevice) Read(address uint16) (uint8, error) {
	d.lastRead = address
	return d.readValue, nil
}

func (d *mockDevice) Write(address uint16, data uint8) error {
	d.lastWrite = address
	d.lastData = data
	d.writeCount++
	return nil
}

func TestRAMMirroringEquivalence(t *testing.T) {
	mem := memory.NewCPUBus()

	// writing at any logical address reads back at the primary address and
	// at every mirror of it
	for a := uint16(0); a <= 0x1fff; a++ {
		v := uint8(a ^ (a >> 8))
		require.NoError(t, mem.Write(a, v))

		r, err := mem.Read(a & 0x07ff)
		require.NoError(t, err)
		assert.Equal(t, v, r, "primary read of %#04x", a)

		if a+0x0800 <= 0x1fff {
			r, err = mem.Read(a + 0x0800)
			require.NoError(t, err)
			assert.Equal(t, v, r, "mirror read of %#04x", a)
		}
	}
}

func TestUnattachedAreaPolicy(t *testing.T) {
	logger.Clear()
	mem := memory.NewCPUBus()

	// a read of an area with no attached device answers zero and an
	// advisory error
	v, err := mem.Read(0x2002)
	assert.Zero(t, v)
	require.Error(t, err)
	assert.True(t, errors.Is(err, cpubus.AddressError))

	// a write is dropped with the same advisory error
	err = mem.Write(0x4017, 0xff)
	require.Error(t, err)
	assert.True(t, errors.Is(err, cpubus.AddressError))

	// both conditions are reported on the diagnostic channel
	s := &strings.Builder{}
	logger.Write(s)
	assert.Contains(t, s.String(), "memory: read of 0x2002")
	assert.Contains(t, s.String(), "memory: write of 0x4017")
}

func TestServedAddressesAreNotReported(t *testing.T) {
	logger.Clear()
	mem := memory.NewCPUBus()

	// exactly one of {serve, report} happens. a served RAM access must not
	// appear in the log
	require.NoError(t, mem.Write(0x0100, 0xab))
	_, err := mem.Read(0x0900)
	require.NoError(t, err)

	s := &strings.Builder{}
	logger.Write(s)
	assert.Empty(t, s.String())
}

func TestDeviceDelegation(t *testing.T) {
	mem := memory.NewCPUBus()

	ppu := &mockDevice{readValue: 0x55}
	mem.AttachPPU(ppu)

	// PPU register addresses are collapsed onto the primary register before
	// delegation
	v, err := mem.Read(0x3456)
	require.NoError(t, err)
	assert.Equal(t, uint8(0x55), v)
	assert.Equal(t, uint16(0x2006), ppu.lastRead)

	require.NoError(t, mem.Write(0x2008, 0x99))
	assert.Equal(t, uint16(0x2000), ppu.lastWrite)
	assert.Equal(t, uint8(0x99), ppu.lastData)

	cart := &mockDevice{readValue: 0xea}
	mem.AttachCartridge(cart)

	// cartridge addresses are passed through untranslated
	v, err = mem.Read(0xfffc)
	require.NoError(t, err)
	assert.Equal(t, uint8(0xea), v)
	assert.Equal(t, uint16(0xfffc), cart.lastRead)

	// detaching restores the report-and-default policy
	mem.AttachCartridge(nil)
	v, err = mem.Read(0xfffc)
	assert.Zero(t, v)
	assert.Error(t, err)
}

func TestPeekAndPoke(t *testing.T) {
	logger.Clear()
	mem := memory.NewCPUBus()

	require.NoError(t, mem.Poke(0x0001, 0x42))
	v, err := mem.Peek(0x0801)
	require.NoError(t, err)
	assert.Equal(t, uint8(0x42), v)

	// peeking an unattached area errors but is never logged
	_, err = mem.Peek(0x2000)
	assert.True(t, errors.Is(err, cpubus.AddressError))

	s := &strings.Builder{}
	logger.Write(s)
	assert.Empty(t, s.String())
}

func TestRAMReset(t *testing.T) {
	mem := memory.NewCPUBus()
	require.NoError(t, mem.Write(0x0123, 0xff))
	mem.RAM.Reset()
	v, err := mem.Read(0x0123)
	require.NoError(t, err)
	assert.Zero(t, v)
}
