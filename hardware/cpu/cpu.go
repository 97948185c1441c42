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

import (
	"errors"
	"fmt"

	"github.com/zeeps31/nestalgic/hardware/cpu/execution"
	"github.com/zeeps31/nestalgic/hardware/cpu/instructions"
	"github.com/zeeps31/nestalgic/hardware/cpu/registers"
	"github.com/zeeps31/nestalgic/hardware/memory/cpubus"
	"github.com/zeeps31/nestalgic/logger"
)

// CPU implements the 2A03 found in the NES. Register logic is implemented by
// the types in the registers sub-package.
//
// The CPU is driven one clock pulse at a time through the Clock() function.
// An instruction performs all of its register and memory effects on the
// first pulse of its execution window; the remaining pulses of the window
// merely elapse. This is sufficient for any consumer that only observes
// state between instructions, not mid-instruction bus activity.
type CPU struct {
	pc     registers.ProgramCounter
	a      registers.Register
	x      registers.Register
	y      registers.Register
	sp     registers.StackPointer
	status registers.StatusRegister

	// scratch register for operations that work on a memory operand
	acc8 registers.Register

	mem          cpubus.Memory
	instructions []*instructions.Definition

	// the number of cycles still owed by the in-flight instruction. the
	// next fetch/decode/execute happens only when this has drained to zero
	pendingCycles int

	// latched interrupt lines. serviced when the engine next goes idle
	irqLine bool
	nmiLine bool

	// StrictErrors changes the handling of decode errors and unserviceable
	// bus addresses: instead of a log entry and a safe default, the
	// condition is returned as an error from Clock(). The default (false)
	// keeps the emulated machine running, which is the more useful
	// behaviour when debugging a program.
	StrictErrors bool

	// last result. a diagnostic record of the most recently completed
	// instruction
	LastResult execution.Result
}

// cycle costs fixed by the hardware start sequences
const (
	resetCycles = 7
	irqCycles   = 7
	nmiCycles   = 8
)

// a decode error is treated as a no-op fetch. it is charged like one too
const decodeErrorCycles = 2

// the value of the stack pointer after the reset sequence. the hardware
// performs three phantom stack pushes during the sequence, leaving the
// pointer three below the top of the stack page.
const resetStackPointer = 0xfd

// NewCPU is the preferred method of initialisation for the CPU structure.
// Reset() must be called before the first Clock().
func NewCPU(mem cpubus.Memory) *CPU {
	return &CPU{
		mem:          mem,
		pc:           registers.NewProgramCounter(0),
		a:            registers.NewRegister(0, "A"),
		x:            registers.NewRegister(0, "X"),
		y:            registers.NewRegister(0, "Y"),
		sp:           registers.NewStackPointer(0),
		status:       registers.NewStatusRegister(),
		acc8:         registers.NewRegister(0, "scratch"),
		instructions: instructions.GetDefinitions(),
	}
}

// Plumb a new Memory implementation into the CPU.
func (mc *CPU) Plumb(mem cpubus.Memory) {
	mc.mem = mem
}

func (mc *CPU) String() string {
	return fmt.Sprintf("PC=%s A=%s X=%s Y=%s SP=%#02x SR=%s",
		mc.pc, mc.a, mc.x, mc.y, mc.sp.Value(), mc.status)
}

// Reset models the reset line of the 2A03: registers return to their
// architectural defaults, the program counter is loaded from the reset
// vector and the fixed cost of the start sequence is charged to the cycle
// counter.
func (mc *CPU) Reset() error {
	mc.a.Load(0)
	mc.x.Load(0)
	mc.y.Load(0)
	mc.sp.Load(resetStackPointer)
	mc.status.Reset()
	mc.status.InterruptDisable = true

	mc.irqLine = false
	mc.nmiLine = false
	mc.LastResult.Reset()

	lo, err := mc.read8(cpubus.Reset)
	if err != nil {
		return err
	}
	hi, err := mc.read8(cpubus.Reset + 1)
	if err != nil {
		return err
	}
	mc.pc.Load((uint16(hi) << 8) | uint16(lo))

	mc.pendingCycles += resetCycles

	if mc.StrictErrors && mc.LastResult.Error != "" {
		return fmt.Errorf("cpu: reset: %s", mc.LastResult.Error)
	}

	return nil
}

// Idle returns true when no cycles are owed by a previous instruction; the
// next call to Clock() will fetch.
func (mc *CPU) Idle() bool {
	return mc.pendingCycles == 0
}

// IRQ latches the maskable interrupt line. The interrupt is serviced when
// the in-flight instruction has completed, unless the interrupt disable
// flag is set at that point.
func (mc *CPU) IRQ() {
	mc.irqLine = true
}

// NMI latches the non-maskable interrupt line. The interrupt is serviced
// when the in-flight instruction has completed. It cannot be masked.
func (mc *CPU) NMI() {
	mc.nmiLine = true
}

// read8 returns the 8 bit value at the specified address. an unserviceable
// address is noted in LastResult and answered with the bus's safe default;
// only genuine device failures are returned as errors.
func (mc *CPU) read8(address uint16) (uint8, error) {
	v, err := mc.mem.Read(address)
	if err != nil {
		if !errors.Is(err, cpubus.AddressError) {
			return 0, err
		}
		mc.LastResult.Error = err.Error()
	}
	return v, nil
}

// write8 writes an 8 bit value to the specified address. error handling as
// read8.
func (mc *CPU) write8(address uint16, value uint8) error {
	err := mc.mem.Write(address, value)
	if err != nil {
		if !errors.Is(err, cpubus.AddressError) {
			return err
		}
		mc.LastResult.Error = err.Error()
	}
	return nil
}

// read16 returns the little-endian 16 bit value beginning at the specified
// address.
func (mc *CPU) read16(address uint16) (uint16, error) {
	lo, err := mc.read8(address)
	if err != nil {
		return 0, err
	}
	hi, err := mc.read8(address + 1)
	if err != nil {
		return 0, err
	}
	return (uint16(hi) << 8) | uint16(lo), nil
}

// read8PC reads the 8 bit value pointed to by PC and advances PC.
//
// side-effects:
//   - updates program counter
//   - updates LastResult.ByteCount
func (mc *CPU) read8PC() (uint8, error) {
	v, err := mc.read8(mc.pc.Address())
	if err != nil {
		return 0, err
	}
	mc.pc.Add(1)
	mc.LastResult.ByteCount++
	return v, nil
}

// read16PC reads the little-endian 16 bit value pointed to by PC and
// advances PC twice. side-effects as read8PC.
func (mc *CPU) read16PC() (uint16, error) {
	lo, err := mc.read8PC()
	if err != nil {
		return 0, err
	}
	hi, err := mc.read8PC()
	if err != nil {
		return 0, err
	}
	return (uint16(hi) << 8) | uint16(lo), nil
}

// push a value onto the stack.
func (mc *CPU) push(value uint8) error {
	err := mc.write8(mc.sp.Address(), value)
	mc.sp.Add(0xff, false)
	return err
}

// pull a value from the stack.
func (mc *CPU) pull() (uint8, error) {
	mc.sp.Add(1, false)
	return mc.read8(mc.sp.Address())
}

// branch adjusts the PC by the sign-extended offset if flag is set. returns
// the number of extra cycles the branch has cost.
func (mc *CPU) branch(flag bool, offset uint16) int {
	mc.LastResult.BranchSuccess = flag
	if !flag {
		return 0
	}

	// we read an 8 bit value rather than a 16 bit value to use as the
	// offset. because we're adding it to the 16 bit PC the sign bit must be
	// propagated into the most-significant bits
	if offset&0x0080 == 0x0080 {
		offset |= 0xff00
	}

	oldPC := mc.pc.Address()
	mc.pc.Add(offset)

	// a taken branch costs one extra cycle; another if it crosses a page
	extra := 1
	if oldPC&0xff00 != mc.pc.Address()&0xff00 {
		mc.LastResult.PageFault = true
		extra++
	}
	return extra
}

// interrupt performs the hardware interrupt sequence: return address and
// status onto the stack, interrupts disabled, PC loaded from the vector.
func (mc *CPU) interrupt(vector uint16, cycles int) error {
	ret := mc.pc.Address()
	if err := mc.push(uint8(ret >> 8)); err != nil {
		return err
	}
	if err := mc.push(uint8(ret)); err != nil {
		return err
	}

	// the pushed status has the break bit clear. this is how a handler can
	// distinguish a hardware interrupt from BRK
	st := mc.status
	st.Break = false
	st.Unused = true
	if err := mc.push(st.Value()); err != nil {
		return err
	}

	mc.status.InterruptDisable = true

	address, err := mc.read16(vector)
	if err != nil {
		return err
	}
	mc.pc.Load(address)

	mc.pendingCycles += cycles
	return nil
}

// Clock advances the emulation by one clock pulse.
//
// When the engine is idle (no cycles owed by a previous instruction) the
// next instruction is fetched, decoded and executed in full and its total
// cycle cost is charged to the pending counter. On every other pulse the
// counter simply drains. Latched interrupt lines are serviced in preference
// to a fetch.
//
// Decode errors and unserviceable addresses do not stop the machine: they
// are reported to the central logger, noted in LastResult and substituted
// with safe defaults. Setting StrictErrors promotes them to returned
// errors.
func (mc *CPU) Clock() error {
	if mc.pendingCycles > 0 {
		mc.pendingCycles--
		return nil
	}

	// service latched interrupt lines before fetching anything new
	if mc.nmiLine {
		mc.nmiLine = false
		err := mc.interrupt(cpubus.NMI, nmiCycles)
		mc.pendingCycles--
		return err
	}
	if mc.irqLine && !mc.status.InterruptDisable {
		mc.irqLine = false
		err := mc.interrupt(cpubus.IRQ, irqCycles)
		mc.pendingCycles--
		return err
	}

	// prepare new round of results
	mc.LastResult.Reset()
	mc.LastResult.Address = mc.pc.Address()

	opcode, err := mc.read8PC()
	if err != nil {
		return err
	}

	defn := mc.instructions[opcode]
	if defn == nil {
		// unimplemented instruction. report it and keep the engine live so
		// that whatever is being debugged can continue
		detail := fmt.Sprintf("unimplemented opcode (%#02x) at (%#04x)", opcode, mc.LastResult.Address)
		logger.Log(logger.Allow, "cpu", detail)
		mc.LastResult.Error = detail

		mc.pendingCycles += decodeErrorCycles
		mc.pendingCycles--

		if mc.StrictErrors {
			return fmt.Errorf("cpu: %s", detail)
		}
		return nil
	}
	mc.LastResult.Defn = defn

	// address is the effective address of the operand, after any indexing;
	// value is the operand itself. which of the two an instruction uses
	// depends on its effect category
	var address uint16
	var value uint8

	// whether address resolution crossed a page boundary
	var pageFault bool

	// extra cycles accumulated by this instruction beyond the base cost
	extraCycles := 0

	switch defn.AddressingMode {
	case instructions.Implied:
		// no operand

	case instructions.Accumulator:
		value = mc.a.Value()

	case instructions.Immediate:
		// the operand is the next byte in the program
		value, err = mc.read8PC()
		if err != nil {
			return err
		}
		mc.LastResult.InstructionData = uint16(value)

	case instructions.Relative:
		// the operand is an offset from the current PC position. the offset
		// is applied by the branch() function
		var offset uint8
		offset, err = mc.read8PC()
		if err != nil {
			return err
		}
		mc.LastResult.InstructionData = uint16(offset)
		address = uint16(offset)

	case instructions.ZeroPage:
		var zp uint8
		zp, err = mc.read8PC()
		if err != nil {
			return err
		}
		mc.LastResult.InstructionData = uint16(zp)
		address = uint16(zp)

	case instructions.ZeroPageIndexedX:
		var zp uint8
		zp, err = mc.read8PC()
		if err != nil {
			return err
		}
		mc.LastResult.InstructionData = uint16(zp)

		// 8 bit addition: the indexed address never leaves page zero
		address = uint16(zp + mc.x.Value())

	case instructions.ZeroPageIndexedY:
		// used exclusively by LDX and STX
		var zp uint8
		zp, err = mc.read8PC()
		if err != nil {
			return err
		}
		mc.LastResult.InstructionData = uint16(zp)
		address = uint16(zp + mc.y.Value())

	case instructions.Absolute:
		address, err = mc.read16PC()
		if err != nil {
			return err
		}
		mc.LastResult.InstructionData = address

	case instructions.AbsoluteIndexedX:
		var base uint16
		base, err = mc.read16PC()
		if err != nil {
			return err
		}
		mc.LastResult.InstructionData = base
		address = base + mc.x.Address()
		pageFault = base&0xff00 != address&0xff00

	case instructions.AbsoluteIndexedY:
		var base uint16
		base, err = mc.read16PC()
		if err != nil {
			return err
		}
		mc.LastResult.InstructionData = base
		address = base + mc.y.Address()
		pageFault = base&0xff00 != address&0xff00

	case instructions.Indirect:
		// indirect addressing (without indexing) is only used by JMP
		var ptr uint16
		ptr, err = mc.read16PC()
		if err != nil {
			return err
		}
		mc.LastResult.InstructionData = ptr

		if ptr&0x00ff == 0x00ff {
			// the(in)famous hardware bug: when the pointer sits at the end
			// of a page the high byte of the target is read from the start
			// of the *same* page, not the next one
			var lo, hi uint8
			lo, err = mc.read8(ptr)
			if err != nil {
				return err
			}
			hi, err = mc.read8(ptr & 0xff00)
			if err != nil {
				return err
			}
			address = (uint16(hi) << 8) | uint16(lo)
		} else {
			address, err = mc.read16(ptr)
			if err != nil {
				return err
			}
		}

	case instructions.IndexedIndirect: // (ind,X)
		var zp uint8
		zp, err = mc.read8PC()
		if err != nil {
			return err
		}
		mc.LastResult.InstructionData = uint16(zp)

		// pointer arithmetic wraps within page zero, including the high
		// byte read
		ptr := zp + mc.x.Value()
		var lo, hi uint8
		lo, err = mc.read8(uint16(ptr))
		if err != nil {
			return err
		}
		hi, err = mc.read8(uint16(ptr + 1))
		if err != nil {
			return err
		}
		address = (uint16(hi) << 8) | uint16(lo)

		// never a page fault with pre-index indirect addressing

	case instructions.IndirectIndexed: // (ind),Y
		var zp uint8
		zp, err = mc.read8PC()
		if err != nil {
			return err
		}
		mc.LastResult.InstructionData = uint16(zp)

		var lo, hi uint8
		lo, err = mc.read8(uint16(zp))
		if err != nil {
			return err
		}
		hi, err = mc.read8(uint16(zp + 1))
		if err != nil {
			return err
		}
		base := (uint16(hi) << 8) | uint16(lo)
		address = base + mc.y.Address()
		pageFault = base&0xff00 != address&0xff00

	default:
		// unreachable with the current definitions table but the contract
		// is the same as for an unimplemented opcode: report and carry on
		// with a zero operand
		detail := fmt.Sprintf("unsupported addressing mode (%s) for %s", defn.AddressingMode, defn.Operator)
		logger.Log(logger.Allow, "cpu", detail)
		mc.LastResult.Error = detail
		if mc.StrictErrors {
			return fmt.Errorf("cpu: %s", detail)
		}
	}

	if pageFault && defn.PageSensitive {
		mc.LastResult.PageFault = true
		extraCycles++
	}

	// read the operand value from memory. immediate and accumulator modes
	// already have the value in lieu of an address; implied mode has no
	// operand; write instructions only use the address
	if defn.Effect == instructions.Read || defn.Effect == instructions.RMW {
		switch defn.AddressingMode {
		case instructions.Implied, instructions.Accumulator, instructions.Immediate:
		default:
			value, err = mc.read8(address)
			if err != nil {
				return err
			}
		}
	}

	// actually perform instruction based on the operator
	switch defn.Operator {
	case instructions.Nop:
		// does nothing

	case instructions.Cli:
		mc.status.InterruptDisable = false

	case instructions.Sei:
		mc.status.InterruptDisable = true

	case instructions.Clc:
		mc.status.Carry = false

	case instructions.Sec:
		mc.status.Carry = true

	case instructions.Cld:
		mc.status.DecimalMode = false

	case instructions.Sed:
		mc.status.DecimalMode = true

	case instructions.Clv:
		mc.status.Overflow = false

	case instructions.Pha:
		err = mc.push(mc.a.Value())
		if err != nil {
			return err
		}

	case instructions.Php:
		// PHP pushes the status with the break bit set, as BRK does
		st := mc.status
		st.Break = true
		st.Unused = true
		err = mc.push(st.Value())
		if err != nil {
			return err
		}

	case instructions.Pla:
		value, err = mc.pull()
		if err != nil {
			return err
		}
		mc.a.Load(value)
		mc.status.Zero = mc.a.IsZero()
		mc.status.Sign = mc.a.IsNegative()

	case instructions.Plp:
		value, err = mc.pull()
		if err != nil {
			return err
		}
		mc.status.FromValue(value)

	case instructions.Txa:
		mc.a.Load(mc.x.Value())
		mc.status.Zero = mc.a.IsZero()
		mc.status.Sign = mc.a.IsNegative()

	case instructions.Tax:
		mc.x.Load(mc.a.Value())
		mc.status.Zero = mc.x.IsZero()
		mc.status.Sign = mc.x.IsNegative()

	case instructions.Tay:
		mc.y.Load(mc.a.Value())
		mc.status.Zero = mc.y.IsZero()
		mc.status.Sign = mc.y.IsNegative()

	case instructions.Tya:
		mc.a.Load(mc.y.Value())
		mc.status.Zero = mc.a.IsZero()
		mc.status.Sign = mc.a.IsNegative()

	case instructions.Tsx:
		mc.x.Load(mc.sp.Value())
		mc.status.Zero = mc.x.IsZero()
		mc.status.Sign = mc.x.IsNegative()

	case instructions.Txs:
		mc.sp.Load(mc.x.Value())
		// does not affect the status register

	case instructions.Eor:
		mc.a.EOR(value)
		mc.status.Zero = mc.a.IsZero()
		mc.status.Sign = mc.a.IsNegative()

	case instructions.Ora:
		mc.a.ORA(value)
		mc.status.Zero = mc.a.IsZero()
		mc.status.Sign = mc.a.IsNegative()

	case instructions.And:
		mc.a.AND(value)
		mc.status.Zero = mc.a.IsZero()
		mc.status.Sign = mc.a.IsNegative()

	case instructions.Lda:
		mc.a.Load(value)
		mc.status.Zero = mc.a.IsZero()
		mc.status.Sign = mc.a.IsNegative()

	case instructions.Ldx:
		mc.x.Load(value)
		mc.status.Zero = mc.x.IsZero()
		mc.status.Sign = mc.x.IsNegative()

	case instructions.Ldy:
		mc.y.Load(value)
		mc.status.Zero = mc.y.IsZero()
		mc.status.Sign = mc.y.IsNegative()

	case instructions.Sta:
		err = mc.write8(address, mc.a.Value())
		if err != nil {
			return err
		}

	case instructions.Stx:
		err = mc.write8(address, mc.x.Value())
		if err != nil {
			return err
		}

	case instructions.Sty:
		err = mc.write8(address, mc.y.Value())
		if err != nil {
			return err
		}

	case instructions.Inx:
		mc.x.Add(1, false)
		mc.status.Zero = mc.x.IsZero()
		mc.status.Sign = mc.x.IsNegative()

	case instructions.Iny:
		mc.y.Add(1, false)
		mc.status.Zero = mc.y.IsZero()
		mc.status.Sign = mc.y.IsNegative()

	case instructions.Dex:
		mc.x.Add(0xff, false)
		mc.status.Zero = mc.x.IsZero()
		mc.status.Sign = mc.x.IsNegative()

	case instructions.Dey:
		mc.y.Add(0xff, false)
		mc.status.Zero = mc.y.IsZero()
		mc.status.Sign = mc.y.IsNegative()

	case instructions.Asl:
		var r *registers.Register
		if defn.AddressingMode == instructions.Accumulator {
			r = &mc.a
		} else {
			r = &mc.acc8
			r.Load(value)
		}
		mc.status.Carry = r.ASL()
		mc.status.Zero = r.IsZero()
		mc.status.Sign = r.IsNegative()
		value = r.Value()

	case instructions.Lsr:
		var r *registers.Register
		if defn.AddressingMode == instructions.Accumulator {
			r = &mc.a
		} else {
			r = &mc.acc8
			r.Load(value)
		}
		mc.status.Carry = r.LSR()
		mc.status.Zero = r.IsZero()
		mc.status.Sign = r.IsNegative()
		value = r.Value()

	case instructions.Rol:
		var r *registers.Register
		if defn.AddressingMode == instructions.Accumulator {
			r = &mc.a
		} else {
			r = &mc.acc8
			r.Load(value)
		}
		mc.status.Carry = r.ROL(mc.status.Carry)
		mc.status.Zero = r.IsZero()
		mc.status.Sign = r.IsNegative()
		value = r.Value()

	case instructions.Ror:
		var r *registers.Register
		if defn.AddressingMode == instructions.Accumulator {
			r = &mc.a
		} else {
			r = &mc.acc8
			r.Load(value)
		}
		mc.status.Carry = r.ROR(mc.status.Carry)
		mc.status.Zero = r.IsZero()
		mc.status.Sign = r.IsNegative()
		value = r.Value()

	case instructions.Adc:
		// the 2A03 has no decimal mode. the flag is storable but arithmetic
		// is always binary
		mc.status.Carry, mc.status.Overflow = mc.a.Add(value, mc.status.Carry)
		mc.status.Zero = mc.a.IsZero()
		mc.status.Sign = mc.a.IsNegative()

	case instructions.Sbc:
		mc.status.Carry, mc.status.Overflow = mc.a.Subtract(value, mc.status.Carry)
		mc.status.Zero = mc.a.IsZero()
		mc.status.Sign = mc.a.IsNegative()

	case instructions.Inc:
		mc.acc8.Load(value)
		mc.acc8.Add(1, false)
		mc.status.Zero = mc.acc8.IsZero()
		mc.status.Sign = mc.acc8.IsNegative()
		value = mc.acc8.Value()

	case instructions.Dec:
		mc.acc8.Load(value)
		mc.acc8.Add(0xff, false)
		mc.status.Zero = mc.acc8.IsZero()
		mc.status.Sign = mc.acc8.IsNegative()
		value = mc.acc8.Value()

	case instructions.Cmp:
		// maybe surprisingly, CMP can be implemented with a subtract and a
		// discarded result
		mc.acc8.Load(mc.a.Value())
		mc.status.Carry, _ = mc.acc8.Subtract(value, true)
		mc.status.Zero = mc.acc8.IsZero()
		mc.status.Sign = mc.acc8.IsNegative()

	case instructions.Cpx:
		mc.acc8.Load(mc.x.Value())
		mc.status.Carry, _ = mc.acc8.Subtract(value, true)
		mc.status.Zero = mc.acc8.IsZero()
		mc.status.Sign = mc.acc8.IsNegative()

	case instructions.Cpy:
		mc.acc8.Load(mc.y.Value())
		mc.status.Carry, _ = mc.acc8.Subtract(value, true)
		mc.status.Zero = mc.acc8.IsZero()
		mc.status.Sign = mc.acc8.IsNegative()

	case instructions.Bit:
		mc.acc8.Load(value)
		mc.status.Sign = mc.acc8.IsNegative()
		mc.status.Overflow = mc.acc8.IsBitV()
		mc.acc8.AND(mc.a.Value())
		mc.status.Zero = mc.acc8.IsZero()

	case instructions.Jmp:
		mc.pc.Load(address)

	case instructions.Bcc:
		extraCycles += mc.branch(!mc.status.Carry, address)

	case instructions.Bcs:
		extraCycles += mc.branch(mc.status.Carry, address)

	case instructions.Beq:
		extraCycles += mc.branch(mc.status.Zero, address)

	case instructions.Bmi:
		extraCycles += mc.branch(mc.status.Sign, address)

	case instructions.Bne:
		extraCycles += mc.branch(!mc.status.Zero, address)

	case instructions.Bpl:
		extraCycles += mc.branch(!mc.status.Sign, address)

	case instructions.Bvc:
		extraCycles += mc.branch(!mc.status.Overflow, address)

	case instructions.Bvs:
		extraCycles += mc.branch(mc.status.Overflow, address)

	case instructions.Jsr:
		// the address pushed is one less than the address of the next
		// instruction. RTS corrects for it when pulling
		ret := mc.pc.Address() - 1
		err = mc.push(uint8(ret >> 8))
		if err != nil {
			return err
		}
		err = mc.push(uint8(ret))
		if err != nil {
			return err
		}
		mc.pc.Load(address)

	case instructions.Rts:
		var lo, hi uint8
		lo, err = mc.pull()
		if err != nil {
			return err
		}
		hi, err = mc.pull()
		if err != nil {
			return err
		}
		mc.pc.Load((uint16(hi) << 8) | uint16(lo))
		mc.pc.Add(1)

	case instructions.Brk:
		// BRK advances the PC by two despite being a one byte instruction.
		// the byte after the opcode is padding
		mc.pc.Add(1)

		ret := mc.pc.Address()
		err = mc.push(uint8(ret >> 8))
		if err != nil {
			return err
		}
		err = mc.push(uint8(ret))
		if err != nil {
			return err
		}

		// the pushed status has the break bit set, distinguishing BRK from
		// a hardware interrupt
		st := mc.status
		st.Break = true
		st.Unused = true
		err = mc.push(st.Value())
		if err != nil {
			return err
		}

		mc.status.InterruptDisable = true

		var brkAddress uint16
		brkAddress, err = mc.read16(cpubus.IRQ)
		if err != nil {
			return err
		}
		mc.pc.Load(brkAddress)

	case instructions.Rti:
		value, err = mc.pull()
		if err != nil {
			return err
		}
		mc.status.FromValue(value)

		var lo, hi uint8
		lo, err = mc.pull()
		if err != nil {
			return err
		}
		hi, err = mc.pull()
		if err != nil {
			return err
		}

		// unlike RTS there is no need to add one to the return address
		mc.pc.Load((uint16(hi) << 8) | uint16(lo))

	default:
		return fmt.Errorf("cpu: unknown operator (%s)", defn.Operator)
	}

	// for RMW instructions: write the altered value back to memory
	if defn.Effect == instructions.RMW {
		err = mc.write8(address, value)
		if err != nil {
			return err
		}
	}

	mc.LastResult.Cycles = defn.Cycles + extraCycles

	// schedule the cycles owed by this instruction and consume the one this
	// call represents
	mc.pendingCycles += mc.LastResult.Cycles
	mc.pendingCycles--

	if mc.StrictErrors && mc.LastResult.Error != "" {
		return fmt.Errorf("cpu: %s", mc.LastResult.Error)
	}

	return nil
}
