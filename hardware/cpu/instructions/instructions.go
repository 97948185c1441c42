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

// Package instructions defines the instruction set of the 2A03 as a flat
// table of definitions, one per opcode. The CPU decodes an instruction with
// a single table lookup; there is no deeper dispatch structure.
package instructions

import "fmt"

// AddressingMode describes how the data for the instruction is located.
type AddressingMode int

// List of supported addressing modes.
const (
	Implied AddressingMode = iota
	Accumulator
	Immediate
	Relative // relative addressing is only used by branch instructions

	Absolute // abs
	ZeroPage // zpg
	Indirect // ind; only used by JMP

	IndexedIndirect // (ind,X)
	IndirectIndexed // (ind),Y

	AbsoluteIndexedX // abs,X
	AbsoluteIndexedY // abs,Y

	ZeroPageIndexedX // zpg,X
	ZeroPageIndexedY // zpg,Y
)

func (m AddressingMode) String() string {
	switch m {
	case Implied:
		return "Implied"
	case Accumulator:
		return "Accumulator"
	case Immediate:
		return "Immediate"
	case Relative:
		return "Relative"
	case Absolute:
		return "Absolute"
	case ZeroPage:
		return "ZeroPage"
	case Indirect:
		return "Indirect"
	case IndexedIndirect:
		return "IndexedIndirect"
	case IndirectIndexed:
		return "IndirectIndexed"
	case AbsoluteIndexedX:
		return "AbsoluteIndexedX"
	case AbsoluteIndexedY:
		return "AbsoluteIndexedY"
	case ZeroPageIndexedX:
		return "ZeroPageIndexedX"
	case ZeroPageIndexedY:
		return "ZeroPageIndexedY"
	}
	return "unknown addressing mode"
}

// EffectCategory categorises an instruction by the effect it has.
type EffectCategory int

// List of effect categories.
const (
	Read EffectCategory = iota
	Write
	RMW

	// the following three effects have a variable effect on the program
	// counter, depending on the instruction's precise operand.

	// flow consists of the branch instructions and JMP. branch instructions
	// specifically can be distinguished by the addressing mode.
	Flow

	Subroutine
	Interrupt
)

// Operator identifies the operation performed by an instruction,
// independently of the addressing mode it is coupled with.
type Operator int

// List of operators in the documented instruction set.
const (
	Adc Operator = iota
	And
	Asl
	Bcc
	Bcs
	Beq
	Bit
	Bmi
	Bne
	Bpl
	Brk
	Bvc
	Bvs
	Clc
	Cld
	Cli
	Clv
	Cmp
	Cpx
	Cpy
	Dec
	Dex
	Dey
	Eor
	Inc
	Inx
	Iny
	Jmp
	Jsr
	Lda
	Ldx
	Ldy
	Lsr
	Nop
	Ora
	Pha
	Php
	Pla
	Plp
	Rol
	Ror
	Rti
	Rts
	Sbc
	Sec
	Sed
	Sei
	Sta
	Stx
	Sty
	Tax
	Tay
	Tsx
	Txa
	Txs
	Tya
)

var mnemonics = [...]string{
	"ADC", "AND", "ASL", "BCC", "BCS", "BEQ", "BIT", "BMI",
	"BNE", "BPL", "BRK", "BVC", "BVS", "CLC", "CLD", "CLI",
	"CLV", "CMP", "CPX", "CPY", "DEC", "DEX", "DEY", "EOR",
	"INC", "INX", "INY", "JMP", "JSR", "LDA", "LDX", "LDY",
	"LSR", "NOP", "ORA", "PHA", "PHP", "PLA", "PLP", "ROL",
	"ROR", "RTI", "RTS", "SBC", "SEC", "SED", "SEI", "STA",
	"STX", "STY", "TAX", "TAY", "TSX", "TXA", "TXS", "TYA",
}

func (op Operator) String() string {
	if op < 0 || int(op) >= len(mnemonics) {
		return "unknown operator"
	}
	return mnemonics[op]
}

// Definition defines a single instruction in the instruction set; one per
// opcode. Definitions are immutable once the table has been built.
type Definition struct {
	OpCode         uint8
	Operator       Operator
	Bytes          int
	Cycles         int
	AddressingMode AddressingMode

	// whether the instruction is subject to the one cycle penalty when its
	// effective address crosses a page boundary
	PageSensitive bool

	Effect EffectCategory
}

// String returns a single instruction definition as a string.
func (defn Definition) String() string {
	return fmt.Sprintf("%02x %s +%dbytes (%d cycles) [mode=%s pagesens=%t]",
		defn.OpCode, defn.Operator, defn.Bytes, defn.Cycles, defn.AddressingMode, defn.PageSensitive)
}

// IsBranch returns true if instruction is a branch instruction.
func (defn Definition) IsBranch() bool {
	return defn.AddressingMode == Relative && defn.Effect == Flow
}
