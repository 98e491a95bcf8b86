// This file is part of Gopher8.
//
// Gopher8 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher8 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher8.  If not, see <https://www.gnu.org/licenses/>.

package instructions

import (
	"fmt"
)

// Instruction is the result of decoding a single opcode. Only the fields used
// by the Operator are meaningful. The Opcode field is only set for Invalid
// instructions.
type Instruction struct {
	Operator Operator

	X       uint8
	Y       uint8
	N       uint8
	Byte    uint8
	Address uint16

	Opcode uint16
}

// Decode the opcode. Every opcode decodes to exactly one instruction. Opcodes
// that do not describe an operation decode to an instruction with the
// Invalid operator.
func Decode(opcode uint16) Instruction {
	return newInstruction(operator(opcode), opcode)
}

// identify the operator for the opcode
func operator(opcode uint16) Operator {
	switch opcode >> 12 {
	case 0x0:
		switch opcode {
		case 0x00e0:
			return ClearDisplay
		case 0x00ee:
			return ReturnFromSubroutine
		}
	case 0x1:
		return JumpToAddress
	case 0x2:
		return CallSubroutine
	case 0x3:
		return SkipIfVxEqualsByte
	case 0x4:
		return SkipIfVxNotEqualsByte
	case 0x5:
		if opcode&0x000f == 0 {
			return SkipIfVxEqualsVy
		}
	case 0x6:
		return SetVxToByte
	case 0x7:
		return AddByteToVx
	case 0x8:
		switch opcode & 0x000f {
		case 0x0:
			return SetVxToVy
		case 0x1:
			return SetVxToVxOrVy
		case 0x2:
			return SetVxToVxAndVy
		case 0x3:
			return SetVxToVxXorVy
		case 0x4:
			return AddVyToVxWithCarry
		case 0x5:
			return SubtractVyFromVxWithBorrow
		case 0x6:
			return ShiftVxRightByOne
		case 0x7:
			return SetVxToVyMinusVx
		case 0xe:
			return ShiftVxLeftByOne
		}
	case 0x9:
		if opcode&0x000f == 0 {
			return SkipIfVxNotEqualsVy
		}
	case 0xa:
		return SetIToAddress
	case 0xb:
		return JumpToV0PlusAddress
	case 0xc:
		return SetVxToRandomAndByte
	case 0xd:
		return DrawSprite
	case 0xe:
		switch opcode & 0x00ff {
		case 0x9e:
			return SkipIfKeyInVxPressed
		case 0xa1:
			return SkipIfKeyInVxNotPressed
		}
	case 0xf:
		switch opcode & 0x00ff {
		case 0x07:
			return SetVxToDelayTimer
		case 0x0a:
			return WaitForKeyPressAndStoreInVx
		case 0x15:
			return SetDelayTimerToVx
		case 0x18:
			return SetSoundTimerToVx
		case 0x1e:
			return AddVxToI
		case 0x29:
			return SetIToSpriteAddressForDigitVx
		case 0x33:
			return StoreBcdOfVxAtI
		case 0x55:
			return StoreRegistersV0ThroughVxInMemory
		case 0x65:
			return ReadRegistersV0ThroughVxFromMemory
		}
	}
	return Invalid
}

// extract the fields used by the operator from the opcode
func newInstruction(op Operator, opcode uint16) Instruction {
	ins := Instruction{Operator: op}

	switch definitions[op].fields {
	case fieldAddress:
		ins.Address = opcode & 0x0fff
	case fieldX:
		ins.X = uint8(opcode>>8) & 0x0f
	case fieldXByte:
		ins.X = uint8(opcode>>8) & 0x0f
		ins.Byte = uint8(opcode)
	case fieldXY:
		ins.X = uint8(opcode>>8) & 0x0f
		ins.Y = uint8(opcode>>4) & 0x0f
	case fieldXYN:
		ins.X = uint8(opcode>>8) & 0x0f
		ins.Y = uint8(opcode>>4) & 0x0f
		ins.N = uint8(opcode) & 0x0f
	}

	if op == Invalid {
		ins.Opcode = opcode
	}

	return ins
}

// Encode the instruction as an opcode. For a decoded instruction this is the
// opcode it was decoded from. Fields not used by the operator are ignored.
func (ins Instruction) Encode() uint16 {
	if ins.Operator == Invalid {
		return ins.Opcode
	}

	defn := ins.Operator.Definition()
	opcode := defn.pattern

	x := uint16(ins.X&0x0f) << 8
	y := uint16(ins.Y&0x0f) << 4

	switch defn.fields {
	case fieldAddress:
		opcode |= ins.Address & 0x0fff
	case fieldX:
		opcode |= x
	case fieldXByte:
		opcode |= x | uint16(ins.Byte)
	case fieldXY:
		opcode |= x | y
	case fieldXYN:
		opcode |= x | y | uint16(ins.N&0x0f)
	}

	return opcode
}

// String returns the instruction in conventional assembly language form.
func (ins Instruction) String() string {
	mnemonic := ins.Operator.Definition().Mnemonic

	switch ins.Operator {
	case Invalid:
		return fmt.Sprintf("%s 0x%04x", mnemonic, ins.Opcode)
	case ClearDisplay, ReturnFromSubroutine:
		return mnemonic
	case JumpToAddress, CallSubroutine:
		return fmt.Sprintf("%s 0x%03x", mnemonic, ins.Address)
	case SetIToAddress:
		return fmt.Sprintf("%s I, 0x%03x", mnemonic, ins.Address)
	case JumpToV0PlusAddress:
		return fmt.Sprintf("%s V0, 0x%03x", mnemonic, ins.Address)
	case SetVxToDelayTimer:
		return fmt.Sprintf("%s V%X, DT", mnemonic, ins.X)
	case WaitForKeyPressAndStoreInVx:
		return fmt.Sprintf("%s V%X, K", mnemonic, ins.X)
	case SetDelayTimerToVx:
		return fmt.Sprintf("%s DT, V%X", mnemonic, ins.X)
	case SetSoundTimerToVx:
		return fmt.Sprintf("%s ST, V%X", mnemonic, ins.X)
	case AddVxToI:
		return fmt.Sprintf("%s I, V%X", mnemonic, ins.X)
	case SetIToSpriteAddressForDigitVx:
		return fmt.Sprintf("%s F, V%X", mnemonic, ins.X)
	case StoreBcdOfVxAtI:
		return fmt.Sprintf("%s B, V%X", mnemonic, ins.X)
	case StoreRegistersV0ThroughVxInMemory:
		return fmt.Sprintf("%s [I], V%X", mnemonic, ins.X)
	case ReadRegistersV0ThroughVxFromMemory:
		return fmt.Sprintf("%s V%X, [I]", mnemonic, ins.X)
	}

	switch ins.Operator.Definition().fields {
	case fieldX:
		return fmt.Sprintf("%s V%X", mnemonic, ins.X)
	case fieldXByte:
		return fmt.Sprintf("%s V%X, 0x%02x", mnemonic, ins.X, ins.Byte)
	case fieldXY:
		return fmt.Sprintf("%s V%X, V%X", mnemonic, ins.X, ins.Y)
	case fieldXYN:
		return fmt.Sprintf("%s V%X, V%X, %d", mnemonic, ins.X, ins.Y, ins.N)
	}

	return mnemonic
}
