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

// Operator identifies the operation of a decoded instruction.
type Operator int

// List of operators. One for every operation in the instruction set and
// Invalid for opcodes that do not describe an operation.
const (
	Invalid Operator = iota
	ClearDisplay
	ReturnFromSubroutine
	JumpToAddress
	CallSubroutine
	SkipIfVxEqualsByte
	SkipIfVxNotEqualsByte
	SkipIfVxEqualsVy
	SetVxToByte
	AddByteToVx
	SetVxToVy
	SetVxToVxOrVy
	SetVxToVxAndVy
	SetVxToVxXorVy
	AddVyToVxWithCarry
	SubtractVyFromVxWithBorrow
	ShiftVxRightByOne
	SetVxToVyMinusVx
	ShiftVxLeftByOne
	SkipIfVxNotEqualsVy
	SetIToAddress
	JumpToV0PlusAddress
	SetVxToRandomAndByte
	DrawSprite
	SkipIfKeyInVxPressed
	SkipIfKeyInVxNotPressed
	SetVxToDelayTimer
	WaitForKeyPressAndStoreInVx
	SetDelayTimerToVx
	SetSoundTimerToVx
	AddVxToI
	SetIToSpriteAddressForDigitVx
	StoreBcdOfVxAtI
	StoreRegistersV0ThroughVxInMemory
	ReadRegistersV0ThroughVxFromMemory

	// the number of operators including Invalid
	NumOperators
)

// the fields of the opcode used by each operator. Invalid is not included
// because an invalid instruction has no fields
type fields int

const (
	noFields fields = iota
	fieldAddress
	fieldX
	fieldXByte
	fieldXY
	fieldXYN
)

// Definition describes an operator.
type Definition struct {
	Name     string
	Mnemonic string
	Category Category

	// the value of the opcode with all operand fields zeroed
	pattern uint16
	fields  fields
}

var definitions = [NumOperators]Definition{
	Invalid:                            {Name: "Invalid", Mnemonic: "DW", Category: Unknown},
	ClearDisplay:                       {Name: "ClearDisplay", Mnemonic: "CLS", Category: Display, pattern: 0x00e0},
	ReturnFromSubroutine:               {Name: "ReturnFromSubroutine", Mnemonic: "RET", Category: Subroutine, pattern: 0x00ee},
	JumpToAddress:                      {Name: "JumpToAddress", Mnemonic: "JP", Category: Flow, pattern: 0x1000, fields: fieldAddress},
	CallSubroutine:                     {Name: "CallSubroutine", Mnemonic: "CALL", Category: Subroutine, pattern: 0x2000, fields: fieldAddress},
	SkipIfVxEqualsByte:                 {Name: "SkipIfVxEqualsByte", Mnemonic: "SE", Category: Skip, pattern: 0x3000, fields: fieldXByte},
	SkipIfVxNotEqualsByte:              {Name: "SkipIfVxNotEqualsByte", Mnemonic: "SNE", Category: Skip, pattern: 0x4000, fields: fieldXByte},
	SkipIfVxEqualsVy:                   {Name: "SkipIfVxEqualsVy", Mnemonic: "SE", Category: Skip, pattern: 0x5000, fields: fieldXY},
	SetVxToByte:                        {Name: "SetVxToByte", Mnemonic: "LD", Category: Register, pattern: 0x6000, fields: fieldXByte},
	AddByteToVx:                        {Name: "AddByteToVx", Mnemonic: "ADD", Category: Register, pattern: 0x7000, fields: fieldXByte},
	SetVxToVy:                          {Name: "SetVxToVy", Mnemonic: "LD", Category: Register, pattern: 0x8000, fields: fieldXY},
	SetVxToVxOrVy:                      {Name: "SetVxToVxOrVy", Mnemonic: "OR", Category: Register, pattern: 0x8001, fields: fieldXY},
	SetVxToVxAndVy:                     {Name: "SetVxToVxAndVy", Mnemonic: "AND", Category: Register, pattern: 0x8002, fields: fieldXY},
	SetVxToVxXorVy:                     {Name: "SetVxToVxXorVy", Mnemonic: "XOR", Category: Register, pattern: 0x8003, fields: fieldXY},
	AddVyToVxWithCarry:                 {Name: "AddVyToVxWithCarry", Mnemonic: "ADD", Category: Register, pattern: 0x8004, fields: fieldXY},
	SubtractVyFromVxWithBorrow:         {Name: "SubtractVyFromVxWithBorrow", Mnemonic: "SUB", Category: Register, pattern: 0x8005, fields: fieldXY},
	ShiftVxRightByOne:                  {Name: "ShiftVxRightByOne", Mnemonic: "SHR", Category: Register, pattern: 0x8006, fields: fieldXY},
	SetVxToVyMinusVx:                   {Name: "SetVxToVyMinusVx", Mnemonic: "SUBN", Category: Register, pattern: 0x8007, fields: fieldXY},
	ShiftVxLeftByOne:                   {Name: "ShiftVxLeftByOne", Mnemonic: "SHL", Category: Register, pattern: 0x800e, fields: fieldXY},
	SkipIfVxNotEqualsVy:                {Name: "SkipIfVxNotEqualsVy", Mnemonic: "SNE", Category: Skip, pattern: 0x9000, fields: fieldXY},
	SetIToAddress:                      {Name: "SetIToAddress", Mnemonic: "LD", Category: Register, pattern: 0xa000, fields: fieldAddress},
	JumpToV0PlusAddress:                {Name: "JumpToV0PlusAddress", Mnemonic: "JP", Category: Flow, pattern: 0xb000, fields: fieldAddress},
	SetVxToRandomAndByte:               {Name: "SetVxToRandomAndByte", Mnemonic: "RND", Category: Register, pattern: 0xc000, fields: fieldXByte},
	DrawSprite:                         {Name: "DrawSprite", Mnemonic: "DRW", Category: Display, pattern: 0xd000, fields: fieldXYN},
	SkipIfKeyInVxPressed:               {Name: "SkipIfKeyInVxPressed", Mnemonic: "SKP", Category: Skip, pattern: 0xe09e, fields: fieldX},
	SkipIfKeyInVxNotPressed:            {Name: "SkipIfKeyInVxNotPressed", Mnemonic: "SKNP", Category: Skip, pattern: 0xe0a1, fields: fieldX},
	SetVxToDelayTimer:                  {Name: "SetVxToDelayTimer", Mnemonic: "LD", Category: Timer, pattern: 0xf007, fields: fieldX},
	WaitForKeyPressAndStoreInVx:        {Name: "WaitForKeyPressAndStoreInVx", Mnemonic: "LD", Category: Input, pattern: 0xf00a, fields: fieldX},
	SetDelayTimerToVx:                  {Name: "SetDelayTimerToVx", Mnemonic: "LD", Category: Timer, pattern: 0xf015, fields: fieldX},
	SetSoundTimerToVx:                  {Name: "SetSoundTimerToVx", Mnemonic: "LD", Category: Timer, pattern: 0xf018, fields: fieldX},
	AddVxToI:                           {Name: "AddVxToI", Mnemonic: "ADD", Category: Register, pattern: 0xf01e, fields: fieldX},
	SetIToSpriteAddressForDigitVx:      {Name: "SetIToSpriteAddressForDigitVx", Mnemonic: "LD", Category: Register, pattern: 0xf029, fields: fieldX},
	StoreBcdOfVxAtI:                    {Name: "StoreBcdOfVxAtI", Mnemonic: "LD", Category: Memory, pattern: 0xf033, fields: fieldX},
	StoreRegistersV0ThroughVxInMemory:  {Name: "StoreRegistersV0ThroughVxInMemory", Mnemonic: "LD", Category: Memory, pattern: 0xf055, fields: fieldX},
	ReadRegistersV0ThroughVxFromMemory: {Name: "ReadRegistersV0ThroughVxFromMemory", Mnemonic: "LD", Category: Memory, pattern: 0xf065, fields: fieldX},
}

// Definition returns the definition of the operator.
func (op Operator) Definition() Definition {
	if op < 0 || op >= NumOperators {
		return definitions[Invalid]
	}
	return definitions[op]
}

func (op Operator) String() string {
	return op.Definition().Name
}
