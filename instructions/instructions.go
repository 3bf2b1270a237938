// This file is part of Timefuse.
//
// Timefuse is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Timefuse is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Timefuse.  If not, see <https://www.gnu.org/licenses/>.

// Package instructions defines the closed instruction set understood by the
// timefuse machine. Instruction values are immutable; "modifying the
// program" always means replacing an entry in the program store, never
// changing an Instruction in place.
package instructions

import (
	"fmt"
	"strings"
)

// Opcode identifies one instruction in the set. The set is closed; the
// machine treats anything it does not recognise as Empty.
type Opcode int

// List of valid Opcode values. The branch mnemonics (BEQ, BNE, BGT, BLT and
// JMP) belong to the fixed-program instruction set; the generic forms
// (CJUMP, JUMP) together with COPY and TTRAVEL belong to the sparse,
// self-modifying set.
const (
	Empty Opcode = iota
	Add
	Jump
	Jmp
	CJump
	Beq
	Bne
	Bgt
	Blt
	Copy
	TTravel
	Defuse
	Explode
)

func (op Opcode) String() string {
	switch op {
	case Add:
		return "ADD"
	case Jump:
		return "JUMP"
	case Jmp:
		return "JMP"
	case CJump:
		return "CJUMP"
	case Beq:
		return "BEQ"
	case Bne:
		return "BNE"
	case Bgt:
		return "BGT"
	case Blt:
		return "BLT"
	case Copy:
		return "COPY"
	case TTravel:
		return "TTRAVEL"
	case Defuse:
		return "DEFUSE"
	case Explode:
		return "EXPLODE"
	}
	return "EMPTY"
}

// Instruction is one opcode with its operands. Instructions are value types
// and are copied freely; the Operands slice is never appended to after
// creation.
type Instruction struct {
	Op       Opcode
	Operands []Operand
}

// NoOp is the synthetic instruction returned for program lines that do not
// exist. Executing it changes nothing but the time register.
var NoOp = Instruction{Op: Empty}

// New is the preferred method of initialisation for the Instruction type.
func New(op Opcode, operands ...Operand) Instruction {
	return Instruction{Op: op, Operands: operands}
}

// Operand returns the i'th operand, or the zero operand if the instruction
// does not have that many. A missing operand resolves to zero, in keeping
// with the machine's policy of degrading rather than failing.
func (ins Instruction) Operand(i int) Operand {
	if i < 0 || i >= len(ins.Operands) {
		return Operand{}
	}
	return ins.Operands[i]
}

func (ins Instruction) String() string {
	if len(ins.Operands) == 0 {
		return ins.Op.String()
	}
	s := make([]string, len(ins.Operands))
	for i := range ins.Operands {
		s[i] = ins.Operands[i].String()
	}
	return fmt.Sprintf("%s %s", ins.Op, strings.Join(s, ","))
}
