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

package instructions

import "fmt"

// tooltips describes each opcode for the player. The %s verbs are filled
// with the instruction's operands as written.
var tooltips = map[Opcode]string{
	Empty:   "does nothing",
	Add:     "adds %s and %s, storing the result in %s",
	Jump:    "jumps to line %s",
	Jmp:     "jumps to line %s",
	CJump:   "jumps to line %[4]s if %[1]s %[2]s %[3]s",
	Beq:     "jumps to line %[3]s if %[1]s equals %[2]s",
	Bne:     "jumps to line %[3]s if %[1]s does not equal %[2]s",
	Bgt:     "jumps to line %[3]s if %[1]s is greater than %[2]s",
	Blt:     "jumps to line %[3]s if %[1]s is less than %[2]s",
	Copy:    "copies the instruction at line %s, inserting it at line %s and shifting later lines up",
	TTravel: "rewinds every register to the values they had at time %s",
	Defuse:  "defuses the bomb",
	Explode: "detonates the bomb",
}

// number of operands each tooltip pattern expects. instructions with too few
// operands are padded so the description never shows a formatting artefact.
var tooltipOperands = map[Opcode]int{
	Add: 3, Jump: 1, Jmp: 1, CJump: 4,
	Beq: 3, Bne: 3, Bgt: 3, Blt: 3,
	Copy: 2, TTravel: 1,
}

// Tooltip returns a human-readable description of the instruction, with its
// operands folded into the text. Purely presentational.
func Tooltip(ins Instruction) string {
	pattern, ok := tooltips[ins.Op]
	if !ok {
		pattern = tooltips[Empty]
	}

	// special forms that describe themselves without reference to operands
	if ins.Op == Copy && len(ins.Operands) == 1 {
		return fmt.Sprintf("copies the instruction at line %s, inserting it after this one", ins.Operands[0])
	}
	if ins.Op == TTravel && len(ins.Operands) == 0 {
		return "rewinds every register to the values they had at the time named by T"
	}

	n := tooltipOperands[ins.Op]
	if n == 0 {
		return pattern
	}

	args := make([]interface{}, n)
	for i := 0; i < n; i++ {
		args[i] = ins.Operand(i).String()
	}

	return fmt.Sprintf(pattern, args...)
}
