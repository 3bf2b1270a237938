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

package levels

import (
	"sort"

	"github.com/timefuse/timefuse/curated"
	"github.com/timefuse/timefuse/instructions"
)

// Sentinal error messages for the Lookup function.
const (
	NotFound = "level: no level called %s"
)

func ins(op instructions.Opcode, operands ...instructions.Operand) instructions.Instruction {
	return instructions.New(op, operands...)
}

var lit = instructions.Lit
var tok = instructions.Tok

// the built-in catalogue. keyed by Level.Name.
var catalogue = map[string]Level{
	"doubling": {
		Name: "doubling",
		Description: "B doubles on every pass through the loop. Set A to a value " +
			"B will land on exactly, before the clock reaches 40.",
		Variant: FixedProgram,
		List: []instructions.Instruction{
			ins(instructions.Blt, tok("A"), lit(10), lit(7)),
			ins(instructions.Bgt, tok("A"), lit(50), lit(7)),
			ins(instructions.Bgt, tok("T"), lit(40), lit(7)),
			ins(instructions.Beq, tok("B"), tok("A"), lit(6)),
			ins(instructions.Add, tok("B"), tok("B"), tok("B")),
			ins(instructions.Jmp, lit(2)),
			ins(instructions.Defuse),
			ins(instructions.Explode),
		},
		Registers: map[string]int{"A": 0, "B": 1, "T": 0},
		Player:    "A",
	},

	"echo": {
		Name: "echo",
		Description: "The bomb copies whatever instruction line A holds into its " +
			"own fuse. Point A at something harmless.",
		Variant: SparseProgram,
		Lines: map[int]instructions.Instruction{
			1: ins(instructions.CJump, tok("A"), tok("<"), lit(1), lit(9)),
			2: ins(instructions.CJump, tok("A"), tok(">"), lit(6), lit(9)),
			3: ins(instructions.Copy, tok("A"), lit(5)),
			4: ins(instructions.Jump, lit(5)),
			5: ins(instructions.Explode),
			6: ins(instructions.Defuse),
			9: ins(instructions.Explode),
		},
		Registers: map[string]int{"A": 1, "T": 0},
		Player:    "A",
	},

	"paradox": {
		Name: "paradox",
		Description: "B doubles until it reaches 8, then the bomb rewinds time to " +
			"the moment A names. It only defuses if B was 2 back then.",
		Variant: SparseProgram,
		Lines: map[int]instructions.Instruction{
			1:  ins(instructions.Add, tok("B"), tok("B"), tok("B")),
			2:  ins(instructions.CJump, tok("B"), tok("="), lit(8), lit(7)),
			3:  ins(instructions.Jump, lit(1)),
			7:  ins(instructions.TTravel, tok("A")),
			8:  ins(instructions.CJump, tok("B"), tok("="), lit(2), lit(12)),
			9:  ins(instructions.Explode),
			12: ins(instructions.Defuse),
		},
		Registers: map[string]int{"A": 0, "B": 1, "T": 0},
		Player:    "A",
	},
}

// Lookup returns the named built-in level.
func Lookup(name string) (Level, error) {
	l, ok := catalogue[name]
	if !ok {
		return Level{}, curated.Errorf(NotFound, name)
	}
	return l, nil
}

// List returns every built-in level, sorted by name.
func List() []Level {
	l := make([]Level, 0, len(catalogue))
	for _, lvl := range catalogue {
		l = append(l, lvl)
	}
	sort.Slice(l, func(i, j int) bool {
		return l[i].Name < l[j].Name
	})
	return l
}
