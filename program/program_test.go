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

package program_test

import (
	"testing"

	"github.com/timefuse/timefuse/instructions"
	"github.com/timefuse/timefuse/program"
	"github.com/timefuse/timefuse/test"
)

func TestLoadList(t *testing.T) {
	p := program.LoadList([]instructions.Instruction{
		instructions.New(instructions.Defuse),
		instructions.New(instructions.Explode),
	})

	// list programs are 1-indexed
	test.Equate(t, p.Get(1).Op, instructions.Defuse)
	test.Equate(t, p.Get(2).Op, instructions.Explode)
	test.Equate(t, p.Get(0).Op, instructions.Empty)
	test.Equate(t, p.Get(3).Op, instructions.Empty)
	test.Equate(t, p.Origin(), 1)
}

func TestLoadMap(t *testing.T) {
	p := program.LoadMap(map[int]instructions.Instruction{
		1: instructions.New(instructions.Defuse),
		9: instructions.New(instructions.Explode),
	})

	test.Equate(t, p.Get(1).Op, instructions.Defuse)
	test.Equate(t, p.Get(9).Op, instructions.Explode)

	// absent lines are no-ops, not errors
	test.Equate(t, p.Get(5).Op, instructions.Empty)
	test.Equate(t, p.Get(-1).Op, instructions.Empty)

	test.Equate(t, len(p.Lines()), 2)
	test.Equate(t, p.OutOfRange(10000), false)
	test.Equate(t, p.ResolvesTargets(), true)
}

func TestInsertAt(t *testing.T) {
	add := instructions.New(instructions.Add, instructions.Tok("A"), instructions.Tok("B"), instructions.Tok("C"))
	jump := instructions.New(instructions.Jump, instructions.Lit(1))

	p := program.LoadMap(map[int]instructions.Instruction{
		1: instructions.New(instructions.Defuse),
		3: instructions.New(instructions.Explode),
		4: jump,
	})

	q := p.InsertAt(3, add)

	// the target line holds the inserted instruction
	test.Equate(t, q.Get(3).Op, instructions.Add)

	// every line at or above the target has shifted up by one
	test.Equate(t, q.Get(4).Op, instructions.Explode)
	test.Equate(t, q.Get(5).Op, instructions.Jump)

	// lines below the target are unchanged
	test.Equate(t, q.Get(1).Op, instructions.Defuse)

	// cardinality grows by exactly one
	test.Equate(t, len(q.Lines()), 4)

	// the original store is untouched
	test.Equate(t, p.Get(3).Op, instructions.Explode)
	test.Equate(t, len(p.Lines()), 3)
}

func TestInsertAtEmptyNeighbourhood(t *testing.T) {
	p := program.LoadMap(map[int]instructions.Instruction{
		1: instructions.New(instructions.Add, instructions.Tok("A"), instructions.Tok("B"), instructions.Tok("C")),
	})

	q := p.InsertAt(3, p.Get(1))

	test.Equate(t, q.Get(1).Op, instructions.Add)
	test.Equate(t, q.Get(2).Op, instructions.Empty)
	test.Equate(t, q.Get(3).Op, instructions.Add)
	test.Equate(t, len(q.Lines()), 2)
}

func TestFixed(t *testing.T) {
	p := program.LoadFixed([]instructions.Instruction{
		instructions.New(instructions.Defuse),
		instructions.New(instructions.Explode),
	})

	// array programs are 0-indexed
	test.Equate(t, p.Get(0).Op, instructions.Defuse)
	test.Equate(t, p.Get(1).Op, instructions.Explode)
	test.Equate(t, p.Origin(), 0)
	test.Equate(t, p.ResolvesTargets(), false)

	test.Equate(t, p.OutOfRange(-1), true)
	test.Equate(t, p.OutOfRange(0), false)
	test.Equate(t, p.OutOfRange(1), false)
	test.Equate(t, p.OutOfRange(2), true)

	// fixed programs cannot be modified
	q := p.InsertAt(0, instructions.New(instructions.Defuse))
	test.Equate(t, len(q.Lines()), 2)
	test.Equate(t, q.Get(1).Op, instructions.Explode)
}
