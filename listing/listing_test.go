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

package listing_test

import (
	"strings"
	"testing"

	"github.com/timefuse/timefuse/instructions"
	"github.com/timefuse/timefuse/listing"
	"github.com/timefuse/timefuse/program"
	"github.com/timefuse/timefuse/test"
)

func TestView(t *testing.T) {
	store := program.LoadMap(map[int]instructions.Instruction{
		1:   instructions.New(instructions.Defuse),
		2:   instructions.New(instructions.Explode),
		100: instructions.New(instructions.Defuse),
	})

	entries := listing.View(store, 1)

	// lines 0-3 (neighbourhood of 1, 2 and the pc), one gap, lines 99-101
	test.Equate(t, len(entries), 8)

	test.Equate(t, entries[0].Line, 0)
	test.Equate(t, entries[0].Instruction.Op, instructions.Empty)
	test.Equate(t, entries[1].Line, 1)
	test.Equate(t, entries[1].Current, true)
	test.Equate(t, entries[2].Line, 2)
	test.Equate(t, entries[2].Current, false)
	test.Equate(t, entries[3].Line, 3)

	test.Equate(t, entries[4].IsGap, true)

	test.Equate(t, entries[5].Line, 99)
	test.Equate(t, entries[6].Line, 100)
	test.Equate(t, entries[6].Instruction.Op, instructions.Defuse)
	test.Equate(t, entries[7].Line, 101)
}

func TestViewNoAdjacentGaps(t *testing.T) {
	// adjacent retained lines never have a gap marker between them
	store := program.LoadMap(map[int]instructions.Instruction{
		1: instructions.New(instructions.Defuse),
		3: instructions.New(instructions.Explode),
		5: instructions.New(instructions.Defuse),
	})

	for _, e := range listing.View(store, 1) {
		if e.IsGap {
			t.Errorf("gap marker in a fully-covered neighbourhood")
		}
	}
}

func TestViewGapPerHole(t *testing.T) {
	store := program.LoadMap(map[int]instructions.Instruction{
		1:  instructions.New(instructions.Defuse),
		10: instructions.New(instructions.Explode),
		20: instructions.New(instructions.Defuse),
	})

	gaps := 0
	for _, e := range listing.View(store, 1) {
		if e.IsGap {
			gaps++
		}
	}
	test.Equate(t, gaps, 2)
}

func TestViewFollowsPC(t *testing.T) {
	// the pc neighbourhood is retained even when the pc is far from any
	// stored line
	store := program.LoadMap(map[int]instructions.Instruction{
		1: instructions.New(instructions.Defuse),
	})

	entries := listing.View(store, 500)

	current := -1
	for _, e := range entries {
		if e.Current {
			current = e.Line
		}
	}
	test.Equate(t, current, 500)

	// 0, 1, 2, gap, 499, 500, 501
	test.Equate(t, len(entries), 7)
	test.Equate(t, entries[3].IsGap, true)
}

func TestWrite(t *testing.T) {
	store := program.LoadMap(map[int]instructions.Instruction{
		1: instructions.New(instructions.Jump, instructions.Lit(9)),
		9: instructions.New(instructions.Defuse),
	})

	b := strings.Builder{}
	listing.Write(&b, store, 1)

	lines := strings.Split(strings.TrimRight(b.String(), "\n"), "\n")

	// 0, 1, 2, gap, 8, 9, 10
	test.Equate(t, len(lines), 7)
	test.Equate(t, strings.Contains(lines[1], "->"), true)
	test.Equate(t, strings.Contains(lines[1], "JUMP 9"), true)
	test.Equate(t, strings.Contains(lines[3], "..."), true)
	test.Equate(t, strings.Contains(lines[5], "DEFUSE"), true)
}
