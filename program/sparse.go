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

package program

import (
	"sort"

	"github.com/timefuse/timefuse/instructions"
)

// Sparse is the self-modifying program shape: line numbers may be
// non-contiguous and, after enough COPY instructions, arbitrarily large.
// Negative and zero line numbers are legal, if short-lived, residents.
type Sparse struct {
	lines map[int]instructions.Instruction
}

// LoadList creates a Sparse store from an ordered program, assigning
// contiguous line numbers from 1.
func LoadList(list []instructions.Instruction) Sparse {
	lines := make(map[int]instructions.Instruction, len(list))
	for i, ins := range list {
		lines[i+1] = ins
	}
	return Sparse{lines: lines}
}

// LoadMap creates a Sparse store from an already line-numbered program. Keys
// are assumed unique by construction; the mapping is copied.
func LoadMap(m map[int]instructions.Instruction) Sparse {
	lines := make(map[int]instructions.Instruction, len(m))
	for n, ins := range m {
		lines[n] = ins
	}
	return Sparse{lines: lines}
}

// Get implements the Store interface.
func (p Sparse) Get(line int) instructions.Instruction {
	if ins, ok := p.lines[line]; ok {
		return ins
	}
	return instructions.NoOp
}

// InsertAt implements the Store interface. The remap into a fresh mapping is
// order-independent so there is no need to shift highest lines first.
func (p Sparse) InsertAt(target int, ins instructions.Instruction) Store {
	lines := make(map[int]instructions.Instruction, len(p.lines)+1)
	for n, i := range p.lines {
		if n >= target {
			lines[n+1] = i
		} else {
			lines[n] = i
		}
	}
	lines[target] = ins
	return Sparse{lines: lines}
}

// Lines implements the Store interface.
func (p Sparse) Lines() []int {
	l := make([]int, 0, len(p.lines))
	for n := range p.lines {
		l = append(l, n)
	}
	sort.Ints(l)
	return l
}

// Origin implements the Store interface.
func (p Sparse) Origin() int {
	return 1
}

// OutOfRange implements the Store interface. A sparse program has no edge to
// fall off; execution beyond the stored lines just walks through no-ops.
func (p Sparse) OutOfRange(line int) bool {
	return false
}

// ResolvesTargets implements the Store interface.
func (p Sparse) ResolvesTargets() bool {
	return true
}
