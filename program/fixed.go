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

import "github.com/timefuse/timefuse/instructions"

// Fixed is the array program shape: 0-indexed, contiguous and not
// modifiable. Walking the program counter off either end is an immediate
// loss, in contrast to the Sparse store's endless no-op space.
type Fixed struct {
	list []instructions.Instruction
}

// LoadFixed creates a Fixed store from an ordered program. The program is
// copied.
func LoadFixed(list []instructions.Instruction) Fixed {
	l := make([]instructions.Instruction, len(list))
	copy(l, list)
	return Fixed{list: l}
}

// Get implements the Store interface.
func (p Fixed) Get(line int) instructions.Instruction {
	if line < 0 || line >= len(p.list) {
		return instructions.NoOp
	}
	return p.list[line]
}

// InsertAt implements the Store interface. Fixed programs cannot be
// modified; the store is returned unchanged.
func (p Fixed) InsertAt(target int, ins instructions.Instruction) Store {
	return p
}

// Lines implements the Store interface.
func (p Fixed) Lines() []int {
	l := make([]int, len(p.list))
	for i := range p.list {
		l[i] = i
	}
	return l
}

// Origin implements the Store interface.
func (p Fixed) Origin() int {
	return 0
}

// OutOfRange implements the Store interface.
func (p Fixed) OutOfRange(line int) bool {
	return line < 0 || line >= len(p.list)
}

// ResolvesTargets implements the Store interface.
func (p Fixed) ResolvesTargets() bool {
	return false
}
