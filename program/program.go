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

// Package program implements the program store: the mapping of line numbers
// to instructions that the machine executes against. Two incompatible
// program shapes exist in the wild and both are supported behind the Store
// interface. They differ in more than representation, so the differences are
// part of the interface rather than smoothed over:
//
// The Sparse store is 1-indexed and self-modifiable. Missing lines are
// no-ops, jump targets are resolved through the registers, and the COPY
// instruction can push line numbers arbitrarily high.
//
// The Fixed store is a 0-indexed array. It cannot be modified, jump targets
// are raw line numbers, and a program counter outside the array is an
// immediate loss.
package program

import "github.com/timefuse/timefuse/instructions"

// Store is one program address space. Implementations are value types;
// InsertAt returns a new Store and never changes the receiver.
type Store interface {
	// Get returns the instruction at the given line. Lines that do not
	// exist return instructions.NoOp, never an error.
	Get(line int) instructions.Instruction

	// InsertAt returns a new store with the instruction at the target line
	// and every line at or above the target shifted up by one. Shifting
	// never rewrites jump targets held in other instructions' operands;
	// a shifted program can invalidate its own jumps and that is part of
	// the game. The Fixed store returns itself unchanged.
	InsertAt(target int, ins instructions.Instruction) Store

	// Lines returns every stored line number in ascending order.
	Lines() []int

	// Origin is the line number execution starts from: 1 for Sparse
	// programs, 0 for Fixed.
	Origin() int

	// OutOfRange reports whether a program counter at the given line is
	// beyond the program. Only the Fixed store ever returns true; the
	// Sparse address space is unbounded.
	OutOfRange(line int) bool

	// ResolvesTargets reports whether jump targets pass through the
	// operand resolver (and so may name a register) or are read raw.
	ResolvesTargets() bool
}
