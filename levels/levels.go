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

// Package levels defines what a puzzle is: a program, the registers it
// starts with, and the one register the player is allowed to set. Levels
// are plain data; nothing here is persisted or parsed from files.
package levels

import (
	"github.com/timefuse/timefuse/curated"
	"github.com/timefuse/timefuse/instructions"
	"github.com/timefuse/timefuse/program"
	"github.com/timefuse/timefuse/registers"
)

// Variant selects the program shape a level runs on. See the program
// package for how the two shapes differ.
type Variant int

// List of valid Variant values.
const (
	FixedProgram Variant = iota
	SparseProgram
)

// Sentinal error messages for the Validate function.
const (
	NoProgram      = "level: %s: no program"
	NoTimeRegister = "level: %s: initial registers do not include T"
	NoPlayer       = "level: %s: player register %s not in initial registers"
)

// Level is one puzzle definition.
type Level struct {
	Name        string
	Description string

	Variant Variant

	// exactly one of List and Lines should be given. List is assigned
	// contiguous line numbers from the variant's origin; Lines is an
	// explicitly numbered (possibly sparse) program.
	List  []instructions.Instruction
	Lines map[int]instructions.Instruction

	// initial register values. must include T; by convention T starts at 0.
	Registers map[string]int

	// the register the player sets before arming the bomb.
	Player string
}

// Validate checks the structural shape of the level: a program exists and
// the registers include T and the player register. Program content is never
// validated; a level full of nonsense instructions is a legal, if cruel,
// puzzle.
func (l Level) Validate() error {
	if len(l.List) == 0 && len(l.Lines) == 0 {
		return curated.Errorf(NoProgram, l.Name)
	}
	if _, ok := l.Registers[registers.Time]; !ok {
		return curated.Errorf(NoTimeRegister, l.Name)
	}
	if _, ok := l.Registers[l.Player]; !ok {
		return curated.Errorf(NoPlayer, l.Name, l.Player)
	}
	return nil
}

// Store builds a fresh program store for the level. Every call returns an
// independent store; a session that has let COPY mangle its program gets a
// pristine one on reset.
func (l Level) Store() program.Store {
	if l.Variant == FixedProgram {
		return program.LoadFixed(l.List)
	}
	if l.Lines != nil {
		return program.LoadMap(l.Lines)
	}
	return program.LoadList(l.List)
}

// Snapshot builds the initial register snapshot for the level.
func (l Level) Snapshot() registers.Snapshot {
	return registers.NewSnapshot(l.Registers)
}
