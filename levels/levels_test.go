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

package levels_test

import (
	"testing"

	"github.com/timefuse/timefuse/curated"
	"github.com/timefuse/timefuse/instructions"
	"github.com/timefuse/timefuse/levels"
	"github.com/timefuse/timefuse/test"
)

func TestLookup(t *testing.T) {
	lvl, err := levels.Lookup("doubling")
	test.ExpectSuccess(t, err)
	test.Equate(t, lvl.Name, "doubling")
	test.ExpectSuccess(t, lvl.Validate())

	_, err = levels.Lookup("no such level")
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, curated.Is(err, levels.NotFound))
}

func TestList(t *testing.T) {
	list := levels.List()
	test.Equate(t, len(list), 3)

	// sorted by name, every one valid
	for i, lvl := range list {
		test.ExpectSuccess(t, lvl.Validate())
		if i > 0 && list[i-1].Name >= lvl.Name {
			t.Errorf("levels out of order: %s before %s", list[i-1].Name, lvl.Name)
		}
	}
}

func TestValidate(t *testing.T) {
	lvl := levels.Level{Name: "x"}
	test.ExpectSuccess(t, curated.Is(lvl.Validate(), levels.NoProgram))

	lvl.List = []instructions.Instruction{instructions.New(instructions.Defuse)}
	test.ExpectSuccess(t, curated.Is(lvl.Validate(), levels.NoTimeRegister))

	lvl.Registers = map[string]int{"T": 0}
	lvl.Player = "A"
	test.ExpectSuccess(t, curated.Is(lvl.Validate(), levels.NoPlayer))

	lvl.Registers["A"] = 0
	test.ExpectSuccess(t, lvl.Validate())
}

func TestStoreIndependence(t *testing.T) {
	lvl, err := levels.Lookup("echo")
	test.ExpectSuccess(t, err)

	a := lvl.Store()
	b := lvl.Store()

	// stores from the same level are independent; mutating one cannot be
	// seen through the other
	c := a.InsertAt(1, instructions.New(instructions.Explode))
	test.Equate(t, c.Get(1).Op, instructions.Explode)
	test.Equate(t, b.Get(1).Op, a.Get(1).Op)
}
