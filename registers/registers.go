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

package registers

import (
	"fmt"
	"sort"
	"strings"
)

// Time is the name of the reserved register counting elapsed steps. Every
// snapshot contains it.
const Time = "T"

// Snapshot records the value of every register at one instant. A Snapshot is
// never changed once made. Stepping the machine produces a new Snapshot with
// With(); the old one remains valid (the rewind package depends on this).
type Snapshot struct {
	values map[string]int
}

// NewSnapshot is the preferred method of initialisation for the Snapshot
// type. The initial values are copied. The T register is added if the
// initial values do not name it.
func NewSnapshot(initial map[string]int) Snapshot {
	v := make(map[string]int, len(initial)+1)
	for name, val := range initial {
		v[name] = val
	}
	if _, ok := v[Time]; !ok {
		v[Time] = 0
	}
	return Snapshot{values: v}
}

// Value returns the value of the named register. The second return value is
// false if no such register exists.
func (s Snapshot) Value(name string) (int, bool) {
	v, ok := s.values[name]
	return v, ok
}

// T returns the value of the reserved time register.
func (s Snapshot) T() int {
	return s.values[Time]
}

// With returns a new Snapshot identical to this one except for the named
// register, which takes the given value. Registers spring into existence on
// first write.
func (s Snapshot) With(name string, value int) Snapshot {
	v := make(map[string]int, len(s.values)+1)
	for n, val := range s.values {
		v[n] = val
	}
	v[name] = value
	return Snapshot{values: v}
}

// Names returns every register name in the snapshot, sorted, with the time
// register always last.
func (s Snapshot) Names() []string {
	names := make([]string, 0, len(s.values))
	for n := range s.values {
		if n != Time {
			names = append(names, n)
		}
	}
	sort.Strings(names)
	return append(names, Time)
}

func (s Snapshot) String() string {
	b := strings.Builder{}
	for i, n := range s.Names() {
		if i > 0 {
			b.WriteString(" ")
		}
		b.WriteString(fmt.Sprintf("%s=%d", n, s.values[n]))
	}
	return b.String()
}
