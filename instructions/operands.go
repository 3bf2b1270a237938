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

import (
	"fmt"
	"strconv"

	"github.com/timefuse/timefuse/registers"
)

// Operand is a single argument to an instruction: a numeric literal or a
// token. A token names a register if the snapshot it is resolved against has
// one by that name; otherwise it is coerced to an integer.
type Operand struct {
	token   string
	literal int
	isLit   bool
}

// Lit creates a literal operand.
func Lit(v int) Operand {
	return Operand{literal: v, isLit: true}
}

// Tok creates a token operand. Tokens cover register names, numeric strings
// and the comparison operators used by CJUMP.
func Tok(s string) Operand {
	return Operand{token: s}
}

// Resolve returns the integer value of the operand against the given
// snapshot. Literals resolve to themselves, register names to the register's
// value, and anything else is parsed as an integer. Unparsable tokens
// resolve to zero; a malformed program degrades, it does not fail.
func (o Operand) Resolve(snap registers.Snapshot) int {
	if o.isLit {
		return o.literal
	}
	if v, ok := snap.Value(o.token); ok {
		return v
	}
	v, err := strconv.Atoi(o.token)
	if err != nil {
		return 0
	}
	return v
}

// Raw returns the operand's value without consulting any register. This is
// the resolution rule for jump targets in the fixed instruction set, where a
// target is always a line number and never a register reference.
func (o Operand) Raw() int {
	if o.isLit {
		return o.literal
	}
	v, err := strconv.Atoi(o.token)
	if err != nil {
		return 0
	}
	return v
}

// Token returns the operand's token as written. Literals return their
// decimal form. Used for register-write destinations and for CJUMP's
// comparison operator.
func (o Operand) Token() string {
	if o.isLit {
		return strconv.Itoa(o.literal)
	}
	return o.token
}

func (o Operand) String() string {
	if o.isLit {
		return fmt.Sprintf("%d", o.literal)
	}
	return o.token
}
