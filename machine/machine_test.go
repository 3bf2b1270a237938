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

package machine_test

import (
	"testing"

	"github.com/timefuse/timefuse/instructions"
	"github.com/timefuse/timefuse/machine"
	"github.com/timefuse/timefuse/program"
	"github.com/timefuse/timefuse/registers"
	"github.com/timefuse/timefuse/rewind"
	"github.com/timefuse/timefuse/test"
)

func ins(op instructions.Opcode, operands ...instructions.Operand) instructions.Instruction {
	return instructions.New(op, operands...)
}

var lit = instructions.Lit
var tok = instructions.Tok

func newMachine(lines map[int]instructions.Instruction, regs map[string]int) (registers.Snapshot, program.Store, *rewind.History) {
	snap := registers.NewSnapshot(regs)
	return snap, program.LoadMap(lines), rewind.NewHistory(snap)
}

func TestTimeAlwaysAdvances(t *testing.T) {
	// T increments by exactly one on every step, whatever the opcode and
	// however broken the program
	programs := []map[int]instructions.Instruction{
		{1: ins(instructions.Add, tok("A"), lit(1), tok("A"))},
		{1: ins(instructions.Jump, lit(50))},
		{1: ins(instructions.Defuse)},
		{1: ins(instructions.Explode)},
		{1: ins(instructions.Copy, lit(1), lit(5))},
		{},
		{1: ins(instructions.Add)},
	}

	for _, lines := range programs {
		snap, store, h := newMachine(lines, map[string]int{"A": 0})
		res := machine.Step(snap, 1, store, h)
		test.Equate(t, res.Snapshot.T(), 1)
	}
}

func TestAdd(t *testing.T) {
	snap, store, h := newMachine(map[int]instructions.Instruction{
		1: ins(instructions.Add, tok("A"), tok("B"), tok("C")),
	}, map[string]int{"A": 3, "B": 4})

	res := machine.Step(snap, 1, store, h)

	v, ok := res.Snapshot.Value("C")
	test.ExpectSuccess(t, ok)
	test.Equate(t, v, 7)
	test.Equate(t, res.PC, 2)
	test.Equate(t, res.Outcome, machine.OutcomeNone)

	// the input snapshot is untouched
	_, ok = snap.Value("C")
	test.ExpectFailure(t, ok)
}

func TestAddResolvesAgainstIncrementedTime(t *testing.T) {
	// operand resolution happens after the T increment
	snap, store, h := newMachine(map[int]instructions.Instruction{
		1: ins(instructions.Add, tok("T"), lit(0), tok("A")),
	}, map[string]int{"A": 0})

	res := machine.Step(snap, 1, store, h)
	v, _ := res.Snapshot.Value("A")
	test.Equate(t, v, 1)
}

func TestJumpResolvesThroughRegisters(t *testing.T) {
	// a sparse program's jump target can name a register
	snap, store, h := newMachine(map[int]instructions.Instruction{
		1: ins(instructions.Jump, tok("A")),
	}, map[string]int{"A": 9})

	res := machine.Step(snap, 1, store, h)
	test.Equate(t, res.PC, 9)
}

func TestJumpRawOnFixed(t *testing.T) {
	// a fixed program's jump target is a raw line number even when a
	// register has the same name... the A here is unparsable and degrades
	// to line 0
	snap := registers.NewSnapshot(map[string]int{"A": 2})
	store := program.LoadFixed([]instructions.Instruction{
		ins(instructions.Jmp, tok("A")),
		ins(instructions.Explode),
		ins(instructions.Defuse),
	})
	h := rewind.NewHistory(snap)

	res := machine.Step(snap, 0, store, h)
	test.Equate(t, res.PC, 0)
}

func TestCJump(t *testing.T) {
	lines := map[int]instructions.Instruction{
		1: ins(instructions.CJump, tok("A"), tok("<"), lit(10), lit(7)),
	}

	snap, store, h := newMachine(lines, map[string]int{"A": 5})
	res := machine.Step(snap, 1, store, h)
	test.Equate(t, res.PC, 7)

	snap, store, h = newMachine(lines, map[string]int{"A": 15})
	res = machine.Step(snap, 1, store, h)
	test.Equate(t, res.PC, 2)

	// an unknown operator compares as false
	snap, store, h = newMachine(map[int]instructions.Instruction{
		1: ins(instructions.CJump, tok("A"), tok("<=>"), lit(5), lit(7)),
	}, map[string]int{"A": 5})
	res = machine.Step(snap, 1, store, h)
	test.Equate(t, res.PC, 2)
}

func TestBranches(t *testing.T) {
	type trial struct {
		op    instructions.Opcode
		a     int
		b     int
		taken bool
	}

	for _, tr := range []trial{
		{instructions.Beq, 4, 4, true},
		{instructions.Beq, 4, 5, false},
		{instructions.Bne, 4, 5, true},
		{instructions.Bne, 4, 4, false},
		{instructions.Bgt, 5, 4, true},
		{instructions.Bgt, 4, 4, false},
		{instructions.Blt, 3, 4, true},
		{instructions.Blt, 4, 4, false},
	} {
		snap := registers.NewSnapshot(map[string]int{"A": tr.a, "B": tr.b})
		store := program.LoadFixed([]instructions.Instruction{
			ins(tr.op, tok("A"), tok("B"), lit(3)),
			ins(instructions.Defuse),
			ins(instructions.Defuse),
			ins(instructions.Defuse),
		})
		h := rewind.NewHistory(snap)

		res := machine.Step(snap, 0, store, h)
		if tr.taken {
			test.Equate(t, res.PC, 3)
		} else {
			test.Equate(t, res.PC, 1)
		}
	}
}

func TestCopyTwoOperandsScenario(t *testing.T) {
	// a COPY executing above its own target gets shifted along with every
	// other line at or beyond the target, and the pc compensates
	snap, store, h := newMachine(map[int]instructions.Instruction{
		1: ins(instructions.Add, tok("A"), tok("B"), tok("C")),
		9: ins(instructions.Copy, lit(1), lit(3)),
	}, map[string]int{"A": 0})

	res := machine.Step(snap, 9, store, h)

	// both line 1 and line 3 hold the ADD; line 2 is empty
	test.Equate(t, res.Store.Get(1).Op, instructions.Add)
	test.Equate(t, res.Store.Get(3).Op, instructions.Add)
	test.Equate(t, res.Store.Get(2).Op, instructions.Empty)

	// pc=9 >= target=3 so the pc advances by one extra, compensating for
	// its own shift: the COPY itself has moved from 9 to 10
	test.Equate(t, res.PC, 11)
	test.Equate(t, res.Store.Get(10).Op, instructions.Copy)
}

func TestCopyNoCompensationBelowTarget(t *testing.T) {
	// executing COPY 1,3 from line 1: target is above the pc so there is no
	// compensation and the new pc is simply 2
	snap, store, h := newMachine(map[int]instructions.Instruction{
		1: ins(instructions.Copy, lit(1), lit(3)),
	}, map[string]int{"A": 0})

	res := machine.Step(snap, 1, store, h)

	test.Equate(t, res.PC, 2)
	test.Equate(t, res.Store.Get(1).Op, instructions.Copy)
	test.Equate(t, res.Store.Get(3).Op, instructions.Copy)
}

func TestCopySingleOperand(t *testing.T) {
	// the single operand form inserts after the current line and the pc
	// lands on the copy
	snap, store, h := newMachine(map[int]instructions.Instruction{
		1: ins(instructions.Copy, lit(3)),
		2: ins(instructions.Explode),
		3: ins(instructions.Defuse),
	}, map[string]int{"A": 0})

	res := machine.Step(snap, 1, store, h)

	test.Equate(t, res.PC, 2)
	test.Equate(t, res.Store.Get(2).Op, instructions.Defuse)
	test.Equate(t, res.Store.Get(3).Op, instructions.Explode)
	test.Equate(t, res.Store.Get(4).Op, instructions.Defuse)
}

func TestCopyOfMissingLine(t *testing.T) {
	// copying a line that does not exist inserts the empty instruction,
	// shifting the rest of the program all the same
	snap, store, h := newMachine(map[int]instructions.Instruction{
		1: ins(instructions.Copy, lit(50), lit(1)),
	}, map[string]int{"A": 0})

	res := machine.Step(snap, 1, store, h)

	test.Equate(t, res.Store.Get(1).Op, instructions.Empty)
	test.Equate(t, res.Store.Get(2).Op, instructions.Copy)

	// pc=1 >= target=1: compensation applies
	test.Equate(t, res.PC, 3)
}

func TestTimeTravel(t *testing.T) {
	snap, store, h := newMachine(map[int]instructions.Instruction{
		1: ins(instructions.TTravel, lit(0)),
	}, map[string]int{"A": 5})

	// register A changes after the initial snapshot was recorded
	snap = snap.With("A", 99)

	res := machine.Step(snap, 1, store, h)

	// the snapshot is back to time 0, where A was 5
	v, _ := res.Snapshot.Value("A")
	test.Equate(t, v, 5)
	test.Equate(t, res.Snapshot.T(), 0)
	test.Equate(t, res.PC, 2)
}

func TestTimeTravelUnrecorded(t *testing.T) {
	// travelling to a time that never happened changes nothing but T
	snap, store, h := newMachine(map[int]instructions.Instruction{
		1: ins(instructions.TTravel, lit(50)),
	}, map[string]int{"A": 5})

	res := machine.Step(snap, 1, store, h)

	v, _ := res.Snapshot.Value("A")
	test.Equate(t, v, 5)
	test.Equate(t, res.Snapshot.T(), 1)
}

func TestTerminalInstructionsHoldPC(t *testing.T) {
	snap, store, h := newMachine(map[int]instructions.Instruction{
		1: ins(instructions.Defuse),
		2: ins(instructions.Explode),
	}, map[string]int{"A": 0})

	res := machine.Step(snap, 1, store, h)
	test.Equate(t, res.Outcome, machine.OutcomeDefused)
	test.Equate(t, res.PC, 1)

	res = machine.Step(snap, 2, store, h)
	test.Equate(t, res.Outcome, machine.OutcomeExploded)
	test.Equate(t, res.PC, 2)
}

func TestEmptyLinesAreNoOps(t *testing.T) {
	// a sparse program never runs out of range; execution walks through
	// empty space
	snap, store, h := newMachine(map[int]instructions.Instruction{}, map[string]int{"A": 0})

	res := machine.Step(snap, 1000, store, h)
	test.Equate(t, res.Outcome, machine.OutcomeNone)
	test.Equate(t, res.PC, 1001)
	test.Equate(t, res.Executed.Op, instructions.Empty)
}

func TestFixedOutOfRangeIsLoss(t *testing.T) {
	snap := registers.NewSnapshot(map[string]int{"A": 0})
	store := program.LoadFixed([]instructions.Instruction{
		ins(instructions.Add, tok("A"), lit(1), tok("A")),
	})
	h := rewind.NewHistory(snap)

	res := machine.Step(snap, 1, store, h)
	test.Equate(t, res.Outcome, machine.OutcomeExploded)

	// time passed even though nothing executed
	test.Equate(t, res.Snapshot.T(), 1)
}

func TestHistoryCommit(t *testing.T) {
	snap, store, h := newMachine(map[int]instructions.Instruction{
		1: ins(instructions.Add, tok("A"), lit(1), tok("A")),
	}, map[string]int{"A": 0})

	res := machine.Step(snap, 1, store, h)
	machine.Step(res.Snapshot, res.PC, res.Store, h)

	// one commit per step, keyed by the post-step T
	recorded, ok := h.Lookup(1)
	test.ExpectSuccess(t, ok)
	v, _ := recorded.Value("A")
	test.Equate(t, v, 1)

	recorded, ok = h.Lookup(2)
	test.ExpectSuccess(t, ok)
	v, _ = recorded.Value("A")
	test.Equate(t, v, 1)
}
