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

// Package machine executes instructions. One call to Step() executes exactly
// one instruction and returns the complete machine state that results; the
// caller decides what to do with it. The machine itself never fails: missing
// lines, malformed operands and wild jumps all have defined meanings (see
// the program and instructions packages) and execution always continues
// unless an instruction says the game is over.
package machine

import (
	"github.com/timefuse/timefuse/instructions"
	"github.com/timefuse/timefuse/program"
	"github.com/timefuse/timefuse/registers"
	"github.com/timefuse/timefuse/rewind"
)

// Outcome is the gameplay effect of a single step.
type Outcome int

// List of valid Outcome values. Almost every step returns OutcomeNone.
const (
	OutcomeNone Outcome = iota
	OutcomeDefused
	OutcomeExploded
)

func (o Outcome) String() string {
	switch o {
	case OutcomeDefused:
		return "defused"
	case OutcomeExploded:
		return "exploded"
	}
	return "none"
}

// Result is everything a single step produces. Snapshot, PC and Store
// together replace the state the step was given; they are swapped in as a
// unit by the session.
type Result struct {
	Snapshot registers.Snapshot
	PC       int
	Store    program.Store
	Outcome  Outcome

	// the instruction that was executed, for tracing and display
	Executed instructions.Instruction
}

// Step executes the instruction at pc. The given snapshot and store are not
// changed; the new state is in the returned Result. The history is updated
// in place with the post-step snapshot, keyed by its T value.
//
// The T register increments before anything else happens, so operand
// resolution (and TTRAVEL) always sees the post-increment snapshot.
func Step(snap registers.Snapshot, pc int, store program.Store, history *rewind.History) Result {
	snap = snap.With(registers.Time, snap.T()+1)

	// only the Fixed program shape has a range to be out of. falling off it
	// detonates the bomb.
	if store.OutOfRange(pc) {
		history.Record(snap.T(), snap)
		return Result{
			Snapshot: snap,
			PC:       pc,
			Store:    store,
			Outcome:  OutcomeExploded,
			Executed: instructions.NoOp,
		}
	}

	ins := store.Get(pc)

	res := Result{
		Snapshot: snap,
		PC:       pc + 1,
		Store:    store,
		Executed: ins,
	}

	switch ins.Op {
	case instructions.Add:
		v := ins.Operand(0).Resolve(snap) + ins.Operand(1).Resolve(snap)
		res.Snapshot = snap.With(ins.Operand(2).Token(), v)

	case instructions.Jump, instructions.Jmp:
		res.PC = jumpTarget(ins.Operand(0), snap, store)

	case instructions.CJump:
		l := ins.Operand(0).Resolve(snap)
		r := ins.Operand(2).Resolve(snap)
		if compare(ins.Operand(1).Token(), l, r) {
			res.PC = jumpTarget(ins.Operand(3), snap, store)
		}

	case instructions.Beq, instructions.Bne, instructions.Bgt, instructions.Blt:
		l := ins.Operand(0).Resolve(snap)
		r := ins.Operand(1).Resolve(snap)
		if branch(ins.Op, l, r) {
			res.PC = jumpTarget(ins.Operand(2), snap, store)
		}

	case instructions.Copy:
		stepCopy(ins, pc, &res)

	case instructions.TTravel:
		// with no operand the destination time is whatever T now reads
		t := res.Snapshot.T()
		if len(ins.Operands) > 0 {
			t = ins.Operand(0).Resolve(res.Snapshot)
		}
		if then, ok := history.Lookup(t); ok {
			res.Snapshot = then
		}

	case instructions.Defuse:
		res.Outcome = OutcomeDefused
		res.PC = pc

	case instructions.Explode:
		res.Outcome = OutcomeExploded
		res.PC = pc

	case instructions.Empty:
		// nothing but the passage of time
	}

	history.Record(res.Snapshot.T(), res.Snapshot)

	return res
}

// stepCopy handles both forms of the COPY instruction. The two-operand form
// inserts the instruction at line resolve(op0) at line resolve(op1); if the
// current pc is at or above the target the pc itself has been shifted, so it
// advances by one extra. The single-operand form inserts immediately after
// the current line and never compensates: the pc lands on the fresh copy.
// The two rules are deliberately distinct; do not unify them.
func stepCopy(ins instructions.Instruction, pc int, res *Result) {
	src := ins.Operand(0).Resolve(res.Snapshot)

	if len(ins.Operands) >= 2 {
		tgt := ins.Operand(1).Resolve(res.Snapshot)
		res.Store = res.Store.InsertAt(tgt, res.Store.Get(src))
		if pc >= tgt {
			res.PC++
		}
		return
	}

	res.Store = res.Store.InsertAt(pc+1, res.Store.Get(src))
}

// jumpTarget reads a jump target with whichever resolution rule the program
// shape uses: through the registers for Sparse programs, raw for Fixed.
func jumpTarget(o instructions.Operand, snap registers.Snapshot, store program.Store) int {
	if store.ResolvesTargets() {
		return o.Resolve(snap)
	}
	return o.Raw()
}

// compare evaluates CJUMP's operator token. Unknown operators compare as
// false, in keeping with the machine's no-failure policy.
func compare(op string, l int, r int) bool {
	switch op {
	case "<":
		return l < r
	case ">":
		return l > r
	case "=", "==":
		return l == r
	case "!=", "≠":
		return l != r
	}
	return false
}

// branch evaluates the fixed instruction set's specialised branch opcodes.
func branch(op instructions.Opcode, l int, r int) bool {
	switch op {
	case instructions.Beq:
		return l == r
	case instructions.Bne:
		return l != r
	case instructions.Bgt:
		return l > r
	case instructions.Blt:
		return l < r
	}
	return false
}
