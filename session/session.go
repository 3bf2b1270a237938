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

// Package session ties one level to one running machine. The session owns
// the current snapshot, program counter, program store and history, and
// swaps all four as a unit on every step. There is no concurrency here;
// "run" is whatever cadence the caller steps at.
package session

import (
	"io"

	"github.com/sirupsen/logrus"

	"github.com/timefuse/timefuse/instructions"
	"github.com/timefuse/timefuse/levels"
	"github.com/timefuse/timefuse/listing"
	"github.com/timefuse/timefuse/machine"
	"github.com/timefuse/timefuse/program"
	"github.com/timefuse/timefuse/registers"
	"github.com/timefuse/timefuse/rewind"
)

// Status describes where the game is. Won and Lost are terminal; a session
// in either state refuses to step until it is reset.
type Status int

// List of valid Status values.
const (
	Waiting Status = iota
	Running
	Won
	Lost
)

func (s Status) String() string {
	switch s {
	case Running:
		return "running"
	case Won:
		return "won"
	case Lost:
		return "lost"
	}
	return "waiting"
}

// Session is one playthrough of one level.
type Session struct {
	level levels.Level

	snapshot registers.Snapshot
	pc       int
	store    program.Store
	history  *rewind.History
	status   Status

	// number of Step calls since the last reset. unlike T this is not
	// subject to time travel.
	steps int
}

// New is the preferred method of initialisation for the Session type. The
// session starts with the level's own initial register values; use Reset to
// let the player override their register.
func New(lvl levels.Level) (*Session, error) {
	if err := lvl.Validate(); err != nil {
		return nil, err
	}

	s := &Session{level: lvl}
	s.Reset(lvl.Registers[lvl.Player])

	return s, nil
}

// Reset returns the session to the waiting state with a fresh program store,
// snapshot and history. The player register takes the given value;
// everything else comes from the level definition.
func (s *Session) Reset(playerValue int) {
	s.store = s.level.Store()
	s.snapshot = s.level.Snapshot().With(s.level.Player, playerValue)
	s.pc = s.store.Origin()
	s.history = rewind.NewHistory(s.snapshot)
	s.status = Waiting
	s.steps = 0

	logrus.WithFields(logrus.Fields{
		"level": s.level.Name,
		s.level.Player: playerValue,
	}).Debug("session reset")
}

// Step executes one instruction. Returns false, without doing anything, if
// the session has already reached a terminal status.
func (s *Session) Step() bool {
	if s.status == Won || s.status == Lost {
		return false
	}
	s.status = Running

	res := machine.Step(s.snapshot, s.pc, s.store, s.history)

	s.snapshot = res.Snapshot
	s.pc = res.PC
	s.store = res.Store
	s.steps++

	switch res.Outcome {
	case machine.OutcomeDefused:
		s.status = Won
	case machine.OutcomeExploded:
		s.status = Lost
	}

	logrus.WithFields(logrus.Fields{
		"pc":        s.pc,
		"executed":  res.Executed.String(),
		"registers": s.snapshot.String(),
		"status":    s.status.String(),
	}).Debug("step")

	return true
}

// Run steps the session until it reaches a terminal status, up to maxSteps.
// The returned status is Running if the limit was reached first. Callers
// that want a visible cadence should call Step themselves on a timer; Run
// is as fast as the host allows.
func (s *Session) Run(maxSteps int) Status {
	for i := 0; i < maxSteps; i++ {
		if !s.Step() {
			break
		}
	}
	return s.status
}

// Status returns the session's current status.
func (s *Session) Status() Status {
	return s.status
}

// Registers returns the current register snapshot.
func (s *Session) Registers() registers.Snapshot {
	return s.snapshot
}

// PC returns the current program counter. It is not guaranteed to point at
// a stored program line.
func (s *Session) PC() int {
	return s.pc
}

// Steps returns the number of instructions executed since the last reset.
func (s *Session) Steps() int {
	return s.steps
}

// Level returns the level definition the session was created from.
func (s *Session) Level() levels.Level {
	return s.level
}

// Instruction returns the instruction at the given line of the current
// program store.
func (s *Session) Instruction(line int) instructions.Instruction {
	return s.store.Get(line)
}

// Viewport returns the display listing for the current program and program
// counter.
func (s *Session) Viewport() []listing.Entry {
	return listing.View(s.store, s.pc)
}

// WriteListing formats the current viewport to the writer.
func (s *Session) WriteListing(w io.Writer) {
	listing.Write(w, s.store, s.pc)
}
