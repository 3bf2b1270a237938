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

// Package debugger is the interactive control surface over a session: the
// player arms the bomb with a register value and then steps, runs and
// inspects the program through a small command language. The debugger owns
// the run cadence; the session underneath only ever executes one
// instruction at a time.
package debugger

import (
	"io"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/timefuse/timefuse/debugger/terminal"
	"github.com/timefuse/timefuse/levels"
	"github.com/timefuse/timefuse/session"
)

// how often the RUN command executes a step. slow enough to watch.
const runCadence = 100 * time.Millisecond

// a RUN that hasn't finished by this many steps is assumed to be a bomb
// that will tick forever.
const runLimit = 10000

// Debugger is the interactive interface to a session.
type Debugger struct {
	sess *session.Session
	term terminal.Terminal

	// running is false once the player has asked to QUIT
	running bool
}

// New is the preferred method of initialisation for the Debugger type.
func New(lvl levels.Level, term terminal.Terminal) (*Debugger, error) {
	sess, err := session.New(lvl)
	if err != nil {
		return nil, err
	}
	return &Debugger{
		sess: sess,
		term: term,
	}, nil
}

// Start the debugger with the player register already holding the given
// value. Returns when the player quits or input is exhausted.
func (dbg *Debugger) Start(playerValue int) error {
	if err := dbg.term.Initialise(); err != nil {
		return err
	}
	defer dbg.term.CleanUp()

	dbg.sess.Reset(playerValue)
	dbg.running = true

	lvl := dbg.sess.Level()
	dbg.term.TermPrintLine(terminal.StyleNormal, lvl.Name)
	dbg.term.TermPrintLine(terminal.StyleHelp, lvl.Description)
	dbg.printListing()

	for dbg.running {
		input, err := dbg.term.TermRead(dbg.prompt())
		if err != nil {
			if err == io.EOF {
				return nil
			}
			return err
		}

		if err := dbg.parseCommand(input); err != nil {
			dbg.term.TermPrintLine(terminal.StyleError, err.Error())
		}
	}

	return nil
}

// run steps the session on a fixed cadence until it reaches a terminal
// status. this is the only place in the project that drives the machine on
// a timer; the core itself has no notion of time passing on its own.
func (dbg *Debugger) run() {
	tick := time.NewTicker(runCadence)
	defer tick.Stop()

	for i := 0; i < runLimit; i++ {
		<-tick.C
		if !dbg.sess.Step() {
			break
		}
		dbg.printState()
		if dbg.sess.Status() == session.Won || dbg.sess.Status() == session.Lost {
			break
		}
	}

	if dbg.sess.Status() == session.Running {
		logrus.WithField("limit", runLimit).Warn("run abandoned; bomb appears to tick forever")
		dbg.term.TermPrintLine(terminal.StyleHelp, "still ticking. RESET to try another value")
	}
}

func (dbg *Debugger) prompt() string {
	switch dbg.sess.Status() {
	case session.Won:
		return "[defused] "
	case session.Lost:
		return "[exploded] "
	}
	return "[timefuse] "
}
