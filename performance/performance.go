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

// Package performance measures how fast the machine can step. A level is
// armed, run to its conclusion and rearmed, over and over, for a wall-clock
// duration; the result is a steps-per-second figure. Optionally a CPU
// profile is written and a statsview server launched for the duration of
// the measurement.
package performance

import (
	"fmt"
	"io"
	"time"

	"github.com/timefuse/timefuse/levels"
	"github.com/timefuse/timefuse/session"
	"github.com/timefuse/timefuse/statsview"
)

// name of the file the CPU profile is written to.
const profileName = "performance.profile"

// a single playthrough is abandoned after this many steps. keeps a level
// that loops forever from turning the measurement into one long playthrough.
const stepLimit = 100000

// Check the performance of the machine using the supplied level.
func Check(output io.Writer, lvl levels.Level, playerValue int, duration string, profile bool, stats bool) error {
	dur, err := time.ParseDuration(duration)
	if err != nil {
		return fmt.Errorf("performance: %w", err)
	}

	sess, err := session.New(lvl)
	if err != nil {
		return fmt.Errorf("performance: %w", err)
	}

	if stats {
		statsview.Launch(output)
	}

	steps := 0
	plays := 0

	runner := func() {
		deadline := time.Now().Add(dur)
		for time.Now().Before(deadline) {
			sess.Reset(playerValue)
			sess.Run(stepLimit)
			steps += sess.Steps()
			plays++
		}
	}

	if profile {
		err = profileCPU(profileName, runner)
	} else {
		runner()
	}
	if err != nil {
		return fmt.Errorf("performance: %w", err)
	}

	fmt.Fprintf(output, "level: %s (%s=%d)\n", lvl.Name, lvl.Player, playerValue)
	fmt.Fprintf(output, "%d playthroughs, %d steps in %s\n", plays, steps, dur)
	fmt.Fprintf(output, "%.0f steps/sec\n", float64(steps)/dur.Seconds())

	return nil
}
