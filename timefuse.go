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

package main

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/timefuse/timefuse/debugger"
	"github.com/timefuse/timefuse/debugger/terminal"
	"github.com/timefuse/timefuse/debugger/terminal/colorterm"
	"github.com/timefuse/timefuse/debugger/terminal/plainterm"
	"github.com/timefuse/timefuse/levels"
	"github.com/timefuse/timefuse/performance"
	"github.com/timefuse/timefuse/session"
	"github.com/timefuse/timefuse/version"
)

func main() {
	if err := rootCommand().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "* %v\n", err)
		os.Exit(10)
	}
}

func rootCommand() *cobra.Command {
	var logLevel string

	root := &cobra.Command{
		Use:           "timefuse",
		Short:         "a bomb-defusal puzzle played against a tiny time-travelling machine",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			lvl, err := logrus.ParseLevel(logLevel)
			if err != nil {
				return err
			}
			logrus.SetLevel(lvl)
			return nil
		},
	}

	root.PersistentFlags().StringVar(&logLevel, "log", "warn", "logging level (trace, debug, info, warn, error)")

	root.AddCommand(debugCommand())
	root.AddCommand(runCommand())
	root.AddCommand(listCommand())
	root.AddCommand(performanceCommand())
	root.AddCommand(versionCommand())

	return root
}

func debugCommand() *cobra.Command {
	var levelName string
	var value int
	var termType string

	cmd := &cobra.Command{
		Use:   "debug",
		Short: "step through a level interactively",
		RunE: func(cmd *cobra.Command, args []string) error {
			lvl, err := levels.Lookup(levelName)
			if err != nil {
				return err
			}

			var term terminal.Terminal
			switch termType {
			case "color":
				term = colorterm.NewTerminal()
			case "plain":
				term = plainterm.NewTerminal()
			default:
				return fmt.Errorf("unknown terminal type %s", termType)
			}

			dbg, err := debugger.New(lvl, term)
			if err != nil {
				return err
			}

			return dbg.Start(value)
		},
	}

	cmd.Flags().StringVar(&levelName, "level", "doubling", "level to play")
	cmd.Flags().IntVar(&value, "value", 0, "initial value for the player register")
	cmd.Flags().StringVar(&termType, "term", "color", "terminal type (plain, color)")

	return cmd
}

func runCommand() *cobra.Command {
	var levelName string
	var value int
	var maxSteps int
	var trace bool

	cmd := &cobra.Command{
		Use:   "run",
		Short: "run a level to its conclusion and print the outcome",
		RunE: func(cmd *cobra.Command, args []string) error {
			if trace {
				logrus.SetLevel(logrus.DebugLevel)
			}

			lvl, err := levels.Lookup(levelName)
			if err != nil {
				return err
			}

			sess, err := session.New(lvl)
			if err != nil {
				return err
			}
			sess.Reset(value)

			status := sess.Run(maxSteps)

			fmt.Printf("%s: %s (%s=%d)\n", lvl.Name, status, lvl.Player, value)
			fmt.Printf("%s\n", sess.Registers())
			if status == session.Running {
				fmt.Printf("gave up after %d steps\n", sess.Steps())
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&levelName, "level", "doubling", "level to run")
	cmd.Flags().IntVar(&value, "value", 0, "initial value for the player register")
	cmd.Flags().IntVar(&maxSteps, "steps", 10000, "execution limit")
	cmd.Flags().BoolVar(&trace, "trace", false, "log every step as it executes")

	return cmd
}

func listCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "list the built-in levels",
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, lvl := range levels.List() {
				fmt.Printf("%s\n    %s\n", lvl.Name, lvl.Description)
			}
			return nil
		},
	}
}

func versionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "print the version of the binary",
		Run: func(cmd *cobra.Command, args []string) {
			v, release := version.Version()
			if release {
				fmt.Printf("%s %s\n", version.ApplicationName, v)
			} else {
				fmt.Printf("%s (%s)\n", version.ApplicationName, v)
			}
		},
	}
}

func performanceCommand() *cobra.Command {
	var levelName string
	var value int
	var duration string
	var profile bool
	var stats bool

	cmd := &cobra.Command{
		Use:   "performance",
		Short: "measure how fast the machine can step",
		RunE: func(cmd *cobra.Command, args []string) error {
			lvl, err := levels.Lookup(levelName)
			if err != nil {
				return err
			}
			return performance.Check(os.Stdout, lvl, value, duration, profile, stats)
		},
	}

	cmd.Flags().StringVar(&levelName, "level", "doubling", "level to measure with")
	cmd.Flags().IntVar(&value, "value", 16, "initial value for the player register")
	cmd.Flags().StringVar(&duration, "duration", "5s", "how long to measure for")
	cmd.Flags().BoolVar(&profile, "profile", false, "write a CPU profile")
	cmd.Flags().BoolVar(&stats, "statsview", false, "serve live runtime statistics while measuring")

	return cmd
}
