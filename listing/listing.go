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

// Package listing builds the viewport onto a program: the bounded, ordered
// slice of lines worth showing. A self-modified program can push lines to
// arbitrary numbers, so the whole address space is never walked; the
// viewport covers the immediate neighbourhood of every stored line and of
// the program counter, with gap markers standing in for everything skipped.
// Cost is proportional to the number of stored lines, however sparse the
// program has become.
package listing

import (
	"fmt"
	"io"
	"sort"

	"github.com/timefuse/timefuse/instructions"
	"github.com/timefuse/timefuse/program"
)

// Entry is one row of the viewport: either a program line (possibly a
// synthesised no-op for a line the store does not hold) or a gap marker.
type Entry struct {
	Line        int
	Instruction instructions.Instruction

	// IsGap entries represent any number of skipped lines. Line and
	// Instruction are meaningless when set.
	IsGap bool

	// Current is set on the entry the program counter points at.
	Current bool
}

// View computes the viewport for the given program and program counter.
// Entries are in ascending line order with a gap marker wherever
// consecutive retained lines are not adjacent.
func View(store program.Store, pc int) []Entry {
	keep := make(map[int]bool)
	for _, n := range store.Lines() {
		keep[n-1] = true
		keep[n] = true
		keep[n+1] = true
	}
	keep[pc-1] = true
	keep[pc] = true
	keep[pc+1] = true

	lines := make([]int, 0, len(keep))
	for n := range keep {
		lines = append(lines, n)
	}
	sort.Ints(lines)

	entries := make([]Entry, 0, len(lines))
	for i, n := range lines {
		if i > 0 && n-lines[i-1] > 1 {
			entries = append(entries, Entry{IsGap: true})
		}
		entries = append(entries, Entry{
			Line:        n,
			Instruction: store.Get(n),
			Current:     n == pc,
		})
	}

	return entries
}

// Write formats the viewport to the given writer, one entry per row, with
// the current line marked.
func Write(w io.Writer, store program.Store, pc int) {
	for _, e := range View(store, pc) {
		if e.IsGap {
			fmt.Fprintln(w, "      ...")
			continue
		}
		marker := "  "
		if e.Current {
			marker = "->"
		}
		fmt.Fprintf(w, "%s %4d  %s\n", marker, e.Line, e.Instruction)
	}
}
