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

// Package rewind keeps the history of register snapshots that the TTRAVEL
// instruction rewinds into. One entry per observed value of the T register;
// stepping forward after a rewind overwrites the entries it re-records, so
// the history always holds the most recent snapshot seen at each time, not
// the first.
package rewind

import "github.com/timefuse/timefuse/registers"

// History is an append-only record of snapshots keyed by the T register's
// value at the moment of commit. It is owned by exactly one session and is
// discarded wholesale on reset; there is no eviction.
type History struct {
	entries map[int]registers.Snapshot
}

// NewHistory is the preferred method of initialisation for the History type.
// Entry 0 is always present and holds the initial snapshot.
func NewHistory(initial registers.Snapshot) *History {
	h := &History{
		entries: make(map[int]registers.Snapshot),
	}
	h.entries[0] = initial
	return h
}

// Record commits a snapshot at the given time, overwriting any snapshot
// previously recorded there.
func (h *History) Record(t int, snap registers.Snapshot) {
	h.entries[t] = snap
}

// Lookup returns the snapshot recorded at the given time. The second return
// value is false if that time has never been observed.
func (h *History) Lookup(t int) (registers.Snapshot, bool) {
	snap, ok := h.entries[t]
	return snap, ok
}

// Len returns the number of distinct times recorded.
func (h *History) Len() int {
	return len(h.entries)
}
