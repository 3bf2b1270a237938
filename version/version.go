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

// Package version records the version of the binary.
package version

import "runtime/debug"

// ApplicationName is the name to use when referring to the application.
const ApplicationName = "Timefuse"

// set by the makefile at release time. empty for a manual build.
var number string

// Version returns the version string and whether this is a numbered release.
// Manual builds report the vcs revision if the build information carries
// one, or "unreleased" if it does not.
func Version() (string, bool) {
	if number != "" {
		return number, true
	}

	if info, ok := debug.ReadBuildInfo(); ok {
		for _, v := range info.Settings {
			if v.Key == "vcs.revision" {
				return v.Value, false
			}
		}
	}

	return "unreleased", false
}
