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

// Package curated defines the error type used at the package boundaries of
// the project. A curated error remembers the pattern it was created from,
// so callers can test for a category of error without string matching the
// formatted message. Note that the machine itself never returns errors of
// any kind; curated errors appear only around session and level loading.
package curated

import (
	"errors"
	"fmt"
)

type curated struct {
	pattern string
	wrapped error
}

// Errorf creates a new curated error. The pattern is both the fmt format of
// the message and the identity tested by Is() and Has().
func Errorf(pattern string, values ...interface{}) error {
	return curated{
		pattern: pattern,
		wrapped: fmt.Errorf(pattern, values...),
	}
}

// Error implements the error interface.
func (e curated) Error() string {
	return e.wrapped.Error()
}

// Unwrap exposes any error folded into the message with a %v or %w verb.
func (e curated) Unwrap() error {
	return errors.Unwrap(e.wrapped)
}

// IsAny checks whether err is a curated error.
func IsAny(err error) bool {
	var c curated
	return errors.As(err, &c)
}

// Is checks whether err is a curated error made from the given pattern.
func Is(err error, pattern string) bool {
	var c curated
	if !errors.As(err, &c) {
		return false
	}
	return c.pattern == pattern
}

// Has checks whether the given pattern appears anywhere in err's chain.
func Has(err error, pattern string) bool {
	for err != nil {
		if c, ok := err.(curated); ok && c.pattern == pattern {
			return true
		}
		err = errors.Unwrap(err)
	}
	return false
}
