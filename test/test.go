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

// Package test contains the small assertion helpers used throughout the
// project's tests. Not a general purpose assertion library; just enough to
// keep the tests terse.
package test

import "testing"

// Equate is used to test equality between one value and another.
func Equate[T comparable](t *testing.T, value T, expectedValue T) {
	t.Helper()
	if value != expectedValue {
		t.Errorf("equation of type %T failed (%v - wanted %v)", value, value, expectedValue)
	}
}

// ExpectSuccess tests that the value is either a nil error or a true bool.
func ExpectSuccess(t *testing.T, v interface{}) bool {
	t.Helper()

	switch v := v.(type) {
	case error:
		if v != nil {
			t.Errorf("expected success (error: %v)", v)
			return false
		}
	case bool:
		if !v {
			t.Errorf("expected success (bool: false)")
			return false
		}
	case nil:
	default:
		t.Fatalf("unhandled type for ExpectSuccess() (%T)", v)
		return false
	}

	return true
}

// ExpectFailure tests that the value is either a non-nil error or a false
// bool.
func ExpectFailure(t *testing.T, v interface{}) bool {
	t.Helper()

	switch v := v.(type) {
	case error:
		if v == nil {
			t.Errorf("expected failure (error: nil)")
			return false
		}
	case bool:
		if v {
			t.Errorf("expected failure (bool: true)")
			return false
		}
	case nil:
		t.Errorf("expected failure (nil)")
		return false
	default:
		t.Fatalf("unhandled type for ExpectFailure() (%T)", v)
		return false
	}

	return true
}
