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

package curated_test

import (
	"errors"
	"testing"

	"github.com/timefuse/timefuse/curated"
	"github.com/timefuse/timefuse/test"
)

func TestCurated(t *testing.T) {
	const pattern = "test: %s"

	err := curated.Errorf(pattern, "detail")
	test.Equate(t, err.Error(), "test: detail")

	test.ExpectSuccess(t, curated.IsAny(err))
	test.ExpectSuccess(t, curated.Is(err, pattern))
	test.ExpectFailure(t, curated.Is(err, "some other pattern"))

	plain := errors.New("plain")
	test.ExpectFailure(t, curated.IsAny(plain))
	test.ExpectFailure(t, curated.Is(plain, pattern))
	test.ExpectFailure(t, curated.Is(nil, pattern))
}

func TestHas(t *testing.T) {
	const inner = "inner: %s"
	const outer = "outer: %w"

	err := curated.Errorf(outer, curated.Errorf(inner, "detail"))

	test.ExpectSuccess(t, curated.Has(err, outer))
	test.ExpectSuccess(t, curated.Has(err, inner))
	test.ExpectFailure(t, curated.Has(err, "missing: %s"))
	test.ExpectFailure(t, curated.Has(nil, inner))
}
