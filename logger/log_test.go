// This file is part of Nestalgic.
//
// Nestalgic is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Nestalgic is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Nestalgic.  If not, see <https://www.gnu.org/licenses/>.

package logger

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogEntries(t *testing.T) {
	l := newLogger(maxCentral)

	l.log("test", "this is a test")
	l.logf("test", "this is %s", "another test")

	s := &strings.Builder{}
	l.write(s)
	assert.Equal(t, "test: this is a test\ntest: this is another test\n", s.String())

	l.clear()
	s.Reset()
	l.write(s)
	assert.Empty(t, s.String())
}

func TestRepeatFolding(t *testing.T) {
	l := newLogger(maxCentral)

	l.log("test", "same detail")
	l.log("test", "same detail")
	l.log("test", "same detail")

	l.borrow(func(entries []Entry) {
		require.Len(t, entries, 1)
		assert.Equal(t, 2, entries[0].Repeated)
	})

	s := &strings.Builder{}
	l.write(s)
	assert.Equal(t, "test: same detail (repeat x3)\n", s.String())

	// a different tag with the same detail is a new entry
	l.log("other", "same detail")
	l.borrow(func(entries []Entry) {
		assert.Len(t, entries, 2)
	})
}

func TestNewlinesStripped(t *testing.T) {
	l := newLogger(maxCentral)
	l.log("test", "detail\nwith\nnewlines")

	s := &strings.Builder{}
	l.write(s)
	assert.Equal(t, "test: detailwithnewlines\n", s.String())
}

func TestTail(t *testing.T) {
	l := newLogger(maxCentral)
	l.log("test", "one")
	l.log("test", "two")
	l.log("test", "three")

	s := &strings.Builder{}
	l.tail(s, 2)
	assert.Equal(t, "test: two\ntest: three\n", s.String())

	// a tail longer than the log is capped
	s.Reset()
	l.tail(s, 100)
	assert.Equal(t, "test: one\ntest: two\ntest: three\n", s.String())
}

func TestMaxEntries(t *testing.T) {
	l := newLogger(4)
	l.log("test", "one")
	l.log("test", "two")
	l.log("test", "three")
	l.log("test", "four")
	l.log("test", "five")

	l.borrow(func(entries []Entry) {
		require.Len(t, entries, 4)
		assert.Equal(t, "two", entries[0].Detail)
		assert.Equal(t, "five", entries[3].Detail)
	})
}

func TestEcho(t *testing.T) {
	l := newLogger(maxCentral)

	s := &strings.Builder{}
	l.setEcho(s)
	l.log("test", "echoed")
	assert.Equal(t, "test: echoed\n", s.String())

	l.setEcho(nil)
	l.log("test", "not echoed")
	assert.Equal(t, "test: echoed\n", s.String())
}
