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

// Package test contains helper functions to remove common boilerplate from
// package tests.
//
// The Equate() function compares like-typed variables for equality. Some
// types (eg. uint8, uint16) can be compared against int for convenience. See
// the Equate() documentation for discussion of why.
//
// The ExpectedFailure and ExpectedSuccess functions test for failure and
// success under generic conditions. A nil value is considered a success,
// which is how errors are usually interpreted (nil meaning no error).
package test
