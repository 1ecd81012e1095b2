// Copyright (C) 2026  Nexedi SA and Contributors.
//                     Kirill Smelkov <kirr@nexedi.com>
//
// This program is free software: you can Use, Study, Modify and Redistribute
// it under the terms of the GNU General Public License version 3, or (at your
// option) any later version, as published by the Free Software Foundation.
//
// You can also Link and Combine this program with other software covered by
// the terms of any of the Free Software licenses or any of the Open Source
// Initiative approved licenses and Convey the resulting work. Corresponding
// source of such a combination shall include the source code for all other
// software used.
//
// This program is distributed WITHOUT ANY WARRANTY; without even the implied
// warranty of MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.
//
// See COPYING file for full licensing terms.
// See https://www.nexedi.com/licensing for rationale and options.

package cstr

import (
	"github.com/pkg/errors"

	"lab.nexedi.com/kirr/go123/mem"
)

// ErrNulChar is the reason returned by strict constructors when a NUL
// character is found inside the content of the source.
var ErrNulChar = errors.New("NUL character inside content")

// FromSeqStrict is like FromSeq but rejects sequences with a NUL character
// anywhere but in the final position.
//
// A C consumer of the resulting pointer stops at the first NUL; whenever
// silent truncation of the content is not acceptable, use this constructor.
// (Compare syscall.ByteSliceFromString, which rejects for the same reason.)
func FromSeqStrict[C Char](s []C, ifnull IfNull) (Builder[C], error) {
	for i, c := range s {
		if c == 0 && i != len(s)-1 {
			return Builder[C]{}, errors.Wrapf(ErrNulChar, "cstr: strict: index %d", i)
		}
	}
	return FromSeq(s, ifnull), nil
}

// FromStringStrict is like FromString but rejects strings with a NUL byte
// anywhere but in the final position.
func FromStringStrict(s string, ifnull IfNull) (Builder[byte], error) {
	return FromSeqStrict(mem.Bytes(s), ifnull)
}
