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
	"path/filepath"

	"lab.nexedi.com/kirr/go123/mem"
)

// Buf is a growable string buffer whose storage is always NUL-terminated.
//
// It plays the role std strings play in other languages: an owned buffer
// that guarantees internal NUL termination, so that a Builder constructed
// from it never has to copy. The zero value is an empty buffer ready to
// use; its CStr is the shared zero-length terminator.
//
// Content may include embedded NULs; the terminator is maintained past the
// full content.
type Buf[C Char] struct {
	v []C // content + terminating NUL; nil when empty
}

// MakeBuf creates a Buf with a copy of seq as content.
func MakeBuf[C Char](seq []C) Buf[C] {
	var b Buf[C]
	b.Append(seq...)
	return b
}

// BufString creates a byte Buf with a copy of the bytes of s as content.
func BufString(s string) Buf[byte] {
	return MakeBuf(mem.Bytes(s))
}

// Append adds elems to the content, keeping the buffer NUL-terminated.
//
// Appending may reallocate the storage: pointers previously obtained via
// CStr, or borrowed by a Builder, are invalidated.
func (b *Buf[C]) Append(elems ...C) {
	if len(elems) == 0 {
		return
	}
	if b.v == nil {
		b.v = make([]C, 0, len(elems)+1)
	} else {
		b.v = b.v[:len(b.v)-1] // drop terminator, re-added below
	}
	b.v = append(b.v, elems...)
	b.v = append(b.v, 0)
}

// Reset empties the buffer.
func (b *Buf[C]) Reset() {
	b.v = nil
}

// CStr returns a pointer to the NUL-terminated buffer.
//
// The pointer stays valid until the next Append or Reset.
func (b *Buf[C]) CStr() *C {
	if b.v == nil {
		return zero[C]()
	}
	return &b.v[0]
}

// Size returns the content length, embedded NULs included.
func (b *Buf[C]) Size() int {
	if b.v == nil {
		return 0
	}
	return len(b.v) - 1
}

// Seq returns the content as a slice aliasing the buffer, without the
// terminator.
func (b *Buf[C]) Seq() []C {
	if b.v == nil {
		return nil
	}
	return b.v[:len(b.v)-1]
}

// Path is a filesystem path kept as a NUL-terminated byte buffer.
//
// It is built once from a Go path string with separators normalized for the
// host OS; no other interpretation of the path is performed. A Builder
// constructed from a Path always borrows.
type Path struct {
	buf Buf[byte]
}

// MakePath creates a Path from a slash-separated path string.
func MakePath(name string) Path {
	return Path{buf: BufString(filepath.FromSlash(name))}
}

// Name returns the path as a Go string.
func (p *Path) Name() string {
	return string(p.buf.Seq())
}

// CStr returns a pointer to the NUL-terminated path.
func (p *Path) CStr() *byte {
	return p.buf.CStr()
}

// Size returns the path length in bytes.
func (p *Path) Size() int {
	return p.buf.Size()
}
