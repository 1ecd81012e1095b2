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

// Package cstr provides C strings - pointers to NUL-terminated character
// buffers - built from string-like Go values without copying whenever the
// original buffer is already NUL-terminated.
//
// The entry point is Builder: it is constructed from a source value via one
// of the From* constructors, classifies the source once at construction, and
// from there on provides the resulting pointer via Get and the C length via
// Len. The source buffer is reused as-is (borrowed) whenever its termination
// can be established with an O(1) check; otherwise the content is copied
// into a buffer owned by the Builder and NUL-suffixed there.
//
// Since the provided pointer may refer into either the original object or
// the Builder, neither must expire or be modified while the pointer is used.
//
// Buf is a growable, always NUL-terminated string buffer. Path wraps a
// filesystem path into a pre-terminated byte buffer. Builders constructed
// from either always borrow, for any content including embedded NULs.
//
// How a nil source pointer translates is controlled per Builder by IfNull:
// MakeZeroLength substitutes a shared pointer to an empty NUL-terminated
// sequence, KeepNullPointer passes the nil through. Under KeepNullPointer
// Get can return nil while Len still returns 0 - callers must check Get for
// nil before dereferencing.
package cstr

import (
	"unsafe"

	"lab.nexedi.com/kirr/go123/mem"
)

// Char is the constraint for accepted character widths.
//
// It covers the usual C element types for narrow, wide and unicode strings
// (char, wchar_t, char8_t, char16_t, char32_t).
type Char interface {
	~int8 | ~uint8 | ~uint16 | ~int32 | ~uint32
}

// IfNull specifies what pointer a Builder provides if it is constructed
// from a nil source pointer.
type IfNull int

const (
	// MakeZeroLength: provide a valid pointer to a zero-length
	// NUL-terminated sequence.
	MakeZeroLength IfNull = iota

	// KeepNullPointer: provide nil.
	KeepNullPointer
)

// zeroTerm is the shared zero-length terminator.
//
// It is wide enough and sufficiently aligned to be read as one zero
// character of every Char width. It is immutable and so safe to share
// between all Builders and goroutines.
var zeroTerm uint32

func zero[C Char]() *C {
	return (*C)(unsafe.Pointer(&zeroTerm))
}

// nilResult returns the pointer a Builder provides for a nil source under
// policy ifnull.
func nilResult[C Char](ifnull IfNull) *C {
	if ifnull == MakeZeroLength {
		return zero[C]()
	}
	return nil
}

// Builder provides a C string as a pointer to NUL-terminated characters.
//
// A Builder is created by one of New, FromPtr, FromSeq, FromString, FromBuf
// or FromPath, which decide once whether the source buffer can be borrowed
// or must be copied. At any time the Builder either owns one NUL-suffixed
// copy of the source content, or borrows a pointer whose referent is owned
// elsewhere; destruction of a Go value is implicit, and borrowed referents
// are never touched.
//
// The zero value of Builder is ready to use and behaves like
// New[C](MakeZeroLength).
//
// A Builder must not be mutated (Swap, Move) concurrently with other
// accesses to the same instance.
type Builder[C Char] struct {
	owned  []C // NUL-suffixed copy of the source; nil unless the copy strategy was chosen
	ptr    *C  // the resulting C string
	ifnull IfNull
}

// New creates a Builder like it was constructed from a nil source pointer.
//
// See IfNull for what pointer it provides in this case.
func New[C Char](ifnull IfNull) Builder[C] {
	return Builder[C]{ptr: nilResult[C](ifnull), ifnull: ifnull}
}

// FromPtr creates a Builder from a raw character pointer.
//
// A nil p is handled according to ifnull. A non-nil p is borrowed as-is: the
// caller must make sure it references a NUL-terminated buffer - this cannot
// be verified, and a violation makes Len and any C consumer read past the
// intended region.
func FromPtr[C Char](p *C, ifnull IfNull) Builder[C] {
	if p == nil {
		return New[C](ifnull)
	}
	return Builder[C]{ptr: p, ifnull: ifnull}
}

// FromSeq creates a Builder from a contiguous sequence of characters.
//
// Only the last element is inspected: if it is the NUL character the
// sequence is borrowed as-is, else the content is copied into the Builder
// and NUL-suffixed there. An empty sequence yields the shared zero-length
// terminator.
func FromSeq[C Char](s []C, ifnull IfNull) Builder[C] {
	b := Builder[C]{ifnull: ifnull}
	switch {
	case len(s) == 0:
		b.ptr = zero[C]()
	case s[len(s)-1] == 0:
		b.ptr = &s[0]
	default:
		b.owned = make([]C, len(s)+1)
		copy(b.owned, s)
		b.ptr = &b.owned[0]
	}
	return b
}

// FromString creates a Builder from the bytes of a Go string.
//
// The string memory is reinterpreted without copying and then treated like
// a sequence: since Go strings carry no terminator, this borrows only when
// the last byte happens to be NUL, and copies otherwise. The string
// encoding is taken as-is.
func FromString(s string, ifnull IfNull) Builder[byte] {
	return FromSeq(mem.Bytes(s), ifnull)
}

// FromBuf creates a Builder borrowing the buffer of buf.
//
// Buf keeps its buffer NUL-terminated, so no copy is ever made, for any
// content including embedded NULs. The provided pointer stays valid only as
// long as buf is neither mutated nor discarded.
func FromBuf[C Char](buf *Buf[C], ifnull IfNull) Builder[C] {
	return Builder[C]{ptr: buf.CStr(), ifnull: ifnull}
}

// FromPath creates a Builder borrowing the buffer of p.
//
// Path buffers are NUL-terminated on construction, so no copy is ever made.
func FromPath(p *Path, ifnull IfNull) Builder[byte] {
	return Builder[byte]{ptr: p.CStr(), ifnull: ifnull}
}

// Get returns the pointer to the C string.
//
// The result is nil only if the Builder was created from a nil source
// pointer under KeepNullPointer.
func (b *Builder[C]) Get() *C {
	if b.ptr == nil && b.ifnull == MakeZeroLength {
		// zero-value Builder
		return zero[C]()
	}
	return b.ptr
}

// Len returns the number of characters before the first NUL.
//
// The NUL character is the sentinel where C consumers stop - it is not
// necessarily the last character in the underlying buffer. The length is
// determined anew on every call because an external holder of a borrowed
// buffer could have changed the content since construction.
//
// For nil Get the length is 0.
func (b *Builder[C]) Len() int {
	p := b.Get()
	if p == nil {
		return 0
	}
	n := 0
	for *p != 0 {
		n++
		p = (*C)(unsafe.Add(unsafe.Pointer(p), unsafe.Sizeof(*p)))
	}
	return n
}

// Seq returns the characters before the first NUL as a slice aliasing the
// underlying buffer, without the terminator.
//
// For nil Get the result is nil.
func (b *Builder[C]) Seq() []C {
	p := b.Get()
	if p == nil {
		return nil
	}
	return unsafe.Slice(p, b.Len())
}

// Clone returns a copy of the Builder.
//
// If b owns a buffer the buffer is duplicated and the clone points into its
// own copy; a borrowed pointer is duplicated as a plain value since no
// ownership is implied.
func (b *Builder[C]) Clone() Builder[C] {
	c := Builder[C]{ptr: b.ptr, ifnull: b.ifnull}
	if b.owned != nil {
		c.owned = make([]C, len(b.owned))
		copy(c.owned, b.owned)
		c.ptr = &c.owned[0]
	}
	return c
}

// Move transfers the content of b into the returned Builder.
//
// An owned buffer changes owner; a borrowed pointer is transferred as a
// plain value. b itself is reset to the state of New[C](ifnull) - it stays
// a valid, inspectable, ownerless Builder.
func (b *Builder[C]) Move() Builder[C] {
	m := Builder[C]{ptr: b.ptr, ifnull: b.ifnull}
	if b.owned != nil {
		m.owned = b.owned
		b.owned = nil
		m.ptr = &m.owned[0]
	}
	b.ptr = nilResult[C](b.ifnull)
	return m
}

// Swap exchanges the contents of b and other.
//
// Whole values swap, including the IfNull policy. After the exchange each
// pointer is re-derived from the buffer its side now owns, so that no side
// ever pairs a pointer with a buffer it does not hold.
func (b *Builder[C]) Swap(other *Builder[C]) {
	if b == other {
		return
	}
	*b, *other = *other, *b
	if b.owned != nil {
		b.ptr = &b.owned[0]
	}
	if other.owned != nil {
		other.ptr = &other.owned[0]
	}
}
