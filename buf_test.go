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
	"testing"
	"unsafe"

	"github.com/stretchr/testify/require"
)

func TestBuf(t *testing.T) {
	var b Buf[byte]
	require.Equal(t, 0, b.Size())
	require.Nil(t, b.Seq())
	require.Same(t, zero[byte](), b.CStr())

	b.Append('h', 'i')
	require.Equal(t, 2, b.Size())
	require.Equal(t, []byte("hi"), b.Seq())
	// storage stays terminated past the content
	require.Equal(t, byte(0), unsafe.Slice(b.CStr(), b.Size()+1)[2])

	b.Append(0, 'z') // embedded NUL is content
	require.Equal(t, 4, b.Size())
	require.Equal(t, []byte("hi\x00z"), b.Seq())
	require.Equal(t, byte(0), unsafe.Slice(b.CStr(), b.Size()+1)[4])

	b.Reset()
	require.Equal(t, 0, b.Size())
	require.Same(t, zero[byte](), b.CStr())
}

func TestBufWide(t *testing.T) {
	b := MakeBuf([]rune("héllo"))
	require.Equal(t, 5, b.Size())
	require.Equal(t, []rune("héllo"), b.Seq())
	require.Equal(t, rune(0), unsafe.Slice(b.CStr(), 6)[5])

	b.Append('!')
	require.Equal(t, []rune("héllo!"), b.Seq())
}

func TestBufString(t *testing.T) {
	b := BufString("abc")
	require.Equal(t, 3, b.Size())
	require.Equal(t, []byte("abc"), b.Seq())

	e := BufString("")
	require.Equal(t, 0, e.Size())
	require.Same(t, zero[byte](), e.CStr())
}

func TestPath(t *testing.T) {
	p := MakePath("dir/file.txt")
	require.Equal(t, filepath.FromSlash("dir/file.txt"), p.Name())
	require.Equal(t, len(p.Name()), p.Size())
	require.Equal(t, byte(0), unsafe.Slice(p.CStr(), p.Size()+1)[p.Size()])

	var p0 Path
	require.Equal(t, 0, p0.Size())
	require.Equal(t, "", p0.Name())
	require.Same(t, zero[byte](), p0.CStr())
}
