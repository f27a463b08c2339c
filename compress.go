/*
 * compress.go, part of gofred.
 *
 *
 * Copyright 2024 Raul Mera <rmera{at}chemDOThelsinkiDOTfi>
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 *
 */

package fred

import (
	"compress/gzip"
	"io"
	"os"
	"strings"

	"github.com/klauspost/compress/zstd"
)

//multiCloser closes a decompressor or compressor and then the file under it.
type multiCloser struct {
	io.Reader
	io.Writer
	closers []io.Closer
}

func (M *multiCloser) Close() error {
	var first error
	for _, c := range M.closers {
		if err := c.Close(); err != nil && first == nil {
			first = err
		}
	}
	return first
}

type zstdReadCloser struct {
	*zstd.Decoder
}

func (Z zstdReadCloser) Close() error {
	Z.Decoder.Close()
	return nil
}

//openRead opens name for reading, decompressing it if the name ends
//in ".gz" or ".zst".
func openRead(name string) (io.ReadCloser, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, newError(UnableToOpen+": "+err.Error(), name, "openRead", true)
	}
	lname := strings.ToLower(name)
	switch {
	case strings.HasSuffix(lname, ".gz"):
		gz, err := gzip.NewReader(f)
		if err != nil {
			f.Close()
			return nil, newError(UnableToOpen+": "+err.Error(), name, "openRead", true)
		}
		return &multiCloser{Reader: gz, closers: []io.Closer{gz, f}}, nil
	case strings.HasSuffix(lname, ".zst"):
		z, err := zstd.NewReader(f)
		if err != nil {
			f.Close()
			return nil, newError(UnableToOpen+": "+err.Error(), name, "openRead", true)
		}
		return &multiCloser{Reader: z, closers: []io.Closer{zstdReadCloser{z}, f}}, nil
	default:
		return f, nil
	}
}

//createWrite creates name for writing, compressing the output if the name ends
//in ".gz" or ".zst". The compressor is flushed and the file closed by Close.
func createWrite(name string) (io.WriteCloser, error) {
	f, err := os.Create(name)
	if err != nil {
		return nil, newError(UnableToCreate+": "+err.Error(), name, "createWrite", true)
	}
	lname := strings.ToLower(name)
	switch {
	case strings.HasSuffix(lname, ".gz"):
		gz := gzip.NewWriter(f)
		return &multiCloser{Writer: gz, closers: []io.Closer{gz, f}}, nil
	case strings.HasSuffix(lname, ".zst"):
		z, err := zstd.NewWriter(f)
		if err != nil {
			f.Close()
			return nil, newError(UnableToCreate+": "+err.Error(), name, "createWrite", true)
		}
		return &multiCloser{Writer: z, closers: []io.Closer{z, f}}, nil
	default:
		return f, nil
	}
}
