/*
 * errors.go, part of gofred.
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
	"fmt"
	"strings"
)

//Messages for the errors returned by this package.
const (
	UnableToOpen   = "Unable to open file"
	UnableToCreate = "Unable to create file"
	ReadError      = "Error reading file"
	WriteError     = "Error writing file"
	StrictFailure  = "Unrecognized line"
)

//Error is the error type returned by this package. I/O failures are critical,
//lines rejected by a strict read are not.
type Error struct {
	message  string
	filename string //the file with problems, or empty string if none.
	deco     []string
	critical bool
}

func (err Error) Error() string {
	ret := "fred error: " + err.message
	if err.filename != "" {
		ret = fmt.Sprintf("fred file %s error: %s", err.filename, err.message)
	}
	if len(err.deco) > 0 {
		ret += " (" + strings.Join(err.deco, " <- ") + ")"
	}
	return ret
}

//Decorate adds the name of a caller, plus any extra information, to the error.
//It returns the decoration slice. An empty string adds nothing.
func (err *Error) Decorate(deco string) []string {
	if deco != "" {
		err.deco = append(err.deco, deco)
	}
	return err.deco
}

//FileName returns the file associated to the error, if any.
func (err Error) FileName() string { return err.filename }

//Critical returns true if the error is critical, false otherwise
func (err Error) Critical() bool { return err.critical }

func newError(message, filename, caller string, critical bool) *Error {
	return &Error{message: message, filename: filename, deco: []string{caller}, critical: critical}
}

//errDecorate decorates err with the caller's name if it is an *Error,
//otherwise it wraps it in a new, critical, *Error.
func errDecorate(err error, caller string) error {
	if err == nil {
		return nil
	}
	if e, ok := err.(*Error); ok {
		e.Decorate(caller)
		return e
	}
	return newError(err.Error(), "", caller, true)
}
