/*
 * connection.go, part of gofred.
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
	"strconv"
	"strings"
)

//Wildcard stands for a connection endpoint that the FMO program will fill.
const Wildcard = "*"

//Endpoint is one end of a connection: an atom index, or the wildcard.
type Endpoint struct {
	atom int
	wild bool
}

//AtomEndpoint returns an endpoint for the atom with index i.
func AtomEndpoint(i int) Endpoint {
	return Endpoint{atom: i}
}

//WildEndpoint returns a wildcard endpoint.
func WildEndpoint() Endpoint {
	return Endpoint{wild: true}
}

//Atom returns the atom index and true, or 0 and false for a wildcard.
func (E Endpoint) Atom() (int, bool) {
	return E.atom, !E.wild
}

func (E Endpoint) IsWild() bool {
	return E.wild
}

func (E Endpoint) String() string {
	if E.wild {
		return Wildcard
	}
	return strconv.Itoa(E.atom)
}

//Connection is a pair of atoms bonded across a fragment boundary, or a placeholder
//with two wildcard endpoints. The constructors never mix both kinds.
type Connection [2]Endpoint

//NewConnection returns the connection between atoms a and b.
func NewConnection(a, b int) Connection {
	return Connection{AtomEndpoint(a), AtomEndpoint(b)}
}

//PlaceholderConnection returns a connection with both endpoints set to the wildcard.
func PlaceholderConnection() Connection {
	return Connection{WildEndpoint(), WildEndpoint()}
}

//IsPlaceholder returns true if the connection's first endpoint is the wildcard.
func (C Connection) IsPlaceholder() bool {
	return C[0].wild
}

func (C Connection) String() string {
	return fmt.Sprintf("[%s %s]", C[0], C[1])
}

//ParseConnectionLine parses a line with exactly two non-negative integers.
func ParseConnectionLine(line string) (Connection, error) {
	fields := strings.Fields(line)
	if len(fields) != 2 {
		return Connection{}, fmt.Errorf("ParseConnectionLine: expected 2 fields, got %d", len(fields))
	}
	var ats [2]int
	for i, f := range fields {
		if strings.HasPrefix(f, "-") || strings.HasPrefix(f, "+") {
			return Connection{}, fmt.Errorf("ParseConnectionLine: bad atom index %q", f)
		}
		v, err := strconv.Atoi(f)
		if err != nil {
			return Connection{}, fmt.Errorf("ParseConnectionLine: bad atom index %q", f)
		}
		ats[i] = v
	}
	return NewConnection(ats[0], ats[1]), nil
}
