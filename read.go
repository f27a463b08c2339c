/*
 * read.go, part of gofred.
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
	"bufio"
	"fmt"
	"io"
	"strings"
)

//readState is the section of the file the reader is in.
type readState int

const (
	stateStart readState = iota
	stateFragments
	stateConnections
	stateNamelist
)

func (S readState) String() string {
	return [...]string{"start", "fragments", "connections", "namelist"}[S]
}

//transition returns the state after reading line number lineno (1-based), and whether
//the line only caused a change of section (and carries no data). The checks are done
//in a fixed order, and the first one that matches wins:
//the first line, a line containing "connections", a line containing "< namelist >".
//Note that the "connections" check is done in any section, so a fragment or
//namelist line containing that word changes the section.
func transition(lineno int, line string, current readState) (readState, bool) {
	lower := strings.ToLower(line)
	switch {
	case lineno == 1:
		return stateFragments, true
	case strings.Contains(lower, "connections"):
		return stateConnections, true
	case strings.Contains(lower, "< namelist >"):
		return stateNamelist, true
	}
	return current, false
}

//Diagnostic describes a line that the reader skipped.
type Diagnostic struct {
	Line   int
	Text   string
	Reason string
}

func (D Diagnostic) String() string {
	return fmt.Sprintf("line %d: %s: %q", D.Line, D.Reason, D.Text)
}

//fredReader keeps the state of a read in progress.
type fredReader struct {
	F     *Fred
	state readState
	group *Group //the namelist group open, nil if none.
}

func (R *fredReader) skip(lineno int, line, reason string) {
	R.F.diagnostics = append(R.F.diagnostics, Diagnostic{Line: lineno, Text: line, Reason: reason})
}

//line processes one line, already trimmed.
func (R *fredReader) line(lineno int, line string) {
	var trigger bool
	R.state, trigger = transition(lineno, line, R.state)
	if trigger {
		return
	}
	switch R.state {
	case stateFragments:
		R.fragmentLine(lineno, line)
	case stateConnections:
		R.connectionLine(lineno, line)
	case stateNamelist:
		R.namelistLine(lineno, line)
	}
}

func (R *fredReader) fragmentLine(lineno int, line string) {
	if line == "" {
		return
	}
	if !MatchFragmentRow(line) {
		R.skip(lineno, line, "not a fragment row")
		return
	}
	frag, err := ParseFragmentLine(line)
	if err != nil {
		R.skip(lineno, line, err.Error())
		return
	}
	if q, ok := frag.Charge().Int(); ok {
		R.F.charge += q
	}
	R.F.fragments = append(R.F.fragments, frag)
	R.F.natoms += frag.Len()
}

func (R *fredReader) connectionLine(lineno int, line string) {
	if line == "" {
		return
	}
	conn, err := ParseConnectionLine(line)
	if err != nil {
		R.skip(lineno, line, "not a connection row")
		return
	}
	R.F.connections = append(R.F.connections, conn)
}

func (R *fredReader) namelistLine(lineno int, line string) {
	switch {
	case line == "":
		return
	case strings.HasPrefix(line, "&"):
		R.group = R.F.parameters.Open(line)
	case strings.HasPrefix(line, "/"):
		R.group = nil
	case R.group == nil:
		R.skip(lineno, line, "outside of a namelist group")
	case R.group.Kind() == ListGroup:
		R.group.AppendLine(line)
	default:
		key, value, found := strings.Cut(line, "=")
		if !found {
			R.skip(lineno, line, "no '=' in parameter line")
			return
		}
		R.group.Set(strings.TrimSpace(key), strings.TrimSpace(value))
	}
}

//Read discards the data in F and reads a fred file from r.
//Lines that can't be understood are skipped, and can be retrieved afterwards with
//Diagnostics. Only an error reading from r is returned.
func (F *Fred) Read(r io.Reader) error {
	F.reset()
	R := &fredReader{F: F, state: stateStart}
	in := bufio.NewReader(r)
	lineno := 0
	for {
		line, err := in.ReadString('\n')
		if err != nil && err != io.EOF {
			return newError(fmt.Sprintf("%s at line %d: %s", ReadError, lineno+1, err.Error()), "", "Read", true)
		}
		//the last line may lack the newline.
		if line != "" {
			lineno++
			R.line(lineno, strings.TrimSpace(line))
		}
		if err == io.EOF {
			break
		}
	}
	return nil
}

//ReadFile discards the data in F and reads the fred file name, which can be
//compressed with gzip (.gz) or zstd (.zst).
func (F *Fred) ReadFile(name string) error {
	f, err := openRead(name)
	if err != nil {
		return errDecorate(err, "ReadFile")
	}
	defer f.Close()
	if err := F.Read(f); err != nil {
		e := err.(*Error)
		e.filename = name
		return errDecorate(e, "ReadFile")
	}
	return nil
}

//ReadFileStrict reads name exactly as ReadFile does, but then returns a non-critical
//error if any line was skipped. F holds the data read in either case.
func (F *Fred) ReadFileStrict(name string) error {
	if err := F.ReadFile(name); err != nil {
		return errDecorate(err, "ReadFileStrict")
	}
	if len(F.diagnostics) > 0 {
		d := F.diagnostics[0]
		msg := fmt.Sprintf("%s (%d skipped): %s", StrictFailure, len(F.diagnostics), d)
		return newError(msg, name, "ReadFileStrict", false)
	}
	return nil
}

//Diagnostics returns the lines skipped by the last read.
func (F *Fred) Diagnostics() []Diagnostic {
	ret := make([]Diagnostic, len(F.diagnostics))
	copy(ret, F.diagnostics)
	return ret
}
