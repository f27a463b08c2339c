/*
 * fragment.go, part of gofred.
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
	"regexp"
	"sort"
	"strconv"
	"strings"
)

//ErrMarker is the text used in fred files for a charge or BDA flag that is not set.
const ErrMarker = "ERR"

//Value is an integer field of the fragment table that can also hold the
//error marker ("not set").
type Value struct {
	n   int
	set bool
}

//IntValue returns a Value holding n.
func IntValue(n int) Value {
	return Value{n: n, set: true}
}

//ErrValue returns a Value holding the error marker.
func ErrValue() Value {
	return Value{}
}

//ParseValue parses s, which must be either ErrMarker or a signed integer.
func ParseValue(s string) (Value, error) {
	s = strings.TrimSpace(s)
	if s == ErrMarker {
		return ErrValue(), nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return ErrValue(), fmt.Errorf("ParseValue: %q is neither an integer nor %s", s, ErrMarker)
	}
	return IntValue(n), nil
}

//Int returns the integer held and true, or 0 and false for the error marker.
func (V Value) Int() (int, bool) {
	return V.n, V.set
}

//IsErr returns true if V holds the error marker.
func (V Value) IsErr() bool {
	return !V.set
}

func (V Value) String() string {
	if !V.set {
		return ErrMarker
	}
	return strconv.Itoa(V.n)
}

//Fragment is one row of the fragment table: a set of atoms with a net charge
//and a boundary-bond-assignment flag. The atoms are kept in order, without repetitions.
type Fragment struct {
	index  int
	charge Value
	bda    Value
	atoms  []int
}

//NewFragment returns a fragment with the given atoms, charge and BDA flag.
//Repeated atoms are dropped, keeping the first occurrence. The atoms slice is copied.
func NewFragment(atoms []int, charge, bda Value) *Fragment {
	F := &Fragment{charge: charge, bda: bda}
	F.SetAtoms(atoms)
	return F
}

//Atoms returns a copy of the atom indexes in the fragment.
func (F *Fragment) Atoms() []int {
	ret := make([]int, len(F.atoms))
	copy(ret, F.atoms)
	return ret
}

//Len returns the number of atoms in the fragment.
func (F *Fragment) Len() int {
	return len(F.atoms)
}

func (F *Fragment) Charge() Value {
	return F.charge
}

func (F *Fragment) BDA() Value {
	return F.bda
}

//Index returns the display index of the fragment, which is reassigned every time
//the fragment is written.
func (F *Fragment) Index() int {
	return F.index
}

//SetIndex sets the display index of the fragment and returns the fragment.
func (F *Fragment) SetIndex(i int) *Fragment {
	F.index = i
	return F
}

//SetAtoms replaces the atoms of the fragment with a copy of atoms, without repetitions.
func (F *Fragment) SetAtoms(atoms []int) *Fragment {
	seen := make(map[int]bool, len(atoms))
	F.atoms = make([]int, 0, len(atoms))
	for _, v := range atoms {
		if seen[v] {
			continue
		}
		seen[v] = true
		F.atoms = append(F.atoms, v)
	}
	return F
}

//MinIndex returns the smallest atom index in the fragment, or 0 if the fragment is empty.
func (F *Fragment) MinIndex() int {
	if len(F.atoms) == 0 {
		return 0
	}
	min := F.atoms[0]
	for _, v := range F.atoms[1:] {
		if v < min {
			min = v
		}
	}
	return min
}

//Contains returns true if atom belongs to the fragment.
func (F *Fragment) Contains(atom int) bool {
	for _, v := range F.atoms {
		if v == atom {
			return true
		}
	}
	return false
}

//Copy returns an independent copy of the fragment.
func (F *Fragment) Copy() *Fragment {
	ret := &Fragment{index: F.index, charge: F.charge, bda: F.bda}
	ret.atoms = F.Atoms()
	return ret
}

//without removes from F every atom present in other, and leaves the rest sorted.
func (F *Fragment) without(other *Fragment) {
	remain := make([]int, 0, len(F.atoms))
	for _, v := range F.atoms {
		if !other.Contains(v) {
			remain = append(remain, v)
		}
	}
	sort.Ints(remain)
	F.atoms = remain
}

func (F *Fragment) String() string {
	return fragmentRow(F)
}

//A fragment row: index, then optionally charge, BDA and atoms.
//It is matched against the line with the column separators ("|") turned into spaces.
var fragmentRowRE = regexp.MustCompile(`^\d+(?:\s+(?:ERR|-?\d+)(?:\s+(?:ERR|-?\d+)(?:\s+\d+)*)?)?$`)

func normalizeRow(line string) string {
	return strings.TrimSpace(strings.ReplaceAll(line, "|", " "))
}

//MatchFragmentRow returns true if line has the shape of a row of the fragment table.
//Both the whitespace-separated form and the "|"-separated form written by this package
//are accepted.
func MatchFragmentRow(line string) bool {
	return fragmentRowRE.MatchString(normalizeRow(line))
}

//ParseFragmentLine builds a fragment from a row of the fragment table.
//A missing charge or BDA field is set to the error marker.
func ParseFragmentLine(line string) (*Fragment, error) {
	fields := strings.Fields(normalizeRow(line))
	if len(fields) == 0 {
		return nil, fmt.Errorf("ParseFragmentLine: empty line")
	}
	F := &Fragment{charge: ErrValue(), bda: ErrValue()}
	var err error
	F.index, err = strconv.Atoi(fields[0])
	if err != nil {
		return nil, fmt.Errorf("ParseFragmentLine: bad fragment index %q", fields[0])
	}
	if len(fields) > 1 {
		if F.charge, err = ParseValue(fields[1]); err != nil {
			return nil, err
		}
	}
	if len(fields) > 2 {
		if F.bda, err = ParseValue(fields[2]); err != nil {
			return nil, err
		}
	}
	atoms := make([]int, 0, len(fields))
	for _, v := range fields[min(3, len(fields)):] {
		at, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("ParseFragmentLine: bad atom index %q", v)
		}
		atoms = append(atoms, at)
	}
	F.SetAtoms(atoms)
	return F, nil
}
