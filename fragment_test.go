/*
 * fragment_test.go, part of gofred.
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
	"reflect"
	"testing"
)

func TestValue(Te *testing.T) {
	v, err := ParseValue(" -3 ")
	if err != nil {
		Te.Fatal(err)
	}
	if n, ok := v.Int(); !ok || n != -3 || v.String() != "-3" {
		Te.Errorf("expected -3, got %v %v %s", n, ok, v)
	}
	v, err = ParseValue("ERR")
	if err != nil {
		Te.Fatal(err)
	}
	if !v.IsErr() || v.String() != ErrMarker {
		Te.Errorf("expected the error marker, got %s", v)
	}
	if _, err = ParseValue("3.5"); err == nil {
		Te.Errorf("3.5 should not parse as a Value")
	}
	if ErrValue() != (Value{}) || IntValue(0).IsErr() {
		Te.Errorf("zero Value should be the error marker, IntValue(0) should not")
	}
}

func TestMatchFragmentRow(Te *testing.T) {
	rows := map[string]bool{
		"1 -1 0 1 2 3":      true,
		"  2\t1\t0\t4\t5 ":  true,
		"3":                 true,
		"3 ERR":             true,
		"3 ERR ERR 7 8":     true,
		"      1 |    -1  |  0  |       1        2        3": true,
		"      4 |   ERR  |ERR  |":                          true,
		"":                       false,
		"-1 0 0 1":               false,
		"1 0 0 1 -2":             false,
		"1 0 0 1 ERR":            false,
		"FNo. | Charge | BDA":    false,
		"this is not a fragment": false,
		"1 a 0 1":                false,
	}
	for row, expected := range rows {
		if got := MatchFragmentRow(row); got != expected {
			Te.Errorf("MatchFragmentRow(%q) = %v, expected %v", row, got, expected)
		}
	}
}

func TestParseFragmentLine(Te *testing.T) {
	tests := []struct {
		line   string
		index  int
		charge string
		bda    string
		atoms  []int
	}{
		{"1 -1 0 1 2 3", 1, "-1", "0", []int{1, 2, 3}},
		{"      2 |     1  |  0  |       5        4", 2, "1", "0", []int{5, 4}},
		{"3 ERR 1 9 9 8", 3, "ERR", "1", []int{9, 8}},
		{"4 2", 4, "2", "ERR", []int{}},
		{"5", 5, "ERR", "ERR", []int{}},
	}
	for _, t := range tests {
		F, err := ParseFragmentLine(t.line)
		if err != nil {
			Te.Errorf("%q: %s", t.line, err)
			continue
		}
		if F.Index() != t.index || F.Charge().String() != t.charge || F.BDA().String() != t.bda {
			Te.Errorf("%q: got index %d charge %s bda %s", t.line, F.Index(), F.Charge(), F.BDA())
		}
		if !reflect.DeepEqual(F.Atoms(), t.atoms) {
			Te.Errorf("%q: got atoms %v, expected %v", t.line, F.Atoms(), t.atoms)
		}
	}
	if _, err := ParseFragmentLine("   "); err == nil {
		Te.Errorf("an empty line should not parse")
	}
}

func TestFragmentMethods(Te *testing.T) {
	F := NewFragment([]int{7, 3, 7, 5}, IntValue(1), IntValue(0))
	if !reflect.DeepEqual(F.Atoms(), []int{7, 3, 5}) {
		Te.Errorf("repeated atoms not removed: %v", F.Atoms())
	}
	if F.MinIndex() != 3 || F.Len() != 3 || !F.Contains(5) || F.Contains(4) {
		Te.Errorf("wrong MinIndex, Len or Contains for %v", F.Atoms())
	}
	C := F.Copy()
	C.SetAtoms([]int{1})
	if F.Len() != 3 {
		Te.Errorf("Copy shares atoms with the original")
	}
	ats := F.Atoms()
	ats[0] = 100
	if F.Contains(100) {
		Te.Errorf("Atoms does not return a copy")
	}
	if NewFragment(nil, IntValue(0), IntValue(0)).MinIndex() != 0 {
		Te.Errorf("MinIndex of an empty fragment should be 0")
	}
	if F.SetIndex(4).Index() != 4 {
		Te.Errorf("SetIndex failed")
	}
	if F.String() != "      4 |     1  |  0  |       7        3        5" {
		Te.Errorf("unexpected row: %q", F.String())
	}
}

func TestParseConnectionLine(Te *testing.T) {
	C, err := ParseConnectionLine("  4\t1 ")
	if err != nil {
		Te.Fatal(err)
	}
	if C != NewConnection(4, 1) || C.IsPlaceholder() {
		Te.Errorf("got %v, expected [4 1]", C)
	}
	for _, bad := range []string{"1 2 3", "1", "* *", "-1 2", "a b", ""} {
		if _, err := ParseConnectionLine(bad); err == nil {
			Te.Errorf("%q should not parse as a connection", bad)
		}
	}
	P := PlaceholderConnection()
	if !P.IsPlaceholder() || P.String() != "[* *]" {
		Te.Errorf("wrong placeholder %v", P)
	}
	if a, ok := C[1].Atom(); !ok || a != 1 {
		Te.Errorf("wrong endpoint %v", C[1])
	}
}
