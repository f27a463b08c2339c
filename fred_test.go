/*
 * fred_test.go, part of gofred.
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

func threeFragments() *Fred {
	F := New()
	F.AddFragment(NewFragment([]int{1, 2, 3}, IntValue(-1), IntValue(0)))
	F.AddFragment(NewFragment([]int{4, 5}, IntValue(1), IntValue(0)))
	F.AddFragment(NewFragment([]int{6}, IntValue(0), IntValue(0)))
	return F
}

func TestAddFragment(Te *testing.T) {
	F := threeFragments()
	if F.NAtoms() != 6 || F.NFragments() != 3 {
		Te.Fatalf("expected 6 atoms in 3 fragments, got %d %d", F.NAtoms(), F.NFragments())
	}
	//takes 3 from the first fragment, 4 from the second and all of the third.
	F.AddFragment(NewFragment([]int{6, 4, 3, 7}, IntValue(0), IntValue(1)))
	if F.NFragments() != 3 {
		Te.Fatalf("the emptied fragment should be dropped, got %d fragments", F.NFragments())
	}
	expected := [][]int{{1, 2}, {5}, {6, 4, 3, 7}}
	for i, v := range F.Fragments() {
		if !reflect.DeepEqual(v.Atoms(), expected[i]) {
			Te.Errorf("fragment %d: got %v, expected %v", i, v.Atoms(), expected[i])
		}
	}
	//The atom count only grows.
	if F.NAtoms() != 10 {
		Te.Errorf("expected an incremental atom count of 10, got %d", F.NAtoms())
	}
	assertDisjoint(Te, F)
}

//Consecutive fragments emptied by the same addition are all dropped.
func TestAddFragmentDropsAll(Te *testing.T) {
	F := threeFragments()
	F.AddFragment(NewFragment([]int{4, 5, 6}, IntValue(1), IntValue(0)))
	if F.NFragments() != 2 {
		Te.Fatalf("expected 2 fragments, got %v", F.Fragments())
	}
	if !reflect.DeepEqual(F.Fragment(1).Atoms(), []int{4, 5, 6}) {
		Te.Errorf("unexpected last fragment %v", F.Fragment(1))
	}
	assertDisjoint(Te, F)
}

func assertDisjoint(Te *testing.T, F *Fred) {
	Te.Helper()
	seen := make(map[int]int)
	for i, v := range F.Fragments() {
		if v.Len() == 0 {
			Te.Errorf("fragment %d is empty", i)
		}
		for _, a := range v.Atoms() {
			if j, ok := seen[a]; ok {
				Te.Errorf("atom %d in fragments %d and %d", a, j, i)
			}
			seen[a] = i
		}
	}
}

func TestAddConnection(Te *testing.T) {
	F := New()
	F.AddPlaceholders(3)
	conns := F.Connections()
	if len(conns) != 3 {
		Te.Fatalf("expected 3 connections, got %d", len(conns))
	}
	for _, c := range conns {
		if c[0].String() != "*" || c[1].String() != "*" {
			Te.Errorf("expected a [* *] placeholder, got %v", c)
		}
	}
	F.AddConnection(NewConnection(2, 9))
	if F.Connections()[3] != NewConnection(2, 9) {
		Te.Errorf("connection not appended")
	}
}

func TestSettersCopy(Te *testing.T) {
	frags := []*Fragment{NewFragment([]int{1}, IntValue(0), IntValue(0))}
	conns := []Connection{NewConnection(1, 2)}
	N := NewNamelist()
	N.Open("&CNTRL").Set("Natom", "1")
	F := New().SetNAtoms(1).SetCharge(-2).SetFragments(frags).SetConnections(conns).SetParameters(N)
	frags[0] = nil
	conns[0] = PlaceholderConnection()
	N.Group("&CNTRL").Set("Natom", "99")
	if F.Fragment(0) == nil || F.Connections()[0] != NewConnection(1, 2) {
		Te.Errorf("setters should copy their slices")
	}
	if v, _ := F.Parameters().Group("&CNTRL").Get("Natom"); v != "1" {
		Te.Errorf("SetParameters should copy the namelist, got Natom=%s", v)
	}
	if F.NAtoms() != 1 || F.Charge() != -2 {
		Te.Errorf("wrong atoms or charge %d %d", F.NAtoms(), F.Charge())
	}
	F.Connections()[0] = PlaceholderConnection()
	if F.Connections()[0].IsPlaceholder() {
		Te.Errorf("Connections should return a copy")
	}
}
