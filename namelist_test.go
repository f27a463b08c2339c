/*
 * namelist_test.go, part of gofred.
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

func TestGroupKinds(Te *testing.T) {
	for _, name := range []string{"&XYZ", "&FRAGMENT", "&FRAGPAIR"} {
		if KindOf(name) != ListGroup {
			Te.Errorf("%s should be a list group", name)
		}
	}
	for _, name := range []string{"&CNTRL", "&FMOCNTRL", "&SCF", "&xyz"} {
		if KindOf(name) != KeyValueGroup {
			Te.Errorf("%s should be a key-value group", name)
		}
	}
}

func TestKeyValueGroup(Te *testing.T) {
	G := NewGroup("&SCF")
	G.Set("MaxIt", "30").Set("Conv", "1e-6").Set("MaxIt", "50")
	if v, ok := G.Get("MaxIt"); !ok || v != "50" {
		Te.Errorf("last write should win, got %q", v)
	}
	if !reflect.DeepEqual(G.Keys(), []string{"MaxIt", "Conv"}) {
		Te.Errorf("keys should keep their first position, got %v", G.Keys())
	}
	if G.Len() != 2 || G.Lines() != nil || G.Has("Nope") {
		Te.Errorf("wrong Len, Lines or Has")
	}
	defer func() {
		if recover() == nil {
			Te.Errorf("AppendLine on a key-value group should panic")
		}
	}()
	G.AppendLine("x")
}

func TestListGroup(Te *testing.T) {
	G := NewGroup("&XYZ")
	G.AppendLine("C 0 0 0").AppendLine("H 1 0 0")
	if G.Text() != "C 0 0 0\nH 1 0 0\n" {
		Te.Errorf("unexpected text %q", G.Text())
	}
	if G.Has("C") || G.Len() != 2 {
		Te.Errorf("wrong Has or Len")
	}
}

func TestNamelistCopy(Te *testing.T) {
	N := NewNamelist()
	N.Open("&CNTRL").Set("Natom", "5")
	N.Open("&XYZ").AppendLine("C 0 0 0")
	C := N.Copy()
	C.Group("&CNTRL").Set("Natom", "6")
	C.Group("&XYZ").AppendLine("H 1 0 0")
	C.Open("&SCF")
	if v, _ := N.Group("&CNTRL").Get("Natom"); v != "5" {
		Te.Errorf("Copy is not deep, Natom=%s", v)
	}
	if N.Group("&XYZ").Len() != 1 || N.Has("&SCF") {
		Te.Errorf("Copy is not deep")
	}
	if !reflect.DeepEqual(C.Order(), []string{"&CNTRL", "&XYZ", "&SCF"}) {
		Te.Errorf("unexpected order %v", C.Order())
	}
}

func TestNamelistReopen(Te *testing.T) {
	N := NewNamelist()
	N.Open("&CNTRL").Set("Natom", "5")
	N.Open("&CNTRL").Set("Charge", "1")
	if !reflect.DeepEqual(N.Order(), []string{"&CNTRL", "&CNTRL"}) {
		Te.Errorf("a reopened group should be recorded again in the order, got %v", N.Order())
	}
	if N.Group("&CNTRL").Has("Natom") {
		Te.Errorf("a reopened group should start empty")
	}
	N.SetGroup(NewGroup("&FRAGMENT"))
	if N.Has("&FRAGMENT") || N.Group("&FRAGMENT") == nil {
		Te.Errorf("SetGroup should store the group without touching the order")
	}
}
