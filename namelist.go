/*
 * namelist.go, part of gofred.
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

import "strings"

//Names of the groups and fields that depend on the fragment table.
const (
	CntrlGroup    = "&CNTRL"
	FMOCntrlGroup = "&FMOCNTRL"
	FragmentGroup = "&FRAGMENT"
	XYZGroup      = "&XYZ"
	FragPairGroup = "&FRAGPAIR"

	NatomKey    = "Natom"
	NFKey       = "NF"
	ChargeKey   = "Charge"
	AutoFragKey = "AutoFrag"

	AutoFragOff = "'OFF'"
)

//GroupKind tells whether a namelist group is a list of raw lines or a set of
//name=value parameters.
type GroupKind int

const (
	KeyValueGroup GroupKind = iota
	ListGroup
)

func (K GroupKind) String() string {
	if K == ListGroup {
		return "list"
	}
	return "key-value"
}

//KindOf returns the kind of group that name denotes. Only &XYZ, &FRAGMENT and
//&FRAGPAIR are list groups, as the fred format expects.
func KindOf(name string) GroupKind {
	switch name {
	case XYZGroup, FragmentGroup, FragPairGroup:
		return ListGroup
	default:
		return KeyValueGroup
	}
}

//Group is a namelist group. A list group keeps its lines in order. A key-value group
//keeps each parameter name once, in the order it first appeared, with the last value set.
type Group struct {
	name   string
	kind   GroupKind
	lines  []string
	keys   []string
	values map[string]string
}

//NewGroup returns an empty group named name, with the kind given by KindOf.
func NewGroup(name string) *Group {
	return newGroupKind(name, KindOf(name))
}

func newGroupKind(name string, kind GroupKind) *Group {
	G := &Group{name: name, kind: kind}
	if kind == KeyValueGroup {
		G.values = make(map[string]string)
	}
	return G
}

func (G *Group) Name() string {
	return G.name
}

func (G *Group) Kind() GroupKind {
	return G.kind
}

//Len returns the number of lines in a list group, or of parameters in a key-value group.
func (G *Group) Len() int {
	if G.kind == ListGroup {
		return len(G.lines)
	}
	return len(G.keys)
}

//Lines returns a copy of the lines of a list group. It returns nil for key-value groups.
func (G *Group) Lines() []string {
	if G.kind != ListGroup {
		return nil
	}
	ret := make([]string, len(G.lines))
	copy(ret, G.lines)
	return ret
}

//AppendLine adds a raw line to a list group. It panics for key-value groups.
func (G *Group) AppendLine(line string) *Group {
	if G.kind != ListGroup {
		panic("AppendLine: " + G.name + " is not a list group")
	}
	G.lines = append(G.lines, line)
	return G
}

//Text returns the lines of a list group, each one terminated by a newline.
func (G *Group) Text() string {
	var b strings.Builder
	for _, l := range G.lines {
		b.WriteString(l)
		b.WriteByte('\n')
	}
	return b.String()
}

//Set sets the parameter key of a key-value group to value. It panics for list groups.
func (G *Group) Set(key, value string) *Group {
	if G.kind != KeyValueGroup {
		panic("Set: " + G.name + " is not a key-value group")
	}
	if _, ok := G.values[key]; !ok {
		G.keys = append(G.keys, key)
	}
	G.values[key] = value
	return G
}

//Get returns the value of the parameter key, and whether it is present.
func (G *Group) Get(key string) (string, bool) {
	if G.kind != KeyValueGroup {
		return "", false
	}
	v, ok := G.values[key]
	return v, ok
}

//Has returns true if the key-value group contains the parameter key.
func (G *Group) Has(key string) bool {
	_, ok := G.Get(key)
	return ok
}

//Keys returns the parameter names of a key-value group, in insertion order.
func (G *Group) Keys() []string {
	ret := make([]string, len(G.keys))
	copy(ret, G.keys)
	return ret
}

func (G *Group) Copy() *Group {
	ret := newGroupKind(G.name, G.kind)
	ret.lines = G.Lines()
	for _, k := range G.keys {
		ret.Set(k, G.values[k])
	}
	return ret
}

//Namelist is the ordered collection of namelist groups of a fred file.
//The order in which groups were opened is the order in which they are written.
type Namelist struct {
	order  []string
	groups map[string]*Group
}

func NewNamelist() *Namelist {
	return &Namelist{order: make([]string, 0), groups: make(map[string]*Group)}
}

//Open appends name to the group order and sets a new, empty, group for it,
//replacing any previous group with the same name.
func (N *Namelist) Open(name string) *Group {
	N.order = append(N.order, name)
	G := NewGroup(name)
	N.groups[name] = G
	return G
}

//Group returns the group named name, or nil if there is none.
func (N *Namelist) Group(name string) *Group {
	return N.groups[name]
}

//SetGroup stores G under its name. The group order is not changed.
func (N *Namelist) SetGroup(G *Group) *Namelist {
	N.groups[G.name] = G
	return N
}

//Order returns a copy of the group order.
func (N *Namelist) Order() []string {
	ret := make([]string, len(N.order))
	copy(ret, N.order)
	return ret
}

//Has returns true if name is in the group order.
func (N *Namelist) Has(name string) bool {
	for _, v := range N.order {
		if v == name {
			return true
		}
	}
	return false
}

//hasKey returns true if group is in the order and contains the parameter key.
func (N *Namelist) hasKey(group, key string) bool {
	if !N.Has(group) {
		return false
	}
	G := N.groups[group]
	return G != nil && G.Has(key)
}

//Copy returns a deep copy of the namelist.
func (N *Namelist) Copy() *Namelist {
	ret := NewNamelist()
	ret.order = N.Order()
	for k, v := range N.groups {
		ret.groups[k] = v.Copy()
	}
	return ret
}
