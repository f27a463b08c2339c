/*
 * check.go, part of gofred.
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
	"sort"
)

//IssueKind classifies the problems found by Check.
type IssueKind int

const (
	SharedAtom IssueKind = iota
	OrphanAtom
	InnerConnection
	UnsetCharge
	AtomCountDrift
	ChargeDrift
	Disconnected
)

func (K IssueKind) String() string {
	return [...]string{"shared atom", "orphan connection atom", "connection inside fragment",
		"unset charge", "atom count drift", "charge drift", "disconnected fragments"}[K]
}

//Issue is a consistency problem in a Fred.
type Issue struct {
	Kind    IssueKind
	Message string
}

func (I Issue) String() string {
	return I.Kind.String() + ": " + I.Message
}

//Check looks for inconsistencies that Read and AddFragment don't prevent: atoms in more than
//one fragment, connections with atoms in no fragment or inside a single fragment, fragments
//with an unset charge, stored atom count or charge different from the fragments' sums,
//and fragments split in more than one group with no connections between them
//(only reported if there are connections at all).
//Fragments are named by their display index.
func (F *Fred) Check() []Issue {
	var issues []Issue
	add := func(k IssueKind, format string, a ...interface{}) {
		issues = append(issues, Issue{Kind: k, Message: fmt.Sprintf(format, a...)})
	}
	owners := F.atomOwners()
	shared := make([]int, 0)
	for at, o := range owners {
		if len(o) > 1 {
			shared = append(shared, at)
		}
	}
	sort.Ints(shared)
	for _, at := range shared {
		add(SharedAtom, "atom %d is in fragments %v", at, F.displayIndexes(owners[at]))
	}
	nconn := 0
	for _, c := range F.connections {
		if c.IsPlaceholder() {
			continue
		}
		nconn++
		o0, o1 := owners[c[0].atom], owners[c[1].atom]
		for i, o := range [][]int{o0, o1} {
			if len(o) == 0 {
				add(OrphanAtom, "atom %d of connection %v is in no fragment", c[i].atom, c)
			}
		}
		if len(o0) == 1 && len(o1) == 1 && o0[0] == o1[0] {
			add(InnerConnection, "connection %v is inside fragment %d", c, F.fragments[o0[0]].index)
		}
	}
	for _, v := range F.fragments {
		if v.charge.IsErr() {
			add(UnsetCharge, "fragment %d (first atom %d) has no charge", v.index, v.MinIndex())
		}
	}
	if live := F.liveAtoms(); live != F.natoms {
		add(AtomCountDrift, "%d atoms stored, %d in fragments", F.natoms, live)
	}
	if live := F.liveCharge(); live != F.charge {
		add(ChargeDrift, "charge %d stored, %d from fragments", F.charge, live)
	}
	if nconn > 0 {
		if cc := F.Components(); len(cc) > 1 {
			add(Disconnected, "%d groups of fragments with no connections between them", len(cc))
		}
	}
	return issues
}

func (F *Fred) displayIndexes(pos []int) []int {
	ret := make([]int, len(pos))
	for i, p := range pos {
		ret[i] = F.fragments[p].index
	}
	return ret
}
