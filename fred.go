/*
 * fred.go, part of gofred.
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

//Fred contains the data of a fred file: the fragment table, the connection table
//and the namelist groups.
//
//The number of atoms and the total charge are updated incrementally by Read and
//AddFragment, and replaced by the setters. They are not recomputed from the fragments,
//so they can drift from them. CompleteParameters and Check use the live values.
//A Fred is not safe for concurrent use.
type Fred struct {
	natoms      int
	charge      int
	fragments   []*Fragment
	connections []Connection
	parameters  *Namelist
	diagnostics []Diagnostic
}

//New returns an empty Fred.
func New() *Fred {
	return &Fred{parameters: NewNamelist()}
}

//reset discards all the data in F.
func (F *Fred) reset() {
	F.natoms = 0
	F.charge = 0
	F.fragments = nil
	F.connections = nil
	F.parameters = NewNamelist()
	F.diagnostics = nil
}

//NAtoms returns the number of atoms in the system.
func (F *Fred) NAtoms() int {
	return F.natoms
}

//Charge returns the total charge of the system.
func (F *Fred) Charge() int {
	return F.charge
}

//Fragments returns the fragments, in their current order. The slice is a copy but
//the fragments are not.
func (F *Fred) Fragments() []*Fragment {
	ret := make([]*Fragment, len(F.fragments))
	copy(ret, F.fragments)
	return ret
}

//Fragment returns the ith fragment in the current order. It panics if i is out of range.
func (F *Fred) Fragment(i int) *Fragment {
	if i < 0 || i >= len(F.fragments) {
		panic("Fragment: index out of range")
	}
	return F.fragments[i]
}

func (F *Fred) NFragments() int {
	return len(F.fragments)
}

//Connections returns a copy of the connection table.
func (F *Fred) Connections() []Connection {
	ret := make([]Connection, len(F.connections))
	copy(ret, F.connections)
	return ret
}

//Parameters returns a copy of the namelist groups.
func (F *Fred) Parameters() *Namelist {
	return F.parameters.Copy()
}

//SetNAtoms sets the number of atoms in the system.
func (F *Fred) SetNAtoms(n int) *Fred {
	F.natoms = n
	return F
}

//SetCharge sets the total charge of the system.
func (F *Fred) SetCharge(charge int) *Fred {
	F.charge = charge
	return F
}

//SetFragments replaces the fragment list. The slice is copied, the fragments are not.
func (F *Fred) SetFragments(frags []*Fragment) *Fred {
	F.fragments = make([]*Fragment, len(frags))
	copy(F.fragments, frags)
	return F
}

//SetConnections replaces the connection table with a copy of conns.
func (F *Fred) SetConnections(conns []Connection) *Fred {
	F.connections = make([]Connection, len(conns))
	copy(F.connections, conns)
	return F
}

//SetParameters replaces the namelist groups with a copy of N.
func (F *Fred) SetParameters(N *Namelist) *Fred {
	if N == nil {
		N = NewNamelist()
	}
	F.parameters = N.Copy()
	return F
}

//AddFragment appends frag. Atoms of frag that belong to fragments already in F
//are removed from those, which are left sorted. Fragments left without atoms are dropped.
//The number of atoms grows by the size of frag; it is not decreased for the atoms
//taken from other fragments, and the total charge is not changed.
func (F *Fred) AddFragment(frag *Fragment) *Fred {
	kept := F.fragments[:0]
	for _, v := range F.fragments {
		v.without(frag)
		if v.Len() == 0 {
			continue
		}
		kept = append(kept, v)
	}
	//clear the tail so dropped fragments can be collected.
	for i := len(kept); i < len(F.fragments); i++ {
		F.fragments[i] = nil
	}
	F.fragments = append(kept, frag)
	F.natoms += frag.Len()
	return F
}

//AddConnection appends conn to the connection table.
func (F *Fred) AddConnection(conn Connection) *Fred {
	F.connections = append(F.connections, conn)
	return F
}

//AddPlaceholders appends n placeholder connections, with both endpoints set to
//the wildcard, to be filled by the FMO program.
func (F *Fred) AddPlaceholders(n int) *Fred {
	for i := 0; i < n; i++ {
		F.connections = append(F.connections, PlaceholderConnection())
	}
	return F
}

//liveAtoms returns the sum of the sizes of the current fragments.
func (F *Fred) liveAtoms() int {
	n := 0
	for _, v := range F.fragments {
		n += v.Len()
	}
	return n
}

//liveCharge returns the sum of the charges of the current fragments, ignoring
//those with the error marker.
func (F *Fred) liveCharge() int {
	c := 0
	for _, v := range F.fragments {
		if q, ok := v.Charge().Int(); ok {
			c += q
		}
	}
	return c
}
