/*
 * complete.go, part of gofred.
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

//Fields per line in the &FRAGMENT group.
const fieldsPerLine = 10

//CompleteParameters returns a copy of the namelist groups with the values that depend on
//the fragment table recomputed from the current fragments and connections:
//
//	&CNTRL Natom       number of atoms in the fragments, if the key is present.
//	&FMOCNTRL NF       number of fragments, if the key is present.
//	&CNTRL Charge      sum of the fragment charges, if &FMOCNTRL has a Charge key
//	                   and &CNTRL exists.
//	&FMOCNTRL AutoFrag 'OFF', if the key is present.
//	&FRAGMENT          regenerated from the fragments and connections.
//
//Note that the charge goes into &CNTRL although the key checked is the one in &FMOCNTRL.
//The &FRAGMENT group is added to the group order only if it was already there.
//F itself is not modified.
func (F *Fred) CompleteParameters() *Namelist {
	N := F.parameters.Copy()
	if N.hasKey(CntrlGroup, NatomKey) {
		N.Group(CntrlGroup).Set(NatomKey, strconv.Itoa(F.liveAtoms()))
	}
	if N.hasKey(FMOCntrlGroup, NFKey) {
		N.Group(FMOCntrlGroup).Set(NFKey, strconv.Itoa(len(F.fragments)))
	}
	if N.hasKey(FMOCntrlGroup, ChargeKey) {
		if G := N.Group(CntrlGroup); G != nil && G.Kind() == KeyValueGroup {
			G.Set(ChargeKey, strconv.Itoa(F.liveCharge()))
		}
	}
	if N.hasKey(FMOCntrlGroup, AutoFragKey) {
		N.Group(FMOCntrlGroup).Set(AutoFragKey, AutoFragOff)
	}
	N.SetGroup(F.fragmentGroup())
	return N
}

//fragmentGroup builds the &FRAGMENT list group for the current fragments and connections.
//It has five blocks: atoms per fragment, charges, BDA flags, the atoms of each fragment
//and the connections. A block with no lines still takes one, empty, line, and so does
//each fragment without atoms in the fourth block.
func (F *Fred) fragmentGroup() *Group {
	G := newGroupKind(FragmentGroup, ListGroup)
	addBlock := func(lines []string) {
		if len(lines) == 0 {
			lines = []string{""}
		}
		for _, l := range lines {
			G.AppendLine(l)
		}
	}
	sizes := make([]string, len(F.fragments))
	charges := make([]string, len(F.fragments))
	bdas := make([]string, len(F.fragments))
	for i, v := range F.fragments {
		sizes[i] = strconv.Itoa(v.Len())
		charges[i] = v.Charge().String()
		bdas[i] = v.BDA().String()
	}
	addBlock(fixedWidthLines(sizes, 8))
	addBlock(fixedWidthLines(charges, 8))
	addBlock(fixedWidthLines(bdas, 8))
	var atoms []string
	for _, v := range F.fragments {
		ats := v.Atoms()
		if len(ats) == 0 {
			//an empty fragment still takes a line.
			atoms = append(atoms, "")
			continue
		}
		s := make([]string, len(ats))
		for i, a := range ats {
			s[i] = strconv.Itoa(a)
		}
		atoms = append(atoms, fixedWidthLines(s, 8)...)
	}
	addBlock(atoms)
	conns := make([]string, len(F.connections))
	for i, c := range F.connections {
		conns[i] = fmt.Sprintf("%9s%9s", c[0], c[1])
	}
	addBlock(conns)
	return G
}

//fixedWidthLines puts fields right-justified in columns of the given width,
//fieldsPerLine per line.
func fixedWidthLines(fields []string, width int) []string {
	var ret []string
	for i := 0; i < len(fields); i += fieldsPerLine {
		var b strings.Builder
		for _, f := range fields[i:min(i+fieldsPerLine, len(fields))] {
			fmt.Fprintf(&b, "%*s", width, f)
		}
		ret = append(ret, b.String())
	}
	return ret
}
