/*
 * write.go, part of gofred.
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
	"sort"
	"strconv"
	"strings"
)

//Indent is the default indentation for the parameters of key-value namelist groups.
const Indent = "  "

const (
	fragmentHeader   = "  FNo.  | Charge | BDA | Atoms of fragment"
	connectionHeader = `<< connections (ex. "Next_fragment_atom   Prev_fragment_atom") >>`
	namelistHeader   = "===============< namelist >==============="
)

//Normalize sorts the fragments by their smallest atom index and renumbers them from 1,
//and puts the connections between atoms, sorted by their first atom, before the
//placeholder connections, which keep their relative order.
func (F *Fred) Normalize() *Fred {
	sort.SliceStable(F.fragments, func(i, j int) bool {
		return F.fragments[i].MinIndex() < F.fragments[j].MinIndex()
	})
	for i, v := range F.fragments {
		v.SetIndex(i + 1)
	}
	atoms := make([]Connection, 0, len(F.connections))
	var placeholders []Connection
	for _, c := range F.connections {
		if c.IsPlaceholder() {
			placeholders = append(placeholders, c)
			continue
		}
		atoms = append(atoms, c)
	}
	sort.SliceStable(atoms, func(i, j int) bool {
		return atoms[i][0].atom < atoms[j][0].atom
	})
	F.connections = append(atoms, placeholders...)
	return F
}

//fragmentRow returns the fragment table row for frag, without the newline.
func fragmentRow(frag *Fragment) string {
	ats := make([]string, len(frag.atoms))
	for i, v := range frag.atoms {
		ats[i] = fmt.Sprintf("%8d", v)
	}
	return fmt.Sprintf("%7d |%6s  |%3s  |%s", frag.index, frag.charge, frag.bda, strings.Join(ats, " "))
}

func connectionRow(C Connection) string {
	return fmt.Sprintf("%9s %9s", C[0], C[1])
}

//Write normalizes F (see Normalize) and writes it to w in the fred format.
//indent is used before each parameter of the key-value groups.
//If &FMOCNTRL has an NF key, it is set to the number of fragments before writing.
func (F *Fred) Write(w io.Writer, indent string) error {
	F.Normalize()
	if F.parameters.hasKey(FMOCntrlGroup, NFKey) {
		F.parameters.Group(FMOCntrlGroup).Set(NFKey, strconv.Itoa(len(F.fragments)))
	}
	out := bufio.NewWriter(w)
	fmt.Fprintln(out, fragmentHeader)
	for _, v := range F.fragments {
		fmt.Fprintln(out, fragmentRow(v))
	}
	fmt.Fprintln(out)
	fmt.Fprintln(out, connectionHeader)
	for _, c := range F.connections {
		fmt.Fprintln(out, connectionRow(c))
	}
	fmt.Fprintln(out)
	fmt.Fprintln(out, namelistHeader)
	if err := WriteNamelist(out, F.parameters, indent); err != nil {
		return errDecorate(err, "Write")
	}
	if err := out.Flush(); err != nil {
		return newError(WriteError+": "+err.Error(), "", "Write", true)
	}
	return nil
}

//WriteNamelist writes the groups of N, in N's group order, in the fred format.
func WriteNamelist(w io.Writer, N *Namelist, indent string) error {
	out := bufio.NewWriter(w)
	for _, name := range N.order {
		fmt.Fprintln(out, name)
		G := N.groups[name]
		if G != nil {
			if G.Kind() == ListGroup {
				for _, l := range G.lines {
					fmt.Fprintln(out, l)
				}
			} else {
				for _, k := range G.keys {
					fmt.Fprintf(out, "%s%s=%s\n", indent, k, G.values[k])
				}
			}
		}
		fmt.Fprint(out, "/\n\n")
	}
	if err := out.Flush(); err != nil {
		return newError(WriteError+": "+err.Error(), "", "WriteNamelist", true)
	}
	return nil
}

//WriteFile writes F to the file name (see Write), compressing it if the name ends in
//".gz" or ".zst". An optional indent replaces the default one.
func (F *Fred) WriteFile(name string, indent ...string) (err error) {
	ind := Indent
	if len(indent) > 0 {
		ind = indent[0]
	}
	out, err := createWrite(name)
	if err != nil {
		return errDecorate(err, "WriteFile")
	}
	defer func() {
		if cerr := out.Close(); cerr != nil && err == nil {
			err = newError(WriteError+": "+cerr.Error(), name, "WriteFile", true)
		}
	}()
	if err = F.Write(out, ind); err != nil {
		e := err.(*Error)
		e.filename = name
		return errDecorate(e, "WriteFile")
	}
	return nil
}
