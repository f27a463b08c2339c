/*
 * doc.go, part of gofred.
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

/*Package fred reads, edits and writes "fred" files, the plain-text description of a
molecular system split into fragments for a Fragment Molecular Orbital (FMO) calculation.

A fred file has three parts, in this order:

	  FNo.  | Charge | BDA | Atoms of fragment
	      1 |    -1  |  0  |       1        2        3
	      2 |     1  |  0  |       4        5

	<< connections (ex. "Next_fragment_atom   Prev_fragment_atom") >>
	        4         1

	===============< namelist >===============
	&CNTRL
	  Natom=5
	/

The first line is a title and is ignored. The fragment table gives, for each fragment,
its net charge, its boundary-bond-assignment (BDA) flag and the atoms it owns. The
connection table lists pairs of atoms bonded across fragment boundaries. The namelist
part holds the configuration groups read by the FMO program, which are kept as opaque
text.

The Fred type holds a whole file. Read and ReadFile parse it with a lenient line-oriented
state machine: lines that can't be understood are skipped, never fatal, and are reported
by Diagnostics. Write and WriteFile sort and renumber the fragments before writing them
back. CompleteParameters returns the namelist with the fields that depend on the
fragment table (number of atoms, number of fragments, charge and the &FRAGMENT block)
recomputed from the current fragments.

Files ending in ".gz" or ".zst" are transparently (de)compressed.

	F := fred.New()
	if err := F.ReadFile("system.fred"); err != nil {
		log.Fatal(err)
	}
	F.AddFragment(fred.NewFragment([]int{4, 5, 6}, fred.IntValue(0), fred.IntValue(0)))
	if err := F.WriteFile("system_new.fred"); err != nil {
		log.Fatal(err)
	}

*/
package fred
