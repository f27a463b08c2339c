/*
 * stats.go, part of gofred.
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

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

//Summary contains some numbers describing the fragmentation of a system.
type Summary struct {
	NFragments   int
	NAtoms       int //from the fragments, not the stored count.
	Charge       int //from the fragments, not the stored charge.
	NConnections int
	Placeholders int
	MeanSize     float64
	StdSize      float64
	MinSize      int
	MaxSize      int
}

func (S Summary) String() string {
	return fmt.Sprintf("fragments: %d\natoms: %d\ncharge: %d\nconnections: %d (%d placeholders)\n"+
		"atoms per fragment: %.2f +/- %.2f (min %d, max %d)",
		S.NFragments, S.NAtoms, S.Charge, S.NConnections, S.Placeholders,
		S.MeanSize, S.StdSize, S.MinSize, S.MaxSize)
}

//Sizes returns the number of atoms of each fragment, in the current order.
func (F *Fred) Sizes() []float64 {
	ret := make([]float64, len(F.fragments))
	for i, v := range F.fragments {
		ret[i] = float64(v.Len())
	}
	return ret
}

//Summary returns the statistics of the current fragments and connections.
func (F *Fred) Summary() Summary {
	S := Summary{
		NFragments:   len(F.fragments),
		NAtoms:       F.liveAtoms(),
		Charge:       F.liveCharge(),
		NConnections: len(F.connections),
	}
	for _, c := range F.connections {
		if c.IsPlaceholder() {
			S.Placeholders++
		}
	}
	sizes := F.Sizes()
	switch len(sizes) {
	case 0:
		return S
	case 1:
		S.MeanSize = sizes[0]
	default:
		S.MeanSize, S.StdSize = stat.MeanStdDev(sizes, nil)
	}
	S.MinSize = int(floats.Min(sizes))
	S.MaxSize = int(floats.Max(sizes))
	return S
}
