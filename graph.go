/*
 * graph.go, part of gofred.
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
	"sort"

	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/simple"
	"gonum.org/v1/gonum/graph/topo"
)

//atomOwners maps each atom index to the positions, in the current fragment
//order, of the fragments that contain it.
func (F *Fred) atomOwners() map[int][]int {
	owners := make(map[int][]int)
	for i, v := range F.fragments {
		for _, a := range v.atoms {
			owners[a] = append(owners[a], i)
		}
	}
	return owners
}

//FragmentGraph returns an undirected graph with one node per fragment, with ID equal
//to the fragment's position in the current order. Two fragments are joined by an edge
//if a connection links an atom of one to an atom of the other.
//Placeholder connections, and atoms not in any fragment, are ignored.
func (F *Fred) FragmentGraph() *simple.UndirectedGraph {
	g := simple.NewUndirectedGraph()
	for i := range F.fragments {
		g.AddNode(simple.Node(int64(i)))
	}
	owners := F.atomOwners()
	for _, c := range F.connections {
		if c.IsPlaceholder() {
			continue
		}
		for _, from := range owners[c[0].atom] {
			for _, to := range owners[c[1].atom] {
				if from == to {
					continue
				}
				g.SetEdge(g.NewEdge(simple.Node(int64(from)), simple.Node(int64(to))))
			}
		}
	}
	return g
}

//Components returns the sets of fragments (as positions in the current order) that are
//linked to each other by connections. Each set is sorted, and the sets are sorted by
//their first element.
func (F *Fred) Components() [][]int {
	cc := topo.ConnectedComponents(F.FragmentGraph())
	ret := make([][]int, 0, len(cc))
	for _, nodes := range cc {
		ret = append(ret, nodeIDs(nodes))
	}
	sort.Slice(ret, func(i, j int) bool { return ret[i][0] < ret[j][0] })
	return ret
}

func nodeIDs(nodes []graph.Node) []int {
	ids := make([]int, len(nodes))
	for i, n := range nodes {
		ids[i] = int(n.ID())
	}
	sort.Ints(ids)
	return ids
}
