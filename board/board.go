// Package board describes the static topology of a playing area: which
// sites exist, how they connect, and the named regions derived from them.
// A Topology never changes once built and can be shared by any number of
// concurrent trials.
package board

import (
	"errors"
	"fmt"
)

// Off is the sentinel for "no site": off the board, or undefined.
const Off = -1

type Kind uint8

const (
	KindGrid Kind = iota
	KindGraph
)

func (k Kind) String() string {
	if k == KindGrid {
		return "grid"
	}
	return "graph"
}

var (
	ErrBadDimensions = errors.New("board dimensions must be positive")
	ErrBadEdge       = errors.New("edge refers to a site that does not exist")
)

// Coord is a grid coordinate. Graph boards have no meaningful coords and
// report the site index as the column.
type Coord struct {
	Row, Col int
}

// Topology is the immutable graph of sites of a board.
type Topology struct {
	kind     Kind
	rows     int
	cols     int
	numSites int
	coords   []Coord

	// steps[site][dir] is the neighbour in that direction, or Off.
	steps [][NumDirections]int
	// adjacent holds graph edges for graph boards and orthogonal
	// neighbours for grids.
	adjacent [][]int
	edges    [][2]int

	perimeter Region
	corners   Region
	centre    Region
	rowSites  []Region
	colSites  []Region
}

// NewRectangle builds a rows x cols grid. Site 0 is the bottom-left
// corner and sites are numbered row by row.
func NewRectangle(rows, cols int) (*Topology, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrBadDimensions
	}
	t := &Topology{
		kind:     KindGrid,
		rows:     rows,
		cols:     cols,
		numSites: rows * cols,
	}
	t.coords = make([]Coord, t.numSites)
	t.steps = make([][NumDirections]int, t.numSites)
	t.adjacent = make([][]int, t.numSites)
	t.rowSites = make([]Region, rows)
	t.colSites = make([]Region, cols)

	for site := 0; site < t.numSites; site++ {
		r, c := site/cols, site%cols
		t.coords[site] = Coord{Row: r, Col: c}
		t.rowSites[r].Add(site)
		t.colSites[c].Add(site)
		for d := Direction(0); d < NumDirections; d++ {
			nr, nc := r+deltas[d][0], c+deltas[d][1]
			if nr < 0 || nr >= rows || nc < 0 || nc >= cols {
				t.steps[site][d] = Off
				continue
			}
			nb := nr*cols + nc
			t.steps[site][d] = nb
			if !d.IsDiagonal() {
				t.adjacent[site] = append(t.adjacent[site], nb)
				if nb > site {
					t.edges = append(t.edges, [2]int{site, nb})
				}
			}
		}
		if r == 0 || c == 0 || r == rows-1 || c == cols-1 {
			t.perimeter.Add(site)
		}
	}
	for _, s := range []int{0, cols - 1, (rows - 1) * cols, rows*cols - 1} {
		t.corners.Add(s)
	}
	// Centre is the middle site, or the middle 2 or 4 for even sides.
	for _, r := range middles(rows) {
		for _, c := range middles(cols) {
			t.centre.Add(r*cols + c)
		}
	}
	return t, nil
}

// NewSquare builds an n x n grid.
func NewSquare(n int) (*Topology, error) {
	return NewRectangle(n, n)
}

func middles(n int) []int {
	if n%2 == 1 {
		return []int{n / 2}
	}
	return []int{n/2 - 1, n / 2}
}

// NewGraph builds a board from an explicit undirected edge list.
func NewGraph(numSites int, edges [][2]int) (*Topology, error) {
	if numSites <= 0 {
		return nil, ErrBadDimensions
	}
	t := &Topology{
		kind:     KindGraph,
		rows:     1,
		cols:     numSites,
		numSites: numSites,
	}
	t.coords = make([]Coord, numSites)
	t.steps = make([][NumDirections]int, numSites)
	t.adjacent = make([][]int, numSites)
	t.rowSites = []Region{NewRegion()}
	t.colSites = make([]Region, numSites)
	for site := 0; site < numSites; site++ {
		t.coords[site] = Coord{Row: 0, Col: site}
		t.rowSites[0].Add(site)
		t.colSites[site].Add(site)
		for d := range t.steps[site] {
			t.steps[site][d] = Off
		}
	}
	for _, e := range edges {
		a, b := e[0], e[1]
		if a < 0 || b < 0 || a >= numSites || b >= numSites {
			return nil, fmt.Errorf("%w: (%d, %d)", ErrBadEdge, a, b)
		}
		t.adjacent[a] = append(t.adjacent[a], b)
		t.adjacent[b] = append(t.adjacent[b], a)
		t.edges = append(t.edges, e)
	}
	for site := 0; site < numSites; site++ {
		if len(t.adjacent[site]) <= 1 {
			t.perimeter.Add(site)
		}
	}
	return t, nil
}

func (t *Topology) Kind() Kind { return t.kind }
func (t *Topology) NumSites() int { return t.numSites }
func (t *Topology) Rows() int { return t.rows }
func (t *Topology) Columns() int { return t.cols }
func (t *Topology) Edges() [][2]int { return t.edges }

// OnBoard is true if site is a valid site index.
func (t *Topology) OnBoard(site int) bool {
	return site >= 0 && site < t.numSites
}

// Coord returns the grid coordinate of a site, or {Off, Off}.
func (t *Topology) Coord(site int) Coord {
	if !t.OnBoard(site) {
		return Coord{Row: Off, Col: Off}
	}
	return t.coords[site]
}

// Row returns the row of a site, or Off.
func (t *Topology) Row(site int) int {
	return t.Coord(site).Row
}

// Column returns the column of a site, or Off.
func (t *Topology) Column(site int) int {
	return t.Coord(site).Col
}

// Step returns the neighbour of site in direction d, or Off if there is
// none. Graph boards have no directions, so Step always returns Off there.
func (t *Topology) Step(site int, d Direction) int {
	if !t.OnBoard(site) || d >= NumDirections {
		return Off
	}
	return t.steps[site][d]
}

// Neighbours returns the neighbours of site in the given directions. On
// graph boards the direction set is ignored and graph adjacency is used.
func (t *Topology) Neighbours(site int, dirs DirectionSet) []int {
	if !t.OnBoard(site) {
		return nil
	}
	if t.kind == KindGraph {
		return t.adjacent[site]
	}
	out := make([]int, 0, NumDirections)
	for _, d := range dirs.List() {
		if nb := t.steps[site][d]; nb != Off {
			out = append(out, nb)
		}
	}
	return out
}

// Adjacent returns the default adjacency of a site: graph edges, or
// orthogonal neighbours on grids.
func (t *Topology) Adjacent(site int) []int {
	if !t.OnBoard(site) {
		return nil
	}
	return t.adjacent[site]
}

// AllSites returns a fresh region with every site.
func (t *Topology) AllSites() Region {
	r := NewRegion()
	for s := 0; s < t.numSites; s++ {
		r.Add(s)
	}
	return r
}

func (t *Topology) Perimeter() Region { return t.perimeter.Clone() }
func (t *Topology) Corners() Region { return t.corners.Clone() }
func (t *Topology) Centre() Region { return t.centre.Clone() }

// RowSites returns the sites of a row, or an empty region if out of range.
func (t *Topology) RowSites(row int) Region {
	if row < 0 || row >= len(t.rowSites) {
		return NewRegion()
	}
	return t.rowSites[row].Clone()
}

// ColumnSites returns the sites of a column, or an empty region if out of
// range.
func (t *Topology) ColumnSites(col int) Region {
	if col < 0 || col >= len(t.colSites) {
		return NewRegion()
	}
	return t.colSites[col].Clone()
}

func (t *Topology) String() string {
	if t.kind == KindGraph {
		return fmt.Sprintf("graph(%d sites, %d edges)", t.numSites, len(t.edges))
	}
	return fmt.Sprintf("grid(%dx%d)", t.rows, t.cols)
}
