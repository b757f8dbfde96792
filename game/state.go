package game

import (
	"fmt"
	"strings"

	"github.com/domino14/ludeme/board"
	"github.com/domino14/ludeme/zobrist"
)

// Piece is one level of a site's stack. What is the component index (0
// for none) and Who the owning player.
type Piece struct {
	What  int
	Who   int
	State int
	Value int
}

// ContainerState is the piece occupancy of one container (the board).
// Level 0 is the bottom of a stack.
type ContainerState struct {
	stacks [][]Piece
	counts []int
}

func newContainerState(numSites int) *ContainerState {
	return &ContainerState{
		stacks: make([][]Piece, numSites),
		counts: make([]int, numSites),
	}
}

func (cs *ContainerState) copy() *ContainerState {
	n := &ContainerState{
		stacks: make([][]Piece, len(cs.stacks)),
		counts: append([]int(nil), cs.counts...),
	}
	for i, st := range cs.stacks {
		if len(st) > 0 {
			n.stacks[i] = append([]Piece(nil), st...)
		}
	}
	return n
}

// State is the mutable state of a trial: the board container, players,
// scores and the incremental position hash. All mutation goes through
// Actions so it can be undone.
type State struct {
	z          *zobrist.Zobrist
	countMode  bool
	numPlayers int

	board *ContainerState

	mover int
	next  int
	prev  int

	scores  []int
	active  []bool
	counter int

	visited   []bool
	moveAgain bool

	hash uint64
}

func newState(g *Game) *State {
	n := g.numPlayers
	s := &State{
		z:          g.zobrist,
		countMode:  g.countMode,
		numPlayers: n,
		board:      newContainerState(g.board.NumSites()),
		scores:     make([]int, n+1),
		active:     make([]bool, n+1),
		visited:    make([]bool, g.board.NumSites()),
		mover:      1,
		prev:       n,
	}
	for p := 1; p <= n; p++ {
		s.active[p] = true
	}
	s.next = s.nextActiveAfter(1)
	return s
}

// deepCopy copies everything except the immutable zobrist tables.
func (s *State) deepCopy() *State {
	n := *s
	n.board = s.board.copy()
	n.scores = append([]int(nil), s.scores...)
	n.active = append([]bool(nil), s.active...)
	n.visited = append([]bool(nil), s.visited...)
	return &n
}

func (s *State) onBoard(site int) bool {
	return site >= 0 && site < len(s.board.stacks)
}

func (s *State) NumSites() int { return len(s.board.stacks) }
func (s *State) NumPlayers() int { return s.numPlayers }
func (s *State) Mover() int { return s.mover }
func (s *State) Next() int { return s.next }
func (s *State) Prev() int { return s.prev }
func (s *State) Counter() int { return s.counter }
func (s *State) MoveAgain() bool { return s.moveAgain }

// Hash is the positional hash: pieces only.
func (s *State) Hash() uint64 { return s.hash }

// FullHash is the situational hash: the position plus the player to move.
func (s *State) FullHash() uint64 {
	return s.hash ^ s.z.Mover(s.mover)
}

// StackSize is the number of pieces on a site; 0 off the board.
func (s *State) StackSize(site int) int {
	if !s.onBoard(site) {
		return 0
	}
	return len(s.board.stacks[site])
}

// PieceAt returns the piece at a level, or the zero Piece. A negative
// level means the top of the stack.
func (s *State) PieceAt(site, level int) Piece {
	if !s.onBoard(site) {
		return Piece{}
	}
	st := s.board.stacks[site]
	if level < 0 {
		level = len(st) - 1
	}
	if level < 0 || level >= len(st) {
		return Piece{}
	}
	return st[level]
}

func (s *State) What(site int) int { return s.PieceAt(site, board.Off).What }
func (s *State) Who(site int) int { return s.PieceAt(site, board.Off).Who }
func (s *State) WhatAt(site, level int) int { return s.PieceAt(site, level).What }
func (s *State) WhoAt(site, level int) int { return s.PieceAt(site, level).Who }
func (s *State) StateAt(site, level int) int { return s.PieceAt(site, level).State }
func (s *State) ValueAt(site, level int) int { return s.PieceAt(site, level).Value }
func (s *State) IsEmpty(site int) bool { return s.StackSize(site) == 0 && s.Count(site) == 0 }

// Count is the piece count of a site. In count mode it is the tracked
// count, otherwise the stack size.
func (s *State) Count(site int) int {
	if !s.onBoard(site) {
		return 0
	}
	if s.countMode {
		return s.board.counts[site]
	}
	return len(s.board.stacks[site])
}

// Occupied returns the sites whose top piece belongs to who; who 0 means
// any owner.
func (s *State) Occupied(who int) board.Region {
	r := board.NewRegion()
	for site, st := range s.board.stacks {
		if len(st) == 0 {
			continue
		}
		if who == 0 || st[len(st)-1].Who == who {
			r.Add(site)
		}
	}
	return r
}

// Empty returns the sites with no pieces.
func (s *State) Empty() board.Region {
	r := board.NewRegion()
	for site := range s.board.stacks {
		if s.IsEmpty(site) {
			r.Add(site)
		}
	}
	return r
}

// PieceCount counts the pieces (all levels) owned by who; 0 means any.
func (s *State) PieceCount(who int) int {
	n := 0
	for _, st := range s.board.stacks {
		for _, p := range st {
			if who == 0 || p.Who == who {
				n++
			}
		}
	}
	return n
}

func (s *State) Score(player int) int {
	if player < 1 || player > s.numPlayers {
		return 0
	}
	return s.scores[player]
}

func (s *State) Active(player int) bool {
	return player >= 1 && player <= s.numPlayers && s.active[player]
}

func (s *State) NumActive() int {
	n := 0
	for p := 1; p <= s.numPlayers; p++ {
		if s.active[p] {
			n++
		}
	}
	return n
}

func (s *State) Visited(site int) bool {
	return s.onBoard(site) && s.visited[site]
}

// VisitedRegion returns the sites visited this turn.
func (s *State) VisitedRegion() board.Region {
	r := board.NewRegion()
	for site, v := range s.visited {
		if v {
			r.Add(site)
		}
	}
	return r
}

func (s *State) nextActiveAfter(p int) int {
	for i := 1; i <= s.numPlayers; i++ {
		q := (p+i-1)%s.numPlayers + 1
		if s.active[q] {
			return q
		}
	}
	return p
}

func (s *State) stackHash(site int, st []Piece) uint64 {
	var h uint64
	for lvl, p := range st {
		h ^= s.z.What(site, lvl, p.What) ^ s.z.Who(site, lvl, p.Who) ^
			s.z.State(site, lvl, p.State) ^ s.z.Value(site, lvl, p.Value)
	}
	return h
}

// setStack replaces the stack of a site and keeps the hash current. The
// slice is owned by the state afterwards.
func (s *State) setStack(site int, st []Piece) {
	if !s.onBoard(site) {
		return
	}
	s.hash ^= s.stackHash(site, s.board.stacks[site])
	s.board.stacks[site] = st
	s.hash ^= s.stackHash(site, st)
}

func (s *State) stackCopy(site int) []Piece {
	if !s.onBoard(site) || len(s.board.stacks[site]) == 0 {
		return nil
	}
	return append([]Piece(nil), s.board.stacks[site]...)
}

func (s *State) setCount(site, n int) {
	if !s.onBoard(site) {
		return
	}
	s.hash ^= s.z.Count(site, s.board.counts[site])
	s.board.counts[site] = n
	s.hash ^= s.z.Count(site, n)
}

func (s *State) countAt(site int) int {
	if !s.onBoard(site) {
		return 0
	}
	return s.board.counts[site]
}

func (s *State) setVisited(site int, v bool) {
	if s.onBoard(site) {
		s.visited[site] = v
	}
}

func (s *State) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "mover: %d next: %d prev: %d\n", s.mover, s.next, s.prev)
	for site, st := range s.board.stacks {
		if len(st) == 0 {
			continue
		}
		fmt.Fprintf(&sb, "  %d:", site)
		for _, p := range st {
			fmt.Fprintf(&sb, " [w%d p%d s%d v%d]", p.What, p.Who, p.State, p.Value)
		}
		sb.WriteString("\n")
	}
	fmt.Fprintf(&sb, "scores: %v\n", s.scores[1:])
	return sb.String()
}

// pushPiece adds p to a site. In count mode it bumps the count and keeps
// p as the representative piece; otherwise p is stacked on top, or
// replaces whatever was there when stack is false.
func (s *State) pushPiece(site int, p Piece, stack bool) {
	if !s.onBoard(site) {
		return
	}
	if s.countMode {
		if len(s.board.stacks[site]) == 0 {
			s.setStack(site, []Piece{p})
		}
		s.setCount(site, s.board.counts[site]+1)
		return
	}
	if stack {
		s.setStack(site, append(s.stackCopy(site), p))
		return
	}
	s.setStack(site, []Piece{p})
}

// popPiece removes and returns the piece at level (the top if level is
// out of range). In count mode it decrements the count and clears the
// site when it reaches zero.
func (s *State) popPiece(site, level int) Piece {
	st := s.stackCopy(site)
	if len(st) == 0 {
		return Piece{}
	}
	if level < 0 || level >= len(st) {
		level = len(st) - 1
	}
	p := st[level]
	if s.countMode {
		n := s.board.counts[site] - 1
		if n <= 0 {
			s.setCount(site, 0)
			s.setStack(site, nil)
		} else {
			s.setCount(site, n)
		}
		return p
	}
	st = append(st[:level], st[level+1:]...)
	if len(st) == 0 {
		st = nil
	}
	s.setStack(site, st)
	return p
}

type siteSnapshot struct {
	site  int
	stack []Piece
	count int
}

func (s *State) snapshot(site int) siteSnapshot {
	return siteSnapshot{site: site, stack: s.stackCopy(site), count: s.countAt(site)}
}

func (s *State) restore(snap siteSnapshot) {
	s.setStack(snap.site, snap.stack)
	s.setCount(snap.site, snap.count)
}
