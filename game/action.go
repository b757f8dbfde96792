package game

import "fmt"

// An Action is one undoable mutation of a Context's state. Apply performs
// the mutation every time it is called but captures undo information only
// the first time; Undo restores that information and re-arms the capture.
type Action interface {
	Apply(c *Context)
	Undo(c *Context)
	String() string
}

// Add puts a piece on a site. With Stack set the piece goes on top of the
// existing stack; otherwise it replaces it.
type Add struct {
	Site  int
	Piece Piece
	Stack bool

	captured bool
	prev     siteSnapshot
}

func NewAdd(site int, p Piece, stack bool) *Add {
	return &Add{Site: site, Piece: p, Stack: stack}
}

func (a *Add) Apply(c *Context) {
	if !a.captured {
		a.prev = c.state.snapshot(a.Site)
		a.captured = true
	}
	c.state.pushPiece(a.Site, a.Piece, a.Stack)
}

func (a *Add) Undo(c *Context) {
	if !a.captured {
		return
	}
	c.state.restore(a.prev)
	a.captured = false
}

func (a *Add) String() string {
	return fmt.Sprintf("add(%d, w%d p%d)", a.Site, a.Piece.What, a.Piece.Who)
}

// Remove takes a piece off a site. A negative Level removes the top.
type Remove struct {
	Site  int
	Level int

	captured bool
	prev     siteSnapshot
}

func NewRemove(site, level int) *Remove {
	return &Remove{Site: site, Level: level}
}

func (a *Remove) Apply(c *Context) {
	if !a.captured {
		a.prev = c.state.snapshot(a.Site)
		a.captured = true
	}
	c.state.popPiece(a.Site, a.Level)
}

func (a *Remove) Undo(c *Context) {
	if !a.captured {
		return
	}
	c.state.restore(a.prev)
	a.captured = false
}

func (a *Remove) String() string {
	return fmt.Sprintf("remove(%d)", a.Site)
}

// Relocate lifts the top piece of From and puts it on To, on top of the
// existing stack if Stack is set, replacing it otherwise.
type Relocate struct {
	From  int
	To    int
	Stack bool

	captured bool
	prevFrom siteSnapshot
	prevTo   siteSnapshot
}

func NewRelocate(from, to int, stack bool) *Relocate {
	return &Relocate{From: from, To: to, Stack: stack}
}

func (a *Relocate) Apply(c *Context) {
	if !a.captured {
		a.prevFrom = c.state.snapshot(a.From)
		a.prevTo = c.state.snapshot(a.To)
		a.captured = true
	}
	if c.state.StackSize(a.From) == 0 {
		return
	}
	p := c.state.popPiece(a.From, -1)
	c.state.pushPiece(a.To, p, a.Stack)
}

func (a *Relocate) Undo(c *Context) {
	if !a.captured {
		return
	}
	// To first: From and To may be the same site.
	c.state.restore(a.prevTo)
	c.state.restore(a.prevFrom)
	a.captured = false
}

func (a *Relocate) String() string {
	return fmt.Sprintf("move(%d-%d)", a.From, a.To)
}

// PieceField selects one attribute of a Piece.
type PieceField uint8

const (
	FieldWhat PieceField = iota
	FieldWho
	FieldState
	FieldValue
)

var fieldNames = [...]string{"what", "who", "state", "value"}

func (f PieceField) String() string {
	if int(f) < len(fieldNames) {
		return fieldNames[f]
	}
	return "unknown"
}

// SetPiece changes one attribute of the piece at Site/Level (negative
// Level is the top). It does nothing on an empty site.
type SetPiece struct {
	Site  int
	Level int
	Field PieceField
	To    int

	captured bool
	prev     siteSnapshot
}

func NewSetState(site, level, v int) *SetPiece {
	return &SetPiece{Site: site, Level: level, Field: FieldState, To: v}
}

func NewSetValue(site, level, v int) *SetPiece {
	return &SetPiece{Site: site, Level: level, Field: FieldValue, To: v}
}

// NewSetWhat changes the component of a piece (promotion).
func NewSetWhat(site, level, what int) *SetPiece {
	return &SetPiece{Site: site, Level: level, Field: FieldWhat, To: what}
}

// NewSetWho changes the owner of a piece (flip).
func NewSetWho(site, level, who int) *SetPiece {
	return &SetPiece{Site: site, Level: level, Field: FieldWho, To: who}
}

func (a *SetPiece) Apply(c *Context) {
	if !a.captured {
		a.prev = c.state.snapshot(a.Site)
		a.captured = true
	}
	st := c.state.stackCopy(a.Site)
	if len(st) == 0 {
		return
	}
	lvl := a.Level
	if lvl < 0 || lvl >= len(st) {
		lvl = len(st) - 1
	}
	switch a.Field {
	case FieldWhat:
		st[lvl].What = a.To
	case FieldWho:
		st[lvl].Who = a.To
	case FieldState:
		st[lvl].State = a.To
	case FieldValue:
		st[lvl].Value = a.To
	}
	c.state.setStack(a.Site, st)
}

func (a *SetPiece) Undo(c *Context) {
	if !a.captured {
		return
	}
	c.state.restore(a.prev)
	a.captured = false
}

func (a *SetPiece) String() string {
	return fmt.Sprintf("set-%s(%d, %d)", a.Field, a.Site, a.To)
}

// SetCount sets the piece count of a site (count mode).
type SetCount struct {
	Site int
	N    int

	captured bool
	prev     int
}

func NewSetCount(site, n int) *SetCount {
	return &SetCount{Site: site, N: n}
}

func (a *SetCount) Apply(c *Context) {
	if !a.captured {
		a.prev = c.state.countAt(a.Site)
		a.captured = true
	}
	c.state.setCount(a.Site, a.N)
}

func (a *SetCount) Undo(c *Context) {
	if !a.captured {
		return
	}
	c.state.setCount(a.Site, a.prev)
	a.captured = false
}

func (a *SetCount) String() string {
	return fmt.Sprintf("set-count(%d, %d)", a.Site, a.N)
}

// SetScore sets a player's score, or adds to it when Add is set.
type SetScore struct {
	Player int
	Score  int
	Add    bool

	captured bool
	prev     int
}

func NewSetScore(player, score int, add bool) *SetScore {
	return &SetScore{Player: player, Score: score, Add: add}
}

func (a *SetScore) Apply(c *Context) {
	s := c.state
	if a.Player < 1 || a.Player > s.numPlayers {
		return
	}
	if !a.captured {
		a.prev = s.scores[a.Player]
		a.captured = true
	}
	if a.Add {
		s.scores[a.Player] += a.Score
	} else {
		s.scores[a.Player] = a.Score
	}
}

func (a *SetScore) Undo(c *Context) {
	if !a.captured {
		return
	}
	c.state.scores[a.Player] = a.prev
	a.captured = false
}

func (a *SetScore) String() string {
	if a.Add {
		return fmt.Sprintf("add-score(P%d, %d)", a.Player, a.Score)
	}
	return fmt.Sprintf("set-score(P%d, %d)", a.Player, a.Score)
}

type SetCounter struct {
	N int

	captured bool
	prev     int
}

func NewSetCounter(n int) *SetCounter {
	return &SetCounter{N: n}
}

func (a *SetCounter) Apply(c *Context) {
	if !a.captured {
		a.prev = c.state.counter
		a.captured = true
	}
	c.state.counter = a.N
}

func (a *SetCounter) Undo(c *Context) {
	if !a.captured {
		return
	}
	c.state.counter = a.prev
	a.captured = false
}

func (a *SetCounter) String() string {
	return fmt.Sprintf("set-counter(%d)", a.N)
}

// Visit marks a site as visited for the rest of the turn.
type Visit struct {
	Site int

	captured bool
	prev     bool
}

func NewVisit(site int) *Visit {
	return &Visit{Site: site}
}

func (a *Visit) Apply(c *Context) {
	if !a.captured {
		a.prev = c.state.Visited(a.Site)
		a.captured = true
	}
	c.state.setVisited(a.Site, true)
}

func (a *Visit) Undo(c *Context) {
	if !a.captured {
		return
	}
	c.state.setVisited(a.Site, a.prev)
	a.captured = false
}

func (a *Visit) String() string {
	return fmt.Sprintf("visit(%d)", a.Site)
}

// MoveAgain keeps the turn with the mover after the current move.
type MoveAgain struct {
	captured bool
	prev     bool
}

func NewMoveAgain() *MoveAgain {
	return &MoveAgain{}
}

func (a *MoveAgain) Apply(c *Context) {
	if !a.captured {
		a.prev = c.state.moveAgain
		a.captured = true
	}
	c.state.moveAgain = true
}

func (a *MoveAgain) Undo(c *Context) {
	if !a.captured {
		return
	}
	c.state.moveAgain = a.prev
	a.captured = false
}

func (a *MoveAgain) String() string {
	return "move-again"
}

// Pass changes nothing; it only marks the move as a pass.
type Pass struct{}

func (Pass) Apply(*Context) {}
func (Pass) Undo(*Context) {}
func (Pass) String() string { return "pass" }

// clearMoveAgain ends a move-again streak without switching the mover.
type clearMoveAgain struct {
	captured bool
}

func (a *clearMoveAgain) Apply(c *Context) {
	if c.state.moveAgain {
		a.captured = true
	}
	c.state.moveAgain = false
}

func (a *clearMoveAgain) Undo(c *Context) {
	if a.captured {
		c.state.moveAgain = true
		a.captured = false
	}
}

func (a *clearMoveAgain) String() string { return "clear-move-again" }

// nextTurn hands the turn to the next active player and clears the
// per-turn visited marks.
type nextTurn struct {
	captured          bool
	mover, next, prev int
	visited           []bool
}

func (a *nextTurn) Apply(c *Context) {
	s := c.state
	if !a.captured {
		a.mover, a.next, a.prev = s.mover, s.next, s.prev
		a.visited = append([]bool(nil), s.visited...)
		a.captured = true
	}
	s.prev = s.mover
	s.mover = s.nextActiveAfter(s.mover)
	s.next = s.nextActiveAfter(s.mover)
	s.visited = make([]bool, len(s.visited))
	c.trial.numTurns++
}

func (a *nextTurn) Undo(c *Context) {
	if !a.captured {
		return
	}
	s := c.state
	s.mover, s.next, s.prev = a.mover, a.next, a.prev
	s.visited = a.visited
	c.trial.numTurns--
	a.captured = false
}

func (a *nextTurn) String() string { return "next-turn" }

// end records the result of the trial and deactivates every player.
type end struct {
	result Result

	captured bool
	active   []bool
}

func (a *end) Apply(c *Context) {
	s := c.state
	if !a.captured {
		a.active = append([]bool(nil), s.active...)
		a.captured = true
	}
	for p := range s.active {
		s.active[p] = false
	}
	r := a.result
	c.trial.result = &r
}

func (a *end) Undo(c *Context) {
	if !a.captured {
		return
	}
	copy(c.state.active, a.active)
	c.trial.result = nil
	a.captured = false
}

func (a *end) String() string { return "end(" + a.result.String() + ")" }
