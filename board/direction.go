package board

// Direction is an absolute direction on a grid board.
type Direction uint8

const (
	N Direction = iota
	NE
	E
	SE
	S
	SW
	W
	NW

	NumDirections = 8
)

var directionNames = [NumDirections]string{"N", "NE", "E", "SE", "S", "SW", "W", "NW"}

// deltas are (row, col) steps. Row 0 is the bottom row, so N increases row.
var deltas = [NumDirections][2]int{
	{1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1}, {0, -1}, {1, -1},
}

func (d Direction) String() string {
	if int(d) >= NumDirections {
		return "none"
	}
	return directionNames[d]
}

// Opposite returns the direction pointing the other way.
func (d Direction) Opposite() Direction {
	return (d + 4) % NumDirections
}

// IsDiagonal is true for NE, SE, SW and NW.
func (d Direction) IsDiagonal() bool {
	return d%2 == 1
}

// DirectionSet is a bitmask of directions.
type DirectionSet uint8

const (
	Orthogonal DirectionSet = 1<<N | 1<<E | 1<<S | 1<<W
	Diagonal   DirectionSet = 1<<NE | 1<<SE | 1<<SW | 1<<NW
	AllDirections           = Orthogonal | Diagonal
)

// Directions builds a set from individual directions.
func Directions(dirs ...Direction) DirectionSet {
	var s DirectionSet
	for _, d := range dirs {
		s |= 1 << d
	}
	return s
}

func (s DirectionSet) Has(d Direction) bool {
	return s&(1<<d) != 0
}

// List returns the directions in the set, in clockwise order starting at N.
func (s DirectionSet) List() []Direction {
	out := make([]Direction, 0, NumDirections)
	for d := Direction(0); d < NumDirections; d++ {
		if s.Has(d) {
			out = append(out, d)
		}
	}
	return out
}

// UsesDiagonals is true if any diagonal direction is in the set.
func (s DirectionSet) UsesDiagonals() bool {
	return s&Diagonal != 0
}

func (s DirectionSet) String() string {
	switch s {
	case Orthogonal:
		return "Orthogonal"
	case Diagonal:
		return "Diagonal"
	case AllDirections:
		return "All"
	}
	str := ""
	for i, d := range s.List() {
		if i > 0 {
			str += ","
		}
		str += d.String()
	}
	return str
}
