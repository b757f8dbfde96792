package zobrist

import (
	"encoding/binary"

	"github.com/cespare/xxhash"
	"lukechampine.com/frand"
)

const bignum = 1<<63 - 2

const (
	// MaxLevels is the number of stack levels with tabled keys. Keys for
	// deeper levels are derived on demand.
	MaxLevels = 16
	// MaxValues bounds the tabled state/value/count keys. Keys for other
	// numbers are derived on demand.
	MaxValues = 32
)

// Tags separating the derived key spaces.
const (
	tagWhat uint64 = iota + 1
	tagWho
	tagState
	tagValue
	tagCount
)

// generate a zobrist hash for a board game position.
// https://en.wikipedia.org/wiki/Zobrist_hashing
//
// Keys are derived deterministically from the game name, so the same game
// hashes identically across processes.
type Zobrist struct {
	numSites      int
	numComponents int
	numPlayers    int
	salt          uint64

	what  [][]uint64
	who   [][]uint64
	state [][]uint64
	value [][]uint64
	count [][]uint64
	mover []uint64
}

// https://stackoverflow.com/a/12996028/1737333
func hashUint64(x uint64) uint64 {
	x = (x ^ (x >> 30)) * uint64(0xbf58476d1ce4e5b9)
	x = (x ^ (x >> 27)) * uint64(0x94d049bb133111eb)
	x = x ^ (x >> 31)
	return x
}

func seedFor(name string) []byte {
	seed := make([]byte, 32)
	h := xxhash.Sum64([]byte(name))
	for i := 0; i < 4; i++ {
		binary.LittleEndian.PutUint64(seed[i*8:], h)
		h = hashUint64(h + uint64(i) + 1)
	}
	return seed
}

// New builds the key tables for a game. numComponents and numPlayers do
// not count the empty marker / neutral player 0, which never hash.
func New(name string, numSites, numComponents, numPlayers int) *Zobrist {
	rng := frand.NewCustom(seedFor(name), 1024, 12)
	key := func() uint64 {
		return rng.Uint64n(bignum) + 1
	}
	table := func(rows, cols int) [][]uint64 {
		t := make([][]uint64, rows)
		for i := range t {
			t[i] = make([]uint64, cols)
			for j := range t[i] {
				t[i][j] = key()
			}
		}
		return t
	}

	z := &Zobrist{
		numSites:      numSites,
		numComponents: numComponents,
		numPlayers:    numPlayers,
		salt:          xxhash.Sum64([]byte(name)),
	}
	cells := numSites * MaxLevels
	z.what = table(cells, numComponents+1)
	z.who = table(cells, numPlayers+1)
	z.state = table(cells, MaxValues)
	z.value = table(cells, MaxValues)
	z.count = table(numSites, MaxValues)
	z.mover = make([]uint64, numPlayers+1)
	for i := range z.mover {
		z.mover[i] = key()
	}
	return z
}

func (z *Zobrist) cell(site, level int) int {
	return site*MaxLevels + level
}

func tabled(v int) bool {
	return v > 0 && v < MaxValues
}

// derived is the key for an entry outside the tables. It depends on every
// coordinate, so no two entries share a key by construction.
func (z *Zobrist) derived(tag uint64, site, level, v int) uint64 {
	h := hashUint64(z.salt ^ tag)
	h = hashUint64(h ^ uint64(site))
	h = hashUint64(h ^ uint64(level))
	h = hashUint64(h ^ uint64(v))
	if h == 0 {
		h = 1
	}
	return h
}

func (z *Zobrist) inRange(site, level int) bool {
	return site >= 0 && site < z.numSites && level >= 0
}

// What is the key for component what at (site, level). Empty (0) and
// unknown components hash to 0.
func (z *Zobrist) What(site, level, what int) uint64 {
	if what <= 0 || what > z.numComponents || !z.inRange(site, level) {
		return 0
	}
	if level >= MaxLevels {
		return z.derived(tagWhat, site, level, what)
	}
	return z.what[z.cell(site, level)][what]
}

// Who is the key for the owner of the piece at (site, level).
func (z *Zobrist) Who(site, level, who int) uint64 {
	if who <= 0 || who > z.numPlayers || !z.inRange(site, level) {
		return 0
	}
	if level >= MaxLevels {
		return z.derived(tagWho, site, level, who)
	}
	return z.who[z.cell(site, level)][who]
}

// State is the key for a piece's local state.
func (z *Zobrist) State(site, level, v int) uint64 {
	if v == 0 || !z.inRange(site, level) {
		return 0
	}
	if level >= MaxLevels || !tabled(v) {
		return z.derived(tagState, site, level, v)
	}
	return z.state[z.cell(site, level)][v]
}

// Value is the key for a piece's value.
func (z *Zobrist) Value(site, level, v int) uint64 {
	if v == 0 || !z.inRange(site, level) {
		return 0
	}
	if level >= MaxLevels || !tabled(v) {
		return z.derived(tagValue, site, level, v)
	}
	return z.value[z.cell(site, level)][v]
}

// Count is the key for the piece count of a site.
func (z *Zobrist) Count(site, n int) uint64 {
	if n == 0 || site < 0 || site >= z.numSites {
		return 0
	}
	if !tabled(n) {
		return z.derived(tagCount, site, 0, n)
	}
	return z.count[site][n]
}

// Mover is the key folded into situational hashes for the player to move.
func (z *Zobrist) Mover(player int) uint64 {
	if player <= 0 || player > z.numPlayers {
		return 0
	}
	return z.mover[player]
}
