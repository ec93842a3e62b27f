package chessmg

import "sync"

// AttackTables holds the precomputed leaper masks. Slider attacks are
// ray-cast on demand against the supplied occupancy.
type AttackTables struct {
	knight [64]Bitboard
	king   [64]Bitboard
	pawn   [2][64]Bitboard
}

var knightOffsets = [8][2]int{{1, 2}, {2, 1}, {2, -1}, {1, -2}, {-1, -2}, {-2, -1}, {-2, 1}, {-1, 2}}
var kingOffsets = [8][2]int{{1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1}, {0, -1}, {1, -1}}

// Attacks returns the process-wide tables, built on first use.
var Attacks = sync.OnceValue(NewAttackTables)

// NewAttackTables enumerates the fixed offsets for every square and drops
// anything that lands off the board.
func NewAttackTables() *AttackTables {
	t := &AttackTables{}
	for sq := Square(0); sq < 64; sq++ {
		t.knight[sq] = offsetMask(sq, knightOffsets[:])
		t.king[sq] = offsetMask(sq, kingOffsets[:])
		bb := SquareBB(sq)
		t.pawn[White][sq] = bb.NorthEast() | bb.NorthWest()
		t.pawn[Black][sq] = bb.SouthEast() | bb.SouthWest()
	}
	return t
}

func offsetMask(sq Square, offsets [][2]int) Bitboard {
	var mask Bitboard
	for _, o := range offsets {
		f, r := sq.File()+o[0], sq.Rank()+o[1]
		if f < 0 || f > 7 || r < 0 || r > 7 {
			continue
		}
		mask |= SquareBB(NewSquare(f, r))
	}
	return mask
}

func (t *AttackTables) Knight(sq Square) Bitboard { return t.knight[sq] }
func (t *AttackTables) King(sq Square) Bitboard   { return t.king[sq] }

// Pawn returns the squares a pawn of color c on sq attacks.
func (t *AttackTables) Pawn(c Color, sq Square) Bitboard { return t.pawn[c][sq] }

var (
	rookDirs   = [4]func(Bitboard) Bitboard{Bitboard.North, Bitboard.South, Bitboard.East, Bitboard.West}
	bishopDirs = [4]func(Bitboard) Bitboard{Bitboard.NorthEast, Bitboard.NorthWest, Bitboard.SouthEast, Bitboard.SouthWest}
)

func (t *AttackTables) Rook(sq Square, occupied Bitboard) Bitboard {
	return slide(sq, occupied, &rookDirs)
}

func (t *AttackTables) Bishop(sq Square, occupied Bitboard) Bitboard {
	return slide(sq, occupied, &bishopDirs)
}

func (t *AttackTables) Queen(sq Square, occupied Bitboard) Bitboard {
	return t.Rook(sq, occupied) | t.Bishop(sq, occupied)
}

// slide walks each direction until the edge or the first blocker, which is
// included so captures show up in the mask.
func slide(sq Square, occupied Bitboard, dirs *[4]func(Bitboard) Bitboard) Bitboard {
	var attacks Bitboard
	from := SquareBB(sq)
	for _, step := range dirs {
		for ray := step(from); ray != 0; ray = step(ray) {
			attacks |= ray
			if ray&occupied != 0 {
				break
			}
		}
	}
	return attacks
}
