package chessmg

// Position is a full board state. It is a plain value: copying it gives an
// independent position, which is how the search explores children.
type Position struct {
	// pieces[color][type-1]
	pieces [2][6]Bitboard

	// Derived from pieces by recomputeOccupancy, never set directly.
	occupancy [2]Bitboard
	all       Bitboard

	side     Color
	castling CastlingRights
	ep       Square

	halfmove int
	fullmove int
}

// NewEmptyPosition returns a board without pieces, White to move.
func NewEmptyPosition() Position {
	return Position{side: White, ep: NoSquare, fullmove: 1}
}

// StartPosition returns the standard initial position.
func StartPosition() Position {
	return FromFEN(FENStartPos)
}

func (p *Position) SideToMove() Color              { return p.side }
func (p *Position) CastlingRights() CastlingRights { return p.castling }
func (p *Position) EnPassant() Square              { return p.ep }
func (p *Position) HalfmoveClock() int             { return p.halfmove }
func (p *Position) FullmoveNumber() int            { return p.fullmove }

// Pieces returns the bitboard of color c's pieces of type pt.
func (p *Position) Pieces(c Color, pt PieceType) Bitboard {
	if pt == NoPieceType || pt > King {
		return Empty
	}
	return p.pieces[c][pt-1]
}

// Occupancy returns all squares held by color c.
func (p *Position) Occupancy(c Color) Bitboard { return p.occupancy[c] }

// Occupied returns every occupied square.
func (p *Position) Occupied() Bitboard { return p.all }

// PieceAt returns the type on sq, or NoPieceType when the square is empty.
func (p *Position) PieceAt(sq Square) PieceType {
	bb := SquareBB(sq)
	if p.all&bb == 0 {
		return NoPieceType
	}
	c := p.ColorOn(sq)
	for i, pieces := range p.pieces[c] {
		if pieces&bb != 0 {
			return PieceType(i + 1)
		}
	}
	return NoPieceType
}

// ColorOn returns the owner of the piece on sq. Empty squares report White.
func (p *Position) ColorOn(sq Square) Color {
	if p.occupancy[Black].Has(sq) {
		return Black
	}
	return White
}

// KingSquare returns color c's king, NoSquare if it has none.
func (p *Position) KingSquare(c Color) Square {
	return p.pieces[c][King-1].LSB()
}

// IsInCheck reports whether color c's king is attacked. A side without a
// king is never in check.
func (p *Position) IsInCheck(c Color) bool {
	ksq := p.KingSquare(c)
	if ksq == NoSquare {
		return false
	}
	return p.IsSquareAttacked(ksq, c.Other())
}

// IsSquareAttacked reports whether any piece of color by attacks sq.
func (p *Position) IsSquareAttacked(sq Square, by Color) bool {
	t := Attacks()
	enemy := &p.pieces[by]
	// a pawn of ours on sq would capture onto exactly the enemy pawns hitting sq
	if t.Pawn(by.Other(), sq)&enemy[Pawn-1] != 0 {
		return true
	}
	if t.Knight(sq)&enemy[Knight-1] != 0 {
		return true
	}
	if t.King(sq)&enemy[King-1] != 0 {
		return true
	}
	queens := enemy[Queen-1]
	if t.Rook(sq, p.all)&(enemy[Rook-1]|queens) != 0 {
		return true
	}
	return t.Bishop(sq, p.all)&(enemy[Bishop-1]|queens) != 0
}

// place puts a piece on an empty square. Callers must finish with
// recomputeOccupancy.
func (p *Position) place(c Color, pt PieceType, sq Square) {
	p.pieces[c][pt-1] |= SquareBB(sq)
}

// clear removes whatever stands on sq from every piece bitboard.
func (p *Position) clear(sq Square) {
	mask := ^SquareBB(sq)
	for c := range p.pieces {
		for i := range p.pieces[c] {
			p.pieces[c][i] &= mask
		}
	}
}

// recomputeOccupancy rebuilds the derived occupancy sets. Every mutator ends
// with it.
func (p *Position) recomputeOccupancy() {
	for c := range p.pieces {
		var occ Bitboard
		for _, bb := range p.pieces[c] {
			occ |= bb
		}
		p.occupancy[c] = occ
	}
	p.all = p.occupancy[White] | p.occupancy[Black]
}

// Validate checks that no two pieces share a square and that the cached
// occupancy matches the piece sets.
func (p *Position) Validate() bool {
	var seen Bitboard
	for c := range p.pieces {
		for _, bb := range p.pieces[c] {
			if seen&bb != 0 {
				return false
			}
			seen |= bb
		}
	}
	check := *p
	check.recomputeOccupancy()
	return check.occupancy == p.occupancy && check.all == p.all && check.all == seen
}

// String draws the board rank 8 first using FEN letters.
func (p *Position) String() string {
	buf := make([]byte, 0, 72)
	for rank := 7; rank >= 0; rank-- {
		for file := 0; file < 8; file++ {
			buf = append(buf, p.letterAt(NewSquare(file, rank)))
		}
		buf = append(buf, '\n')
	}
	return string(buf)
}

func (p *Position) letterAt(sq Square) byte {
	pt := p.PieceAt(sq)
	if pt == NoPieceType {
		return '.'
	}
	ch := pt.Letter()
	if p.ColorOn(sq) == White {
		ch -= 'a' - 'A'
	}
	return ch
}
