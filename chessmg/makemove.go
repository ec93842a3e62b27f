package chessmg

type castleRule struct {
	right    CastlingRights
	color    Color
	letter   byte
	kingFrom Square
	kingTo   Square
	rookFrom Square
	rookTo   Square
	// between must be empty, transit must not be attacked
	between Bitboard
	transit Square
}

var castleRules = [4]castleRule{
	{WhiteKingSide, White, 'K', E1, G1, H1, F1, SquareBB(F1) | SquareBB(G1), F1},
	{WhiteQueenSide, White, 'Q', E1, C1, A1, D1, SquareBB(B1) | SquareBB(C1) | SquareBB(D1), D1},
	{BlackKingSide, Black, 'k', E8, G8, H8, F8, SquareBB(F8) | SquareBB(G8), F8},
	{BlackQueenSide, Black, 'q', E8, C8, A8, D8, SquareBB(B8) | SquareBB(C8) | SquareBB(D8), D8},
}

// rookRight returns the castling right tied to a rook home square.
func rookRight(sq Square) CastlingRights {
	for _, r := range castleRules {
		if r.rookFrom == sq {
			return r.right
		}
	}
	return NoCastling
}

func kingRights(c Color) CastlingRights {
	if c == White {
		return WhiteKingSide | WhiteQueenSide
	}
	return BlackKingSide | BlackQueenSide
}

// ApplyMove plays m, which must come from the move generator for this exact
// position. Anything else leaves the position undefined.
func (p *Position) ApplyMove(m Move) {
	us, them := p.side, p.side.Other()
	from, to := m.From, m.To
	moving := p.PieceAt(from)

	ep := p.ep
	p.ep = NoSquare

	captured := false
	if moving == Pawn && to == ep {
		behind := to - 8
		if us == Black {
			behind = to + 8
		}
		p.pieces[them][Pawn-1] &^= SquareBB(behind)
		captured = true
	}

	if p.occupancy[them].Has(to) {
		p.clear(to)
		captured = true
	}

	switch moving {
	case King:
		p.castling &^= kingRights(us)
	case Rook:
		if r := rookRight(from); r != NoCastling && castleOwner(r) == us {
			p.castling &^= r
		}
	}
	if captured {
		if r := rookRight(to); r != NoCastling && castleOwner(r) == them {
			p.castling &^= r
		}
	}

	if moving == King {
		for _, r := range castleRules {
			if r.color == us && from == r.kingFrom && to == r.kingTo {
				p.pieces[us][Rook-1] &^= SquareBB(r.rookFrom)
				p.place(us, Rook, r.rookTo)
				break
			}
		}
	}

	p.pieces[us][moving-1] &^= SquareBB(from)
	if m.Promotion != NoPieceType {
		p.place(us, m.Promotion, to)
	} else {
		p.place(us, moving, to)
	}

	if moving == Pawn && (to-from == 16 || from-to == 16) {
		p.ep = (from + to) / 2
	}

	p.recomputeOccupancy()

	if moving == Pawn || captured {
		p.halfmove = 0
	} else {
		p.halfmove++
	}
	if us == Black {
		p.fullmove++
	}
	p.side = them
}

// PassTurn hands the move to the opponent without moving a piece. The search
// uses it for null-move pruning.
func (p *Position) PassTurn() {
	p.ep = NoSquare
	p.recomputeOccupancy()
	p.side = p.side.Other()
}

func castleOwner(r CastlingRights) Color {
	if r&(BlackKingSide|BlackQueenSide) != 0 {
		return Black
	}
	return White
}
