package chessmg

// promotionOrder is the order promotions are emitted in. All four pieces are
// generated.
var promotionOrder = [4]PieceType{Queen, Rook, Bishop, Knight}

// GeneratePseudoLegalMoves appends every move that obeys piece geometry and
// occupancy to buf, without checking king safety. Order is fixed: pawns,
// knights, bishops, rooks, queens, king, each by ascending origin square.
func (p *Position) GeneratePseudoLegalMoves(buf []Move) []Move {
	t := Attacks()
	us := p.side
	own := p.occupancy[us]
	buf = p.appendPawnMoves(t, buf, false)
	buf = appendLeaperMoves(buf, p.pieces[us][Knight-1], own, t.Knight)
	for bb := p.pieces[us][Bishop-1]; bb != 0; {
		from := bb.PopLSB()
		buf = appendTargets(buf, from, t.Bishop(from, p.all)&^own)
	}
	for bb := p.pieces[us][Rook-1]; bb != 0; {
		from := bb.PopLSB()
		buf = appendTargets(buf, from, t.Rook(from, p.all)&^own)
	}
	for bb := p.pieces[us][Queen-1]; bb != 0; {
		from := bb.PopLSB()
		buf = appendTargets(buf, from, t.Queen(from, p.all)&^own)
	}
	buf = appendLeaperMoves(buf, p.pieces[us][King-1], own, t.King)
	return p.appendCastling(buf)
}

// GenerateLegalMoves returns the pseudo-legal moves that do not leave the
// mover's king in check, in generation order.
func (p *Position) GenerateLegalMoves() []Move {
	return p.filterLegal(p.GeneratePseudoLegalMoves(make([]Move, 0, 48)))
}

// GenerateCaptures returns the legal captures, en passant included.
// Quiet promotions are not captures and are left out.
func (p *Position) GenerateCaptures() []Move {
	t := Attacks()
	us := p.side
	them := p.occupancy[us.Other()]
	buf := p.appendPawnMoves(t, make([]Move, 0, 16), true)
	buf = appendLeaperMoves(buf, p.pieces[us][Knight-1], ^them, t.Knight)
	for bb := p.pieces[us][Bishop-1]; bb != 0; {
		from := bb.PopLSB()
		buf = appendTargets(buf, from, t.Bishop(from, p.all)&them)
	}
	for bb := p.pieces[us][Rook-1]; bb != 0; {
		from := bb.PopLSB()
		buf = appendTargets(buf, from, t.Rook(from, p.all)&them)
	}
	for bb := p.pieces[us][Queen-1]; bb != 0; {
		from := bb.PopLSB()
		buf = appendTargets(buf, from, t.Queen(from, p.all)&them)
	}
	buf = appendLeaperMoves(buf, p.pieces[us][King-1], ^them, t.King)
	return p.filterLegal(buf)
}

// HasLegalMoves stops at the first legal move.
func (p *Position) HasLegalMoves() bool {
	for _, m := range p.GeneratePseudoLegalMoves(make([]Move, 0, 48)) {
		if p.isLegal(m) {
			return true
		}
	}
	return false
}

// IsCapture reports whether m takes a piece, en passant included.
func (p *Position) IsCapture(m Move) bool {
	if p.occupancy[p.side.Other()].Has(m.To) {
		return true
	}
	return m.To == p.ep && p.pieces[p.side][Pawn-1].Has(m.From)
}

// filterLegal keeps moves in place, preserving order.
func (p *Position) filterLegal(moves []Move) []Move {
	legal := moves[:0]
	for _, m := range moves {
		if p.isLegal(m) {
			legal = append(legal, m)
		}
	}
	return legal
}

func (p *Position) isLegal(m Move) bool {
	child := *p
	child.ApplyMove(m)
	return !child.IsInCheck(p.side)
}

func appendTargets(buf []Move, from Square, targets Bitboard) []Move {
	for targets != 0 {
		buf = append(buf, Move{From: from, To: targets.PopLSB()})
	}
	return buf
}

func appendLeaperMoves(buf []Move, pieces, own Bitboard, attacks func(Square) Bitboard) []Move {
	for pieces != 0 {
		from := pieces.PopLSB()
		buf = appendTargets(buf, from, attacks(from)&^own)
	}
	return buf
}

func appendPawnMove(buf []Move, from, to Square) []Move {
	if to.Rank() == 0 || to.Rank() == 7 {
		for _, pt := range promotionOrder {
			buf = append(buf, Move{From: from, To: to, Promotion: pt})
		}
		return buf
	}
	return append(buf, Move{From: from, To: to})
}

// appendPawnMoves generates pushes, double pushes, captures, en passant and
// promotions. With capturesOnly set it skips every non-capturing move.
func (p *Position) appendPawnMoves(t *AttackTables, buf []Move, capturesOnly bool) []Move {
	us := p.side
	enemy := p.occupancy[us.Other()]
	epBB := SquareBB(p.ep)
	forward, home := 8, Rank2
	if us == Black {
		forward, home = -8, Rank7
	}
	for pawns := p.pieces[us][Pawn-1]; pawns != 0; {
		from := pawns.PopLSB()
		if !capturesOnly {
			one := from + Square(forward)
			if !p.all.Has(one) {
				buf = appendPawnMove(buf, from, one)
				two := one + Square(forward)
				if home.Has(from) && !p.all.Has(two) {
					buf = append(buf, Move{From: from, To: two})
				}
			}
		}
		for caps := t.Pawn(us, from) & (enemy | epBB); caps != 0; {
			buf = appendPawnMove(buf, from, caps.PopLSB())
		}
	}
	return buf
}

// appendCastling adds castles whose right is held, whose path is empty and
// whose king neither starts in nor passes through check. The landing square
// is left to the legality filter.
func (p *Position) appendCastling(buf []Move) []Move {
	us := p.side
	for _, r := range castleRules {
		if r.color != us || p.castling&r.right == 0 {
			continue
		}
		if !p.pieces[us][King-1].Has(r.kingFrom) || !p.pieces[us][Rook-1].Has(r.rookFrom) {
			continue
		}
		if p.all&r.between != 0 {
			continue
		}
		them := us.Other()
		if p.IsSquareAttacked(r.kingFrom, them) || p.IsSquareAttacked(r.transit, them) {
			continue
		}
		buf = append(buf, Move{From: r.kingFrom, To: r.kingTo})
	}
	return buf
}
