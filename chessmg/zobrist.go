package chessmg

import "math/rand"

var (
	zobristPiece     [2][6][64]uint64
	zobristCastle    [16]uint64
	zobristEnPassant [8]uint64
	zobristSide      uint64
)

func init() {
	// fixed seed so hashes are stable across runs
	rnd := rand.New(rand.NewSource(0xC0DE))
	for c := range zobristPiece {
		for pt := range zobristPiece[c] {
			for sq := range zobristPiece[c][pt] {
				zobristPiece[c][pt][sq] = rnd.Uint64()
			}
		}
	}
	for cr := range zobristCastle {
		zobristCastle[cr] = rnd.Uint64()
	}
	for f := range zobristEnPassant {
		zobristEnPassant[f] = rnd.Uint64()
	}
	zobristSide = rnd.Uint64()
}

// Hash returns the Zobrist fingerprint of the position. It is computed from
// scratch; positions are copied too often for an incremental key to pay off.
func (p *Position) Hash() uint64 {
	var key uint64
	for c := range p.pieces {
		for pt, bb := range p.pieces[c] {
			for bb != 0 {
				key ^= zobristPiece[c][pt][bb.PopLSB()]
			}
		}
	}
	if p.side == Black {
		key ^= zobristSide
	}
	key ^= zobristCastle[p.castling&AllCastling]
	if p.ep != NoSquare {
		key ^= zobristEnPassant[p.ep.File()]
	}
	return key
}
