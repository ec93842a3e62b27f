package chessmg

// Perft counts the leaf nodes reachable in exactly depth plies.
func Perft(p *Position, depth int) uint64 {
	if depth <= 0 {
		return 1
	}
	moves := p.GenerateLegalMoves()
	if depth == 1 {
		return uint64(len(moves))
	}
	var nodes uint64
	for _, m := range moves {
		child := *p
		child.ApplyMove(m)
		nodes += Perft(&child, depth-1)
	}
	return nodes
}

// PerftDivide returns the perft count below each root move.
func PerftDivide(p *Position, depth int) map[Move]uint64 {
	out := make(map[Move]uint64)
	if depth <= 0 {
		return out
	}
	for _, m := range p.GenerateLegalMoves() {
		child := *p
		child.ApplyMove(m)
		out[m] = Perft(&child, depth-1)
	}
	return out
}
