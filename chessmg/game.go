package chessmg

import "fmt"

// NewPosition builds the position a driver asks for: "startpos" or a FEN,
// followed by moves in coordinate notation. Each move is matched against the
// legal moves of the position it is played in.
func NewPosition(fenOrStartpos string, moves []string) (Position, error) {
	var p Position
	if fenOrStartpos == "" || fenOrStartpos == "startpos" {
		p = StartPosition()
	} else {
		var err error
		if p, err = ParseFEN(fenOrStartpos); err != nil {
			return Position{}, err
		}
	}
	for i, text := range moves {
		m, err := ParseMove(text)
		if err != nil {
			return Position{}, fmt.Errorf("move %d: %w", i+1, err)
		}
		if !p.hasLegal(m) {
			return Position{}, fmt.Errorf("move %d: %w: %s in %s", i+1, ErrIllegalMove, text, p.ToFEN())
		}
		p.ApplyMove(m)
	}
	return p, nil
}

func (p *Position) hasLegal(m Move) bool {
	for _, legal := range p.GenerateLegalMoves() {
		if legal == m {
			return true
		}
	}
	return false
}
