package chessmg

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidMove = errors.New("invalid move text")
	ErrIllegalMove = errors.New("illegal move")
)

// Move is a plain from/to pair with an optional promotion piece. It means
// nothing without the position it was generated for.
type Move struct {
	From      Square
	To        Square
	Promotion PieceType
}

// NullMove is the zero Move. No generated move has From == To.
var NullMove Move

func (m Move) IsNull() bool { return m.From == m.To }

// String renders coordinate notation, e.g. "e2e4" or "e7e8q".
func (m Move) String() string {
	if m.IsNull() {
		return "0000"
	}
	s := m.From.String() + m.To.String()
	if m.Promotion != NoPieceType {
		s += string(m.Promotion.Letter())
	}
	return s
}

// ParseMove reads coordinate notation. It does not check legality.
func ParseMove(s string) (Move, error) {
	if len(s) != 4 && len(s) != 5 {
		return NullMove, fmt.Errorf("%w: %q", ErrInvalidMove, s)
	}
	from, err := ParseSquare(s[0:2])
	if err != nil {
		return NullMove, fmt.Errorf("%w: %q: %v", ErrInvalidMove, s, err)
	}
	to, err := ParseSquare(s[2:4])
	if err != nil {
		return NullMove, fmt.Errorf("%w: %q: %v", ErrInvalidMove, s, err)
	}
	m := Move{From: from, To: to}
	if len(s) == 5 {
		m.Promotion = pieceTypeFromLetter(s[4])
		if m.Promotion < Knight || m.Promotion > Queen {
			return NullMove, fmt.Errorf("%w: %q: promotion piece", ErrInvalidMove, s)
		}
	}
	return m, nil
}
