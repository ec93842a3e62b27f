package chessmg

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// FENStartPos is the FEN string for the standard initial chess position.
const FENStartPos = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

var ErrInvalidFEN = errors.New("invalid FEN")

// FromFEN parses text best-effort. A missing or malformed board or side
// field gives the empty position; later fields fall back to no castling, no
// en passant and clocks 0/1. Use ParseFEN when the text must be valid.
func FromFEN(text string) Position {
	p, _ := parseFEN(text, false)
	return p
}

// ParseFEN parses text strictly and reports the first problem found.
func ParseFEN(text string) (Position, error) {
	return parseFEN(text, true)
}

func parseFEN(text string, strict bool) (Position, error) {
	empty := NewEmptyPosition()
	fields := strings.Fields(text)
	minFields := 2
	if strict {
		minFields = 4
	}
	if len(fields) < minFields {
		return empty, fmt.Errorf("%w: want at least %d fields, got %d", ErrInvalidFEN, minFields, len(fields))
	}

	p := empty
	if err := p.parseBoard(fields[0]); err != nil {
		return empty, err
	}
	switch fields[1] {
	case "w":
		p.side = White
	case "b":
		p.side = Black
	default:
		return empty, fmt.Errorf("%w: side to move %q", ErrInvalidFEN, fields[1])
	}

	if len(fields) > 2 {
		cr, err := parseCastling(fields[2])
		if err != nil && strict {
			return empty, err
		}
		p.castling = cr
	}
	if len(fields) > 3 && fields[3] != "-" {
		sq, err := ParseSquare(fields[3])
		if err != nil {
			if strict {
				return empty, fmt.Errorf("%w: en passant: %v", ErrInvalidFEN, err)
			}
			sq = NoSquare
		}
		p.ep = sq
	}
	if len(fields) > 4 {
		n, err := strconv.Atoi(fields[4])
		if (err != nil || n < 0) && strict {
			return empty, fmt.Errorf("%w: halfmove clock %q", ErrInvalidFEN, fields[4])
		}
		if err == nil && n >= 0 {
			p.halfmove = n
		}
	}
	if len(fields) > 5 {
		n, err := strconv.Atoi(fields[5])
		if (err != nil || n < 1) && strict {
			return empty, fmt.Errorf("%w: fullmove number %q", ErrInvalidFEN, fields[5])
		}
		if err == nil && n >= 1 {
			p.fullmove = n
		}
	}
	p.recomputeOccupancy()
	return p, nil
}

func (p *Position) parseBoard(board string) error {
	ranks := strings.Split(board, "/")
	if len(ranks) != 8 {
		return fmt.Errorf("%w: want 8 ranks, got %d", ErrInvalidFEN, len(ranks))
	}
	for i, row := range ranks {
		rank := 7 - i
		file := 0
		for j := 0; j < len(row); j++ {
			ch := row[j]
			if ch >= '1' && ch <= '8' {
				file += int(ch - '0')
				continue
			}
			pt := pieceTypeFromLetter(ch)
			if pt == NoPieceType {
				return fmt.Errorf("%w: piece %q", ErrInvalidFEN, ch)
			}
			if file > 7 {
				return fmt.Errorf("%w: rank %d overflows", ErrInvalidFEN, rank+1)
			}
			c := White
			if ch >= 'a' {
				c = Black
			}
			p.place(c, pt, NewSquare(file, rank))
			file++
		}
		if file != 8 {
			return fmt.Errorf("%w: rank %d has %d files", ErrInvalidFEN, rank+1, file)
		}
	}
	return nil
}

func parseCastling(s string) (CastlingRights, error) {
	var cr CastlingRights
	if s == "-" {
		return cr, nil
	}
	var err error
	for i := 0; i < len(s); i++ {
		found := false
		for _, r := range castleRules {
			if r.letter == s[i] {
				cr |= r.right
				found = true
			}
		}
		if !found && err == nil {
			err = fmt.Errorf("%w: castling flag %q", ErrInvalidFEN, s[i])
		}
	}
	return cr, err
}

// ToFEN encodes all six FEN fields.
func (p *Position) ToFEN() string {
	var sb strings.Builder
	for rank := 7; rank >= 0; rank-- {
		gap := 0
		for file := 0; file < 8; file++ {
			ch := p.letterAt(NewSquare(file, rank))
			if ch == '.' {
				gap++
				continue
			}
			if gap > 0 {
				sb.WriteByte(byte('0' + gap))
				gap = 0
			}
			sb.WriteByte(ch)
		}
		if gap > 0 {
			sb.WriteByte(byte('0' + gap))
		}
		if rank > 0 {
			sb.WriteByte('/')
		}
	}
	fmt.Fprintf(&sb, " %s %s %s %d %d", p.side, p.castling, p.ep, p.halfmove, p.fullmove)
	return sb.String()
}
