package chessmg

import (
	"math/rand"
	"testing"

	"github.com/dylhunn/dragontoothmg"
)

func TestLeaperTablesAtEdges(t *testing.T) {
	tb := Attacks()
	cases := []struct {
		name string
		got  Bitboard
		want int
	}{
		{"knight a1", tb.Knight(A1), 2},
		{"knight h1", tb.Knight(H1), 2},
		{"knight h8", tb.Knight(H8), 2},
		{"knight d4", tb.Knight(NewSquare(3, 3)), 8},
		{"knight g7", tb.Knight(NewSquare(6, 6)), 4},
		{"king a1", tb.King(A1), 3},
		{"king h4", tb.King(NewSquare(7, 3)), 5},
		{"king e4", tb.King(NewSquare(4, 3)), 8},
		{"white pawn a2", tb.Pawn(White, NewSquare(0, 1)), 1},
		{"white pawn h2", tb.Pawn(White, NewSquare(7, 1)), 1},
		{"black pawn d7", tb.Pawn(Black, NewSquare(3, 6)), 2},
	}
	for _, c := range cases {
		if n := c.got.Count(); n != c.want {
			t.Errorf("%s: got %d targets want %d\n%s", c.name, n, c.want, c.got)
		}
	}
	// a knight on h-file must never reach the a- or b-file
	for rank := 0; rank < 8; rank++ {
		if tb.Knight(NewSquare(7, rank))&(FileA|FileB) != 0 {
			t.Fatalf("knight on h%d wraps to the queen side", rank+1)
		}
		if tb.King(NewSquare(0, rank))&FileH != 0 {
			t.Fatalf("king on a%d wraps to the h-file", rank+1)
		}
	}
}

func TestAttacksIsSingleton(t *testing.T) {
	if Attacks() != Attacks() {
		t.Fatalf("Attacks should return the same tables every call")
	}
}

func TestSliderRaysStopAtFirstBlocker(t *testing.T) {
	tb := Attacks()
	d4 := NewSquare(3, 3)
	occ := SquareBB(NewSquare(3, 5)) | SquareBB(NewSquare(5, 3)) // d6, f4
	rook := tb.Rook(d4, occ)
	if !rook.Has(NewSquare(3, 5)) || rook.Has(NewSquare(3, 6)) {
		t.Fatalf("rook ray north should include d6 and stop:\n%s", rook)
	}
	if !rook.Has(NewSquare(5, 3)) || rook.Has(NewSquare(6, 3)) {
		t.Fatalf("rook ray east should include f4 and stop:\n%s", rook)
	}
	if n := tb.Rook(A1, Empty).Count(); n != 14 {
		t.Fatalf("rook a1 on empty board: got %d want 14", n)
	}
	if n := tb.Bishop(H1, Empty).Count(); n != 7 {
		t.Fatalf("bishop h1 on empty board: got %d want 7", n)
	}
	if n := tb.Queen(d4, Empty).Count(); n != 27 {
		t.Fatalf("queen d4 on empty board: got %d want 27", n)
	}
}

// Ray casting must agree with dragontoothmg's magic bitboards for any
// occupancy.
func TestSlidersMatchMagicBitboards(t *testing.T) {
	tb := Attacks()
	rnd := rand.New(rand.NewSource(7))
	for i := 0; i < 2000; i++ {
		occ := rnd.Uint64() & rnd.Uint64()
		sq := Square(rnd.Intn(64))
		occ &^= 1 << uint(sq)
		if got, want := uint64(tb.Rook(sq, Bitboard(occ))), dragontoothmg.CalculateRookMoveBitboard(uint8(sq), occ); got != want {
			t.Fatalf("rook %v occ=%x: got %x want %x", sq, occ, got, want)
		}
		if got, want := uint64(tb.Bishop(sq, Bitboard(occ))), dragontoothmg.CalculateBishopMoveBitboard(uint8(sq), occ); got != want {
			t.Fatalf("bishop %v occ=%x: got %x want %x", sq, occ, got, want)
		}
	}
}
