package chessmg

import "testing"

func TestShiftsDoNotWrapFiles(t *testing.T) {
	h4 := SquareBB(NewSquare(7, 3))
	a4 := SquareBB(NewSquare(0, 3))

	if got := h4.East(); got != Empty {
		t.Fatalf("h4 east: got\n%s", got)
	}
	if got := h4.NorthEast(); got != Empty {
		t.Fatalf("h4 northeast: got\n%s", got)
	}
	if got := h4.SouthEast(); got != Empty {
		t.Fatalf("h4 southeast: got\n%s", got)
	}
	if got := a4.West(); got != Empty {
		t.Fatalf("a4 west: got\n%s", got)
	}
	if got := a4.NorthWest(); got != Empty {
		t.Fatalf("a4 northwest: got\n%s", got)
	}
	if got := a4.SouthWest(); got != Empty {
		t.Fatalf("a4 southwest: got\n%s", got)
	}

	if got, want := h4.West(), SquareBB(NewSquare(6, 3)); got != want {
		t.Fatalf("h4 west: got %v want %v", got.LSB(), want.LSB())
	}
	if got, want := a4.NorthEast(), SquareBB(NewSquare(1, 4)); got != want {
		t.Fatalf("a4 northeast: got %v want %v", got.LSB(), want.LSB())
	}
	if got := SquareBB(H8).North(); got != Empty {
		t.Fatalf("h8 north should fall off the board")
	}
	if got := SquareBB(A1).South(); got != Empty {
		t.Fatalf("a1 south should fall off the board")
	}
}

func TestPopLSB(t *testing.T) {
	bb := SquareBB(C1) | SquareBB(NewSquare(4, 3)) | SquareBB(H8)
	want := []Square{C1, NewSquare(4, 3), H8}
	for i, w := range want {
		if got := bb.PopLSB(); got != w {
			t.Fatalf("pop %d: got %v want %v", i, got, w)
		}
	}
	if bb != Empty {
		t.Fatalf("expected empty set, got %x", uint64(bb))
	}
	if got := bb.LSB(); got != NoSquare {
		t.Fatalf("LSB of empty set: got %v", got)
	}
	if SquareBB(NoSquare) != Empty {
		t.Fatalf("NoSquare must map to the empty set")
	}
}

func TestSquareNames(t *testing.T) {
	for sq := Square(0); sq < 64; sq++ {
		back, err := ParseSquare(sq.String())
		if err != nil || back != sq {
			t.Fatalf("square %d: %q parsed as %v (%v)", sq, sq.String(), back, err)
		}
	}
	if _, err := ParseSquare("i9"); err == nil {
		t.Fatalf("expected error for i9")
	}
}
