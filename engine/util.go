package engine

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// Min returns the smaller of x or y.
func Min[T constraints.Ordered](x, y T) T {
	if x < y {
		return x
	}
	return y
}

// Max returns the larger of x or y.
func Max[T constraints.Ordered](x, y T) T {
	if x > y {
		return x
	}
	return y
}

// Clamp restricts f to the inclusive range [low, high].
func Clamp[T constraints.Ordered](f, low, high T) T {
	return Min(Max(f, low), high)
}

func Abs[T constraints.Signed](x T) T {
	if x < 0 {
		return -x
	}
	return x
}

// ScoreString formats a score the way engines report it: "cp N" or
// "mate N", negative N when the side to move is getting mated.
func ScoreString(score int) string {
	if Abs(score) <= MateThreshold {
		return fmt.Sprintf("cp %d", score)
	}
	plies := Max(MateScore-Abs(score), 0)
	moves := (plies + 1) / 2
	if score < 0 {
		moves = -moves
	}
	return fmt.Sprintf("mate %d", moves)
}
