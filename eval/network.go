package eval

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/klauspost/compress/zstd"

	"superengine/chessmg"
)

// Network layout, all little-endian int16 in this order:
//
//	w1    [Inputs][Hidden1]
//	w2    [Hidden1][Hidden2]
//	bias2 [Hidden2]
//	w3    [Hidden2]
const (
	Inputs  = 768
	Hidden1 = 512
	Hidden2 = 256

	// Scale is the factor the weights were quantized with.
	Scale = 1000

	weightCount = Inputs*Hidden1 + Hidden1*Hidden2 + Hidden2 + Hidden2
	// NetworkSize is the exact blob size in bytes.
	NetworkSize = weightCount * 2
)

var ErrNetworkSize = errors.New("network blob has the wrong size")

// Network is a two hidden layer feed-forward scorer over 768 piece-square
// inputs (color*384 + (type-1)*64 + square). It is read-only once loaded and
// safe for concurrent use.
type Network struct {
	w1    []int16
	w2    []int16
	bias2 []int16
	w3    []int16
}

// LoadNetwork reads exactly NetworkSize bytes from r.
func LoadNetwork(r io.Reader) (*Network, error) {
	raw := make([]int16, weightCount)
	if err := binary.Read(r, binary.LittleEndian, raw); err != nil {
		if errors.Is(err, io.ErrUnexpectedEOF) || errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: want %d bytes", ErrNetworkSize, NetworkSize)
		}
		return nil, fmt.Errorf("read network: %w", err)
	}
	var extra [1]byte
	if n, _ := r.Read(extra[:]); n > 0 {
		return nil, fmt.Errorf("%w: trailing data after %d bytes", ErrNetworkSize, NetworkSize)
	}
	n := &Network{}
	rest := raw
	n.w1, rest = rest[:Inputs*Hidden1], rest[Inputs*Hidden1:]
	n.w2, rest = rest[:Hidden1*Hidden2], rest[Hidden1*Hidden2:]
	n.bias2, n.w3 = rest[:Hidden2], rest[Hidden2:]
	return n, nil
}

// LoadNetworkFile loads a blob from disk. Files ending in .zst are
// decompressed on the fly.
func LoadNetworkFile(path string) (*Network, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var r io.Reader = f
	if strings.HasSuffix(path, ".zst") {
		dec, err := zstd.NewReader(f, zstd.WithDecoderConcurrency(1))
		if err != nil {
			return nil, fmt.Errorf("zstd reader: %w", err)
		}
		defer dec.Close()
		r = dec
	}
	n, err := LoadNetwork(r)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return n, nil
}

func featureIndex(c chessmg.Color, pt chessmg.PieceType, sq chessmg.Square) int {
	return int(c)*384 + int(pt-1)*64 + int(sq)
}

// Evaluate runs the forward pass from White's point of view and flips the
// sign for Black.
func (n *Network) Evaluate(p *chessmg.Position) int {
	var acc1 [Hidden1]int64
	for c := chessmg.White; c <= chessmg.Black; c++ {
		for pt := chessmg.Pawn; pt <= chessmg.King; pt++ {
			for bb := p.Pieces(c, pt); bb != 0; {
				row := n.w1[featureIndex(c, pt, bb.PopLSB())*Hidden1:]
				for i := range acc1 {
					acc1[i] += int64(row[i])
				}
			}
		}
	}

	var acc2 [Hidden2]int64
	for j := range acc2 {
		acc2[j] = int64(n.bias2[j]) * Scale
	}
	for i, h := range acc1 {
		if h <= 0 {
			continue
		}
		row := n.w2[i*Hidden2 : (i+1)*Hidden2]
		for j := range acc2 {
			acc2[j] += h * int64(row[j])
		}
	}

	var out int64
	for j, v := range acc2 {
		if v <= 0 {
			continue
		}
		out += (v / Scale) * int64(n.w3[j])
	}
	score := int(out / (Scale * Scale))
	if p.SideToMove() == chessmg.Black {
		return -score
	}
	return score
}
