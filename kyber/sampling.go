package kyber

import (
	"fmt"
	"io"
)

// xofBlockSize is the chunk size for draining the matrix XOF: the
// SHAKE-128 rate, which is also a multiple of the 3-byte candidate
// width used by rejection sampling.
const xofBlockSize = 168

// SampleUniform rejection-samples a polynomial with coefficients
// uniformly distributed mod Q from the given XOF stream. Each 3-byte
// block yields two 12-bit candidates; candidates >= Q are discarded.
func SampleUniform(xof io.Reader) (*Poly, error) {
	var p Poly
	var buf [xofBlockSize]byte

	i := 0
	for i < N {
		if _, err := io.ReadFull(xof, buf[:]); err != nil {
			return nil, fmt.Errorf("draining xof: %w", err)
		}

		for off := 0; off < len(buf) && i < N; off += 3 {
			d1 := uint16(buf[off]) | uint16(buf[off+1]&0x0F)<<8
			d2 := uint16(buf[off+1]>>4) | uint16(buf[off+2])<<4

			if d1 < Q {
				p[i] = int16(d1)
				i++
			}
			if d2 < Q && i < N {
				p[i] = int16(d2)
				i++
			}
		}
	}

	return &p, nil
}

// ExpandMatrix derives the k-by-k public matrix from seed, one
// polynomial per (row, column) position. With transposed set, entry
// (i, j) is sampled at position (j, i), which is how the two sides of a
// key exchange derive A and A^T from one shared seed.
func ExpandMatrix(prim Primitives, seed []byte, k int, transposed bool) ([][]*Poly, error) {
	a := make([][]*Poly, k)
	for i := 0; i < k; i++ {
		a[i] = make([]*Poly, k)
		for j := 0; j < k; j++ {
			pos := MatrixPosition{Row: uint8(i), Col: uint8(j)}
			if transposed {
				pos = MatrixPosition{Row: uint8(j), Col: uint8(i)}
			}

			p, err := SampleUniform(prim.XOF(seed, pos))
			if err != nil {
				return nil, fmt.Errorf("matrix entry (%d,%d): %w", i, j, err)
			}
			a[i][j] = p
		}
	}
	return a, nil
}

// SampleNoise samples a polynomial from the centered binomial
// distribution with parameter eta, keyed by (seed, nonce) through the
// family PRF. Supported eta values are 2 and 3.
func SampleNoise(prim Primitives, seed []byte, nonce byte, eta int) (*Poly, error) {
	if eta != 2 && eta != 3 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidEta, eta)
	}

	buf := prim.PRF(seed, nonce, 64*eta)
	return cbd(buf, eta), nil
}

// cbd computes the centered binomial distribution over the PRF output:
// each coefficient is the difference of two eta-bit popcounts.
func cbd(buf []byte, eta int) *Poly {
	bit := func(i int) int16 {
		return int16(buf[i>>3]>>(uint(i)&7)) & 1
	}

	var p Poly
	for i := 0; i < N; i++ {
		base := 2 * eta * i
		var a, b int16
		for j := 0; j < eta; j++ {
			a += bit(base + j)
			b += bit(base + eta + j)
		}
		p[i] = a - b
	}
	return &p
}
