package kyber

import (
	"errors"
	"testing"
)

func TestSampleUniform_Range(t *testing.T) {
	for _, mode := range []Mode{ModeModern, Mode90s} {
		t.Run(mode.String(), func(t *testing.T) {
			prim := mustPrimitives(t, mode)

			p, err := SampleUniform(prim.XOF(testSeed, MatrixPosition{}))
			if err != nil {
				t.Fatalf("SampleUniform() error = %v", err)
			}

			for i, c := range p {
				if c < 0 || c >= Q {
					t.Fatalf("coefficient %d = %d, outside [0, %d)", i, c, Q)
				}
			}
		})
	}
}

func TestSampleUniform_Deterministic(t *testing.T) {
	prim := mustPrimitives(t, ModeModern)
	pos := MatrixPosition{Row: 2, Col: 3}

	a, err := SampleUniform(prim.XOF(testSeed, pos))
	if err != nil {
		t.Fatal(err)
	}
	b, err := SampleUniform(prim.XOF(testSeed, pos))
	if err != nil {
		t.Fatal(err)
	}

	if *a != *b {
		t.Error("identical (seed, position) produced different polynomials")
	}
}

func TestSampleUniform_PositionsDiffer(t *testing.T) {
	prim := mustPrimitives(t, ModeModern)

	a, err := SampleUniform(prim.XOF(testSeed, MatrixPosition{Row: 0, Col: 0}))
	if err != nil {
		t.Fatal(err)
	}
	b, err := SampleUniform(prim.XOF(testSeed, MatrixPosition{Row: 0, Col: 1}))
	if err != nil {
		t.Fatal(err)
	}

	if *a == *b {
		t.Error("different positions produced identical polynomials")
	}
}

func TestExpandMatrix(t *testing.T) {
	const k = 3

	for _, mode := range []Mode{ModeModern, Mode90s} {
		t.Run(mode.String(), func(t *testing.T) {
			prim := mustPrimitives(t, mode)

			a, err := ExpandMatrix(prim, testSeed, k, false)
			if err != nil {
				t.Fatalf("ExpandMatrix() error = %v", err)
			}

			if len(a) != k {
				t.Fatalf("matrix has %d rows, want %d", len(a), k)
			}
			for i := range a {
				if len(a[i]) != k {
					t.Fatalf("row %d has %d entries, want %d", i, len(a[i]), k)
				}
			}

			// Both sides expanding the same seed must agree entry by entry.
			again, err := ExpandMatrix(prim, testSeed, k, false)
			if err != nil {
				t.Fatal(err)
			}
			for i := 0; i < k; i++ {
				for j := 0; j < k; j++ {
					if *a[i][j] != *again[i][j] {
						t.Fatalf("entry (%d,%d) not reproducible", i, j)
					}
				}
			}
		})
	}
}

func TestExpandMatrix_Transposed(t *testing.T) {
	const k = 2
	prim := mustPrimitives(t, ModeModern)

	a, err := ExpandMatrix(prim, testSeed, k, false)
	if err != nil {
		t.Fatal(err)
	}
	at, err := ExpandMatrix(prim, testSeed, k, true)
	if err != nil {
		t.Fatal(err)
	}

	for i := 0; i < k; i++ {
		for j := 0; j < k; j++ {
			if *at[i][j] != *a[j][i] {
				t.Errorf("transposed entry (%d,%d) does not equal entry (%d,%d)", i, j, j, i)
			}
		}
	}
}

func TestSampleNoise_Range(t *testing.T) {
	for _, mode := range []Mode{ModeModern, Mode90s} {
		for _, eta := range []int{2, 3} {
			prim := mustPrimitives(t, mode)

			p, err := SampleNoise(prim, testSeed, 0, eta)
			if err != nil {
				t.Fatalf("SampleNoise(eta=%d) error = %v", eta, err)
			}

			for i, c := range p {
				if c < int16(-eta) || c > int16(eta) {
					t.Fatalf("mode %v eta %d: coefficient %d = %d, outside [-%d, %d]",
						mode, eta, i, c, eta, eta)
				}
			}
		}
	}
}

func TestSampleNoise_NonceSeparation(t *testing.T) {
	prim := mustPrimitives(t, ModeModern)

	a, err := SampleNoise(prim, testSeed, 0, 2)
	if err != nil {
		t.Fatal(err)
	}
	b, err := SampleNoise(prim, testSeed, 1, 2)
	if err != nil {
		t.Fatal(err)
	}

	if *a == *b {
		t.Error("different nonces produced identical noise polynomials")
	}

	again, err := SampleNoise(prim, testSeed, 0, 2)
	if err != nil {
		t.Fatal(err)
	}
	if *a != *again {
		t.Error("identical (seed, nonce) produced different noise polynomials")
	}
}

func TestSampleNoise_InvalidEta(t *testing.T) {
	prim := mustPrimitives(t, ModeModern)

	for _, eta := range []int{0, 1, 4, -2} {
		if _, err := SampleNoise(prim, testSeed, 0, eta); !errors.Is(err, ErrInvalidEta) {
			t.Errorf("eta=%d: expected ErrInvalidEta, got %v", eta, err)
		}
	}
}

func TestCBD_ZeroInput(t *testing.T) {
	// An all-zero PRF output has every popcount pair equal, so every
	// coefficient must be zero.
	p := cbd(make([]byte, 128), 2)
	for i, c := range p {
		if c != 0 {
			t.Fatalf("coefficient %d = %d, want 0", i, c)
		}
	}
}

func BenchmarkExpandMatrix_Modern(b *testing.B) {
	prim, _ := NewPrimitives(ModeModern)
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		if _, err := ExpandMatrix(prim, testSeed, 3, false); err != nil {
			b.Fatal(err)
		}
	}
}
