package kyber

// Ring parameters shared by all Kyber parameter sets.
const (
	// N is the number of coefficients in a polynomial.
	N = 256
	// Q is the coefficient modulus.
	Q = 3329
)

// Poly is one polynomial of the ring R_q = Z_q[X]/(X^256+1).
type Poly [N]int16
