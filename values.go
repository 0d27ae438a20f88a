package popgen

import "fmt"

// ThetaParams holds the coefficients shared by the theta estimators and
// the neutrality tests (Tajima 1989; Fu & Li 1993), all pure functions of
// the sample size n.
type ThetaParams struct {
	A1  float64 // sum 1/i, i = 1..n-1
	A2  float64 // sum 1/i^2, i = 1..n-1
	A1n float64 // sum 1/i, i = 1..n
	B1  float64 // (n+1) / 3(n-1)
	B2  float64 // 2(n^2+n+3) / 9n(n-1)
	C1  float64 // b1 - 1/a1
	C2  float64 // b2 - (n+2)/(a1 n) + a2/a1^2
	Cn  float64 // 2(n a1 - 2(n-1)) / (n-1)(n-2); zero when n == 2
	Dn  float64 // cn + (n-2)/(n-1)^2 + 2/(n-1) (3/2 - (2 a1n - 3)/(n-2) - 1/n); zero when n == 2
	E1  float64 // c1 / a1
	E2  float64 // c2 / (a1^2 + a2)
}

// NewThetaParams computes the coefficient record for a sample of n
// sequences. n must be at least 2; Cn and Dn divide by n-2 and are only
// filled in for n >= 3.
func NewThetaParams(n int) (*ThetaParams, error) {
	if n < 2 {
		return nil, fmt.Errorf("%w: need at least 2 sequences, got %d", ErrSampleSize, n)
	}
	p := &ThetaParams{}
	for i := 1; i < n; i++ {
		p.A1 += 1.0 / float64(i)
		p.A2 += 1.0 / float64(i*i)
	}
	nn := float64(n)
	p.A1n = p.A1 + 1.0/nn
	p.B1 = (nn + 1.0) / (3.0 * (nn - 1.0))
	p.B2 = 2.0 * (nn*nn + nn + 3.0) / (9.0 * nn * (nn - 1.0))
	p.C1 = p.B1 - 1.0/p.A1
	p.C2 = p.B2 - (nn+2.0)/(p.A1*nn) + p.A2/(p.A1*p.A1)
	if n >= 3 {
		p.Cn = 2.0 * (nn*p.A1 - 2.0*(nn-1.0)) / ((nn - 1.0) * (nn - 2.0))
		p.Dn = p.Cn + (nn-2.0)/((nn-1.0)*(nn-1.0)) +
			(2.0/(nn-1.0))*(1.5-(2.0*p.A1n-3.0)/(nn-2.0)-1.0/nn)
	}
	p.E1 = p.C1 / p.A1
	p.E2 = p.C2 / (p.A1*p.A1 + p.A2)
	return p, nil
}
