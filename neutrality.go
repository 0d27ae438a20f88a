package popgen

import (
	"fmt"
	"math"
)

// TajimaDSS returns Tajima's D (1989) computed from the number of
// segregating sites S:
//
//	D = (theta-pi - theta-S) / sqrt(e1 S + e2 S(S-1))
//
// It fails when the variance term is zero (S = 0 in particular).
func TajimaDSS(a *Alignment, gap GapPolicy) (float64, error) {
	p, err := NewThetaParams(a.NumIngroup())
	if err != nil {
		return 0, err
	}
	s := float64(PolymorphicSiteNumber(a, gap))
	thetaS := s / p.A1
	return tajimaD(Tajima83(a, gap), thetaS, s, p)
}

// TajimaDTNM returns Tajima's D computed from the total number of
// mutations eta, with theta-S replaced by eta/a1.
func TajimaDTNM(a *Alignment, gap GapPolicy) (float64, error) {
	p, err := NewThetaParams(a.NumIngroup())
	if err != nil {
		return 0, err
	}
	eta := float64(TotNumberMutations(a, gap))
	return tajimaD(Tajima83(a, gap), eta/p.A1, eta, p)
}

func tajimaD(pi, theta, s float64, p *ThetaParams) (float64, error) {
	v := p.E1*s + p.E2*s*(s-1.0)
	if v <= 0 {
		return 0, fmt.Errorf("%w: zero variance for Tajima's D", ErrUndefined)
	}
	return (pi - theta) / math.Sqrt(v), nil
}

// FuLiD returns the Fu and Li D test (1993). The outgroup roots the
// mutations: a singleton counts as external only when it differs from the
// ancestral (majority outgroup) state at its site.
func FuLiD(a *Alignment, gap GapPolicy) (float64, error) {
	p, n, err := fuliParams(a)
	if err != nil {
		return 0, err
	}
	if a.NumOutgroup() == 0 {
		return 0, ErrNoOutgroup
	}
	nn := float64(n)
	vD := 1.0 + (p.A1*p.A1/(p.A2+p.A1*p.A1))*(p.Cn-(nn+1.0)/(nn-1.0))
	uD := p.A1 - 1.0 - vD
	eta := float64(TotNumberMutations(a, gap))
	etaE := float64(countDerivedSingletons(a, gap))
	return fuliRatio(eta-p.A1*etaE, uD, vD, eta)
}

// FuLiDStar returns the Fu and Li D* test (1993), which needs no
// outgroup. Variance coefficients follow Simonsen, Churchill and Aquadro
// (1995).
func FuLiDStar(a *Alignment, gap GapPolicy) (float64, error) {
	p, n, err := fuliParams(a)
	if err != nil {
		return 0, err
	}
	nn := float64(n)
	r := nn / (nn - 1.0)
	vDs := (r*r*p.A2 + p.A1*p.A1*p.Dn - 2.0*(nn*p.A1*(p.A1+1.0))/((nn-1.0)*(nn-1.0))) /
		(p.A1*p.A1 + p.A2)
	uDs := r*(p.A1-r) - vDs
	eta := float64(TotNumberMutations(a, gap))
	etaS := float64(CountSingleton(a, gap))
	return fuliRatio(r*eta-p.A1*etaS, uDs, vDs, eta)
}

// FuLiF returns the Fu and Li F test (1993), contrasting theta-pi against
// the outgroup-rooted singleton count.
func FuLiF(a *Alignment, gap GapPolicy) (float64, error) {
	p, n, err := fuliParams(a)
	if err != nil {
		return 0, err
	}
	if a.NumOutgroup() == 0 {
		return 0, ErrNoOutgroup
	}
	nn := float64(n)
	vF := (p.Cn + p.B2 - 2.0/(nn-1.0)) / (p.A1*p.A1 + p.A2)
	uF := (1.0+p.B1-4.0*((nn+1.0)/((nn-1.0)*(nn-1.0)))*(p.A1n-2.0*nn/(nn+1.0)))/p.A1 - vF
	eta := float64(TotNumberMutations(a, gap))
	etaE := float64(countDerivedSingletons(a, gap))
	return fuliRatio(Tajima83(a, gap)-etaE, uF, vF, eta)
}

// FuLiFStar returns the Fu and Li F* test (1993), which needs no
// outgroup. Variance coefficients follow Simonsen, Churchill and Aquadro
// (1995).
func FuLiFStar(a *Alignment, gap GapPolicy) (float64, error) {
	p, n, err := fuliParams(a)
	if err != nil {
		return 0, err
	}
	nn := float64(n)
	vFs := (p.Dn + 2.0*(nn*nn+nn+3.0)/(9.0*nn*(nn-1.0)) -
		(2.0/(nn-1.0))*(4.0*p.A2-6.0+8.0/nn)) / (p.A1*p.A1 + p.A2)
	uFs := (nn/(nn-1.0) + (nn+1.0)/(3.0*(nn-1.0)) - 4.0/(nn*(nn-1.0)) +
		(2.0*(nn+1.0)/((nn-1.0)*(nn-1.0)))*(p.A1n-2.0*nn/(nn+1.0))) / p.A1
	uFs -= vFs
	eta := float64(TotNumberMutations(a, gap))
	etaS := float64(CountSingleton(a, gap))
	return fuliRatio(Tajima83(a, gap)-((nn-1.0)/nn)*etaS, uFs, vFs, eta)
}

func fuliParams(a *Alignment) (*ThetaParams, int, error) {
	n := a.NumIngroup()
	if n < 3 {
		return nil, 0, fmt.Errorf("%w: Fu and Li tests need at least 3 ingroup sequences, got %d", ErrSampleSize, n)
	}
	p, err := NewThetaParams(n)
	if err != nil {
		return nil, 0, err
	}
	return p, n, nil
}

func fuliRatio(num, u, v, eta float64) (float64, error) {
	w := u*eta + v*eta*eta
	if w <= 0 {
		return 0, fmt.Errorf("%w: zero variance for Fu and Li test", ErrUndefined)
	}
	return num / math.Sqrt(w), nil
}

// countDerivedSingletons counts ingroup singletons that differ from the
// ancestral state, taken as the majority non-gap outgroup symbol at the
// site. Sites where the outgroup is all gaps contribute nothing; a
// singleton matching any modal outgroup state counts as ancestral.
func countDerivedSingletons(a *Alignment, gap GapPolicy) int {
	n := 0
	for i := 0; i < a.Len(); i++ {
		counts, order := a.Site(i).Counts(gap)
		ancestral := modalStates(a.OutgroupSite(i))
		if len(ancestral) == 0 {
			continue
		}
		for _, b := range order {
			if counts[b] != 1 {
				continue
			}
			if !ancestral[b] {
				n++
			}
		}
	}
	return n
}

func modalStates(s Site) map[byte]bool {
	counts, order := s.Counts(ExcludeGaps)
	max := 0
	for _, c := range counts {
		if c > max {
			max = c
		}
	}
	modal := make(map[byte]bool)
	for _, b := range order {
		if counts[b] == max {
			modal[b] = true
		}
	}
	return modal
}
