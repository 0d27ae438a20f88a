package ld

import (
	"fmt"
	"math"

	"github.com/mingzhi/gomath/stat/desc/meanvar"
	"github.com/mingzhi/gomath/stat/regression"
)

// Regression holds a fitted decay line. Slopes are per kilobase.
type Regression struct {
	Slope     float64
	Intercept float64
}

func mean(vs []float64) float64 {
	mv := meanvar.New()
	for _, v := range vs {
		mv.Increment(v)
	}
	return mv.Mean.GetResult()
}

// MeanD returns the mean pairwise D.
func (c *Container) MeanD() (float64, error) {
	if err := c.requirePairs(); err != nil {
		return 0, err
	}
	return mean(c.D()), nil
}

// MeanDPrime returns the mean pairwise D'.
func (c *Container) MeanDPrime() (float64, error) {
	if err := c.requirePairs(); err != nil {
		return 0, err
	}
	ds, err := c.DPrime()
	if err != nil {
		return 0, err
	}
	return mean(ds), nil
}

// MeanR2 returns the mean pairwise r-squared.
func (c *Container) MeanR2() (float64, error) {
	if err := c.requirePairs(); err != nil {
		return 0, err
	}
	ds, err := c.R2()
	if err != nil {
		return 0, err
	}
	return mean(ds), nil
}

// MeanDistance1 returns the mean pairwise distance, method 1 (sequence
// composition ignored).
func (c *Container) MeanDistance1() (float64, error) {
	if err := c.requirePairs(); err != nil {
		return 0, err
	}
	return mean(c.Distances1()), nil
}

// MeanDistance2 returns the mean pairwise distance, method 2 (gaps
// excluded per sequence).
func (c *Container) MeanDistance2() (float64, error) {
	if err := c.requirePairs(); err != nil {
		return 0, err
	}
	return mean(c.Distances2()), nil
}

// distancesKb returns the chosen pairwise distances in kilobases, so the
// fitted slopes come out per kb.
func (c *Container) distancesKb(distance1 bool) []float64 {
	var ds []float64
	if distance1 {
		ds = c.Distances1()
	} else {
		ds = c.Distances2()
	}
	for i := range ds {
		ds[i] /= 1000.0
	}
	return ds
}

// linearFit runs ordinary least squares y = a x + b.
func linearFit(xs, ys []float64) (Regression, error) {
	s := regression.NewSimple()
	for i := range xs {
		s.Add(xs[i], ys[i])
	}
	slope, intercept := s.Slope(), s.Intercept()
	if math.IsNaN(slope) || math.IsNaN(intercept) {
		return Regression{}, fmt.Errorf("%w: degenerate regression", ErrUndefined)
	}
	return Regression{Slope: slope, Intercept: intercept}, nil
}

// originFit runs least squares for y = 1 + a x, i.e. the slope of y-1
// against x with the intercept pinned at the no-distance expectation.
func originFit(xs, ys []float64) (float64, error) {
	sxy, sxx := 0.0, 0.0
	for i := range xs {
		sxy += xs[i] * (ys[i] - 1.0)
		sxx += xs[i] * xs[i]
	}
	if sxx == 0 {
		return 0, fmt.Errorf("%w: zero distance spread", ErrUndefined)
	}
	return sxy / sxx, nil
}

func abs(vs []float64) []float64 {
	out := make([]float64, len(vs))
	for i, v := range vs {
		out[i] = math.Abs(v)
	}
	return out
}

// LinearRegressionD fits |D| = a*distance + b.
func (c *Container) LinearRegressionD(distance1 bool) (Regression, error) {
	if err := c.requirePairs(); err != nil {
		return Regression{}, err
	}
	return linearFit(c.distancesKb(distance1), abs(c.D()))
}

// LinearRegressionDPrime fits |D'| = a*distance + b.
func (c *Container) LinearRegressionDPrime(distance1 bool) (Regression, error) {
	if err := c.requirePairs(); err != nil {
		return Regression{}, err
	}
	ds, err := c.DPrime()
	if err != nil {
		return Regression{}, err
	}
	return linearFit(c.distancesKb(distance1), abs(ds))
}

// LinearRegressionR2 fits r2 = a*distance + b.
func (c *Container) LinearRegressionR2(distance1 bool) (Regression, error) {
	if err := c.requirePairs(); err != nil {
		return Regression{}, err
	}
	ds, err := c.R2()
	if err != nil {
		return Regression{}, err
	}
	return linearFit(c.distancesKb(distance1), ds)
}

// OriginRegressionD fits |D| = 1 + a*distance and returns the slope.
func (c *Container) OriginRegressionD(distance1 bool) (float64, error) {
	if err := c.requirePairs(); err != nil {
		return 0, err
	}
	return originFit(c.distancesKb(distance1), abs(c.D()))
}

// OriginRegressionDPrime fits |D'| = 1 + a*distance and returns the
// slope.
func (c *Container) OriginRegressionDPrime(distance1 bool) (float64, error) {
	if err := c.requirePairs(); err != nil {
		return 0, err
	}
	ds, err := c.DPrime()
	if err != nil {
		return 0, err
	}
	return originFit(c.distancesKb(distance1), abs(ds))
}

// OriginRegressionR2 fits r2 = 1 + a*distance and returns the slope.
func (c *Container) OriginRegressionR2(distance1 bool) (float64, error) {
	if err := c.requirePairs(); err != nil {
		return 0, err
	}
	ds, err := c.R2()
	if err != nil {
		return 0, err
	}
	return originFit(c.distancesKb(distance1), ds)
}

// InverseRegressionR2 fits r2 = 1/(1 + a*distance), the
// recombination-drift expectation r2 = 1/(1+4Nr), by least squares on
// the linearized form 1/r2 = 1 + a*distance. A pair with r2 = 0 makes
// the transform undefined.
func (c *Container) InverseRegressionR2(distance1 bool) (float64, error) {
	if err := c.requirePairs(); err != nil {
		return 0, err
	}
	ds, err := c.R2()
	if err != nil {
		return 0, err
	}
	inv := make([]float64, len(ds))
	for i, v := range ds {
		if v == 0 {
			return 0, fmt.Errorf("%w: r2 is zero for a site pair", ErrUndefined)
		}
		inv[i] = 1.0 / v
	}
	return originFit(c.distancesKb(distance1), inv)
}
