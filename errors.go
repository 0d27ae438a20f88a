package popgen

import "errors"

// Failure kinds. Precondition violations (ErrSeqLength, ErrSampleSize,
// ErrNoOutgroup, ErrCodonAlignment, ErrBadCodon) mean the input cannot be
// analyzed at all. ErrUndefined means the input is valid but the requested
// statistic has no value under it (zero-variance denominator and the like);
// callers must handle it instead of receiving NaN.
var (
	// ErrSeqLength is returned when aligned sequences differ in length.
	ErrSeqLength = errors.New("popgen: sequences differ in length")

	// ErrSampleSize is returned when the ingroup is smaller than the
	// minimum sample size of the requested estimator.
	ErrSampleSize = errors.New("popgen: sample size too small")

	// ErrNoOutgroup is returned by the rooted Fu and Li tests when the
	// alignment carries no outgroup sequence.
	ErrNoOutgroup = errors.New("popgen: no outgroup sequence")

	// ErrCodonAlignment is returned when a codon statistic is requested
	// on an alignment whose length is not a multiple of three.
	ErrCodonAlignment = errors.New("popgen: alignment length is not a multiple of three")

	// ErrBadCodon is returned when the genetic code cannot classify a
	// codon (ambiguous symbol).
	ErrBadCodon = errors.New("popgen: codon cannot be translated")

	// ErrUndefined is returned when a statistic is mathematically
	// undefined for the given data.
	ErrUndefined = errors.New("popgen: statistic undefined for this data")
)
