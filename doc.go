// Package popgen computes classical population-genetics summary statistics
// from a multiple sequence alignment: nucleotide diversity estimators
// (Watterson 1975, Tajima 1983), neutrality tests (Tajima 1989, Fu & Li
// 1993), haplotype statistics, transition/transversion counts and
// codon-level synonymous/non-synonymous statistics. Pairwise linkage
// disequilibrium lives in the ld subpackage.
//
// All functions borrow the alignment read-only for the duration of the call
// and hold no state between calls.
package popgen
