package main

import (
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/alecthomas/kingpin"
	popgen "github.com/altingia/bpp-popgen"
	"github.com/altingia/bpp-popgen/ld"
	"github.com/mingzhi/biogo/seq"
	"github.com/montanaflynn/stats"
)

var (
	app         = kingpin.New("popgen", "Population genetics statistics from a FASTA alignment.")
	outNames    = app.Flag("outgroup", "outgroup sequence name (repeatable).").Strings()
	gapsAsState = app.Flag("gaps-as-state", "count gap symbols as allelic states.").Bool()

	divApp  = app.Command("diversity", "diversity and neutrality statistics.")
	divFile = divApp.Arg("fasta_file", "alignment in FASTA format.").Required().String()

	codonApp      = app.Command("codon", "codon-level synonymous and non-synonymous statistics.")
	codonFile     = codonApp.Arg("fasta_file", "coding alignment in FASTA format.").Required().String()
	codonRatio    = codonApp.Flag("ratio", "transition/transversion weighting ratio.").Default("1.0").Float64()
	codonMin      = codonApp.Flag("minchange", "score multi-step codon paths by minimum change.").Bool()
	codonKeepStop = codonApp.Flag("keep-stop", "keep codon sites containing stop codons.").Bool()

	ldApp           = app.Command("ld", "pairwise linkage disequilibrium and decay statistics.")
	ldFile          = ldApp.Arg("fasta_file", "alignment in FASTA format.").Required().String()
	ldFreqMin       = ldApp.Flag("freqmin", "minimum minor allele frequency.").Default("0").Float64()
	ldDropSingleton = ldApp.Flag("drop-singleton", "exclude singleton sites.").Bool()
	ldDistance1     = ldApp.Flag("distance1", "use raw positional distances instead of gap-aware ones.").Bool()
)

var (
	INFO *log.Logger
	WARN *log.Logger
)

func main() {
	command := kingpin.MustParse(app.Parse(os.Args[1:]))
	INFO = log.New(os.Stdout, "INFO: ", log.Ldate|log.Ltime|log.Lshortfile)
	WARN = log.New(os.Stdout, "WARN: ", log.Ldate|log.Ltime|log.Lshortfile)

	switch command {
	case divApp.FullCommand():
		runDiversity(readAlignment(*divFile))
	case codonApp.FullCommand():
		runCodon(readAlignment(*codonFile))
	case ldApp.FullCommand():
		runLD(readAlignment(*ldFile))
	}
}

func gapPolicy() popgen.GapPolicy {
	if *gapsAsState {
		return popgen.CountGapsAsState
	}
	return popgen.ExcludeGaps
}

// readAlignment loads a FASTA file and tags the sequences named by
// --outgroup as outgroup.
func readAlignment(fileName string) *popgen.Alignment {
	f, err := os.Open(fileName)
	if err != nil {
		log.Fatal(err)
	}
	defer f.Close()

	rd := seq.NewFastaReader(f)
	records, err := rd.ReadAll()
	if err != nil {
		log.Fatal(err)
	}

	outgroup := make(map[string]bool)
	for _, name := range *outNames {
		outgroup[name] = true
	}
	seqs := make([]popgen.Sequence, 0, len(records))
	for _, r := range records {
		seqs = append(seqs, popgen.Sequence{Name: r.Id, Seq: r.Seq, Outgroup: outgroup[r.Id]})
	}
	a, err := popgen.New(seqs)
	if err != nil {
		log.Fatal(err)
	}
	INFO.Printf("%d ingroup and %d outgroup sequences, %d sites\n", a.NumIngroup(), a.NumOutgroup(), a.Len())
	return a
}

// printStat reports one statistic, downgrading undefined statistics to a
// warning instead of aborting the report.
func printStat(name string, v float64, err error) {
	if err != nil {
		if errors.Is(err, popgen.ErrUndefined) || errors.Is(err, ld.ErrUndefined) ||
			errors.Is(err, ld.ErrTooFewSites) || errors.Is(err, popgen.ErrNoOutgroup) {
			WARN.Printf("%s: %v\n", name, err)
			return
		}
		log.Fatalf("%s: %v", name, err)
	}
	fmt.Printf("%s\t%g\n", name, v)
}

func runDiversity(a *popgen.Alignment) {
	gap := gapPolicy()
	fmt.Printf("polymorphic_sites\t%d\n", popgen.PolymorphicSiteNumber(a, gap))
	fmt.Printf("parsimony_informative_sites\t%d\n", popgen.ParsimonyInformativeSiteNumber(a, gap))
	fmt.Printf("total_mutations\t%d\n", popgen.TotNumberMutations(a, gap))
	fmt.Printf("singletons\t%d\n", popgen.CountSingleton(a, gap))
	fmt.Printf("triplet_sites\t%d\n", popgen.TripletNumber(a, gap))
	fmt.Printf("haplotypes\t%d\n", popgen.DVK(a, gap))
	fmt.Printf("transitions\t%d\n", popgen.TransitionNumber(a))
	fmt.Printf("transversions\t%d\n", popgen.TransversionNumber(a))

	gc, err := popgen.GCContent(a)
	printStat("gc_content", gc, err)
	w, err := popgen.Watterson75(a, gap)
	printStat("theta_watterson", w, err)
	fmt.Printf("theta_pi\t%g\n", popgen.Tajima83(a, gap))
	d, err := popgen.TajimaDSS(a, gap)
	printStat("tajima_d", d, err)
	d, err = popgen.TajimaDTNM(a, gap)
	printStat("tajima_d_eta", d, err)
	d, err = popgen.FuLiD(a, gap)
	printStat("fu_li_d", d, err)
	d, err = popgen.FuLiDStar(a, gap)
	printStat("fu_li_d_star", d, err)
	d, err = popgen.FuLiF(a, gap)
	printStat("fu_li_f", d, err)
	d, err = popgen.FuLiFStar(a, gap)
	printStat("fu_li_f_star", d, err)
	h, err := popgen.DVH(a, gap)
	printStat("haplotype_diversity", h, err)
	r, err := popgen.TsTvRatio(a)
	printStat("ts_tv_ratio", r, err)
}

func runCodon(a *popgen.Alignment) {
	code := popgen.StandardCode()
	excludeStop := !*codonKeepStop

	n, err := popgen.StopCodonSiteNumber(a, code)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("stop_codon_sites\t%d\n", n)
	n, err = popgen.MonoSitePolymorphicCodonNumber(a, code, excludeStop)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("mono_site_polymorphic_codons\t%d\n", n)
	n, err = popgen.SynonymousPolymorphicCodonNumber(a, code, excludeStop)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("synonymous_polymorphic_codons\t%d\n", n)
	n, err = popgen.NonSynonymousPolymorphicCodonNumber(a, code, excludeStop)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("non_synonymous_polymorphic_codons\t%d\n", n)

	v, err := popgen.PiSynonymous(a, code, *codonMin, excludeStop)
	printStat("pi_synonymous", v, err)
	v, err = popgen.PiNonSynonymous(a, code, *codonMin, excludeStop)
	printStat("pi_non_synonymous", v, err)
	v, err = popgen.MeanSynonymousSitesNumber(a, code, *codonRatio, excludeStop)
	printStat("mean_synonymous_sites", v, err)
	v, err = popgen.MeanNonSynonymousSitesNumber(a, code, *codonRatio, excludeStop)
	printStat("mean_non_synonymous_sites", v, err)
}

func runLD(a *popgen.Alignment) {
	c := ld.Generate(a, !*ldDropSingleton, *ldFreqMin)
	INFO.Printf("%d sites retained, %d pairs\n", c.NumSites(), c.NumPairs())

	v, err := c.MeanD()
	printStat("mean_d", v, err)
	v, err = c.MeanDPrime()
	printStat("mean_d_prime", v, err)
	v, err = c.MeanR2()
	printStat("mean_r2", v, err)
	v, err = c.MeanDistance1()
	printStat("mean_distance1", v, err)
	v, err = c.MeanDistance2()
	printStat("mean_distance2", v, err)

	reg, err := c.LinearRegressionD(*ldDistance1)
	printStat("linear_d_slope_per_kb", reg.Slope, err)
	if err == nil {
		fmt.Printf("linear_d_intercept\t%g\n", reg.Intercept)
	}
	reg, err = c.LinearRegressionDPrime(*ldDistance1)
	printStat("linear_d_prime_slope_per_kb", reg.Slope, err)
	if err == nil {
		fmt.Printf("linear_d_prime_intercept\t%g\n", reg.Intercept)
	}
	reg, err = c.LinearRegressionR2(*ldDistance1)
	printStat("linear_r2_slope_per_kb", reg.Slope, err)
	if err == nil {
		fmt.Printf("linear_r2_intercept\t%g\n", reg.Intercept)
	}
	v, err = c.OriginRegressionD(*ldDistance1)
	printStat("origin_d_slope_per_kb", v, err)
	v, err = c.OriginRegressionDPrime(*ldDistance1)
	printStat("origin_d_prime_slope_per_kb", v, err)
	v, err = c.OriginRegressionR2(*ldDistance1)
	printStat("origin_r2_slope_per_kb", v, err)
	v, err = c.InverseRegressionR2(*ldDistance1)
	printStat("inverse_r2_slope_per_kb", v, err)

	if r2, err := c.R2(); err == nil && len(r2) > 0 {
		mean, _ := stats.Mean(r2)
		median, _ := stats.Median(r2)
		max, _ := stats.Max(r2)
		INFO.Printf("r2 summary: mean %.4f, median %.4f, max %.4f\n", mean, median, max)
	}
}
