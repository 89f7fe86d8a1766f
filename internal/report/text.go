// Package report renders run reports for the console.
package report

import (
	"bufio"
	"fmt"
	"io"
	"sort"

	"github.com/bft-labs/cardstats/internal/domain"
)

// Options controls optional sections of the text report.
type Options struct {
	// Frequencies prints the population frequency table.
	Frequencies bool
	// Values prints the individual sample draws.
	Values bool
}

// WriteText renders r as plain text.
func WriteText(w io.Writer, r *domain.Report, opts Options) error {
	bw := bufio.NewWriter(w)
	p := func(format string, args ...interface{}) {
		fmt.Fprintf(bw, format+"\n", args...)
	}

	p("Seed %d, %d-card draws", r.Seed, r.Draws)

	if pop := r.Population; pop != nil {
		p("")
		p("The mean of the population is %v", pop.Mean)
		p("The median of the population is %v", pop.Median)
		p("The population standard deviation is %v", pop.StdDev)
		if opts.Frequencies {
			p("")
			p("%6s %8s %10s", "sum", "count", "relative")
			sums := make([]int, 0, len(pop.Frequencies))
			for s := range pop.Frequencies {
				sums = append(sums, s)
			}
			sort.Ints(sums)
			for _, s := range sums {
				c := pop.Frequencies[s]
				p("%6d %8d %10.6f", s, c, float64(c)/float64(pop.Combinations))
			}
		}
	}

	if s := r.Sample; s != nil {
		p("")
		if opts.Values {
			p("Sample draws: %v", s.Values)
		}
		p("The mean of the sample is %v", s.Mean)
		p("The median of the sample is %v", s.Median)
		p("The sample standard deviation is %v", s.StdDev)
		p("The standard error of the mean is %v", s.SEM)
	}

	if sd := r.Sampling; sd != nil {
		p("")
		p("The mean of the sample means is %v", sd.Mean)
		p("The standard deviation of the sample means is %v", sd.StdDev)
	}

	if e := r.Estimates; e != nil {
		p("")
		p("The probability that the mean of a sample of size %d will be between %v and %v is %v or %.4g%%",
			r.SampleSize, e.Lower, e.Upper, e.Confidence, e.Confidence*100)
		p("The probability that the mean of a sample of size %d will be at least %v is %v",
			r.SampleSize, e.Threshold, e.MeanAtLeast)
		if e.DrawAtLeast != nil {
			p("The probability that a single draw of %d cards will result in a sum of at least %v is %v",
				r.Draws, e.Threshold, *e.DrawAtLeast)
		}
	}

	if len(r.Figures) > 0 {
		p("")
		for _, f := range r.Figures {
			p("Wrote %s", f)
		}
	}

	return bw.Flush()
}
