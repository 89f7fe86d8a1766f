// Package population computes the exact distribution of the point total of
// a k-card hand by enumerating every combination of the deck.
package population

import (
	"math"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/stat/combin"

	"github.com/bft-labs/cardstats/pkg/deck"
)

// MaxCards bounds the hand size accepted by Enumerate. C(52,5) is already
// 2,598,960 hands.
const MaxCards = 5

// ErrInvalidHandSize is returned for hand sizes outside 1..MaxCards.
var ErrInvalidHandSize = errors.New("population: invalid hand size")

// Distribution is the frequency of every possible hand total.
type Distribution struct {
	min    int
	counts []int // counts[i] is the frequency of total min+i
	total  int
}

// Enumerate visits every strictly increasing tuple of k card ids and
// tabulates the sum of their values.
func Enumerate(k int) (*Distribution, error) {
	if k < 1 || k > MaxCards {
		return nil, errors.Wrapf(ErrInvalidHandSize, "%d cards (max %d)", k, MaxCards)
	}
	d := &Distribution{
		min:    deck.MinSum(k),
		counts: make([]int, deck.MaxSum(k)-deck.MinSum(k)+1),
	}

	gen := combin.NewCombinationGenerator(deck.Size, k)
	idx := make([]int, k)
	for gen.Next() {
		gen.Combination(idx)
		sum := 0
		for _, i := range idx {
			sum += deck.Card(i + 1).Value()
		}
		d.counts[sum-d.min]++
		d.total++
	}
	return d, nil
}

// Total returns the number of hands enumerated, C(52,k).
func (d *Distribution) Total() int { return d.total }

// Min returns the smallest possible total.
func (d *Distribution) Min() int { return d.min }

// Max returns the largest possible total.
func (d *Distribution) Max() int { return d.min + len(d.counts) - 1 }

// Count returns how many hands have the given total.
func (d *Distribution) Count(sum int) int {
	if sum < d.min || sum > d.Max() {
		return 0
	}
	return d.counts[sum-d.min]
}

// Frequencies returns the count of every total in [Min, Max].
func (d *Distribution) Frequencies() map[int]int {
	out := make(map[int]int, len(d.counts))
	for i, c := range d.counts {
		out[d.min+i] = c
	}
	return out
}

// Sums returns every total in [Min, Max] in increasing order.
func (d *Distribution) Sums() []int {
	out := make([]int, len(d.counts))
	for i := range d.counts {
		out[i] = d.min + i
	}
	return out
}

// Mean returns the population mean total.
func (d *Distribution) Mean() float64 {
	acc := 0
	for i, c := range d.counts {
		acc += (d.min + i) * c
	}
	return float64(acc) / float64(d.total)
}

// StdDev returns the population standard deviation of the total.
func (d *Distribution) StdDev() float64 {
	mu := d.Mean()
	acc := 0.0
	for i, c := range d.counts {
		dev := float64(d.min+i) - mu
		acc += float64(c) * dev * dev
	}
	return math.Sqrt(acc / float64(d.total))
}

// Median returns the median total, averaging the two middle hands when the
// number of hands is even.
func (d *Distribution) Median() float64 {
	lo := d.nth((d.total - 1) / 2)
	hi := d.nth(d.total / 2)
	return float64(lo+hi) / 2
}

// nth returns the total of the n-th hand (0-based) in sorted order.
func (d *Distribution) nth(n int) int {
	seen := 0
	for i, c := range d.counts {
		seen += c
		if n < seen {
			return d.min + i
		}
	}
	return d.Max()
}

// ProbAtLeast returns the exact probability that a hand totals x or more.
func (d *Distribution) ProbAtLeast(x float64) float64 {
	hits := 0
	for i, c := range d.counts {
		if float64(d.min+i) >= x {
			hits += c
		}
	}
	return float64(hits) / float64(d.total)
}

// Values expands the distribution into one total per hand, sorted.
func (d *Distribution) Values() []float64 {
	out := make([]float64, 0, d.total)
	for i, c := range d.counts {
		v := float64(d.min + i)
		for j := 0; j < c; j++ {
			out = append(out, v)
		}
	}
	return out
}
