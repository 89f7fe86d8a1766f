package sampling

import (
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/stat/distuv"
)

// ErrInvalidConfidence is returned for confidence levels outside (0,1).
var ErrInvalidConfidence = errors.New("sampling: confidence must be in (0,1)")

// ErrDegenerate is returned when the sampling distribution has no spread.
var ErrDegenerate = errors.New("sampling: zero standard deviation")

// Estimate approximates the sampling distribution of the mean with a normal
// distribution.
type Estimate struct {
	norm distuv.Normal
}

// NewEstimate fits a normal distribution to md.
func NewEstimate(md MeanDistribution) (*Estimate, error) {
	if !(md.StdDev > 0) {
		return nil, ErrDegenerate
	}
	return &Estimate{norm: distuv.Normal{Mu: md.Mean, Sigma: md.StdDev}}, nil
}

// Interval returns the symmetric bounds that contain the given fraction of
// sample means.
func (e *Estimate) Interval(confidence float64) (lower, upper float64, err error) {
	if !(confidence > 0 && confidence < 1) {
		return 0, 0, errors.Wrapf(ErrInvalidConfidence, "got %v", confidence)
	}
	tail := (1 - confidence) / 2
	return e.norm.Quantile(tail), e.norm.Quantile(1 - tail), nil
}

// ProbAtLeast returns the probability that a sample mean is x or more.
func (e *Estimate) ProbAtLeast(x float64) float64 {
	return e.norm.Survival(x)
}
