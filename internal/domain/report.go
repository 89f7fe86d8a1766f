package domain

import "time"

// Report is the outcome of one pipeline run.
// Sections that were skipped are nil.
type Report struct {
	Seed        uint64    `json:"seed"`
	Draws       int       `json:"draws"`
	SampleSize  int       `json:"sample_size"`
	Samples     int       `json:"samples"`
	GeneratedAt time.Time `json:"generated_at"`

	Population *PopulationStats `json:"population,omitempty"`
	Sample     *SampleStats     `json:"sample,omitempty"`
	Sampling   *SamplingStats   `json:"sampling,omitempty"`
	Estimates  *Estimates       `json:"estimates,omitempty"`

	// Figures lists the image files written during the run.
	Figures []string `json:"figures,omitempty"`
}

// PopulationStats holds the exact parameters of the population of k-card sums.
type PopulationStats struct {
	Combinations int         `json:"combinations"`
	Mean         float64     `json:"mean"`
	Median       float64     `json:"median"`
	StdDev       float64     `json:"std_dev"`
	Frequencies  map[int]int `json:"frequencies"`
}

// SampleStats describes one sample of draw sums.
type SampleStats struct {
	Values []float64 `json:"values"`
	Mean   float64   `json:"mean"`
	Median float64   `json:"median"`
	StdDev float64   `json:"std_dev"`
	SEM    float64   `json:"sem"`
}

// SamplingStats describes the sampling distribution of the sample mean.
type SamplingStats struct {
	Means  []float64 `json:"means"`
	Mean   float64   `json:"mean"`
	StdDev float64   `json:"std_dev"`
}

// Estimates holds the probabilities reported at the end of a run.
type Estimates struct {
	Confidence float64 `json:"confidence"`
	Lower      float64 `json:"lower"`
	Upper      float64 `json:"upper"`
	Threshold  float64 `json:"threshold"`

	// MeanAtLeast is the normal-approximation probability that the mean of
	// a sample reaches Threshold.
	MeanAtLeast float64 `json:"mean_at_least"`

	// DrawAtLeast is the exact probability that a single draw reaches
	// Threshold. It is only set when the population was enumerated.
	DrawAtLeast *float64 `json:"draw_at_least,omitempty"`
}
