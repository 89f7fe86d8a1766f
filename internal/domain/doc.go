// Package domain contains the value objects produced by a cardstats run.
//
// # Entities
//
//   - [Report]: everything computed by one run of the pipeline
//   - [PopulationStats]: parameters of the exact k-card population
//   - [SampleStats]: descriptive statistics of a single sample of draw sums
//   - [SamplingStats]: the sampling distribution of the sample mean
//   - [Estimates]: normal-approximation and exact probability estimates
//
// Types in this package carry no behaviour beyond formatting helpers and have
// no dependencies on infrastructure concerns.
package domain
