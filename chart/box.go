package chart

import (
	"github.com/aclements/go-moremath/stats"
)

const whiskerIQR = 1.5

// Box is a five-number summary with Tukey whiskers.
type Box struct {
	N      int     `json:"n"`
	Min    float64 `json:"min"`
	Q1     float64 `json:"q1"`
	Median float64 `json:"median"`
	Q3     float64 `json:"q3"`
	Max    float64 `json:"max"`
	Mean   float64 `json:"mean"`

	LowerWhisker float64   `json:"lower_whisker"`
	UpperWhisker float64   `json:"upper_whisker"`
	Outliers     []float64 `json:"outliers,omitempty"`
}

// Summarize computes the box statistics of values. It returns nil for no
// values.
func Summarize(values []float64) *Box {
	if len(values) == 0 {
		return nil
	}

	sample := stats.Sample{Xs: append([]float64(nil), values...)}
	sample.Sort()

	xs := sample.Xs
	b := &Box{
		N:      len(xs),
		Min:    xs[0],
		Max:    xs[len(xs)-1],
		Q1:     sample.Quantile(0.25),
		Median: sample.Quantile(0.5),
		Q3:     sample.Quantile(0.75),
		Mean:   sample.Mean(),
	}

	iqr := b.Q3 - b.Q1
	lo, hi := b.Q1-whiskerIQR*iqr, b.Q3+whiskerIQR*iqr
	b.LowerWhisker, b.UpperWhisker = b.Max, b.Min
	for _, x := range xs {
		if x < lo || x > hi {
			b.Outliers = append(b.Outliers, x)
			continue
		}
		if x < b.LowerWhisker {
			b.LowerWhisker = x
		}
		if x > b.UpperWhisker {
			b.UpperWhisker = x
		}
	}
	return b
}
