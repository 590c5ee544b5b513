package chart

import (
	"math"
	"sort"

	"github.com/aclements/go-moremath/fit"
	"github.com/aclements/go-moremath/stats"
)

// Trend is an ordinary least squares line. When an axis is logarithmic the
// fit is done on log10 of that coordinate and Points are mapped back.
type Trend struct {
	Slope     float64 `json:"slope"`
	Intercept float64 `json:"intercept"`
	R2        float64 `json:"r2"`
	LogX      bool    `json:"log_x"`
	LogY      bool    `json:"log_y"`
	Points    []XY    `json:"points"`
}

// XY is a sampled point of an overlay.
type XY struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// FitTrend fits y = a + b*x over the pairs. It returns nil unless at least
// two pairs with distinct x survive the log transform.
func FitTrend(xs, ys []float64, logX, logY bool) *Trend {
	var fx, fy []float64
	for i := range xs {
		x, okx := transform(xs[i], logX)
		y, oky := transform(ys[i], logY)
		if okx && oky {
			fx = append(fx, x)
			fy = append(fy, y)
		}
	}

	distinct := distinctSorted(fx)
	if len(distinct) < 2 {
		return nil
	}

	r := fit.PolynomialRegression(fx, fy, nil, 1)
	if len(r.Coefficients) < 2 {
		return nil
	}

	t := &Trend{
		Intercept: r.Coefficients[0],
		Slope:     r.Coefficients[1],
		R2:        rSquared(fx, fy, r.F),
		LogX:      logX,
		LogY:      logY,
		Points:    make([]XY, len(distinct)),
	}
	for i, x := range distinct {
		y := r.F(x)
		if logX {
			x = math.Pow(10, x)
		}
		if logY {
			y = math.Pow(10, y)
		}
		t.Points[i] = XY{X: x, Y: y}
	}
	return t
}

func transform(v float64, log bool) (float64, bool) {
	if !log {
		return v, !math.IsNaN(v) && !math.IsInf(v, 0)
	}
	if v <= 0 {
		return 0, false
	}
	return math.Log10(v), true
}

func distinctSorted(xs []float64) []float64 {
	s := append([]float64(nil), xs...)
	sort.Float64s(s)
	out := s[:0]
	for i, x := range s {
		if i == 0 || x != s[i-1] {
			out = append(out, x)
		}
	}
	return out
}

func rSquared(xs, ys []float64, f func(float64) float64) float64 {
	mean := stats.Mean(ys)
	var ssRes, ssTot float64
	for i := range xs {
		d := ys[i] - f(xs[i])
		ssRes += d * d
		m := ys[i] - mean
		ssTot += m * m
	}
	if ssTot == 0 {
		return 1
	}
	return 1 - ssRes/ssTot
}
