package chart

import (
	"math"

	"github.com/aclements/go-moremath/scale"
)

// MaxTicks bounds the number of major ticks on a numeric axis.
const MaxTicks = 8

// Ticks returns the major ticks covering values, or nil when there is
// nothing to cover. The range is rounded out first, so the first and last
// ticks enclose every value. Log axes get base-10 ticks over the positive
// values.
func Ticks(values []float64, log bool) []float64 {
	lo, hi, ok := bounds(values, log)
	if !ok {
		return nil
	}

	o := scale.TickOptions{Max: MaxTicks}
	if log {
		if lo == hi {
			lo, hi = lo/10, hi*10
		}
		s, err := scale.NewLog(lo, hi, 10)
		if err != nil {
			return nil
		}
		s.Nice(o)
		major, _ := s.Ticks(o)
		return major
	}

	if lo == hi {
		pad := math.Abs(lo) / 2
		if pad == 0 {
			pad = 1
		}
		lo, hi = lo-pad, hi+pad
	}
	s := scale.Linear{Min: lo, Max: hi}
	s.Nice(o)
	major, _ := s.Ticks(o)
	return major
}

func bounds(values []float64, log bool) (lo, hi float64, ok bool) {
	for _, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) || (log && v <= 0) {
			continue
		}
		if !ok || v < lo {
			lo = v
		}
		if !ok || v > hi {
			hi = v
		}
		ok = true
	}
	return lo, hi, ok
}
