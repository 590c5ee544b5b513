package chart

import (
	"github.com/bitmark-inc/covid-dashboard/catalog"
	"github.com/bitmark-inc/covid-dashboard/query"
)

// Bind turns a query result into a chart spec. The title is used verbatim.
// Series keep the order of the result; colors and fills are assigned by
// position.
func Bind(r *query.Result, b catalog.Binding, title string) *Spec {
	s := &Spec{
		Kind:        b.Kind,
		Title:       title,
		X:           Axis{Field: b.X, Title: b.XTitle, Log: r.LogX},
		Y:           Axis{Field: b.Y, Title: b.YTitle, Log: r.LogY},
		Hover:       append([]string(nil), b.Hover...),
		Width:       b.Width,
		Height:      b.Height,
		RangeSlider: b.RangeSlider,
		Horizontal:  b.Horizontal,
		Empty:       r.Empty(),
		Series:      make([]Series, len(r.Series)),
	}

	for i, rs := range r.Series {
		points := make([]query.Point, len(rs.Points))
		copy(points, rs.Points)
		s.Series[i] = Series{
			Name:   rs.Name,
			Color:  pick(b.Colors, i),
			Fill:   i < len(b.Fill) && b.Fill[i],
			Axis:   AxisPrimary,
			Points: points,
		}
	}

	switch b.Kind {
	case catalog.AreaChart, catalog.LineChart:
		s.X.Time = true
		s.Y.Ticks = Ticks(values(s.Series, yOf), s.Y.Log)
	case catalog.DualChart:
		s.X.Time = true
		if len(s.Series) > 1 {
			s.Series[1].Axis = AxisSecondary
			s.Y2 = &Axis{Field: b.Y2, Title: b.Y2Title}
			s.Y2.Ticks = Ticks(values(s.Series[1:2], yOf), false)
			s.Y.Ticks = Ticks(values(s.Series[:1], yOf), s.Y.Log)
		}
	case catalog.BarChart:
		categories := []string{}
		for _, series := range s.Series {
			for _, p := range series.Points {
				categories = append(categories, p.Entity)
			}
		}
		if b.Horizontal {
			s.Y.Categories = categories
			s.X.Ticks = Ticks(values(s.Series, yOf), s.X.Log)
		} else {
			s.X.Categories = categories
			s.Y.Ticks = Ticks(values(s.Series, yOf), s.Y.Log)
		}
	case catalog.ScatterChart:
		xs, ys := values(s.Series, xOf), values(s.Series, yOf)
		if b.Trend {
			s.Overlay.Trend = FitTrend(xs, ys, s.X.Log, s.Y.Log)
		}
		if t := s.Overlay.Trend; t != nil {
			for _, p := range t.Points {
				ys = append(ys, p.Y)
			}
		}
		s.X.Ticks = Ticks(xs, s.X.Log)
		s.Y.Ticks = Ticks(ys, s.Y.Log)
	case catalog.BoxChart:
		vs := values(s.Series, yOf)
		s.X.Ticks = Ticks(vs, s.X.Log)
		s.Overlay.Box = Summarize(vs)
	}

	return s
}

func pick(colors []string, i int) string {
	if len(colors) == 0 {
		return ""
	}
	return colors[i%len(colors)]
}

func xOf(p query.Point) float64 { return p.X }
func yOf(p query.Point) float64 { return p.Y }

func values(series []Series, f func(query.Point) float64) []float64 {
	out := []float64{}
	for _, s := range series {
		for _, p := range s.Points {
			out = append(out, f(p))
		}
	}
	return out
}
