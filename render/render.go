package render

import (
	"bytes"
	"fmt"
	"io"
	"math"
	"strings"

	log "github.com/sirupsen/logrus"
	gochart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/bitmark-inc/covid-dashboard/catalog"
	"github.com/bitmark-inc/covid-dashboard/chart"
)

const logPrefix = "render"

var ErrUnknownFormat = fmt.Errorf("unknown format")

// Format is an output image format.
type Format string

const (
	SVG Format = "svg"
	PNG Format = "png"
)

// ParseFormat validates a format name.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(s)); f {
	case SVG, PNG:
		return f, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
}

// ContentType returns the media type of f.
func (f Format) ContentType() string {
	if f == PNG {
		return "image/png"
	}
	return "image/svg+xml"
}

func (f Format) provider() gochart.RendererProvider {
	if f == PNG {
		return gochart.PNG
	}
	return gochart.SVG
}

type renderable interface {
	Render(rp gochart.RendererProvider, w io.Writer) error
}

// Render draws s in format f. Empty specs, and specs the drawing library
// cannot lay out, are drawn as a titled placeholder.
func Render(w io.Writer, s *chart.Spec, f Format) error {
	if _, err := ParseFormat(string(f)); err != nil {
		return err
	}

	if s.Empty {
		return placeholder(s).Render(f.provider(), w)
	}

	var buf bytes.Buffer
	if err := draw(build(s), f, &buf); err != nil {
		log.WithFields(log.Fields{
			"prefix": logPrefix,
			"title":  s.Title,
			"kind":   s.Kind,
			"error":  err,
		}).Warn("chart cannot be drawn, rendering placeholder")
		return placeholder(s).Render(f.provider(), w)
	}
	_, err := buf.WriteTo(w)
	return err
}

// draw renders r, turning a panic inside the drawing library into an error.
func draw(r renderable, f Format, w io.Writer) (err error) {
	defer func() {
		if p := recover(); p != nil {
			err = fmt.Errorf("draw: %v", p)
		}
	}()
	return r.Render(f.provider(), w)
}

func build(s *chart.Spec) renderable {
	switch s.Kind {
	case catalog.BarChart:
		return barChart(s)
	case catalog.BoxChart:
		return boxChart(s)
	case catalog.ScatterChart:
		return scatterChart(s)
	default:
		return timeChart(s)
	}
}

func color(hex string) drawing.Color {
	if hex == "" {
		return gochart.ColorBlue
	}
	return drawing.ColorFromHex(strings.TrimPrefix(hex, "#"))
}

func background() gochart.Style {
	return gochart.Style{Padding: gochart.Box{Top: 40, Left: 16, Right: 16, Bottom: 16}}
}

func axisName(a chart.Axis) string {
	if a.Log {
		return a.Title + " (log10)"
	}
	return a.Title
}

// plotted maps a value onto the drawn scale of an axis.
func plotted(v float64, logAxis bool) (float64, bool) {
	if !logAxis {
		return v, true
	}
	if v <= 0 {
		return 0, false
	}
	return math.Log10(v), true
}

func ticks(a chart.Axis) []gochart.Tick {
	if len(a.Ticks) < 2 {
		return nil
	}
	out := make([]gochart.Tick, 0, len(a.Ticks))
	for _, t := range a.Ticks {
		v, ok := plotted(t, a.Log)
		if !ok {
			continue
		}
		out = append(out, gochart.Tick{Value: v, Label: fmt.Sprintf("%g", t)})
	}
	return out
}

// axisRange spans the outermost ticks of a.
func axisRange(a chart.Axis) gochart.Range {
	t := ticks(a)
	if len(t) < 2 {
		return nil
	}
	return &gochart.ContinuousRange{Min: t[0].Value, Max: t[len(t)-1].Value}
}

func timeChart(s *chart.Spec) renderable {
	c := gochart.Chart{
		Title:      s.Title,
		Width:      s.Width,
		Height:     s.Height,
		Background: background(),
		XAxis:      gochart.XAxis{Name: s.X.Title, ValueFormatter: gochart.TimeDateValueFormatter},
		YAxis:      gochart.YAxis{Name: axisName(s.Y), Ticks: ticks(s.Y)},
	}
	if s.Y2 != nil {
		// go-chart sizes a ticked secondary axis from the primary ticks
		c.YAxisSecondary = gochart.YAxis{Name: axisName(*s.Y2), Range: axisRange(*s.Y2)}
	}

	for _, series := range s.Series {
		ts := gochart.TimeSeries{
			Name:  series.Name,
			Style: gochart.Style{StrokeColor: color(series.Color), StrokeWidth: 2},
		}
		if series.Fill {
			ts.Style.FillColor = color(series.Color).WithAlpha(96)
		}
		if series.Axis == chart.AxisSecondary {
			ts.YAxis = gochart.YAxisSecondary
		}
		logAxis := s.Y.Log && series.Axis == chart.AxisPrimary
		for _, p := range series.Points {
			v, ok := plotted(p.Y, logAxis)
			if !ok {
				continue
			}
			ts.XValues = append(ts.XValues, p.Date)
			ts.YValues = append(ts.YValues, v)
		}
		c.Series = append(c.Series, ts)
	}
	if len(c.Series) > 1 {
		c.Elements = []gochart.Renderable{gochart.Legend(&c)}
	}
	return c
}

func scatterChart(s *chart.Spec) renderable {
	c := gochart.Chart{
		Title:      s.Title,
		Width:      s.Width,
		Height:     s.Height,
		Background: background(),
		XAxis:      gochart.XAxis{Name: axisName(s.X), Ticks: ticks(s.X)},
		YAxis:      gochart.YAxis{Name: axisName(s.Y), Ticks: ticks(s.Y)},
	}

	for _, series := range s.Series {
		cs := gochart.ContinuousSeries{
			Name: series.Name,
			Style: gochart.Style{
				StrokeWidth: gochart.Disabled,
				DotWidth:    4,
				DotColor:    color(series.Color),
			},
		}
		for _, p := range series.Points {
			x, okx := plotted(p.X, s.X.Log)
			y, oky := plotted(p.Y, s.Y.Log)
			if okx && oky {
				cs.XValues = append(cs.XValues, x)
				cs.YValues = append(cs.YValues, y)
			}
		}
		c.Series = append(c.Series, cs)
	}

	if t := s.Overlay.Trend; t != nil {
		line := gochart.ContinuousSeries{
			Name:  fmt.Sprintf("trend (R²=%.2f)", t.R2),
			Style: gochart.Style{StrokeColor: gochart.ColorRed, StrokeWidth: 2},
		}
		for _, p := range t.Points {
			x, okx := plotted(p.X, s.X.Log)
			y, oky := plotted(p.Y, s.Y.Log)
			if okx && oky {
				line.XValues = append(line.XValues, x)
				line.YValues = append(line.YValues, y)
			}
		}
		c.Series = append(c.Series, line)
		c.Elements = []gochart.Renderable{gochart.Legend(&c)}
	}
	return c
}

func barWidth(width, bars int) int {
	if width <= 0 {
		width = 1024
	}
	w := (width - 120) / (bars + 1)
	if w < 4 {
		w = 4
	}
	if w > 60 {
		w = 60
	}
	return w
}

func barChart(s *chart.Spec) renderable {
	valueAxis := s.Y
	if s.Horizontal {
		valueAxis = s.X
	}

	bars := []gochart.Value{}
	for _, series := range s.Series {
		for _, p := range series.Points {
			v, ok := plotted(p.Y, valueAxis.Log)
			if !ok {
				continue
			}
			bars = append(bars, gochart.Value{
				Label: p.Entity,
				Value: v,
				Style: gochart.Style{FillColor: color(series.Color), StrokeColor: color(series.Color)},
			})
		}
	}

	return gochart.BarChart{
		Title:      s.Title,
		Width:      s.Width,
		Height:     s.Height,
		Background: background(),
		BarWidth:   barWidth(s.Width, len(bars)),
		YAxis:      gochart.YAxis{Name: axisName(valueAxis), Ticks: ticks(valueAxis)},
		Bars:       bars,
	}
}

func boxChart(s *chart.Spec) renderable {
	b := s.Overlay.Box
	fill := gochart.ColorBlue
	if len(s.Series) > 0 {
		fill = color(s.Series[0].Color)
	}
	style := gochart.Style{FillColor: fill, StrokeColor: fill}

	var bars []gochart.Value
	if b != nil {
		bars = []gochart.Value{
			{Label: "min", Value: b.LowerWhisker, Style: style},
			{Label: "q1", Value: b.Q1, Style: style},
			{Label: "median", Value: b.Median, Style: style},
			{Label: "q3", Value: b.Q3, Style: style},
			{Label: "max", Value: b.UpperWhisker, Style: style},
		}
	}

	return gochart.BarChart{
		Title:      s.Title,
		Width:      s.Width,
		Height:     s.Height,
		Background: background(),
		BarWidth:   barWidth(s.Width, len(bars)),
		YAxis:      gochart.YAxis{Name: s.X.Title},
		Bars:       bars,
	}
}

func placeholder(s *chart.Spec) renderable {
	title := s.Title
	if title == "" {
		title = "no data"
	} else {
		title += " (no data)"
	}
	return gochart.Chart{
		Title:      title,
		Width:      s.Width,
		Height:     s.Height,
		Background: background(),
		XAxis:      gochart.XAxis{Name: s.X.Title},
		YAxis:      gochart.YAxis{Name: s.Y.Title},
		Series: []gochart.Series{
			gochart.ContinuousSeries{
				XValues: []float64{0, 1},
				YValues: []float64{0, 1},
				Style:   gochart.Style{StrokeColor: drawing.ColorTransparent, StrokeWidth: gochart.Disabled},
			},
		},
	}
}
