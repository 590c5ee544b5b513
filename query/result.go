package query

import (
	"time"

	"github.com/bitmark-inc/covid-dashboard/catalog"
)

// Point is one plotted sample. Time series and ranked results carry their
// value in Y; scatter results carry both coordinates.
type Point struct {
	Date   time.Time          `json:"date"`
	Entity string             `json:"entity,omitempty"`
	X      float64            `json:"x,omitempty"`
	Y      float64            `json:"y"`
	Hover  map[string]float64 `json:"hover,omitempty"`
}

// Series is a named, ordered sequence of points.
type Series struct {
	Name   string  `json:"name"`
	Points []Point `json:"points"`
}

// Result is the output of one view execution.
type Result struct {
	Shape  catalog.Shape `json:"shape"`
	Series []Series      `json:"series"`

	LogX bool `json:"log_x"`
	LogY bool `json:"log_y"`
}

// Empty reports whether the result has no points at all. An empty result
// is a valid answer and still binds to a chart.
func (r *Result) Empty() bool {
	return r.Len() == 0
}

// Len returns the total number of points across series.
func (r *Result) Len() int {
	n := 0
	for _, s := range r.Series {
		n += len(s.Points)
	}
	return n
}

// LongRow is one (date, category, value) record of a melted breakdown.
type LongRow struct {
	Date     time.Time `json:"date"`
	Category string    `json:"category"`
	Value    float64   `json:"value"`
}

// Melt flattens the result into long format, category by category in
// series order.
func (r *Result) Melt() []LongRow {
	rows := make([]LongRow, 0, r.Len())
	for _, s := range r.Series {
		for _, p := range s.Points {
			rows = append(rows, LongRow{Date: p.Date, Category: s.Name, Value: p.Y})
		}
	}
	return rows
}
