package chart

import (
	"github.com/bitmark-inc/covid-dashboard/catalog"
	"github.com/bitmark-inc/covid-dashboard/query"
)

// Axis roles a series can be plotted against.
const (
	AxisPrimary   = "y"
	AxisSecondary = "y2"
)

// Axis describes one chart axis.
type Axis struct {
	Field string `json:"field,omitempty"`
	Title string `json:"title"`
	Log   bool   `json:"log"`
	// Time marks a date axis.
	Time bool `json:"time,omitempty"`
	// Categories holds the entity order of a categorical axis.
	Categories []string  `json:"categories,omitempty"`
	Ticks      []float64 `json:"ticks,omitempty"`
}

// Series is one drawn trace.
type Series struct {
	Name   string        `json:"name"`
	Color  string        `json:"color"`
	Fill   bool          `json:"fill"`
	Axis   string        `json:"axis"`
	Points []query.Point `json:"points"`
}

// Overlay is a statistic drawn over the data. At most one is set.
type Overlay struct {
	Trend *Trend `json:"trend,omitempty"`
	Box   *Box   `json:"box,omitempty"`
}

// Spec is a renderable chart. It is built fresh for every request and never
// modified afterwards.
type Spec struct {
	Kind  catalog.ChartKind `json:"kind"`
	Title string            `json:"title"`

	X  Axis  `json:"x"`
	Y  Axis  `json:"y"`
	Y2 *Axis `json:"y2,omitempty"`

	Series  []Series `json:"series"`
	Overlay Overlay  `json:"overlay"`
	Hover   []string `json:"hover,omitempty"`

	Width       int  `json:"width"`
	Height      int  `json:"height"`
	RangeSlider bool `json:"range_slider"`
	Horizontal  bool `json:"horizontal"`

	// Empty is set when the query produced no points. The spec is still
	// valid and renders as a placeholder.
	Empty bool `json:"empty"`
}
