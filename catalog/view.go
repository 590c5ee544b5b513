package catalog

import (
	"strings"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Shape is the algorithmic shape of a view's query.
type Shape string

const (
	SingleSeries       Shape = "single_series"
	CompositeBreakdown Shape = "composite_breakdown"
	Ranked             Shape = "ranked"
	Scatter            Shape = "scatter"
	DualAxis           Shape = "dual_axis"
	Distribution       Shape = "distribution"
)

// ChartKind is the kind of chart a view is rendered as.
type ChartKind string

const (
	AreaChart    ChartKind = "area"
	LineChart    ChartKind = "line"
	BarChart     ChartKind = "bar"
	ScatterChart ChartKind = "scatter"
	BoxChart     ChartKind = "box"
	DualChart    ChartKind = "dual"
)

// Section groups views the way the dashboard lays them out.
type Section string

const (
	SectionMetric       Section = "metric"
	SectionComparison   Section = "comparison"
	SectionRanking      Section = "ranking"
	SectionRelationship Section = "relationship"
	SectionDistribution Section = "distribution"
)

// Order selects the top or bottom of a ranked cross-section.
type Order string

const (
	Top    Order = "top"
	Bottom Order = "bottom"
)

// Valid reports whether o is Top or Bottom.
func (o Order) Valid() bool {
	return o == Top || o == Bottom
}

// Binding maps query output onto a chart. Field names fill axis roles;
// the title is a template rendered by View.Title.
type Binding struct {
	Kind ChartKind `json:"kind"`

	X  string `json:"x"`
	Y  string `json:"y"`
	Y2 string `json:"y2,omitempty"`

	XTitle  string `json:"x_title"`
	YTitle  string `json:"y_title"`
	Y2Title string `json:"y2_title,omitempty"`

	// Color is the series grouping column (composite breakdowns).
	Color  string   `json:"color,omitempty"`
	Colors []string `json:"colors,omitempty"`
	// Fill marks series drawn filled to zero, by series position.
	Fill []bool `json:"fill,omitempty"`

	Title  string `json:"title"`
	Width  int    `json:"width"`
	Height int    `json:"height"`

	RangeSlider bool `json:"range_slider"`
	Horizontal  bool `json:"horizontal"`
	LogX        bool `json:"log_x"`
	LogY        bool `json:"log_y"`
	Trend       bool `json:"trend"`

	Hover []string `json:"hover,omitempty"`
}

// View is a named query plus chart binding. Views are defined once and
// never modified.
type View struct {
	ID      string  `json:"id"`
	Label   string  `json:"label"`
	Section Section `json:"section"`
	Shape   Shape   `json:"shape"`

	// Fields are the numeric fields the view selects. For composite
	// breakdowns their order is the category (stacking and color) order.
	Fields []string `json:"fields"`

	Binding Binding `json:"binding"`

	// DefaultDate is the initial date of cross-sectional views.
	DefaultDate time.Time `json:"default_date,omitempty"`

	// Companion is the label of a view charted alongside this one for the
	// same date.
	Companion string `json:"companion,omitempty"`
}

func (v View) clone() View {
	c := v
	c.Fields = append([]string(nil), v.Fields...)
	c.Binding.Colors = append([]string(nil), v.Binding.Colors...)
	c.Binding.Fill = append([]bool(nil), v.Binding.Fill...)
	c.Binding.Hover = append([]string(nil), v.Binding.Hover...)
	return c
}

// ForColumn binds the column of a ranked view to its value axis. Other
// views are returned unchanged.
func (v View) ForColumn(column string) View {
	c := v.clone()
	if c.Shape != Ranked {
		return c
	}
	c.Fields = []string{column}
	if c.Binding.Horizontal {
		c.Binding.X, c.Binding.XTitle = column, column
	} else {
		c.Binding.Y, c.Binding.YTitle = column, column
	}
	return c
}

// DescriptionID is the message id of the view's description.
func (v View) DescriptionID() string {
	return "view." + v.ID + ".description"
}

// ExplanationID is the message id of a relationship view's explanation.
func (v View) ExplanationID() string {
	return "view." + v.ID + ".explanation"
}

// TitleArgs are the runtime values substituted into a title template.
type TitleArgs struct {
	Entity string
	Column string
	Order  Order
	Date   time.Time
}

// Title renders the binding's title template.
//
//	{entity}  selected entity
//	{column}  selected column, title-cased
//	{order}   Top or Bottom
//	{date}    selected date as YYYY-MM-DD
func (v View) Title(args TitleArgs) string {
	date := ""
	if !args.Date.IsZero() {
		date = args.Date.Format("2006-01-02")
	}
	r := strings.NewReplacer(
		"{entity}", args.Entity,
		"{column}", TitleCase(args.Column),
		"{order}", TitleCase(string(args.Order)),
		"{date}", date,
	)
	return r.Replace(v.Binding.Title)
}

// TitleCase turns a field name such as "infection_rate" into
// "Infection Rate".
func TitleCase(field string) string {
	// a Caser keeps state between calls, so one is made per call
	return cases.Title(language.English).String(strings.ReplaceAll(field, "_", " "))
}
