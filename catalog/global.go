package catalog

import (
	"github.com/bitmark-inc/covid-dashboard/schema"
)

const (
	colorCases     = "#6f6fe7"
	colorDeaths    = "#ec1342"
	colorRecovered = "#11de57"
	colorActive    = "#ff9c00"
	colorFatality  = "#b50f33"

	colorBreakdownRecovered = "#10cf51"
	colorBreakdownDeaths    = "#ec1342"
	colorBreakdownActive    = "#ff9c00"

	timeSeriesWidth  = 800
	timeSeriesHeight = 600
)

// BreakdownFields is the category order of the case breakdown. It is also
// the stacking and color order.
var BreakdownFields = []string{schema.FieldRecovered, schema.FieldDeaths, schema.FieldActive}

func timeSeries(id, label, field, color, title string) View {
	return View{
		ID:      id,
		Label:   label,
		Section: SectionMetric,
		Shape:   SingleSeries,
		Fields:  []string{field},
		Binding: Binding{
			Kind:        AreaChart,
			X:           schema.FieldDate,
			Y:           field,
			XTitle:      "date",
			YTitle:      "count",
			Colors:      []string{color},
			Fill:        []bool{true},
			Title:       title,
			Width:       timeSeriesWidth,
			Height:      timeSeriesHeight,
			RangeSlider: true,
		},
	}
}

func lineSeries(id, label, field, color, yTitle, title string) View {
	v := timeSeries(id, label, field, color, title)
	v.Binding.Kind = LineChart
	v.Binding.YTitle = yTitle
	v.Binding.Fill = []bool{false}
	return v
}

func breakdown(id, label, title string) View {
	return View{
		ID:      id,
		Label:   label,
		Section: SectionMetric,
		Shape:   CompositeBreakdown,
		Fields:  append([]string(nil), BreakdownFields...),
		Binding: Binding{
			Kind:        AreaChart,
			X:           schema.FieldDate,
			Y:           "value",
			XTitle:      "date",
			YTitle:      "count",
			Color:       "measure",
			Colors:      []string{colorBreakdownRecovered, colorBreakdownDeaths, colorBreakdownActive},
			Fill:        []bool{true, true, true},
			Title:       title,
			Width:       timeSeriesWidth,
			Height:      timeSeriesHeight,
			RangeSlider: true,
		},
	}
}

// Global returns the catalog of the aggregate (worldwide) table.
func Global() *Catalog {
	return MustNew(schema.Aggregate,
		timeSeries("global_cases", "Total Cases", schema.FieldCases, colorCases, "Total Cases: {entity}"),
		timeSeries("global_deaths", "Total Deaths", schema.FieldDeaths, colorDeaths, "Total Deaths: {entity}"),
		timeSeries("global_recovered", "Total Recoveries", schema.FieldRecovered, "#12ed5d", "Total Recoveries: {entity}"),
		timeSeries("global_active", "Total Active Cases", schema.FieldActive, colorActive, "Total Active Cases: {entity}"),
		timeSeries("global_new_cases", "Daily New Cases", schema.FieldNewCases, colorCases, "Daily New Cases: {entity}"),
		timeSeries("global_new_deaths", "Daily New Deaths", schema.FieldNewDeaths, colorDeaths, "Daily New Deaths: {entity}"),
		timeSeries("global_new_recovered", "Daily New Recoveries", schema.FieldNewRecovered, colorRecovered, "Daily New Recoveries: {entity}"),
		breakdown("global_breakdown", "Cases Breakdown: Deaths, Recoveries, and Active Cases",
			"Total Cases Split by Recoveries, Deaths, and Active Cases"),
		lineSeries("global_case_fatality", "Case Fatality Rate", schema.FieldCaseFatalityRate, colorFatality,
			"rate (per 100,000)", "Global Case Fatality Rate per 100,000 population"),
	)
}
