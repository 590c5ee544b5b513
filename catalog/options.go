package catalog

import (
	"fmt"

	"github.com/bitmark-inc/covid-dashboard/schema"
)

// Option is a selectable value and the text it is displayed as.
type Option struct {
	Value string `json:"value"`
	Text  string `json:"text"`
}

var rankedColumns = []Option{
	{schema.FieldInfectionRate, "Infection Rate"},
	{schema.FieldCases, "Total Cases"},
	{schema.FieldDeaths, "Total Deaths"},
	{schema.FieldActive, "Active Cases"},
	{schema.FieldPeopleVaccinated, "People Vaccinated"},
}

var rankOrders = []Option{
	{string(Top), "Top 15 Countries"},
	{string(Bottom), "Bottom 15 Countries"},
}

// ErrUnknownColumn is returned for a ranked column outside RankedColumns.
var ErrUnknownColumn = fmt.Errorf("unknown ranked column")

// RankedColumns returns the columns a ranking can be computed on, in
// display order.
func RankedColumns() []Option {
	return append([]Option(nil), rankedColumns...)
}

// RankOrders returns the top and bottom options.
func RankOrders() []Option {
	return append([]Option(nil), rankOrders...)
}

// RankedColumnText returns the display text of a ranked column.
func RankedColumnText(column string) (string, error) {
	for _, o := range rankedColumns {
		if o.Value == column {
			return o.Text, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownColumn, column)
}

// DefaultRankedColumn is the column selected when none is given.
func DefaultRankedColumn() string {
	return rankedColumns[0].Value
}
