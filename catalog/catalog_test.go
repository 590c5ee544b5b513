package catalog

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitmark-inc/covid-dashboard/schema"
)

func TestGlobalCatalog(t *testing.T) {
	c := Global()
	assert.Equal(t, schema.Aggregate, c.Kind())
	assert.Equal(t, []string{
		"Total Cases",
		"Total Deaths",
		"Total Recoveries",
		"Total Active Cases",
		"Daily New Cases",
		"Daily New Deaths",
		"Daily New Recoveries",
		"Cases Breakdown: Deaths, Recoveries, and Active Cases",
		"Case Fatality Rate",
	}, c.Labels(SectionMetric))

	v, err := c.Lookup("Case Fatality Rate")
	require.NoError(t, err)
	assert.Equal(t, LineChart, v.Binding.Kind)
	assert.Equal(t, "rate (per 100,000)", v.Binding.YTitle)
	assert.Equal(t, []string{"#b50f33"}, v.Binding.Colors)
}

func TestCountryCatalog(t *testing.T) {
	c := Country()
	assert.Equal(t, schema.PerEntity, c.Kind())
	assert.Len(t, c.Labels(SectionMetric), 17)
	assert.Equal(t, []string{ComparisonLabel}, c.Labels(SectionComparison))
	assert.Equal(t, []string{RankingLabel}, c.Labels(SectionRanking))
	assert.Equal(t, []string{DistributionLabel}, c.Labels(SectionDistribution))
	assert.Equal(t, []string{
		"HDI vs. Case Fatality Rate",
		"HDI vs. Infection Rate",
		"People Vaccinated Rate vs. Infection Rate",
		"Fully Vaccinated Rate vs. Infection Rate",
	}, c.Labels(SectionRelationship))

	v, err := c.Lookup("Daily New Cases")
	require.NoError(t, err)
	assert.Equal(t, []string{schema.FieldNewCasesSmoothed}, v.Fields)

	v, err = c.Lookup("Total Boosters")
	require.NoError(t, err)
	assert.Equal(t, []string{"#6ad2e5"}, v.Binding.Colors)

	for _, label := range c.Labels(SectionRelationship) {
		v, err := c.Lookup(label)
		require.NoError(t, err)
		assert.True(t, v.Binding.LogY, label)
		assert.True(t, v.Binding.Trend, label)
		assert.False(t, v.DefaultDate.IsZero(), label)
	}

	v, err = c.Lookup("HDI vs. Infection Rate")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2022, 5, 20, 0, 0, 0, 0, time.UTC), v.DefaultDate)
	assert.Equal(t, DistributionLabel, v.Companion)
}

func TestBreakdownCategoryOrder(t *testing.T) {
	for _, c := range []*Catalog{Global(), Country()} {
		for _, v := range c.Views() {
			if v.Shape != CompositeBreakdown {
				continue
			}
			assert.Equal(t, []string{"recovered", "deaths", "active"}, v.Fields)
			assert.Equal(t, []string{"#10cf51", "#ec1342", "#ff9c00"}, v.Binding.Colors)
		}
	}
}

func TestLookupUnknownMetric(t *testing.T) {
	c := Global()
	before := c.Views()

	_, err := c.Lookup("Nonexistent Metric")
	assert.True(t, errors.Is(err, ErrUnknownMetric))
	assert.Equal(t, before, c.Views())
	assert.Equal(t, 9, c.Len())
}

func TestLookupReturnsCopy(t *testing.T) {
	c := Country()
	v, err := c.Lookup("Total Cases")
	require.NoError(t, err)
	v.Fields[0] = "deaths"
	v.Binding.Colors[0] = "#000000"

	again, err := c.Lookup("Total Cases")
	require.NoError(t, err)
	assert.Equal(t, []string{"cases"}, again.Fields)
	assert.Equal(t, []string{"#6f6fe7"}, again.Binding.Colors)
}

func TestNewRejectsConflicts(t *testing.T) {
	a := timeSeries("a", "Same", schema.FieldCases, colorCases, "")
	b := timeSeries("b", "Same", schema.FieldDeaths, colorDeaths, "")
	_, err := New(schema.Aggregate, a, b)
	assert.True(t, errors.Is(err, ErrCatalogConflict))

	b.Label = "Other"
	b.ID = "a"
	_, err = New(schema.Aggregate, a, b)
	assert.True(t, errors.Is(err, ErrCatalogConflict))

	_, err = New(schema.Aggregate, View{ID: "x", Shape: SingleSeries, Fields: []string{"cases"}})
	assert.True(t, errors.Is(err, ErrCatalogConflict))

	bad := timeSeries("c", "Two Fields", schema.FieldCases, colorCases, "")
	bad.Fields = append(bad.Fields, schema.FieldDeaths)
	_, err = New(schema.Aggregate, bad)
	assert.True(t, errors.Is(err, ErrCatalogConflict))
}

func TestTitle(t *testing.T) {
	c := Country()
	v, err := c.Lookup("Total Cases")
	require.NoError(t, err)
	assert.Equal(t, "Total Cases: Brazil", v.Title(TitleArgs{Entity: "Brazil"}))

	r, err := c.Lookup(RankingLabel)
	require.NoError(t, err)
	assert.Equal(t, "Bottom 15 Countries by Infection Rate",
		r.Title(TitleArgs{Column: schema.FieldInfectionRate, Order: Bottom}))
	assert.Equal(t, "People Vaccinated", TitleCase("people_vaccinated"))
}

func TestForColumn(t *testing.T) {
	r, err := Country().Lookup(RankingLabel)
	require.NoError(t, err)

	bound := r.ForColumn(schema.FieldDeaths)
	assert.Equal(t, schema.FieldDeaths, bound.Binding.X)
	assert.Equal(t, schema.FieldDeaths, bound.Binding.XTitle)
	assert.Equal(t, schema.FieldCountry, bound.Binding.Y)
	assert.Empty(t, r.Binding.X)
}

func TestRankedOptions(t *testing.T) {
	cols := RankedColumns()
	require.Len(t, cols, 5)
	assert.Equal(t, Option{"infection_rate", "Infection Rate"}, cols[0])
	assert.Equal(t, "infection_rate", DefaultRankedColumn())

	text, err := RankedColumnText("people_vaccinated")
	assert.NoError(t, err)
	assert.Equal(t, "People Vaccinated", text)

	_, err = RankedColumnText("population")
	assert.True(t, errors.Is(err, ErrUnknownColumn))

	assert.Equal(t, []Option{{"top", "Top 15 Countries"}, {"bottom", "Bottom 15 Countries"}}, RankOrders())
	assert.True(t, Top.Valid())
	assert.False(t, Order("middle").Valid())
}
