package dashboard

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/bitmark-inc/covid-dashboard/catalog"
	"github.com/bitmark-inc/covid-dashboard/query"
	"github.com/bitmark-inc/covid-dashboard/schema"
	"github.com/bitmark-inc/covid-dashboard/table"
	"github.com/bitmark-inc/covid-dashboard/utils"
)

func day(s string) time.Time {
	d, _ := time.Parse(dateLayout, s)
	return d
}

var countryColumns = []string{
	"country", "date", "cases", "deaths", "recovered", "active",
	"new_cases_smoothed", "stringency_value", "population",
	"infection_rate", "case_fatality_rate", "hdi_value",
}

type DashboardTestSuite struct {
	suite.Suite
	dashboard *Dashboard
}

func (s *DashboardTestSuite) SetupSuite() {
	s.Require().NoError(utils.InitI18NBundle("../i18n"))

	globalRaw := []schema.RawRow{}
	for i, d := range []string{"2021-02-20", "2021-02-21", "2021-02-22"} {
		globalRaw = append(globalRaw, schema.RawRow{
			"date":      d,
			"cases":     fmt.Sprint(1000 * (i + 1)),
			"deaths":    fmt.Sprint(10 * (i + 1)),
			"recovered": fmt.Sprint(500 * (i + 1)),
			"active":    fmt.Sprint(490 * (i + 1)),
		})
	}
	global, err := table.Normalize(schema.Aggregate, []string{"date", "cases", "deaths", "recovered", "active"}, globalRaw)
	s.Require().NoError(err)

	countryRaw := []schema.RawRow{}
	countries := []string{"Canada", "Chile", "Kenya", "Norway"}
	for i, name := range countries {
		for j, d := range []string{"2021-02-20", "2021-02-21", "2021-02-22", "2021-02-23", "2021-02-24"} {
			countryRaw = append(countryRaw, schema.RawRow{
				"country":            name,
				"date":               d,
				"cases":              fmt.Sprint(100*(i+1) + j),
				"deaths":             fmt.Sprint(i + 1),
				"recovered":          fmt.Sprint(50 * (i + 1)),
				"active":             fmt.Sprint(49*(i+1) + j),
				"new_cases_smoothed": fmt.Sprint(10 + j),
				"stringency_value":   fmt.Sprint(40 + i),
				"population":         "5000000",
				"infection_rate":     fmt.Sprint(0.1 * float64(i+1)),
				"case_fatality_rate": fmt.Sprint(1 + i),
				"hdi_value":          fmt.Sprint(0.5 + 0.1*float64(i)),
			})
		}
	}
	country, err := table.Normalize(schema.PerEntity, countryColumns, countryRaw)
	s.Require().NoError(err)

	s.dashboard = New(global, country, utils.NewLocalizer("en"))
}

func (s *DashboardTestSuite) TestMenus() {
	d := s.dashboard

	s.Equal("Total Cases", d.GlobalMetrics()[0])
	s.Contains(d.GlobalMetrics(), "Case Fatality Rate")
	s.Contains(d.CountryMetrics(), "Stringency Index")
	s.NotContains(d.CountryMetrics(), catalog.ComparisonLabel)
	s.Equal([]string{"Canada", "Chile", "Kenya", "Norway"}, d.Countries())
	s.Len(d.Relationships(), 4)
	s.Equal(catalog.DefaultRankedColumn(), d.RankedColumns()[0].Value)
	s.Len(d.RankOrders(), 2)
}

func (s *DashboardTestSuite) TestDateRange() {
	r, err := s.dashboard.DateRange(schema.PerEntity, schema.FieldHDI)
	s.Require().NoError(err)
	s.Equal(Range{First: "2021-02-20", Last: "2021-02-24"}, r)

	r, err = s.dashboard.DateRange(schema.Aggregate, schema.FieldCases)
	s.Require().NoError(err)
	s.Equal(Range{First: "2021-02-20", Last: "2021-02-22"}, r)

	_, err = s.dashboard.DateRange(schema.PerEntity, "boosters_per_cat")
	s.True(errors.Is(err, ErrUnknownField))

	_, err = s.dashboard.DateRange("regional", schema.FieldCases)
	s.True(errors.Is(err, ErrUnknownTable))
}

func (s *DashboardTestSuite) TestGlobalChart() {
	c, err := s.dashboard.GlobalChart("Total Cases")
	s.Require().NoError(err)
	s.Equal("Total Cases", c.Label)
	s.Equal("Total Cases: World", c.Spec.Title)
	s.Contains(c.Description, "worldwide")
	s.Empty(c.Date)
	s.Require().Len(c.Spec.Series, 1)
	s.Len(c.Spec.Series[0].Points, 3)
}

func (s *DashboardTestSuite) TestGlobalBreakdown() {
	c, err := s.dashboard.GlobalChart("Cases Breakdown: Deaths, Recoveries, and Active Cases")
	s.Require().NoError(err)
	s.Len(c.Spec.Series, 3)

	s.Require().Len(c.Long, 9)
	s.Equal(schema.FieldRecovered, c.Long[0].Category)
	s.Equal(float64(500), c.Long[0].Value)
	s.Equal(schema.FieldActive, c.Long[8].Category)
	s.Equal(float64(1470), c.Long[8].Value)
}

func (s *DashboardTestSuite) TestSingleSeriesHasNoLongForm() {
	c, err := s.dashboard.GlobalChart("Total Cases")
	s.Require().NoError(err)
	s.Nil(c.Long)
}

func (s *DashboardTestSuite) TestUnknownMetric() {
	_, err := s.dashboard.GlobalChart("Total Hamsters")
	s.True(errors.Is(err, catalog.ErrUnknownMetric))

	_, err = s.dashboard.CountryChart(catalog.ComparisonLabel, "Canada")
	s.True(errors.Is(err, catalog.ErrUnknownMetric))

	_, err = s.dashboard.Relationship("Total Cases", time.Time{}, Scale{})
	s.True(errors.Is(err, catalog.ErrUnknownMetric))
}

func (s *DashboardTestSuite) TestCountryChart() {
	c, err := s.dashboard.CountryChart("Total Cases", "Kenya")
	s.Require().NoError(err)
	s.Equal("Total Cases: Kenya", c.Spec.Title)
	s.Contains(c.Description, "in Kenya")
	s.Len(c.Spec.Series[0].Points, 5)
	s.Equal(float64(300), c.Spec.Series[0].Points[0].Y)
}

func (s *DashboardTestSuite) TestCountryChartUnknownCountry() {
	c, err := s.dashboard.CountryChart("Total Cases", "Atlantis")
	s.Require().NoError(err)
	s.True(c.Spec.Empty)
}

func (s *DashboardTestSuite) TestCountryChartMissingColumn() {
	_, err := s.dashboard.CountryChart("Total Boosters", "Kenya")
	s.True(errors.Is(err, schema.ErrMissingField))
}

func (s *DashboardTestSuite) TestComparison() {
	c, err := s.dashboard.Comparison("Chile")
	s.Require().NoError(err)
	s.Equal(catalog.ComparisonLabel, c.Label)
	s.Require().Len(c.Spec.Series, 2)
	s.NotNil(c.Spec.Y2)
}

func (s *DashboardTestSuite) TestRankingDefaults() {
	c, err := s.dashboard.Ranking("", time.Time{}, "")
	s.Require().NoError(err)
	s.Equal("2021-02-22", c.Date)
	s.Equal("Top 15 Countries by Infection Rate", c.Spec.Title)
	s.Require().Len(c.Spec.Series, 1)
	s.Len(c.Spec.Series[0].Points, 4)
}

func (s *DashboardTestSuite) TestRankingOutOfRangeDateIsEmpty() {
	c, err := s.dashboard.Ranking(schema.FieldCases, day("2020-01-01"), catalog.Bottom)
	s.Require().NoError(err)
	s.Equal("2020-01-01", c.Date)
	s.Equal("Bottom 15 Countries by Cases", c.Spec.Title)
	s.True(c.Spec.Empty)

	c, err = s.dashboard.Ranking(schema.FieldCases, day("2023-01-01"), catalog.Top)
	s.Require().NoError(err)
	s.Equal("2023-01-01", c.Date)
	s.True(c.Spec.Empty)
}

func (s *DashboardTestSuite) TestDefaultDateIsClamped() {
	c, err := s.dashboard.Distribution(time.Time{})
	s.Require().NoError(err)
	s.Equal("2021-02-24", c.Date)
	s.False(c.Spec.Empty)
}

func (s *DashboardTestSuite) TestRankingRejectsInput() {
	_, err := s.dashboard.Ranking("hdi_value", time.Time{}, catalog.Top)
	s.True(errors.Is(err, catalog.ErrUnknownColumn))

	_, err = s.dashboard.Ranking(schema.FieldCases, time.Time{}, "middle")
	s.True(errors.Is(err, query.ErrInvalidOrder))
}

func (s *DashboardTestSuite) TestRelationshipWithCompanion() {
	c, err := s.dashboard.Relationship("HDI vs. Case Fatality Rate", time.Time{}, Scale{})
	s.Require().NoError(err)
	s.Equal("2021-02-24", c.Date)
	s.NotEmpty(c.Explanation)
	s.Require().NotNil(c.Companion)
	s.Equal(catalog.DistributionLabel, c.Companion.Label)
	s.Equal(c.Date, c.Companion.Date)
	s.NotNil(c.Companion.Spec.Overlay.Box)
}

func (s *DashboardTestSuite) TestRelationshipOutOfRangeDateIsEmpty() {
	c, err := s.dashboard.Relationship("HDI vs. Case Fatality Rate", day("2022-03-29"), Scale{})
	s.Require().NoError(err)
	s.Equal("2022-03-29", c.Date)
	s.True(c.Spec.Empty)
	s.Require().NotNil(c.Companion)
	s.True(c.Companion.Spec.Empty)
}

func (s *DashboardTestSuite) TestRelationshipScale() {
	c, err := s.dashboard.Relationship("HDI vs. Infection Rate", time.Time{}, Scale{})
	s.Require().NoError(err)
	s.True(c.Spec.Y.Log)
	s.False(c.Spec.X.Log)

	off, on := false, true
	c, err = s.dashboard.Relationship("HDI vs. Infection Rate", time.Time{}, Scale{LogX: &on, LogY: &off})
	s.Require().NoError(err)
	s.True(c.Spec.X.Log)
	s.False(c.Spec.Y.Log)
	s.Require().NotNil(c.Spec.Overlay.Trend)
	s.True(c.Spec.Overlay.Trend.LogX)
	s.False(c.Spec.Overlay.Trend.LogY)
}

func (s *DashboardTestSuite) TestPageDescriptions() {
	pages := s.dashboard.PageDescriptions()
	s.Contains(pages["global"], "worldwide progression")
	s.Contains(pages["country"], "underreported")
}

func (s *DashboardTestSuite) TestRelationshipMissingColumn() {
	_, err := s.dashboard.Relationship("People Vaccinated Rate vs. Infection Rate", time.Time{}, Scale{})
	s.True(errors.Is(err, schema.ErrMissingField))
}

func (s *DashboardTestSuite) TestDistribution() {
	c, err := s.dashboard.Distribution(day("2021-02-21"))
	s.Require().NoError(err)
	s.Equal("2021-02-21", c.Date)
	s.Require().NotNil(c.Spec.Overlay.Box)
	s.Equal(4, c.Spec.Overlay.Box.N)
}

func TestDashboardTestSuite(t *testing.T) {
	suite.Run(t, new(DashboardTestSuite))
}
