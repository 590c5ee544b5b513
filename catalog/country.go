package catalog

import (
	"time"

	"github.com/bitmark-inc/covid-dashboard/schema"
)

const (
	colorVaccination = "#6ad2e5"
	colorStringency  = "#d97670"
	colorBar         = "#636efa"

	crossSectionWidth = 1000
	scatterHeight     = 400
	rankedHeight      = 450
	dualHeight        = 600
)

// Labels of the per-entity views outside the metric list.
const (
	ComparisonLabel   = "New Cases Smoothed vs. Stringency Index"
	RankingLabel      = "Top/Bottom 15 Countries by Metric"
	DistributionLabel = "HDI Distribution"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func scatter(id, label, x, y string, defaultDate time.Time, companion string) View {
	return View{
		ID:      id,
		Label:   label,
		Section: SectionRelationship,
		Shape:   Scatter,
		Fields:  []string{x, y},
		Binding: Binding{
			Kind:   ScatterChart,
			X:      x,
			Y:      y,
			XTitle: x,
			YTitle: y,
			Colors: []string{colorBar},
			Title:  label + " ({date})",
			Width:  crossSectionWidth,
			Height: scatterHeight,
			LogY:   true,
			Trend:  true,
			Hover:  []string{schema.FieldCountry, schema.FieldDate},
		},
		DefaultDate: defaultDate,
		Companion:   companion,
	}
}

// Country returns the catalog of the per-entity (country) table.
func Country() *Catalog {
	stringency := lineSeries("country_stringency", "Stringency Index", schema.FieldStringency, colorStringency,
		"stringency index", "Stringency Index in {entity}")

	return MustNew(schema.PerEntity,
		timeSeries("country_cases", "Total Cases", schema.FieldCases, colorCases, "Total Cases: {entity}"),
		timeSeries("country_deaths", "Total Deaths", schema.FieldDeaths, colorDeaths, "Total Deaths: {entity}"),
		timeSeries("country_recovered", "Total Recoveries", schema.FieldRecovered, colorRecovered, "Total Recoveries: {entity}"),
		timeSeries("country_active", "Total Active Cases", schema.FieldActive, colorActive, "Total Active Cases: {entity}"),
		timeSeries("country_new_cases", "Daily New Cases", schema.FieldNewCasesSmoothed, colorCases, "Daily New Cases: {entity}"),
		timeSeries("country_new_deaths", "Daily New Deaths", schema.FieldNewDeathsSmoothed, colorDeaths, "Daily New Deaths: {entity}"),
		timeSeries("country_new_recovered", "Daily New Recoveries", schema.FieldNewRecoveredSmoothed, colorRecovered, "Daily New Recoveries: {entity}"),
		breakdown("country_breakdown", "Cases Breakdown: Recoveries, Deaths, and Active Cases",
			"Total Cases Split by Recoveries, Deaths, Active Cases in {entity}"),
		timeSeries("country_people_vaccinated", "People Vaccinated", schema.FieldPeopleVaccinated, colorVaccination, "People Vaccinated: {entity}"),
		timeSeries("country_people_fully_vaccinated", "People Fully Vaccinated", schema.FieldPeopleFullyVaccinated, colorVaccination, "People Fully Vaccinated: {entity}"),
		timeSeries("country_total_vaccinations", "Total Vaccinations", schema.FieldTotalVaccinations, colorVaccination, "Total Vaccinations: {entity}"),
		timeSeries("country_total_boosters", "Total Boosters", schema.FieldTotalBoosters, colorVaccination, "Total Boosters: {entity}"),
		timeSeries("country_daily_people_vaccinated", "Daily People Vaccinated", schema.FieldDailyPeopleVaccinated, colorVaccination, "Daily People Vaccinated: {entity}"),
		timeSeries("country_daily_people_fully_vaccinated", "Daily People Fully Vaccinated", schema.FieldDailyPeopleFullyVaccinated, colorVaccination, "Daily People Fully Vaccinated: {entity}"),
		timeSeries("country_daily_vaccinations", "Daily Vaccinations", schema.FieldDailyVaccinations, colorVaccination, "Daily Vaccinations: {entity}"),
		timeSeries("country_daily_boosters", "Daily Boosters", schema.FieldDailyBoosters, colorVaccination, "Daily Boosters: {entity}"),
		stringency,

		View{
			ID:      "country_comparison",
			Label:   ComparisonLabel,
			Section: SectionComparison,
			Shape:   DualAxis,
			Fields:  []string{schema.FieldNewCasesSmoothed, schema.FieldStringency},
			Binding: Binding{
				Kind:        DualChart,
				X:           schema.FieldDate,
				Y:           schema.FieldNewCasesSmoothed,
				Y2:          schema.FieldStringency,
				XTitle:      "date",
				YTitle:      schema.FieldNewCasesSmoothed,
				Y2Title:     schema.FieldStringency,
				Colors:      []string{colorCases, colorStringency},
				Fill:        []bool{true, false},
				Title:       "Comparing New Cases Smoothed and Stringency Index: {entity}",
				Width:       crossSectionWidth,
				Height:      dualHeight,
				RangeSlider: true,
			},
		},

		View{
			ID:      "country_ranking",
			Label:   RankingLabel,
			Section: SectionRanking,
			Shape:   Ranked,
			Binding: Binding{
				Kind:       BarChart,
				Y:          schema.FieldCountry,
				YTitle:     schema.FieldCountry,
				Colors:     []string{colorBar},
				Title:      "{order} 15 Countries by {column}",
				Width:      crossSectionWidth,
				Height:     rankedHeight,
				Horizontal: true,
				Hover:      []string{schema.FieldHDI},
			},
			DefaultDate: date(2021, time.February, 22),
		},

		scatter("hdi_case_fatality", "HDI vs. Case Fatality Rate",
			schema.FieldHDI, schema.FieldCaseFatalityRate, date(2022, time.March, 29), DistributionLabel),
		scatter("hdi_infection", "HDI vs. Infection Rate",
			schema.FieldHDI, schema.FieldInfectionRate, date(2022, time.May, 20), DistributionLabel),
		scatter("vaccinated_infection", "People Vaccinated Rate vs. Infection Rate",
			schema.FieldPeopleVaccinatedRate, schema.FieldInfectionRate, date(2021, time.October, 20), ""),
		scatter("fully_vaccinated_infection", "Fully Vaccinated Rate vs. Infection Rate",
			schema.FieldFullyVaccinatedRate, schema.FieldInfectionRate, date(2022, time.February, 22), ""),

		View{
			ID:      "hdi_distribution",
			Label:   DistributionLabel,
			Section: SectionDistribution,
			Shape:   Distribution,
			Fields:  []string{schema.FieldHDI},
			Binding: Binding{
				Kind:   BoxChart,
				X:      schema.FieldHDI,
				XTitle: schema.FieldHDI,
				Colors: []string{colorBar},
				Title:  "HDI Distribution ({date})",
				Width:  crossSectionWidth,
				Height: scatterHeight,
			},
			DefaultDate: date(2022, time.March, 29),
		},
	)
}
