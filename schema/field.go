package schema

// Field names as they appear in the daily global and country datasets.
const (
	FieldDate    = "date"
	FieldCountry = "country"

	FieldCases     = "cases"
	FieldDeaths    = "deaths"
	FieldRecovered = "recovered"
	FieldActive    = "active"

	FieldNewCases             = "new_cases"
	FieldNewDeaths            = "new_deaths"
	FieldNewRecovered         = "new_recovered"
	FieldNewCasesSmoothed     = "new_cases_smoothed"
	FieldNewDeathsSmoothed    = "new_deaths_smoothed"
	FieldNewRecoveredSmoothed = "new_recovered_smoothed"

	FieldPeopleVaccinated           = "people_vaccinated"
	FieldPeopleFullyVaccinated      = "people_fully_vaccinated"
	FieldTotalVaccinations          = "total_vaccinations"
	FieldTotalBoosters              = "total_boosters"
	FieldDailyPeopleVaccinated      = "daily_people_vaccinated"
	FieldDailyPeopleFullyVaccinated = "daily_people_fully_vaccinated"
	FieldDailyVaccinations          = "daily_vaccinations"
	FieldDailyBoosters              = "daily_boosters"

	FieldStringency = "stringency_value"
	FieldHDI        = "hdi_value"
	FieldPopulation = "population"

	FieldCaseFatalityRate     = "case_fatality_rate"
	FieldInfectionRate        = "infection_rate"
	FieldPeopleVaccinatedRate = "people_vaccinated_rate"
	FieldFullyVaccinatedRate  = "fully_vaccinated_rate"
)

// NumericFields lists every numeric field a table may carry, in dataset order.
var NumericFields = []string{
	FieldCases,
	FieldDeaths,
	FieldRecovered,
	FieldActive,
	FieldNewCases,
	FieldNewDeaths,
	FieldNewRecovered,
	FieldNewCasesSmoothed,
	FieldNewDeathsSmoothed,
	FieldNewRecoveredSmoothed,
	FieldPeopleVaccinated,
	FieldPeopleFullyVaccinated,
	FieldTotalVaccinations,
	FieldTotalBoosters,
	FieldDailyPeopleVaccinated,
	FieldDailyPeopleFullyVaccinated,
	FieldDailyVaccinations,
	FieldDailyBoosters,
	FieldStringency,
	FieldHDI,
	FieldPopulation,
	FieldCaseFatalityRate,
	FieldInfectionRate,
	FieldPeopleVaccinatedRate,
	FieldFullyVaccinatedRate,
}

var numericFieldSet map[string]bool

func init() {
	numericFieldSet = make(map[string]bool, len(NumericFields))
	for _, f := range NumericFields {
		numericFieldSet[f] = true
	}
}

// IsNumericField reports whether name is one of the known numeric fields.
func IsNumericField(name string) bool {
	return numericFieldSet[name]
}
