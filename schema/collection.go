package schema

// Snapshot collections (mongo) and tables (sqlite) holding the daily datasets.
const (
	GlobalDailyCollection  = "covid_daily_global"
	CountryDailyCollection = "covid_daily_country"
)

// CollectionFor returns the snapshot collection name of a table kind.
func CollectionFor(kind TableKind) string {
	if kind == PerEntity {
		return CountryDailyCollection
	}
	return GlobalDailyCollection
}
