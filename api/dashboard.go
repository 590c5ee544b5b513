package api

import (
	"time"

	"github.com/bitmark-inc/covid-dashboard/catalog"
	"github.com/bitmark-inc/covid-dashboard/dashboard"
	"github.com/bitmark-inc/covid-dashboard/schema"
)

//go:generate mockgen -source=dashboard.go -destination=mocks/mock_dashboard.go -package=mocks

// Dashboard answers the chart requests served by the API.
type Dashboard interface {
	GlobalMetrics() []string
	CountryMetrics() []string
	Countries() []string
	RankedColumns() []catalog.Option
	RankOrders() []catalog.Option
	Relationships() []string
	PageDescriptions() map[string]string

	DateRange(kind schema.TableKind, field string) (dashboard.Range, error)

	GlobalChart(label string) (*dashboard.Chart, error)
	CountryChart(label, country string) (*dashboard.Chart, error)
	Comparison(country string) (*dashboard.Chart, error)
	Ranking(column string, date time.Time, order catalog.Order) (*dashboard.Chart, error)
	Relationship(label string, date time.Time, scale dashboard.Scale) (*dashboard.Chart, error)
	Distribution(date time.Time) (*dashboard.Chart, error)
}
